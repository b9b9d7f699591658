package metrics

import (
	"math"

	"github.com/san-kum/dampsim/internal/dynamo"
)

// ZeroCrossings counts sign changes of one state component.
type ZeroCrossings struct {
	dim       int
	prevSign  float64
	crossings int
}

func NewZeroCrossings(dim int) *ZeroCrossings {
	return &ZeroCrossings{dim: dim}
}

func (z *ZeroCrossings) Name() string { return "zero_crossings" }

func (z *ZeroCrossings) Observe(x dynamo.State, t float64) {
	v := x[z.dim]
	if v == 0 || math.IsNaN(v) {
		return
	}
	sign := math.Copysign(1, v)
	if z.prevSign != 0 && sign != z.prevSign {
		z.crossings++
	}
	z.prevSign = sign
}

func (z *ZeroCrossings) Value() float64 {
	return float64(z.crossings)
}

func (z *ZeroCrossings) Reset() {
	z.prevSign = 0
	z.crossings = 0
}

// SettlingTime is the earliest time after which one state component stays
// within band·|initial value| of zero. It is +Inf if the component is still
// outside the band at the last sample.
type SettlingTime struct {
	dim       int
	band      float64
	threshold float64
	settled   float64
	outside   bool
	samples   int
}

func NewSettlingTime(dim int, band float64) *SettlingTime {
	return &SettlingTime{dim: dim, band: band}
}

func (s *SettlingTime) Name() string { return "settling_time" }

func (s *SettlingTime) Observe(x dynamo.State, t float64) {
	v := math.Abs(x[s.dim])
	if s.samples == 0 {
		s.threshold = s.band * v
	}
	s.samples++

	if v > s.threshold || math.IsNaN(v) {
		s.outside = true
		return
	}
	if s.outside || s.samples == 1 {
		s.settled = t
		s.outside = false
	}
}

func (s *SettlingTime) Value() float64 {
	if s.outside {
		return math.Inf(1)
	}
	return s.settled
}

func (s *SettlingTime) Reset() {
	s.threshold = 0
	s.settled = 0
	s.outside = false
	s.samples = 0
}

// Overshoot is the largest excursion past zero, opposite to the initial
// displacement, relative to |initial displacement|.
type Overshoot struct {
	dim     int
	initial float64
	peak    float64
	samples int
}

func NewOvershoot(dim int) *Overshoot {
	return &Overshoot{dim: dim}
}

func (o *Overshoot) Name() string { return "overshoot" }

func (o *Overshoot) Observe(x dynamo.State, t float64) {
	v := x[o.dim]
	if o.samples == 0 {
		o.initial = v
	}
	o.samples++

	if o.initial == 0 {
		return
	}
	past := -math.Copysign(1, o.initial) * v
	if past > o.peak {
		o.peak = past
	}
}

func (o *Overshoot) Value() float64 {
	if o.initial == 0 {
		return 0
	}
	return o.peak / math.Abs(o.initial)
}

func (o *Overshoot) Reset() {
	o.initial = 0
	o.peak = 0
	o.samples = 0
}
