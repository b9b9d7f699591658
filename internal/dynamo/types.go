package dynamo

import (
	"math"
)

// MaxSamples bounds the number of samples a single run may allocate.
const MaxSamples = 1 << 26

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// System is an autonomous ODE dX/dt = f(X).
type System interface {
	Derive(x State) State
	StateDim() int
}

// Validator is implemented by systems that can reject their own parameters.
type Validator interface {
	Validate() error
}

type Hamiltonian interface {
	Energy(x State) float64
}

type Integrator interface {
	Step(dyn System, x State, t float64, dt float64) State
}

// Grid is a uniform time grid starting at 0.
// It holds floor(TMax/Dt)+1 samples; the last one may fall short of TMax.
type Grid struct {
	TMax float64 `json:"t_max" yaml:"t_max"`
	Dt   float64 `json:"dt" yaml:"dt"`
}

func (g Grid) Validate() error {
	if math.IsNaN(g.TMax) || math.IsInf(g.TMax, 0) || g.TMax <= 0 {
		return InvalidParameter("t_max", g.TMax, "must be positive and finite")
	}
	if math.IsNaN(g.Dt) || math.IsInf(g.Dt, 0) || g.Dt <= 0 {
		return InvalidParameter("dt", g.Dt, "must be positive and finite")
	}
	if g.TMax/g.Dt >= MaxSamples {
		return InvalidParameter("dt", g.Dt, "yields too many samples for t_max")
	}
	return nil
}

// Samples returns the number of grid points. Call Validate first.
func (g Grid) Samples() int {
	return int(math.Floor(g.TMax/g.Dt)) + 1
}

// Time returns the time of sample i.
func (g Grid) Time(i int) float64 {
	return float64(i) * g.Dt
}

type Sample struct {
	T float64
	X State
}

// Trajectory is the output of one run. Times[i] and States[i] describe sample i.
type Trajectory struct {
	Times  []float64
	States []State
}

func (tr *Trajectory) Len() int {
	return len(tr.Times)
}

func (tr *Trajectory) At(i int) Sample {
	return Sample{T: tr.Times[i], X: tr.States[i]}
}

func (tr *Trajectory) Final() Sample {
	return tr.At(tr.Len() - 1)
}

// Series extracts component dim of every state in time order.
func (tr *Trajectory) Series(dim int) []float64 {
	out := make([]float64, len(tr.States))
	for i, s := range tr.States {
		out[i] = s[dim]
	}
	return out
}

// Finite reports whether every sample is free of NaN and Inf.
func (tr *Trajectory) Finite() bool {
	return tr.FirstNonFinite() < 0
}

// FirstNonFinite returns the index of the first sample containing NaN or Inf,
// or -1 if there is none.
func (tr *Trajectory) FirstNonFinite() int {
	for i, s := range tr.States {
		if !s.IsValid() {
			return i
		}
	}
	return -1
}
