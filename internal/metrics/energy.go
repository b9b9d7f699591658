package metrics

import (
	"math"

	"github.com/san-kum/dampsim/internal/dynamo"
)

// EnergyDrift records the largest relative deviation of the mechanical
// energy from its value at the first observed sample.
type EnergyDrift struct {
	name          string
	initialEnergy float64
	maxDrift      float64
	samples       int
	dyn           dynamo.Hamiltonian
}

func NewEnergyDrift(dyn dynamo.Hamiltonian) *EnergyDrift {
	return &EnergyDrift{
		name: "energy_drift",
		dyn:  dyn,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(x dynamo.State, t float64) {
	energy := e.dyn.Energy(x)

	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		if math.IsNaN(drift) {
			drift = math.Inf(1)
		}
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}

// EnergyRatio is the final energy divided by the initial energy.
type EnergyRatio struct {
	initial float64
	current float64
	samples int
	dyn     dynamo.Hamiltonian
}

func NewEnergyRatio(dyn dynamo.Hamiltonian) *EnergyRatio {
	return &EnergyRatio{dyn: dyn}
}

func (e *EnergyRatio) Name() string { return "energy_ratio" }

func (e *EnergyRatio) Observe(x dynamo.State, t float64) {
	energy := e.dyn.Energy(x)
	if e.samples == 0 {
		e.initial = energy
	}
	e.current = energy
	e.samples++
}

func (e *EnergyRatio) Value() float64 {
	if e.samples == 0 || e.initial == 0 {
		return 0
	}
	return e.current / e.initial
}

func (e *EnergyRatio) Reset() {
	e.initial = 0
	e.current = 0
	e.samples = 0
}
