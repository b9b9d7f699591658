package dynamo

import "fmt"

type Simulator struct {
	dyn        System
	integrator Integrator
}

func New(dyn System, integrator Integrator) *Simulator {
	return &Simulator{dyn: dyn, integrator: integrator}
}

// Run integrates from x0 over grid and returns the full trajectory.
// Sample i is computed from sample i-1 only.
func (s *Simulator) Run(x0 State, grid Grid) (*Trajectory, error) {
	if err := s.validate(x0, grid); err != nil {
		return nil, err
	}

	n := grid.Samples()
	result := &Trajectory{
		Times:  make([]float64, n),
		States: make([]State, n),
	}

	result.Times[0] = 0
	result.States[0] = x0.Clone()

	for i := 1; i < n; i++ {
		result.States[i] = s.integrator.Step(s.dyn, result.States[i-1], result.Times[i-1], grid.Dt)
		result.Times[i] = grid.Time(i)
	}

	return result, nil
}

func (s *Simulator) validate(x0 State, grid Grid) error {
	if v, ok := s.dyn.(Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	if err := grid.Validate(); err != nil {
		return err
	}
	if len(x0) != s.dyn.StateDim() {
		return InvalidParameter("state_dim", float64(len(x0)), fmt.Sprintf("want %d", s.dyn.StateDim()))
	}
	for i, v := range x0 {
		if !(State{v}).IsValid() {
			return InvalidParameter(fmt.Sprintf("x0[%d]", i), v, "must be finite")
		}
	}
	return nil
}
