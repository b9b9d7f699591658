package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidParameter indicates a physical parameter, grid value or
	// initial state outside its valid range.
	ErrInvalidParameter = errors.New("dynamo: invalid parameter")

	// ErrDomain indicates a closed-form calculation outside its mathematical domain.
	ErrDomain = errors.New("dynamo: argument outside function domain")
)

// ParameterError reports which parameter was rejected and why.
type ParameterError struct {
	Name   string
	Value  float64
	Reason string
}

// InvalidParameter builds a ParameterError for name.
func InvalidParameter(name string, value float64, reason string) *ParameterError {
	return &ParameterError{Name: name, Value: value, Reason: reason}
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s=%g %s", ErrInvalidParameter, e.Name, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}
