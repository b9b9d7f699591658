package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/dampsim/internal/dynamo"
)

// CriticalDamping returns c_crit = 2·√(k·m).
func CriticalDamping(k, m float64) (float64, error) {
	prod := k * m
	if math.IsNaN(prod) || prod < 0 {
		return 0, fmt.Errorf("%w: sqrt of k*m=%g", dynamo.ErrDomain, prod)
	}
	return 2 * math.Sqrt(prod), nil
}
