package regime

import (
	"fmt"
	"math"
	"strings"
)

type Label int

const (
	Underdamped Label = iota
	CriticallyDamped
	Overdamped
)

var labelNames = map[Label]string{
	Underdamped:      "Underdamped",
	CriticallyDamped: "Critically damped",
	Overdamped:       "Overdamped",
}

func (l Label) String() string {
	if name, ok := labelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Label(%d)", int(l))
}

// Key is the lower-case identifier used in config files and exports.
func (l Label) Key() string {
	return strings.ReplaceAll(strings.ToLower(l.String()), " ", "_")
}

// Labels returns every label in canonical order.
func Labels() []Label {
	return []Label{Underdamped, CriticallyDamped, Overdamped}
}

// ParseLabel accepts display names and keys in any case, with spaces,
// hyphens or underscores as separators.
func ParseLabel(s string) (Label, error) {
	norm := strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(strings.TrimSpace(s)))
	for _, l := range Labels() {
		if l.Key() == norm {
			return l, nil
		}
	}
	if norm == "critical" {
		return CriticallyDamped, nil
	}
	return 0, fmt.Errorf("unknown regime: %s", s)
}

// classifyTolerance is the relative band around c² = 4mk treated as critical.
const classifyTolerance = 1e-9

// Classify returns the regime implied by the sign of c² - 4mk.
func Classify(m, k, c float64) Label {
	disc := c*c - 4*m*k
	scale := math.Max(c*c, 4*m*k)
	if math.Abs(disc) <= classifyTolerance*scale {
		return CriticallyDamped
	}
	if disc < 0 {
		return Underdamped
	}
	return Overdamped
}
