package market

import (
	"fmt"
	"strconv"
)

// Cadence is a named contribution frequency.
type Cadence struct {
	Name           string
	Label          string
	PeriodsPerYear int
}

// Cadences lists the standard pay cadences offered by the UI.
var Cadences = []Cadence{
	{Name: "weekly", Label: "Weekly", PeriodsPerYear: 52},
	{Name: "biweekly", Label: "Bi-weekly", PeriodsPerYear: 26},
	{Name: "semimonthly", Label: "Semi-monthly", PeriodsPerYear: 24},
	{Name: "monthly", Label: "Monthly", PeriodsPerYear: 12},
}

// DefaultCadence matches a typical bi-weekly paycheck.
const DefaultCadence = "biweekly"

// ParseCadence resolves a cadence name or a raw periods-per-year integer.
// The named set is a convenience; any positive integer is a valid frequency.
func ParseCadence(s string) (Cadence, error) {
	for _, c := range Cadences {
		if c.Name == s {
			return c, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 {
			return Cadence{}, fmt.Errorf("cadence %q: periods per year must be at least 1", s)
		}
		if c, ok := CadenceByPeriods(n); ok {
			return c, nil
		}
		return Cadence{Name: s, Label: fmt.Sprintf("%d/year", n), PeriodsPerYear: n}, nil
	}
	return Cadence{}, fmt.Errorf("unknown cadence %q (weekly, biweekly, semimonthly, monthly, or an integer)", s)
}

// CadenceByPeriods returns the named cadence matching a frequency, if any.
func CadenceByPeriods(n int) (Cadence, bool) {
	for _, c := range Cadences {
		if c.PeriodsPerYear == n {
			return c, true
		}
	}
	return Cadence{}, false
}
