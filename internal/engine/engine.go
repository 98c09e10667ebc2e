// Package engine computes compound growth projections for recurring
// contributions. It is pure arithmetic: no I/O, no state, no clock.
package engine

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a projection input violates its
// precondition. Callers are expected to clamp UI-originated values before
// invoking Project; the engine rejects rather than silently corrects.
var ErrInvalidInput = errors.New("invalid projection input")

// Input holds the scalar parameters of one projection.
type Input struct {
	// Contribution is the amount deposited each period, in currency units.
	Contribution float64

	// Frequency is the number of contribution periods per year. The UI
	// offers a fixed set of cadences, but any positive integer is accepted.
	Frequency int

	// Years is the investment horizon in whole years.
	Years int

	// AnnualReturnPct is the expected annual return as a percentage,
	// e.g. 10.5 for 10.5%. Negative values model a loss scenario.
	AnnualReturnPct float64
}

// Result holds the projected outcome.
type Result struct {
	// Total is the final balance after all periods.
	Total float64

	// Contributed is the sum of all deposits with no growth applied.
	Contributed float64

	// Earnings is Total minus Contributed. It can only be negative when
	// the annual return is negative.
	Earnings float64

	// YearEnd holds the balance at the end of each completed year, in
	// chronological order. Its length always equals Input.Years, and the
	// last entry equals Total.
	YearEnd []float64
}

// Validate reports whether the input satisfies the engine's preconditions.
func (in Input) Validate() error {
	switch {
	case in.Contribution < 0:
		return fmt.Errorf("%w: contribution %.2f is negative", ErrInvalidInput, in.Contribution)
	case math.IsNaN(in.Contribution) || math.IsInf(in.Contribution, 0):
		return fmt.Errorf("%w: contribution is not finite", ErrInvalidInput)
	case in.Frequency < 1:
		return fmt.Errorf("%w: frequency %d must be at least 1", ErrInvalidInput, in.Frequency)
	case in.Years < 0:
		return fmt.Errorf("%w: years %d is negative", ErrInvalidInput, in.Years)
	case math.IsNaN(in.AnnualReturnPct) || math.IsInf(in.AnnualReturnPct, 0):
		return fmt.Errorf("%w: annual return is not finite", ErrInvalidInput)
	}
	return nil
}

// Project simulates an ordinary annuity with start-of-period deposits:
// each period the contribution is added first, then the whole balance earns
// one period of return. Compounding runs period by period, not through the
// closed-form annuity formula, so per-period rates could vary later without
// changing the loop.
//
// An overflow to +Inf from an extreme rate/horizon combination is allowed to
// propagate; display policy belongs to the caller.
func Project(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	periodicRate := in.AnnualReturnPct / 100 / float64(in.Frequency)
	totalPeriods := in.Frequency * in.Years

	yearEnd := make([]float64, 0, in.Years)
	balance := 0.0
	for p := 1; p <= totalPeriods; p++ {
		balance = (balance + in.Contribution) * (1 + periodicRate)
		if p%in.Frequency == 0 {
			yearEnd = append(yearEnd, balance)
		}
	}

	contributed := in.Contribution * float64(totalPeriods)
	return Result{
		Total:       balance,
		Contributed: contributed,
		Earnings:    balance - contributed,
		YearEnd:     yearEnd,
	}, nil
}
