// Package projector holds the deterministic financial math that runs before
// any model call. Everything here is a pure function: no I/O, no state.
package projector

import (
	"errors"
	"math"
)

// UnreachableMonths is returned by MonthsToReach when the user saves nothing
// per month, i.e. the goal is effectively unreachable.
const UnreachableMonths = 1_000_000

// Opportunity-cost assumptions: a fixed 10% annual return over 5 years.
const (
	assumedAnnualReturn = 0.10
	assumedHorizonYears = 5
)

var ErrNonPositiveWage = errors.New("hourly wage must be positive")

// OpportunityCost reframes a purchase price as work hours and foregone
// investment growth.
type OpportunityCost struct {
	HoursOfWork float64 `json:"hours_of_work"`
	FutureValue float64 `json:"future_value_inr"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// MonthlySavings returns the required saving per month for a total cost.
// A missing or non-positive duration defaults to 12 months.
func MonthlySavings(cost float64, months int) float64 {
	if months <= 0 {
		months = 12
	}
	return round2(cost / float64(months))
}

// SavingsPercent expresses a monthly saving as a percentage of income.
// Returns 0 when income is not positive.
func SavingsPercent(monthlySaving, income float64) float64 {
	if income <= 0 {
		return 0
	}
	return round2(monthlySaving / income * 100)
}

// FutureValue compounds an amount at an annual rate over a number of years.
func FutureValue(amount, annualRate, years float64) float64 {
	return amount * math.Pow(1+annualRate, years)
}

// MonthsToReach returns how many whole months of saving are needed to reach
// goalAmount at the given monthly rate.
func MonthsToReach(goalAmount, monthlySaved float64) int {
	if monthlySaved <= 0 {
		return UnreachableMonths
	}
	return int(math.Ceil(goalAmount / monthlySaved))
}

// GoalProbability buckets a goal into a reachability percentage by comparing
// the months needed against the stated deadline. A deadline of 0 is treated
// as at least one month.
func GoalProbability(monthsNeeded, deadlineMonths int) int {
	floor := deadlineMonths
	if floor < 1 {
		floor = 1
	}
	switch {
	case monthsNeeded <= floor:
		return 85
	case monthsNeeded <= deadlineMonths*2:
		return 55
	default:
		return 20
	}
}

// ComputeOpportunityCost converts a purchase cost into hours of work at the
// given wage and the value the same money would reach if invested instead.
func ComputeOpportunityCost(cost, hourlyWage float64) (OpportunityCost, error) {
	if hourlyWage <= 0 {
		return OpportunityCost{}, ErrNonPositiveWage
	}
	return OpportunityCost{
		HoursOfWork: round1(cost / hourlyWage),
		FutureValue: math.Round(FutureValue(cost, assumedAnnualReturn, assumedHorizonYears)),
	}, nil
}
