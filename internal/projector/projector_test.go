package projector

import (
	"math"
	"testing"
)

func TestMonthlySavings(t *testing.T) {
	tests := []struct {
		name   string
		cost   float64
		months int
		want   float64
	}{
		{"even split", 12000, 12, 1000},
		{"rounds to paise", 10000, 3, 3333.33},
		{"zero months defaults to 12", 15000, 0, 1250},
		{"negative months defaults to 12", 15000, -3, 1250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthlySavings(tt.cost, tt.months); got != tt.want {
				t.Errorf("MonthlySavings(%v, %d) = %v, want %v", tt.cost, tt.months, got, tt.want)
			}
		})
	}
}

func TestMonthlySavingsRoundTrip(t *testing.T) {
	// monthly * months stays within rounding tolerance of the cost
	for _, cost := range []float64{999, 15000, 130000, 1200000} {
		for _, months := range []int{1, 6, 12, 24} {
			monthly := MonthlySavings(cost, months)
			if diff := math.Abs(monthly*float64(months) - cost); diff > float64(months)*0.005 {
				t.Errorf("cost %v months %d: monthly %v drifts by %v", cost, months, monthly, diff)
			}
		}
	}
}

func TestSavingsPercent(t *testing.T) {
	if got := SavingsPercent(1250, 50000); got != 2.5 {
		t.Errorf("SavingsPercent(1250, 50000) = %v, want 2.5", got)
	}
	if got := SavingsPercent(1250, 0); got != 0 {
		t.Errorf("SavingsPercent with zero income = %v, want 0", got)
	}
	if got := SavingsPercent(1250, -100); got != 0 {
		t.Errorf("SavingsPercent with negative income = %v, want 0", got)
	}
}

func TestMonthsToReach(t *testing.T) {
	if got := MonthsToReach(10000, 3000); got != 4 {
		t.Errorf("MonthsToReach(10000, 3000) = %d, want 4", got)
	}
	if got := MonthsToReach(10000, 0); got != UnreachableMonths {
		t.Errorf("MonthsToReach with zero saving = %d, want sentinel", got)
	}
	if got := MonthsToReach(10000, -5); got != UnreachableMonths {
		t.Errorf("MonthsToReach with negative saving = %d, want sentinel", got)
	}
	if got := MonthsToReach(0, 500); got != 0 {
		t.Errorf("MonthsToReach(0, 500) = %d, want 0", got)
	}
}

func TestGoalProbability(t *testing.T) {
	tests := []struct {
		needed, deadline, want int
	}{
		{12, 12, 85},
		{13, 12, 55},
		{24, 12, 55},
		{25, 12, 20},
		{1, 0, 85},  // zero deadline treated as one month
		{2, 0, 20},  // beyond the floor with no doubled window
		{UnreachableMonths, 12, 20},
	}
	for _, tt := range tests {
		if got := GoalProbability(tt.needed, tt.deadline); got != tt.want {
			t.Errorf("GoalProbability(%d, %d) = %d, want %d", tt.needed, tt.deadline, got, tt.want)
		}
	}
}

func TestComputeOpportunityCost(t *testing.T) {
	oc, err := ComputeOpportunityCost(10000, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if oc.HoursOfWork != 100.0 {
		t.Errorf("hours = %v, want 100.0", oc.HoursOfWork)
	}
	if oc.FutureValue != 16105 {
		t.Errorf("future value = %v, want 16105", oc.FutureValue)
	}
}

func TestComputeOpportunityCostBadWage(t *testing.T) {
	for _, wage := range []float64{0, -50} {
		if _, err := ComputeOpportunityCost(10000, wage); err == nil {
			t.Errorf("wage %v: expected error, got nil", wage)
		}
	}
}

func TestFutureValue(t *testing.T) {
	if got := FutureValue(1000, 0.10, 1); math.Abs(got-1100) > 1e-9 {
		t.Errorf("FutureValue(1000, 0.10, 1) = %v, want 1100", got)
	}
	if got := FutureValue(1000, 0, 5); got != 1000 {
		t.Errorf("FutureValue with zero rate = %v, want 1000", got)
	}
}
