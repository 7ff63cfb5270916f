package projector

import (
	"testing"

	"github.com/goalaura/goalaura-backend/internal/model"
)

func baseProfile() model.FinancialProfile {
	return model.FinancialProfile{
		MonthlyIncome:    50000,
		FixedExpenses:    20000,
		VariableExpenses: 10000,
		EMIObligations:   5000,
		CurrentSavings:   30000,
		Dependents:       2,
		RiskProfile:      "medium",
	}
}

func TestSummarizeBaseScenario(t *testing.T) {
	s := Summarize(baseProfile())

	if s.SavingsRatePercent != 30.0 {
		t.Errorf("savings rate = %v, want 30.0", s.SavingsRatePercent)
	}
	if s.MonthlyCurrentSavings != 15000 {
		t.Errorf("monthly savings = %v, want 15000", s.MonthlyCurrentSavings)
	}
	if s.EmergencyRecommended != 90000 {
		t.Errorf("emergency fund = %v, want 90000", s.EmergencyRecommended)
	}
	if s.GrowthRate != 0.085 {
		t.Errorf("growth rate = %v, want 0.085", s.GrowthRate)
	}
	if s.ColiRate != 0.065 {
		t.Errorf("coli rate = %v, want 0.065", s.ColiRate)
	}
	if s.IncomeProjection.M12 != 54250.0 {
		t.Errorf("income 12m = %v, want 54250.0", s.IncomeProjection.M12)
	}
	if s.ExpensesProjection.M12 != 31950.0 {
		t.Errorf("expenses 12m = %v, want 31950.0", s.ExpensesProjection.M12)
	}
	if s.SavingsProjection.M12 != 210000.0 {
		t.Errorf("savings 12m = %v, want 210000.0", s.SavingsProjection.M12)
	}
	// coverMonths = 30000/30000 = 1 -> broke prob from savings rate branch
	if s.BrokeProbabilityPercent != 40 {
		t.Errorf("broke probability = %d, want 40", s.BrokeProbabilityPercent)
	}
	// wealth = int(30*0.6 + 1*4) = 22
	if s.WealthIndex != 22 {
		t.Errorf("wealth index = %d, want 22", s.WealthIndex)
	}
}

func TestSummarizeCityTiers(t *testing.T) {
	tiers := map[int]float64{1: 0.07, 2: 0.06, 3: 0.05}
	for tier, want := range tiers {
		p := baseProfile()
		tier := tier
		p.CityTier = &tier
		if got := Summarize(p).ColiRate; got != want {
			t.Errorf("tier %d coli = %v, want %v", tier, got, want)
		}
	}
}

func TestSummarizeRiskRates(t *testing.T) {
	rates := map[string]float64{"low": 0.06, "medium": 0.085, "high": 0.11, "HIGH": 0.11, "unknown": 0.085}
	for risk, want := range rates {
		p := baseProfile()
		p.RiskProfile = risk
		if got := Summarize(p).GrowthRate; got != want {
			t.Errorf("risk %q growth = %v, want %v", risk, got, want)
		}
	}
}

func TestSummarizeBrokeWhenNotSaving(t *testing.T) {
	p := baseProfile()
	p.FixedExpenses = 40000
	p.VariableExpenses = 10000
	p.EMIObligations = 5000 // net clamps to 0

	p.CurrentSavings = 10000 // below 150000 emergency fund
	if got := Summarize(p).BrokeProbabilityPercent; got != 85 {
		t.Errorf("uncovered broke probability = %d, want 85", got)
	}

	p.CurrentSavings = 200000 // covers the emergency fund
	s := Summarize(p)
	if s.BrokeProbabilityPercent != 60 {
		t.Errorf("covered broke probability = %d, want 60", s.BrokeProbabilityPercent)
	}
	// coverMonths is not computed on this branch, so even large savings do
	// not lift the wealth index.
	if s.WealthIndex != 0 {
		t.Errorf("wealth index = %d, want 0 on the non-saving branch", s.WealthIndex)
	}
}

func TestSummarizeCoverMonthsBuckets(t *testing.T) {
	p := baseProfile() // monthly needs 30000
	p.CurrentSavings = 30000 * 6
	if got := Summarize(p).BrokeProbabilityPercent; got != 10 {
		t.Errorf(">=6 months cover: broke probability = %d, want 10", got)
	}
	p.CurrentSavings = 30000 * 3
	if got := Summarize(p).BrokeProbabilityPercent; got != 30 {
		t.Errorf(">=3 months cover: broke probability = %d, want 30", got)
	}
}

func TestSummarizeGoals(t *testing.T) {
	p := baseProfile()
	p.Goals = []model.Goal{
		{Name: "emergency fund", Target: 120000, DeadlineMonths: 12}, // needs 6 months at 15000
		{Name: "house deposit", Target: 2000000, DeadlineMonths: 12}, // far out of reach
		{Name: "already funded", Target: 20000, DeadlineMonths: 6},   // below current savings
	}
	s := Summarize(p)
	if len(s.Goals) != 3 {
		t.Fatalf("expected 3 goal evaluations, got %d", len(s.Goals))
	}
	if s.Goals[0].MonthsNeeded != 6 || s.Goals[0].ProbabilityPercent != 85 {
		t.Errorf("goal 0: got months=%d prob=%d, want 6/85", s.Goals[0].MonthsNeeded, s.Goals[0].ProbabilityPercent)
	}
	if s.Goals[1].ProbabilityPercent != 20 {
		t.Errorf("goal 1: prob = %d, want 20", s.Goals[1].ProbabilityPercent)
	}
	if s.Goals[2].MonthsNeeded != 0 || s.Goals[2].ProbabilityPercent != 85 {
		t.Errorf("goal 2: got months=%d prob=%d, want 0/85", s.Goals[2].MonthsNeeded, s.Goals[2].ProbabilityPercent)
	}
}

func TestIncomeGrowthPercent12M(t *testing.T) {
	s := Summarize(baseProfile())
	if got := IncomeGrowthPercent12M(s); got != 8.5 {
		t.Errorf("income growth percent = %v, want 8.5", got)
	}
	if got := IncomeGrowthPercent12M(model.ProjectionSummary{}); got != 0 {
		t.Errorf("zero income growth percent = %v, want 0", got)
	}
}
