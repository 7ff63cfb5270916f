package model

// Horizon holds a projected value at the three fixed horizons. The JSON keys
// are part of the API contract for lifestyle metrics and debug facts.
type Horizon struct {
	M6  float64 `json:"6_months"`
	M12 float64 `json:"12_months"`
	M36 float64 `json:"36_months"`
}

// GoalEvaluation is the deterministic reachability estimate for one goal.
type GoalEvaluation struct {
	Goal               string  `json:"goal"`
	Target             float64 `json:"target"`
	DeadlineMonths     int     `json:"deadline_months"`
	MonthsNeeded       int     `json:"months_needed_at_current_rate"`
	ProbabilityPercent int     `json:"probability_percent"`
}

// ProjectionSummary is the read-only fact sheet computed once per request
// from a FinancialProfile. It is embedded verbatim into the lifestyle prompt
// and echoed back to the caller as debug facts.
type ProjectionSummary struct {
	Income                float64 `json:"income"`
	FixedExpenses         float64 `json:"fixed_expenses"`
	VariableExpenses      float64 `json:"variable_expenses"`
	EMIObligations        float64 `json:"emi_obligations"`
	CurrentSavings        float64 `json:"current_savings"`
	Dependents            int     `json:"dependents"`
	MonthlyCurrentSavings float64 `json:"monthly_current_savings"`
	SavingsRatePercent    float64 `json:"savings_rate_percent"`
	EmergencyRecommended  float64 `json:"emergency_recommended"`
	GrowthRate            float64 `json:"growth_rate"`
	ColiRate              float64 `json:"coli_rate"`

	IncomeProjection   Horizon `json:"income_projection"`
	ExpensesProjection Horizon `json:"expenses_projection"`
	SavingsProjection  Horizon `json:"savings_projection"`

	Goals                   []GoalEvaluation `json:"goals"`
	BrokeProbabilityPercent int              `json:"broke_probability_percent"`
	WealthIndex             int              `json:"wealth_index"`
}
