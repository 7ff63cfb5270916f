package model

// Goal is a named savings target with a deadline, attached to a profile.
type Goal struct {
	Name           string  `json:"name"`
	Target         float64 `json:"target"`
	DeadlineMonths int     `json:"deadline_months"`
}

// FinancialProfile is the full financial picture a user submits to the
// planning endpoints. All values are monthly INR amounts unless noted.
// Request-scoped: nothing here is ever persisted.
type FinancialProfile struct {
	MonthlyIncome    float64 `json:"monthly_income"`
	FixedExpenses    float64 `json:"fixed_expenses"`
	VariableExpenses float64 `json:"variable_expenses"`
	EMIObligations   float64 `json:"emi_obligations"`
	CurrentSavings   float64 `json:"current_savings"`
	Dependents       int     `json:"number_of_dependents"`
	RiskProfile      string  `json:"risk_profile"`
	// CityTier: 1=metro, 2=city, 3=smaller city. Nil means unknown.
	CityTier *int   `json:"city_tier,omitempty"`
	Goals    []Goal `json:"goals,omitempty"`
}
