package model

import "fmt"

// SavingsPlan is one tier of the three-tier savings advisory. Budget and
// allocation keep the model's own line items, so they stay free-form maps.
type SavingsPlan struct {
	MonthlyBudget        map[string]any `json:"monthly_budget"`
	InvestmentAllocation map[string]any `json:"investment_allocation"`
	LuxuryLimitINR       float64        `json:"luxury_limit_inr"`
	EmergencyFundPlan    string         `json:"emergency_fund_plan"`
	AdvisorNotes         string         `json:"advisor_notes"`
	Projection12Months   string         `json:"projection_12_months"`
}

func (p *SavingsPlan) validate(name string) error {
	if len(p.MonthlyBudget) == 0 {
		return fmt.Errorf("%s missing monthly_budget", name)
	}
	if len(p.InvestmentAllocation) == 0 {
		return fmt.Errorf("%s missing investment_allocation", name)
	}
	if p.EmergencyFundPlan == "" || p.AdvisorNotes == "" {
		return fmt.Errorf("%s missing advisory text", name)
	}
	return nil
}

// SavingsPlanSet is the /api/savings-advisor response.
type SavingsPlanSet struct {
	MinimalPlan  SavingsPlan `json:"minimal_plan"`
	BalancedPlan SavingsPlan `json:"balanced_plan"`
	PremiumPlan  SavingsPlan `json:"premium_plan"`
}

func (s *SavingsPlanSet) Validate() error {
	if err := s.MinimalPlan.validate("minimal_plan"); err != nil {
		return err
	}
	if err := s.BalancedPlan.validate("balanced_plan"); err != nil {
		return err
	}
	return s.PremiumPlan.validate("premium_plan")
}

// SavingsAdvisorSystem is the persona for the three-tier planner.
const SavingsAdvisorSystem = "You are a world-class Indian financial advisor. Your expertise includes: " +
	"budget optimization, household cashflow analysis, SIP planning, index funds, " +
	"gold vs equity balancing, long-term retirement strategy, inflation-adjusted " +
	"wealth planning, and behavioural finance. You create structured financial " +
	"plans with high clarity and realism, suitable for users with low financial knowledge. " +
	"All amounts are in Indian Rupees (₹). Respond with ONLY valid JSON matching the requested schema."
