package service

import (
	"context"
	"fmt"

	"github.com/goalaura/goalaura-backend/internal/infrastructure/llm"
	"github.com/goalaura/goalaura-backend/internal/model"
)

// SavingsInput is the validated savings-advisor request.
type SavingsInput struct {
	Profile             model.FinancialProfile
	SavingsGoal         string
	LifestylePreference string // minimal | balanced | premium
}

// SavingsService produces the three-tier savings and investment plan.
type SavingsService struct {
	llm llm.Client
}

func NewSavingsService(client llm.Client) *SavingsService {
	return &SavingsService{llm: client}
}

func (s *SavingsService) Plan(ctx context.Context, in SavingsInput) (model.SavingsPlanSet, error) {
	if s.llm == nil {
		return model.SavingsPlanSet{}, llm.ErrNotConfigured
	}

	p := in.Profile
	prompt := fmt.Sprintf(`User Financial Data:
- Monthly Income: ₹%.0f
- Fixed Expenses: ₹%.0f
- Variable Expenses: ₹%.0f
- Number of Dependents: %d
- EMI Obligations: ₹%.0f
- Current Savings: ₹%.0f
- Risk Profile: %s
- Lifestyle Preference: %s
- Savings Goal: %s

TASK:
Create a savings & investment plan with three distinct difficulty levels:

1. Minimalism Plan (High Discipline, Maximum Savings)
2. Balanced Plan (Moderate Lifestyle + Strong Investments)
3. Premium Plan (Higher Lifestyle Comfort Without Compromising Future Stability)

For each plan, include ALL of the following:
- Monthly Budget Breakdown (₹ values + percentages)
- Recommended Investment Allocation (SIP, Index Funds, Gold, Bonds, PPF)
- Luxury Spending Limit (₹)
- Emergency Fund Strategy
- Risk Adjusted Advice
- High-level 12-month projection
- Psychological guidance (behavioural finance insights)

Return the output STRICTLY in this JSON format:

{
  "minimal_plan": {
    "monthly_budget": {},
    "investment_allocation": {},
    "luxury_limit_inr": 0,
    "emergency_fund_plan": "string",
    "advisor_notes": "string",
    "projection_12_months": "string"
  },
  "balanced_plan": {
    "monthly_budget": {},
    "investment_allocation": {},
    "luxury_limit_inr": 0,
    "emergency_fund_plan": "string",
    "advisor_notes": "string",
    "projection_12_months": "string"
  },
  "premium_plan": {
    "monthly_budget": {},
    "investment_allocation": {},
    "luxury_limit_inr": 0,
    "emergency_fund_plan": "string",
    "advisor_notes": "string",
    "projection_12_months": "string"
  }
}`,
		p.MonthlyIncome, p.FixedExpenses, p.VariableExpenses, p.Dependents,
		p.EMIObligations, p.CurrentSavings, p.RiskProfile,
		in.LifestylePreference, in.SavingsGoal)

	text, err := s.llm.Generate(ctx, llm.Request{
		System:   model.SavingsAdvisorSystem,
		Prompt:   prompt,
		JSONOnly: true,
	})
	if err != nil {
		return model.SavingsPlanSet{}, fmt.Errorf("savings plan: %w", err)
	}

	var plans model.SavingsPlanSet
	if err := decodeValidated(text, &plans); err != nil {
		return model.SavingsPlanSet{}, fmt.Errorf("savings plan: %w", err)
	}
	return plans, nil
}
