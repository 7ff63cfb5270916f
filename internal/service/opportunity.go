package service

import (
	"context"
	"fmt"

	"github.com/goalaura/goalaura-backend/internal/infrastructure/llm"
	"github.com/goalaura/goalaura-backend/internal/projector"
)

// Hourly wage assumption: 20 working days of 8 hours per month.
const hoursPerMonth = 160.0

// OpportunityInput is the validated opportunity-cost request.
type OpportunityInput struct {
	Item          string
	CostINR       float64
	MonthlyIncome float64
}

// OpportunityService reframes an impulse purchase as hours of work and
// foregone investment growth, then asks the model for the narrative.
type OpportunityService struct {
	llm llm.Client
}

func NewOpportunityService(client llm.Client) *OpportunityService {
	return &OpportunityService{llm: client}
}

// Visualize returns the four-section visualizer message for a purchase.
func (s *OpportunityService) Visualize(ctx context.Context, in OpportunityInput) (string, error) {
	if s.llm == nil {
		return "", llm.ErrNotConfigured
	}

	wage := in.MonthlyIncome / hoursPerMonth
	oc, err := projector.ComputeOpportunityCost(in.CostINR, wage)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	prompt := fmt.Sprintf(`A user is considering buying: %s for ₹%.0f.
Their monthly income is ₹%.0f, which works out to an hourly wage of ₹%.2f.

Pre-computed facts (use these numbers exactly, do not recompute):
- The purchase costs %.1f hours of their working life.
- Invested instead at 10%% annual return, the same money becomes ₹%.0f in 5 years.

Write a single motivational message with exactly these four labeled sections:
1. "Reality Check:" an honest assessment of the purchase against their income.
2. "Time & Money:" the work-hours framing and the 5-year invested future value.
3. "Smarter Alternatives:" two or three concrete alternatives for the same money.
4. "The 7-Day Challenge:" a delayed-gratification challenge to wait a week before deciding.

Keep it under 200 words, warm but direct, amounts in ₹.`,
		in.Item, in.CostINR, in.MonthlyIncome, wage, oc.HoursOfWork, oc.FutureValue)

	message, err := s.llm.Generate(ctx, llm.Request{
		System: "You are GoalAura's opportunity-cost visualizer, a friendly but candid Indian personal finance coach. Do not invent numbers; use exactly the figures supplied. All amounts in Indian Rupees (₹).",
		Prompt: prompt,
	})
	if err != nil {
		return "", fmt.Errorf("visualize opportunity cost: %w", err)
	}
	return message, nil
}
