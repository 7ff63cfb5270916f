package service

import (
	"context"
	"fmt"

	"github.com/goalaura/goalaura-backend/internal/infrastructure/llm"
	"github.com/goalaura/goalaura-backend/internal/model"
)

// DecisionInput is the validated quantum-decision-tree request.
type DecisionInput struct {
	Situation     string
	MonthlyIncome float64
	SavingsINR    float64
	RiskProfile   string
}

// DecisionService evaluates a financial dilemma across four probabilistic
// paths in a single model call.
type DecisionService struct {
	llm llm.Client
}

func NewDecisionService(client llm.Client) *DecisionService {
	return &DecisionService{llm: client}
}

func (s *DecisionService) Evaluate(ctx context.Context, in DecisionInput) (model.DecisionAnalysis, error) {
	if s.llm == nil {
		return model.DecisionAnalysis{}, llm.ErrNotConfigured
	}

	prompt := fmt.Sprintf(`User Situation: %s
Monthly Income: ₹%.0f
Current Savings: ₹%.0f
Risk Profile: %s

TASK:
Evaluate the scenario using a Quantum Decision Tree (QDT), where each branch
represents a probabilistic mental model:

1. Immediate Gratification Path
2. Delayed Gratification Path
3. Risk-Averse Conservative Path
4. High-Utility Strategic Path

Return the output strictly in this JSON structure:

{
  "decision_rating": "Smart | Neutral | Risky",
  "recommended_choice": "string",
  "confidence_score": 0,
  "reasoning": {
    "financial_factors": "string",
    "psychological_factors": "string",
    "opportunity_cost_view": "string",
    "risk_analysis": "string"
  },
  "quantum_paths": [
    { "path_name": "Immediate Gratification", "outcome": "string", "probability": "percentage" },
    { "path_name": "Delayed Gratification", "outcome": "string", "probability": "percentage" },
    { "path_name": "Conservative Path", "outcome": "string", "probability": "percentage" },
    { "path_name": "Strategic Path", "outcome": "string", "probability": "percentage" }
  ],
  "final_advice": "string"
}`, in.Situation, in.MonthlyIncome, in.SavingsINR, in.RiskProfile)

	text, err := s.llm.Generate(ctx, llm.Request{
		System:   model.DecisionEngineSystem,
		Prompt:   prompt,
		JSONOnly: true,
	})
	if err != nil {
		return model.DecisionAnalysis{}, fmt.Errorf("evaluate decision: %w", err)
	}

	var analysis model.DecisionAnalysis
	if err := decodeValidated(text, &analysis); err != nil {
		return model.DecisionAnalysis{}, fmt.Errorf("evaluate decision: %w", err)
	}
	return analysis, nil
}
