package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goalaura/goalaura-backend/internal/infrastructure/llm"
	"github.com/goalaura/goalaura-backend/internal/model"
	"github.com/goalaura/goalaura-backend/internal/projector"
)

// LifestyleService projects a financial trajectory: deterministic facts
// first, one model call for the assessment, then the deterministic numbers
// are stamped back over whatever the model returned.
type LifestyleService struct {
	llm llm.Client
}

func NewLifestyleService(client llm.Client) *LifestyleService {
	return &LifestyleService{llm: client}
}

func (s *LifestyleService) Project(ctx context.Context, profile model.FinancialProfile) (model.LifestyleProjection, error) {
	if s.llm == nil {
		return model.LifestyleProjection{}, llm.ErrNotConfigured
	}

	facts := projector.Summarize(profile)
	debug := model.DebugFacts{
		ProjectionSummary:                 facts,
		ProjectedIncomeIncreasePercent12M: projector.IncomeGrowthPercent12M(facts),
	}

	factsJSON, err := json.MarshalIndent(debug, "", "  ")
	if err != nil {
		return model.LifestyleProjection{}, fmt.Errorf("marshal facts: %w", err)
	}

	text, err := s.llm.Generate(ctx, llm.Request{
		System:   model.LifestyleCoachSystem,
		Prompt:   fmt.Sprintf(model.LifestylePromptFmt, factsJSON),
		JSONOnly: true,
	})
	if err != nil {
		return model.LifestyleProjection{}, fmt.Errorf("lifestyle projection: %w", err)
	}

	var projection model.LifestyleProjection
	if err := decodeValidated(text, &projection); err != nil {
		return model.LifestyleProjection{}, fmt.Errorf("lifestyle projection: %w", err)
	}

	if len(projection.DangerAlerts) > 4 {
		projection.DangerAlerts = projection.DangerAlerts[:4]
	}

	// Metrics and debug facts are always the deterministic values, no matter
	// what the model wrote.
	projection.Metrics = model.LifestyleMetrics{
		IncomeProjection:        facts.IncomeProjection,
		ExpensesProjection:      facts.ExpensesProjection,
		SavingsProjection:       facts.SavingsProjection,
		BrokeProbabilityPercent: facts.BrokeProbabilityPercent,
		WealthIndex:             facts.WealthIndex,
	}
	projection.DebugFacts = debug

	return projection, nil
}
