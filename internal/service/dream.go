package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/goalaura/goalaura-backend/internal/infrastructure/llm"
	"github.com/goalaura/goalaura-backend/internal/model"
	"github.com/goalaura/goalaura-backend/internal/pricing"
	"github.com/goalaura/goalaura-backend/internal/projector"
)

const defaultTargetMonths = 12

// DreamInput is the validated dream-map request.
type DreamInput struct {
	DreamText     string
	MonthlyIncome float64
	TargetMonths  int // 0 means not supplied
}

// DreamService turns a free-text dream into a savings roadmap: classify the
// dream, reverse-engineer its budget through the cost tool, derive the
// savings numbers locally, then let the model write the milestones.
type DreamService struct {
	llm llm.Client
}

func NewDreamService(client llm.Client) *DreamService {
	return &DreamService{llm: client}
}

// BuildRoadmap runs the full dream-mapping flow. Returns llm.ErrNotConfigured
// when no client is wired; the controller substitutes the fallback payload.
func (s *DreamService) BuildRoadmap(ctx context.Context, in DreamInput) (model.DreamRoadmap, error) {
	if s.llm == nil {
		return model.DreamRoadmap{}, llm.ErrNotConfigured
	}

	months := in.TargetMonths
	if months <= 0 {
		months = defaultTargetMonths
	}

	// Step 1: interpret the dream.
	text, err := s.llm.Generate(ctx, llm.Request{
		System:   model.DreamInterpreterSystem,
		Prompt:   fmt.Sprintf("Analyze this user dream and classify it. Dream: '%s'", in.DreamText),
		JSONOnly: true,
	})
	if err != nil {
		return model.DreamRoadmap{}, fmt.Errorf("interpret dream: %w", err)
	}
	var interp model.DreamInterpretation
	if err := decodeValidated(text, &interp); err != nil {
		return model.DreamRoadmap{}, fmt.Errorf("interpret dream: %w", err)
	}
	slog.Info("dream interpreted", "dream_type", interp.DreamType, "primary_cost_item", interp.PrimaryCostItem)

	// Step 2: reverse budget engineering via the cost tool round trip.
	budgetText, err := s.llm.GenerateWithTool(ctx, llm.Request{
		System: model.BudgetEngineerSystem,
		Prompt: fmt.Sprintf("Find the real-world cost for the primary item: %s. The location is Mumbai, India.", interp.PrimaryCostItem),
	}, llm.CostTool(), runCostTool)
	if err != nil {
		return model.DreamRoadmap{}, fmt.Errorf("budget engineering: %w", err)
	}

	cost := pricing.ParseAmount(budgetText)
	if cost <= 0 {
		slog.Warn("budget text unparseable, using fallback cost", "text", snippet(budgetText))
		cost = pricing.FallbackCost
	}

	// Step 3: the numbers are ours, not the model's.
	monthly := projector.MonthlySavings(cost, months)
	percent := projector.SavingsPercent(monthly, in.MonthlyIncome)

	// Step 4: milestones narrative.
	milestonePrompt := fmt.Sprintf(
		"Dream type: %s\nTotal estimated budget: ₹%.0f\nTimeline: %d months\nRequired monthly saving: ₹%.2f (%.2f%% of income)\n\nWrite the ordered savings milestones for this plan.",
		interp.DreamType, cost, months, monthly, percent,
	)
	text, err = s.llm.Generate(ctx, llm.Request{
		System:   model.MilestonePlannerSystem,
		Prompt:   milestonePrompt,
		JSONOnly: true,
	})
	if err != nil {
		return model.DreamRoadmap{}, fmt.Errorf("milestones: %w", err)
	}
	var milestones model.MilestoneList
	if err := decodeValidated(text, &milestones); err != nil {
		return model.DreamRoadmap{}, fmt.Errorf("milestones: %w", err)
	}

	return model.DreamRoadmap{
		DreamType:        interp.DreamType,
		EstimatedCost:    cost,
		Months:           months,
		MonthlySaving:    monthly,
		SavingPercentage: percent,
		Milestones:       milestones.Milestones,
	}, nil
}

// runCostTool is the local implementation behind the get_real_world_cost
// declaration.
func runCostTool(name string, args json.RawMessage) (string, error) {
	if name != llm.CostToolName {
		return "", fmt.Errorf("unknown tool %q", name)
	}
	var params struct {
		ItemQuery string `json:"item_query"`
		Location  string `json:"location"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return "", fmt.Errorf("bad tool arguments: %w", err)
	}
	if params.Location == "" {
		params.Location = "Mumbai, India"
	}
	return pricing.LookupCost(params.ItemQuery, params.Location), nil
}
