package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goalaura/goalaura-backend/internal/infrastructure/llm"
	"github.com/goalaura/goalaura-backend/internal/model"
)

// Deliberately carries wrong metrics and five danger alerts so the test can
// prove the service stamps the deterministic values back.
const lifestyleResponseJSON = `{
  "trajectory_summary": "Solid savings habit with moderate buffer risk.",
  "path_verdict": "MIXED",
  "danger_alerts": ["Thin emergency fund", "EMI load", "Variable spend creep", "No insurance", "One more alert"],
  "actions": ["Automate a SIP", "Cap variable expenses", "Top up the emergency fund", "Review the EMI terms"],
  "income_growth_advice": "A normal rise: negotiate at the next review cycle.",
  "horizon_highlights": {
    "6_months": "About ₹95,000 saved; watch the buffer.",
    "12_months": "Around ₹2.1L saved; EMI still the main drag.",
    "36_months": "Roughly ₹7L if the rate holds."
  },
  "goal_evaluations": [
    {"goal": "emergency fund", "probability_percent": 85, "note": "On track at the current rate."}
  ],
  "metrics": {
    "income_projection": {"6_months": 1, "12_months": 2, "36_months": 3},
    "expenses_projection": {"6_months": 1, "12_months": 2, "36_months": 3},
    "savings_projection": {"6_months": 1, "12_months": 2, "36_months": 3},
    "broke_probability_percent": 99,
    "wealth_index": 1
  }
}`

func lifestyleProfile() model.FinancialProfile {
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

func TestProjectOverridesModelMetrics(t *testing.T) {
	var prompt string
	fake := &fakeClient{
		generate: func(req llm.Request) (string, error) {
			prompt = req.Prompt
			return lifestyleResponseJSON, nil
		},
	}

	projection, err := NewLifestyleService(fake).Project(context.Background(), lifestyleProfile())
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	// Whatever metrics the model invented are replaced with the computed ones.
	if projection.Metrics.BrokeProbabilityPercent != 40 {
		t.Errorf("broke probability = %d, want 40", projection.Metrics.BrokeProbabilityPercent)
	}
	if projection.Metrics.WealthIndex != 22 {
		t.Errorf("wealth index = %d, want 22", projection.Metrics.WealthIndex)
	}
	if projection.Metrics.IncomeProjection.M12 != 54250.0 {
		t.Errorf("income 12m = %v, want 54250.0", projection.Metrics.IncomeProjection.M12)
	}

	if len(projection.DangerAlerts) != 4 {
		t.Errorf("danger alerts = %d, want clamp to 4", len(projection.DangerAlerts))
	}
	if projection.DebugFacts.ProjectedIncomeIncreasePercent12M != 8.5 {
		t.Errorf("projected income increase = %v, want 8.5", projection.DebugFacts.ProjectedIncomeIncreasePercent12M)
	}
	if projection.PathVerdict != model.VerdictMixed {
		t.Errorf("verdict = %q", projection.PathVerdict)
	}
	if !strings.Contains(prompt, `"savings_rate_percent": 30`) {
		t.Errorf("prompt should embed the computed fact sheet, got %q", prompt)
	}
}

func TestProjectRejectsBadVerdict(t *testing.T) {
	fake := &fakeClient{
		generate: func(llm.Request) (string, error) {
			return strings.Replace(lifestyleResponseJSON, `"MIXED"`, `"SOMEWHAT_OK"`, 1), nil
		},
	}
	_, err := NewLifestyleService(fake).Project(context.Background(), lifestyleProfile())
	if err == nil || !strings.Contains(err.Error(), "path_verdict") {
		t.Fatalf("error = %v, want a path_verdict failure", err)
	}
}

func TestProjectNilClient(t *testing.T) {
	_, err := NewLifestyleService(nil).Project(context.Background(), lifestyleProfile())
	if !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("error = %v, want ErrNotConfigured", err)
	}
}
