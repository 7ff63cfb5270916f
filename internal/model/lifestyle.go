package model

import "fmt"

// Path verdicts for the lifestyle projection.
const (
	VerdictRightPath = "RIGHT_PATH"
	VerdictMixed     = "MIXED"
	VerdictWrongPath = "WRONG_PATH"
)

// HorizonHighlights are short model-written summaries per horizon.
type HorizonHighlights struct {
	M6  string `json:"6_months"`
	M12 string `json:"12_months"`
	M36 string `json:"36_months"`
}

// GoalEvaluationNote is the model's qualitative take on one goal's odds.
type GoalEvaluationNote struct {
	Goal               string `json:"goal"`
	ProbabilityPercent int    `json:"probability_percent"`
	Note               string `json:"note"`
}

// LifestyleMetrics carries the deterministic numbers. Whatever the model put
// here is overwritten with the locally computed values before responding.
type LifestyleMetrics struct {
	IncomeProjection        Horizon `json:"income_projection"`
	ExpensesProjection      Horizon `json:"expenses_projection"`
	SavingsProjection       Horizon `json:"savings_projection"`
	BrokeProbabilityPercent int     `json:"broke_probability_percent"`
	WealthIndex             int     `json:"wealth_index"`
}

// DebugFacts echoes the full deterministic fact sheet back to the caller.
type DebugFacts struct {
	ProjectionSummary
	ProjectedIncomeIncreasePercent12M float64 `json:"projected_income_increase_percent_12m"`
}

// LifestyleProjection is the /api/lifestyle-projection response.
type LifestyleProjection struct {
	TrajectorySummary  string               `json:"trajectory_summary"`
	PathVerdict        string               `json:"path_verdict"`
	DangerAlerts       []string             `json:"danger_alerts"`
	Actions            []string             `json:"actions"`
	IncomeGrowthAdvice string               `json:"income_growth_advice"`
	HorizonHighlights  HorizonHighlights    `json:"horizon_highlights"`
	GoalEvaluations    []GoalEvaluationNote `json:"goal_evaluations"`
	Metrics            LifestyleMetrics     `json:"metrics"`
	DebugFacts         DebugFacts           `json:"debug_facts"`
}

func (l *LifestyleProjection) Validate() error {
	if l.TrajectorySummary == "" {
		return fmt.Errorf("projection missing trajectory_summary")
	}
	switch l.PathVerdict {
	case VerdictRightPath, VerdictMixed, VerdictWrongPath:
	default:
		return fmt.Errorf("invalid path_verdict %q", l.PathVerdict)
	}
	if len(l.Actions) != 4 {
		return fmt.Errorf("expected 4 actions, got %d", len(l.Actions))
	}
	if l.IncomeGrowthAdvice == "" {
		return fmt.Errorf("projection missing income_growth_advice")
	}
	if l.HorizonHighlights.M6 == "" || l.HorizonHighlights.M12 == "" || l.HorizonHighlights.M36 == "" {
		return fmt.Errorf("projection missing horizon highlights")
	}
	return nil
}

// LifestyleCoachSystem is the advisor persona for trajectory assessment.
const LifestyleCoachSystem = "You are a professional financial life coach and planner. You will be given a set of " +
	"numerical projections and must produce an advisor-style assessment. Use the facts and do NOT invent numbers. " +
	"You know the Indian economy, Indian tax rules, cost of living across Indian cities, and Indian rupee valuations. " +
	"IMPORTANT: All numbers MUST be expressed strictly in Indian Rupees (₹). " +
	"Return ONLY valid JSON (no explanation) following the schema described."

// LifestylePromptFmt takes the indented facts JSON.
const LifestylePromptFmt = `FACTS:
%s

TASK:
1) Provide a short Trajectory Summary (1-3 sentences).
2) Provide a Path Verdict: one of ['RIGHT_PATH','MIXED','WRONG_PATH'] with a concise rationale.
3) Provide top 4 Danger Alerts (if any) as strings.
4) Provide 4 prioritized Actionable Changes (each as short sentence).
5) Give Income Growth Advice:
   - If projected 12-month income increase percent is:
     * <=15%% => "normal rise" actions,
     * 15-30%% => "strong growth" actions,
     * >30%% => "drastic increase" actions.
6) For each of the horizons (6 months, 12 months, 36 months) provide a short bullet summary of expected net savings and main risk.
7) For each user goal (if present) provide a short sentence on probability and what to change to improve it.
8) Return the JSON structure exactly as:

{
  "trajectory_summary": "string",
  "path_verdict": "RIGHT_PATH|MIXED|WRONG_PATH",
  "danger_alerts": ["string"],
  "actions": ["string", "string", "string", "string"],
  "income_growth_advice": "string",
  "horizon_highlights": {
      "6_months": "string",
      "12_months": "string",
      "36_months": "string"
  },
  "goal_evaluations": [ { "goal": "", "probability_percent": 0, "note": "" } ]
}`
