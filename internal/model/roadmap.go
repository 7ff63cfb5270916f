package model

import "fmt"

// DreamRoadmap is the /api/dream-map response: a cost estimate and timeline
// paired with deterministic savings targets and model-written milestones.
// Constructed once per request, never mutated afterwards.
type DreamRoadmap struct {
	DreamType        string   `json:"dreamType"`
	EstimatedCost    float64  `json:"estimatedCost"`
	Months           int      `json:"months"`
	MonthlySaving    float64  `json:"monthlySaving"`
	SavingPercentage float64  `json:"savingPercentage"`
	Milestones       []string `json:"milestones"`
}

// FallbackRoadmap is returned when no model credential is configured. The
// single milestone tells the caller why the roadmap is empty.
func FallbackRoadmap() DreamRoadmap {
	return DreamRoadmap{
		DreamType: "unknown",
		Milestones: []string{
			"AI roadmap generation is currently unavailable. Please configure the Gemini API key and try again.",
		},
	}
}

// DreamInterpretation is the first model pass over the raw dream text.
type DreamInterpretation struct {
	DreamType       string `json:"dream_type"`
	PrimaryCostItem string `json:"primary_cost_item"`
}

func (d *DreamInterpretation) Validate() error {
	if d.DreamType == "" {
		return fmt.Errorf("interpretation missing dream_type")
	}
	if d.PrimaryCostItem == "" {
		return fmt.Errorf("interpretation missing primary_cost_item")
	}
	return nil
}

// MilestoneList is the final model pass: narrative milestones only, every
// number already fixed deterministically before the call.
type MilestoneList struct {
	Milestones []string `json:"milestones"`
}

func (m *MilestoneList) Validate() error {
	if len(m.Milestones) < 5 || len(m.Milestones) > 7 {
		return fmt.Errorf("expected 5-7 milestones, got %d", len(m.Milestones))
	}
	for i, ms := range m.Milestones {
		if ms == "" {
			return fmt.Errorf("milestone %d is empty", i)
		}
	}
	return nil
}

// DreamInterpreterSystem drives the classification pass.
const DreamInterpreterSystem = `You are GoalAura's dream interpreter. You turn a user's free-text financial dream into a structured classification.
All amounts are in Indian Rupees (₹). Do not invent numbers.
Respond with ONLY a valid JSON object in this exact shape:
{"dream_type": "a short category label for the dream", "primary_cost_item": "the single item or service that costs the most"}`

// BudgetEngineerSystem drives the tool-calling cost pass.
const BudgetEngineerSystem = "You are a Reverse Budget Engineer. Your task is to use the `get_real_world_cost` tool " +
	"to find the cost of the main item needed for the goal, then calculate a **Total Estimated Budget** " +
	"by adding 25% to the primary cost for miscellaneous expenses (licenses, initial stock, marketing, etc.). " +
	"State the Total Estimated Budget as an explicit ₹ amount."

// MilestonePlannerSystem drives the milestone pass.
const MilestonePlannerSystem = `You are GoalAura's financial planner. You write motivating, concrete savings milestones.
All amounts are in Indian Rupees (₹). Do NOT recompute or change any number you are given; use them as-is.
Respond with ONLY a valid JSON object in this exact shape:
{"milestones": ["milestone 1", "milestone 2", "..."]}
The milestones array must contain between 5 and 7 ordered steps from first saving to achieving the dream.`
