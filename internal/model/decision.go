package model

import "fmt"

// DecisionReasoning is the four-angle rationale behind a decision rating.
type DecisionReasoning struct {
	FinancialFactors     string `json:"financial_factors"`
	PsychologicalFactors string `json:"psychological_factors"`
	OpportunityCostView  string `json:"opportunity_cost_view"`
	RiskAnalysis         string `json:"risk_analysis"`
}

// QuantumPath is one probabilistic branch of the decision tree.
type QuantumPath struct {
	PathName    string `json:"path_name"`
	Outcome     string `json:"outcome"`
	Probability string `json:"probability"`
}

// DecisionAnalysis is the /api/quantum-decision-tree response.
type DecisionAnalysis struct {
	DecisionRating    string            `json:"decision_rating"`
	RecommendedChoice string            `json:"recommended_choice"`
	ConfidenceScore   int               `json:"confidence_score"`
	Reasoning         DecisionReasoning `json:"reasoning"`
	QuantumPaths      []QuantumPath     `json:"quantum_paths"`
	FinalAdvice       string            `json:"final_advice"`
}

func (d *DecisionAnalysis) Validate() error {
	if d.DecisionRating == "" {
		return fmt.Errorf("analysis missing decision_rating")
	}
	if d.RecommendedChoice == "" {
		return fmt.Errorf("analysis missing recommended_choice")
	}
	if d.ConfidenceScore < 0 || d.ConfidenceScore > 100 {
		return fmt.Errorf("confidence_score %d out of range 0-100", d.ConfidenceScore)
	}
	if d.Reasoning.FinancialFactors == "" || d.Reasoning.RiskAnalysis == "" {
		return fmt.Errorf("analysis missing reasoning fields")
	}
	if len(d.QuantumPaths) != 4 {
		return fmt.Errorf("expected 4 quantum paths, got %d", len(d.QuantumPaths))
	}
	for i, p := range d.QuantumPaths {
		if p.PathName == "" || p.Outcome == "" {
			return fmt.Errorf("quantum path %d incomplete", i)
		}
	}
	if d.FinalAdvice == "" {
		return fmt.Errorf("analysis missing final_advice")
	}
	return nil
}

// DecisionEngineSystem is the advisor persona for dilemma evaluation.
const DecisionEngineSystem = "You are GoalAura's Quantum Decision Tree Engine: a professional " +
	"financial advisor trained in behavioral psychology, risk modeling, " +
	"loss-aversion theory, decision science, and long-term planning. " +
	"Your job is to evaluate dilemmas and output a structured recommendation. " +
	"All amounts are in Indian Rupees (₹). Respond with ONLY valid JSON matching the requested schema."
