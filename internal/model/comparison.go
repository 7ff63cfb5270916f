package model

import "fmt"

// UserProfile is parsed from the pipe-delimited profile string
// "name|age|occupation|monthly_income".
type UserProfile struct {
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Occupation    string  `json:"occupation"`
	MonthlyIncome float64 `json:"monthly_income"`
}

// Transaction is one row of the CSV transaction dump.
type Transaction struct {
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// SpendingSummary is the deterministic digest of one user's transactions,
// embedded into the comparison prompt so the model never totals anything.
type SpendingSummary struct {
	Profile            UserProfile        `json:"profile"`
	TotalSpendINR      float64            `json:"total_spend_inr"`
	SpendByCategory    map[string]float64 `json:"spend_by_category"`
	SavingsRatePercent float64            `json:"savings_rate_percent"`
}

// ComparisonInsight is the /api/compare-users response.
type ComparisonInsight struct {
	CurrentUserSummary string   `json:"current_user_summary"`
	OtherUserSummary   string   `json:"other_user_summary"`
	KeyDifferences     []string `json:"key_differences"`
	HabitsToAdopt      []string `json:"habits_to_adopt"`
	HabitsToAvoid      []string `json:"habits_to_avoid"`
	OverallInsight     string   `json:"overall_insight"`
}

func (c *ComparisonInsight) Validate() error {
	if c.CurrentUserSummary == "" || c.OtherUserSummary == "" {
		return fmt.Errorf("insight missing user summaries")
	}
	if len(c.KeyDifferences) == 0 {
		return fmt.Errorf("insight missing key_differences")
	}
	if c.OverallInsight == "" {
		return fmt.Errorf("insight missing overall_insight")
	}
	return nil
}

// ComparisonAnalystSystem is the persona for two-user spending comparison.
const ComparisonAnalystSystem = "You are GoalAura's spending comparison analyst. You compare two users' financial " +
	"behaviour from pre-computed spending summaries. Use only the numbers you are given; do not invent or recompute any. " +
	"Be specific and non-judgemental. All amounts are in Indian Rupees (₹). " +
	"Respond with ONLY a valid JSON object in this exact shape:\n" +
	`{"current_user_summary": "string", "other_user_summary": "string", "key_differences": ["string"], "habits_to_adopt": ["string"], "habits_to_avoid": ["string"], "overall_insight": "string"}`
