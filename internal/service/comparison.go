package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/goalaura/goalaura-backend/internal/infrastructure/llm"
	"github.com/goalaura/goalaura-backend/internal/model"
	"github.com/goalaura/goalaura-backend/internal/projector"
)

// CompareInput carries the raw delimited payloads of the compare-users
// request. Parsing failures surface as *FormatError (HTTP 400).
type CompareInput struct {
	CurrentUserInfo         string
	OtherUserInfo           string
	CurrentUserTransactions string
	OtherUserTransactions   string
}

// ComparisonService digests two users' transaction dumps deterministically
// and asks the model for the behavioural comparison.
type ComparisonService struct {
	llm llm.Client
}

func NewComparisonService(client llm.Client) *ComparisonService {
	return &ComparisonService{llm: client}
}

func (s *ComparisonService) Compare(ctx context.Context, in CompareInput) (model.ComparisonInsight, error) {
	// Parse before the client check so malformed input is still a 400 on a
	// degraded server.
	current, err := summarizeUser("current_user", in.CurrentUserInfo, in.CurrentUserTransactions)
	if err != nil {
		return model.ComparisonInsight{}, err
	}
	other, err := summarizeUser("other_user", in.OtherUserInfo, in.OtherUserTransactions)
	if err != nil {
		return model.ComparisonInsight{}, err
	}

	if s.llm == nil {
		return model.ComparisonInsight{}, llm.ErrNotConfigured
	}

	payload, err := json.MarshalIndent(map[string]model.SpendingSummary{
		"current_user": current,
		"other_user":   other,
	}, "", "  ")
	if err != nil {
		return model.ComparisonInsight{}, fmt.Errorf("marshal summaries: %w", err)
	}

	prompt := fmt.Sprintf(`Pre-computed spending summaries for two users:

%s

TASK:
Compare the two users' spending behaviour. Focus on category-level habits,
savings rates, and what each could learn from the other. The comparison is
for the current user's benefit.`, payload)

	text, err := s.llm.Generate(ctx, llm.Request{
		System:   model.ComparisonAnalystSystem,
		Prompt:   prompt,
		JSONOnly: true,
	})
	if err != nil {
		return model.ComparisonInsight{}, fmt.Errorf("compare users: %w", err)
	}

	var insight model.ComparisonInsight
	if err := decodeValidated(text, &insight); err != nil {
		return model.ComparisonInsight{}, fmt.Errorf("compare users: %w", err)
	}
	return insight, nil
}

// summarizeUser parses one profile string plus CSV dump and computes the
// deterministic spending digest.
func summarizeUser(field, info, transactions string) (model.SpendingSummary, error) {
	profile, err := parseProfile(field+"_info", info)
	if err != nil {
		return model.SpendingSummary{}, err
	}
	txns, err := parseTransactions(field+"_transactions", transactions)
	if err != nil {
		return model.SpendingSummary{}, err
	}

	total := 0.0
	byCategory := make(map[string]float64, 8)
	for _, t := range txns {
		total += t.Amount
		byCategory[t.Category] += t.Amount
	}

	return model.SpendingSummary{
		Profile:            profile,
		TotalSpendINR:      total,
		SpendByCategory:    byCategory,
		SavingsRatePercent: projector.SavingsPercent(profile.MonthlyIncome-total, profile.MonthlyIncome),
	}, nil
}

// parseProfile parses "name|age|occupation|monthly_income".
func parseProfile(field, raw string) (model.UserProfile, error) {
	parts := strings.Split(strings.TrimSpace(raw), "|")
	if len(parts) != 4 {
		return model.UserProfile{}, &FormatError{Field: field, Reason: "expected 4 pipe-delimited fields: name|age|occupation|monthly_income"}
	}
	age, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return model.UserProfile{}, &FormatError{Field: field, Reason: "age is not an integer"}
	}
	income, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil || income <= 0 {
		return model.UserProfile{}, &FormatError{Field: field, Reason: "monthly_income is not a positive number"}
	}
	return model.UserProfile{
		Name:          strings.TrimSpace(parts[0]),
		Age:           age,
		Occupation:    strings.TrimSpace(parts[2]),
		MonthlyIncome: income,
	}, nil
}

// parseTransactions parses a CSV dump with header
// date,category,description,amount.
func parseTransactions(field, raw string) ([]model.Transaction, error) {
	reader := csv.NewReader(strings.NewReader(strings.TrimSpace(raw)))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, &FormatError{Field: field, Reason: "invalid CSV: " + err.Error()}
	}
	if len(records) < 2 {
		return nil, &FormatError{Field: field, Reason: "expected a header row and at least one transaction"}
	}
	header := records[0]
	if len(header) != 4 || !strings.EqualFold(strings.TrimSpace(header[0]), "date") {
		return nil, &FormatError{Field: field, Reason: "expected header: date,category,description,amount"}
	}

	txns := make([]model.Transaction, 0, len(records)-1)
	for i, rec := range records[1:] {
		amount, err := strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
		if err != nil {
			return nil, &FormatError{Field: field, Reason: fmt.Sprintf("row %d: amount is not a number", i+1)}
		}
		txns = append(txns, model.Transaction{
			Date:        strings.TrimSpace(rec[0]),
			Category:    strings.TrimSpace(rec[1]),
			Description: strings.TrimSpace(rec[2]),
			Amount:      amount,
		})
	}
	return txns, nil
}
