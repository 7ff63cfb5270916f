package projector

import (
	"strings"

	"github.com/goalaura/goalaura-backend/internal/model"
)

// riskGrowthRate maps a declared risk tolerance to an assumed annual
// investment growth rate.
func riskGrowthRate(risk string) float64 {
	switch strings.ToLower(risk) {
	case "low":
		return 0.06
	case "high":
		return 0.11
	default:
		return 0.085
	}
}

// cityTierInflation maps a city tier to an assumed cost-of-living inflation
// rate. Unknown tier uses a blended default.
func cityTierInflation(tier *int) float64 {
	if tier == nil {
		return 0.065
	}
	switch *tier {
	case 1:
		return 0.07
	case 2:
		return 0.06
	case 3:
		return 0.05
	default:
		return 0.065
	}
}

// Summarize computes the deterministic projection summary for a profile.
func Summarize(p model.FinancialProfile) model.ProjectionSummary {
	income := p.MonthlyIncome
	monthlyNeeds := p.FixedExpenses + p.VariableExpenses

	net := income - p.FixedExpenses - p.VariableExpenses - p.EMIObligations
	if net < 0 {
		net = 0
	}
	savingsRate := 0.0
	if income > 0 {
		savingsRate = round2(net / income * 100)
	}
	emergency := monthlyNeeds * 3

	growth := riskGrowthRate(p.RiskProfile)
	coli := cityTierInflation(p.CityTier)

	goals := make([]model.GoalEvaluation, 0, len(p.Goals))
	for _, g := range p.Goals {
		remaining := 0.0
		if g.Target > p.CurrentSavings {
			remaining = g.Target - p.CurrentSavings
		}
		needed := MonthsToReach(remaining, net)
		goals = append(goals, model.GoalEvaluation{
			Goal:               g.Name,
			Target:             g.Target,
			DeadlineMonths:     g.DeadlineMonths,
			MonthsNeeded:       needed,
			ProbabilityPercent: GoalProbability(needed, g.DeadlineMonths),
		})
	}

	// Broke-probability heuristic. coverMonths is only defined on the
	// positive-savings branch; the wealth index below deliberately sees it as
	// 0 on the other branch, preserving the discontinuity of the original
	// heuristic rather than smoothing it out.
	var brokeProb int
	var coverMonths float64
	if net <= 0 {
		if p.CurrentSavings < emergency {
			brokeProb = 85
		} else {
			brokeProb = 60
		}
	} else {
		denom := monthlyNeeds
		if denom < 1 {
			denom = 1
		}
		coverMonths = p.CurrentSavings / denom
		switch {
		case coverMonths >= 6:
			brokeProb = 10
		case coverMonths >= 3:
			brokeProb = 30
		default:
			brokeProb = int(70 - savingsRate)
			if brokeProb < 20 {
				brokeProb = 20
			}
			if brokeProb > 90 {
				brokeProb = 90
			}
		}
	}

	wealth := int(savingsRate*0.6 + coverMonths*4)
	if wealth < 0 {
		wealth = 0
	}
	if wealth > 100 {
		wealth = 100
	}

	return model.ProjectionSummary{
		Income:                income,
		FixedExpenses:         p.FixedExpenses,
		VariableExpenses:      p.VariableExpenses,
		EMIObligations:        p.EMIObligations,
		CurrentSavings:        p.CurrentSavings,
		Dependents:            p.Dependents,
		MonthlyCurrentSavings: net,
		SavingsRatePercent:    savingsRate,
		EmergencyRecommended:  emergency,
		GrowthRate:            growth,
		ColiRate:              coli,
		IncomeProjection: model.Horizon{
			M6:  round2(FutureValue(income, growth, 0.5)),
			M12: round2(FutureValue(income, growth, 1.0)),
			M36: round2(FutureValue(income, growth, 3.0)),
		},
		ExpensesProjection: model.Horizon{
			M6:  round2(FutureValue(monthlyNeeds, coli, 0.5)),
			M12: round2(FutureValue(monthlyNeeds, coli, 1.0)),
			M36: round2(FutureValue(monthlyNeeds, coli, 3.0)),
		},
		SavingsProjection: model.Horizon{
			M6:  round2(p.CurrentSavings + net*6),
			M12: round2(p.CurrentSavings + net*12),
			M36: round2(p.CurrentSavings + net*36),
		},
		Goals:                   goals,
		BrokeProbabilityPercent: brokeProb,
		WealthIndex:             wealth,
	}
}

// IncomeGrowthPercent12M is the projected 12-month income increase relative
// to current income, used to pick the tone of income growth advice.
func IncomeGrowthPercent12M(s model.ProjectionSummary) float64 {
	if s.Income <= 0 {
		return 0
	}
	return round2((s.IncomeProjection.M12 - s.Income) / s.Income * 100)
}
