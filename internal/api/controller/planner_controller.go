package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goalaura/goalaura-backend/internal/api/response"
	"github.com/goalaura/goalaura-backend/internal/model"
	"github.com/goalaura/goalaura-backend/internal/service"
)

// PlannerController serves the savings-advisor and lifestyle-projection
// endpoints, both of which take a full financial profile.
type PlannerController struct {
	savings   *service.SavingsService
	lifestyle *service.LifestyleService
}

func NewPlannerController(savings *service.SavingsService, lifestyle *service.LifestyleService) *PlannerController {
	return &PlannerController{savings: savings, lifestyle: lifestyle}
}

type SavingsAdvisorRequest struct {
	MonthlyIncome       float64 `json:"monthly_income" binding:"required,gt=0"`
	FixedExpenses       float64 `json:"fixed_expenses" binding:"gte=0"`
	VariableExpenses    float64 `json:"variable_expenses" binding:"gte=0"`
	NumberOfDependents  int     `json:"number_of_dependents" binding:"gte=0"`
	SavingsGoal         string  `json:"savings_goal" binding:"required"`
	RiskProfile         string  `json:"risk_profile" binding:"required,oneof=low medium high"`
	CurrentSavings      float64 `json:"current_savings" binding:"gte=0"`
	EMIObligations      float64 `json:"emi_obligations" binding:"gte=0"`
	LifestylePreference string  `json:"lifestyle_preference" binding:"omitempty,oneof=minimal balanced premium"`
}

// SavingsAdvisor produces the three-tier savings plan.
// @Summary Three-tier savings advisor
// @Accept json
// @Produce json
// @Param request body SavingsAdvisorRequest true "financial profile"
// @Success 200 {object} model.SavingsPlanSet
// @Router /api/savings-advisor [post]
func (ctrl *PlannerController) SavingsAdvisor(c *gin.Context) {
	var req SavingsAdvisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if req.LifestylePreference == "" {
		req.LifestylePreference = "balanced"
	}

	plans, err := ctrl.savings.Plan(c.Request.Context(), service.SavingsInput{
		Profile: model.FinancialProfile{
			MonthlyIncome:    req.MonthlyIncome,
			FixedExpenses:    req.FixedExpenses,
			VariableExpenses: req.VariableExpenses,
			EMIObligations:   req.EMIObligations,
			CurrentSavings:   req.CurrentSavings,
			Dependents:       req.NumberOfDependents,
			RiskProfile:      req.RiskProfile,
		},
		SavingsGoal:         req.SavingsGoal,
		LifestylePreference: req.LifestylePreference,
	})
	if err != nil {
		slog.Error("savings-advisor failed", "error", err)
		response.Internal(c, "Savings planner failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, plans)
}

type GoalPayload struct {
	Name           string  `json:"name" binding:"required"`
	Target         float64 `json:"target" binding:"required,gt=0"`
	DeadlineMonths int     `json:"deadline_months" binding:"gte=0"`
}

type LifestyleProjectionRequest struct {
	MonthlyIncome      float64       `json:"monthly_income" binding:"required,gt=0"`
	FixedExpenses      float64       `json:"fixed_expenses" binding:"gte=0"`
	VariableExpenses   float64       `json:"variable_expenses" binding:"gte=0"`
	EMIObligations     float64       `json:"emi_obligations" binding:"gte=0"`
	CurrentSavings     float64       `json:"current_savings" binding:"gte=0"`
	NumberOfDependents int           `json:"number_of_dependents" binding:"gte=0"`
	RiskProfile        string        `json:"risk_profile" binding:"omitempty,oneof=low medium high"`
	CityTier           *int          `json:"city_tier" binding:"omitempty,oneof=1 2 3"`
	Goals              []GoalPayload `json:"goals" binding:"omitempty,dive"`
}

// LifestyleProjection assesses the user's financial trajectory.
// @Summary Lifestyle trajectory projection
// @Accept json
// @Produce json
// @Param request body LifestyleProjectionRequest true "financial profile"
// @Success 200 {object} model.LifestyleProjection
// @Router /api/lifestyle-projection [post]
func (ctrl *PlannerController) LifestyleProjection(c *gin.Context) {
	var req LifestyleProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if req.RiskProfile == "" {
		req.RiskProfile = "medium"
	}

	goals := make([]model.Goal, 0, len(req.Goals))
	for _, g := range req.Goals {
		goals = append(goals, model.Goal{Name: g.Name, Target: g.Target, DeadlineMonths: g.DeadlineMonths})
	}

	projection, err := ctrl.lifestyle.Project(c.Request.Context(), model.FinancialProfile{
		MonthlyIncome:    req.MonthlyIncome,
		FixedExpenses:    req.FixedExpenses,
		VariableExpenses: req.VariableExpenses,
		EMIObligations:   req.EMIObligations,
		CurrentSavings:   req.CurrentSavings,
		Dependents:       req.NumberOfDependents,
		RiskProfile:      req.RiskProfile,
		CityTier:         req.CityTier,
		Goals:            goals,
	})
	if err != nil {
		slog.Error("lifestyle-projection failed", "error", err)
		response.Internal(c, "Lifestyle projection failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, projection)
}
