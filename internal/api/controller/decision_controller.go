package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goalaura/goalaura-backend/internal/api/response"
	"github.com/goalaura/goalaura-backend/internal/service"
)

// DecisionController serves the quantum-decision-tree endpoint.
type DecisionController struct {
	decisions *service.DecisionService
}

func NewDecisionController(decisions *service.DecisionService) *DecisionController {
	return &DecisionController{decisions: decisions}
}

type QuantumDecisionRequest struct {
	Situation         string  `json:"situation" binding:"required"`
	UserMonthlyIncome float64 `json:"user_monthly_income" binding:"required,gt=0"`
	UserSavingsINR    float64 `json:"user_savings_inr" binding:"gte=0"`
	RiskProfile       string  `json:"risk_profile" binding:"required,oneof=low medium high"`
}

// QuantumDecisionTree evaluates a dilemma across four probabilistic paths.
// @Summary Quantum decision tree
// @Accept json
// @Produce json
// @Param request body QuantumDecisionRequest true "decision dilemma"
// @Success 200 {object} model.DecisionAnalysis
// @Router /api/quantum-decision-tree [post]
func (ctrl *DecisionController) QuantumDecisionTree(c *gin.Context) {
	var req QuantumDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	analysis, err := ctrl.decisions.Evaluate(c.Request.Context(), service.DecisionInput{
		Situation:     req.Situation,
		MonthlyIncome: req.UserMonthlyIncome,
		SavingsINR:    req.UserSavingsINR,
		RiskProfile:   req.RiskProfile,
	})
	if err != nil {
		slog.Error("quantum-decision-tree failed", "error", err)
		response.Internal(c, "QDT processing error: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, analysis)
}
