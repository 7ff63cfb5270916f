package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goalaura/goalaura-backend/internal/api/response"
	"github.com/goalaura/goalaura-backend/internal/infrastructure/llm"
	"github.com/goalaura/goalaura-backend/internal/model"
	"github.com/goalaura/goalaura-backend/internal/service"
)

// DreamController serves the dream-map and opportunity-cost endpoints.
type DreamController struct {
	dreams        *service.DreamService
	opportunities *service.OpportunityService
}

func NewDreamController(dreams *service.DreamService, opportunities *service.OpportunityService) *DreamController {
	return &DreamController{dreams: dreams, opportunities: opportunities}
}

type DreamMapRequest struct {
	DreamText         string  `json:"dream_text" binding:"required"`
	UserMonthlyIncome float64 `json:"user_monthly_income" binding:"required,gt=0"`
	TargetMonths      *int    `json:"target_months" binding:"omitempty,gt=0"`
}

// DreamMap turns a free-text dream into a savings roadmap.
// @Summary Dream to roadmap
// @Accept json
// @Produce json
// @Param request body DreamMapRequest true "dream description"
// @Success 200 {object} model.DreamRoadmap
// @Router /api/dream-map [post]
func (ctrl *DreamController) DreamMap(c *gin.Context) {
	var req DreamMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	months := 0
	if req.TargetMonths != nil {
		months = *req.TargetMonths
	}
	roadmap, err := ctrl.dreams.BuildRoadmap(c.Request.Context(), service.DreamInput{
		DreamText:     req.DreamText,
		MonthlyIncome: req.UserMonthlyIncome,
		TargetMonths:  months,
	})
	if err != nil {
		// Missing credential degrades to a fixed fallback rather than a 500;
		// the mobile client renders it as an "AI unavailable" card.
		if errors.Is(err, llm.ErrNotConfigured) {
			slog.Warn("dream-map served fallback, llm not configured")
			c.JSON(http.StatusOK, model.FallbackRoadmap())
			return
		}
		slog.Error("dream-map failed", "error", err)
		response.Internal(c, "An error occurred while generating the roadmap: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, roadmap)
}

type OpportunityCostRequest struct {
	PurchaseItem      string  `json:"purchase_item" binding:"required"`
	PurchaseCostINR   float64 `json:"purchase_cost_inr" binding:"required,gt=0"`
	UserMonthlyIncome float64 `json:"user_monthly_income" binding:"required,gt=0"`
}

type OpportunityCostResponse struct {
	VisualizerMessage string `json:"visualizer_message"`
}

// OpportunityCost reframes a purchase as work-hours and foregone growth.
// @Summary Opportunity cost visualizer
// @Accept json
// @Produce json
// @Param request body OpportunityCostRequest true "purchase under consideration"
// @Success 200 {object} OpportunityCostResponse
// @Router /api/opportunity-cost [post]
func (ctrl *DreamController) OpportunityCost(c *gin.Context) {
	var req OpportunityCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	message, err := ctrl.opportunities.Visualize(c.Request.Context(), service.OpportunityInput{
		Item:          req.PurchaseItem,
		CostINR:       req.PurchaseCostINR,
		MonthlyIncome: req.UserMonthlyIncome,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			response.BadRequest(c, err.Error())
			return
		}
		slog.Error("opportunity-cost failed", "error", err)
		response.Internal(c, "An error occurred while calculating opportunity cost: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, OpportunityCostResponse{VisualizerMessage: message})
}
