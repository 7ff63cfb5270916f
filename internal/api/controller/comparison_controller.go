package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goalaura/goalaura-backend/internal/api/response"
	"github.com/goalaura/goalaura-backend/internal/service"
)

// ComparisonController serves the compare-users endpoint.
type ComparisonController struct {
	comparisons *service.ComparisonService
}

func NewComparisonController(comparisons *service.ComparisonService) *ComparisonController {
	return &ComparisonController{comparisons: comparisons}
}

type CompareUsersRequest struct {
	CurrentUserInfo         string `json:"current_user_info" binding:"required"`
	OtherUserInfo           string `json:"other_user_info" binding:"required"`
	CurrentUserTransactions string `json:"current_user_transactions" binding:"required"`
	OtherUserTransactions   string `json:"other_user_transactions" binding:"required"`
}

// CompareUsers compares two users' spending behaviour.
// @Summary Two-user spending comparison
// @Accept json
// @Produce json
// @Param request body CompareUsersRequest true "profile strings and CSV transaction dumps"
// @Success 200 {object} model.ComparisonInsight
// @Router /api/compare-users [post]
func (ctrl *ComparisonController) CompareUsers(c *gin.Context) {
	var req CompareUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	insight, err := ctrl.comparisons.Compare(c.Request.Context(), service.CompareInput{
		CurrentUserInfo:         req.CurrentUserInfo,
		OtherUserInfo:           req.OtherUserInfo,
		CurrentUserTransactions: req.CurrentUserTransactions,
		OtherUserTransactions:   req.OtherUserTransactions,
	})
	if err != nil {
		var formatErr *service.FormatError
		if errors.As(err, &formatErr) {
			response.BadRequest(c, formatErr.Error())
			return
		}
		slog.Error("compare-users failed", "error", err)
		response.Internal(c, "Comparison failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, insight)
}
