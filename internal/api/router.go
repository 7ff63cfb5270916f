package api

import (
	"github.com/gin-gonic/gin"
	"github.com/goalaura/goalaura-backend/internal/api/controller"
	"github.com/goalaura/goalaura-backend/internal/api/middleware"
)

// RegisterRoutes wires all endpoints onto the engine.
func RegisterRoutes(
	r *gin.Engine,
	dreamCtrl *controller.DreamController,
	decisionCtrl *controller.DecisionController,
	plannerCtrl *controller.PlannerController,
	comparisonCtrl *controller.ComparisonController,
) {
	r.Use(middleware.Cors())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/dream-map", dreamCtrl.DreamMap)
		api.POST("/opportunity-cost", dreamCtrl.OpportunityCost)
		api.POST("/quantum-decision-tree", decisionCtrl.QuantumDecisionTree)
		api.POST("/savings-advisor", plannerCtrl.SavingsAdvisor)
		api.POST("/lifestyle-projection", plannerCtrl.LifestyleProjection)
		api.POST("/compare-users", comparisonCtrl.CompareUsers)
	}
}
