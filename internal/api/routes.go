package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"forgefit/workout-planner/internal/logger"
	"forgefit/workout-planner/internal/service"
)

func SetupRoutes(
	router *gin.Engine,
	planService service.PlanService,
	log *logger.Logger,
) {
	planHandler := NewPlanHandler(planService, log)

	router.Use(RequestIDMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Workout plan generator is running",
			"tiers":   planService.Tiers(),
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	apiV1 := router.Group("/api/v1")
	{
		planGroup := apiV1.Group("/plans")
		{
			// POST /api/v1/plans/:tier - generate a plan from a JSON preferences body
			planGroup.POST("/:tier", planHandler.GeneratePlan)

			// GET /api/v1/plans/:tier - same, with preferences as query parameters
			planGroup.GET("/:tier", planHandler.GeneratePlanQuery)
		}
	}
}
