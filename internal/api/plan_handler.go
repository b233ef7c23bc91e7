package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"forgefit/workout-planner/internal/domain"
	"forgefit/workout-planner/internal/logger"
	"forgefit/workout-planner/internal/service"
)

// PlanHandler holds the plan service dependency.
type PlanHandler struct {
	planService service.PlanService
	log         *logger.Logger
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService, log *logger.Logger) *PlanHandler {
	return &PlanHandler{planService: planService, log: log}
}

// --- DTOs for API (Data Transfer Objects) ---

// GeneratePlanRequest defines the expected JSON for generating a plan.
type GeneratePlanRequest struct {
	Mission        string `json:"mission" binding:"required"`
	TimeCommitment string `json:"time_commitment" binding:"required"`
	Gear           string `json:"gear" binding:"required"`
	Squad          string `json:"squad" binding:"omitempty"`
}

// PlanResponse is the DTO for a generated plan.
type PlanResponse struct {
	WorkoutPlan []domain.DayRecord `json:"workout_plan"`
	WorkoutDays int                `json:"workout_days"`
	RestDays    int                `json:"rest_days"`
}

// MapPlanToResponse converts a domain.Plan to PlanResponse DTO.
func MapPlanToResponse(plan domain.Plan) PlanResponse {
	return PlanResponse{
		WorkoutPlan: plan.Days,
		WorkoutDays: plan.WorkoutDays,
		RestDays:    plan.RestDays,
	}
}

// --- Handler Methods ---

// GeneratePlan godoc
// @Summary Generate a workout plan
// @Description Generates a complete 30-day workout plan for the given tier from JSON preferences.
// @Tags Plans
// @Accept json
// @Produce json
// @Param tier path string true "Plan tier (beginner|intermediate|elite)"
// @Param preferences body GeneratePlanRequest true "Workout preferences"
// @Success 200 {object} PlanResponse "Generated plan"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /plans/{tier} [post]
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	h.generate(c, domain.Preferences{
		Mission:        domain.Mission(req.Mission),
		TimeCommitment: domain.TimeCommitment(req.TimeCommitment),
		Gear:           domain.Gear(req.Gear),
		Squad:          domain.Squad(req.Squad),
	})
}

// GeneratePlanQuery godoc
// @Summary Generate a workout plan from query parameters
// @Description Same as the POST variant, with preferences passed as individual query parameters.
// @Tags Plans
// @Produce json
// @Param tier path string true "Plan tier (beginner|intermediate|elite)"
// @Param mission query string false "Fitness goal" default(Lose Fat)
// @Param time_commitment query string false "Time available" default(10 min)
// @Param gear query string false "Available equipment" default(Bodyweight)
// @Param squad query string false "Training style (optional)"
// @Success 200 {object} PlanResponse "Generated plan"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /plans/{tier} [get]
func (h *PlanHandler) GeneratePlanQuery(c *gin.Context) {
	h.generate(c, domain.Preferences{
		Mission:        domain.Mission(c.DefaultQuery("mission", string(domain.MissionLoseFat))),
		TimeCommitment: domain.TimeCommitment(c.DefaultQuery("time_commitment", string(domain.TimeTenMin))),
		Gear:           domain.Gear(c.DefaultQuery("gear", string(domain.GearBodyweight))),
		Squad:          domain.Squad(c.Query("squad")),
	})
}

func (h *PlanHandler) generate(c *gin.Context, prefs domain.Preferences) {
	tier := c.Param("tier")

	plan, err := h.planService.GeneratePlan(c.Request.Context(), tier, prefs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownTier):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidPreferences):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("plan generation failed",
				"tier", tier, "request_id", getRequestID(c), "error", err.Error())
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, MapPlanToResponse(plan))
}
