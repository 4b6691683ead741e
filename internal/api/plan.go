package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitsphere/backend/internal/service"
)

// PlanHandler serves the plan engine endpoints
type PlanHandler struct {
	plans service.IPlanService
}

// NewPlanHandler creates a new PlanHandler instance
func NewPlanHandler(plans service.IPlanService) *PlanHandler {
	return &PlanHandler{plans: plans}
}

// GetPlans returns the user's current plans, generating them on first request
func (h *PlanHandler) GetPlans(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	response, err := h.plans.GetPlans(c.Request.Context(), userID)
	if err != nil {
		h.planError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Regenerate discards the stored plans and builds fresh ones
func (h *PlanHandler) Regenerate(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	response, err := h.plans.Regenerate(c.Request.Context(), userID)
	if err != nil {
		h.planError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetDietPlan returns just the diet plan half of the combined response
func (h *PlanHandler) GetDietPlan(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	response, err := h.plans.GetPlans(c.Request.Context(), userID)
	if err != nil {
		h.planError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DietPlan)
}

// GetWorkoutPlan returns just the workout plan half of the combined response
func (h *PlanHandler) GetWorkoutPlan(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	response, err := h.plans.GetPlans(c.Request.Context(), userID)
	if err != nil {
		h.planError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.WorkoutPlan)
}

// GetNutrition returns the daily energy and macro targets
func (h *PlanHandler) GetNutrition(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	needs, err := h.plans.Nutrition(c.Request.Context(), userID)
	if err != nil {
		h.planError(c, err)
		return
	}
	c.JSON(http.StatusOK, needs)
}

func (h *PlanHandler) planError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load plans"})
}
