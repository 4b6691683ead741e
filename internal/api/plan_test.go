package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fitsphere/backend/internal/mocks"
	"github.com/fitsphere/backend/internal/models"
	"github.com/fitsphere/backend/internal/service"
	"github.com/fitsphere/backend/internal/types"
)

func planTestRouter(plans service.IPlanService, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})

	handler := NewPlanHandler(plans)
	router.GET("/plans", handler.GetPlans)
	router.POST("/plans/regenerate", handler.Regenerate)
	router.GET("/plans/diet", handler.GetDietPlan)
	router.GET("/plans/workout", handler.GetWorkoutPlan)
	router.GET("/plans/nutrition", handler.GetNutrition)
	return router
}

func samplePlanResponse(userID uuid.UUID) *types.PlanResponse {
	return &types.PlanResponse{
		NutritionalNeeds: types.NutritionalNeeds{Calories: 2200.0, Protein: 140.0, Carbs: 250.0, Fat: 61.1},
		DietPlan:         &models.DietPlan{ID: uuid.New(), UserID: userID},
		WorkoutPlan:      &types.WorkoutPlanView{ID: uuid.New(), UserID: userID, PlanType: models.PlanMixed},
	}
}

func TestGetPlansEndpoint(t *testing.T) {
	userID := uuid.New()
	plans := new(mocks.MockPlanService)
	plans.On("GetPlans", mock.Anything, userID).Return(samplePlanResponse(userID), nil)

	router := planTestRouter(plans, userID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body types.PlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2200.0, body.NutritionalNeeds.Calories)
	require.NotNil(t, body.DietPlan)
	assert.Equal(t, userID, body.DietPlan.UserID)
	plans.AssertExpectations(t)
}

func TestGetPlansWithoutProfileReturns404(t *testing.T) {
	userID := uuid.New()
	plans := new(mocks.MockPlanService)
	plans.On("GetPlans", mock.Anything, userID).Return(nil, service.ErrProfileNotFound)

	router := planTestRouter(plans, userID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "profile not found")
}

func TestGetPlansInternalErrorReturns500(t *testing.T) {
	userID := uuid.New()
	plans := new(mocks.MockPlanService)
	plans.On("GetPlans", mock.Anything, userID).Return(nil, errors.New("db down"))

	router := planTestRouter(plans, userID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Internal details never leak into the response
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestRegenerateEndpoint(t *testing.T) {
	userID := uuid.New()
	plans := new(mocks.MockPlanService)
	plans.On("Regenerate", mock.Anything, userID).Return(samplePlanResponse(userID), nil)

	router := planTestRouter(plans, userID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/plans/regenerate", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	plans.AssertExpectations(t)
}

func TestGetDietPlanEndpointReturnsDietHalf(t *testing.T) {
	userID := uuid.New()
	response := samplePlanResponse(userID)
	plans := new(mocks.MockPlanService)
	plans.On("GetPlans", mock.Anything, userID).Return(response, nil)

	router := planTestRouter(plans, userID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/plans/diet", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body models.DietPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, response.DietPlan.ID, body.ID)
}

func TestGetWorkoutPlanEndpointReturnsWorkoutHalf(t *testing.T) {
	userID := uuid.New()
	response := samplePlanResponse(userID)
	plans := new(mocks.MockPlanService)
	plans.On("GetPlans", mock.Anything, userID).Return(response, nil)

	router := planTestRouter(plans, userID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/plans/workout", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body types.WorkoutPlanView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, response.WorkoutPlan.ID, body.ID)
}

func TestGetNutritionEndpoint(t *testing.T) {
	userID := uuid.New()
	needs := &types.NutritionalNeeds{Calories: 1850.5, Protein: 112.0, Carbs: 190.3, Fat: 51.4}
	plans := new(mocks.MockPlanService)
	plans.On("Nutrition", mock.Anything, userID).Return(needs, nil)

	router := planTestRouter(plans, userID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/plans/nutrition", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body types.NutritionalNeeds
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, *needs, body)
}

func TestPlanEndpointsRequireAuthContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewPlanHandler(new(mocks.MockPlanService))
	router.GET("/plans", handler.GetPlans)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
