package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/fitsphere/backend/internal/models"
	"github.com/fitsphere/backend/internal/types"
)

// PlanService coordinates the cache, the store and the two generators. Diet
// and workout generation share only the read-only profile, so a request runs
// them as two concurrent tasks joined before the response is assembled.
//
// There is deliberately no lock around the lookup-then-generate sequence: two
// concurrent first-time requests for the same user may each persist a plan.
// Reads always resolve to the newest created_at row, so the duplicate is
// harmless and never merged.
type PlanService struct {
	profiles  *ProfileService
	nutrition *NutritionCalculator
	diet      IDietPlanService
	workout   IWorkoutPlanService
	cache     IPlanCache
}

// NewPlanService creates a new PlanService instance
func NewPlanService(profiles *ProfileService, nutrition *NutritionCalculator, diet IDietPlanService, workout IWorkoutPlanService, cache IPlanCache) *PlanService {
	return &PlanService{
		profiles:  profiles,
		nutrition: nutrition,
		diet:      diet,
		workout:   workout,
		cache:     cache,
	}
}

// GetPlans returns the user's current plans, generating them on first
// request. Repeated calls without an intervening Regenerate return the same
// stored plans.
func (s *PlanService) GetPlans(ctx context.Context, userID uuid.UUID) (*types.PlanResponse, error) {
	var cached types.PlanResponse
	if s.cache.Get(ctx, PlanResponseKey(userID), &cached) {
		return &cached, nil
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	needs := s.nutrition.CalculateNeeds(profile)

	var (
		wg          sync.WaitGroup
		dietPlan    *models.DietPlan
		workoutPlan *models.WorkoutPlan
		dietErr     error
		workoutErr  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		dietPlan, dietErr = s.diet.Latest(ctx, userID)
		if dietErr == nil && dietPlan == nil {
			dietPlan, dietErr = s.diet.Generate(ctx, profile, needs)
		}
	}()
	go func() {
		defer wg.Done()
		workoutPlan, workoutErr = s.workout.Latest(ctx, userID)
		if workoutErr == nil && workoutPlan == nil {
			workoutPlan, workoutErr = s.workout.Generate(ctx, profile)
		}
	}()
	wg.Wait()

	if dietErr != nil {
		return nil, fmt.Errorf("diet plan: %w", dietErr)
	}
	if workoutErr != nil {
		return nil, fmt.Errorf("workout plan: %w", workoutErr)
	}

	return s.assemble(ctx, userID, needs, dietPlan, workoutPlan), nil
}

// Regenerate discards the user's stored plans and builds fresh ones. The
// delete is destructive and not guarded by a transaction spanning the cache.
func (s *PlanService) Regenerate(ctx context.Context, userID uuid.UUID) (*types.PlanResponse, error) {
	s.cache.Invalidate(ctx, UserKeys(userID)...)

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	needs := s.nutrition.CalculateNeeds(profile)

	if err := s.diet.DeleteAllForUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to delete diet plans: %w", err)
	}
	if err := s.workout.DeleteAllForUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to delete workout plans: %w", err)
	}

	var (
		wg          sync.WaitGroup
		dietPlan    *models.DietPlan
		workoutPlan *models.WorkoutPlan
		dietErr     error
		workoutErr  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		dietPlan, dietErr = s.diet.Generate(ctx, profile, needs)
	}()
	go func() {
		defer wg.Done()
		workoutPlan, workoutErr = s.workout.Generate(ctx, profile)
	}()
	wg.Wait()

	if dietErr != nil {
		return nil, fmt.Errorf("diet plan: %w", dietErr)
	}
	if workoutErr != nil {
		return nil, fmt.Errorf("workout plan: %w", workoutErr)
	}

	return s.assemble(ctx, userID, needs, dietPlan, workoutPlan), nil
}

// Nutrition returns the daily targets for the user's current profile
func (s *PlanService) Nutrition(ctx context.Context, userID uuid.UUID) (*types.NutritionalNeeds, error) {
	var cached types.NutritionalNeeds
	if s.cache.Get(ctx, NutritionKey(userID), &cached) {
		return &cached, nil
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	needs := s.nutrition.CalculateNeeds(profile)
	s.cache.Put(ctx, NutritionKey(userID), needs, NutritionTTL)
	return &needs, nil
}

// assemble builds the combined response and refreshes the per-artifact cache
// entries best-effort
func (s *PlanService) assemble(ctx context.Context, userID uuid.UUID, needs types.NutritionalNeeds, dietPlan *models.DietPlan, workoutPlan *models.WorkoutPlan) *types.PlanResponse {
	response := &types.PlanResponse{
		NutritionalNeeds: needs,
		DietPlan:         dietPlan,
		WorkoutPlan:      types.NewWorkoutPlanView(workoutPlan),
	}
	s.cache.Put(ctx, NutritionKey(userID), needs, NutritionTTL)
	s.cache.Put(ctx, DietPlanKey(userID), dietPlan, DietPlanTTL)
	s.cache.Put(ctx, WorkoutPlanKey(userID), response.WorkoutPlan, WorkoutPlanTTL)
	s.cache.Put(ctx, PlanResponseKey(userID), response, PlanResponseTTL)
	return response
}
