package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Cache TTLs per artifact type
const (
	ProfileTTL      = time.Hour
	DietPlanTTL     = 24 * time.Hour
	WorkoutPlanTTL  = 24 * time.Hour
	NutritionTTL    = time.Hour
	PlanResponseTTL = 2 * time.Hour
)

// Cache key builders, all keyed by user
func ProfileKey(userID uuid.UUID) string      { return fmt.Sprintf("profile:%s", userID) }
func DietPlanKey(userID uuid.UUID) string     { return fmt.Sprintf("dietplan:%s", userID) }
func WorkoutPlanKey(userID uuid.UUID) string  { return fmt.Sprintf("workoutplan:%s", userID) }
func NutritionKey(userID uuid.UUID) string    { return fmt.Sprintf("nutrition:%s", userID) }
func PlanResponseKey(userID uuid.UUID) string { return fmt.Sprintf("plans:%s", userID) }

// UserKeys lists every cache key held for a user
func UserKeys(userID uuid.UUID) []string {
	return []string{
		ProfileKey(userID),
		DietPlanKey(userID),
		WorkoutPlanKey(userID),
		NutritionKey(userID),
		PlanResponseKey(userID),
	}
}

// PlanCacheService is a best-effort JSON cache over Redis. An unavailable
// server or an entry that fails to decode is treated as a miss (the bad entry
// is dropped); writes never fail the caller.
type PlanCacheService struct {
	redis *redis.Client
}

// NewPlanCacheService creates a new PlanCacheService instance
func NewPlanCacheService(client *redis.Client) *PlanCacheService {
	return &PlanCacheService{redis: client}
}

// Get reads a cached value into dest, reporting whether it was a hit
func (s *PlanCacheService) Get(ctx context.Context, key string, dest interface{}) bool {
	data, err := s.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		log.Printf("[PlanCache] read failed for %s: %v", key, err)
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("[PlanCache] dropping undecodable entry %s: %v", key, err)
		if delErr := s.redis.Del(ctx, key).Err(); delErr != nil {
			log.Printf("[PlanCache] failed to drop entry %s: %v", key, delErr)
		}
		return false
	}
	return true
}

// Put stores a value under the key with the given TTL
func (s *PlanCacheService) Put(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("[PlanCache] marshal failed for %s: %v", key, err)
		return
	}
	if err := s.redis.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("[PlanCache] write failed for %s: %v", key, err)
	}
}

// Invalidate removes the given keys
func (s *PlanCacheService) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := s.redis.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[PlanCache] invalidate failed: %v", err)
	}
}

// HealthCheck reports whether the cache is reachable
func (s *PlanCacheService) HealthCheck(ctx context.Context) bool {
	if err := s.redis.Ping(ctx).Err(); err != nil {
		log.Printf("[PlanCache] health check failed: %v", err)
		return false
	}
	return true
}
