package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitsphere/backend/internal/models"
	"github.com/fitsphere/backend/internal/types"
)

// ErrProfileNotFound is returned when no profile exists for the user
var ErrProfileNotFound = errors.New("profile not found")

// ProfileService handles biometric profile reads and updates
type ProfileService struct {
	db    *gorm.DB
	cache IPlanCache
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB, cache IPlanCache) *ProfileService {
	return &ProfileService{db: db, cache: cache}
}

// GetProfile loads the user's profile, serving from cache when possible
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var cached models.UserProfile
	if s.cache.Get(ctx, ProfileKey(userID), &cached) {
		return &cached, nil
	}

	var profile models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	s.cache.Put(ctx, ProfileKey(userID), &profile, ProfileTTL)
	return &profile, nil
}

// UpdateProfile applies the provided biometric changes and drops every cache
// entry derived from the old profile. Stored plans are untouched; the caller
// decides whether to regenerate.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.WeightKg != nil {
		profile.WeightKg = *req.WeightKg
	}
	if req.HeightCm != nil {
		profile.HeightCm = *req.HeightCm
	}
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Goal != nil {
		profile.Goal = models.Goal(*req.Goal)
	}
	if req.ActivityLevel != nil {
		profile.ActivityLevel = models.ActivityLevel(*req.ActivityLevel)
	}
	if req.DietPreference != nil {
		profile.DietPreference = models.DietType(*req.DietPreference)
	}

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, UserKeys(userID)...)
	return &profile, nil
}

// SetAvatarURL stores the avatar location on the profile
func (s *ProfileService) SetAvatarURL(ctx context.Context, userID uuid.UUID, url string) error {
	result := s.db.WithContext(ctx).
		Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Update("avatar_url", url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	s.cache.Invalidate(ctx, ProfileKey(userID))
	return nil
}
