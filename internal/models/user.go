package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
}

// BeforeCreate assigns an ID when none is set
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserProfile carries the biometrics the plan engine reads. It is treated as
// immutable input during generation.
type UserProfile struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	WeightKg       float64        `gorm:"not null" json:"weight_kg"`
	HeightCm       float64        `gorm:"not null" json:"height_cm"`
	Age            int            `gorm:"not null" json:"age"`
	Sex            Sex            `gorm:"size:10;not null" json:"sex"`
	Goal           Goal           `gorm:"size:20;not null" json:"goal"`
	ActivityLevel  ActivityLevel  `gorm:"size:20;not null" json:"activity_level"`
	DietPreference DietType       `gorm:"size:10;not null" json:"diet_preference"`
	AvatarURL      string         `gorm:"size:255" json:"avatar_url"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns an ID when none is set
func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
