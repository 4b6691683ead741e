package types

// RegisterRequest is the payload for user registration. Biometrics are
// required up front because plan generation depends on them.
type RegisterRequest struct {
	Name           string  `json:"name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required,min=8"`
	WeightKg       float64 `json:"weight_kg" binding:"required,gt=0"`
	HeightCm       float64 `json:"height_cm" binding:"required,gt=0"`
	Age            int     `json:"age" binding:"required,gt=0"`
	Sex            string  `json:"sex" binding:"required"`
	Goal           string  `json:"goal" binding:"required"`
	ActivityLevel  string  `json:"activity_level" binding:"required"`
	DietPreference string  `json:"diet_preference" binding:"required"`
}

// LoginRequest is the payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest is the payload for biometric updates. Pointer fields
// distinguish "not provided" from zero values.
type UpdateProfileRequest struct {
	WeightKg       *float64 `json:"weight_kg" binding:"omitempty,gt=0"`
	HeightCm       *float64 `json:"height_cm" binding:"omitempty,gt=0"`
	Age            *int     `json:"age" binding:"omitempty,gt=0"`
	Goal           *string  `json:"goal"`
	ActivityLevel  *string  `json:"activity_level"`
	DietPreference *string  `json:"diet_preference"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token string `json:"token"`
}
