package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fitsphere/backend/internal/api"
	"github.com/fitsphere/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	profileHandler *api.ProfileHandler,
	planHandler *api.PlanHandler,
	healthHandler *api.HealthHandler,
	validator middleware.TokenValidator,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.ErrorHandler())

	router.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		profile := protected.Group("/profile")
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.UpdateProfile)
			profile.POST("/avatar", profileHandler.UploadAvatar)
		}

		plans := protected.Group("/plans")
		{
			plans.GET("", planHandler.GetPlans)
			plans.POST("/regenerate", planHandler.Regenerate)
			plans.GET("/diet", planHandler.GetDietPlan)
			plans.GET("/workout", planHandler.GetWorkoutPlan)
			plans.GET("/nutrition", planHandler.GetNutrition)
		}
	}

	return router
}
