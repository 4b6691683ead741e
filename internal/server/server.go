package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitsphere/backend/config"
	"github.com/fitsphere/backend/internal/api"
	"github.com/fitsphere/backend/internal/database"
	"github.com/fitsphere/backend/internal/router"
	"github.com/fitsphere/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	engine *gin.Engine
	http   *http.Server
}

// New wires the services and handlers and builds the server
func New(cfg *config.Config) (*Server, error) {
	rawDB, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	gormDB, err := database.NewGorm(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid redis configuration: %w", err)
	}

	cache := service.NewPlanCacheService(redisClient)
	profiles := service.NewProfileService(gormDB, cache)
	nutrition := service.NewNutritionCalculator()
	rng := service.NewPicker()
	dietPlans := service.NewDietPlanService(gormDB, service.NewFoodCatalogService(gormDB), rng)
	workoutPlans := service.NewWorkoutPlanService(gormDB, service.NewExerciseCatalogService(gormDB), rng)
	plans := service.NewPlanService(profiles, nutrition, dietPlans, workoutPlans, cache)
	auth := service.NewAuthService(gormDB, cfg.JWTSecret)

	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3: %w", err)
	}
	avatars := service.NewAvatarService(s3Config)

	engine := router.SetupRouter(
		api.NewAuthHandler(auth),
		api.NewProfileHandler(profiles, avatars),
		api.NewPlanHandler(plans),
		api.NewHealthHandler(rawDB, cache),
		auth,
		cfg.AllowedOrigins,
	)

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:    fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
			Handler: engine,
		},
	}, nil
}

// Start runs the HTTP server until it is shut down
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
