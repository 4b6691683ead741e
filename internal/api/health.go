package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitsphere/backend/internal/database"
	"github.com/fitsphere/backend/internal/service"
)

// HealthHandler reports liveness of the database and the cache
type HealthHandler struct {
	db    *database.DB
	cache service.IPlanCache
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(db *database.DB, cache service.IPlanCache) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health returns the component statuses. The cache being down does not fail
// the check; it only degrades plan reads to cache misses.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	dbOK := h.db.HealthCheck(ctx) == nil
	cacheOK := h.cache.HealthCheck(ctx)

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"database": dbOK,
		"cache":    cacheOK,
	})
}
