package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/video-study-bible-api/internal/db"
	"github.com/video-study-bible-api/internal/store"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	store *store.Store
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(s *store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

// HealthResponse is the response for basic health check
type HealthResponse struct {
	Status string `json:"status"`
}

// StudyHealthResponse reports the loaded study corpus size
type StudyHealthResponse struct {
	Status       string `json:"status"`
	Verses       int    `json:"verses"`
	Videos       int    `json:"videos"`
	Commentaries int    `json:"commentaries"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
	})
}

// StudyHealth handles GET /health/study — reports the loaded corpus size.
// An empty corpus is "degraded", not an error: the app serves empty results.
func (h *HealthHandler) StudyHealth(c echo.Context) error {
	verses, videos, commentaries := h.store.Stats()
	status := "loaded"
	if verses == 0 && videos == 0 {
		status = "degraded"
	}
	return c.JSON(http.StatusOK, StudyHealthResponse{
		Status:       status,
		Verses:       verses,
		Videos:       videos,
		Commentaries: commentaries,
	})
}

// PostgresHealth handles GET /health/postgres
func (h *HealthHandler) PostgresHealth(c echo.Context) error {
	if !db.PostgresEnabled() {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "not_configured",
			"error":  "PostgreSQL is not configured",
		})
	}

	pgDB := db.GetPostgres()
	if pgDB == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "error",
			"error":  "PostgreSQL connection not available",
		})
	}

	if err := pgDB.PingContext(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "error",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":   "connected",
		"database": "postgres",
	})
}

// RegisterRoutes registers health check routes
func (h *HealthHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/health", h.Health)
	g.GET("/health/study", h.StudyHealth)
	g.GET("/health/postgres", h.PostgresHealth)
}
