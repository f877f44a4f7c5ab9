package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/video-study-bible-api/internal/services"
)

// SearchHandler handles corpus search endpoints
type SearchHandler struct {
	search *services.SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(search *services.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// Search handles GET /search — substring search across verses, videos, topics
func (h *SearchHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Query is required")
	}
	return c.JSON(http.StatusOK, h.search.Search(query))
}

// RegisterRoutes registers search routes
func (h *SearchHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/search", h.Search)
}
