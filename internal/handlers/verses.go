package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/video-study-bible-api/internal/models"
	"github.com/video-study-bible-api/internal/services"
)

// VerseHandler handles chapter verse and clip endpoints
type VerseHandler struct {
	verses *services.VerseService
	clips  *services.ClipService
}

// NewVerseHandler creates a new verse handler
func NewVerseHandler(verses *services.VerseService, clips *services.ClipService) *VerseHandler {
	return &VerseHandler{verses: verses, clips: clips}
}

// ChapterVerses handles GET /verses — the chapter verse list with video counts
func (h *VerseHandler) ChapterVerses(c echo.Context) error {
	return c.JSON(http.StatusOK, h.verses.ChapterVerses())
}

// Clips handles GET /verses/:ref/clips — the clip feed for one verse,
// optionally filtered by category and free-text query
func (h *VerseHandler) Clips(c echo.Context) error {
	ref := c.Param("ref")
	if ref == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Verse reference is required")
	}

	category := models.Category(c.QueryParam("category"))
	if category != "" {
		if _, ok := category.Info(); !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "Unknown category: "+string(category))
		}
	}

	return c.JSON(http.StatusOK, h.clips.ClipsForVerse(ref, category, c.QueryParam("q")))
}

// RegisterRoutes registers verse routes
func (h *VerseHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/verses", h.ChapterVerses)
	g.GET("/verses/:ref/clips", h.Clips)
}
