package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/video-study-bible-api/internal/models"
	"github.com/video-study-bible-api/internal/services"
)

// CommentaryHandler handles commentary and cross-reference endpoints
type CommentaryHandler struct {
	commentary *services.CommentaryService
	crossRefs  *services.CrossRefService
}

// NewCommentaryHandler creates a new commentary handler
func NewCommentaryHandler(commentary *services.CommentaryService, crossRefs *services.CrossRefService) *CommentaryHandler {
	return &CommentaryHandler{commentary: commentary, crossRefs: crossRefs}
}

// Commentary handles GET /verses/:ref/commentary — the merged commentary for
// one verse. Commentary is null when neither key variant has an entry; the
// client renders its empty state, this is not an error.
func (h *CommentaryHandler) Commentary(c echo.Context) error {
	ref := c.Param("ref")
	if ref == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Verse reference is required")
	}
	return c.JSON(http.StatusOK, models.CommentaryResponse{
		Verse:      ref,
		Commentary: h.commentary.ForVerse(ref),
	})
}

// CrossReferences handles GET /verses/:ref/cross-references
func (h *CommentaryHandler) CrossReferences(c echo.Context) error {
	ref := c.Param("ref")
	if ref == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Verse reference is required")
	}
	return c.JSON(http.StatusOK, h.crossRefs.Resolve(ref))
}

// RegisterRoutes registers commentary routes
func (h *CommentaryHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/verses/:ref/commentary", h.Commentary)
	g.GET("/verses/:ref/cross-references", h.CrossReferences)
}
