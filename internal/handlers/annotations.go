package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/video-study-bible-api/internal/models"
	"github.com/video-study-bible-api/internal/repository"
)

// AnnotationHandler handles note and highlight endpoints
type AnnotationHandler struct {
	annotations repository.AnnotationRepository
}

// NewAnnotationHandler creates a new annotation handler
func NewAnnotationHandler(annotations repository.AnnotationRepository) *AnnotationHandler {
	return &AnnotationHandler{annotations: annotations}
}

// Notes handles GET /verses/:ref/notes
func (h *AnnotationHandler) Notes(c echo.Context) error {
	ref := c.Param("ref")
	notes, err := h.annotations.Notes(c.Request().Context(), ref)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load notes: "+err.Error())
	}
	return c.JSON(http.StatusOK, models.NotesResponse{Verse: ref, Notes: notes})
}

// AddNote handles POST /verses/:ref/notes
func (h *AnnotationHandler) AddNote(c echo.Context) error {
	ref := c.Param("ref")
	var req models.AddNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Note text is required")
	}

	now := time.Now()
	note := models.Note{
		ID:         strconv.FormatInt(now.UnixMilli(), 10),
		Text:       strings.TrimSpace(req.Text),
		Attachment: req.Attachment,
		CreatedAt:  now.UTC().Format(time.RFC3339),
	}
	if err := h.annotations.AddNote(c.Request().Context(), ref, note); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save note: "+err.Error())
	}
	return c.JSON(http.StatusCreated, note)
}

// DeleteNote handles DELETE /verses/:ref/notes/:id
func (h *AnnotationHandler) DeleteNote(c echo.Context) error {
	if err := h.annotations.DeleteNote(c.Request().Context(), c.Param("ref"), c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// Highlight handles GET /verses/:ref/highlight
func (h *AnnotationHandler) Highlight(c echo.Context) error {
	ref := c.Param("ref")
	color, ok, err := h.annotations.Highlight(c.Request().Context(), ref)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load highlight: "+err.Error())
	}
	if !ok {
		return c.JSON(http.StatusOK, map[string]any{"verse_ref": ref, "color": nil})
	}
	return c.JSON(http.StatusOK, models.Highlight{VerseRef: ref, Color: color})
}

// SetHighlight handles PUT /verses/:ref/highlight
func (h *AnnotationHandler) SetHighlight(c echo.Context) error {
	ref := c.Param("ref")
	var req models.SetHighlightRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Color == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Color is required")
	}
	if err := h.annotations.SetHighlight(c.Request().Context(), ref, req.Color); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save highlight: "+err.Error())
	}
	return c.JSON(http.StatusOK, models.Highlight{VerseRef: ref, Color: req.Color})
}

// ClearHighlight handles DELETE /verses/:ref/highlight
func (h *AnnotationHandler) ClearHighlight(c echo.Context) error {
	if err := h.annotations.ClearHighlight(c.Request().Context(), c.Param("ref")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to clear highlight: "+err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// RegisterRoutes registers annotation routes
func (h *AnnotationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/verses/:ref/notes", h.Notes)
	g.POST("/verses/:ref/notes", h.AddNote)
	g.DELETE("/verses/:ref/notes/:id", h.DeleteNote)
	g.GET("/verses/:ref/highlight", h.Highlight)
	g.PUT("/verses/:ref/highlight", h.SetHighlight)
	g.DELETE("/verses/:ref/highlight", h.ClearHighlight)
}
