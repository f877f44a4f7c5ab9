package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/video-study-bible-api/internal/services"
)

// BibleHandler handles chapter text endpoints
type BibleHandler struct {
	bible *services.BibleTextService
}

// NewBibleHandler creates a new Bible text handler
func NewBibleHandler(bible *services.BibleTextService) *BibleHandler {
	return &BibleHandler{bible: bible}
}

// Chapter handles GET /chapter — fetches chapter text from the upstream
// Bible API. Upstream failure degrades to the bundled fallback text with
// HTTP 200, never an error page.
func (h *BibleHandler) Chapter(c echo.Context) error {
	book := c.QueryParam("book")
	if book == "" {
		book = "Genesis"
	}
	chapter := 1
	if raw := c.QueryParam("chapter"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid chapter number")
		}
		chapter = n
	}

	resp := h.bible.Chapter(c.Request().Context(), book, chapter, c.QueryParam("translation"))
	return c.JSON(http.StatusOK, resp)
}

// RegisterRoutes registers Bible text routes
func (h *BibleHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/chapter", h.Chapter)
}
