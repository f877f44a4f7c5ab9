package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/video-study-bible-api/internal/services"
)

// TopicHandler handles topic exploration endpoints
type TopicHandler struct {
	topics *services.TopicService
}

// NewTopicHandler creates a new topic handler
func NewTopicHandler(topics *services.TopicService) *TopicHandler {
	return &TopicHandler{topics: topics}
}

// Topics handles GET /topics — topics with their chapter verse coverage,
// sorted by coverage size
func (h *TopicHandler) Topics(c echo.Context) error {
	return c.JSON(http.StatusOK, h.topics.Coverage())
}

// RegisterRoutes registers topic routes
func (h *TopicHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/topics", h.Topics)
}
