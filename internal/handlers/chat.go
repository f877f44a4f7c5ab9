package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/video-study-bible-api/internal/models"
	"github.com/video-study-bible-api/internal/services"
)

// noContentReply is the localized fallback when no teaching content matches.
const noContentReply = "Keine Lehrinhalte verfügbar. Wähle einen Vers mit blauem Symbol."

// ChatHandler handles the study-assistant chat endpoints
type ChatHandler struct {
	chat *services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat *services.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Chat handles POST /chat — forwards the conversation to the LLM grounded on
// the indexed teaching content. Upstream failures surface as a localized
// error payload, never a stack trace.
func (h *ChatHandler) Chat(c echo.Context) error {
	var req models.ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if len(req.Messages) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "At least one message is required")
	}

	reply, err := h.chat.Ask(c.Request().Context(), req)
	if errors.Is(err, services.ErrNoContext) {
		return c.JSON(http.StatusOK, models.ChatResponse{Reply: noContentReply})
	}
	if err != nil {
		c.Logger().Errorf("chat completion failed: %v", err)
		return echo.NewHTTPError(http.StatusBadGateway, "Chat failed: "+err.Error())
	}

	return c.JSON(http.StatusOK, models.ChatResponse{Reply: reply})
}

// Speakers handles GET /chat/speakers — the distinct speakers of the corpus
func (h *ChatHandler) Speakers(c echo.Context) error {
	return c.JSON(http.StatusOK, models.SpeakersResponse{Speakers: h.chat.Speakers()})
}

// RegisterRoutes registers chat routes
func (h *ChatHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/chat", h.Chat)
	g.GET("/chat/speakers", h.Speakers)
}
