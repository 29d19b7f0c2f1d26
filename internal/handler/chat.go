// Package handler implements the HTTP endpoints of the research chatbot.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/defense-analyst/research-chatbot/internal/middleware"
	"github.com/defense-analyst/research-chatbot/internal/model"
	"github.com/defense-analyst/research-chatbot/pkg/logger"
)

// ChatProcessor handles a chat exchange end to end.
type ChatProcessor interface {
	Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error)
}

// ChatHandler handles the chat endpoint.
type ChatHandler struct {
	service ChatProcessor
	logger  *logger.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(svc ChatProcessor, log *logger.Logger) *ChatHandler {
	return &ChatHandler{
		service: svc,
		logger:  log,
	}
}

// Chat handles POST /chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidatePrompt(req.Prompt); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Chat(r.Context(), &req)
	if err != nil {
		h.logger.Error("error processing chat request", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Root handles GET /, returning service metadata.
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Defense Analyst Chatbot API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"/chat": "POST - Submit a research prompt for analysis",
		},
	})
}
