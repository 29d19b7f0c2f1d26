package handler

import (
	"net/http"

	"github.com/defense-analyst/research-chatbot/internal/config"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		cfg: cfg,
	}
}

// Healthz handles GET /healthz, the liveness probe for container
// orchestration. Always 200.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Health handles GET /health, reporting whether real provider credentials
// are configured.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"api_keys": map[string]string{
			"openai":    keyStatus(h.cfg.OpenAIKeyConfigured()),
			"firecrawl": keyStatus(h.cfg.FirecrawlKeyConfigured()),
		},
	})
}

func keyStatus(configured bool) string {
	if configured {
		return "configured"
	}
	return "not configured"
}
