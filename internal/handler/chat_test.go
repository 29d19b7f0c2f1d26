package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defense-analyst/research-chatbot/internal/config"
	"github.com/defense-analyst/research-chatbot/internal/model"
	"github.com/defense-analyst/research-chatbot/pkg/logger"
)

type stubProcessor struct {
	lastReq *model.ChatRequest
	resp    *model.ChatResponse
	err     error
}

func (s *stubProcessor) Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	s.lastReq = req
	return s.resp, s.err
}

func postChat(t *testing.T, h *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)
	return rec
}

func TestChatHandlerSuccess(t *testing.T) {
	stub := &stubProcessor{resp: &model.ChatResponse{
		Response:       "The answer.",
		ConversationID: "conv-1",
	}}
	h := NewChatHandler(stub, logger.NewNop())

	rec := postChat(t, h, `{"prompt":"What is the defense budget?","conversation_id":"conv-1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp model.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "The answer.", resp.Response)
	assert.Equal(t, "conv-1", resp.ConversationID)

	require.NotNil(t, stub.lastReq)
	assert.Equal(t, "conv-1", stub.lastReq.ConversationID)
	assert.True(t, stub.lastReq.ResearchEnabled())
}

func TestChatHandlerResearchFlagPassthrough(t *testing.T) {
	stub := &stubProcessor{resp: &model.ChatResponse{Response: "ok", ConversationID: "c"}}
	h := NewChatHandler(stub, logger.NewNop())

	postChat(t, h, `{"prompt":"What is the defense budget?","include_research_data":false}`)

	require.NotNil(t, stub.lastReq)
	assert.False(t, stub.lastReq.ResearchEnabled())
}

func TestChatHandlerEmptyPrompt(t *testing.T) {
	stub := &stubProcessor{}
	h := NewChatHandler(stub, logger.NewNop())

	rec := postChat(t, h, `{"prompt":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.lastReq, "service must not be called for an invalid prompt")
}

func TestChatHandlerInvalidBody(t *testing.T) {
	h := NewChatHandler(&stubProcessor{}, logger.NewNop())

	rec := postChat(t, h, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatHandlerServiceError(t *testing.T) {
	stub := &stubProcessor{err: errors.New("error generating response: provider down")}
	h := NewChatHandler(stub, logger.NewNop())

	rec := postChat(t, h, `{"prompt":"What is the defense budget?"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "provider down")
}

func TestHealthzAlwaysOK(t *testing.T) {
	h := NewHealthHandler(&config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.Healthz(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHealthReportsKeyStatus(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.Config
		openai    string
		firecrawl string
	}{
		{
			name: "placeholders",
			cfg: &config.Config{
				OpenAIAPIKey:    config.PlaceholderOpenAIKey,
				FirecrawlAPIKey: config.PlaceholderFirecrawlKey,
			},
			openai:    "not configured",
			firecrawl: "not configured",
		},
		{
			name: "real keys",
			cfg: &config.Config{
				OpenAIAPIKey:    "sk-real",
				FirecrawlAPIKey: "fc-real",
			},
			openai:    "configured",
			firecrawl: "configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.cfg)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			h.Health(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)

			var body struct {
				Status  string            `json:"status"`
				APIKeys map[string]string `json:"api_keys"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "ok", body.Status)
			assert.Equal(t, tt.openai, body.APIKeys["openai"])
			assert.Equal(t, tt.firecrawl, body.APIKeys["firecrawl"])
		})
	}
}

func TestRootMetadata(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	Root(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Defense Analyst Chatbot API", body["message"])
}
