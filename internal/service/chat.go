// Package service provides business logic for the research chatbot.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/defense-analyst/research-chatbot/internal/llm"
	"github.com/defense-analyst/research-chatbot/internal/model"
	"github.com/defense-analyst/research-chatbot/internal/store"
	"github.com/defense-analyst/research-chatbot/pkg/logger"
	"github.com/defense-analyst/research-chatbot/pkg/metrics"
)

// systemPersona frames every completion request.
const systemPersona = `You are a specialized defense analyst chatbot designed to provide detailed and insightful responses
to defense-related research queries. Your responses should be detailed, accurate, and showcase
deep understanding of defense topics, programs, and technologies.
Do not include any personal opinions, and DO NOT answer any questions that are not related to defense and government.`

// Researcher fetches research context for a query. Implementations absorb
// their own failures and always return a well-formed result.
type Researcher interface {
	DeepResearch(ctx context.Context, query string) *model.ResearchResult
}

// ChatService orchestrates research, answer generation and conversation
// bookkeeping for chat requests.
type ChatService struct {
	researcher Researcher
	llmClient  llm.Client
	store      store.ConversationStore
	logger     *logger.Logger

	// Sampling parameters, fixed per process.
	model       string
	maxTokens   int
	temperature float64
}

// NewChatService creates a new chat service.
func NewChatService(
	researcher Researcher,
	llmClient llm.Client,
	convStore store.ConversationStore,
	log *logger.Logger,
	model string,
	maxTokens int,
	temperature float64,
) *ChatService {
	return &ChatService{
		researcher:  researcher,
		llmClient:   llmClient,
		store:       convStore,
		logger:      log,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// Chat processes a chat request: optionally fetches research context for the
// prompt, generates an answer, and records the exchange. A research failure
// degrades to an answer without research data; a generation failure is
// returned to the caller.
func (s *ChatService) Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.New().String()
	}

	s.logger.Info("processing chat request",
		zap.String("conversation_id", conversationID),
		zap.Bool("include_research_data", req.ResearchEnabled()),
	)

	var researchData *model.ResearchResult
	var sources []model.Source

	if req.ResearchEnabled() && s.researcher != nil {
		// Once started, a research job runs to its terminal state even if
		// the originating connection drops.
		researchData = s.fetchResearch(context.WithoutCancel(ctx), req.Prompt)
		if researchData != nil {
			sources = researchData.Sources
			s.logger.Info("research data retrieved",
				zap.String("conversation_id", conversationID),
				zap.Int("sources", len(sources)),
			)
		}
	}

	response, err := s.Generate(ctx, req.Prompt, researchData)
	if err != nil {
		return nil, fmt.Errorf("error generating response: %w", err)
	}

	s.store.Put(conversationID, model.ConversationEntry{
		LastPrompt:   req.Prompt,
		LastResponse: response,
		Timestamp:    time.Now(),
	})
	metrics.ConversationsActive.Set(float64(s.store.Len()))

	return &model.ChatResponse{
		Response:       response,
		ConversationID: conversationID,
		ResearchData:   researchData,
		Sources:        sources,
	}, nil
}

// fetchResearch calls the researcher, converting a panic into a missing
// result so a research failure can never abort the request.
func (s *ChatService) fetchResearch(ctx context.Context, prompt string) (result *model.ResearchResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("error retrieving research data", zap.Any("panic", r))
			result = nil
		}
	}()

	return s.researcher.DeepResearch(ctx, prompt)
}

// Generate assembles the prompt messages and calls the completion provider,
// returning the trimmed answer text.
func (s *ChatService) Generate(ctx context.Context, prompt string, researchData *model.ResearchResult) (string, error) {
	messages := []llm.ChatMessage{
		{Role: llm.RoleSystem, Content: systemPersona},
	}

	if researchData != nil {
		messages = append(messages, llm.ChatMessage{
			Role:    llm.RoleSystem,
			Content: formatResearchContext(researchData),
		})
	}

	messages = append(messages, llm.ChatMessage{Role: llm.RoleUser, Content: prompt})

	start := time.Now()
	resp, err := s.llmClient.Complete(ctx, &llm.CompletionRequest{
		Model:       s.model,
		Messages:    messages,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		metrics.RecordCompletion(s.model, "error", time.Since(start).Seconds(), 0, 0)
		return "", err
	}

	metrics.RecordCompletion(resp.Model, "success", time.Since(start).Seconds(), resp.TokensIn, resp.TokensOut)

	return strings.TrimSpace(resp.Content), nil
}

// formatResearchContext renders a research result as a system message.
func formatResearchContext(rd *model.ResearchResult) string {
	summary := rd.Summary
	if summary == "" {
		summary = "No summary available"
	}

	var findings strings.Builder
	for _, finding := range rd.KeyFindings {
		findings.WriteString("- ")
		findings.WriteString(finding)
		findings.WriteString("\n")
	}

	formattedSources := "No sources available"
	if len(rd.Sources) > 0 {
		lines := make([]string, len(rd.Sources))
		for i, source := range rd.Sources {
			line := fmt.Sprintf("- %s: %s", titleOrUnknown(source.Title), source.URL)
			if source.Description != "" {
				line += " - " + source.Description
			}
			lines[i] = line
		}
		formattedSources = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`I've gathered the following research information to help with this query:

Summary: %s

Key Findings:
%s
Relevant Sources:
%s

Please incorporate this information into your response when relevant. Make sure to reference the sources when appropriate.`,
		summary, findings.String(), formattedSources)
}

func titleOrUnknown(title string) string {
	if title == "" {
		return "Unknown"
	}
	return title
}
