// Package model defines data structures for the research chatbot API.
package model

import (
	"time"
)

// ChatRequest is the request body for POST /chat.
//
// IncludeResearchData is a pointer so that an omitted field defaults to
// true while an explicit false is honored.
type ChatRequest struct {
	Prompt              string `json:"prompt"`
	ConversationID      string `json:"conversation_id,omitempty"`
	IncludeResearchData *bool  `json:"include_research_data,omitempty"`
}

// ResearchEnabled reports whether research data was requested.
func (r *ChatRequest) ResearchEnabled() bool {
	return r.IncludeResearchData == nil || *r.IncludeResearchData
}

// ChatResponse is the response body for POST /chat.
type ChatResponse struct {
	Response       string          `json:"response"`
	ConversationID string          `json:"conversation_id"`
	ResearchData   *ResearchResult `json:"research_data,omitempty"`
	Sources        []Source        `json:"sources,omitempty"`
}

// Source is a single web source cited by a research result.
type Source struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// ResearchResult is the normalized output of a deep research job. It is
// always well-formed: failure paths carry an explanatory Summary with empty
// KeyFindings and Sources.
type ResearchResult struct {
	Summary     string   `json:"summary"`
	KeyFindings []string `json:"key_findings"`
	Sources     []Source `json:"sources"`
}

// SearchResult is the normalized output of a provider search call.
type SearchResult struct {
	Results []map[string]any `json:"results"`
	Links   []string         `json:"links"`
	Sources []SearchSource   `json:"sources"`
}

// SearchSource is a source entry in a search result.
type SearchSource struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
}

// ConversationEntry records the last exchange of a conversation. Entries
// live for the lifetime of the process only.
type ConversationEntry struct {
	LastPrompt   string    `json:"last_prompt"`
	LastResponse string    `json:"last_response"`
	Timestamp    time.Time `json:"timestamp"`
}
