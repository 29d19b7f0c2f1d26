// Package research talks to the Firecrawl research provider and normalizes
// its responses. Deep research failures are absorbed into well-formed
// results rather than returned as errors, so callers always have a summary
// to show.
package research

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/defense-analyst/research-chatbot/internal/model"
	"github.com/defense-analyst/research-chatbot/pkg/logger"
	"github.com/defense-analyst/research-chatbot/pkg/metrics"
)

const (
	defaultBaseURL = "https://api.firecrawl.dev/v1"

	// RefusalSummary is returned for queries outside the defense/government
	// domain. No provider call is made in that case.
	RefusalSummary = "Sorry, I can only assist with defense or government-related research questions."

	defaultPollInterval = 3 * time.Second
	defaultPollTimeout  = 300 * time.Second
	requestTimeout      = 30 * time.Second
)

// Client is the research provider client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger

	// Poll pacing; tests shrink these.
	pollInterval time.Duration
	pollTimeout  time.Duration
}

// NewClient creates a research client authenticated with the given API key.
func NewClient(apiKey string, log *logger.Logger) *Client {
	return &Client{
		apiKey:       apiKey,
		baseURL:      defaultBaseURL,
		httpClient:   &http.Client{Timeout: requestTimeout},
		logger:       log,
		pollInterval: defaultPollInterval,
		pollTimeout:  defaultPollTimeout,
	}
}

type searchResponse struct {
	Results []map[string]any `json:"results"`
}

// Search runs a single provider search call and reshapes the results into
// links and sources.
func (c *Client) Search(ctx context.Context, query string, limit int) (*model.SearchResult, error) {
	if limit <= 0 {
		limit = 5
	}

	var resp searchResponse
	if err := c.postJSON(ctx, "/search", map[string]any{
		"query": query,
		"limit": limit,
	}, &resp); err != nil {
		c.logger.Error("search request failed", zap.Error(err))
		return nil, err
	}

	result := &model.SearchResult{
		Results: resp.Results,
		Links:   []string{},
		Sources: []model.SearchSource{},
	}
	for _, item := range resp.Results {
		url, ok := item["url"].(string)
		if !ok || url == "" {
			continue
		}
		result.Links = append(result.Links, url)
		result.Sources = append(result.Sources, model.SearchSource{
			Title:  stringField(item, "title", "Unknown Title"),
			URL:    url,
			Source: stringField(item, "source", stringField(item, "domain", "Unknown Source")),
		})
	}
	return result, nil
}

type submitResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	JobID   string `json:"job_id"`
	Data    struct {
		ID string `json:"id"`
	} `json:"data"`
}

type pollResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Data    struct {
		Status        string         `json:"status"`
		FinalAnalysis string         `json:"finalAnalysis"`
		Sources       []model.Source `json:"sources"`
	} `json:"data"`
}

// DeepResearch submits a deep research job for the query and polls it to a
// terminal state. Every path returns a well-formed result: out-of-scope
// queries get the fixed refusal, and transport errors, provider-reported
// failures and poll timeouts all produce an explanatory summary with empty
// findings and sources.
func (c *Client) DeepResearch(ctx context.Context, query string) *model.ResearchResult {
	c.logger.Info("starting deep research", zap.String("query", truncate(query, 100)))

	if !IsInScope(query) {
		c.logger.Warn("query rejected by topic guardrail", zap.String("query", truncate(query, 100)))
		metrics.RecordResearchJob("rejected", 0)
		return failureResult(RefusalSummary)
	}

	start := time.Now()
	terminal := func(status string, res *model.ResearchResult) *model.ResearchResult {
		metrics.RecordResearchJob(status, time.Since(start).Seconds())
		return res
	}

	// Submit the job.
	var submitted submitResponse
	if err := c.postJSON(ctx, "/deep-research", map[string]any{
		"query":     query,
		"maxDepth":  5,   // research iterations
		"timeLimit": 240, // provider-side seconds
		"maxUrls":   20,  // URLs to analyze
	}, &submitted); err != nil {
		c.logger.Error("deep research submit failed", zap.Error(err))
		return terminal("submit_error", failureResult(fmt.Sprintf("Error starting research on '%s'.", query)))
	}
	if !submitted.Success {
		c.logger.Error("provider reported failure on submit")
		return terminal("submit_error", failureResult(fmt.Sprintf("Error starting research on '%s'.", query)))
	}

	// The provider has returned the job id under different fields across
	// versions; take the first one present.
	jobID := submitted.ID
	if jobID == "" {
		jobID = submitted.JobID
	}
	if jobID == "" {
		jobID = submitted.Data.ID
	}
	if jobID == "" {
		c.logger.Error("no job id returned from provider")
		return terminal("submit_error", failureResult(fmt.Sprintf("No job_id returned for research on '%s'.", query)))
	}

	c.logger.Info("deep research job submitted", zap.String("job_id", jobID))

	// Poll until the job reaches a terminal state or the budget runs out.
	deadline := time.Now().Add(c.pollTimeout)
	for time.Now().Before(deadline) {
		var polled pollResponse
		if err := c.getJSON(ctx, "/deep-research/"+jobID, &polled); err != nil {
			c.logger.Error("deep research poll failed", zap.String("job_id", jobID), zap.Error(err))
			return terminal("poll_error", failureResult(fmt.Sprintf("Error polling research on '%s'.", query)))
		}
		if !polled.Success {
			c.logger.Error("provider reported failure on poll", zap.String("job_id", jobID))
			return terminal("poll_error", failureResult(fmt.Sprintf("Error polling research on '%s'.", query)))
		}

		status := polled.Data.Status
		if status == "" {
			status = polled.Status
		}

		switch status {
		case "completed":
			c.logger.Info("deep research job completed", zap.String("job_id", jobID))
			summary := polled.Data.FinalAnalysis
			if summary == "" {
				summary = fmt.Sprintf("No analysis available for '%s'.", query)
			}
			sources := polled.Data.Sources
			if sources == nil {
				sources = []model.Source{}
			}
			return terminal("completed", &model.ResearchResult{
				Summary:     summary,
				KeyFindings: ExtractFindings(polled.Data.FinalAnalysis),
				Sources:     sources,
			})
		case "failed":
			c.logger.Error("deep research job failed", zap.String("job_id", jobID))
			return terminal("failed", failureResult(fmt.Sprintf("Research job failed for '%s'.", query)))
		}

		select {
		case <-time.After(c.pollInterval):
		case <-ctx.Done():
			c.logger.Error("deep research interrupted", zap.String("job_id", jobID), zap.Error(ctx.Err()))
			return terminal("poll_error", failureResult(fmt.Sprintf("Error polling research on '%s'.", query)))
		}
	}

	c.logger.Error("deep research polling timed out", zap.String("job_id", jobID))
	return terminal("timeout", failureResult(fmt.Sprintf("Polling timed out for research on '%s'.", truncate(query, 100))))
}

func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	return c.do(req, out)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: unexpected status %d", req.Method, req.URL.Path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func failureResult(summary string) *model.ResearchResult {
	return &model.ResearchResult{
		Summary:     summary,
		KeyFindings: []string{},
		Sources:     []model.Source{},
	}
}

func stringField(m map[string]any, key, fallback string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
