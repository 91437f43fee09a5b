// Package api is the client for the remote break/session logging service.
// The service is outside this repository; the client only assumes the
// documented request and response shapes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client talks to the PauseQuest logging API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL. A non-positive
// timeout falls back to ten seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// BreakLog is the payload for POST /log-break.
type BreakLog struct {
	BreakType string `json:"breakType"`
	Mood      string `json:"mood"`
}

// BreakLogResult is the response from POST /log-break.
type BreakLogResult struct {
	Message        string  `json:"message"`
	SentimentScore float64 `json:"sentiment_score"`
}

// SessionLog is the payload for POST /session.
type SessionLog struct {
	FocusDuration int    `json:"focus_duration"`
	BreakDuration int    `json:"break_duration"`
	MoodEmoji     string `json:"mood_emoji,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// SessionRecord is one logged session as the service returns it.
type SessionRecord struct {
	ID             int     `json:"id,omitempty"`
	FocusDuration  int     `json:"focus_duration"`
	BreakDuration  int     `json:"break_duration"`
	MoodEmoji      string  `json:"mood_emoji,omitempty"`
	Mood           string  `json:"mood,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	SentimentScore float64 `json:"sentiment_score,omitempty"`
	CreatedAt      string  `json:"created_at,omitempty"`
}

// HistoryTotals aggregates the history response.
type HistoryTotals struct {
	FocusDuration int `json:"focus_duration"`
	BreakDuration int `json:"break_duration"`
}

// History is the response from GET /session-history.
type History struct {
	Sessions []SessionRecord `json:"sessions"`
	Totals   HistoryTotals   `json:"totals"`
}

// LogBreak posts a break log and returns the service's sentiment score.
func (c *Client) LogBreak(ctx context.Context, breakLog BreakLog) (*BreakLogResult, error) {
	var result BreakLogResult
	if err := c.post(ctx, "/log-break", breakLog, &result); err != nil {
		return nil, fmt.Errorf("failed to log break: %w", err)
	}
	return &result, nil
}

// LogSession posts a completed session record.
func (c *Client) LogSession(ctx context.Context, session SessionLog) (*SessionRecord, error) {
	var result struct {
		Session SessionRecord `json:"session"`
	}
	if err := c.post(ctx, "/session", session, &result); err != nil {
		return nil, fmt.Errorf("failed to log session: %w", err)
	}
	return &result.Session, nil
}

// SessionHistory fetches up to limit logged sessions with totals.
func (c *Client) SessionHistory(ctx context.Context, limit int) (*History, error) {
	endpoint := c.baseURL + "/session-history"
	if limit > 0 {
		endpoint += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build history request: %w", err)
	}

	var history History
	if err := c.do(req, &history); err != nil {
		return nil, fmt.Errorf("failed to fetch session history: %w", err)
	}
	return &history, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// do executes the request and decodes a 2xx JSON response into out.
// Failures surface as a single wrapped error; there is no retry.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
