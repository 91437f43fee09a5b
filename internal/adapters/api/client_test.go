package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_LogBreak(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody BreakLog

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message":         "Break logged!",
			"sentiment_score": 0.8,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	result, err := client.LogBreak(context.Background(), BreakLog{
		BreakType: "short",
		Mood:      "tired",
	})

	require.NoError(t, err)
	assert.Equal(t, "/log-break", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "short", gotBody.BreakType)
	assert.Equal(t, "tired", gotBody.Mood)
	assert.Equal(t, "Break logged!", result.Message)
	assert.InDelta(t, 0.8, result.SentimentScore, 1e-9)
}

func TestClient_LogSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/session", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"session": map[string]any{
				"id":             7,
				"focus_duration": 50,
				"break_duration": 5,
				"mood_emoji":     "🎯",
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	record, err := client.LogSession(context.Background(), SessionLog{
		FocusDuration: 50,
		BreakDuration: 5,
		MoodEmoji:     "🎯",
	})

	require.NoError(t, err)
	assert.Equal(t, 7, record.ID)
	assert.Equal(t, 50, record.FocusDuration)
	assert.Equal(t, "🎯", record.MoodEmoji)
}

func TestClient_SessionHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/session-history", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"sessions": []map[string]any{
				{"focus_duration": 50, "break_duration": 5, "mood": "focused", "sentiment_score": 0.6},
				{"focus_duration": 25, "break_duration": 5, "mood": "tired", "sentiment_score": -0.2},
			},
			"totals": map[string]any{"focus_duration": 75, "break_duration": 10},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	history, err := client.SessionHistory(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, history.Sessions, 2)
	assert.Equal(t, "focused", history.Sessions[0].Mood)
	assert.Equal(t, 75, history.Totals.FocusDuration)
}

func TestClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database unavailable", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.LogBreak(context.Background(), BreakLog{BreakType: "short"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "database unavailable")
}

func TestClient_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.SessionHistory(ctx, 0)
	require.Error(t, err)
}
