package mcp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pausequest/pausequest-cli/internal/domain"
)

// mockStateProvider is a mock implementation of ports.MCPStateProvider for testing.
type mockStateProvider struct {
	stats    *domain.UserStats
	breaks   []domain.BreakSchedule
	prefs    domain.Preferences
	unlocked []domain.Achievement

	recordedDuration int
	completedBreakID string
	appliedPatch     domain.PreferencesPatch
}

func (m *mockStateProvider) GetStats(ctx context.Context) (*domain.UserStats, error) {
	if m.stats == nil {
		return domain.DefaultUserStats(), nil
	}
	return m.stats, nil
}

func (m *mockStateProvider) GetUpcomingBreaks(ctx context.Context, limit int) ([]domain.BreakSchedule, error) {
	if len(m.breaks) > limit {
		return m.breaks[:limit], nil
	}
	return m.breaks, nil
}

func (m *mockStateProvider) GetPreferences(ctx context.Context) (domain.Preferences, error) {
	return m.prefs, nil
}

func (m *mockStateProvider) RecordSession(ctx context.Context, durationMinutes int) (*domain.UserStats, []domain.Achievement, error) {
	m.recordedDuration = durationMinutes
	return m.GetStatsOrDefault(), m.unlocked, nil
}

func (m *mockStateProvider) GetStatsOrDefault() *domain.UserStats {
	if m.stats == nil {
		return domain.DefaultUserStats()
	}
	return m.stats
}

func (m *mockStateProvider) CompleteBreak(ctx context.Context, id string) error {
	m.completedBreakID = id
	return nil
}

func (m *mockStateProvider) UpdatePreferences(ctx context.Context, patch domain.PreferencesPatch) (domain.Preferences, error) {
	m.appliedPatch = patch
	m.prefs.Apply(patch)
	return m.prefs, nil
}

func TestNewServer(t *testing.T) {
	mock := &mockStateProvider{}
	server := NewServer(mock)

	if server == nil {
		t.Fatal("NewServer() returned nil")
	}

	if server.stateProvider != mock {
		t.Error("NewServer() did not set state provider correctly")
	}

	if server.server == nil {
		t.Error("NewServer() did not create MCP server")
	}
}

func TestServer_IsRunning(t *testing.T) {
	mock := &mockStateProvider{}
	server := NewServer(mock)

	if server.IsRunning() {
		t.Error("IsRunning() should return false before Start()")
	}
}

func TestServer_handleGetStats(t *testing.T) {
	stats := domain.DefaultUserStats()
	stats.RecordSession(25, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	mock := &mockStateProvider{stats: stats}
	server := NewServer(mock)
	request := mcp.CallToolRequest{}

	result, err := server.handleGetStats(context.Background(), request)
	if err != nil {
		t.Fatalf("handleGetStats() error = %v", err)
	}
	if result == nil || len(result.Content) == 0 {
		t.Fatal("handleGetStats() returned empty result")
	}

	text := resultText(t, result)
	if !strings.Contains(text, `"total_sessions": 1`) {
		t.Errorf("result missing session count: %s", text)
	}
	if !strings.Contains(text, "first-session") {
		t.Errorf("result missing achievements: %s", text)
	}
}

func TestServer_handleGetUpcomingBreaks(t *testing.T) {
	mock := &mockStateProvider{
		breaks: []domain.BreakSchedule{
			{ID: "b1", StartTime: time.Now().Add(time.Hour), Duration: 5, Kind: domain.BreakKindShort, Title: "Short Break"},
			{ID: "b2", StartTime: time.Now().Add(2 * time.Hour), Duration: 15, Kind: domain.BreakKindLong, Title: "Long Break"},
		},
	}

	server := NewServer(mock)
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"limit": 1,
			},
		},
	}

	result, err := server.handleGetUpcomingBreaks(context.Background(), request)
	if err != nil {
		t.Fatalf("handleGetUpcomingBreaks() error = %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "b1") {
		t.Errorf("result missing first break: %s", text)
	}
	if strings.Contains(text, "b2") {
		t.Errorf("limit was not applied: %s", text)
	}
}

func TestServer_handleRecordSession(t *testing.T) {
	mock := &mockStateProvider{
		unlocked: []domain.Achievement{{ID: "first-session", Title: "First Steps", Icon: "🎯"}},
	}

	server := NewServer(mock)
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"duration_minutes": 50,
			},
		},
	}

	result, err := server.handleRecordSession(context.Background(), request)
	if err != nil {
		t.Fatalf("handleRecordSession() error = %v", err)
	}

	if mock.recordedDuration != 50 {
		t.Errorf("recorded duration = %v, want 50", mock.recordedDuration)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "First Steps") {
		t.Errorf("result missing unlocked achievement: %s", text)
	}
}

func TestServer_handleRecordSession_MissingDuration(t *testing.T) {
	server := NewServer(&mockStateProvider{})
	request := mcp.CallToolRequest{}

	result, err := server.handleRecordSession(context.Background(), request)
	if err != nil {
		t.Fatalf("handleRecordSession() error = %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("missing duration_minutes should produce a tool error result")
	}
}

func TestServer_handleCompleteBreak(t *testing.T) {
	mock := &mockStateProvider{}
	server := NewServer(mock)
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"break_id": "b1",
			},
		},
	}

	result, err := server.handleCompleteBreak(context.Background(), request)
	if err != nil {
		t.Fatalf("handleCompleteBreak() error = %v", err)
	}
	if result == nil {
		t.Fatal("handleCompleteBreak() returned nil result")
	}
	if mock.completedBreakID != "b1" {
		t.Errorf("completed break id = %v, want b1", mock.completedBreakID)
	}
}

func TestServer_handleUpdatePreferences(t *testing.T) {
	mock := &mockStateProvider{prefs: domain.DefaultPreferences()}
	server := NewServer(mock)
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"work_session_duration": 30,
				"smart_scheduling":      false,
			},
		},
	}

	result, err := server.handleUpdatePreferences(context.Background(), request)
	if err != nil {
		t.Fatalf("handleUpdatePreferences() error = %v", err)
	}
	if result == nil {
		t.Fatal("handleUpdatePreferences() returned nil result")
	}

	if mock.appliedPatch.WorkSessionDuration == nil || *mock.appliedPatch.WorkSessionDuration != 30 {
		t.Error("work_session_duration was not applied")
	}
	if mock.appliedPatch.EnableSmartScheduling == nil || *mock.appliedPatch.EnableSmartScheduling {
		t.Error("smart_scheduling=false was not applied")
	}
	// Omitted fields stay nil
	if mock.appliedPatch.LongBreakInterval != nil {
		t.Error("long_break_interval should be left unchanged")
	}
}

// resultText extracts the text content from a tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatal("tool result is not text content")
	}
	return text.Text
}
