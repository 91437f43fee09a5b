// Package mcp provides the MCP (Model Context Protocol) server implementation.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pausequest/pausequest-cli/internal/domain"
	"github.com/pausequest/pausequest-cli/internal/ports"
)

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server        *server.MCPServer
	stateProvider ports.MCPStateProvider
	ctx           context.Context
	cancel        context.CancelFunc
}

// Ensure Server implements ports.MCPHandler.
var _ ports.MCPHandler = (*Server)(nil)

// NewServer creates a new MCP server instance.
func NewServer(stateProvider ports.MCPStateProvider) *Server {
	s := &Server{
		stateProvider: stateProvider,
	}

	s.server = server.NewMCPServer(
		"pausequest",
		"1.0.0",
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	// Tool: get_stats
	s.server.AddTool(
		mcp.NewTool(
			"get_stats",
			mcp.WithDescription("Get the gamification ledger: sessions, streaks, focus points, and achievements"),
		),
		s.handleGetStats,
	)

	// Tool: get_upcoming_breaks
	upcomingTool := mcp.NewTool(
		"get_upcoming_breaks",
		mcp.WithDescription("List pending future breaks proposed by the smart scheduler"),
		mcp.WithNumber(
			"limit",
			mcp.Description("Maximum number of breaks to return (default: 3)"),
		),
	)
	s.server.AddTool(upcomingTool, s.handleGetUpcomingBreaks)

	// Tool: get_preferences
	s.server.AddTool(
		mcp.NewTool(
			"get_preferences",
			mcp.WithDescription("Get the smart scheduler preferences"),
		),
		s.handleGetPreferences,
	)

	// Tool: record_session
	recordTool := mcp.NewTool(
		"record_session",
		mcp.WithDescription("Record a completed focus session, awarding points and advancing the break schedule"),
		mcp.WithNumber(
			"duration_minutes",
			mcp.Required(),
			mcp.Description("Length of the completed session in minutes"),
		),
	)
	s.server.AddTool(recordTool, s.handleRecordSession)

	// Tool: complete_break
	completeTool := mcp.NewTool(
		"complete_break",
		mcp.WithDescription("Mark a scheduled break as taken"),
		mcp.WithString(
			"break_id",
			mcp.Required(),
			mcp.Description("The ID of the scheduled break"),
		),
	)
	s.server.AddTool(completeTool, s.handleCompleteBreak)

	// Tool: update_preferences
	prefsTool := mcp.NewTool(
		"update_preferences",
		mcp.WithDescription("Update scheduler preferences; omitted fields are left unchanged"),
		mcp.WithNumber("work_session_duration", mcp.Description("Work session length in minutes")),
		mcp.WithNumber("short_break_duration", mcp.Description("Short break length in minutes")),
		mcp.WithNumber("long_break_duration", mcp.Description("Long break length in minutes")),
		mcp.WithNumber("long_break_interval", mcp.Description("Work sessions before a long break")),
		mcp.WithBoolean("smart_scheduling", mcp.Description("Enable or disable smart scheduling")),
	)
	s.server.AddTool(prefsTool, s.handleUpdatePreferences)
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)
	return server.ServeStdio(s.server)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// IsRunning returns true if the server is active.
func (s *Server) IsRunning() bool {
	if s.ctx == nil {
		return false
	}
	return s.ctx.Err() == nil
}

// handleGetStats handles the get_stats tool.
func (s *Server) handleGetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := s.stateProvider.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return marshalResult(statsPayload(stats))
}

// handleGetUpcomingBreaks handles the get_upcoming_breaks tool.
func (s *Server) handleGetUpcomingBreaks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 3)

	breaks, err := s.stateProvider.GetUpcomingBreaks(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming breaks: %w", err)
	}

	entries := make([]map[string]interface{}, 0, len(breaks))
	for _, b := range breaks {
		entries = append(entries, breakPayload(b))
	}
	return marshalResult(map[string]interface{}{"breaks": entries})
}

// handleGetPreferences handles the get_preferences tool.
func (s *Server) handleGetPreferences(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prefs, err := s.stateProvider.GetPreferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return marshalResult(prefs)
}

// handleRecordSession handles the record_session tool.
func (s *Server) handleRecordSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	duration, err := request.RequireInt("duration_minutes")
	if err != nil {
		return mcp.NewToolResultError("duration_minutes is required: " + err.Error()), nil
	}

	stats, unlocked, err := s.stateProvider.RecordSession(ctx, duration)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to record session: %v", err)), nil
	}

	unlockedData := make([]map[string]interface{}, 0, len(unlocked))
	for _, a := range unlocked {
		unlockedData = append(unlockedData, map[string]interface{}{
			"id":    a.ID,
			"title": a.Title,
			"icon":  a.Icon,
		})
	}

	return marshalResult(map[string]interface{}{
		"stats":    statsPayload(stats),
		"unlocked": unlockedData,
	})
}

// handleCompleteBreak handles the complete_break tool.
func (s *Server) handleCompleteBreak(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	breakID, err := request.RequireString("break_id")
	if err != nil {
		return mcp.NewToolResultError("break_id is required: " + err.Error()), nil
	}

	if err := s.stateProvider.CompleteBreak(ctx, breakID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to complete break: %v", err)), nil
	}
	return mcp.NewToolResultText(`{"completed": true}`), nil
}

// handleUpdatePreferences handles the update_preferences tool.
func (s *Server) handleUpdatePreferences(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var patch domain.PreferencesPatch
	if v := request.GetInt("work_session_duration", 0); v > 0 {
		patch.WorkSessionDuration = &v
	}
	if v := request.GetInt("short_break_duration", 0); v > 0 {
		patch.ShortBreakDuration = &v
	}
	if v := request.GetInt("long_break_duration", 0); v > 0 {
		patch.LongBreakDuration = &v
	}
	if v := request.GetInt("long_break_interval", 0); v > 0 {
		patch.LongBreakInterval = &v
	}
	if v, err := request.RequireBool("smart_scheduling"); err == nil {
		patch.EnableSmartScheduling = &v
	}

	prefs, err := s.stateProvider.UpdatePreferences(ctx, patch)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to update preferences: %v", err)), nil
	}
	return marshalResult(prefs)
}

// statsPayload flattens the ledger for tool output.
func statsPayload(stats *domain.UserStats) map[string]interface{} {
	achievements := make([]map[string]interface{}, 0, len(stats.Achievements))
	for _, a := range stats.Achievements {
		entry := map[string]interface{}{
			"id":       a.ID,
			"title":    a.Title,
			"icon":     a.Icon,
			"unlocked": a.Unlocked,
		}
		if a.UnlockedAt != nil {
			entry["unlocked_at"] = a.UnlockedAt.Format("2006-01-02T15:04:05")
		}
		achievements = append(achievements, entry)
	}

	return map[string]interface{}{
		"total_sessions":    stats.TotalSessions,
		"current_streak":    stats.CurrentStreak,
		"longest_streak":    stats.LongestStreak,
		"total_focus_time":  stats.TotalFocusTime,
		"focus_points":      stats.FocusPoints,
		"last_session_date": stats.LastSessionDate,
		"achievements":      achievements,
	}
}

// breakPayload flattens one scheduled break for tool output.
func breakPayload(b domain.BreakSchedule) map[string]interface{} {
	return map[string]interface{}{
		"id":         b.ID,
		"start_time": b.StartTime.Format("2006-01-02T15:04:05"),
		"duration":   b.Duration,
		"kind":       string(b.Kind),
		"title":      b.Title,
		"completed":  b.Completed,
	}
}

// marshalResult renders the payload as an indented-JSON tool result.
func marshalResult(payload any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
