package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pausequest/pausequest-cli/internal/config"
	"github.com/pausequest/pausequest-cli/internal/domain"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{1500, "25:00"},
		{300, "05:00"},
		{90, "01:30"},
		{0, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := formatClock(tt.seconds)
			if got != tt.want {
				t.Errorf("formatClock(%v) = %v, want %v", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestNewModel(t *testing.T) {
	model := NewModel(1500, config.DefaultThemeConfig(), nil, nil)

	if model.countdown == nil {
		t.Fatal("NewModel() should create a countdown")
	}
	if !model.countdown.Running() {
		t.Error("NewModel() should start the countdown")
	}
	if model.countdown.Remaining() != 1500 {
		t.Errorf("Remaining() = %v, want 1500", model.countdown.Remaining())
	}
}

func TestModel_TickCompletesOnce(t *testing.T) {
	completions := 0
	model := NewModel(2, config.DefaultThemeConfig(), func() *CompletionSummary {
		completions++
		return &CompletionSummary{Stats: domain.DefaultUserStats()}
	}, nil)

	var next tea.Model = model
	for i := 0; i < 5; i++ {
		next, _ = next.(Model).Update(tickMsg(time.Now()))
	}

	m := next.(Model)
	if !m.Completed() {
		t.Error("model should be completed after the countdown runs out")
	}
	if completions != 1 {
		t.Errorf("completion callback fired %d times, want 1", completions)
	}
	if m.summary == nil {
		t.Error("completion summary should be stored")
	}
}

func TestModel_StopResume(t *testing.T) {
	model := NewModel(60, config.DefaultThemeConfig(), nil, nil)

	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m := next.(Model)
	if m.countdown.Running() {
		t.Error("s should stop the countdown")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = next.(Model)
	if !m.countdown.Running() {
		t.Error("s should resume the countdown")
	}
}

func TestModel_QuitWithoutCompleting(t *testing.T) {
	model := NewModel(60, config.DefaultThemeConfig(), func() *CompletionSummary {
		t.Error("completion callback should not fire on quit")
		return nil
	}, nil)

	next, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m := next.(Model)

	if cmd == nil {
		t.Error("q should produce a quit command")
	}
	if m.Completed() {
		t.Error("quit should not mark the run completed")
	}
	if m.countdown.Running() {
		t.Error("quit should stop the countdown")
	}
}

func TestModel_View(t *testing.T) {
	model := NewModel(1500, config.DefaultThemeConfig(), nil, func() []domain.BreakSchedule {
		return []domain.BreakSchedule{{
			Title:     "Short Break",
			StartTime: time.Date(2025, 3, 10, 9, 50, 0, 0, time.UTC),
			Duration:  5,
		}}
	})

	view := model.View()
	if !strings.Contains(view, "25:00") {
		t.Errorf("view missing countdown clock: %s", view)
	}
	if !strings.Contains(view, "Short Break") {
		t.Errorf("view missing upcoming break: %s", view)
	}
}

func TestModel_CompletionView(t *testing.T) {
	model := NewModel(1, config.DefaultThemeConfig(), func() *CompletionSummary {
		stats := domain.DefaultUserStats()
		stats.RecordSession(25, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
		return &CompletionSummary{
			Stats: stats,
			NextBreak: &domain.BreakSchedule{
				Title:     "Short Break",
				StartTime: time.Date(2025, 3, 10, 12, 50, 0, 0, time.UTC),
				Duration:  5,
			},
		}
	}, nil)

	next, _ := model.Update(tickMsg(time.Now()))
	view := next.(Model).View()

	if !strings.Contains(view, "Session complete") {
		t.Errorf("completion view missing headline: %s", view)
	}
	if !strings.Contains(view, "Short Break") {
		t.Errorf("completion view missing next break: %s", view)
	}
}

func TestModel_CompletionError(t *testing.T) {
	model := NewModel(1, config.DefaultThemeConfig(), func() *CompletionSummary {
		return &CompletionSummary{Err: errors.New("failed to record session: disk full")}
	}, nil)

	next, _ := model.Update(tickMsg(time.Now()))
	m := next.(Model)

	if m.Err() == nil {
		t.Fatal("Err() should surface the completion failure")
	}
	if !strings.Contains(m.View(), "failed to record session") {
		t.Errorf("completion view should show the failure: %s", m.View())
	}
}
