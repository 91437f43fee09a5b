// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/pausequest/pausequest-cli/internal/config"
	"github.com/pausequest/pausequest-cli/internal/domain"
)

// tickMsg is sent once per second to advance the countdown.
type tickMsg time.Time

// refreshMsg is sent on the coarse poll that rederives upcoming breaks.
type refreshMsg time.Time

// CompletionSummary is what the host hands back after the completion
// fan-out so the view can show rewards and the next proposed break. Err is
// set when the fan-out failed and nothing was recorded.
type CompletionSummary struct {
	Stats     *domain.UserStats
	Unlocked  []domain.Achievement
	NextBreak *domain.BreakSchedule
	Err       error
}

// Model is the countdown timer view. The per-second tick drives the
// domain countdown; when it completes the model invokes the host's
// completion callback exactly once and switches to the summary screen.
type Model struct {
	countdown    *domain.Countdown
	totalSeconds int
	theme        config.ThemeConfig
	progress     progress.Model
	width        int

	upcoming     []domain.BreakSchedule
	fetchBreaks  func() []domain.BreakSchedule
	onComplete   func() *CompletionSummary
	summary      *CompletionSummary
	completed    bool
	quitting     bool
}

// NewModel creates a timer view for the given duration in seconds.
func NewModel(seconds int, theme config.ThemeConfig, onComplete func() *CompletionSummary, fetchBreaks func() []domain.BreakSchedule) Model {
	c := domain.NewCountdown(seconds)
	c.Start()
	m := Model{
		countdown:    c,
		totalSeconds: seconds,
		theme:        theme,
		progress:     progress.New(progress.WithDefaultGradient()),
		fetchBreaks:  fetchBreaks,
		onComplete:   onComplete,
	}
	if fetchBreaks != nil {
		m.upcoming = fetchBreaks()
	}
	// Seed the width before the first WindowSizeMsg arrives.
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 8 {
		m.width = w
		m.progress.Width = w - 8
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
	}
	return m
}

// Init starts the per-second and per-minute ticks.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), refreshCmd())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 8
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.countdown.Stop()
			m.quitting = true
			return m, tea.Quit
		case "s":
			if m.countdown.Running() {
				m.countdown.Stop()
			} else if !m.completed {
				m.countdown.Start()
			}
			return m, nil
		case "enter":
			if m.completed {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

	case tickMsg:
		if m.completed {
			return m, nil
		}
		if m.countdown.Tick() {
			m.completed = true
			if m.onComplete != nil {
				m.summary = m.onComplete()
			}
			return m, nil
		}
		return m, tickCmd()

	case refreshMsg:
		if m.fetchBreaks != nil && !m.completed {
			m.upcoming = m.fetchBreaks()
		}
		return m, refreshCmd()
	}

	return m, nil
}

// View renders the countdown or the completion summary.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.completed {
		return m.completionView()
	}
	return m.countdownView()
}

func (m Model) countdownView() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	timeColor := m.theme.ColorFocus
	status := "Focusing"
	if !m.countdown.Running() {
		timeColor = m.theme.ColorPaused
		status = "Paused"
	}
	timeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(timeColor))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s\n\n", titleStyle.Render(m.theme.IconApp+" PauseQuest — "+status)))
	b.WriteString(fmt.Sprintf("  %s\n\n", timeStyle.Render(formatClock(m.countdown.Remaining()))))
	b.WriteString(fmt.Sprintf("  %s\n", m.progress.ViewAs(m.countdown.Progress(m.totalSeconds))))

	if len(m.upcoming) > 0 {
		next := m.upcoming[0]
		b.WriteString(fmt.Sprintf("\n  %s %s at %s (%d min)\n",
			m.theme.IconBreak, next.Title, next.StartTime.Format("15:04"), next.Duration))
	}

	b.WriteString(fmt.Sprintf("\n  %s\n", helpStyle.Render("s stop/resume • q quit")))
	return b.String()
}

func (m Model) completionView() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorBreak))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s\n\n", titleStyle.Render("✨ Session complete!")))
	b.WriteString(fmt.Sprintf("  %s\n", m.progress.ViewAs(1.0)))

	if m.summary != nil {
		if m.summary.Err != nil {
			errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorPaused))
			b.WriteString(fmt.Sprintf("\n  %s\n", errStyle.Render("⚠ "+m.summary.Err.Error())))
		}
		if m.summary.Stats != nil {
			s := m.summary.Stats
			b.WriteString(fmt.Sprintf("\n  %s %d focus points • %d day streak • %d sessions\n",
				m.theme.IconStats, s.FocusPoints, s.CurrentStreak, s.TotalSessions))
		}
		for _, a := range m.summary.Unlocked {
			b.WriteString(fmt.Sprintf("  %s Achievement unlocked: %s\n", a.Icon, a.Title))
		}
		if m.summary.NextBreak != nil {
			nb := m.summary.NextBreak
			b.WriteString(fmt.Sprintf("  %s Next: %s at %s (%d min)\n",
				m.theme.IconBreak, nb.Title, nb.StartTime.Format("15:04"), nb.Duration))
		}
	}

	b.WriteString(fmt.Sprintf("\n  %s\n", helpStyle.Render("enter/q to exit")))
	return b.String()
}

// Completed reports whether the run finished (as opposed to being quit).
func (m Model) Completed() bool {
	return m.completed
}

// Err returns the error from the completion fan-out, if any.
func (m Model) Err() error {
	if m.summary == nil {
		return nil
	}
	return m.summary.Err
}

// formatClock renders seconds as MM:SS.
func formatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// tickCmd schedules the next per-second tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshCmd schedules the next upcoming-breaks refresh.
func refreshCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}
