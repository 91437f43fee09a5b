// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/pausequest/pausequest-cli/internal/config"
	"github.com/pausequest/pausequest-cli/internal/domain"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg *config.NotificationConfig
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if n.cfg == nil || !n.cfg.Enabled {
		return nil
	}
	return beeep.Notify(title, message, "")
}

// NotifySessionComplete displays a notification when a focus session ends.
func (n *Notifier) NotifySessionComplete(durationMinutes int) error {
	title := "🛸 Session Complete!"
	message := fmt.Sprintf("Great job! You completed a %d minute focus session.", durationMinutes)
	return n.Notify(title, message)
}

// NotifyBreakDue displays a notification proposing the next break.
func (n *Notifier) NotifyBreakDue(b *domain.BreakSchedule) error {
	if b == nil {
		return nil
	}
	title := fmt.Sprintf("☕ %s coming up", b.Title)
	message := fmt.Sprintf("%d minutes at %s. %s", b.Duration, b.StartTime.Format("15:04"), b.Description)
	return n.Notify(title, message)
}

// NotifyAchievement displays a notification for a newly unlocked achievement.
func (n *Notifier) NotifyAchievement(a domain.Achievement) error {
	title := fmt.Sprintf("%s Achievement unlocked!", a.Icon)
	return n.Notify(title, fmt.Sprintf("%s — %s", a.Title, a.Description))
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
