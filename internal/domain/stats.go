package domain

import (
	"time"
)

// DateFormat is the calendar-date layout used for streak comparisons and
// the persisted LastSessionDate field.
const DateFormat = "2006-01-02"

// PointsPerSession is the fixed focus-point reward for a completed session.
const PointsPerSession = 10

// PointsPerAction is the fixed focus-point reward for a logged action
// such as taking a break or recording a mood.
const PointsPerAction = 2

// Achievement is a one-way unlockable flag granted when a stats predicate
// becomes true.
type Achievement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
}

// UserStats is the gamification ledger aggregate: one record per user,
// mutated only through RecordSession and RecordAction.
type UserStats struct {
	TotalSessions   int           `json:"totalSessions"`
	CurrentStreak   int           `json:"currentStreak"`
	LongestStreak   int           `json:"longestStreak"`
	TotalFocusTime  int           `json:"totalFocusTime"` // minutes
	FocusPoints     int           `json:"focusPoints"`
	LastSessionDate string        `json:"lastSessionDate,omitempty"` // DateFormat, empty = no prior session
	Achievements    []Achievement `json:"achievements"`
}

// achievementRule pairs a catalog entry with its unlock predicate.
// Predicates are pure functions of the updated stats record and are
// evaluated in catalog order.
type achievementRule struct {
	Achievement
	check func(*UserStats) bool
}

// achievementCatalog is the canonical ordered list of achievements.
// IDs are stored in user records and must remain stable.
func achievementCatalog() []achievementRule {
	return []achievementRule{
		{
			Achievement: Achievement{
				ID:          "first-session",
				Title:       "First Steps",
				Description: "Complete your first focus session",
				Icon:        "🎯",
			},
			check: func(s *UserStats) bool { return s.TotalSessions >= 1 },
		},
		{
			Achievement: Achievement{
				ID:          "streak-3",
				Title:       "Getting Started",
				Description: "Maintain a 3-day streak",
				Icon:        "🔥",
			},
			check: func(s *UserStats) bool { return s.CurrentStreak >= 3 },
		},
		{
			Achievement: Achievement{
				ID:          "streak-7",
				Title:       "Week Warrior",
				Description: "Maintain a 7-day streak",
				Icon:        "⚡",
			},
			check: func(s *UserStats) bool { return s.CurrentStreak >= 7 },
		},
		{
			Achievement: Achievement{
				ID:          "streak-30",
				Title:       "Monthly Master",
				Description: "Maintain a 30-day streak",
				Icon:        "👑",
			},
			check: func(s *UserStats) bool { return s.CurrentStreak >= 30 },
		},
		{
			Achievement: Achievement{
				ID:          "sessions-10",
				Title:       "Dedicated",
				Description: "Complete 10 focus sessions",
				Icon:        "💪",
			},
			check: func(s *UserStats) bool { return s.TotalSessions >= 10 },
		},
		{
			Achievement: Achievement{
				ID:          "sessions-50",
				Title:       "Committed",
				Description: "Complete 50 focus sessions",
				Icon:        "🌟",
			},
			check: func(s *UserStats) bool { return s.TotalSessions >= 50 },
		},
		{
			Achievement: Achievement{
				ID:          "sessions-100",
				Title:       "Centurion",
				Description: "Complete 100 focus sessions",
				Icon:        "🏆",
			},
			check: func(s *UserStats) bool { return s.TotalSessions >= 100 },
		},
		{
			Achievement: Achievement{
				ID:          "focus-time-10",
				Title:       "Time Keeper",
				Description: "Accumulate 10 hours of focus time",
				Icon:        "⏰",
			},
			check: func(s *UserStats) bool { return s.TotalFocusTime >= 600 },
		},
	}
}

// DefaultUserStats returns a zeroed ledger with every achievement locked.
func DefaultUserStats() *UserStats {
	rules := achievementCatalog()
	achievements := make([]Achievement, len(rules))
	for i, r := range rules {
		achievements[i] = r.Achievement
	}
	return &UserStats{Achievements: achievements}
}

// MergeAchievements reconciles a stored achievement list onto the current
// catalog. Unlock state carries over by ID; entries the catalog no longer
// knows are dropped, new catalog entries start locked. Unlocked never
// reverts to locked.
func (s *UserStats) MergeAchievements(stored []Achievement) {
	byID := make(map[string]Achievement, len(stored))
	for _, a := range stored {
		byID[a.ID] = a
	}

	defaults := DefaultUserStats().Achievements
	merged := make([]Achievement, len(defaults))
	for i, a := range defaults {
		if prev, ok := byID[a.ID]; ok && prev.Unlocked {
			a.Unlocked = true
			a.UnlockedAt = prev.UnlockedAt
		}
		merged[i] = a
	}
	s.Achievements = merged
}

// RecordSession applies a completed work session of the given duration (in
// minutes) to the ledger and returns the achievements newly unlocked by this
// call. The streak rule compares calendar dates: a session on the same day
// leaves the streak unchanged, a session the day after the last one extends
// it, anything else resets it to 1. Non-positive durations add no focus
// time but still count as a session.
func (s *UserStats) RecordSession(durationMinutes int, now time.Time) []Achievement {
	s.TotalSessions++
	if durationMinutes > 0 {
		s.TotalFocusTime += durationMinutes
	}
	s.FocusPoints += PointsPerSession

	today := now.Format(DateFormat)
	yesterday := now.AddDate(0, 0, -1).Format(DateFormat)

	switch s.LastSessionDate {
	case today:
		// Same day: streak unchanged.
	case yesterday:
		s.CurrentStreak++
	default:
		s.CurrentStreak = 1
	}
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	s.LastSessionDate = today

	return s.checkAchievements(now)
}

// RecordAction applies a non-session action (logging a break, recording a
// mood) to the ledger: it awards the given points and re-evaluates locked
// achievement predicates. Session counters and the streak are untouched.
func (s *UserStats) RecordAction(points int, now time.Time) []Achievement {
	if points > 0 {
		s.FocusPoints += points
	}
	return s.checkAchievements(now)
}

// checkAchievements evaluates every locked achievement's predicate against
// the current stats, unlocks those that now hold, and returns them.
func (s *UserStats) checkAchievements(now time.Time) []Achievement {
	rules := achievementCatalog()
	ruleByID := make(map[string]achievementRule, len(rules))
	for _, r := range rules {
		ruleByID[r.ID] = r
	}

	var unlocked []Achievement
	for i := range s.Achievements {
		a := &s.Achievements[i]
		if a.Unlocked {
			continue
		}
		rule, ok := ruleByID[a.ID]
		if !ok || !rule.check(s) {
			continue
		}
		a.Unlocked = true
		t := now
		a.UnlockedAt = &t
		unlocked = append(unlocked, *a)
	}
	return unlocked
}

// UnlockedAchievements returns the unlocked subset in catalog order.
func (s *UserStats) UnlockedAchievements() []Achievement {
	var out []Achievement
	for _, a := range s.Achievements {
		if a.Unlocked {
			out = append(out, a)
		}
	}
	return out
}

// LockedAchievements returns the locked subset in catalog order.
func (s *UserStats) LockedAchievements() []Achievement {
	var out []Achievement
	for _, a := range s.Achievements {
		if !a.Unlocked {
			out = append(out, a)
		}
	}
	return out
}
