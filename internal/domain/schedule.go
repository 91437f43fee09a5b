package domain

import (
	"sort"
	"time"
)

// BreakKind distinguishes generated break entries.
type BreakKind string

const (
	BreakKindShort    BreakKind = "short"
	BreakKindLong     BreakKind = "long"
	BreakKindCalendar BreakKind = "calendar"
)

// BreakSchedule is one proposed or completed break.
type BreakSchedule struct {
	ID          string    `json:"id"`
	StartTime   time.Time `json:"startTime"`
	Duration    int       `json:"duration"` // minutes
	Kind        BreakKind `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
}

// WorkingHours is the daily window smart scheduling is meant for.
type WorkingHours struct {
	Start    string `json:"start"` // "09:00"
	End      string `json:"end"`   // "17:00"
	Weekdays []int  `json:"weekdays"`
}

// Preferences holds the smart scheduler settings. Durations are minutes.
type Preferences struct {
	WorkSessionDuration       int          `json:"workSessionDuration"`
	ShortBreakDuration        int          `json:"shortBreakDuration"`
	LongBreakDuration         int          `json:"longBreakDuration"`
	LongBreakInterval         int          `json:"longBreakInterval"`
	EnableSmartScheduling     bool         `json:"enableSmartScheduling"`
	EnableCalendarIntegration bool         `json:"enableCalendarIntegration"`
	WorkingHours              WorkingHours `json:"workingHours"`
}

// DefaultPreferences returns the standard scheduler settings.
func DefaultPreferences() Preferences {
	return Preferences{
		WorkSessionDuration:   50,
		ShortBreakDuration:    5,
		LongBreakDuration:     15,
		LongBreakInterval:     4,
		EnableSmartScheduling: true,
		WorkingHours: WorkingHours{
			Start:    "09:00",
			End:      "17:00",
			Weekdays: []int{1, 2, 3, 4, 5}, // Monday to Friday
		},
	}
}

// PreferencesPatch carries a partial preferences update. Nil fields are
// left unchanged by Apply.
type PreferencesPatch struct {
	WorkSessionDuration       *int          `json:"workSessionDuration,omitempty"`
	ShortBreakDuration        *int          `json:"shortBreakDuration,omitempty"`
	LongBreakDuration         *int          `json:"longBreakDuration,omitempty"`
	LongBreakInterval         *int          `json:"longBreakInterval,omitempty"`
	EnableSmartScheduling     *bool         `json:"enableSmartScheduling,omitempty"`
	EnableCalendarIntegration *bool         `json:"enableCalendarIntegration,omitempty"`
	WorkingHours              *WorkingHours `json:"workingHours,omitempty"`
}

// Apply merges the patch into the preferences.
func (p *Preferences) Apply(patch PreferencesPatch) {
	if patch.WorkSessionDuration != nil {
		p.WorkSessionDuration = *patch.WorkSessionDuration
	}
	if patch.ShortBreakDuration != nil {
		p.ShortBreakDuration = *patch.ShortBreakDuration
	}
	if patch.LongBreakDuration != nil {
		p.LongBreakDuration = *patch.LongBreakDuration
	}
	if patch.LongBreakInterval != nil {
		p.LongBreakInterval = *patch.LongBreakInterval
	}
	if patch.EnableSmartScheduling != nil {
		p.EnableSmartScheduling = *patch.EnableSmartScheduling
	}
	if patch.EnableCalendarIntegration != nil {
		p.EnableCalendarIntegration = *patch.EnableCalendarIntegration
	}
	if patch.WorkingHours != nil {
		p.WorkingHours = *patch.WorkingHours
	}
}

// SchedulerState is the smart break scheduler aggregate. WorkSessionCount
// and BreakHistory are durable; ScheduledBreaks is always rederived from
// the count and preferences, never persisted.
type SchedulerState struct {
	Preferences      Preferences
	WorkSessionCount int
	BreakHistory     []BreakSchedule
	ScheduledBreaks  []BreakSchedule
}

// NewSchedulerState returns a scheduler with default preferences and an
// empty history.
func NewSchedulerState() *SchedulerState {
	return &SchedulerState{Preferences: DefaultPreferences()}
}

// Regenerate replaces the scheduled-break queue from the current work
// session count and preferences. The queue holds a single lookahead entry:
// the next break is long iff at least one session is done and the count is
// a multiple of the long-break interval, and it starts one work session
// from now. Smart scheduling disabled means an empty queue.
func (s *SchedulerState) Regenerate(now time.Time) {
	if !s.Preferences.EnableSmartScheduling {
		s.ScheduledBreaks = nil
		return
	}

	long := s.WorkSessionCount > 0 &&
		s.Preferences.LongBreakInterval > 0 &&
		s.WorkSessionCount%s.Preferences.LongBreakInterval == 0

	entry := BreakSchedule{
		ID:          generateID(),
		StartTime:   now.Add(time.Duration(s.Preferences.WorkSessionDuration) * time.Minute),
		Duration:    s.Preferences.ShortBreakDuration,
		Kind:        BreakKindShort,
		Title:       "Short Break",
		Description: "Take a quick break to stay productive",
	}
	if long {
		entry.Duration = s.Preferences.LongBreakDuration
		entry.Kind = BreakKindLong
		entry.Title = "Long Break"
		entry.Description = "Time for a longer break to recharge!"
	}

	s.ScheduledBreaks = []BreakSchedule{entry}
}

// CompleteWorkSession advances the rolling session count and regenerates
// the queue.
func (s *SchedulerState) CompleteWorkSession(now time.Time) {
	s.WorkSessionCount++
	s.Regenerate(now)
}

// UpcomingBreaks returns up to limit pending breaks whose start time is
// strictly in the future, ascending by start time. Pure read.
func (s *SchedulerState) UpcomingBreaks(now time.Time, limit int) []BreakSchedule {
	var out []BreakSchedule
	for _, b := range s.ScheduledBreaks {
		if !b.Completed && b.StartTime.After(now) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CompleteBreak marks the pending break with the given id completed and
// moves it to the history. Unknown or already-completed ids are a no-op.
// Returns true if a break was moved.
func (s *SchedulerState) CompleteBreak(id string) bool {
	for i, b := range s.ScheduledBreaks {
		if b.ID != id || b.Completed {
			continue
		}
		b.Completed = true
		s.BreakHistory = append(s.BreakHistory, b)
		s.ScheduledBreaks = append(s.ScheduledBreaks[:i], s.ScheduledBreaks[i+1:]...)
		return true
	}
	return false
}
