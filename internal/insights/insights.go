// Package insights derives break suggestions and simple mood/sentiment
// patterns from the remote session history.
package insights

import (
	"sort"

	"github.com/pausequest/pausequest-cli/internal/adapters/api"
)

// MoodEntry describes one selectable mood.
type MoodEntry struct {
	Mood        string
	Emoji       string
	Description string
}

// MoodOptions is the canonical mood catalog.
var MoodOptions = []MoodEntry{
	{Mood: "energized", Emoji: "⚡", Description: "Feeling productive and full of energy"},
	{Mood: "focused", Emoji: "🎯", Description: "In the zone and concentrated"},
	{Mood: "tired", Emoji: "😴", Description: "Feeling low on energy"},
	{Mood: "stressed", Emoji: "😫", Description: "Feeling overwhelmed or anxious"},
	{Mood: "balanced", Emoji: "☯️", Description: "Feeling calm and centered"},
	{Mood: "distracted", Emoji: "🤯", Description: "Having trouble focusing"},
}

// Suggestion is one proposed break activity.
type Suggestion struct {
	Type        string
	Description string
}

// breakSuggestions maps each mood to its break proposals, best first.
var breakSuggestions = map[string][]Suggestion{
	"energized": {
		{Type: "stretch", Description: "Try some light stretching to maintain your energy"},
		{Type: "water", Description: "Stay hydrated to keep your energy levels up"},
	},
	"focused": {
		{Type: "eye_break", Description: "Rest your eyes with the 20-20-20 rule"},
		{Type: "breathe", Description: "Take 5 deep breaths to stay focused"},
	},
	"tired": {
		{Type: "coffee", Description: "A short coffee break might help"},
		{Type: "walk", Description: "A quick walk can boost your energy"},
	},
	"stressed": {
		{Type: "meditation", Description: "Try a 2-minute meditation"},
		{Type: "breathe", Description: "Deep breathing can help reduce stress"},
	},
	"balanced": {
		{Type: "water", Description: "Stay hydrated"},
		{Type: "stretch", Description: "A quick stretch can be refreshing"},
	},
	"distracted": {
		{Type: "focus", Description: "Try a quick focus exercise"},
		{Type: "walk", Description: "A short walk can help clear your mind"},
	},
}

// BreakSuggestion returns the top proposal for the given mood. Unknown
// moods get a generic stretch break.
func BreakSuggestion(mood string) Suggestion {
	if s, ok := breakSuggestions[mood]; ok && len(s) > 0 {
		return s[0]
	}
	return Suggestion{Type: "stretch", Description: "Take a quick stretch break"}
}

// Patterns summarizes the logged session history.
type Patterns struct {
	MostCommonMood   string
	AverageSentiment float64
	Suggestion       string
}

// AnalyzePatterns aggregates mood counts and sentiment over the given
// sessions. Returns nil when there is nothing to analyze. Mood ties break
// alphabetically so the result is deterministic.
func AnalyzePatterns(sessions []api.SessionRecord) *Patterns {
	if len(sessions) == 0 {
		return nil
	}

	moodCounts := make(map[string]int)
	var totalScore float64
	for _, s := range sessions {
		if s.Mood != "" {
			moodCounts[s.Mood]++
		}
		totalScore += s.SentimentScore
	}

	moods := make([]string, 0, len(moodCounts))
	for m := range moodCounts {
		moods = append(moods, m)
	}
	sort.Slice(moods, func(i, j int) bool {
		if moodCounts[moods[i]] != moodCounts[moods[j]] {
			return moodCounts[moods[i]] > moodCounts[moods[j]]
		}
		return moods[i] < moods[j]
	})

	p := &Patterns{AverageSentiment: totalScore / float64(len(sessions))}
	if len(moods) > 0 {
		p.MostCommonMood = moods[0]
	}
	p.Suggestion = moodSuggestion(p.MostCommonMood, p.AverageSentiment)
	return p
}

// moodSuggestion turns the aggregate into one actionable line.
func moodSuggestion(mood string, sentiment float64) string {
	if mood == "" {
		return "Consider taking regular breaks to maintain focus"
	}
	if sentiment < 0 {
		return "Your recent sessions trend negative. " + BreakSuggestion(mood).Description
	}
	return BreakSuggestion(mood).Description
}
