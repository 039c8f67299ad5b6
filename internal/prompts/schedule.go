package prompts

import (
	"strings"
	"time"
)

// Schedule reasons
const (
	ReasonFromAnchor      = "from_anchor"
	ReasonFallbackMorning = "fallback_morning"
)

// WaitingDelay is how soon a "while waiting" anchor (kettle, microwave) fires
const WaitingDelay = 5 * time.Minute

// ScheduledPrompt is the next time a habit prompt should fire
type ScheduledPrompt struct {
	NextFireAt time.Time `json:"next_fire_at"`
	Reason     string    `json:"reason"`
}

type clockTime struct {
	hour, minute int
}

type anchorRule struct {
	keywords []string
	at       clockTime
}

var anchorRules = []anchorRule{
	{keywords: []string{"wake", "morning", "breakfast", "brush my teeth"}, at: clockTime{7, 30}},
	{keywords: []string{"lunch", "noon", "midday"}, at: clockTime{12, 0}},
	{keywords: []string{"commute home", "after work", "dinner", "evening"}, at: clockTime{18, 30}},
}

var waitingKeywords = []string{"kettle", "microwave", "boil"}

var fallbackTime = clockTime{9, 0}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// guessAnchorTime infers a time of day from free-form anchor text
func guessAnchorTime(anchor string, now time.Time) (clockTime, bool) {
	lowered := strings.ToLower(anchor)
	if lowered == "" {
		return clockTime{}, false
	}

	for _, rule := range anchorRules {
		if containsAny(lowered, rule.keywords) {
			return rule.at, true
		}
	}

	if containsAny(lowered, waitingKeywords) {
		soon := now.Add(WaitingDelay)
		return clockTime{soon.Hour(), soon.Minute()}, true
	}
	return clockTime{}, false
}

func at(day time.Time, t clockTime) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.hour, t.minute, 0, 0, day.Location())
}

// ScheduleFromAnchor derives the next prompt time from anchor text. now should be
// expressed in the user's location. A recognized anchor whose time has already
// passed today fires tomorrow; unrecognized text falls back to 09:00 tomorrow.
func ScheduleFromAnchor(anchor string, now time.Time) ScheduledPrompt {
	if t, ok := guessAnchorTime(anchor, now); ok {
		candidate := at(now, t)
		if !candidate.After(now) {
			candidate = at(now.AddDate(0, 0, 1), t)
		}
		return ScheduledPrompt{NextFireAt: candidate, Reason: ReasonFromAnchor}
	}

	return ScheduledPrompt{
		NextFireAt: at(now.AddDate(0, 0, 1), fallbackTime),
		Reason:     ReasonFallbackMorning,
	}
}
