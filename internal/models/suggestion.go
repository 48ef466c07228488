package models

import "time"

// HabitSuggestion is a system-proposed candidate habit derived from usage
// patterns or questionnaire answers. Accepting a suggestion materializes a
// Habit and removes the suggestion; dismissing flags it inert but keeps it
// around so the same signal is never proposed twice.
type HabitSuggestion struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Icon       string        `json:"icon,omitempty"`
	Category   Category      `json:"category"`
	Reason     string        `json:"reason"`
	Confidence int           `json:"confidence"` // 0-100
	Signal     PatternSignal `json:"signal"`
	Dismissed  bool          `json:"dismissed"`
	CreatedAt  time.Time     `json:"created_at"`
}
