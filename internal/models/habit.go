package models

import (
	"time"
)

// Category classifies a habit or goal by life area.
type Category string

const (
	CategoryHealth       Category = "health"
	CategoryProductivity Category = "productivity"
	CategoryFinance      Category = "finance"
	CategoryPersonal     Category = "personal"
	CategoryLearning     Category = "learning"
)

// Categories lists all valid categories.
var Categories = []Category{
	CategoryHealth,
	CategoryProductivity,
	CategoryFinance,
	CategoryPersonal,
	CategoryLearning,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Frequency describes how often a habit is due.
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

// PatternSignal tags a habit or suggestion with the usage pattern that
// produced it. Suggestion dedup is structural equality on signals rather
// than fuzzy name matching.
type PatternSignal string

const (
	SignalNone         PatternSignal = ""
	SignalMorningUsage PatternSignal = "morning_usage"
	SignalNightUsage   PatternSignal = "night_usage"
	SignalWakeRoutine  PatternSignal = "wake_routine"
	SignalExercise     PatternSignal = "exercise"
)

// CategorySignal returns the affinity signal for a category, used by
// page-visit and goal-tag suggestions.
func CategorySignal(c Category) PatternSignal {
	return PatternSignal("category:" + string(c))
}

// Habit represents a recurring practice to track.
//
// CompletedDates holds unique YYYY-MM-DD dates in the user's configured
// timezone. Streak is a simple counter adjusted on complete/uncomplete;
// BestStreak is monotonic and never drops below Streak.
type Habit struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Icon           string         `json:"icon,omitempty"`
	Category       Category       `json:"category"`
	Frequency      Frequency      `json:"frequency"`
	CustomDays     []time.Weekday `json:"custom_days,omitempty"`
	TargetTime     string         `json:"target_time,omitempty"` // HH:MM format
	Reminder       bool           `json:"reminder"`
	Streak         int            `json:"streak"`
	BestStreak     int            `json:"best_streak"`
	CompletedDates []string       `json:"completed_dates"` // YYYY-MM-DD format
	CreatedAt      time.Time      `json:"created_at"`
	AutoDetected   bool           `json:"auto_detected"`
	DetectedReason string         `json:"detected_reason,omitempty"`
	Signal         PatternSignal  `json:"signal,omitempty"`
}

// CompletedOn reports whether the habit was completed on the given day.
func (h *Habit) CompletedOn(day string) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}

// DueOn reports whether the habit is due on the given weekday. Daily and
// weekly habits are always due; custom habits are due only on their
// configured weekdays.
func (h *Habit) DueOn(weekday time.Weekday) bool {
	switch h.Frequency {
	case FrequencyDaily, FrequencyWeekly:
		return true
	case FrequencyCustom:
		for _, wd := range h.CustomDays {
			if wd == weekday {
				return true
			}
		}
		return false
	default:
		return false
	}
}
