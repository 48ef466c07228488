package models

import "time"

// Mood is the self-reported mood attached to a journal entry.
type Mood string

const (
	MoodGreat   Mood = "great"
	MoodGood    Mood = "good"
	MoodNeutral Mood = "neutral"
	MoodBad     Mood = "bad"
	MoodAwful   Mood = "awful"
)

// Valid reports whether m is a known mood.
func (m Mood) Valid() bool {
	switch m {
	case MoodGreat, MoodGood, MoodNeutral, MoodBad, MoodAwful:
		return true
	}
	return false
}

// JournalEntry is a dated free-form note with an optional mood and tags.
type JournalEntry struct {
	ID        string    `json:"id"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	Mood      Mood      `json:"mood,omitempty"`
	Text      string    `json:"text"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
