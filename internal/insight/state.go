package insight

import (
	"github.com/abmoura/vida/internal/models"
)

// State is the full engine state: the habit ledger, the suggestion queue,
// the usage log and the onboarding profile. It is a plain JSON-serializable
// snapshot owned by whoever constructed the Engine; the engine itself never
// persists anything.
type State struct {
	Habits                 []models.Habit           `json:"habits"`
	Suggestions            []models.HabitSuggestion `json:"suggestions"`
	Usage                  models.UsageLog          `json:"usage"`
	Profile                *models.UserProfile      `json:"profile,omitempty"`
	QuestionnaireCompleted bool                     `json:"questionnaire_completed"`
	AcceptedCount          int                      `json:"accepted_count"`
}

// NewState returns an empty engine state with initialized collections.
func NewState() *State {
	return &State{
		Habits:      []models.Habit{},
		Suggestions: []models.HabitSuggestion{},
		Usage: models.UsageLog{
			Events:     []models.UsageEvent{},
			PageCounts: make(map[string]int),
		},
	}
}

// Normalize repairs nil collections after a snapshot load. A missing or
// partial snapshot must never panic the engine.
func (s *State) Normalize() {
	if s.Habits == nil {
		s.Habits = []models.Habit{}
	}
	if s.Suggestions == nil {
		s.Suggestions = []models.HabitSuggestion{}
	}
	if s.Usage.Events == nil {
		s.Usage.Events = []models.UsageEvent{}
	}
	if s.Usage.PageCounts == nil {
		s.Usage.PageCounts = make(map[string]int)
	}
}
