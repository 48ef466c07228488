package models

import "time"

// ExercisePreference is the time of day the user prefers to exercise.
type ExercisePreference string

const (
	ExerciseMorning   ExercisePreference = "morning"
	ExerciseAfternoon ExercisePreference = "afternoon"
	ExerciseEvening   ExercisePreference = "evening"
	ExerciseNone      ExercisePreference = "none"
)

// Valid reports whether p is a known exercise preference.
func (p ExercisePreference) Valid() bool {
	switch p {
	case ExerciseMorning, ExerciseAfternoon, ExerciseEvening, ExerciseNone:
		return true
	}
	return false
}

// UserProfile holds the answers of the one-time onboarding questionnaire.
// It is set exactly once and never edited afterwards.
type UserProfile struct {
	WakeTime           string             `json:"wake_time,omitempty"`  // HH:MM format
	SleepTime          string             `json:"sleep_time,omitempty"` // HH:MM format
	WorkStart          string             `json:"work_start,omitempty"` // HH:MM format
	WorkEnd            string             `json:"work_end,omitempty"`   // HH:MM format
	ExercisePreference ExercisePreference `json:"exercise_preference"`
	GoalTags           []string           `json:"goal_tags,omitempty"`
	CompletedAt        time.Time          `json:"completed_at"`
}

// HasGoalTag reports whether the profile contains the given goal tag.
func (p *UserProfile) HasGoalTag(tag string) bool {
	for _, t := range p.GoalTags {
		if t == tag {
			return true
		}
	}
	return false
}
