package validation

import (
	"fmt"

	"github.com/abmoura/vida/internal/constants"
	"github.com/abmoura/vida/internal/models"
	"github.com/abmoura/vida/internal/utils"
)

// goalTagVocabulary lists the goal tags the questionnaire accepts.
var goalTagVocabulary = []string{
	constants.GoalTagHealth,
	constants.GoalTagFinance,
	constants.GoalTagProductivity,
	constants.GoalTagLearning,
}

// ValidateHabitName checks that the habit name is present.
func ValidateHabitName(name string) error {
	if name == "" {
		return fmt.Errorf("habit name is required")
	}
	return nil
}

// ValidateFrequency checks the frequency and its custom-day requirement:
// a custom habit needs at least one weekday, the other frequencies must
// not carry any.
func ValidateFrequency(frequency models.Frequency, customDays int) error {
	switch frequency {
	case models.FrequencyDaily, models.FrequencyWeekly:
		if customDays > 0 {
			return fmt.Errorf("custom days are only valid with frequency %q", models.FrequencyCustom)
		}
		return nil
	case models.FrequencyCustom:
		if customDays == 0 {
			return fmt.Errorf("frequency %q requires at least one weekday", models.FrequencyCustom)
		}
		return nil
	default:
		return fmt.Errorf("invalid frequency: %s", frequency)
	}
}

// ValidateCategory checks that the category is one of the known values.
func ValidateCategory(category models.Category) error {
	if !category.Valid() {
		return fmt.Errorf("invalid category: %s (must be one of %v)", category, models.Categories)
	}
	return nil
}

// ValidateProfile checks the questionnaire answers: optional times must be
// HH:MM, the exercise preference must be known and every goal tag must be
// in the vocabulary.
func ValidateProfile(profile models.UserProfile) error {
	times := map[string]string{
		"wake time":  profile.WakeTime,
		"sleep time": profile.SleepTime,
		"work start": profile.WorkStart,
		"work end":   profile.WorkEnd,
	}
	for field, value := range times {
		if value != "" && !utils.ValidateTimeFormat(value) {
			return fmt.Errorf("invalid %s: %q (expected HH:MM)", field, value)
		}
	}

	if profile.ExercisePreference != "" && !profile.ExercisePreference.Valid() {
		return fmt.Errorf("invalid exercise preference: %s", profile.ExercisePreference)
	}

	for _, tag := range profile.GoalTags {
		if !isKnownGoalTag(tag) {
			return fmt.Errorf("unknown goal tag: %q (must be one of %v)", tag, goalTagVocabulary)
		}
	}

	return nil
}

func isKnownGoalTag(tag string) bool {
	for _, known := range goalTagVocabulary {
		if tag == known {
			return true
		}
	}
	return false
}

// ValidateProgress checks a 0-100 progress value.
func ValidateProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return fmt.Errorf("progress must be between 0 and 100, got %d", progress)
	}
	return nil
}
