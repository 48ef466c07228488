package insight

import (
	"fmt"

	"github.com/abmoura/vida/internal/constants"
	"github.com/abmoura/vida/internal/models"
)

// CompleteQuestionnaire stores the onboarding profile and converts its
// answers into an initial suggestion batch. It runs exactly once: the
// completed flag is set together with the profile, and a second call
// returns ErrQuestionnaireCompleted. No dedup is needed here — nothing
// can have emitted these signals earlier.
func (e *Engine) CompleteQuestionnaire(profile models.UserProfile) ([]models.HabitSuggestion, error) {
	if e.state.QuestionnaireCompleted {
		return nil, ErrQuestionnaireCompleted
	}
	if profile.ExercisePreference == "" {
		profile.ExercisePreference = models.ExerciseNone
	}
	if !profile.ExercisePreference.Valid() {
		return nil, fmt.Errorf("invalid exercise preference: %s", profile.ExercisePreference)
	}

	profile.CompletedAt = e.now()
	e.state.Profile = &profile
	e.state.QuestionnaireCompleted = true

	var emitted []models.HabitSuggestion

	if profile.WakeTime != "" {
		emitted = append(emitted, e.emit(models.HabitSuggestion{
			Name:       "Morning routine",
			Icon:       "🌅",
			Category:   models.CategoryPersonal,
			Reason:     fmt.Sprintf("You wake up at %s; a fixed morning routine anchors the day", profile.WakeTime),
			Confidence: constants.ConfidenceWakeRoutine,
			Signal:     models.SignalWakeRoutine,
		}))
	}

	if profile.ExercisePreference != models.ExerciseNone {
		emitted = append(emitted, e.emit(models.HabitSuggestion{
			Name:       exerciseName(profile.ExercisePreference),
			Icon:       "🏃",
			Category:   models.CategoryHealth,
			Reason:     fmt.Sprintf("You prefer exercising in the %s", profile.ExercisePreference),
			Confidence: constants.ConfidenceExercise,
			Signal:     models.SignalExercise,
		}))
	}

	if profile.HasGoalTag(constants.GoalTagHealth) {
		emitted = append(emitted, e.emit(models.HabitSuggestion{
			Name:       "Daily health check-in",
			Icon:       "💪",
			Category:   models.CategoryHealth,
			Reason:     "Health is one of your stated goals",
			Confidence: constants.ConfidenceTagHealth,
			Signal:     models.CategorySignal(models.CategoryHealth),
		}))
	}
	if profile.HasGoalTag(constants.GoalTagFinance) {
		emitted = append(emitted, e.emit(models.HabitSuggestion{
			Name:       "Track your expenses",
			Icon:       "💰",
			Category:   models.CategoryFinance,
			Reason:     "Finances are one of your stated goals",
			Confidence: constants.ConfidenceTagFinance,
			Signal:     models.CategorySignal(models.CategoryFinance),
		}))
	}
	if profile.HasGoalTag(constants.GoalTagProductivity) {
		emitted = append(emitted, e.emit(models.HabitSuggestion{
			Name:       "Plan your day",
			Icon:       "📋",
			Category:   models.CategoryProductivity,
			Reason:     "Productivity is one of your stated goals",
			Confidence: constants.ConfidenceTagFocus,
			Signal:     models.CategorySignal(models.CategoryProductivity),
		}))
	}

	return emitted, nil
}

func exerciseName(pref models.ExercisePreference) string {
	switch pref {
	case models.ExerciseMorning:
		return "Morning exercise"
	case models.ExerciseAfternoon:
		return "Afternoon exercise"
	case models.ExerciseEvening:
		return "Evening exercise"
	default:
		return "Exercise"
	}
}
