package insight

import (
	"errors"
	"testing"

	"github.com/abmoura/vida/internal/constants"
	"github.com/abmoura/vida/internal/models"
)

func TestCompleteQuestionnaireEmitsSuggestions(t *testing.T) {
	e := newTestEngine(testDay)

	profile := models.UserProfile{
		WakeTime:           "06:30",
		SleepTime:          "23:00",
		ExercisePreference: models.ExerciseMorning,
		GoalTags:           []string{constants.GoalTagHealth, constants.GoalTagFinance},
	}

	got, err := e.CompleteQuestionnaire(profile)
	if err != nil {
		t.Fatalf("CompleteQuestionnaire() error = %v", err)
	}

	// wake + exercise + 2 goal tags
	if len(got) != 4 {
		t.Fatalf("emitted %d suggestions, want 4: %+v", len(got), got)
	}

	bySignal := make(map[models.PatternSignal]models.HabitSuggestion, len(got))
	for _, s := range got {
		bySignal[s.Signal] = s
	}

	wake, ok := bySignal[models.SignalWakeRoutine]
	if !ok {
		t.Fatal("missing wake-routine suggestion")
	}
	if wake.Confidence != constants.ConfidenceWakeRoutine {
		t.Errorf("wake confidence = %d, want %d", wake.Confidence, constants.ConfidenceWakeRoutine)
	}

	exercise, ok := bySignal[models.SignalExercise]
	if !ok {
		t.Fatal("missing exercise suggestion")
	}
	if exercise.Confidence != constants.ConfidenceExercise {
		t.Errorf("exercise confidence = %d, want %d", exercise.Confidence, constants.ConfidenceExercise)
	}
	if exercise.Name != "Morning exercise" {
		t.Errorf("exercise name = %q, want %q", exercise.Name, "Morning exercise")
	}

	health := bySignal[models.CategorySignal(models.CategoryHealth)]
	if health.Confidence != constants.ConfidenceTagHealth {
		t.Errorf("health tag confidence = %d, want %d", health.Confidence, constants.ConfidenceTagHealth)
	}
	finance := bySignal[models.CategorySignal(models.CategoryFinance)]
	if finance.Confidence != constants.ConfidenceTagFinance {
		t.Errorf("finance tag confidence = %d, want %d", finance.Confidence, constants.ConfidenceTagFinance)
	}

	if !e.State().QuestionnaireCompleted {
		t.Error("questionnaire flag not set")
	}
	if e.State().Profile == nil || e.State().Profile.WakeTime != "06:30" {
		t.Error("profile not stored")
	}
	if e.State().Profile.CompletedAt.IsZero() {
		t.Error("profile CompletedAt not stamped")
	}
}

func TestCompleteQuestionnaireRunsOnce(t *testing.T) {
	e := newTestEngine(testDay)

	if _, err := e.CompleteQuestionnaire(models.UserProfile{}); err != nil {
		t.Fatalf("first CompleteQuestionnaire() error = %v", err)
	}
	_, err := e.CompleteQuestionnaire(models.UserProfile{WakeTime: "07:00"})
	if !errors.Is(err, ErrQuestionnaireCompleted) {
		t.Fatalf("second call error = %v, want ErrQuestionnaireCompleted", err)
	}
}

func TestCompleteQuestionnaireMinimalAnswers(t *testing.T) {
	e := newTestEngine(testDay)

	got, err := e.CompleteQuestionnaire(models.UserProfile{})
	if err != nil {
		t.Fatalf("CompleteQuestionnaire() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty profile emitted %d suggestions, want 0", len(got))
	}
	if e.State().Profile.ExercisePreference != models.ExerciseNone {
		t.Errorf("empty preference not defaulted to none: %q", e.State().Profile.ExercisePreference)
	}
}

func TestCompleteQuestionnaireNoExerciseNoTags(t *testing.T) {
	e := newTestEngine(testDay)

	got, err := e.CompleteQuestionnaire(models.UserProfile{
		WakeTime:           "07:15",
		ExercisePreference: models.ExerciseNone,
		GoalTags:           []string{constants.GoalTagLearning},
	})
	if err != nil {
		t.Fatalf("CompleteQuestionnaire() error = %v", err)
	}
	// Only the wake suggestion: preference none emits nothing and the
	// learning tag has no canned proposal.
	if len(got) != 1 || got[0].Signal != models.SignalWakeRoutine {
		t.Fatalf("got %+v, want only the wake-routine suggestion", got)
	}
}

func TestCompleteQuestionnaireInvalidPreference(t *testing.T) {
	e := newTestEngine(testDay)

	if _, err := e.CompleteQuestionnaire(models.UserProfile{ExercisePreference: "noon"}); err == nil {
		t.Fatal("invalid exercise preference accepted")
	}
	if e.State().QuestionnaireCompleted {
		t.Error("failed questionnaire must not set the completed flag")
	}
}
