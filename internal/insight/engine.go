package insight

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abmoura/vida/internal/constants"
	"github.com/abmoura/vida/internal/models"
)

var (
	// ErrQuestionnaireCompleted is returned when the onboarding
	// questionnaire is submitted a second time.
	ErrQuestionnaireCompleted = errors.New("questionnaire already completed")
)

// Engine is the habit insight engine. It owns no storage and spawns no
// goroutines: every operation mutates the injected State synchronously in
// the caller's turn, and the caller decides when to persist a snapshot.
type Engine struct {
	state *State
	now   func() time.Time
}

// New creates an engine over the given state. The now function supplies
// wall-clock time, already adjusted to the user's timezone; day boundaries
// are derived from it.
func New(state *State, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	state.Normalize()
	return &Engine{state: state, now: now}
}

// State returns the engine state for persistence.
func (e *Engine) State() *State {
	return e.state
}

// Now returns the current time on the engine clock.
func (e *Engine) Now() time.Time {
	return e.now()
}

func (e *Engine) today() string {
	return e.now().Format(constants.DateFormat)
}

// HabitSpec carries the user-provided fields for a new habit.
type HabitSpec struct {
	Name       string
	Icon       string
	Category   models.Category
	Frequency  models.Frequency
	CustomDays []time.Weekday
	TargetTime string
	Reminder   bool
}

// AddHabit appends a new habit to the ledger. Name presence is the only
// required field; everything else defaults.
func (e *Engine) AddHabit(spec HabitSpec) (models.Habit, error) {
	if spec.Name == "" {
		return models.Habit{}, errors.New("habit name is required")
	}

	frequency := spec.Frequency
	if frequency == "" {
		frequency = models.FrequencyDaily
	}
	category := spec.Category
	if category == "" {
		category = models.CategoryPersonal
	}

	habit := models.Habit{
		ID:             uuid.New().String(),
		Name:           spec.Name,
		Icon:           spec.Icon,
		Category:       category,
		Frequency:      frequency,
		CustomDays:     spec.CustomDays,
		TargetTime:     spec.TargetTime,
		Reminder:       spec.Reminder,
		CompletedDates: []string{},
		CreatedAt:      e.now(),
	}

	e.state.Habits = append(e.state.Habits, habit)
	return habit, nil
}

// GetHabit returns the habit with the given id.
func (e *Engine) GetHabit(id string) (models.Habit, error) {
	h, err := e.findHabit(id)
	if err != nil {
		return models.Habit{}, err
	}
	return *h, nil
}

// GetHabitByName returns the first habit with the given name.
func (e *Engine) GetHabitByName(name string) (models.Habit, error) {
	for i := range e.state.Habits {
		if e.state.Habits[i].Name == name {
			return e.state.Habits[i], nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit not found: %s", name)
}

// AllHabits returns the ledger in insertion order.
func (e *Engine) AllHabits() []models.Habit {
	habits := make([]models.Habit, len(e.state.Habits))
	copy(habits, e.state.Habits)
	return habits
}

// TodayHabits returns the habits due today. Daily and weekly habits are
// always included; custom habits only when today's weekday is in their
// configured set.
func (e *Engine) TodayHabits() []models.Habit {
	weekday := e.now().Weekday()
	var due []models.Habit
	for i := range e.state.Habits {
		if e.state.Habits[i].DueOn(weekday) {
			due = append(due, e.state.Habits[i])
		}
	}
	return due
}

// CompleteHabit marks the habit done for the current day. Completing a
// habit twice on the same day is a no-op: the completion set and streak
// change only once. BestStreak is raised whenever the streak passes it.
func (e *Engine) CompleteHabit(id string) (models.Habit, error) {
	h, err := e.findHabit(id)
	if err != nil {
		return models.Habit{}, err
	}

	today := e.today()
	if h.CompletedOn(today) {
		return *h, nil
	}

	h.CompletedDates = append(h.CompletedDates, today)
	h.Streak++
	if h.Streak > h.BestStreak {
		h.BestStreak = h.Streak
	}
	return *h, nil
}

// UncompleteHabit undoes today's completion. The streak counter is
// decremented and floored at zero; BestStreak is monotonic and is never
// restored downward, even when the undo crosses a record.
func (e *Engine) UncompleteHabit(id string) (models.Habit, error) {
	h, err := e.findHabit(id)
	if err != nil {
		return models.Habit{}, err
	}

	today := e.today()
	if !h.CompletedOn(today) {
		return *h, nil
	}

	dates := make([]string, 0, len(h.CompletedDates)-1)
	for _, d := range h.CompletedDates {
		if d != today {
			dates = append(dates, d)
		}
	}
	h.CompletedDates = dates
	if h.Streak > 0 {
		h.Streak--
	}
	return *h, nil
}

// DeleteHabit removes the habit from the ledger. There is no soft delete.
func (e *Engine) DeleteHabit(id string) error {
	for i := range e.state.Habits {
		if e.state.Habits[i].ID == id {
			e.state.Habits = append(e.state.Habits[:i], e.state.Habits[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("habit not found: %s", id)
}

// HabitProgress returns the habit's completion rate over the trailing
// week as a 0-100 score. Daily and custom habits are scored against the
// days they were due; a weekly habit scores 100 with any completion in
// the window.
func (e *Engine) HabitProgress(id string) (int, error) {
	h, err := e.findHabit(id)
	if err != nil {
		return 0, err
	}

	now := e.now()
	window := make(map[string]time.Weekday, constants.HabitProgressWindowDays)
	for i := 0; i < constants.HabitProgressWindowDays; i++ {
		day := now.AddDate(0, 0, -i)
		window[day.Format(constants.DateFormat)] = day.Weekday()
	}

	if h.Frequency == models.FrequencyWeekly {
		for _, d := range h.CompletedDates {
			if _, ok := window[d]; ok {
				return 100, nil
			}
		}
		return 0, nil
	}

	due := 0
	for _, weekday := range window {
		if h.DueOn(weekday) {
			due++
		}
	}
	if due == 0 {
		return 0, nil
	}

	completed := 0
	for _, d := range h.CompletedDates {
		if weekday, ok := window[d]; ok && h.DueOn(weekday) {
			completed++
		}
	}

	progress := completed * 100 / due
	if progress > 100 {
		progress = 100
	}
	return progress, nil
}

// RecordVisit appends a page visit to the usage log, evicting the oldest
// event once the cap is reached. Every Nth total visit triggers a pattern
// scan synchronously; any newly emitted suggestions are returned.
func (e *Engine) RecordVisit(page string) []models.HabitSuggestion {
	now := e.now()
	e.state.Usage.Events = append(e.state.Usage.Events, models.UsageEvent{
		Timestamp: now,
		Page:      page,
		Weekday:   int(now.Weekday()),
		Hour:      now.Hour(),
	})
	if len(e.state.Usage.Events) > constants.MaxUsageEvents {
		overflow := len(e.state.Usage.Events) - constants.MaxUsageEvents
		e.state.Usage.Events = append([]models.UsageEvent{}, e.state.Usage.Events[overflow:]...)
	}

	e.state.Usage.TotalVisits++
	e.state.Usage.PageCounts[page]++

	if e.state.Usage.TotalVisits%constants.AnalyzeEveryNVisits == 0 {
		return e.Analyze()
	}
	return nil
}

// ActiveSuggestions returns the non-dismissed suggestions in insertion
// order.
func (e *Engine) ActiveSuggestions() []models.HabitSuggestion {
	var active []models.HabitSuggestion
	for i := range e.state.Suggestions {
		if !e.state.Suggestions[i].Dismissed {
			active = append(active, e.state.Suggestions[i])
		}
	}
	return active
}

// AllSuggestions returns every suggestion, dismissed ones included.
func (e *Engine) AllSuggestions() []models.HabitSuggestion {
	suggestions := make([]models.HabitSuggestion, len(e.state.Suggestions))
	copy(suggestions, e.state.Suggestions)
	return suggestions
}

// AcceptSuggestion materializes the suggestion as a daily auto-detected
// habit and removes it from the queue. The new habit keeps the
// suggestion's signal, so the analyzer never re-proposes the pattern.
func (e *Engine) AcceptSuggestion(id string) (models.Habit, error) {
	for i := range e.state.Suggestions {
		if e.state.Suggestions[i].ID != id {
			continue
		}
		s := e.state.Suggestions[i]

		habit := models.Habit{
			ID:             uuid.New().String(),
			Name:           s.Name,
			Icon:           s.Icon,
			Category:       s.Category,
			Frequency:      models.FrequencyDaily,
			CompletedDates: []string{},
			CreatedAt:      e.now(),
			AutoDetected:   true,
			DetectedReason: s.Reason,
			Signal:         s.Signal,
		}
		e.state.Habits = append(e.state.Habits, habit)
		e.state.Suggestions = append(e.state.Suggestions[:i], e.state.Suggestions[i+1:]...)
		e.state.AcceptedCount++
		return habit, nil
	}
	return models.Habit{}, fmt.Errorf("suggestion not found: %s", id)
}

// DismissSuggestion flags the suggestion inert. It stays in the queue so
// its signal keeps feeding the analyzer's dedup check; a dismissed
// pattern is never proposed again.
func (e *Engine) DismissSuggestion(id string) error {
	for i := range e.state.Suggestions {
		if e.state.Suggestions[i].ID == id {
			e.state.Suggestions[i].Dismissed = true
			return nil
		}
	}
	return fmt.Errorf("suggestion not found: %s", id)
}

func (e *Engine) findHabit(id string) (*models.Habit, error) {
	for i := range e.state.Habits {
		if e.state.Habits[i].ID == id {
			return &e.state.Habits[i], nil
		}
	}
	return nil, fmt.Errorf("habit not found: %s", id)
}
