package insight

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/abmoura/vida/internal/constants"
	"github.com/abmoura/vida/internal/models"
)

// pageCategories maps tracked dashboard routes to the category a repeated
// visit hints at. Pages outside this map never produce suggestions.
var pageCategories = map[string]models.Category{
	"/finance": models.CategoryFinance,
	"/health":  models.CategoryHealth,
	"/goals":   models.CategoryProductivity,
	"/journal": models.CategoryPersonal,
	"/learn":   models.CategoryLearning,
}

// categoryProposals holds the fixed habit proposal for each category
// affinity suggestion.
var categoryProposals = map[models.Category]struct {
	Name string
	Icon string
}{
	models.CategoryFinance:      {"Track your expenses", "💰"},
	models.CategoryHealth:       {"Daily health check-in", "💪"},
	models.CategoryProductivity: {"Plan your day", "📋"},
	models.CategoryPersonal:     {"Reflect in your journal", "📝"},
	models.CategoryLearning:     {"Study a little every day", "📚"},
}

// Analyze scans the usage log for time-of-day and page-affinity patterns
// and emits at most one suggestion per detected signal. Dedup is a
// structural check on signals against existing habits and all prior
// suggestions, dismissed ones included: a pattern the user has already
// seen is never proposed again. A scan that finds nothing is a no-op.
func (e *Engine) Analyze() []models.HabitSuggestion {
	hist := e.state.Usage.HourHistogram()
	var emitted []models.HabitSuggestion

	morning := 0
	for h := constants.MorningHourStart; h <= constants.MorningHourEnd; h++ {
		morning += hist[h]
	}
	if morning > constants.MorningVisitThreshold && !e.hasSignal(models.SignalMorningUsage) {
		emitted = append(emitted, e.emit(models.HabitSuggestion{
			Name:       "Morning routine",
			Icon:       "🌅",
			Category:   models.CategoryPersonal,
			Reason:     fmt.Sprintf("You used the app %d times in the morning recently", morning),
			Confidence: constants.ConfidenceMorningUsage,
			Signal:     models.SignalMorningUsage,
		}))
	}

	night := 0
	for h := constants.NightHourStart; h <= constants.NightHourEnd; h++ {
		night += hist[h]
	}
	if night > constants.NightVisitThreshold && !e.hasSignal(models.SignalNightUsage) {
		emitted = append(emitted, e.emit(models.HabitSuggestion{
			Name:       "Evening wind-down",
			Icon:       "🌙",
			Category:   models.CategoryPersonal,
			Reason:     fmt.Sprintf("You used the app %d times late at night recently", night),
			Confidence: constants.ConfidenceNightUsage,
			Signal:     models.SignalNightUsage,
		}))
	}

	for page, category := range pageCategories {
		count := e.state.Usage.PageCounts[page]
		if count <= constants.CategoryVisitThreshold {
			continue
		}
		if e.hasCategory(category) || e.hasSignal(models.CategorySignal(category)) {
			continue
		}
		proposal := categoryProposals[category]
		emitted = append(emitted, e.emit(models.HabitSuggestion{
			Name:       proposal.Name,
			Icon:       proposal.Icon,
			Category:   category,
			Reason:     fmt.Sprintf("You visited the %s page %d times", page, count),
			Confidence: constants.ConfidenceCategoryPage,
			Signal:     models.CategorySignal(category),
		}))
	}

	return emitted
}

// emit assigns identity to the suggestion and appends it to the queue.
func (e *Engine) emit(s models.HabitSuggestion) models.HabitSuggestion {
	s.ID = uuid.New().String()
	s.CreatedAt = e.now()
	e.state.Suggestions = append(e.state.Suggestions, s)
	return s
}

// hasSignal reports whether any habit or any suggestion (dismissed
// included) already carries the signal.
func (e *Engine) hasSignal(signal models.PatternSignal) bool {
	if signal == models.SignalNone {
		return false
	}
	for i := range e.state.Habits {
		if e.state.Habits[i].Signal == signal {
			return true
		}
	}
	for i := range e.state.Suggestions {
		if e.state.Suggestions[i].Signal == signal {
			return true
		}
	}
	return false
}

// hasCategory reports whether any habit already belongs to the category.
func (e *Engine) hasCategory(category models.Category) bool {
	for i := range e.state.Habits {
		if e.state.Habits[i].Category == category {
			return true
		}
	}
	return false
}
