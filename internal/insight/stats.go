package insight

import "sort"

// PageCount pairs a page with its total visit count.
type PageCount struct {
	Page   string
	Visits int
}

// Stats summarizes what the engine has observed and produced so far.
type Stats struct {
	TotalVisits            int
	TrackedEvents          int
	TopPages               []PageCount
	Habits                 int
	AutoDetectedHabits     int
	ActiveSuggestions      int
	DismissedSuggestions   int
	AcceptedSuggestions    int
	QuestionnaireCompleted bool
}

// Stats returns the current learning statistics. TopPages holds at most
// the five most visited pages, ordered by count then name.
func (e *Engine) Stats() Stats {
	stats := Stats{
		TotalVisits:            e.state.Usage.TotalVisits,
		TrackedEvents:          len(e.state.Usage.Events),
		Habits:                 len(e.state.Habits),
		AcceptedSuggestions:    e.state.AcceptedCount,
		QuestionnaireCompleted: e.state.QuestionnaireCompleted,
	}

	for i := range e.state.Habits {
		if e.state.Habits[i].AutoDetected {
			stats.AutoDetectedHabits++
		}
	}
	for i := range e.state.Suggestions {
		if e.state.Suggestions[i].Dismissed {
			stats.DismissedSuggestions++
		} else {
			stats.ActiveSuggestions++
		}
	}

	for page, visits := range e.state.Usage.PageCounts {
		stats.TopPages = append(stats.TopPages, PageCount{Page: page, Visits: visits})
	}
	sort.Slice(stats.TopPages, func(i, j int) bool {
		if stats.TopPages[i].Visits != stats.TopPages[j].Visits {
			return stats.TopPages[i].Visits > stats.TopPages[j].Visits
		}
		return stats.TopPages[i].Page < stats.TopPages[j].Page
	})
	if len(stats.TopPages) > 5 {
		stats.TopPages = stats.TopPages[:5]
	}

	return stats
}
