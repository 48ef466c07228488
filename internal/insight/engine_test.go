package insight

import (
	"fmt"
	"testing"
	"time"

	"github.com/abmoura/vida/internal/constants"
	"github.com/abmoura/vida/internal/models"
)

// fixedClock returns a now func pinned to the given time.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestEngine(now time.Time) *Engine {
	return New(NewState(), fixedClock(now))
}

var testDay = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC) // a Tuesday

func TestAddHabitDefaults(t *testing.T) {
	e := newTestEngine(testDay)

	habit, err := e.AddHabit(HabitSpec{Name: "Read"})
	if err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}
	if habit.Frequency != models.FrequencyDaily {
		t.Errorf("Frequency = %q, want %q", habit.Frequency, models.FrequencyDaily)
	}
	if habit.Category != models.CategoryPersonal {
		t.Errorf("Category = %q, want %q", habit.Category, models.CategoryPersonal)
	}
	if habit.ID == "" {
		t.Error("expected generated habit ID")
	}
	if habit.AutoDetected {
		t.Error("manually added habit must not be auto-detected")
	}

	if _, err := e.AddHabit(HabitSpec{}); err == nil {
		t.Error("AddHabit() with empty name should fail")
	}
}

func TestCompleteHabitIdempotentSameDay(t *testing.T) {
	e := newTestEngine(testDay)
	habit, _ := e.AddHabit(HabitSpec{Name: "Meditate"})

	first, err := e.CompleteHabit(habit.ID)
	if err != nil {
		t.Fatalf("CompleteHabit() error = %v", err)
	}
	if first.Streak != 1 || first.BestStreak != 1 {
		t.Fatalf("after first completion streak = %d best = %d, want 1/1", first.Streak, first.BestStreak)
	}

	second, err := e.CompleteHabit(habit.ID)
	if err != nil {
		t.Fatalf("CompleteHabit() second call error = %v", err)
	}
	if second.Streak != 1 {
		t.Errorf("second same-day completion changed streak to %d", second.Streak)
	}
	if len(second.CompletedDates) != 1 {
		t.Errorf("completion set has %d entries, want 1", len(second.CompletedDates))
	}
}

func TestStreakAcrossDays(t *testing.T) {
	now := testDay
	e := New(NewState(), func() time.Time { return now })
	habit, _ := e.AddHabit(HabitSpec{Name: "Run"})

	for i := 0; i < 3; i++ {
		if _, err := e.CompleteHabit(habit.ID); err != nil {
			t.Fatalf("CompleteHabit() day %d error = %v", i, err)
		}
		now = now.AddDate(0, 0, 1)
	}

	got, _ := e.GetHabit(habit.ID)
	if got.Streak != 3 || got.BestStreak != 3 {
		t.Errorf("streak = %d best = %d, want 3/3", got.Streak, got.BestStreak)
	}
}

func TestUncompleteHabit(t *testing.T) {
	e := newTestEngine(testDay)
	habit, _ := e.AddHabit(HabitSpec{Name: "Stretch"})

	if _, err := e.CompleteHabit(habit.ID); err != nil {
		t.Fatalf("CompleteHabit() error = %v", err)
	}
	got, err := e.UncompleteHabit(habit.ID)
	if err != nil {
		t.Fatalf("UncompleteHabit() error = %v", err)
	}
	if got.Streak != 0 {
		t.Errorf("streak = %d, want 0", got.Streak)
	}
	if got.BestStreak != 1 {
		t.Errorf("best streak = %d, want 1 (never restored downward)", got.BestStreak)
	}
	if len(got.CompletedDates) != 0 {
		t.Errorf("completion set not emptied: %v", got.CompletedDates)
	}

	// Undo without a completion is a no-op, streak stays floored at zero.
	got, err = e.UncompleteHabit(habit.ID)
	if err != nil {
		t.Fatalf("UncompleteHabit() no-op error = %v", err)
	}
	if got.Streak != 0 {
		t.Errorf("no-op undo changed streak to %d", got.Streak)
	}
}

func TestDeleteHabit(t *testing.T) {
	e := newTestEngine(testDay)
	habit, _ := e.AddHabit(HabitSpec{Name: "Floss"})

	if err := e.DeleteHabit(habit.ID); err != nil {
		t.Fatalf("DeleteHabit() error = %v", err)
	}
	if _, err := e.GetHabit(habit.ID); err == nil {
		t.Error("GetHabit() after delete should fail")
	}
	if err := e.DeleteHabit(habit.ID); err == nil {
		t.Error("DeleteHabit() on missing habit should fail")
	}
}

func TestTodayHabitsCustomDays(t *testing.T) {
	e := newTestEngine(testDay) // Tuesday

	e.AddHabit(HabitSpec{Name: "Daily"})
	e.AddHabit(HabitSpec{Name: "Weekly", Frequency: models.FrequencyWeekly})
	e.AddHabit(HabitSpec{
		Name:       "Gym",
		Frequency:  models.FrequencyCustom,
		CustomDays: []time.Weekday{time.Monday, time.Wednesday},
	})
	e.AddHabit(HabitSpec{
		Name:       "Spin",
		Frequency:  models.FrequencyCustom,
		CustomDays: []time.Weekday{time.Tuesday},
	})

	due := e.TodayHabits()
	names := make(map[string]bool, len(due))
	for _, h := range due {
		names[h.Name] = true
	}
	if !names["Daily"] || !names["Weekly"] || !names["Spin"] {
		t.Errorf("expected Daily, Weekly and Spin due on Tuesday, got %v", names)
	}
	if names["Gym"] {
		t.Error("Gym is Mon/Wed only and must not be due on Tuesday")
	}
}

func TestHabitProgress(t *testing.T) {
	now := testDay
	e := New(NewState(), func() time.Time { return now })

	daily, _ := e.AddHabit(HabitSpec{Name: "Journal"})
	weekly, _ := e.AddHabit(HabitSpec{Name: "Review", Frequency: models.FrequencyWeekly})

	// Complete the daily habit on 3 of the trailing 7 days.
	for i := 0; i < 3; i++ {
		e.CompleteHabit(daily.ID)
		now = now.AddDate(0, 0, 1)
	}
	now = testDay.AddDate(0, 0, 2)

	progress, err := e.HabitProgress(daily.ID)
	if err != nil {
		t.Fatalf("HabitProgress() error = %v", err)
	}
	if progress != 3*100/7 {
		t.Errorf("daily progress = %d, want %d", progress, 3*100/7)
	}

	progress, _ = e.HabitProgress(weekly.ID)
	if progress != 0 {
		t.Errorf("weekly progress without completion = %d, want 0", progress)
	}
	e.CompleteHabit(weekly.ID)
	progress, _ = e.HabitProgress(weekly.ID)
	if progress != 100 {
		t.Errorf("weekly progress with completion = %d, want 100", progress)
	}
}

func TestRecordVisitCapsEvents(t *testing.T) {
	e := newTestEngine(testDay)

	total := constants.MaxUsageEvents + 37
	for i := 0; i < total; i++ {
		e.RecordVisit(fmt.Sprintf("/page-%d", i))
	}

	events := e.State().Usage.Events
	if len(events) != constants.MaxUsageEvents {
		t.Fatalf("retained %d events, cap is %d", len(events), constants.MaxUsageEvents)
	}
	// Oldest events are evicted first.
	if events[0].Page != "/page-37" {
		t.Errorf("oldest retained event is %q, want /page-37", events[0].Page)
	}
	if got := e.State().Usage.TotalVisits; got != total {
		t.Errorf("TotalVisits = %d, want %d (eviction must not lower the counter)", got, total)
	}
}

func TestRecordVisitAnalyzesEveryNth(t *testing.T) {
	morning := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)
	e := newTestEngine(morning)

	var emitted []models.HabitSuggestion
	for i := 0; i < constants.AnalyzeEveryNVisits; i++ {
		if s := e.RecordVisit("/home"); s != nil {
			if i != constants.AnalyzeEveryNVisits-1 {
				t.Fatalf("analysis ran on visit %d, want only on visit %d", i+1, constants.AnalyzeEveryNVisits)
			}
			emitted = s
		}
	}

	if len(emitted) != 1 {
		t.Fatalf("emitted %d suggestions, want 1 (morning pattern)", len(emitted))
	}
	if emitted[0].Signal != models.SignalMorningUsage {
		t.Errorf("signal = %q, want %q", emitted[0].Signal, models.SignalMorningUsage)
	}
	if emitted[0].Confidence != constants.ConfidenceMorningUsage {
		t.Errorf("confidence = %d, want %d", emitted[0].Confidence, constants.ConfidenceMorningUsage)
	}
}

func TestAcceptSuggestion(t *testing.T) {
	e := newTestEngine(testDay)
	s := e.emit(models.HabitSuggestion{
		Name:       "Morning routine",
		Icon:       "🌅",
		Category:   models.CategoryPersonal,
		Reason:     "You used the app 6 times in the morning recently",
		Confidence: constants.ConfidenceMorningUsage,
		Signal:     models.SignalMorningUsage,
	})

	habit, err := e.AcceptSuggestion(s.ID)
	if err != nil {
		t.Fatalf("AcceptSuggestion() error = %v", err)
	}
	if !habit.AutoDetected {
		t.Error("accepted habit must be auto-detected")
	}
	if habit.Frequency != models.FrequencyDaily {
		t.Errorf("accepted habit frequency = %q, want daily", habit.Frequency)
	}
	if habit.DetectedReason != s.Reason {
		t.Errorf("DetectedReason = %q, want %q", habit.DetectedReason, s.Reason)
	}
	if habit.Signal != s.Signal {
		t.Errorf("Signal = %q, want %q", habit.Signal, s.Signal)
	}
	if len(e.AllSuggestions()) != 0 {
		t.Error("accepted suggestion must leave the queue")
	}
	if e.State().AcceptedCount != 1 {
		t.Errorf("AcceptedCount = %d, want 1", e.State().AcceptedCount)
	}

	if _, err := e.AcceptSuggestion(s.ID); err == nil {
		t.Error("accepting a consumed suggestion should fail")
	}
}

func TestDismissSuggestionStaysInQueue(t *testing.T) {
	e := newTestEngine(testDay)
	s := e.emit(models.HabitSuggestion{
		Name:   "Evening wind-down",
		Signal: models.SignalNightUsage,
	})

	if err := e.DismissSuggestion(s.ID); err != nil {
		t.Fatalf("DismissSuggestion() error = %v", err)
	}
	if len(e.ActiveSuggestions()) != 0 {
		t.Error("dismissed suggestion still listed as active")
	}
	all := e.AllSuggestions()
	if len(all) != 1 || !all[0].Dismissed {
		t.Fatalf("dismissed suggestion must stay in the queue flagged inert, got %+v", all)
	}

	if err := e.DismissSuggestion("missing"); err == nil {
		t.Error("dismissing a missing suggestion should fail")
	}
}

func TestStats(t *testing.T) {
	e := newTestEngine(testDay)
	e.AddHabit(HabitSpec{Name: "Read"})
	for i := 0; i < 7; i++ {
		e.RecordVisit("/finance")
	}
	for i := 0; i < 2; i++ {
		e.RecordVisit("/health")
	}

	stats := e.Stats()
	if stats.TotalVisits != 9 {
		t.Errorf("TotalVisits = %d, want 9", stats.TotalVisits)
	}
	if stats.Habits != 1 {
		t.Errorf("Habits = %d, want 1", stats.Habits)
	}
	if len(stats.TopPages) != 2 {
		t.Fatalf("TopPages = %v, want 2 entries", stats.TopPages)
	}
	if stats.TopPages[0].Page != "/finance" || stats.TopPages[0].Visits != 7 {
		t.Errorf("TopPages[0] = %+v, want /finance with 7 visits", stats.TopPages[0])
	}
}

func TestNormalizeRepairsNilState(t *testing.T) {
	e := New(&State{}, fixedClock(testDay))
	// Must not panic on a zero-value snapshot.
	e.RecordVisit("/home")
	if e.State().Usage.PageCounts["/home"] != 1 {
		t.Error("page counts not initialized by Normalize")
	}
}
