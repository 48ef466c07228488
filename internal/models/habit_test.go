package models

import (
	"testing"
	"time"
)

func TestHabitCompletedOn(t *testing.T) {
	h := Habit{CompletedDates: []string{"2026-03-09", "2026-03-10"}}

	if !h.CompletedOn("2026-03-10") {
		t.Error("CompletedOn() missed a recorded day")
	}
	if h.CompletedOn("2026-03-11") {
		t.Error("CompletedOn() matched an unrecorded day")
	}
}

func TestHabitDueOn(t *testing.T) {
	daily := Habit{Frequency: FrequencyDaily}
	weekly := Habit{Frequency: FrequencyWeekly}
	custom := Habit{Frequency: FrequencyCustom, CustomDays: []time.Weekday{time.Monday, time.Friday}}

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if !daily.DueOn(wd) {
			t.Errorf("daily habit not due on %v", wd)
		}
		if !weekly.DueOn(wd) {
			t.Errorf("weekly habit not due on %v", wd)
		}
	}

	if !custom.DueOn(time.Monday) || !custom.DueOn(time.Friday) {
		t.Error("custom habit not due on its configured days")
	}
	if custom.DueOn(time.Tuesday) {
		t.Error("custom habit due outside its configured days")
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		if !c.Valid() {
			t.Errorf("Category %q should be valid", c)
		}
	}
	if Category("sports").Valid() {
		t.Error("unknown category reported valid")
	}
}

func TestCategorySignal(t *testing.T) {
	if got := CategorySignal(CategoryFinance); got != PatternSignal("category:finance") {
		t.Errorf("CategorySignal(finance) = %q", got)
	}
}
