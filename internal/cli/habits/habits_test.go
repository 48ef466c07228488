package habits

import (
	"path/filepath"
	"testing"

	"github.com/abmoura/vida/internal/cli"
	"github.com/abmoura/vida/internal/storage"
)

func testContext(t *testing.T) *cli.Context {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "vida.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("store init error = %v", err)
	}
	return &cli.Context{Store: store}
}

func TestHabitAddCmdPersists(t *testing.T) {
	ctx := testContext(t)

	add := &HabitAddCmd{Name: "Read", Category: "learning", Frequency: "daily"}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("HabitAddCmd.Run() error = %v", err)
	}

	// A fresh session must see the habit: the command saved the snapshot.
	session, err := ctx.OpenSession()
	if err != nil {
		t.Fatalf("OpenSession() error = %v", err)
	}
	habits := session.Engine.AllHabits()
	if len(habits) != 1 || habits[0].Name != "Read" {
		t.Fatalf("persisted habits = %+v, want one named Read", habits)
	}
}

func TestHabitAddCmdValidation(t *testing.T) {
	ctx := testContext(t)

	tests := []struct {
		name string
		cmd  HabitAddCmd
	}{
		{"bad category", HabitAddCmd{Name: "X", Category: "sports", Frequency: "daily"}},
		{"custom without days", HabitAddCmd{Name: "X", Category: "personal", Frequency: "custom"}},
		{"daily with days", HabitAddCmd{Name: "X", Category: "personal", Frequency: "daily", Days: "mon"}},
		{"bad weekday", HabitAddCmd{Name: "X", Category: "personal", Frequency: "custom", Days: "mon,funday"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Run(ctx); err == nil {
				t.Errorf("HabitAddCmd.Run() accepted invalid input")
			}
		})
	}
}

func TestHabitCompleteCmdRoundtrip(t *testing.T) {
	ctx := testContext(t)

	add := &HabitAddCmd{Name: "Meditate", Category: "personal", Frequency: "daily"}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("add error = %v", err)
	}

	session, err := ctx.OpenSession()
	if err != nil {
		t.Fatalf("OpenSession() error = %v", err)
	}
	id := session.Engine.AllHabits()[0].ID

	complete := &HabitCompleteCmd{ID: id}
	if err := complete.Run(ctx); err != nil {
		t.Fatalf("HabitCompleteCmd.Run() error = %v", err)
	}

	session, _ = ctx.OpenSession()
	habit, err := session.Engine.GetHabit(id)
	if err != nil {
		t.Fatalf("GetHabit() error = %v", err)
	}
	if habit.Streak != 1 {
		t.Errorf("streak = %d, want 1", habit.Streak)
	}

	uncomplete := &HabitUncompleteCmd{ID: id}
	if err := uncomplete.Run(ctx); err != nil {
		t.Fatalf("HabitUncompleteCmd.Run() error = %v", err)
	}
	session, _ = ctx.OpenSession()
	habit, _ = session.Engine.GetHabit(id)
	if habit.Streak != 0 {
		t.Errorf("streak after undo = %d, want 0", habit.Streak)
	}
}

func TestHabitDeleteCmdMissing(t *testing.T) {
	ctx := testContext(t)
	if err := (&HabitDeleteCmd{ID: "missing"}).Run(ctx); err == nil {
		t.Error("deleting a missing habit should fail")
	}
}
