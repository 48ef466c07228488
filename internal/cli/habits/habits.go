package habits

import (
	"fmt"
	"strings"
	"time"

	"github.com/abmoura/vida/internal/cli"
	"github.com/abmoura/vida/internal/constants"
	"github.com/abmoura/vida/internal/insight"
	"github.com/abmoura/vida/internal/models"
	"github.com/abmoura/vida/internal/validation"
)

type HabitCmd struct {
	Add        HabitAddCmd        `cmd:"" help:"Add a new habit."`
	List       HabitListCmd       `cmd:"" help:"List all habits."`
	Today      HabitTodayCmd      `cmd:"" help:"Show habits due today and their status."`
	Complete   HabitCompleteCmd   `cmd:"" help:"Mark a habit done for today."`
	Uncomplete HabitUncompleteCmd `cmd:"" help:"Undo today's completion."`
	Delete     HabitDeleteCmd     `cmd:"" help:"Delete a habit."`
	Progress   HabitProgressCmd   `cmd:"" help:"Show a habit's weekly completion rate."`
	Log        HabitLogCmd        `cmd:"" help:"Show completion history (ASCII log)."`
}

type HabitAddCmd struct {
	Name       string `arg:"" help:"Habit name."`
	Icon       string `help:"Icon glyph." default:""`
	Category   string `help:"Category (health|productivity|finance|personal|learning)." default:"personal"`
	Frequency  string `help:"Frequency (daily|weekly|custom)." default:"daily"`
	Days       string `help:"Weekdays for custom frequency (e.g. mon,wed,fri)." default:""`
	TargetTime string `help:"Target time of day (HH:MM)." default:""`
	Reminder   bool   `help:"Enable reminders for this habit."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	spec := insight.HabitSpec{
		Name:       c.Name,
		Icon:       c.Icon,
		Category:   models.Category(c.Category),
		Frequency:  models.Frequency(c.Frequency),
		TargetTime: c.TargetTime,
		Reminder:   c.Reminder,
	}
	if c.Days != "" {
		weekdays, err := cli.ParseWeekdays(c.Days)
		if err != nil {
			return err
		}
		spec.CustomDays = weekdays
	}

	if err := validation.ValidateHabitName(spec.Name); err != nil {
		return err
	}
	if err := validation.ValidateCategory(spec.Category); err != nil {
		return err
	}
	if err := validation.ValidateFrequency(spec.Frequency, len(spec.CustomDays)); err != nil {
		return err
	}

	habit, err := session.Engine.AddHabit(spec)
	if err != nil {
		return err
	}
	if err := session.Save(); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", habit.Name, habit.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	habits := session.Engine.AllHabits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		marker := ""
		if habit.AutoDetected {
			marker = " [auto]"
		}
		schedule := string(habit.Frequency)
		if habit.Frequency == models.FrequencyCustom {
			schedule = "custom on " + cli.FormatWeekdays(habit.CustomDays)
		}
		fmt.Printf("%s %s (%s, %s) streak %d best %d%s\n",
			habit.Icon, habit.Name, habit.Category, schedule,
			habit.Streak, habit.BestStreak, marker)
		fmt.Printf("  id: %s\n", habit.ID)
	}
	return nil
}

type HabitTodayCmd struct{}

func (c *HabitTodayCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	today, err := session.Today()
	if err != nil {
		return err
	}

	habits := session.Engine.TodayHabits()
	if len(habits) == 0 {
		fmt.Println("No habits due today.")
		return nil
	}

	fmt.Printf("Habits for %s:\n\n", today)
	done := 0
	for _, habit := range habits {
		status := "[ ]"
		if habit.CompletedOn(today) {
			status = "[x]"
			done++
		}
		fmt.Printf("%s %s %s\n", status, habit.Icon, habit.Name)
	}
	fmt.Printf("\nCompleted: %d/%d\n", done, len(habits))
	return nil
}

type HabitCompleteCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (c *HabitCompleteCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	habit, err := session.Engine.CompleteHabit(c.ID)
	if err != nil {
		return err
	}
	if err := session.Save(); err != nil {
		return err
	}

	fmt.Printf("Completed %q. Streak: %d (best %d)\n", habit.Name, habit.Streak, habit.BestStreak)
	return nil
}

type HabitUncompleteCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (c *HabitUncompleteCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	habit, err := session.Engine.UncompleteHabit(c.ID)
	if err != nil {
		return err
	}
	if err := session.Save(); err != nil {
		return err
	}

	fmt.Printf("Uncompleted %q. Streak: %d\n", habit.Name, habit.Streak)
	return nil
}

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	habit, err := session.Engine.GetHabit(c.ID)
	if err != nil {
		return err
	}
	if err := session.Engine.DeleteHabit(c.ID); err != nil {
		return err
	}
	if err := session.Save(); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}

type HabitProgressCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (c *HabitProgressCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	habit, err := session.Engine.GetHabit(c.ID)
	if err != nil {
		return err
	}
	progress, err := session.Engine.HabitProgress(c.ID)
	if err != nil {
		return err
	}

	bar := strings.Repeat("#", progress/10) + strings.Repeat(".", 10-progress/10)
	fmt.Printf("%s: [%s] %d%% this week\n", habit.Name, bar, progress)
	return nil
}

type HabitLogCmd struct {
	Days int    `help:"Number of days to show." default:"14"`
	ID   string `help:"Show log for a specific habit only." default:""`
}

func (c *HabitLogCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	habits := session.Engine.AllHabits()
	if c.ID != "" {
		habit, err := session.Engine.GetHabit(c.ID)
		if err != nil {
			return err
		}
		habits = []models.Habit{habit}
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today, err := session.Today()
	if err != nil {
		return err
	}
	end, err := time.Parse(constants.DateFormat, today)
	if err != nil {
		return err
	}
	start := end.AddDate(0, 0, -(c.Days - 1))

	fmt.Printf("Habit log (last %d days):\n\n", c.Days)

	const maxNameLen = 20
	fmt.Print(pad("Habit", maxNameLen))
	for i := 0; i < c.Days; i++ {
		fmt.Printf(" %5s", start.AddDate(0, 0, i).Format("01/02"))
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", maxNameLen+6*c.Days))

	for _, habit := range habits {
		fmt.Print(pad(habit.Name, maxNameLen))
		for i := 0; i < c.Days; i++ {
			day := start.AddDate(0, 0, i).Format(constants.DateFormat)
			if habit.CompletedOn(day) {
				fmt.Print("  x   ")
			} else {
				fmt.Print("  .   ")
			}
		}
		fmt.Println()
	}
	return nil
}

func pad(s string, width int) string {
	if len(s) > width {
		return s[:width-3] + "..."
	}
	return s + strings.Repeat(" ", width-len(s))
}
