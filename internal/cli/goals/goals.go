package goals

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/abmoura/vida/internal/cli"
	"github.com/abmoura/vida/internal/models"
	"github.com/abmoura/vida/internal/utils"
	"github.com/abmoura/vida/internal/validation"
)

type GoalCmd struct {
	Add      GoalAddCmd      `cmd:"" help:"Add a new goal."`
	List     GoalListCmd     `cmd:"" default:"1" help:"List goals."`
	Progress GoalProgressCmd `cmd:"" help:"Update a goal's progress."`
	Done     GoalDoneCmd     `cmd:"" help:"Mark a goal as done."`
	Delete   GoalDeleteCmd   `cmd:"" help:"Delete a goal."`
}

type GoalAddCmd struct {
	Title      string `arg:"" help:"Goal title."`
	Category   string `help:"Category (health|productivity|finance|personal|learning)." default:"personal"`
	TargetDate string `help:"Target date (YYYY-MM-DD)." default:""`
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	if c.Title == "" {
		return fmt.Errorf("goal title is required")
	}
	category := models.Category(c.Category)
	if err := validation.ValidateCategory(category); err != nil {
		return err
	}
	if c.TargetDate != "" && !utils.ValidateDateFormat(c.TargetDate) {
		return fmt.Errorf("invalid target date: %q (expected YYYY-MM-DD)", c.TargetDate)
	}

	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	goal := models.Goal{
		ID:         uuid.New().String(),
		Title:      c.Title,
		Category:   category,
		TargetDate: c.TargetDate,
		CreatedAt:  session.Engine.Now(),
	}
	session.State.Goals = append(session.State.Goals, goal)

	if err := session.Save(); err != nil {
		return err
	}
	fmt.Printf("Added goal: %s (%s)\n", goal.Title, goal.ID)
	return nil
}

type GoalListCmd struct {
	All bool `help:"Include completed goals."`
}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	shown := 0
	for _, goal := range session.State.Goals {
		if goal.Done && !c.All {
			continue
		}
		shown++
		status := fmt.Sprintf("%d%%", goal.Progress)
		if goal.Done {
			status = "done"
		}
		target := ""
		if goal.TargetDate != "" {
			target = " by " + goal.TargetDate
		}
		fmt.Printf("[%s] %s (%s)%s\n", status, goal.Title, goal.Category, target)
		fmt.Printf("  id: %s\n", goal.ID)
	}
	if shown == 0 {
		fmt.Println("No goals found.")
	}
	return nil
}

type GoalProgressCmd struct {
	ID       string `arg:"" help:"Goal id."`
	Progress int    `arg:"" help:"Progress (0-100)."`
}

func (c *GoalProgressCmd) Run(ctx *cli.Context) error {
	if err := validation.ValidateProgress(c.Progress); err != nil {
		return err
	}

	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	goal, err := findGoal(session.State.Goals, c.ID)
	if err != nil {
		return err
	}
	goal.Progress = c.Progress
	if c.Progress == 100 {
		goal.Done = true
	}

	if err := session.Save(); err != nil {
		return err
	}
	fmt.Printf("Updated %q to %d%%\n", goal.Title, goal.Progress)
	return nil
}

type GoalDoneCmd struct {
	ID string `arg:"" help:"Goal id."`
}

func (c *GoalDoneCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	goal, err := findGoal(session.State.Goals, c.ID)
	if err != nil {
		return err
	}
	goal.Done = true
	goal.Progress = 100

	if err := session.Save(); err != nil {
		return err
	}
	fmt.Printf("Completed goal: %s\n", goal.Title)
	return nil
}

type GoalDeleteCmd struct {
	ID string `arg:"" help:"Goal id."`
}

func (c *GoalDeleteCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	for i := range session.State.Goals {
		if session.State.Goals[i].ID == c.ID {
			title := session.State.Goals[i].Title
			session.State.Goals = append(session.State.Goals[:i], session.State.Goals[i+1:]...)
			if err := session.Save(); err != nil {
				return err
			}
			fmt.Printf("Deleted goal: %s\n", title)
			return nil
		}
	}
	return fmt.Errorf("goal not found: %s", c.ID)
}

func findGoal(goals []models.Goal, id string) (*models.Goal, error) {
	for i := range goals {
		if goals[i].ID == id {
			return &goals[i], nil
		}
	}
	return nil, fmt.Errorf("goal not found: %s", id)
}
