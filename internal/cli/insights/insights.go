package insights

import (
	"fmt"
	"strings"

	"github.com/abmoura/vida/internal/cli"
)

type VisitCmd struct {
	Record VisitRecordCmd `cmd:"" default:"withargs" help:"Record a page visit."`
	Log    VisitLogCmd    `cmd:"" help:"Show recent usage events."`
}

type VisitRecordCmd struct {
	Page string `arg:"" help:"Page path (e.g. /finance)."`
}

func (c *VisitRecordCmd) Run(ctx *cli.Context) error {
	if !strings.HasPrefix(c.Page, "/") {
		return fmt.Errorf("invalid page: %q (must start with /)", c.Page)
	}

	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	suggestions := session.Engine.RecordVisit(c.Page)
	if err := session.Save(); err != nil {
		return err
	}

	fmt.Printf("Recorded visit to %s (total: %d)\n", c.Page, session.Engine.Stats().TotalVisits)
	for _, s := range suggestions {
		fmt.Printf("New suggestion: %s %s (%d%%) — %s\n", s.Icon, s.Name, s.Confidence, s.Reason)
	}
	return nil
}

type VisitLogCmd struct {
	Limit int `help:"Number of recent events to show." default:"20"`
}

func (c *VisitLogCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	events := session.State.Insight.Usage.Events
	if len(events) == 0 {
		fmt.Println("No visits recorded yet.")
		return nil
	}

	start := 0
	if c.Limit > 0 && len(events) > c.Limit {
		start = len(events) - c.Limit
	}
	for _, e := range events[start:] {
		fmt.Printf("%s  %-20s (hour %02d)\n", e.Timestamp.Format("2006-01-02 15:04"), e.Page, e.Hour)
	}
	return nil
}

type SuggestCmd struct {
	List    SuggestListCmd    `cmd:"" default:"1" help:"List habit suggestions."`
	Accept  SuggestAcceptCmd  `cmd:"" help:"Accept a suggestion as a new habit."`
	Dismiss SuggestDismissCmd `cmd:"" help:"Dismiss a suggestion."`
}

type SuggestListCmd struct {
	All bool `help:"Include dismissed suggestions."`
}

func (c *SuggestListCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	suggestions := session.Engine.ActiveSuggestions()
	if c.All {
		suggestions = session.Engine.AllSuggestions()
	}
	if len(suggestions) == 0 {
		fmt.Println("No suggestions. Keep using vida; patterns surface over time.")
		return nil
	}

	for _, s := range suggestions {
		marker := ""
		if s.Dismissed {
			marker = " [dismissed]"
		}
		fmt.Printf("%s %s (%d%% confidence)%s\n", s.Icon, s.Name, s.Confidence, marker)
		fmt.Printf("  %s\n", s.Reason)
		fmt.Printf("  id: %s\n", s.ID)
	}
	return nil
}

type SuggestAcceptCmd struct {
	ID string `arg:"" help:"Suggestion id."`
}

func (c *SuggestAcceptCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	habit, err := session.Engine.AcceptSuggestion(c.ID)
	if err != nil {
		return err
	}
	if err := session.Save(); err != nil {
		return err
	}

	fmt.Printf("Accepted: %s is now a daily habit (%s)\n", habit.Name, habit.ID)
	return nil
}

type SuggestDismissCmd struct {
	ID string `arg:"" help:"Suggestion id."`
}

func (c *SuggestDismissCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	if err := session.Engine.DismissSuggestion(c.ID); err != nil {
		return err
	}
	if err := session.Save(); err != nil {
		return err
	}

	fmt.Println("Suggestion dismissed. It will not be proposed again.")
	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	stats := session.Engine.Stats()

	fmt.Println("Insight statistics:")
	fmt.Printf("  Total visits:        %d\n", stats.TotalVisits)
	fmt.Printf("  Tracked events:      %d\n", stats.TrackedEvents)
	fmt.Printf("  Habits:              %d (%d auto-detected)\n", stats.Habits, stats.AutoDetectedHabits)
	fmt.Printf("  Suggestions:         %d active, %d dismissed, %d accepted\n",
		stats.ActiveSuggestions, stats.DismissedSuggestions, stats.AcceptedSuggestions)
	fmt.Printf("  Questionnaire done:  %v\n", stats.QuestionnaireCompleted)

	if len(stats.TopPages) > 0 {
		fmt.Println("\nTop pages:")
		for _, p := range stats.TopPages {
			fmt.Printf("  %-20s %d\n", p.Page, p.Visits)
		}
	}
	return nil
}
