package journal

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/abmoura/vida/internal/cli"
	"github.com/abmoura/vida/internal/models"
	"github.com/abmoura/vida/internal/utils"
)

type JournalCmd struct {
	Add  JournalAddCmd  `cmd:"" help:"Add a journal entry."`
	List JournalListCmd `cmd:"" default:"1" help:"List journal entries."`
}

type JournalAddCmd struct {
	Text string `arg:"" help:"Entry text."`
	Mood string `help:"Mood (great|good|neutral|bad|awful)." default:""`
	Tags string `help:"Comma-separated tags." default:""`
	Day  string `help:"Entry date (YYYY-MM-DD); defaults to today." default:""`
}

func (c *JournalAddCmd) Run(ctx *cli.Context) error {
	if c.Text == "" {
		return fmt.Errorf("entry text is required")
	}
	mood := models.Mood(c.Mood)
	if c.Mood != "" && !mood.Valid() {
		return fmt.Errorf("invalid mood: %s", c.Mood)
	}
	if c.Day != "" && !utils.ValidateDateFormat(c.Day) {
		return fmt.Errorf("invalid day: %q (expected YYYY-MM-DD)", c.Day)
	}

	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	day := c.Day
	if day == "" {
		day, err = session.Today()
		if err != nil {
			return err
		}
	}

	entry := models.JournalEntry{
		ID:        uuid.New().String(),
		Day:       day,
		Mood:      mood,
		Text:      c.Text,
		CreatedAt: session.Engine.Now(),
	}
	if c.Tags != "" {
		for _, tag := range strings.Split(c.Tags, ",") {
			entry.Tags = append(entry.Tags, strings.TrimSpace(tag))
		}
	}
	session.State.Journal = append(session.State.Journal, entry)

	if err := session.Save(); err != nil {
		return err
	}
	fmt.Printf("Journal entry added for %s\n", entry.Day)
	return nil
}

type JournalListCmd struct {
	Day   string `help:"Show entries for a specific date (YYYY-MM-DD)." default:""`
	Limit int    `help:"Number of recent entries to show." default:"10"`
}

func (c *JournalListCmd) Run(ctx *cli.Context) error {
	if c.Day != "" && !utils.ValidateDateFormat(c.Day) {
		return fmt.Errorf("invalid day: %q (expected YYYY-MM-DD)", c.Day)
	}

	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	var entries []models.JournalEntry
	for _, e := range session.State.Journal {
		if c.Day == "" || e.Day == c.Day {
			entries = append(entries, e)
		}
	}
	if len(entries) == 0 {
		fmt.Println("No journal entries found.")
		return nil
	}
	if c.Day == "" && c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[len(entries)-c.Limit:]
	}

	for _, e := range entries {
		header := e.Day
		if e.Mood != "" {
			header += " (" + string(e.Mood) + ")"
		}
		if len(e.Tags) > 0 {
			header += " #" + strings.Join(e.Tags, " #")
		}
		fmt.Println(header)
		fmt.Printf("  %s\n", e.Text)
	}
	return nil
}
