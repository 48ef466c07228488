package settings

import (
	"fmt"

	"github.com/abmoura/vida/internal/cli"
	"github.com/abmoura/vida/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone         *string `help:"IANA timezone name (e.g. America/Sao_Paulo) or 'Local'."`
	RemindersEnabled *bool   `help:"Enable or disable habit reminders."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	if c.List || (c.Timezone == nil && c.RemindersEnabled == nil) {
		fmt.Println("Current Settings:")
		fmt.Printf("  Timezone:          %s\n", session.State.Settings.Timezone)
		fmt.Printf("  Reminders Enabled: %v\n", session.State.Settings.RemindersEnabled)
		return nil
	}

	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone: %q", *c.Timezone)
		}
		session.State.Settings.Timezone = *c.Timezone
	}
	if c.RemindersEnabled != nil {
		session.State.Settings.RemindersEnabled = *c.RemindersEnabled
	}

	if err := session.Save(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")
	return nil
}
