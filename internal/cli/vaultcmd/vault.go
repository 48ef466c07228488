package vaultcmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/abmoura/vida/internal/cli"
	"github.com/abmoura/vida/internal/keyring"
	"github.com/abmoura/vida/internal/vault"
)

type VaultCmd struct {
	Set    VaultSetCmd    `cmd:"" help:"Store or update a credential."`
	Get    VaultGetCmd    `cmd:"" help:"Retrieve a credential."`
	List   VaultListCmd   `cmd:"" default:"1" help:"List stored credentials (metadata only)."`
	Delete VaultDeleteCmd `cmd:"" help:"Delete a credential."`
}

type VaultSetCmd struct {
	Name     string `arg:"" help:"Entry name."`
	Username string `help:"Account username." default:""`
	URL      string `help:"Account URL." default:""`
	Secret   string `help:"Secret value; prompted securely when omitted." default:""`
}

func (c *VaultSetCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		return errors.New("OS keyring is not available; the vault cannot store secrets on this system")
	}

	secret := c.Secret
	if secret == "" {
		prompt := huh.NewInput().
			Title(fmt.Sprintf("Secret for %q", c.Name)).
			EchoMode(huh.EchoModePassword).
			Value(&secret)
		if err := prompt.Run(); err != nil {
			return fmt.Errorf("secret prompt error: %w", err)
		}
	}

	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	v := vault.New(&session.State.Vault, session.Engine.Now)
	if err := v.Set(c.Name, c.Username, c.URL, secret); err != nil {
		return err
	}
	if err := session.Save(); err != nil {
		return err
	}

	fmt.Printf("Stored credential: %s\n", c.Name)
	return nil
}

type VaultGetCmd struct {
	Name string `arg:"" help:"Entry name."`
}

func (c *VaultGetCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	v := vault.New(&session.State.Vault, session.Engine.Now)
	entry, secret, err := v.Get(c.Name)
	if err != nil {
		return err
	}

	fmt.Printf("Name:     %s\n", entry.Name)
	if entry.Username != "" {
		fmt.Printf("Username: %s\n", entry.Username)
	}
	if entry.URL != "" {
		fmt.Printf("URL:      %s\n", entry.URL)
	}
	fmt.Printf("Secret:   %s\n", secret)
	return nil
}

type VaultListCmd struct{}

func (c *VaultListCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	v := vault.New(&session.State.Vault, session.Engine.Now)
	entries := v.List()
	if len(entries) == 0 {
		fmt.Println("The vault is empty.")
		return nil
	}

	for _, entry := range entries {
		line := entry.Name
		if entry.Username != "" {
			line += " (" + entry.Username + ")"
		}
		if entry.URL != "" {
			line += " " + entry.URL
		}
		fmt.Println(line)
	}
	return nil
}

type VaultDeleteCmd struct {
	Name string `arg:"" help:"Entry name."`
}

func (c *VaultDeleteCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	v := vault.New(&session.State.Vault, session.Engine.Now)
	if err := v.Delete(c.Name); err != nil {
		return err
	}
	if err := session.Save(); err != nil {
		return err
	}

	fmt.Printf("Deleted credential: %s\n", c.Name)
	return nil
}
