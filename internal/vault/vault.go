package vault

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/abmoura/vida/internal/constants"
	"github.com/abmoura/vida/internal/keyring"
	"github.com/abmoura/vida/internal/models"
)

// Vault manages stored credentials. Entry metadata (name, username, URL)
// lives in the application snapshot so entries can be listed; the secret
// itself is written only to the OS keyring and never touches the
// snapshot.
type Vault struct {
	entries *[]models.VaultEntry
	now     func() time.Time
}

// New creates a vault over the given entry index.
func New(entries *[]models.VaultEntry, now func() time.Time) *Vault {
	if now == nil {
		now = time.Now
	}
	return &Vault{entries: entries, now: now}
}

// Set stores a secret and upserts its index entry.
func (v *Vault) Set(name, username, url, secret string) error {
	if name == "" {
		return errors.New("entry name is required")
	}
	if secret == "" {
		return errors.New("secret cannot be empty")
	}

	if err := keyring.Set(constants.VaultKeyPrefix+name, secret); err != nil {
		return err
	}

	for i := range *v.entries {
		if (*v.entries)[i].Name == name {
			(*v.entries)[i].Username = username
			(*v.entries)[i].URL = url
			return nil
		}
	}
	*v.entries = append(*v.entries, models.VaultEntry{
		Name:      name,
		Username:  username,
		URL:       url,
		CreatedAt: v.now(),
	})
	return nil
}

// Get returns the entry metadata and its secret.
func (v *Vault) Get(name string) (models.VaultEntry, string, error) {
	entry, err := v.find(name)
	if err != nil {
		return models.VaultEntry{}, "", err
	}

	secret, err := keyring.Get(constants.VaultKeyPrefix + name)
	if err != nil {
		return models.VaultEntry{}, "", err
	}
	return entry, secret, nil
}

// List returns the entry index sorted by name. Secrets are not read.
func (v *Vault) List() []models.VaultEntry {
	entries := make([]models.VaultEntry, len(*v.entries))
	copy(entries, *v.entries)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Delete removes the secret and its index entry.
func (v *Vault) Delete(name string) error {
	if _, err := v.find(name); err != nil {
		return err
	}

	if err := keyring.Delete(constants.VaultKeyPrefix + name); err != nil && err != keyring.ErrNotFound {
		return err
	}

	for i := range *v.entries {
		if (*v.entries)[i].Name == name {
			*v.entries = append((*v.entries)[:i], (*v.entries)[i+1:]...)
			break
		}
	}
	return nil
}

func (v *Vault) find(name string) (models.VaultEntry, error) {
	for i := range *v.entries {
		if (*v.entries)[i].Name == name {
			return (*v.entries)[i], nil
		}
	}
	return models.VaultEntry{}, fmt.Errorf("vault entry not found: %s", name)
}
