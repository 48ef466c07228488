package storage

import (
	"github.com/abmoura/vida/internal/insight"
	"github.com/abmoura/vida/internal/models"
)

// State is the full application snapshot: the insight engine state plus
// the dashboard collections. A store loads the whole snapshot at the start
// of a command and saves it back at the end; nothing writes in between.
type State struct {
	Version      int                   `json:"version"`
	Settings     models.Settings       `json:"settings"`
	Insight      *insight.State        `json:"insight"`
	Goals        []models.Goal         `json:"goals"`
	Journal      []models.JournalEntry `json:"journal"`
	Transactions []models.Transaction  `json:"transactions"`
	Vault        []models.VaultEntry   `json:"vault"`
}

// DefaultState returns an empty snapshot with default settings.
func DefaultState() *State {
	return &State{
		Version: 1,
		Settings: models.Settings{
			Timezone:         "Local",
			RemindersEnabled: true,
		},
		Insight:      insight.NewState(),
		Goals:        []models.Goal{},
		Journal:      []models.JournalEntry{},
		Transactions: []models.Transaction{},
		Vault:        []models.VaultEntry{},
	}
}

// Normalize repairs nil collections after a load so callers never see a
// partially initialized snapshot.
func (s *State) Normalize() {
	if s.Insight == nil {
		s.Insight = insight.NewState()
	}
	s.Insight.Normalize()
	if s.Goals == nil {
		s.Goals = []models.Goal{}
	}
	if s.Journal == nil {
		s.Journal = []models.JournalEntry{}
	}
	if s.Transactions == nil {
		s.Transactions = []models.Transaction{}
	}
	if s.Vault == nil {
		s.Vault = []models.VaultEntry{}
	}
	if s.Settings.Timezone == "" {
		s.Settings.Timezone = "Local"
	}
}
