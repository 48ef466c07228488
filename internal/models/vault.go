package models

import "time"

// VaultEntry is the metadata for a stored credential. The secret itself
// never enters application state; it lives only in the OS keyring.
type VaultEntry struct {
	Name      string    `json:"name"`
	Username  string    `json:"username,omitempty"`
	URL       string    `json:"url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
