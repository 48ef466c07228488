package models

// Settings represents application-wide settings
type Settings struct {
	Timezone         string `json:"timezone"`          // IANA timezone name (e.g. "America/Sao_Paulo", or "Local" for system timezone)
	RemindersEnabled bool   `json:"reminders_enabled"` // whether habit reminders are enabled
}
