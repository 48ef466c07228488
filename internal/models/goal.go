package models

import "time"

// Goal represents a longer-term objective tracked on the dashboard.
type Goal struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Category   Category  `json:"category"`
	TargetDate string    `json:"target_date,omitempty"` // YYYY-MM-DD format
	Progress   int       `json:"progress"`              // 0-100
	Done       bool      `json:"done"`
	CreatedAt  time.Time `json:"created_at"`
}
