package models

import "time"

// UsageEvent records a single page visit. Events are never mutated; the
// log evicts the oldest event once the cap is reached.
type UsageEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Page      string    `json:"page"`
	Weekday   int       `json:"weekday"` // 0 (Sunday) - 6 (Saturday)
	Hour      int       `json:"hour"`    // 0-23
}

// UsageLog is a capped FIFO log of page visits plus running counters.
// TotalVisits counts every visit ever recorded, including evicted ones;
// PageCounts tracks per-page visit totals.
type UsageLog struct {
	Events      []UsageEvent   `json:"events"`
	TotalVisits int            `json:"total_visits"`
	PageCounts  map[string]int `json:"page_counts"`
}

// HourHistogram buckets the retained events by hour of day.
func (l *UsageLog) HourHistogram() [24]int {
	var hist [24]int
	for _, ev := range l.Events {
		if ev.Hour >= 0 && ev.Hour < 24 {
			hist[ev.Hour]++
		}
	}
	return hist
}
