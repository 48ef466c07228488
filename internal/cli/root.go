package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/abmoura/vida/internal/insight"
	"github.com/abmoura/vida/internal/storage"
	"github.com/abmoura/vida/internal/utils"
)

// Context is the shared dependency container passed to every command.
type Context struct {
	Store storage.Provider
	Debug bool
}

// Session is one command's view of the application: the loaded snapshot
// and an engine constructed over it. Commands mutate the session and call
// Save exactly once at the end; nothing persists in between.
type Session struct {
	State  *storage.State
	Engine *insight.Engine

	store storage.Provider
}

// OpenSession loads the snapshot and builds an insight engine whose clock
// runs in the configured timezone.
func (c *Context) OpenSession() (*Session, error) {
	state, err := c.Store.LoadState()
	if err != nil {
		return nil, err
	}

	loc, err := utils.LoadLocation(state.Settings.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", state.Settings.Timezone, err)
	}
	now := func() time.Time { return time.Now().In(loc) }

	return &Session{
		State:  state,
		Engine: insight.New(state.Insight, now),
		store:  c.Store,
	}, nil
}

// Save persists the session snapshot.
func (s *Session) Save() error {
	return s.store.SaveState(s.State)
}

// Today returns today's date string in the session timezone.
func (s *Session) Today() (string, error) {
	return utils.GetTodayFromSettings(s.State.Settings)
}

// ParseWeekdays parses a comma-separated list of weekdays
func ParseWeekdays(s string) ([]time.Weekday, error) {
	parts := strings.Split(s, ",")
	var weekdays []time.Weekday

	dayMap := map[string]time.Weekday{
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
	}

	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
		} else {
			// Try parsing as number (0=Sunday, 6=Saturday)
			num, err := strconv.Atoi(part)
			if err == nil && num >= 0 && num <= 6 {
				weekdays = append(weekdays, time.Weekday(num))
			} else {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
		}
	}

	return weekdays, nil
}

// FormatWeekdays renders a weekday set as short names.
func FormatWeekdays(weekdays []time.Weekday) string {
	var days []string
	for _, wd := range weekdays {
		days = append(days, wd.String()[:3])
	}
	return strings.Join(days, ",")
}

// ParseAmountCents parses a decimal money string ("12.50") into cents.
func ParseAmountCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	whole, frac := s, ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		whole, frac = s[:idx], s[idx+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("invalid amount: %q (at most two decimal places)", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %q", s)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %q", s)
	}

	total := units*100 + cents
	if negative {
		total = -total
	}
	return total, nil
}

// FormatAmountCents renders cents as a decimal money string.
func FormatAmountCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
