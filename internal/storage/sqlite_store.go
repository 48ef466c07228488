package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"github.com/abmoura/vida/internal/models"
)

// SQLiteStore persists the snapshot relationally. Saves replace the whole
// snapshot inside one transaction; the dataset is bounded (the usage log
// caps at 500 events), so a full rewrite stays cheap.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS habits (
		position INTEGER NOT NULL,
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		icon TEXT,
		category TEXT NOT NULL,
		frequency TEXT NOT NULL,
		custom_days TEXT,
		target_time TEXT,
		reminder INTEGER NOT NULL DEFAULT 0,
		streak INTEGER NOT NULL DEFAULT 0,
		best_streak INTEGER NOT NULL DEFAULT 0,
		completed_dates TEXT,
		created_at TEXT NOT NULL,
		auto_detected INTEGER NOT NULL DEFAULT 0,
		detected_reason TEXT,
		signal TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS suggestions (
		position INTEGER NOT NULL,
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		icon TEXT,
		category TEXT NOT NULL,
		reason TEXT NOT NULL,
		confidence INTEGER NOT NULL,
		signal TEXT,
		dismissed INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS usage_events (
		position INTEGER NOT NULL,
		timestamp TEXT NOT NULL,
		page TEXT NOT NULL,
		weekday INTEGER NOT NULL,
		hour INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS page_counts (
		page TEXT PRIMARY KEY,
		count INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS goals (
		position INTEGER NOT NULL,
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		category TEXT NOT NULL,
		target_date TEXT,
		progress INTEGER NOT NULL DEFAULT 0,
		done INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS journal_entries (
		position INTEGER NOT NULL,
		id TEXT PRIMARY KEY,
		day TEXT NOT NULL,
		mood TEXT,
		body TEXT NOT NULL,
		tags TEXT,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		position INTEGER NOT NULL,
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		amount_cents INTEGER NOT NULL,
		category TEXT,
		description TEXT,
		day TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS vault_entries (
		position INTEGER NOT NULL,
		name TEXT PRIMARY KEY,
		username TEXT,
		url TEXT,
		created_at TEXT NOT NULL
	)`,
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.ensureOpen(); err != nil {
		return err
	}

	// Write a default snapshot if the database is empty
	var version string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'version'`).Scan(&version)
	if err == sql.ErrNoRows {
		return s.SaveState(DefaultState())
	}
	return err
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) ensureOpen() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	for _, stmt := range sqliteSchema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) LoadState() (*State, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}

	state := DefaultState()

	meta, err := s.loadMeta()
	if err != nil {
		return nil, err
	}
	if v, ok := meta["version"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			state.Version = n
		}
	}
	if v, ok := meta["settings"]; ok {
		var settings models.Settings
		if err := json.Unmarshal([]byte(v), &settings); err == nil {
			state.Settings = settings
		}
	}
	if v, ok := meta["profile"]; ok && v != "" {
		var profile models.UserProfile
		if err := json.Unmarshal([]byte(v), &profile); err == nil {
			state.Insight.Profile = &profile
		}
	}
	state.Insight.QuestionnaireCompleted = meta["questionnaire_completed"] == "1"
	if v, ok := meta["accepted_count"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			state.Insight.AcceptedCount = n
		}
	}
	if v, ok := meta["total_visits"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			state.Insight.Usage.TotalVisits = n
		}
	}

	if state.Insight.Habits, err = s.loadHabits(); err != nil {
		return nil, err
	}
	if state.Insight.Suggestions, err = s.loadSuggestions(); err != nil {
		return nil, err
	}
	if state.Insight.Usage.Events, err = s.loadUsageEvents(); err != nil {
		return nil, err
	}
	if state.Insight.Usage.PageCounts, err = s.loadPageCounts(); err != nil {
		return nil, err
	}
	if state.Goals, err = s.loadGoals(); err != nil {
		return nil, err
	}
	if state.Journal, err = s.loadJournal(); err != nil {
		return nil, err
	}
	if state.Transactions, err = s.loadTransactions(); err != nil {
		return nil, err
	}
	if state.Vault, err = s.loadVault(); err != nil {
		return nil, err
	}

	state.Normalize()
	return state, nil
}

func (s *SQLiteStore) SaveState(state *State) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	tables := []string{
		"meta", "habits", "suggestions", "usage_events", "page_counts",
		"goals", "journal_entries", "transactions", "vault_entries",
	}
	for _, table := range tables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := s.saveMeta(tx, state); err != nil {
		return err
	}
	if err := s.saveHabits(tx, state.Insight.Habits); err != nil {
		return err
	}
	if err := s.saveSuggestions(tx, state.Insight.Suggestions); err != nil {
		return err
	}
	if err := s.saveUsage(tx, state.Insight.Usage); err != nil {
		return err
	}
	if err := s.saveGoals(tx, state.Goals); err != nil {
		return err
	}
	if err := s.saveJournal(tx, state.Journal); err != nil {
		return err
	}
	if err := s.saveTransactions(tx, state.Transactions); err != nil {
		return err
	}
	if err := s.saveVault(tx, state.Vault); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// GetConfigPath returns the path to the underlying database file.
//
// Concurrency note: running multiple vida processes against the same
// database is not supported and may lose data.
func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) loadMeta() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT key, value FROM meta`)
	if err != nil {
		return nil, fmt.Errorf("failed to load meta: %w", err)
	}
	defer rows.Close()

	meta := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		meta[k] = v
	}
	return meta, rows.Err()
}

func (s *SQLiteStore) saveMeta(tx *sql.Tx, state *State) error {
	settings, err := json.Marshal(state.Settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	meta := map[string]string{
		"version":        strconv.Itoa(state.Version),
		"settings":       string(settings),
		"accepted_count": strconv.Itoa(state.Insight.AcceptedCount),
		"total_visits":   strconv.Itoa(state.Insight.Usage.TotalVisits),
	}
	if state.Insight.QuestionnaireCompleted {
		meta["questionnaire_completed"] = "1"
	} else {
		meta["questionnaire_completed"] = "0"
	}
	if state.Insight.Profile != nil {
		profile, err := json.Marshal(state.Insight.Profile)
		if err != nil {
			return fmt.Errorf("failed to serialize profile: %w", err)
		}
		meta["profile"] = string(profile)
	}

	for k, v := range meta {
		if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES (?, ?)`, k, v); err != nil {
			return fmt.Errorf("failed to save meta %s: %w", k, err)
		}
	}
	return nil
}

func (s *SQLiteStore) loadHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, name, icon, category, frequency, custom_days, target_time,
		       reminder, streak, best_streak, completed_dates, created_at,
		       auto_detected, detected_reason, signal
		FROM habits ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		var icon, customDays, targetTime, completedDates, detectedReason, signal sql.NullString
		var createdAt string
		var reminder, autoDetected int

		err := rows.Scan(&h.ID, &h.Name, &icon, &h.Category, &h.Frequency,
			&customDays, &targetTime, &reminder, &h.Streak, &h.BestStreak,
			&completedDates, &createdAt, &autoDetected, &detectedReason, &signal)
		if err != nil {
			return nil, err
		}

		h.Icon = icon.String
		h.TargetTime = targetTime.String
		h.Reminder = reminder != 0
		h.AutoDetected = autoDetected != 0
		h.DetectedReason = detectedReason.String
		h.Signal = models.PatternSignal(signal.String)
		if customDays.Valid && customDays.String != "" {
			if err := json.Unmarshal([]byte(customDays.String), &h.CustomDays); err != nil {
				return nil, fmt.Errorf("failed to parse custom_days: %w", err)
			}
		}
		if completedDates.Valid && completedDates.String != "" {
			if err := json.Unmarshal([]byte(completedDates.String), &h.CompletedDates); err != nil {
				return nil, fmt.Errorf("failed to parse completed_dates: %w", err)
			}
		}
		if h.CompletedDates == nil {
			h.CompletedDates = []string{}
		}
		if h.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *SQLiteStore) saveHabits(tx *sql.Tx, habits []models.Habit) error {
	for i, h := range habits {
		customDays, err := json.Marshal(h.CustomDays)
		if err != nil {
			return fmt.Errorf("failed to serialize custom_days: %w", err)
		}
		completedDates, err := json.Marshal(h.CompletedDates)
		if err != nil {
			return fmt.Errorf("failed to serialize completed_dates: %w", err)
		}

		_, err = tx.Exec(`
			INSERT INTO habits (position, id, name, icon, category, frequency,
				custom_days, target_time, reminder, streak, best_streak,
				completed_dates, created_at, auto_detected, detected_reason, signal)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, h.ID, h.Name, h.Icon, string(h.Category), string(h.Frequency),
			string(customDays), h.TargetTime, boolToInt(h.Reminder), h.Streak,
			h.BestStreak, string(completedDates), h.CreatedAt.Format(time.RFC3339),
			boolToInt(h.AutoDetected), h.DetectedReason, string(h.Signal))
		if err != nil {
			return fmt.Errorf("failed to save habit %s: %w", h.ID, err)
		}
	}
	return nil
}

func (s *SQLiteStore) loadSuggestions() ([]models.HabitSuggestion, error) {
	rows, err := s.db.Query(`
		SELECT id, name, icon, category, reason, confidence, signal, dismissed, created_at
		FROM suggestions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load suggestions: %w", err)
	}
	defer rows.Close()

	var suggestions []models.HabitSuggestion
	for rows.Next() {
		var sg models.HabitSuggestion
		var icon, signal sql.NullString
		var createdAt string
		var dismissed int

		err := rows.Scan(&sg.ID, &sg.Name, &icon, &sg.Category, &sg.Reason,
			&sg.Confidence, &signal, &dismissed, &createdAt)
		if err != nil {
			return nil, err
		}

		sg.Icon = icon.String
		sg.Signal = models.PatternSignal(signal.String)
		sg.Dismissed = dismissed != 0
		if sg.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		suggestions = append(suggestions, sg)
	}
	return suggestions, rows.Err()
}

func (s *SQLiteStore) saveSuggestions(tx *sql.Tx, suggestions []models.HabitSuggestion) error {
	for i, sg := range suggestions {
		_, err := tx.Exec(`
			INSERT INTO suggestions (position, id, name, icon, category, reason,
				confidence, signal, dismissed, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, sg.ID, sg.Name, sg.Icon, string(sg.Category), sg.Reason,
			sg.Confidence, string(sg.Signal), boolToInt(sg.Dismissed),
			sg.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to save suggestion %s: %w", sg.ID, err)
		}
	}
	return nil
}

func (s *SQLiteStore) loadUsageEvents() ([]models.UsageEvent, error) {
	rows, err := s.db.Query(`
		SELECT timestamp, page, weekday, hour FROM usage_events ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load usage events: %w", err)
	}
	defer rows.Close()

	var events []models.UsageEvent
	for rows.Next() {
		var ev models.UsageEvent
		var timestamp string
		if err := rows.Scan(&timestamp, &ev.Page, &ev.Weekday, &ev.Hour); err != nil {
			return nil, err
		}
		if ev.Timestamp, err = time.Parse(time.RFC3339, timestamp); err != nil {
			return nil, fmt.Errorf("failed to parse timestamp: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (s *SQLiteStore) loadPageCounts() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT page, count FROM page_counts`)
	if err != nil {
		return nil, fmt.Errorf("failed to load page counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var page string
		var count int
		if err := rows.Scan(&page, &count); err != nil {
			return nil, err
		}
		counts[page] = count
	}
	return counts, rows.Err()
}

func (s *SQLiteStore) saveUsage(tx *sql.Tx, usage models.UsageLog) error {
	for i, ev := range usage.Events {
		_, err := tx.Exec(`
			INSERT INTO usage_events (position, timestamp, page, weekday, hour)
			VALUES (?, ?, ?, ?, ?)`,
			i, ev.Timestamp.Format(time.RFC3339), ev.Page, ev.Weekday, ev.Hour)
		if err != nil {
			return fmt.Errorf("failed to save usage event: %w", err)
		}
	}
	for page, count := range usage.PageCounts {
		_, err := tx.Exec(`INSERT INTO page_counts (page, count) VALUES (?, ?)`, page, count)
		if err != nil {
			return fmt.Errorf("failed to save page count: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) loadGoals() ([]models.Goal, error) {
	rows, err := s.db.Query(`
		SELECT id, title, category, target_date, progress, done, created_at
		FROM goals ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var g models.Goal
		var targetDate sql.NullString
		var createdAt string
		var done int
		if err := rows.Scan(&g.ID, &g.Title, &g.Category, &targetDate, &g.Progress, &done, &createdAt); err != nil {
			return nil, err
		}
		g.TargetDate = targetDate.String
		g.Done = done != 0
		if g.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (s *SQLiteStore) saveGoals(tx *sql.Tx, goals []models.Goal) error {
	for i, g := range goals {
		_, err := tx.Exec(`
			INSERT INTO goals (position, id, title, category, target_date, progress, done, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			i, g.ID, g.Title, string(g.Category), g.TargetDate, g.Progress,
			boolToInt(g.Done), g.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to save goal %s: %w", g.ID, err)
		}
	}
	return nil
}

func (s *SQLiteStore) loadJournal() ([]models.JournalEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, day, mood, body, tags, created_at
		FROM journal_entries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal: %w", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		var entry models.JournalEntry
		var mood, tags sql.NullString
		var createdAt string
		if err := rows.Scan(&entry.ID, &entry.Day, &mood, &entry.Text, &tags, &createdAt); err != nil {
			return nil, err
		}
		entry.Mood = models.Mood(mood.String)
		if tags.Valid && tags.String != "" {
			if err := json.Unmarshal([]byte(tags.String), &entry.Tags); err != nil {
				return nil, fmt.Errorf("failed to parse tags: %w", err)
			}
		}
		if entry.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) saveJournal(tx *sql.Tx, entries []models.JournalEntry) error {
	for i, entry := range entries {
		tags, err := json.Marshal(entry.Tags)
		if err != nil {
			return fmt.Errorf("failed to serialize tags: %w", err)
		}
		_, err = tx.Exec(`
			INSERT INTO journal_entries (position, id, day, mood, body, tags, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, entry.ID, entry.Day, string(entry.Mood), entry.Text, string(tags),
			entry.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to save journal entry %s: %w", entry.ID, err)
		}
	}
	return nil
}

func (s *SQLiteStore) loadTransactions() ([]models.Transaction, error) {
	rows, err := s.db.Query(`
		SELECT id, kind, amount_cents, category, description, day, created_at
		FROM transactions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		var t models.Transaction
		var category, description sql.NullString
		var createdAt string
		if err := rows.Scan(&t.ID, &t.Kind, &t.AmountCents, &category, &description, &t.Day, &createdAt); err != nil {
			return nil, err
		}
		t.Category = category.String
		t.Description = description.String
		if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func (s *SQLiteStore) saveTransactions(tx *sql.Tx, txns []models.Transaction) error {
	for i, t := range txns {
		_, err := tx.Exec(`
			INSERT INTO transactions (position, id, kind, amount_cents, category, description, day, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			i, t.ID, string(t.Kind), t.AmountCents, t.Category, t.Description,
			t.Day, t.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to save transaction %s: %w", t.ID, err)
		}
	}
	return nil
}

func (s *SQLiteStore) loadVault() ([]models.VaultEntry, error) {
	rows, err := s.db.Query(`
		SELECT name, username, url, created_at FROM vault_entries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load vault entries: %w", err)
	}
	defer rows.Close()

	var entries []models.VaultEntry
	for rows.Next() {
		var entry models.VaultEntry
		var username, url sql.NullString
		var createdAt string
		if err := rows.Scan(&entry.Name, &username, &url, &createdAt); err != nil {
			return nil, err
		}
		entry.Username = username.String
		entry.URL = url.String
		if entry.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) saveVault(tx *sql.Tx, entries []models.VaultEntry) error {
	for i, entry := range entries {
		_, err := tx.Exec(`
			INSERT INTO vault_entries (position, name, username, url, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			i, entry.Name, entry.Username, entry.URL, entry.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to save vault entry %s: %w", entry.Name, err)
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
