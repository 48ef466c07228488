package constants

const (
	AppName            = "vida"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/vida/vida.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Usage log constants:
	// - MaxUsageEvents bounds the visit log; the oldest event is evicted first.
	// - AnalyzeEveryNVisits controls how often the pattern analyzer runs.
	MaxUsageEvents      = 500
	AnalyzeEveryNVisits = 10

	// Pattern analyzer thresholds
	MorningVisitThreshold  = 5
	NightVisitThreshold    = 5
	CategoryVisitThreshold = 10

	// Pattern analyzer hour windows
	MorningHourStart = 6  // inclusive
	MorningHourEnd   = 9  // inclusive
	NightHourStart   = 21 // inclusive
	NightHourEnd     = 23 // inclusive

	// Suggestion confidence scores (0-100), fixed per rule
	ConfidenceMorningUsage = 75
	ConfidenceNightUsage   = 70
	ConfidenceCategoryPage = 80
	ConfidenceWakeRoutine  = 90
	ConfidenceExercise     = 95
	ConfidenceTagHealth    = 85
	ConfidenceTagFinance   = 90
	ConfidenceTagFocus     = 88

	// HabitProgressWindowDays is the trailing window used to compute a
	// habit's completion rate.
	HabitProgressWindowDays = 7

	// Vault keyring namespace. Secrets are stored under
	// "<AppName>" service with "vault/<entry name>" users.
	VaultKeyPrefix = "vault/"
)

// Goal tag vocabulary accepted by the questionnaire. The tokens come from
// the questionnaire form and are kept as-is.
const (
	GoalTagHealth       = "saude"
	GoalTagFinance      = "financas"
	GoalTagProductivity = "produtividade"
	GoalTagLearning     = "aprendizado"
)
