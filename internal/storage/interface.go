package storage

// Provider persists the application snapshot. Implementations are not
// safe for concurrent use; a single vida process is the only supported
// writer for a given config path.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Snapshot
	// LoadState returns the stored snapshot. A missing or unreadable
	// snapshot yields empty defaults rather than an error: the engine
	// must come up even when its state is gone or corrupt.
	LoadState() (*State, error)
	SaveState(*State) error

	// Utils
	GetConfigPath() string
}
