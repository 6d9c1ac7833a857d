package store

// HealthStore abstracts database health checks
type HealthStore interface {
	// Ping checks database connectivity
	Ping() error
}
