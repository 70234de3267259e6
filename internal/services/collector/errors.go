package collector

// CollectorError represents an error from the collector service
type CollectorError string

func (e CollectorError) Error() string {
	return string(e)
}

const (
	// ErrNilConfig is returned when the config is nil
	ErrNilConfig CollectorError = "config cannot be nil"

	// ErrNilClient is returned when no aggregator client is configured
	ErrNilClient CollectorError = "aggregator client cannot be nil"

	// ErrNilClock is returned when no clock is configured
	ErrNilClock CollectorError = "clock cannot be nil"

	// ErrNilUUID is returned when no ID generator is configured
	ErrNilUUID CollectorError = "uuid generator cannot be nil"

	// ErrSessionClosed is returned by Close on a session that is already closed
	ErrSessionClosed CollectorError = "session already closed"
)
