package aggregator

// ClientError represents an error from the aggregator client
type ClientError string

func (e ClientError) Error() string {
	return string(e)
}

const (
	// ErrNilConfig is returned when the config is nil
	ErrNilConfig ClientError = "config cannot be nil"

	// ErrNilAnswer is returned when there is nothing to send
	ErrNilAnswer ClientError = "answer cannot be nil"

	// ErrNotConfigured is returned by calls that need a real endpoint
	ErrNotConfigured ClientError = "aggregator endpoint not configured"

	// ErrUnexpectedStatus is returned for 4xx and 5xx responses
	ErrUnexpectedStatus ClientError = "unexpected response status"
)
