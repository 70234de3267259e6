package aggregator

// AggregatorError is a custom error type for aggregator errors
type AggregatorError string

// Error implements the error interface
func (e AggregatorError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilInput     AggregatorError = "input cannot be nil"
	ErrNoPayload    AggregatorError = "No POST data received"
	ErrNilConfig    AggregatorError = "config cannot be nil"
	ErrNilSheetRepo AggregatorError = "sheet repository cannot be nil"
	ErrNilClock     AggregatorError = "clock cannot be nil"
)
