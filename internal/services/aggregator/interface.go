package aggregator

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/choicetrail/internal/services/aggregator Service

import "context"

// Service persists incoming answers into the wide per-session table
type Service interface {
	// Handle upserts one answer into its player's row for the day
	Handle(ctx context.Context, input *HandleInput) (*HandleOutput, error)

	// Count returns the number of session rows without reading their cells
	Count(ctx context.Context, input *CountInput) (*CountOutput, error)

	// Export renders the table as CSV, padded to the header width
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)
}
