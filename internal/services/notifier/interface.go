package notifier

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/choicetrail/internal/services/notifier Notifier

import "context"

// Notifier announces aggregator events to people watching the survey
type Notifier interface {
	// NotifySessionStarted reports that a new player session row was created
	NotifySessionStarted(ctx context.Context, input *NotifySessionStartedInput) error
}
