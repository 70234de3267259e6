package aggregator

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/KirkDiggler/choicetrail/internal/clients/aggregator Client

import "context"

// Client delivers answers to the aggregator endpoint
type Client interface {
	// SendAnswer posts one answer. The response body is not interpreted.
	SendAnswer(ctx context.Context, input *SendAnswerInput) (*SendAnswerOutput, error)

	// Ping calls the liveness route of the aggregator
	Ping(ctx context.Context, input *PingInput) (*PingOutput, error)
}
