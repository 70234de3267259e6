package aggregator

import (
	"time"

	"github.com/KirkDiggler/choicetrail/internal/models"
	"go.uber.org/zap"
)

const (
	// DefaultTimeout bounds a single request so a hung aggregator cannot pin a send
	DefaultTimeout = 10 * time.Second

	// PlaceholderEndpoint is the URL left in an unedited configuration
	PlaceholderEndpoint = "YOUR_WEB_APP_URL_HERE"
)

// Config holds configuration for the aggregator client
type Config struct {
	// Endpoint is the aggregator URL. Empty or placeholder endpoints put the
	// client in log-only mode.
	Endpoint string

	Timeout time.Duration
	Logger  *zap.Logger
}

// SendAnswerInput contains the answer to deliver
type SendAnswerInput struct {
	Answer *models.Answer
}

// SendAnswerOutput reports what happened to the answer
type SendAnswerOutput struct {
	// Sent is false when the client is not configured and only logged the answer
	Sent       bool
	StatusCode int
}

// PingInput is empty; the endpoint comes from the client config
type PingInput struct{}

// PingOutput contains the liveness body
type PingOutput struct {
	StatusCode int
	Health     *models.HealthStatus
}
