package aggregator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/choicetrail/internal/models"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// client implements the Client interface with the fiber HTTP agent
type client struct {
	endpoint   string
	configured bool
	timeout    time.Duration
	logger     *zap.Logger
}

// New creates a new aggregator client
func New(cfg *Config) (*client, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &client{
		endpoint:   cfg.Endpoint,
		configured: IsConfigured(cfg.Endpoint),
		timeout:    timeout,
		logger:     logger,
	}, nil
}

// IsConfigured reports whether endpoint points at a real aggregator
func IsConfigured(endpoint string) bool {
	return strings.TrimSpace(endpoint) != "" && !strings.Contains(endpoint, PlaceholderEndpoint)
}

// SendAnswer posts the answer as JSON. In log-only mode the payload is logged
// and nothing is sent.
func (c *client) SendAnswer(ctx context.Context, input *SendAnswerInput) (*SendAnswerOutput, error) {
	if input == nil || input.Answer == nil {
		return nil, ErrNilAnswer
	}

	if !c.configured {
		c.logger.Warn("Aggregator endpoint not configured, answer not sent",
			zap.Any("answer", input.Answer))
		return &SendAnswerOutput{Sent: false}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	agent := fiber.Post(c.endpoint)
	agent.JSON(input.Answer)
	agent.Timeout(c.timeout)

	code, _, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to send answer: %w", errors.Join(errs...))
	}
	if code >= fiber.StatusBadRequest {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, code)
	}

	c.logger.Debug("Answer sent",
		zap.String("question", input.Answer.Question),
		zap.Int("status", code))

	return &SendAnswerOutput{
		Sent:       true,
		StatusCode: code,
	}, nil
}

// Ping fetches the liveness body
func (c *client) Ping(ctx context.Context, input *PingInput) (*PingOutput, error) {
	if !c.configured {
		return nil, ErrNotConfigured
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	agent := fiber.Get(c.endpoint)
	agent.Timeout(c.timeout)

	health := &models.HealthStatus{}
	code, _, errs := agent.Struct(health)
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to ping aggregator: %w", errors.Join(errs...))
	}
	if code >= fiber.StatusBadRequest {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, code)
	}

	return &PingOutput{
		StatusCode: code,
		Health:     health,
	}, nil
}
