package collector

import (
	"context"
	"time"

	aggregatorClient "github.com/KirkDiggler/choicetrail/internal/clients/aggregator"
	"github.com/KirkDiggler/choicetrail/internal/common/clock"
	"github.com/KirkDiggler/choicetrail/internal/common/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// service implements the Service interface
type service struct {
	client       aggregatorClient.Client
	clock        clock.Clock
	uuid         uuid.UUID
	logger       *zap.Logger
	capturePhone bool
	cooldown     time.Duration
	recentWindow int
	maxDepth     int
	maxInFlight  int
}

// New creates a new collector service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Client == nil {
		return nil, ErrNilClient
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cooldown := cfg.Cooldown
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}

	recentWindow := cfg.RecentWindow
	if recentWindow <= 0 {
		recentWindow = DefaultRecentWindow
	}

	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	maxInFlight := cfg.MaxInFlight
	if maxInFlight <= 0 {
		maxInFlight = DefaultMaxInFlight
	}

	return &service{
		client:       cfg.Client,
		clock:        cfg.Clock,
		uuid:         cfg.UUID,
		logger:       logger,
		capturePhone: cfg.CapturePhone,
		cooldown:     cooldown,
		recentWindow: recentWindow,
		maxDepth:     maxDepth,
		maxInFlight:  maxInFlight,
	}, nil
}

// StartSession creates a session with its own dedup window and cooldown
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		input = &StartSessionInput{}
	}

	id := s.uuid.NewUUID()
	sends := &errgroup.Group{}
	sends.SetLimit(s.maxInFlight)

	sess := &session{
		id:           id,
		startedAt:    s.clock.Now(),
		client:       s.client,
		clock:        s.clock,
		identity:     input.Identity,
		logger:       s.logger.With(zap.String("session", id)),
		capturePhone: s.capturePhone,
		maxDepth:     s.maxDepth,
		admission:    newAdmission(s.recentWindow, s.cooldown),
		sends:        sends,
	}

	sess.logger.Info("Session started", zap.Time("startedAt", sess.startedAt))

	return &StartSessionOutput{
		Session: sess,
	}, nil
}
