package collector

//go:generate mockgen -package=mocks -destination=mocks/mock_collector.go github.com/KirkDiggler/choicetrail/internal/services/collector Service,Session,IdentitySource

import (
	"context"

	"github.com/KirkDiggler/choicetrail/internal/models"
)

// Service starts observation sessions
type Service interface {
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)
}

// Session watches one play-through of the game. Observe and ObserveChoice
// never block on the network and never panic into the caller.
type Session interface {
	ID() string

	// Observe scans an engine record for answers and sends at most one
	Observe(ctx context.Context, input *ObserveInput) *ObserveOutput

	// ObserveChoice is called when the engine reports a resolved choice
	// directly. The record path check does not apply.
	ObserveChoice(ctx context.Context, input *ObserveChoiceInput) *ObserveOutput

	Profile() models.Profile
	Scene() string

	// Close stops admitting answers and waits for in-flight sends
	Close() error
}

// IdentitySource exposes the engine state identity is resolved from
type IdentitySource interface {
	// Variables returns the engine's variable bag
	Variables() map[string]any

	// PlayerConfig returns the player character's configuration
	PlayerConfig() map[string]any
}
