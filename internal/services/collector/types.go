package collector

import (
	"time"

	aggregatorClient "github.com/KirkDiggler/choicetrail/internal/clients/aggregator"
	"github.com/KirkDiggler/choicetrail/internal/common/clock"
	"github.com/KirkDiggler/choicetrail/internal/common/uuid"
	"github.com/KirkDiggler/choicetrail/internal/models"
	"go.uber.org/zap"
)

const (
	DefaultCooldown     = 2 * time.Second
	DefaultRecentWindow = 10
	DefaultMaxDepth     = 5
	DefaultMaxInFlight  = 8
)

// Config holds the configuration for the collector service
type Config struct {
	Client aggregatorClient.Client
	Clock  clock.Clock
	UUID   uuid.UUID
	Logger *zap.Logger

	// CapturePhone enables phone number resolution; when false answers carry
	// an empty phone number
	CapturePhone bool

	// Cooldown is the minimum time between two admitted answers
	Cooldown time.Duration

	// RecentWindow is how many admitted answers are remembered for dedup
	RecentWindow int

	// MaxDepth bounds the record scan, counting the root segment
	MaxDepth int

	// MaxInFlight bounds concurrent sends; answers beyond it are dropped
	MaxInFlight int
}

// StartSessionInput contains the engine state a session reads identity from
type StartSessionInput struct {
	// Identity may be nil, in which case every answer is anonymous
	Identity IdentitySource
}

// StartSessionOutput contains the new session
type StartSessionOutput struct {
	Session Session
}

// ObserveInput carries one engine record
type ObserveInput struct {
	// Record is a decoded action: nested map[string]any, []any and
	// map[string]string values
	Record any
}

// ObserveChoiceInput carries a choice the engine resolved explicitly
type ObserveChoiceInput struct {
	Candidate models.Candidate
}

// Rejection says why an observation produced no answer
type Rejection string

const (
	RejectionNone        Rejection = ""
	RejectionNoCandidate Rejection = "no_candidate"
	RejectionDuplicate   Rejection = "duplicate"
	RejectionCooldown    Rejection = "cooldown"
	RejectionNotChoice   Rejection = "not_a_choice"
	RejectionClosed      Rejection = "session_closed"
	RejectionFailed      Rejection = "failed"
)

// ObserveOutput reports the outcome of one observation
type ObserveOutput struct {
	// Answer is set when an answer was admitted
	Answer *models.Answer

	// Path is the dotted record path of the admitted or last rejected candidate
	Path string

	Rejection Rejection

	// Dropped is true when the answer was admitted but too many sends were
	// already in flight
	Dropped bool
}
