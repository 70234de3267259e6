package aggregator

import (
	"time"

	"github.com/KirkDiggler/choicetrail/internal/common/clock"
	"github.com/KirkDiggler/choicetrail/internal/models"
	sheetRepo "github.com/KirkDiggler/choicetrail/internal/repositories/sheet"
	"github.com/KirkDiggler/choicetrail/internal/services/notifier"
	"go.uber.org/zap"
)

const (
	// DefaultSheetName is the table answers are written to
	DefaultSheetName = "Game Answers"

	// DefaultMaxSlots bounds explicit "question N" slot numbers
	DefaultMaxSlots = 200

	// DefaultNotifyTimeout bounds the new-session announcement
	DefaultNotifyTimeout = 5 * time.Second

	defaultPlayerName = models.AnonymousPlayer
	defaultQuestion   = "No question"
	defaultAnswer     = "No answer"
)

// Stage is a step of handling one answer
type Stage string

const (
	StageReceived       Stage = "received"
	StageRowResolved    Stage = "row_resolved"
	StageSlotResolved   Stage = "slot_resolved"
	StageHeadersEnsured Stage = "headers_ensured"
	StageAcknowledged   Stage = "acknowledged"
)

// Config holds configuration for the aggregator service
type Config struct {
	// SheetName is the table answers are written to
	SheetName string

	// Location decides which calendar day a timestamp belongs to
	Location *time.Location

	// MaxSlots is the highest slot an explicit "question N" may select
	MaxSlots int

	// NotifyTimeout bounds each announcement; DefaultNotifyTimeout when zero
	NotifyTimeout time.Duration

	// Repository dependencies
	SheetRepo sheetRepo.Repository

	// Service dependencies
	Clock    clock.Clock
	Notifier notifier.Notifier
	Logger   *zap.Logger
}

// HandleInput contains one decoded answer payload
type HandleInput struct {
	Payload *models.AnswerPayload
}

// HandleOutput contains the cells written for the answer
type HandleOutput struct {
	// Stage is the last stage reached; StageAcknowledged on success
	Stage Stage

	// SavedData describes the write
	SavedData *models.SavedData

	// RowCreated is true when the answer started a new session row
	RowCreated bool
}

// CountInput contains parameters for counting session rows
type CountInput struct{}

// CountOutput contains the number of session rows
type CountOutput struct {
	// Rows is the number of data rows, header excluded
	Rows int
}

// ExportInput contains parameters for exporting the table
type ExportInput struct{}

// ExportOutput contains the exported table
type ExportOutput struct {
	// CSV is the rendered table, header row first
	CSV []byte

	// Rows is the number of data rows, header excluded
	Rows int
}
