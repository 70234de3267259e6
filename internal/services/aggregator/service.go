package aggregator

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/choicetrail/internal/common/clock"
	"github.com/KirkDiggler/choicetrail/internal/models"
	sheetRepo "github.com/KirkDiggler/choicetrail/internal/repositories/sheet"
	"github.com/KirkDiggler/choicetrail/internal/services/notifier"
	"go.uber.org/zap"
)

var questionNumberPattern = regexp.MustCompile(`(?i)question\s*(\d+)`)

// HandleError reports the last stage an answer completed before failing
type HandleError struct {
	Stage Stage
	Err   error
}

func (e *HandleError) Error() string {
	return fmt.Sprintf("failed after %s: %v", e.Stage, e.Err)
}

func (e *HandleError) Unwrap() error {
	return e.Err
}

// service implements the Service interface
type service struct {
	sheetName     string
	location      *time.Location
	maxSlots      int
	notifyTimeout time.Duration

	sheetRepo sheetRepo.Repository
	clock     clock.Clock
	notifier  notifier.Notifier
	logger    *zap.Logger
}

// New creates a new aggregator service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SheetRepo == nil {
		return nil, ErrNilSheetRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	sheetName := cfg.SheetName
	if sheetName == "" {
		sheetName = DefaultSheetName
	}

	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	maxSlots := cfg.MaxSlots
	if maxSlots <= 0 {
		maxSlots = DefaultMaxSlots
	}

	notifyTimeout := cfg.NotifyTimeout
	if notifyTimeout <= 0 {
		notifyTimeout = DefaultNotifyTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		sheetName:     sheetName,
		location:      location,
		maxSlots:      maxSlots,
		notifyTimeout: notifyTimeout,
		sheetRepo:     cfg.SheetRepo,
		clock:         cfg.Clock,
		notifier:      cfg.Notifier,
		logger:        logger,
	}, nil
}

// Handle upserts one answer into its player's row for the day. Nothing is
// rolled back on failure: a row or header created before the failing step
// stays, which is harmless because every step is additive or idempotent.
func (s *service) Handle(ctx context.Context, input *HandleInput) (*HandleOutput, error) {
	if input == nil || input.Payload == nil {
		return nil, &HandleError{Stage: StageReceived, Err: ErrNoPayload}
	}

	playerName := firstNonEmpty(input.Payload.PlayerName, input.Payload.Name, defaultPlayerName)
	phoneNumber := input.Payload.PhoneNumber
	question := firstNonEmpty(input.Payload.Question, defaultQuestion)
	answer := firstNonEmpty(input.Payload.Answer, defaultAnswer)
	now := s.clock.Now()

	if _, err := s.sheetRepo.EnsureSheet(ctx, &sheetRepo.EnsureSheetInput{
		Sheet:       s.sheetName,
		Headers:     models.FixedHeaders,
		HeaderStyle: models.HeaderStyle,
	}); err != nil {
		return nil, &HandleError{Stage: StageReceived, Err: err}
	}

	row, created, err := s.findOrCreateRow(ctx, playerName, phoneNumber, now)
	if err != nil {
		return nil, &HandleError{Stage: StageReceived, Err: err}
	}
	if created {
		s.announce(ctx, playerName, row, now)
	}

	slot, err := s.resolveQuestionSlot(ctx, question, row)
	if err != nil {
		return nil, &HandleError{Stage: StageRowResolved, Err: err}
	}

	if _, err := s.ensureHeaders(ctx, slot); err != nil {
		return nil, &HandleError{Stage: StageSlotResolved, Err: err}
	}

	if err := s.writeAnswer(ctx, row, slot, question, answer); err != nil {
		return nil, &HandleError{Stage: StageHeadersEnsured, Err: err}
	}

	return &HandleOutput{
		Stage:      StageAcknowledged,
		RowCreated: created,
		SavedData: &models.SavedData{
			Timestamp:      now.UTC().Format(models.TimestampLayout),
			Name:           playerName,
			PhoneNumber:    phoneNumber,
			QuestionNumber: slot,
			Question:       question,
			Answer:         answer,
			Row:            row,
		},
	}, nil
}

// findOrCreateRow returns the row of playerName for the calendar day of now,
// appending one when none exists. The name is the only join key: two players
// sharing a name on the same day share a row.
func (s *service) findOrCreateRow(ctx context.Context, playerName, phoneNumber string, now time.Time) (int, bool, error) {
	data, err := s.sheetRepo.GetDataRange(ctx, &sheetRepo.GetDataRangeInput{
		Sheet: s.sheetName,
	})
	if err != nil {
		return 0, false, fmt.Errorf("failed to read sheet: %w", err)
	}

	today := s.day(now)
	for i := models.HeaderRow; i < len(data.Rows); i++ {
		cells := data.Rows[i]
		if cell(cells, models.ColumnName) != playerName {
			continue
		}

		createdAt, err := time.Parse(time.RFC3339, cell(cells, models.ColumnTimestamp))
		if err != nil {
			continue
		}
		if s.day(createdAt) == today {
			return i + 1, false, nil
		}
	}

	out, err := s.sheetRepo.AppendRow(ctx, &sheetRepo.AppendRowInput{
		Sheet:  s.sheetName,
		Values: []string{now.UTC().Format(models.TimestampLayout), playerName, phoneNumber},
	})
	if err != nil {
		return 0, false, fmt.Errorf("failed to append row: %w", err)
	}

	s.logger.Info("Created session row",
		zap.String("player", playerName),
		zap.Int("row", out.Row))

	return out.Row, true, nil
}

// resolveQuestionSlot takes the slot from a "question N" label when present,
// otherwise the slot after the row's filled question cells.
func (s *service) resolveQuestionSlot(ctx context.Context, question string, row int) (int, error) {
	if slot, ok := s.explicitSlot(question); ok {
		return slot, nil
	}

	out, err := s.sheetRepo.GetRow(ctx, &sheetRepo.GetRowInput{
		Sheet: s.sheetName,
		Row:   row,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to read row %d: %w", row, err)
	}

	return countFilledSlots(out.Cells) + 1, nil
}

func (s *service) explicitSlot(question string) (int, bool) {
	match := questionNumberPattern.FindStringSubmatch(question)
	if match == nil {
		return 0, false
	}

	slot, err := strconv.Atoi(match[1])
	if err != nil || slot < 1 || slot > s.maxSlots {
		return 0, false
	}
	return slot, true
}

// ensureHeaders widens the header row so it labels every slot up to slot.
// It reports whether anything was written.
func (s *service) ensureHeaders(ctx context.Context, slot int) (bool, error) {
	out, err := s.sheetRepo.GetRow(ctx, &sheetRepo.GetRowInput{
		Sheet: s.sheetName,
		Row:   models.HeaderRow,
	})
	if err != nil {
		return false, fmt.Errorf("failed to read headers: %w", err)
	}

	width := len(out.Cells)
	if width >= models.AnswerColumn(slot) {
		return false, nil
	}

	first := max((width-models.FixedColumns)/2+1, 1)
	headers := make([]string, 0, 2*(slot-first+1))
	for i := first; i <= slot; i++ {
		headers = append(headers, models.QuestionHeader(i), models.AnswerHeader(i))
	}

	column := models.QuestionColumn(first)
	if err := s.sheetRepo.SetValues(ctx, &sheetRepo.SetValuesInput{
		Sheet:  s.sheetName,
		Row:    models.HeaderRow,
		Column: column,
		Values: headers,
	}); err != nil {
		return false, fmt.Errorf("failed to write headers: %w", err)
	}

	if err := s.sheetRepo.SetStyle(ctx, &sheetRepo.SetStyleInput{
		Sheet:      s.sheetName,
		Row:        models.HeaderRow,
		Column:     column,
		NumColumns: len(headers),
		Style:      models.HeaderStyle,
	}); err != nil {
		return false, fmt.Errorf("failed to style headers: %w", err)
	}

	s.logger.Info("Added headers",
		zap.String("from", models.QuestionHeader(first)),
		zap.String("to", models.AnswerHeader(slot)))

	return true, nil
}

// writeAnswer overwrites the slot's question and answer cells. A slot keeps
// no history: answering it again replaces the previous text.
func (s *service) writeAnswer(ctx context.Context, row, slot int, question, answer string) error {
	column := models.QuestionColumn(slot)
	if err := s.sheetRepo.SetValues(ctx, &sheetRepo.SetValuesInput{
		Sheet:  s.sheetName,
		Row:    row,
		Column: column,
		Values: []string{question, answer},
	}); err != nil {
		return fmt.Errorf("failed to write answer: %w", err)
	}

	s.logger.Info("Updated row",
		zap.Int("row", row),
		zap.Int("slot", slot),
		zap.String("questionColumn", models.ColumnLetter(column)),
		zap.String("answerColumn", models.ColumnLetter(column+1)))

	return nil
}

// Count reads the row counter instead of the cells
func (s *service) Count(ctx context.Context, input *CountInput) (*CountOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	out, err := s.sheetRepo.GetLastRow(ctx, &sheetRepo.GetLastRowInput{
		Sheet: s.sheetName,
	})
	if err != nil {
		if errors.Is(err, sheetRepo.ErrSheetNotFound) {
			return &CountOutput{}, nil
		}
		return nil, fmt.Errorf("failed to count rows: %w", err)
	}

	return &CountOutput{
		Rows: max(out.LastRow-models.HeaderRow, 0),
	}, nil
}

// Export renders the table as CSV with every row padded to the header width
func (s *service) Export(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	data, err := s.sheetRepo.GetDataRange(ctx, &sheetRepo.GetDataRangeInput{
		Sheet: s.sheetName,
	})
	if err != nil {
		if errors.Is(err, sheetRepo.ErrSheetNotFound) {
			data = &sheetRepo.GetDataRangeOutput{Rows: [][]string{models.FixedHeaders}}
		} else {
			return nil, fmt.Errorf("failed to read sheet: %w", err)
		}
	}

	width := 0
	for _, row := range data.Rows {
		width = max(width, len(row))
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	for _, row := range data.Rows {
		record := make([]string, width)
		copy(record, row)
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}

	return &ExportOutput{
		CSV:  buf.Bytes(),
		Rows: max(len(data.Rows)-1, 0),
	}, nil
}

func (s *service) announce(ctx context.Context, playerName string, row int, now time.Time) {
	if s.notifier == nil {
		return
	}

	// The request context carries no deadline of its own
	ctx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()

	err := s.notifier.NotifySessionStarted(ctx, &notifier.NotifySessionStartedInput{
		Sheet:      s.sheetName,
		Row:        row,
		PlayerName: playerName,
		StartedAt:  now.In(s.location),
	})
	if err != nil {
		s.logger.Warn("Failed to announce session", zap.Int("row", row), zap.Error(err))
	}
}

func (s *service) day(t time.Time) string {
	return t.In(s.location).Format(time.DateOnly)
}

// countFilledSlots counts non-empty question cells
func countFilledSlots(cells []string) int {
	count := 0
	for column := models.QuestionColumn(1); column <= len(cells); column += 2 {
		if cells[column-1] != "" {
			count++
		}
	}
	return count
}

func cell(cells []string, column int) string {
	if column < 1 || column > len(cells) {
		return ""
	}
	return cells[column-1]
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
