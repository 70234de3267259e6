package sheet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	// Key layout for Redis
	sheetsKey      = "sheets"
	sheetKeyPrefix = "sheet:"
	lastRowSuffix  = ":last_row"
	rowKeyInfix    = ":row:"
	styleKeyInfix  = ":style:"
)

// Config holds configuration for the Redis sheet repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis. Each row
// is a hash of column number to cell value; the row counter is a plain
// integer key so appends allocate row numbers atomically with INCR.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed sheet repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func lastRowKey(sheet string) string {
	return sheetKeyPrefix + sheet + lastRowSuffix
}

func rowKey(sheet string, row int) string {
	return fmt.Sprintf("%s%s%s%d", sheetKeyPrefix, sheet, rowKeyInfix, row)
}

func styleKey(sheet string, row int) string {
	return fmt.Sprintf("%s%s%s%d", sheetKeyPrefix, sheet, styleKeyInfix, row)
}

// EnsureSheet registers the sheet, its row counter and any missing header
// cell in one MULTI. Existing cells are left alone, so calling it again
// completes a sheet whose headers are missing.
func (r *redisRepository) EnsureSheet(ctx context.Context, input *EnsureSheetInput) (*EnsureSheetOutput, error) {
	if input == nil {
		return nil, errNilInput
	}
	if input.Sheet == "" {
		return nil, errEmptySheet
	}

	styleJSON, err := json.Marshal(input.HeaderStyle)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal header style: %w", err)
	}

	pipe := r.client.TxPipeline()
	added := pipe.SAdd(ctx, sheetsKey, input.Sheet)
	pipe.SetNX(ctx, lastRowKey(input.Sheet), 1, 0)
	for i, header := range input.Headers {
		column := strconv.Itoa(i + 1)
		pipe.HSetNX(ctx, rowKey(input.Sheet, 1), column, header)
		pipe.HSetNX(ctx, styleKey(input.Sheet, 1), column, string(styleJSON))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	return &EnsureSheetOutput{Created: added.Val() == 1}, nil
}

// GetDataRange reads every row of the sheet in one pipeline
func (r *redisRepository) GetDataRange(ctx context.Context, input *GetDataRangeInput) (*GetDataRangeOutput, error) {
	if input == nil {
		return nil, errNilInput
	}
	if input.Sheet == "" {
		return nil, errEmptySheet
	}

	lastRow, err := r.lastRow(ctx, input.Sheet)
	if err != nil {
		return nil, err
	}

	pipe := r.client.Pipeline()
	rowCommands := make([]*redis.MapStringStringCmd, lastRow)
	for row := 1; row <= lastRow; row++ {
		rowCommands[row-1] = pipe.HGetAll(ctx, rowKey(input.Sheet, row))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	rows := make([][]string, 0, lastRow)
	for _, cmd := range rowCommands {
		values, err := cmd.Result()
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		rows = append(rows, cellsFromColumns(values))
	}

	return &GetDataRangeOutput{
		Rows: rows,
	}, nil
}

// GetLastRow reads the row counter without touching any row
func (r *redisRepository) GetLastRow(ctx context.Context, input *GetLastRowInput) (*GetLastRowOutput, error) {
	if input == nil {
		return nil, errNilInput
	}
	if input.Sheet == "" {
		return nil, errEmptySheet
	}

	lastRow, err := r.lastRow(ctx, input.Sheet)
	if err != nil {
		return nil, err
	}

	return &GetLastRowOutput{
		LastRow: lastRow,
	}, nil
}

// GetRow reads a single row
func (r *redisRepository) GetRow(ctx context.Context, input *GetRowInput) (*GetRowOutput, error) {
	if input == nil {
		return nil, errNilInput
	}
	if input.Sheet == "" {
		return nil, errEmptySheet
	}
	if err := validateRange(input.Row, 1); err != nil {
		return nil, err
	}

	lastRow, err := r.lastRow(ctx, input.Sheet)
	if err != nil {
		return nil, err
	}
	if input.Row > lastRow {
		return nil, ErrRowNotFound
	}

	values, err := r.client.HGetAll(ctx, rowKey(input.Sheet, input.Row)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read row %d: %w", input.Row, err)
	}

	return &GetRowOutput{
		Cells: cellsFromColumns(values),
	}, nil
}

// SetValues overwrites cells of an existing row; empty values remove the cell
func (r *redisRepository) SetValues(ctx context.Context, input *SetValuesInput) error {
	if input == nil {
		return errNilInput
	}
	if input.Sheet == "" {
		return errEmptySheet
	}
	if err := validateRange(input.Row, input.Column); err != nil {
		return err
	}
	if len(input.Values) == 0 {
		return nil
	}

	lastRow, err := r.lastRow(ctx, input.Sheet)
	if err != nil {
		return err
	}
	if input.Row > lastRow {
		return ErrRowNotFound
	}

	pipe := r.client.TxPipeline()
	r.queueCells(ctx, pipe, rowKey(input.Sheet, input.Row), input.Column, input.Values)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set values in row %d: %w", input.Row, err)
	}

	return nil
}

const (
	allocateMissingSheet   = -1
	allocateMissingCounter = -2
)

// allocateRowScript increments the row counter only when the sheet is
// registered and its counter exists. INCR on a missing counter would hand
// out row 1, the header row.
var allocateRowScript = redis.NewScript(`
if redis.call('SISMEMBER', KEYS[1], ARGV[1]) == 0 then
	return -1
end
if redis.call('EXISTS', KEYS[2]) == 0 then
	return -2
end
return redis.call('INCR', KEYS[2])
`)

// AppendRow allocates the next row number and writes the values
func (r *redisRepository) AppendRow(ctx context.Context, input *AppendRowInput) (*AppendRowOutput, error) {
	if input == nil {
		return nil, errNilInput
	}
	if input.Sheet == "" {
		return nil, errEmptySheet
	}

	row64, err := allocateRowScript.Run(ctx, r.client,
		[]string{sheetsKey, lastRowKey(input.Sheet)}, input.Sheet).Int64()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate row: %w", err)
	}
	switch row64 {
	case allocateMissingSheet:
		return nil, ErrSheetNotFound
	case allocateMissingCounter:
		return nil, ErrCorruptSheet
	}
	row := int(row64)

	if len(input.Values) > 0 {
		pipe := r.client.TxPipeline()
		r.queueCells(ctx, pipe, rowKey(input.Sheet, row), 1, input.Values)
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", row, err)
		}
	}

	return &AppendRowOutput{
		Row: row,
	}, nil
}

// SetStyle stores the style of each cell in the range
func (r *redisRepository) SetStyle(ctx context.Context, input *SetStyleInput) error {
	if input == nil {
		return errNilInput
	}
	if input.Sheet == "" {
		return errEmptySheet
	}
	if err := validateRange(input.Row, input.Column); err != nil {
		return err
	}
	if input.NumColumns < 1 {
		return ErrInvalidRange
	}

	styleJSON, err := json.Marshal(input.Style)
	if err != nil {
		return fmt.Errorf("failed to marshal style: %w", err)
	}

	styles := make(map[string]any, input.NumColumns)
	for i := 0; i < input.NumColumns; i++ {
		styles[strconv.Itoa(input.Column+i)] = string(styleJSON)
	}

	if err := r.client.HSet(ctx, styleKey(input.Sheet, input.Row), styles).Err(); err != nil {
		return fmt.Errorf("failed to set style in row %d: %w", input.Row, err)
	}

	return nil
}

func (r *redisRepository) queueCells(ctx context.Context, pipe redis.Pipeliner, key string, column int, values []string) {
	set := make(map[string]any, len(values))
	var clear []string
	for i, value := range values {
		field := strconv.Itoa(column + i)
		if value == "" {
			clear = append(clear, field)
			continue
		}
		set[field] = value
	}
	if len(set) > 0 {
		pipe.HSet(ctx, key, set)
	}
	if len(clear) > 0 {
		pipe.HDel(ctx, key, clear...)
	}
}

func (r *redisRepository) requireSheet(ctx context.Context, sheet string) error {
	exists, err := r.client.SIsMember(ctx, sheetsKey, sheet).Result()
	if err != nil {
		return fmt.Errorf("failed to look up sheet: %w", err)
	}
	if !exists {
		return ErrSheetNotFound
	}
	return nil
}

func (r *redisRepository) lastRow(ctx context.Context, sheet string) (int, error) {
	if err := r.requireSheet(ctx, sheet); err != nil {
		return 0, err
	}

	lastRow, err := r.client.Get(ctx, lastRowKey(sheet)).Int()
	if err != nil {
		if err == redis.Nil {
			return 0, ErrCorruptSheet
		}
		return 0, fmt.Errorf("failed to get last row: %w", err)
	}
	return lastRow, nil
}
