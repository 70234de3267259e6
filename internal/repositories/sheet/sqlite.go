package sheet

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/choicetrail/internal/models"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS sheets (
	name     TEXT PRIMARY KEY,
	last_row INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS cells (
	sheet TEXT    NOT NULL,
	row   INTEGER NOT NULL,
	col   INTEGER NOT NULL,
	value TEXT    NOT NULL,
	PRIMARY KEY (sheet, row, col)
);
CREATE TABLE IF NOT EXISTS styles (
	sheet TEXT    NOT NULL,
	row   INTEGER NOT NULL,
	col   INTEGER NOT NULL,
	style TEXT    NOT NULL,
	PRIMARY KEY (sheet, row, col)
);`

// SQLiteConfig holds configuration for the SQLite sheet repository
type SQLiteConfig struct {
	// DB is an open handle using the "sqlite" driver
	DB *sql.DB
}

// sqliteRepository implements the Repository interface on a single SQLite file
type sqliteRepository struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if needed) a SQLite database file
func OpenSQLite(path string) (*sql.DB, error) {
	if path == "" {
		return nil, errors.New("sqlite path cannot be empty")
	}

	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// One writer at a time keeps SQLite away from SQLITE_BUSY under load
	db.SetMaxOpenConns(1)
	return db, nil
}

// NewSQLite creates a SQLite-backed sheet repository and applies its schema
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("sqlite db cannot be nil")
	}

	if _, err := cfg.DB.ExecContext(context.Background(), sqliteSchema); err != nil {
		return nil, fmt.Errorf("failed to apply sqlite schema: %w", err)
	}

	return &sqliteRepository{
		db: cfg.DB,
	}, nil
}

// EnsureSheet registers the sheet and inserts any missing header cell in one
// transaction. Existing cells are left alone.
func (r *sqliteRepository) EnsureSheet(ctx context.Context, input *EnsureSheetInput) (*EnsureSheetOutput, error) {
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

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO sheets (name, last_row) VALUES (?, 1)`, input.Sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to register sheet: %w", err)
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to register sheet: %w", err)
	}

	// Row 1 always belongs to the headers
	if _, err := tx.ExecContext(ctx, `UPDATE sheets SET last_row = 1 WHERE name = ? AND last_row < 1`, input.Sheet); err != nil {
		return nil, fmt.Errorf("failed to reserve header row: %w", err)
	}

	for i, header := range input.Headers {
		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO cells (sheet, row, col, value) VALUES (?, 1, ?, ?)`, input.Sheet, i+1, header); err != nil {
			return nil, fmt.Errorf("failed to write header %s1: %w", models.ColumnLetter(i+1), err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO styles (sheet, row, col, style) VALUES (?, 1, ?, ?)`, input.Sheet, i+1, string(styleJSON)); err != nil {
			return nil, fmt.Errorf("failed to style header: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	return &EnsureSheetOutput{Created: inserted == 1}, nil
}

// GetDataRange reads every cell of the sheet ordered by position
func (r *sqliteRepository) GetDataRange(ctx context.Context, input *GetDataRangeInput) (*GetDataRangeOutput, error) {
	if input == nil {
		return nil, errNilInput
	}
	if input.Sheet == "" {
		return nil, errEmptySheet
	}

	lastRow, err := r.lastRow(ctx, r.db, input.Sheet)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT row, col, value FROM cells WHERE sheet = ? AND row <= ?`, input.Sheet, lastRow)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	defer rows.Close()

	byRow := make([]map[string]string, lastRow)
	for rows.Next() {
		var row, col int
		var value string
		if err := rows.Scan(&row, &col, &value); err != nil {
			return nil, fmt.Errorf("failed to scan cell: %w", err)
		}
		if byRow[row-1] == nil {
			byRow[row-1] = make(map[string]string)
		}
		byRow[row-1][strconv.Itoa(col)] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	output := make([][]string, 0, lastRow)
	for _, values := range byRow {
		output = append(output, cellsFromColumns(values))
	}

	return &GetDataRangeOutput{
		Rows: output,
	}, nil
}

// GetLastRow reads the row counter without touching any cell
func (r *sqliteRepository) GetLastRow(ctx context.Context, input *GetLastRowInput) (*GetLastRowOutput, error) {
	if input == nil {
		return nil, errNilInput
	}
	if input.Sheet == "" {
		return nil, errEmptySheet
	}

	lastRow, err := r.lastRow(ctx, r.db, input.Sheet)
	if err != nil {
		return nil, err
	}

	return &GetLastRowOutput{
		LastRow: lastRow,
	}, nil
}

// GetRow reads a single row
func (r *sqliteRepository) GetRow(ctx context.Context, input *GetRowInput) (*GetRowOutput, error) {
	if input == nil {
		return nil, errNilInput
	}
	if input.Sheet == "" {
		return nil, errEmptySheet
	}
	if err := validateRange(input.Row, 1); err != nil {
		return nil, err
	}

	lastRow, err := r.lastRow(ctx, r.db, input.Sheet)
	if err != nil {
		return nil, err
	}
	if input.Row > lastRow {
		return nil, ErrRowNotFound
	}

	rows, err := r.db.QueryContext(ctx, `SELECT col, value FROM cells WHERE sheet = ? AND row = ?`, input.Sheet, input.Row)
	if err != nil {
		return nil, fmt.Errorf("failed to read row %d: %w", input.Row, err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var col int
		var value string
		if err := rows.Scan(&col, &value); err != nil {
			return nil, fmt.Errorf("failed to scan cell: %w", err)
		}
		values[strconv.Itoa(col)] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row %d: %w", input.Row, err)
	}

	return &GetRowOutput{
		Cells: cellsFromColumns(values),
	}, nil
}

// SetValues overwrites cells of an existing row; empty values remove the cell
func (r *sqliteRepository) SetValues(ctx context.Context, input *SetValuesInput) error {
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

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	lastRow, err := r.lastRow(ctx, tx, input.Sheet)
	if err != nil {
		return err
	}
	if input.Row > lastRow {
		return ErrRowNotFound
	}

	if err := upsertCells(ctx, tx, input.Sheet, input.Row, input.Column, input.Values); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to set values in row %d: %w", input.Row, err)
	}
	return nil
}

// AppendRow bumps the row counter and writes the values in one transaction
func (r *sqliteRepository) AppendRow(ctx context.Context, input *AppendRowInput) (*AppendRowOutput, error) {
	if input == nil {
		return nil, errNilInput
	}
	if input.Sheet == "" {
		return nil, errEmptySheet
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var row int
	err = tx.QueryRowContext(ctx, `UPDATE sheets SET last_row = last_row + 1 WHERE name = ? AND last_row >= 1 RETURNING last_row`, input.Sheet).Scan(&row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, err := r.lastRow(ctx, tx, input.Sheet); err != nil {
				return nil, err
			}
			return nil, ErrCorruptSheet
		}
		return nil, fmt.Errorf("failed to allocate row: %w", err)
	}

	if err := upsertCells(ctx, tx, input.Sheet, row, 1, input.Values); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to write row %d: %w", row, err)
	}

	return &AppendRowOutput{
		Row: row,
	}, nil
}

const upsertStyleSQL = `INSERT INTO styles (sheet, row, col, style) VALUES (?, ?, ?, ?)
ON CONFLICT (sheet, row, col) DO UPDATE SET style = excluded.style`

// SetStyle stores the style of each cell in the range
func (r *sqliteRepository) SetStyle(ctx context.Context, input *SetStyleInput) error {
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

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i := 0; i < input.NumColumns; i++ {
		if _, err := tx.ExecContext(ctx, upsertStyleSQL, input.Sheet, input.Row, input.Column+i, string(styleJSON)); err != nil {
			return fmt.Errorf("failed to set style in row %d: %w", input.Row, err)
		}
	}

	return tx.Commit()
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *sqliteRepository) lastRow(ctx context.Context, q queryer, sheet string) (int, error) {
	var lastRow int
	err := q.QueryRowContext(ctx, `SELECT last_row FROM sheets WHERE name = ?`, sheet).Scan(&lastRow)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrSheetNotFound
		}
		return 0, fmt.Errorf("failed to get last row: %w", err)
	}
	if lastRow < 1 {
		return 0, ErrCorruptSheet
	}
	return lastRow, nil
}

func upsertCells(ctx context.Context, tx *sql.Tx, sheet string, row, column int, values []string) error {
	for i, value := range values {
		col := column + i
		var err error
		if value == "" {
			_, err = tx.ExecContext(ctx, `DELETE FROM cells WHERE sheet = ? AND row = ? AND col = ?`, sheet, row, col)
		} else {
			_, err = tx.ExecContext(ctx, `INSERT INTO cells (sheet, row, col, value) VALUES (?, ?, ?, ?)
ON CONFLICT (sheet, row, col) DO UPDATE SET value = excluded.value`, sheet, row, col, value)
		}
		if err != nil {
			return fmt.Errorf("failed to write cell %s%d: %w", models.ColumnLetter(col), row, err)
		}
	}
	return nil
}
