package sheet

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/choicetrail/internal/repositories/sheet Repository

import (
	"context"
)

// Repository is a row-oriented table addressed spreadsheet style: rows and
// columns are 1-based and row 1 holds the headers.
type Repository interface {
	// EnsureSheet creates the sheet with its header row if it does not exist
	EnsureSheet(ctx context.Context, input *EnsureSheetInput) (*EnsureSheetOutput, error)

	// GetDataRange returns every row of the sheet, header row first
	GetDataRange(ctx context.Context, input *GetDataRangeInput) (*GetDataRangeOutput, error)

	// GetLastRow returns the number of the last row without reading cells
	GetLastRow(ctx context.Context, input *GetLastRowInput) (*GetLastRowOutput, error)

	// GetRow returns the cells of a single row
	GetRow(ctx context.Context, input *GetRowInput) (*GetRowOutput, error)

	// SetValues overwrites consecutive cells of one row starting at a column
	SetValues(ctx context.Context, input *SetValuesInput) error

	// AppendRow writes values into a new row below the last one
	AppendRow(ctx context.Context, input *AppendRowInput) (*AppendRowOutput, error)

	// SetStyle applies a style to consecutive cells of one row
	SetStyle(ctx context.Context, input *SetStyleInput) error
}
