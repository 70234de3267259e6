package sheet

import "github.com/KirkDiggler/choicetrail/internal/models"

// EnsureSheetInput contains parameters for creating a sheet on demand
type EnsureSheetInput struct {
	// Sheet is the sheet name
	Sheet string

	// Headers are written into row 1 when the sheet is created
	Headers []string

	// HeaderStyle is applied to the header cells when the sheet is created
	HeaderStyle models.CellStyle
}

// EnsureSheetOutput contains the result of ensuring a sheet
type EnsureSheetOutput struct {
	// Created is true when this call created the sheet
	Created bool
}

// GetDataRangeInput contains parameters for reading a whole sheet
type GetDataRangeInput struct {
	Sheet string
}

// GetDataRangeOutput contains every row of a sheet
type GetDataRangeOutput struct {
	// Rows holds row 1 at index 0. Each row is as wide as its last
	// non-empty cell.
	Rows [][]string
}

// GetLastRowInput contains parameters for reading the row count
type GetLastRowInput struct {
	Sheet string
}

// GetLastRowOutput contains the number of the last row, header included
type GetLastRowOutput struct {
	LastRow int
}

// GetRowInput contains parameters for reading one row
type GetRowInput struct {
	Sheet string
	Row   int
}

// GetRowOutput contains the cells of one row
type GetRowOutput struct {
	// Cells holds column 1 at index 0, up to the last non-empty cell
	Cells []string
}

// SetValuesInput contains parameters for writing cells
type SetValuesInput struct {
	Sheet  string
	Row    int
	Column int

	// Values are written into Column, Column+1, ...; an empty value clears the cell
	Values []string
}

// AppendRowInput contains parameters for appending a row
type AppendRowInput struct {
	Sheet  string
	Values []string
}

// AppendRowOutput contains the result of appending a row
type AppendRowOutput struct {
	// Row is the number of the new row
	Row int
}

// SetStyleInput contains parameters for styling cells
type SetStyleInput struct {
	Sheet      string
	Row        int
	Column     int
	NumColumns int
	Style      models.CellStyle
}
