package sheet

import (
	"errors"
	"strconv"
)

var (
	// ErrSheetNotFound is returned when a sheet has not been created
	ErrSheetNotFound = errors.New("sheet not found")

	// ErrCorruptSheet is returned when a registered sheet has lost its row
	// counter; appending to it would overwrite the header row
	ErrCorruptSheet = errors.New("sheet has no row counter")

	// ErrRowNotFound is returned when a row is past the last row of a sheet
	ErrRowNotFound = errors.New("row not found")

	// ErrInvalidRange is returned for non-positive rows or columns
	ErrInvalidRange = errors.New("invalid range")

	errNilInput   = errors.New("input cannot be nil")
	errEmptySheet = errors.New("sheet name cannot be empty")
)

func validateRange(row, column int) error {
	if row < 1 || column < 1 {
		return ErrInvalidRange
	}
	return nil
}

// cellsFromColumns lays out a column->value map as a row slice ending at the
// last non-empty cell. Keys that are not positive integers are ignored.
func cellsFromColumns(values map[string]string) []string {
	columns := make(map[int]string, len(values))
	width := 0
	for key, value := range values {
		column, err := strconv.Atoi(key)
		if err != nil || column < 1 || value == "" {
			continue
		}
		columns[column] = value
		width = max(width, column)
	}

	cells := make([]string, width)
	for column, value := range columns {
		cells[column-1] = value
	}
	return cells
}
