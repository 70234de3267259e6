package models

import "fmt"

// Fixed columns of the answers table (1-based, spreadsheet style)
const (
	ColumnTimestamp = 1
	ColumnName      = 2
	ColumnPhone     = 3

	// FixedColumns is the number of columns before the first slot pair
	FixedColumns = 3

	// HeaderRow is the row holding column labels
	HeaderRow = 1
)

// FixedHeaders are the labels written when the table is created
var FixedHeaders = []string{"Timestamp", "Name", "Phone Number"}

// CellStyle is the presentation applied to a range of cells
type CellStyle struct {
	Bold       bool   `json:"bold"`
	Background string `json:"background,omitempty"`
	FontColor  string `json:"fontColor,omitempty"`
}

// HeaderStyle is applied to every header cell
var HeaderStyle = CellStyle{
	Bold:       true,
	Background: "#4285f4",
	FontColor:  "white",
}

// QuestionColumn returns the column holding the question text of a slot
func QuestionColumn(slot int) int {
	return FixedColumns + 2*(slot-1) + 1
}

// AnswerColumn returns the column holding the answer text of a slot
func AnswerColumn(slot int) int {
	return QuestionColumn(slot) + 1
}

// QuestionHeader is the header label of a slot's question column
func QuestionHeader(slot int) string {
	return fmt.Sprintf("Question %d", slot)
}

// AnswerHeader is the header label of a slot's answer column
func AnswerHeader(slot int) string {
	return fmt.Sprintf("Answer %d", slot)
}

// ColumnLetter converts a 1-based column number to its A1 notation letters
func ColumnLetter(column int) string {
	letters := ""
	for column > 0 {
		column--
		letters = string(rune('A'+column%26)) + letters
		column /= 26
	}
	return letters
}
