package sheet

import (
	"context"
	"sync"

	"github.com/KirkDiggler/choicetrail/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
)

const testSheet = "Game Answers"

// repositoryTestSuite holds behaviour shared by every backend. Backend suites
// embed it and set repo and registerBare in their SetupTest.
type repositoryTestSuite struct {
	suite.Suite
	repo Repository
	ctx  context.Context

	// registerBare marks a sheet as existing without a row counter or
	// header cells, the state a half-finished creation leaves behind
	registerBare func(sheet string)
}

func (s *repositoryTestSuite) ensureSheet() {
	out, err := s.repo.EnsureSheet(s.ctx, &EnsureSheetInput{
		Sheet:       testSheet,
		Headers:     models.FixedHeaders,
		HeaderStyle: models.HeaderStyle,
	})
	s.Require().NoError(err)
	s.Require().True(out.Created)
}

func (s *repositoryTestSuite) TestEnsureSheetCreatesHeaderRowOnce() {
	s.ensureSheet()

	// Second call must not rewrite anything
	out, err := s.repo.EnsureSheet(s.ctx, &EnsureSheetInput{
		Sheet:   testSheet,
		Headers: []string{"Other"},
	})
	s.Require().NoError(err)
	s.False(out.Created)

	data, err := s.repo.GetDataRange(s.ctx, &GetDataRangeInput{Sheet: testSheet})
	s.Require().NoError(err)
	s.Require().Len(data.Rows, 1)
	s.Equal([]string{"Timestamp", "Name", "Phone Number"}, data.Rows[0])
}

func (s *repositoryTestSuite) TestAppendRowAllocatesConsecutiveRows() {
	s.ensureSheet()

	first, err := s.repo.AppendRow(s.ctx, &AppendRowInput{
		Sheet:  testSheet,
		Values: []string{"2025-04-05T10:00:00Z", "Budi", "0812"},
	})
	s.Require().NoError(err)
	s.Equal(2, first.Row)

	second, err := s.repo.AppendRow(s.ctx, &AppendRowInput{
		Sheet:  testSheet,
		Values: []string{"2025-04-05T11:00:00Z", "Sari", ""},
	})
	s.Require().NoError(err)
	s.Equal(3, second.Row)

	data, err := s.repo.GetDataRange(s.ctx, &GetDataRangeInput{Sheet: testSheet})
	s.Require().NoError(err)

	expected := [][]string{
		{"Timestamp", "Name", "Phone Number"},
		{"2025-04-05T10:00:00Z", "Budi", "0812"},
		{"2025-04-05T11:00:00Z", "Sari"},
	}
	if diff := cmp.Diff(expected, data.Rows); diff != "" {
		s.Failf("unexpected sheet contents", "(-want +got):\n%s", diff)
	}
}

func (s *repositoryTestSuite) TestAppendRowConcurrentlyNeverReusesARow() {
	s.ensureSheet()

	const writers = 8
	rows := make(chan int, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := s.repo.AppendRow(s.ctx, &AppendRowInput{
				Sheet:  testSheet,
				Values: []string{"ts", "Budi"},
			})
			if err == nil {
				rows <- out.Row
			}
		}()
	}
	wg.Wait()
	close(rows)

	seen := make(map[int]bool)
	for row := range rows {
		s.False(seen[row], "row %d allocated twice", row)
		seen[row] = true
	}
	s.Len(seen, writers)
}

func (s *repositoryTestSuite) TestSetValuesOverwritesAndClears() {
	s.ensureSheet()
	appended, err := s.repo.AppendRow(s.ctx, &AppendRowInput{
		Sheet:  testSheet,
		Values: []string{"ts", "Budi", ""},
	})
	s.Require().NoError(err)

	err = s.repo.SetValues(s.ctx, &SetValuesInput{
		Sheet:  testSheet,
		Row:    appended.Row,
		Column: models.QuestionColumn(2),
		Values: []string{"Kenapa?", "Karena dekat"},
	})
	s.Require().NoError(err)

	row, err := s.repo.GetRow(s.ctx, &GetRowInput{Sheet: testSheet, Row: appended.Row})
	s.Require().NoError(err)
	s.Equal([]string{"ts", "Budi", "", "", "", "Kenapa?", "Karena dekat"}, row.Cells)

	// Clearing the last cells shrinks the row width
	err = s.repo.SetValues(s.ctx, &SetValuesInput{
		Sheet:  testSheet,
		Row:    appended.Row,
		Column: models.QuestionColumn(2),
		Values: []string{"", ""},
	})
	s.Require().NoError(err)

	row, err = s.repo.GetRow(s.ctx, &GetRowInput{Sheet: testSheet, Row: appended.Row})
	s.Require().NoError(err)
	s.Equal([]string{"ts", "Budi"}, row.Cells)
}

func (s *repositoryTestSuite) TestSetValuesRejectsUnknownRow() {
	s.ensureSheet()

	err := s.repo.SetValues(s.ctx, &SetValuesInput{
		Sheet:  testSheet,
		Row:    5,
		Column: 1,
		Values: []string{"x"},
	})
	s.ErrorIs(err, ErrRowNotFound)
}

func (s *repositoryTestSuite) TestSetValuesRejectsInvalidRange() {
	s.ensureSheet()

	err := s.repo.SetValues(s.ctx, &SetValuesInput{
		Sheet:  testSheet,
		Row:    1,
		Column: 0,
		Values: []string{"x"},
	})
	s.ErrorIs(err, ErrInvalidRange)
}

func (s *repositoryTestSuite) TestMissingSheet() {
	_, err := s.repo.GetDataRange(s.ctx, &GetDataRangeInput{Sheet: "nope"})
	s.ErrorIs(err, ErrSheetNotFound)

	_, err = s.repo.AppendRow(s.ctx, &AppendRowInput{Sheet: "nope", Values: []string{"x"}})
	s.ErrorIs(err, ErrSheetNotFound)

	_, err = s.repo.GetRow(s.ctx, &GetRowInput{Sheet: "nope", Row: 1})
	s.ErrorIs(err, ErrSheetNotFound)
}

func (s *repositoryTestSuite) TestGetRowPastLastRow() {
	s.ensureSheet()

	_, err := s.repo.GetRow(s.ctx, &GetRowInput{Sheet: testSheet, Row: 2})
	s.ErrorIs(err, ErrRowNotFound)
}

func (s *repositoryTestSuite) TestSetStyleValidatesRange() {
	s.ensureSheet()

	err := s.repo.SetStyle(s.ctx, &SetStyleInput{
		Sheet:      testSheet,
		Row:        1,
		Column:     4,
		NumColumns: 0,
		Style:      models.HeaderStyle,
	})
	s.ErrorIs(err, ErrInvalidRange)

	err = s.repo.SetStyle(s.ctx, &SetStyleInput{
		Sheet:      testSheet,
		Row:        1,
		Column:     4,
		NumColumns: 2,
		Style:      models.HeaderStyle,
	})
	s.NoError(err)
}

func (s *repositoryTestSuite) TestNilAndEmptyInputs() {
	_, err := s.repo.EnsureSheet(s.ctx, nil)
	s.Error(err)

	_, err = s.repo.EnsureSheet(s.ctx, &EnsureSheetInput{})
	s.Error(err)

	s.Error(s.repo.SetValues(s.ctx, nil))
	s.Error(s.repo.SetStyle(s.ctx, nil))

	_, err = s.repo.AppendRow(s.ctx, &AppendRowInput{})
	s.Error(err)
}

func (s *repositoryTestSuite) TestBareSheetNeverAppendsIntoHeaderRow() {
	s.registerBare(testSheet)

	_, err := s.repo.AppendRow(s.ctx, &AppendRowInput{Sheet: testSheet, Values: []string{"ts", "Budi"}})
	s.ErrorIs(err, ErrCorruptSheet)

	_, err = s.repo.GetDataRange(s.ctx, &GetDataRangeInput{Sheet: testSheet})
	s.ErrorIs(err, ErrCorruptSheet)
}

func (s *repositoryTestSuite) TestEnsureSheetCompletesBareSheet() {
	s.registerBare(testSheet)

	out, err := s.repo.EnsureSheet(s.ctx, &EnsureSheetInput{
		Sheet:       testSheet,
		Headers:     models.FixedHeaders,
		HeaderStyle: models.HeaderStyle,
	})
	s.Require().NoError(err)
	s.False(out.Created)

	appended, err := s.repo.AppendRow(s.ctx, &AppendRowInput{Sheet: testSheet, Values: []string{"ts", "Budi"}})
	s.Require().NoError(err)
	s.Equal(2, appended.Row)

	data, err := s.repo.GetDataRange(s.ctx, &GetDataRangeInput{Sheet: testSheet})
	s.Require().NoError(err)
	expected := [][]string{
		{"Timestamp", "Name", "Phone Number"},
		{"ts", "Budi"},
	}
	if diff := cmp.Diff(expected, data.Rows); diff != "" {
		s.Failf("unexpected sheet contents", "(-want +got):\n%s", diff)
	}
}

func (s *repositoryTestSuite) TestEnsureSheetRestoresOnlyMissingHeaders() {
	s.ensureSheet()
	s.Require().NoError(s.repo.SetValues(s.ctx, &SetValuesInput{
		Sheet:  testSheet,
		Row:    1,
		Column: 3,
		Values: []string{""},
	}))

	_, err := s.repo.EnsureSheet(s.ctx, &EnsureSheetInput{
		Sheet:   testSheet,
		Headers: []string{"Other", "Other", "Phone Number"},
	})
	s.Require().NoError(err)

	row, err := s.repo.GetRow(s.ctx, &GetRowInput{Sheet: testSheet, Row: 1})
	s.Require().NoError(err)
	s.Equal([]string{"Timestamp", "Name", "Phone Number"}, row.Cells)
}

func (s *repositoryTestSuite) TestGetLastRow() {
	_, err := s.repo.GetLastRow(s.ctx, &GetLastRowInput{Sheet: testSheet})
	s.ErrorIs(err, ErrSheetNotFound)

	s.ensureSheet()
	out, err := s.repo.GetLastRow(s.ctx, &GetLastRowInput{Sheet: testSheet})
	s.Require().NoError(err)
	s.Equal(1, out.LastRow)

	_, err = s.repo.AppendRow(s.ctx, &AppendRowInput{Sheet: testSheet, Values: []string{"ts"}})
	s.Require().NoError(err)
	out, err = s.repo.GetLastRow(s.ctx, &GetLastRowInput{Sheet: testSheet})
	s.Require().NoError(err)
	s.Equal(2, out.LastRow)
}
