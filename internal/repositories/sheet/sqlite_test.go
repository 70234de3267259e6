package sheet

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/choicetrail/internal/models"
	"github.com/stretchr/testify/suite"
)

type SQLiteRepositoryTestSuite struct {
	repositoryTestSuite
	db *sql.DB
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	db, err := OpenSQLite(filepath.Join(s.T().TempDir(), "answers.db"))
	s.Require().NoError(err)
	s.db = db

	repo, err := NewSQLite(&SQLiteConfig{DB: db})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
	s.registerBare = func(sheet string) {
		_, err := s.db.Exec(`INSERT INTO sheets (name, last_row) VALUES (?, 0)`, sheet)
		s.Require().NoError(err)
	}
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	s.db.Close()
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) TestNewSQLiteValidatesConfig() {
	_, err := NewSQLite(nil)
	s.Error(err)

	_, err = NewSQLite(&SQLiteConfig{})
	s.Error(err)

	_, err = OpenSQLite("")
	s.Error(err)
}

func (s *SQLiteRepositoryTestSuite) TestHeaderStyleIsStored() {
	s.ensureSheet()

	var raw string
	err := s.db.QueryRow(`SELECT style FROM styles WHERE sheet = ? AND row = 1 AND col = 2`, testSheet).Scan(&raw)
	s.Require().NoError(err)

	var style models.CellStyle
	s.Require().NoError(json.Unmarshal([]byte(raw), &style))
	s.Equal(models.HeaderStyle, style)
}

func (s *SQLiteRepositoryTestSuite) TestSchemaIsReapplicable() {
	s.ensureSheet()

	// Opening a second repository on the same file keeps existing data
	repo, err := NewSQLite(&SQLiteConfig{DB: s.db})
	s.Require().NoError(err)

	data, err := repo.GetDataRange(s.ctx, &GetDataRangeInput{Sheet: testSheet})
	s.Require().NoError(err)
	s.Len(data.Rows, 1)
}
