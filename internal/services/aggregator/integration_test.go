package aggregator

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/choicetrail/internal/common/clock/mocks"
	"github.com/KirkDiggler/choicetrail/internal/models"
	sheetRepo "github.com/KirkDiggler/choicetrail/internal/repositories/sheet"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AggregatorRedisTestSuite runs the service against a real sheet store
type AggregatorRedisTestSuite struct {
	suite.Suite
	miniRedis   *miniredis.Miniredis
	redisClient *redis.Client
	mockCtrl    *gomock.Controller
	mockClock   *clockMocks.MockClock
	repo        sheetRepo.Repository
	service     *service
	ctx         context.Context
	now         time.Time
}

func (s *AggregatorRedisTestSuite) SetupTest() {
	var err error
	s.miniRedis, err = miniredis.Run()
	s.Require().NoError(err)

	s.redisClient = redis.NewClient(&redis.Options{
		Addr: s.miniRedis.Addr(),
	})

	s.repo, err = sheetRepo.NewRedis(&sheetRepo.Config{
		RedisClient: s.redisClient,
	})
	s.Require().NoError(err)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.now = time.Date(2025, 4, 19, 9, 30, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	s.service, err = New(&Config{
		SheetRepo: s.repo,
		Clock:     s.mockClock,
		Location:  time.UTC,
	})
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *AggregatorRedisTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.redisClient.Close()
	s.miniRedis.Close()
}

func TestAggregatorRedisTestSuite(t *testing.T) {
	suite.Run(t, new(AggregatorRedisTestSuite))
}

func (s *AggregatorRedisTestSuite) handle(payload *models.AnswerPayload) *HandleOutput {
	output, err := s.service.Handle(s.ctx, &HandleInput{Payload: payload})
	s.Require().NoError(err)
	return output
}

func (s *AggregatorRedisTestSuite) rows() [][]string {
	data, err := s.repo.GetDataRange(s.ctx, &sheetRepo.GetDataRangeInput{Sheet: DefaultSheetName})
	s.Require().NoError(err)
	return data.Rows
}

func (s *AggregatorRedisTestSuite) TestFirstAnswersOfTheDay() {
	first := s.handle(&models.AnswerPayload{
		PlayerName:  "Budi",
		PhoneNumber: "08123456789",
		Scene:       "intro",
		Question:    "Question 1",
		Answer:      "Laki-laki",
	})
	s.True(first.RowCreated)
	s.Equal(2, first.SavedData.Row)
	s.Equal(1, first.SavedData.QuestionNumber)

	s.now = s.now.Add(3 * time.Minute)
	second := s.handle(&models.AnswerPayload{
		PlayerName:  "Budi",
		PhoneNumber: "08123456789",
		Scene:       "school",
		Question:    "Kenapa pilih sekolah ini?",
		Answer:      "Dekat rumah",
	})
	s.False(second.RowCreated)
	s.Equal(2, second.SavedData.Row)
	s.Equal(2, second.SavedData.QuestionNumber)

	expected := [][]string{
		{"Timestamp", "Name", "Phone Number", "Question 1", "Answer 1", "Question 2", "Answer 2"},
		{"2025-04-19T09:30:00.000Z", "Budi", "08123456789", "Question 1", "Laki-laki", "Kenapa pilih sekolah ini?", "Dekat rumah"},
	}
	if diff := cmp.Diff(expected, s.rows()); diff != "" {
		s.Failf("unexpected sheet", "(-want +got):\n%s", diff)
	}
}

func (s *AggregatorRedisTestSuite) TestUnlabelledQuestionsGrowMonotonically() {
	for i, question := range []string{"Warna favorit?", "Hobi?", "Cita-cita?", "Makanan favorit?"} {
		output := s.handle(&models.AnswerPayload{PlayerName: "Sari", Question: question, Answer: "ya"})
		s.Equal(i+1, output.SavedData.QuestionNumber)
	}

	header := s.rows()[0]
	s.Len(header, models.AnswerColumn(4))
	s.Equal("Answer 4", header[len(header)-1])
}

func (s *AggregatorRedisTestSuite) TestRepeatedSlotOverwrites() {
	s.handle(&models.AnswerPayload{PlayerName: "Budi", Question: "Question 1", Answer: "Laki-laki"})
	s.handle(&models.AnswerPayload{PlayerName: "Budi", Question: "Question 1", Answer: "Perempuan"})

	rows := s.rows()
	s.Len(rows, 2)
	s.Len(rows[0], models.AnswerColumn(1))
	s.Equal("Perempuan", rows[1][models.AnswerColumn(1)-1])
}

func (s *AggregatorRedisTestSuite) TestExplicitSlotLeavesGaps() {
	output := s.handle(&models.AnswerPayload{PlayerName: "Budi", Question: "Question 3", Answer: "C"})
	s.Equal(3, output.SavedData.QuestionNumber)

	rows := s.rows()
	s.Equal([]string{
		"Timestamp", "Name", "Phone Number",
		"Question 1", "Answer 1", "Question 2", "Answer 2", "Question 3", "Answer 3",
	}, rows[0])
	s.Equal("", rows[1][models.QuestionColumn(1)-1])
	s.Equal("Question 3", rows[1][models.QuestionColumn(3)-1])

	// The unlabelled follow-up counts filled cells, so it lands on slot 2
	next := s.handle(&models.AnswerPayload{PlayerName: "Budi", Question: "Apa hobimu?", Answer: "Bola"})
	s.Equal(2, next.SavedData.QuestionNumber)
}

func (s *AggregatorRedisTestSuite) TestEnsureHeadersIsIdempotent() {
	_, err := s.repo.EnsureSheet(s.ctx, &sheetRepo.EnsureSheetInput{
		Sheet:       DefaultSheetName,
		Headers:     models.FixedHeaders,
		HeaderStyle: models.HeaderStyle,
	})
	s.Require().NoError(err)

	written, err := s.service.ensureHeaders(s.ctx, 3)
	s.Require().NoError(err)
	s.True(written)
	before := s.rows()[0]

	written, err = s.service.ensureHeaders(s.ctx, 3)
	s.Require().NoError(err)
	s.False(written)
	s.Equal(before, s.rows()[0])

	written, err = s.service.ensureHeaders(s.ctx, 2)
	s.Require().NoError(err)
	s.False(written)
}

func (s *AggregatorRedisTestSuite) TestNewDayStartsNewRow() {
	first := s.handle(&models.AnswerPayload{PlayerName: "Budi", Question: "Question 1", Answer: "A"})

	s.now = s.now.Add(24 * time.Hour)
	second := s.handle(&models.AnswerPayload{PlayerName: "Budi", Question: "Question 1", Answer: "B"})

	s.True(second.RowCreated)
	s.Equal(first.SavedData.Row+1, second.SavedData.Row)
	s.Len(s.rows(), 3)
}

func (s *AggregatorRedisTestSuite) TestSameNameSharesRow() {
	s.handle(&models.AnswerPayload{PlayerName: "Budi", PhoneNumber: "0811", Question: "Question 1", Answer: "A"})
	output := s.handle(&models.AnswerPayload{PlayerName: "Budi", PhoneNumber: "0822", Question: "Question 2", Answer: "B"})

	s.False(output.RowCreated)
	rows := s.rows()
	s.Len(rows, 2)
	s.Equal("0811", rows[1][models.ColumnPhone-1])
}

func (s *AggregatorRedisTestSuite) TestExportAfterAnswers() {
	s.handle(&models.AnswerPayload{PlayerName: "Budi", Question: "Question 2", Answer: "Dekat, rumah"})
	s.handle(&models.AnswerPayload{PlayerName: "Sari", Question: "Question 1", Answer: "Ya"})

	output, err := s.service.Export(s.ctx, &ExportInput{})
	s.Require().NoError(err)
	s.Equal(2, output.Rows)

	expected := "Timestamp,Name,Phone Number,Question 1,Answer 1,Question 2,Answer 2\n" +
		"2025-04-19T09:30:00.000Z,Budi,,,,Question 2,\"Dekat, rumah\"\n" +
		"2025-04-19T09:30:00.000Z,Sari,,Question 1,Ya,,\n"
	s.Equal(expected, string(output.CSV))
}

func (s *AggregatorRedisTestSuite) TestSheetRegisteredWithoutHeadersKeepsHeaderRow() {
	_, err := s.miniRedis.SAdd("sheets", DefaultSheetName)
	s.Require().NoError(err)

	output := s.handle(&models.AnswerPayload{PlayerName: "Budi", Question: "Question 1", Answer: "Laki-laki"})
	s.Equal(2, output.SavedData.Row)

	rows := s.rows()
	s.Require().Len(rows, 2)
	s.Equal([]string{"Timestamp", "Name", "Phone Number", "Question 1", "Answer 1"}, rows[0])
	s.Equal("Budi", rows[1][models.ColumnName-1])
}

func (s *AggregatorRedisTestSuite) TestCountFollowsAppends() {
	count, err := s.service.Count(s.ctx, &CountInput{})
	s.Require().NoError(err)
	s.Equal(0, count.Rows)

	s.handle(&models.AnswerPayload{PlayerName: "Budi", Question: "Question 1", Answer: "A"})
	s.handle(&models.AnswerPayload{PlayerName: "Sari", Question: "Question 1", Answer: "B"})
	s.handle(&models.AnswerPayload{PlayerName: "Budi", Question: "Question 2", Answer: "C"})

	count, err = s.service.Count(s.ctx, &CountInput{})
	s.Require().NoError(err)
	s.Equal(2, count.Rows)
}
