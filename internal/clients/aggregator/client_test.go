package aggregator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/KirkDiggler/choicetrail/internal/models"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	status   int
	requests atomic.Int32
	received *models.Answer
	ctx      context.Context
}

func (s *ClientTestSuite) SetupTest() {
	s.status = http.StatusOK
	s.requests.Store(0)
	s.received = nil
	s.ctx = context.Background()

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		w.Header().Set("Content-Type", "application/json")

		if r.Method == http.MethodGet {
			_ = json.NewEncoder(w).Encode(models.HealthStatus{
				Status:    "OK",
				Message:   "Aggregator is running",
				Timestamp: "2025-04-19T09:30:00.000Z",
			})
			return
		}

		s.Equal("application/json", r.Header.Get("Content-Type"))
		answer := &models.Answer{}
		s.NoError(json.NewDecoder(r.Body).Decode(answer))
		s.received = answer

		w.WriteHeader(s.status)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) newClient(endpoint string) *client {
	c, err := New(&Config{Endpoint: endpoint, Timeout: 2 * time.Second})
	s.Require().NoError(err)
	return c
}

func (s *ClientTestSuite) testAnswer() *models.Answer {
	return &models.Answer{
		PlayerName:  "Budi",
		PhoneNumber: "08123456789",
		Scene:       "intro",
		Question:    "Question 1",
		Answer:      "Laki-laki",
		Timestamp:   "2025-04-19T09:30:00.000Z",
	}
}

func (s *ClientTestSuite) TestNewRequiresConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	c, err := New(&Config{})
	s.Require().NoError(err)
	s.Equal(DefaultTimeout, c.timeout)
	s.False(c.configured)
}

func (s *ClientTestSuite) TestIsConfigured() {
	s.False(IsConfigured(""))
	s.False(IsConfigured("   "))
	s.False(IsConfigured("https://script.google.com/macros/s/YOUR_WEB_APP_URL_HERE/exec"))
	s.True(IsConfigured(s.server.URL))
}

func (s *ClientTestSuite) TestSendAnswerPostsJSON() {
	output, err := s.newClient(s.server.URL).SendAnswer(s.ctx, &SendAnswerInput{Answer: s.testAnswer()})
	s.Require().NoError(err)
	s.True(output.Sent)
	s.Equal(http.StatusOK, output.StatusCode)
	s.Equal(s.testAnswer(), s.received)
}

func (s *ClientTestSuite) TestSendAnswerNotConfiguredOnlyLogs() {
	for _, endpoint := range []string{"", PlaceholderEndpoint} {
		output, err := s.newClient(endpoint).SendAnswer(s.ctx, &SendAnswerInput{Answer: s.testAnswer()})
		s.Require().NoError(err)
		s.False(output.Sent)
	}
	s.Equal(int32(0), s.requests.Load())
}

func (s *ClientTestSuite) TestSendAnswerRejectsNil() {
	_, err := s.newClient(s.server.URL).SendAnswer(s.ctx, &SendAnswerInput{})
	s.Equal(ErrNilAnswer, err)

	_, err = s.newClient(s.server.URL).SendAnswer(s.ctx, nil)
	s.Equal(ErrNilAnswer, err)
}

func (s *ClientTestSuite) TestSendAnswerReportsErrorStatus() {
	s.status = http.StatusInternalServerError

	_, err := s.newClient(s.server.URL).SendAnswer(s.ctx, &SendAnswerInput{Answer: s.testAnswer()})
	s.ErrorIs(err, ErrUnexpectedStatus)
}

func (s *ClientTestSuite) TestSendAnswerReportsTransportFailure() {
	url := s.server.URL
	s.server.Close()

	_, err := s.newClient(url).SendAnswer(s.ctx, &SendAnswerInput{Answer: s.testAnswer()})
	s.Error(err)
}

func (s *ClientTestSuite) TestSendAnswerHonoursCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.newClient(s.server.URL).SendAnswer(ctx, &SendAnswerInput{Answer: s.testAnswer()})
	s.ErrorIs(err, context.Canceled)
	s.Equal(int32(0), s.requests.Load())
}

func (s *ClientTestSuite) TestPing() {
	output, err := s.newClient(s.server.URL).Ping(s.ctx, &PingInput{})
	s.Require().NoError(err)
	s.Equal(http.StatusOK, output.StatusCode)
	s.Equal("OK", output.Health.Status)

	_, err = s.newClient("").Ping(s.ctx, &PingInput{})
	s.Equal(ErrNotConfigured, err)
}
