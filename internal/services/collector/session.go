package collector

import (
	"context"
	"strings"
	"sync"
	"time"

	aggregatorClient "github.com/KirkDiggler/choicetrail/internal/clients/aggregator"
	"github.com/KirkDiggler/choicetrail/internal/common/clock"
	"github.com/KirkDiggler/choicetrail/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// session implements the Session interface
type session struct {
	id           string
	startedAt    time.Time
	client       aggregatorClient.Client
	clock        clock.Clock
	identity     IdentitySource
	logger       *zap.Logger
	capturePhone bool
	maxDepth     int

	// mu guards everything below and orders dispatch against Close
	mu        sync.Mutex
	admission *admission
	profile   models.Profile
	scene     string
	closed    bool
	sends     *errgroup.Group
}

func (s *session) ID() string {
	return s.id
}

func (s *session) Profile() models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

func (s *session) Scene() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scene
}

// Observe scans the record for recordAnswer payloads and admits the first
// one that passes. Profile and scene are refreshed on every record.
func (s *session) Observe(ctx context.Context, input *ObserveInput) (output *ObserveOutput) {
	defer s.recoverObservation(&output)

	if input == nil || input.Record == nil {
		return &ObserveOutput{Rejection: RejectionNoCandidate}
	}

	s.refreshProfile()

	if scene, ok := findScene(input.Record, s.maxDepth); ok {
		s.mu.Lock()
		if scene != s.scene {
			s.logger.Debug("Scene tracked", zap.String("scene", scene))
		}
		s.scene = scene
		s.mu.Unlock()
	}

	found := findCandidates(input.Record, s.maxDepth)
	if len(found) == 0 {
		return &ObserveOutput{Rejection: RejectionNoCandidate}
	}

	output = &ObserveOutput{}
	for _, f := range found {
		output = s.consider(ctx, f.candidate, f.path, true)
		if output.Answer != nil {
			break
		}
	}
	return output
}

// ObserveChoice admits an explicitly reported choice
func (s *session) ObserveChoice(ctx context.Context, input *ObserveChoiceInput) (output *ObserveOutput) {
	defer s.recoverObservation(&output)

	if input == nil {
		return &ObserveOutput{Rejection: RejectionNoCandidate}
	}

	s.refreshProfile()
	return s.consider(ctx, input.Candidate, nil, false)
}

// Close stops admitting answers and waits for sends already in flight
func (s *session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	s.closed = true
	s.mu.Unlock()

	err := s.sends.Wait()
	s.logger.Info("Session closed", zap.Duration("duration", s.clock.Now().Sub(s.startedAt)))
	return err
}

func (s *session) consider(ctx context.Context, candidate models.Candidate, path []string, checkPath bool) *ObserveOutput {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(candidate.Scene) == "" && s.scene != "" {
		candidate.Scene = s.scene
	}
	candidate = candidate.Normalize()

	output := &ObserveOutput{Path: joinPath(path)}
	if s.closed {
		output.Rejection = RejectionClosed
		return output
	}

	if rejection := s.admission.admit(candidate.DedupKey(), path, now, checkPath); rejection != RejectionNone {
		s.logger.Debug("Skipping candidate",
			zap.String("path", output.Path),
			zap.String("reason", string(rejection)),
			zap.String("question", candidate.Question))
		output.Rejection = rejection
		return output
	}

	answer := &models.Answer{
		PlayerName:  s.safeResolve(resolveName, models.AnonymousPlayer),
		PhoneNumber: s.phoneNumber(),
		Scene:       candidate.Scene,
		Question:    candidate.Question,
		Answer:      candidate.Answer,
		Timestamp:   now.UTC().Format(models.TimestampLayout),
	}
	output.Answer = answer

	s.logger.Info("Recording answer",
		zap.String("path", output.Path),
		zap.String("player", answer.PlayerName),
		zap.String("scene", answer.Scene),
		zap.String("question", answer.Question))

	sendCtx := context.WithoutCancel(ctx)
	if !s.sends.TryGo(func() error {
		s.send(sendCtx, answer)
		return nil
	}) {
		s.logger.Warn("Too many sends in flight, dropping answer",
			zap.String("question", answer.Question))
		output.Dropped = true
	}

	return output
}

// send delivers one answer; failures are logged only
func (s *session) send(ctx context.Context, answer *models.Answer) {
	out, err := s.client.SendAnswer(ctx, &aggregatorClient.SendAnswerInput{
		Answer: answer,
	})
	if err != nil {
		s.logger.Warn("Failed to send answer",
			zap.String("question", answer.Question),
			zap.Error(err))
		return
	}

	if out.Sent {
		s.logger.Info("Answer sent", zap.String("question", answer.Question))
	}
}

func (s *session) phoneNumber() string {
	if !s.capturePhone {
		return ""
	}
	return s.safeResolve(resolvePhone, "")
}

// safeResolve runs an identity lookup, falling back when the source panics
func (s *session) safeResolve(resolve func(IdentitySource) string, fallback string) (value string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("Identity lookup failed", zap.Any("panic", r))
			value = fallback
		}
	}()
	return resolve(s.identity)
}

// refreshProfile captures identity fields the first time they appear
func (s *session) refreshProfile() {
	if s.identity == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("Failed to update player info", zap.Any("panic", r))
		}
	}()

	vars := s.identity.Variables()

	s.mu.Lock()
	defer s.mu.Unlock()

	capture := func(field *string, label string, names ...string) {
		if *field != "" {
			return
		}
		if value := firstVariable(vars, names); value != "" {
			*field = value
			s.logger.Info("Captured player info", zap.String("field", label), zap.String("value", value))
		}
	}

	capture(&s.profile.Name, "name", nameVariables[0])
	if s.capturePhone {
		capture(&s.profile.PhoneNumber, "phoneNumber", phoneVariables[0])
	}
	capture(&s.profile.Gender, "gender", genderVariable)
	capture(&s.profile.Level, "level", levelVariable)
}

func (s *session) recoverObservation(output **ObserveOutput) {
	if r := recover(); r != nil {
		s.logger.Warn("Recovered while observing record", zap.Any("panic", r))
		*output = &ObserveOutput{Rejection: RejectionFailed}
	}
}
