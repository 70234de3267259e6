package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/choicetrail/internal/common/clock"
	"github.com/KirkDiggler/choicetrail/internal/models"
	"github.com/KirkDiggler/choicetrail/internal/services/aggregator"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	healthStatus  = "Web app is running"
	healthMessage = "Send POST requests with game data"
	savedMessage  = "Data saved successfully"
)

// Server exposes the aggregator over HTTP
type Server struct {
	app     *fiber.App
	service aggregator.Service
	clock   clock.Clock
	logger  *zap.Logger
}

// Config holds the configuration for the HTTP server
type Config struct {
	Service aggregator.Service
	Clock   clock.Clock
	Logger  *zap.Logger

	// BodyLimit caps request bodies in bytes; fiber's default applies when zero
	BodyLimit int
}

// New creates the server and registers its routes
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Service == nil {
		return nil, errors.New("aggregator service cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		service: cfg.Service,
		clock:   cfg.Clock,
		logger:  logger,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "choicetrail-aggregator",
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	s.app.Get("/", s.health)
	s.app.Post("/", s.saveAnswer)
	s.app.Get("/export.csv", s.export)

	return s, nil
}

// App returns the underlying fiber app
func (s *Server) App() *fiber.App {
	return s.app
}

// Start listens on addr until Stop is called
func (s *Server) Start(addr string) error {
	s.logger.Info("Aggregator listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

// Stop drains open requests
func (s *Server) Stop(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(models.HealthStatus{
		Status:    healthStatus,
		Message:   healthMessage,
		Timestamp: s.clock.Now().UTC().Format(models.TimestampLayout),
	})
}

func (s *Server) saveAnswer(c *fiber.Ctx) error {
	input := &aggregator.HandleInput{}

	if body := c.Body(); len(body) > 0 {
		payload := &models.AnswerPayload{}
		if err := json.Unmarshal(body, payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.SaveResponse{
				Error: fmt.Sprintf("invalid JSON body: %v", err),
			})
		}
		input.Payload = payload
	}

	output, err := s.service.Handle(c.UserContext(), input)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, aggregator.ErrNoPayload) {
			status = fiber.StatusBadRequest
		}

		s.logger.Error("Failed to save answer", zap.Error(err))
		return c.Status(status).JSON(models.SaveResponse{
			Error: errorMessage(err),
		})
	}

	return c.JSON(models.SaveResponse{
		Success:   true,
		Message:   savedMessage,
		SavedData: output.SavedData,
	})
}

func (s *Server) export(c *fiber.Ctx) error {
	output, err := s.service.Export(c.UserContext(), &aggregator.ExportInput{})
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="answers.csv"`)
	return c.Send(output.CSV)
}

// handleError renders errors that escape a route, including fiber's own
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
	}

	if status >= fiber.StatusInternalServerError {
		s.logger.Error("Request failed", zap.String("path", c.Path()), zap.Error(err))
	}

	return c.Status(status).JSON(models.SaveResponse{
		Error: err.Error(),
	})
}

// errorMessage reports the cause without the stage prefix
func errorMessage(err error) string {
	var handleErr *aggregator.HandleError
	if errors.As(err, &handleErr) {
		return handleErr.Err.Error()
	}
	return err.Error()
}
