package discord

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/choicetrail/internal/services/aggregator"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	surveyCommandName = "survey"
	subcommandExport  = "export"
	subcommandCount   = "count"
	exportFileName    = "answers.csv"
	commandTimeout    = 10 * time.Second
)

// SurveyCommand handles the /survey command
type SurveyCommand struct {
	BaseCommand
	service aggregator.Service
	logger  *zap.Logger
}

// NewSurveyCommand creates a new survey command handler
func NewSurveyCommand(service aggregator.Service, logger *zap.Logger) *SurveyCommand {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SurveyCommand{
		BaseCommand: BaseCommand{
			Name:        surveyCommandName,
			Description: "Survey answer commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandExport,
					Description: "Download every answer as CSV",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandCount,
					Description: "Show how many player sessions were recorded",
				},
			},
		},
		service: service,
		logger:  logger,
	}
}

// Handle processes a Discord interaction for the survey command
func (c *SurveyCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return RespondWithError(s, i, "Please use a subcommand.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	switch options[0].Name {
	case subcommandExport:
		return c.handleExport(ctx, s, i)
	case subcommandCount:
		return c.handleCount(ctx, s, i)
	default:
		return RespondWithError(s, i, "Unknown subcommand.")
	}
}

func (c *SurveyCommand) handleExport(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.service.Export(ctx, &aggregator.ExportInput{})
	if err != nil {
		c.logger.Error("Failed to export answers", zap.Error(err))
		return RespondWithError(s, i, "Failed to read the answer table.")
	}

	return RespondWithFile(s, i, fmt.Sprintf("%d session rows", output.Rows), &discordgo.File{
		Name:        exportFileName,
		ContentType: "text/csv",
		Reader:      bytes.NewReader(output.CSV),
	})
}

func (c *SurveyCommand) handleCount(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.service.Count(ctx, &aggregator.CountInput{})
	if err != nil {
		c.logger.Error("Failed to count answers", zap.Error(err))
		return RespondWithError(s, i, "Failed to read the answer table.")
	}

	return RespondWithEmbed(s, i, "Survey answers", "", []*discordgo.MessageEmbedField{
		{
			Name:   "Session rows",
			Value:  strconv.Itoa(output.Rows),
			Inline: true,
		},
	})
}
