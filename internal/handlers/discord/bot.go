package discord

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/choicetrail/internal/services/aggregator"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Bot serves survey slash commands on Discord
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
	logger     *zap.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Aggregator service the commands read from
	AggregatorService aggregator.Service

	Logger *zap.Logger

	// Session is optional; one is created from Token when nil
	Session *discordgo.Session
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" && cfg.Session == nil {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.AggregatorService == nil {
		return nil, errors.New("aggregator service cannot be nil")
	}

	session := cfg.Session
	if session == nil {
		var err error
		session, err = discordgo.New("Bot " + cfg.Token)
		if err != nil {
			return nil, fmt.Errorf("failed to create Discord session: %w", err)
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
		logger:     logger,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	surveyCmd := NewSurveyCommand(b.config.AggregatorService, b.logger)
	if err := b.RegisterCommand(surveyCmd); err != nil {
		return fmt.Errorf("failed to register survey command: %w", err)
	}

	b.logger.Info("Discord bot is running")
	return nil
}

// Stop removes registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.applicationID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("Failed to delete command", zap.String("command", cmdName), zap.Error(err))
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord, for the configured guild
// when there is one and globally otherwise
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.applicationID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("Registered command",
		zap.String("command", cmd.GetName()),
		zap.String("id", createdCmd.ID),
		zap.String("guild", b.config.GuildID))

	return nil
}

func (b *Bot) applicationID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleInteraction dispatches slash commands to their handlers
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	h, ok := b.commands[name]
	if !ok {
		return
	}

	if err := h.Handle(s, i); err != nil {
		b.logger.Error("Error handling command", zap.String("command", name), zap.Error(err))
	}
}
