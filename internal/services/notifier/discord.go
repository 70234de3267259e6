package notifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

const defaultUsername = "Survey Tracker"

// DiscordConfig holds the configuration for the Discord webhook notifier
type DiscordConfig struct {
	// WebhookID and WebhookToken identify the channel webhook
	WebhookID    string
	WebhookToken string

	// Username overrides the webhook's display name
	Username string

	// Session is optional; a token-less session is created when nil
	Session *discordgo.Session
}

// discordNotifier posts announcements through a Discord channel webhook
type discordNotifier struct {
	session      *discordgo.Session
	webhookID    string
	webhookToken string
	username     string
}

// NewDiscord creates a notifier that posts to a Discord webhook
func NewDiscord(cfg *DiscordConfig) (*discordNotifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.WebhookID == "" || cfg.WebhookToken == "" {
		return nil, errors.New("webhook ID and token are required")
	}

	session := cfg.Session
	if session == nil {
		// Webhook execution is authorised by the webhook token, not a bot token
		var err error
		session, err = discordgo.New("")
		if err != nil {
			return nil, fmt.Errorf("failed to create Discord session: %w", err)
		}
	}

	username := cfg.Username
	if username == "" {
		username = defaultUsername
	}

	return &discordNotifier{
		session:      session,
		webhookID:    cfg.WebhookID,
		webhookToken: cfg.WebhookToken,
		username:     username,
	}, nil
}

// NotifySessionStarted posts a short message naming the player and row
func (n *discordNotifier) NotifySessionStarted(ctx context.Context, input *NotifySessionStartedInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	_, err := n.session.WebhookExecute(n.webhookID, n.webhookToken, false, &discordgo.WebhookParams{
		Username: n.username,
		Content:  renderSessionStarted(input),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to execute webhook: %w", err)
	}

	return nil
}

func renderSessionStarted(input *NotifySessionStartedInput) string {
	return fmt.Sprintf("📋 **%s** started answering (%s, row %d) at %s",
		input.PlayerName, input.Sheet, input.Row, input.StartedAt.Format(time.Kitchen))
}
