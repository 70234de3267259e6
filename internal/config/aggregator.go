package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Aggregator configures the aggregator service from the environment
type Aggregator struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
	SheetName  string `env:"SHEET_NAME" envDefault:"Game Answers"`

	// TimeZone decides which calendar day an answer belongs to
	TimeZone string `env:"TIME_ZONE" envDefault:"Local"`
	MaxSlots int    `env:"MAX_SLOTS" envDefault:"200"`

	// Store selects the table backend: redis or sqlite
	Store         string `env:"STORE" envDefault:"redis"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"choicetrail.db"`

	// Discord announcements are enabled when both webhook fields are set
	DiscordWebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	DiscordWebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
	DiscordUsername     string `env:"DISCORD_USERNAME"`

	// The /survey bot runs when a bot token is set
	DiscordBotToken      string `env:"DISCORD_BOT_TOKEN"`
	DiscordApplicationID string `env:"DISCORD_APPLICATION_ID"`
	DiscordGuildID       string `env:"DISCORD_GUILD_ID"`

	Debug bool `env:"DEBUG"`
}

// LoadAggregator reads the optional env files and then the environment.
// Variables already set in the environment win over the files.
func LoadAggregator(envFiles ...string) (*Aggregator, error) {
	for _, file := range envFiles {
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	cfg := &Aggregator{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values env tags cannot express
func (c *Aggregator) Validate() error {
	switch c.Store {
	case StoreRedis, StoreSQLite:
	default:
		return fmt.Errorf("unknown store %q, expected %s or %s", c.Store, StoreRedis, StoreSQLite)
	}

	if c.MaxSlots < 1 {
		return fmt.Errorf("max slots must be positive, got %d", c.MaxSlots)
	}

	if c.SheetName == "" {
		return errors.New("sheet name cannot be empty")
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

// Location resolves TimeZone
func (c *Aggregator) Location() (*time.Location, error) {
	location, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", c.TimeZone, err)
	}
	return location, nil
}

// NotifierEnabled reports whether Discord announcements are configured
func (c *Aggregator) NotifierEnabled() bool {
	return c.DiscordWebhookID != "" && c.DiscordWebhookToken != ""
}

// BotEnabled reports whether the Discord survey bot should run
func (c *Aggregator) BotEnabled() bool {
	return c.DiscordBotToken != ""
}
