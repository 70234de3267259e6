package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/choicetrail/internal/common/clock"
	"github.com/KirkDiggler/choicetrail/internal/config"
	"github.com/KirkDiggler/choicetrail/internal/handlers/api"
	"github.com/KirkDiggler/choicetrail/internal/handlers/discord"
	"github.com/KirkDiggler/choicetrail/internal/repositories/sheet"
	"github.com/KirkDiggler/choicetrail/internal/services/aggregator"
	"github.com/KirkDiggler/choicetrail/internal/services/notifier"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadAggregator(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := config.NewLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	sheetRepo, closeStore, err := openStore(cfg)
	if err != nil {
		logger.Fatal("Failed to open sheet store", zap.String("store", cfg.Store), zap.Error(err))
	}
	defer closeStore()

	var announcer notifier.Notifier
	if cfg.NotifierEnabled() {
		announcer, err = notifier.NewDiscord(&notifier.DiscordConfig{
			WebhookID:    cfg.DiscordWebhookID,
			WebhookToken: cfg.DiscordWebhookToken,
			Username:     cfg.DiscordUsername,
		})
		if err != nil {
			logger.Fatal("Failed to create Discord notifier", zap.Error(err))
		}
	}

	location, err := cfg.Location()
	if err != nil {
		logger.Fatal("Failed to resolve time zone", zap.Error(err))
	}

	aggregatorSvc, err := aggregator.New(&aggregator.Config{
		SheetName: cfg.SheetName,
		Location:  location,
		MaxSlots:  cfg.MaxSlots,
		SheetRepo: sheetRepo,
		Clock:     clock.New(),
		Notifier:  announcer,
		Logger:    logger.Named("aggregator"),
	})
	if err != nil {
		logger.Fatal("Failed to create aggregator service", zap.Error(err))
	}

	server, err := api.New(&api.Config{
		Service: aggregatorSvc,
		Clock:   clock.New(),
		Logger:  logger.Named("http"),
	})
	if err != nil {
		logger.Fatal("Failed to create HTTP server", zap.Error(err))
	}

	go func() {
		if err := server.Start(cfg.ListenAddr); err != nil {
			logger.Fatal("HTTP server stopped", zap.Error(err))
		}
	}()

	var bot *discord.Bot
	if cfg.BotEnabled() {
		bot, err = discord.New(&discord.Config{
			Token:             cfg.DiscordBotToken,
			ApplicationID:     cfg.DiscordApplicationID,
			GuildID:           cfg.DiscordGuildID,
			AggregatorService: aggregatorSvc,
			Logger:            logger.Named("discord"),
		})
		if err != nil {
			logger.Fatal("Failed to create Discord bot", zap.Error(err))
		}
		if err := bot.Start(); err != nil {
			logger.Fatal("Failed to start Discord bot", zap.Error(err))
		}
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if bot != nil {
		if err := bot.Stop(); err != nil {
			logger.Error("Error stopping Discord bot", zap.Error(err))
		}
	}

	if err := server.Stop(ctx); err != nil {
		logger.Error("Error stopping server", zap.Error(err))
	}

	logger.Info("Aggregator has been shut down")
}

// openStore connects the configured table backend
func openStore(cfg *config.Aggregator) (sheet.Repository, func(), error) {
	switch cfg.Store {
	case config.StoreSQLite:
		db, err := sheet.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		repo, err := sheet.NewSQLite(&sheet.SQLiteConfig{DB: db})
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return repo, func() { db.Close() }, nil

	default:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		repo, err := sheet.NewRedis(&sheet.Config{RedisClient: redisClient})
		if err != nil {
			redisClient.Close()
			return nil, nil, err
		}
		return repo, func() { redisClient.Close() }, nil
	}
}
