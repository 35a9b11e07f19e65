package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vocabtracker/internal/config"
	"vocabtracker/internal/handler"
	"vocabtracker/internal/repository/postgres"
	"vocabtracker/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting vocabulary tracker bot")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := postgres.Connect(cfg.DSN(), postgres.DefaultConnectOptions(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	if err := postgres.Migrate(db, cfg.MigrationsSource, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Repositories
	memberRepo := postgres.NewMemberRepo(db)
	kvRepo := postgres.NewKVRepo(db)

	// Services; the word list is read exactly once, here
	authService := service.NewAuthService(memberRepo, cfg.BotPassword)
	wordService, err := service.NewWordService(kvRepo, service.WordOptions{
		Key:            cfg.Words.StorageKey,
		PageSize:       cfg.Words.PageSize,
		ExportFileName: cfg.Words.ExportFileName,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to load word list", zap.Error(err))
	}

	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("Unhandled bot error", zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	h := handler.NewHandler(bot, authService, wordService, logger)
	h.RegisterHandlers()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Bot started", zap.Int("words", wordService.Count()))
		bot.Start()
	}()

	<-ctx.Done()

	logger.Info("Shutdown signal received, stopping bot...")
	bot.Stop()
	logger.Info("Bot stopped gracefully")
}
