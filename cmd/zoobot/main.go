package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/letsssgooo/zoobot/internal/bot"
	"github.com/letsssgooo/zoobot/internal/client"
	"github.com/letsssgooo/zoobot/internal/config"
	"github.com/letsssgooo/zoobot/internal/events/fetcher"
	"github.com/letsssgooo/zoobot/internal/events/sender"
	"github.com/letsssgooo/zoobot/internal/lib/slogcustom"
	"github.com/letsssgooo/zoobot/internal/notify"
	"github.com/letsssgooo/zoobot/internal/quiz"
	"github.com/letsssgooo/zoobot/internal/storage"
	"github.com/letsssgooo/zoobot/internal/storage/postgres"
	"github.com/letsssgooo/zoobot/internal/storage/redisstore"
)

func main() {
	log := setupLogger()
	slog.SetDefault(log)
	slog.Info("starting zoo bot...")

	flagToken := pflag.String("token", "", "token of telegram bot (overrides ZOOBOT_TOKEN)")
	flagBotUsername := pflag.String("bot-username", "", "username of the telegram bot (overrides ZOOBOT_USERNAME)")
	flagContent := pflag.String("content", "", "path to quiz content JSON; built-in content is used when empty")
	pflag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "err", err)
	}

	cfg := config.Load()

	if *flagToken != "" {
		cfg.Token = *flagToken
	}

	if *flagBotUsername != "" {
		cfg.BotUsername = *flagBotUsername
	}

	if cfg.Token == "" {
		slog.Error("telegram token is not set")
		os.Exit(1)
	}

	content, err := loadContent(*flagContent)
	if err != nil {
		slog.Error("failed to load quiz content", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := setupStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to set up storage", "storage", cfg.Storage, "err", err)
		os.Exit(1)
	}

	httpClient := client.NewHTTPClient(cfg.Token)
	engine := quiz.NewEngine(store, setupSink(cfg), content, cfg.BotUsername)

	b := bot.New(
		fetcher.NewTelegramFetcher(httpClient),
		sender.NewTelegramSender(httpClient),
		httpClient,
		engine,
	)

	if err = b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("bot stopped", "err", err)
		os.Exit(1)
	}

	slog.Info("shutting down")
}

func setupLogger() *slog.Logger {
	return slog.New(slogcustom.NewCustomHandler(os.Stdout, slog.LevelDebug))
}

func loadContent(path string) (*quiz.Content, error) {
	if path == "" {
		return quiz.DefaultContent(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return quiz.LoadContent(data)
}

func setupStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage {
	case "postgres":
		return postgres.NewStore(ctx, cfg.PostgresDSN)
	case "redis":
		store := redisstore.NewStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := store.Ping(ctx); err != nil {
			return nil, err
		}

		return store, nil
	}

	slog.Warn("using in-memory storage, progress is lost on restart")

	return storage.NewMemoryStore(), nil
}

func setupSink(cfg *config.Config) notify.Sink {
	if cfg.SMTP.Host == "" {
		slog.Warn("smtp is not configured, notifications go to the log")
		return notify.NewLogSink()
	}

	return notify.NewMailSink(notify.MailConfig{
		Host:           cfg.SMTP.Host,
		Port:           cfg.SMTP.Port,
		Username:       cfg.SMTP.Username,
		Password:       cfg.SMTP.Password,
		From:           cfg.SMTP.From,
		StaffEmails:    cfg.SMTP.StaffEmails,
		FeedbackEmails: cfg.SMTP.FeedbackEmails,
	})
}
