package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/lexicon-bot/internal/config"
	"github.com/aliskhannn/lexicon-bot/internal/delivery/telegram"
	"github.com/aliskhannn/lexicon-bot/internal/delivery/widgethttp"
	"github.com/aliskhannn/lexicon-bot/internal/infra/postgres"
	"github.com/aliskhannn/lexicon-bot/internal/infra/sqlite"
	"github.com/aliskhannn/lexicon-bot/internal/logger"
	"github.com/aliskhannn/lexicon-bot/internal/repository"
	"github.com/aliskhannn/lexicon-bot/internal/service"
	"github.com/aliskhannn/lexicon-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	if err := run(cfg, lg); err != nil {
		lg.Fatal("bot stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer closeStore()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return fmt.Errorf("create telegram bot: %w", err)
	}
	bot.Debug = cfg.Env != "production"
	lg.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(telegram.Commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	// Initialize repositories and services.
	sampler := service.NewSampler(rand.NewSource(time.Now().UnixNano()))

	catalog := repository.NewCatalogRepository(cfg.CatalogPath, lg)
	vocab := repository.NewVocabularyRepository(store, lg)
	hidden := repository.NewHiddenWordRepository(store, lg)

	explore := service.NewExploreService(catalog, hidden, lg)
	quiz := service.NewQuizService(sampler)
	controller := service.NewSessionController(vocab, explore, quiz, sampler, lg)
	controller.Start(ctx)

	widget := service.NewWidgetService(store, sampler, cfg.Widget.Schedule, cfg.Widget.RefreshInterval, lg)
	widget.SetNotifier(telegram.NewWidgetNotifier(bot, cfg.OwnerChatID, storage.NewMessageStorage(), lg))

	handler := telegram.NewHandler(bot, lg, cfg.OwnerChatID, controller, storage.NewSessionStorage())

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return ignoreCanceled(handler.Run(ctx))
	})
	g.Go(func() error {
		return widget.Start(ctx)
	})

	if cfg.HTTP.Addr != "" {
		srv := widgethttp.NewServer(widgethttp.Config{
			Addr:           cfg.HTTP.Addr,
			RateLimitRPS:   cfg.HTTP.RateLimitRPS,
			RateLimitBurst: cfg.HTTP.RateLimitBurst,
			Production:     cfg.Env == "production",
		}, widget, lg)

		g.Go(func() error {
			return srv.Run(ctx)
		})
	}

	err = g.Wait()
	lg.Info("shutdown complete")

	return err
}

// openStore opens the KV store selected by the storage driver. The returned
// function releases it.
func openStore(ctx context.Context, cfg *config.Config, lg *zap.Logger) (storage.KVStore, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, err
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}

		if err := postgres.EnsureSchema(ctx, postgres.NewTransactor(pool)); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}

		lg.Info("using postgres storage")
		return postgres.NewKVStore(pool), pool.Close, nil

	case config.DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.SQLitePath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create sqlite directory: %w", err)
		}

		s, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}

		lg.Info("using sqlite storage", zap.String("path", cfg.Storage.SQLitePath))
		return s, func() {
			if err := s.Close(); err != nil {
				lg.Warn("failed to close sqlite storage", zap.Error(err))
			}
		}, nil

	default:
		lg.Warn("using in-memory storage, the vocabulary is lost on restart")
		return storage.NewMemoryStore(), func() {}, nil
	}
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
