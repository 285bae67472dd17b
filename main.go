package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"frontdesk_backend/internals/configs"
	database "frontdesk_backend/internals/databases"
	"frontdesk_backend/internals/events"
	authRepo "frontdesk_backend/internals/features/users/auth/repository"
	scheduler "frontdesk_backend/internals/features/users/auth/scheduler"
	helper "frontdesk_backend/internals/helpers"
	"frontdesk_backend/internals/logger"
	middlewares "frontdesk_backend/internals/middlewares"
	routes "frontdesk_backend/internals/route"
	routeDetails "frontdesk_backend/internals/route/details"
	"frontdesk_backend/internals/seeds"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()
	zap.ReplaceGlobals(zlog)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 🔌 DB connect + pool
	db, err := database.ConnectDB(cfg.Database, cfg.App.Name, zlog)
	if err != nil {
		zlog.Fatal("database", zap.Error(err))
	}
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			zlog.Fatal("migrate", zap.Error(err))
		}
	}
	if err := seeds.RunAllSeeds(ctx, db, cfg.Seed, zlog.Named("seeds")); err != nil {
		zlog.Fatal("seed", zap.Error(err))
	}

	// 📣 lifecycle events, best effort
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Redis.Enabled() {
		dialCtx, dialCancel := context.WithTimeout(ctx, 5*time.Second)
		rp, err := events.Dial(dialCtx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Channel)
		dialCancel()
		if err != nil {
			zlog.Warn("redis unavailable, events disabled", zap.Error(err))
		} else {
			publisher = rp
		}
	}

	// ⏱ scheduler after the DB is ready
	scheduler.StartBlacklistCleanup(ctx,
		authRepo.NewBlacklistRepository(db),
		time.Duration(cfg.Auth.BlacklistTTLDays)*24*time.Hour,
		cfg.Auth.BlacklistSweepInt,
		zlog)

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	middlewares.SetupMiddlewares(app, cfg.App, zlog)

	routes.SetupRoutes(app, routeDetails.Deps{
		DB:     db,
		Config: cfg,
		Log:    zlog,
		Events: publisher,
	})

	go func() {
		zlog.Info("listening", zap.String("port", cfg.App.Port), zap.String("env", cfg.App.Environment))
		if err := app.Listen("0.0.0.0:" + cfg.App.Port); err != nil {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		zlog.Warn("fiber shutdown", zap.Error(err))
	}
	if err := publisher.Close(); err != nil {
		zlog.Warn("events close", zap.Error(err))
	}
	if err := database.Close(db); err != nil {
		zlog.Warn("db close", zap.Error(err))
	}
}
