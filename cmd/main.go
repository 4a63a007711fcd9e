package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/shenikar/wildfire_console/internal/config"
	"github.com/shenikar/wildfire_console/internal/fixtures"
	v1 "github.com/shenikar/wildfire_console/internal/handler/http/v1"
	"github.com/shenikar/wildfire_console/internal/mapview"
	"github.com/shenikar/wildfire_console/internal/service"
	"github.com/shenikar/wildfire_console/internal/store"
	"github.com/shenikar/wildfire_console/internal/viewport"
	"github.com/shenikar/wildfire_console/internal/webhook"
	"github.com/shenikar/wildfire_console/pkg/logger"
	redisclient "github.com/shenikar/wildfire_console/pkg/redis"

	_ "github.com/shenikar/wildfire_console/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	initialZoom     = 10
	shutdownTimeout = 5 * time.Second
)

// @title Wildfire Operations Console API
// @version 1.0
// @description Operator console for wildfire alerts, incidents, spread predictions, sensors and UAV missions.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatalf("Console stopped with error: %v", err)
	}
	log.Info("Server gracefully stopped")
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	now := time.Now()

	// Начальные данные
	dataset := fixtures.Default(now)
	if cfg.FixturesFile != "" {
		ds, err := fixtures.LoadFile(cfg.FixturesFile, now)
		if err != nil {
			return fmt.Errorf("load fixtures: %w", err)
		}
		dataset = ds
		log.WithField("file", cfg.FixturesFile).Info("Fixtures loaded from file")
	}

	seed := uint64(cfg.RandomSeed)
	if cfg.RandomSeed == 0 {
		seed = uint64(now.UnixNano())
	}

	opts := []store.Option{
		store.WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))),
		store.WithActor(cfg.OperatorName),
		store.WithModelVersion(cfg.ModelVersion),
		store.WithHashCost(cfg.APIKeyHashCost),
	}

	g, gctx := errgroup.WithContext(ctx)

	// Публикация событий аудита через Redis (опционально)
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("connect to Redis: %w", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		publisher := webhook.NewRedisPublisher(redisClient)
		opts = append(opts, store.WithAuditHook(webhook.AuditHook(gctx, publisher, log)))

		worker := webhook.NewWorker(redisClient, log, cfg)
		g.Go(func() error {
			return worker.Run(gctx)
		})
	} else {
		log.Info("REDIS_ADDR is not set, audit events will not be published")
	}

	consoleStore := store.New(dataset, opts...)

	// Вьюпорт карты
	viewOpts := viewport.DefaultOptions()
	viewOpts.PanelTransition = cfg.PanelTransition
	view := mapview.NewView(
		mapview.Layout{
			WindowWidth:  cfg.MapWindowWidth,
			WindowHeight: cfg.MapWindowHeight,
			PanelWidth:   cfg.MapPanelWidth,
			PanelOpen:    true,
		},
		dataset.Bounds.Center(),
		initialZoom,
		viewport.RealScheduler{},
		viewOpts,
		log,
	)
	defer view.Stop()

	consoleService := service.NewConsoleService(consoleStore, view, log)
	handler := v1.NewHandler(consoleService, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), v1.RequestLogger(log))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	g.Go(func() error {
		log.Infof("HTTP server started on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Received shutdown signal, shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
