package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"sarrisk/internal/cache"
	"sarrisk/internal/config"
	"sarrisk/internal/logging"
	"sarrisk/internal/repository"
	"sarrisk/internal/service"
	"sarrisk/internal/strategy"
	"sarrisk/internal/theme"
	"sarrisk/internal/transport/rest"
	"sarrisk/internal/transport/ws"
)

// @title SAR Risk API
// @version 1.0
// @description Risk assessment questionnaires for search and rescue missions
// @BasePath /v1
func main() {
	cfg := config.Load()

	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx := context.Background()

	registry := strategy.NewRegistry()
	if cfg.StrategyFile != "" {
		if err := registry.LoadFile(cfg.StrategyFile); err != nil {
			return err
		}
		log.Info("loaded strategy overrides", zap.String("file", cfg.StrategyFile))
	}
	log.Info("strategies registered", zap.Strings("types", registry.Types()))

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer mongoClient.Disconnect(context.Background())

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		return fmt.Errorf("ping mongo: %w", err)
	}
	log.Info("connected to MongoDB", zap.String("db", cfg.MongoDB))
	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	log.Info("connected to Redis", zap.String("addr", cfg.RedisAddr))

	wsHub := ws.NewHub(log.Named("ws"))

	// Repositories and caches
	questionnaireRepo := repository.NewQuestionnaireRepo(db)
	missionRepo := repository.NewMissionRepo(db)
	reportRepo := repository.NewReportRepo(db)
	preferencesRepo := repository.NewPreferencesRepo(db)

	assessmentCache := cache.NewAssessmentCache(rdb, cfg.AssessmentTTL)
	missionCache := cache.NewMissionCache(rdb)
	board := cache.NewBoardCache(rdb)

	// Services
	themes := theme.NewResolver()
	svcLog := log.Named("service")
	authSvc := service.NewAuthService(cfg)
	questionnaireSvc := service.NewQuestionnaireService(questionnaireRepo, registry, cfg.DefaultVariant, svcLog)
	preferencesSvc := service.NewPreferencesService(preferencesRepo, registry, themes)
	missionSvc := service.NewMissionService(missionRepo, reportRepo, missionCache, board, authSvc, svcLog)
	assessmentSvc := service.NewAssessmentService(assessmentCache, board, reportRepo, questionnaireSvc, preferencesSvc, missionSvc, svcLog)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	missionSvc.SetBroadcaster(wsHub)
	assessmentSvc.SetBroadcaster(wsHub)

	router := rest.NewRouter(&rest.Container{
		Config:             cfg,
		Logger:             log.Named("http"),
		Registry:           registry,
		Themes:             themes,
		AuthService:        authSvc,
		QuestionnaireSvc:   questionnaireSvc,
		MissionService:     missionSvc,
		AssessmentService:  assessmentSvc,
		PreferencesService: preferencesSvc,
		WSHub:              wsHub,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server exited")
	return nil
}
