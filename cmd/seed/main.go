package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"sarrisk/internal/config"
	"sarrisk/internal/logging"
	"sarrisk/internal/repository"
	"sarrisk/internal/service"
	"sarrisk/internal/strategy"
)

// seed writes the built-in questionnaire catalog to MongoDB so it can be
// edited in place
func main() {
	cfg := config.Load()
	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	repo := repository.NewQuestionnaireRepo(client.Database(cfg.MongoDB))
	svc := service.NewQuestionnaireService(repo, strategy.NewRegistry(), cfg.DefaultVariant, log)

	n, err := svc.Seed(ctx)
	if err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
	log.Info("seeded questionnaires", zap.Int("count", n), zap.String("db", cfg.MongoDB))
}
