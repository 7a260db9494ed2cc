package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	"interviewd/internal/cache"
	"interviewd/internal/config"
	"interviewd/internal/repository"
	"interviewd/internal/service"
	"interviewd/internal/transport/rest"
	"interviewd/internal/transport/ws"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	aiConfig := config.DefaultAIConfig()
	log.Info().
		Str("questions", aiConfig.Models.Questions).
		Str("evaluate", aiConfig.Models.Evaluate).
		Str("summary", aiConfig.Models.Summary).
		Bool("api_key", aiConfig.IsEnabled()).
		Msg("AI config")
	if !aiConfig.IsEnabled() {
		log.Warn().Msg("GEMINI_API_KEY not set, questions and scores will use fallbacks")
	}

	mongoClient, db, err := connectMongo(ctx)
	if err != nil {
		return err
	}
	defer mongoClient.Disconnect(context.Background())

	rdb, err := connectRedis(ctx)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	modelClient, closeModel, err := service.NewModelClient(ctx, aiConfig)
	if err != nil {
		return err
	}
	defer closeModel()

	repository.EnsureCandidateIndexes(ctx, db)

	wsHub := ws.NewHub()
	defer wsHub.Close()

	candidateSvc := newCandidateService(db, rdb)
	candidateSvc.SetBroadcaster(wsHub)
	evaluator := service.NewEvaluatorService(aiConfig, modelClient)

	router := rest.NewRouter(&rest.Container{
		CandidateService:   candidateSvc,
		InterviewService:   evaluator,
		WSHub:              wsHub,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return err
	}
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info().Msg("server exited")
	return nil
}

// newCandidateService wires the optional Redis features when a client is present
func newCandidateService(db *mongo.Database, rdb *redis.Client) *service.CandidateService {
	repo := repository.NewCandidateRepo(db)
	if rdb == nil {
		return service.NewCandidateService(repo, nil, nil, cfg.CleanupLockTTL)
	}
	return service.NewCandidateService(repo, cache.NewLeaderboardCache(rdb), cache.NewLocker(rdb), cfg.CleanupLockTTL)
}
