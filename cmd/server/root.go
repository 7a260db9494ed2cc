package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"interviewd/internal/config"
	"interviewd/internal/logger"
)

var cfg *config.Config

// rootCmd runs the HTTP server when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "interviewd",
	Short: "Candidate records and AI-assisted interview scoring",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		logger.Setup(cfg.LogLevel, cfg.LogPretty)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it
func Execute() {
	rootCmd.AddCommand(serveCmd, cleanupCmd, seedCmd)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func connectMongo(ctx context.Context) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	log.Info().Str("db", cfg.MongoDB).Msg("connected to MongoDB")

	return client, client.Database(cfg.MongoDB), nil
}

// connectRedis returns nil when Redis is not configured
func connectRedis(ctx context.Context) (*redis.Client, error) {
	if !cfg.RedisEnabled() {
		log.Warn().Msg("REDIS_URI not set, leaderboard and cleanup lock disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisURI})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}
	log.Info().Str("addr", cfg.RedisURI).Msg("connected to Redis")
	return rdb, nil
}
