package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup-duplicates",
	Short: "Collapse candidates sharing an email, keeping the newest record",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCleanup(cmd.Context())
	},
}

func runCleanup(ctx context.Context) error {
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

	result, err := newCandidateService(db, rdb).CleanupDuplicates(ctx)
	if result != nil {
		fmt.Printf("Removed %d duplicate candidates across %d groups\n", result.Removed, len(result.Groups))
	}
	return err
}
