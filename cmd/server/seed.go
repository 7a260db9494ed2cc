package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"interviewd/internal/model"
	"interviewd/internal/repository"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo candidates, including one duplicate pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

func runSeed(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	mongoClient, db, err := connectMongo(ctx)
	if err != nil {
		return err
	}
	defer mongoClient.Disconnect(context.Background())

	// ids are left empty so MongoDB assigns ObjectIDs
	docs := make([]interface{}, 0)
	for _, c := range demoCandidates(time.Now().UTC()) {
		docs = append(docs, c)
	}

	if _, err := db.Collection(repository.CandidatesCollection).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert candidates: %w", err)
	}

	fmt.Printf("Successfully inserted %d demo candidates\n", len(docs))
	return nil
}

func demoCandidates(now time.Time) []model.Candidate {
	return []model.Candidate{
		{
			Name:   "Priya Raman",
			Email:  "priya.raman@example.com",
			Phone:  "+1-555-0101",
			Status: model.StatusCompleted,
			Score:  8.3,
			Answers: []model.Answer{
				{Question: "What is the virtual DOM in React?", Answer: "An in-memory tree React diffs against to batch real DOM updates.", Score: 8, Feedback: "Accurate and concise."},
				{Question: "How does the Node.js event loop work?", Answer: "It processes callbacks in phases: timers, pending, poll, check and close.", Score: 9, Feedback: "Covers the phases well."},
			},
			Summary:   "Solid fundamentals in React and Node.js with clear explanations. Recommended for the next round.",
			CreatedAt: now.Add(-48 * time.Hour),
			UpdatedAt: now.Add(-47 * time.Hour),
		},
		{
			Name:      "Marco Bellini",
			Email:     "marco.bellini@example.com",
			Phone:     "+1-555-0102",
			Status:    model.StatusInProgress,
			Answers:   []model.Answer{},
			CreatedAt: now.Add(-30 * time.Hour),
			UpdatedAt: now.Add(-30 * time.Hour),
		},
		// Same person registered twice; cleanup keeps the newer record
		{
			Name:      "Dana Kim",
			Email:     "dana.kim@example.com",
			Status:    model.StatusNotStarted,
			Answers:   []model.Answer{},
			CreatedAt: now.Add(-24 * time.Hour),
			UpdatedAt: now.Add(-24 * time.Hour),
		},
		{
			Name:      "Dana Kim",
			Email:     "Dana.Kim@example.com",
			Phone:     "+1-555-0103",
			Status:    model.StatusNotStarted,
			Answers:   []model.Answer{},
			CreatedAt: now.Add(-2 * time.Hour),
			UpdatedAt: now.Add(-2 * time.Hour),
		},
	}
}
