package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"interviewd/internal/model"
)

const leaderboardKey = "candidates:leaderboard"

// LeaderboardCache handles the Redis ZSET of candidate scores, keyed by email
type LeaderboardCache interface {
	UpdateScore(ctx context.Context, email string, score float64) error
	Remove(ctx context.Context, email string) error
	GetTop(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
}

type leaderboardCache struct {
	client redis.Cmdable
}

// NewLeaderboardCache creates a new leaderboard cache
func NewLeaderboardCache(client redis.Cmdable) LeaderboardCache {
	return &leaderboardCache{
		client: client,
	}
}

func (c *leaderboardCache) UpdateScore(ctx context.Context, email string, score float64) error {
	return c.client.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  score,
		Member: email,
	}).Err()
}

func (c *leaderboardCache) Remove(ctx context.Context, email string) error {
	return c.client.ZRem(ctx, leaderboardKey, email).Err()
}

func (c *leaderboardCache) GetTop(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]model.LeaderboardEntry, len(results))
	for i, z := range results {
		email, _ := z.Member.(string)
		entries[i] = model.LeaderboardEntry{
			Email: email,
			Score: z.Score,
			Rank:  i + 1,
		}
	}
	return entries, nil
}
