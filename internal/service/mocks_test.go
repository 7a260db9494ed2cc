package service

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"interviewd/internal/cache"
	"interviewd/internal/model"
)

type mockCandidateRepo struct {
	mock.Mock
}

func (m *mockCandidateRepo) Create(ctx context.Context, c *model.Candidate) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil && c.ID == "" {
		c.ID = "665f1f77bcf86cd799439011"
	}
	return args.Error(0)
}

func (m *mockCandidateRepo) Find(ctx context.Context, email string) ([]*model.Candidate, error) {
	args := m.Called(ctx, email)
	out, _ := args.Get(0).([]*model.Candidate)
	return out, args.Error(1)
}

func (m *mockCandidateRepo) GetByID(ctx context.Context, id string) (*model.Candidate, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*model.Candidate)
	return out, args.Error(1)
}

func (m *mockCandidateRepo) Update(ctx context.Context, id string, u *model.CandidateUpdate) (*model.Candidate, error) {
	args := m.Called(ctx, id, u)
	out, _ := args.Get(0).(*model.Candidate)
	return out, args.Error(1)
}

func (m *mockCandidateRepo) AppendAnswer(ctx context.Context, id string, a model.Answer) (*model.Candidate, error) {
	args := m.Called(ctx, id, a)
	out, _ := args.Get(0).(*model.Candidate)
	return out, args.Error(1)
}

func (m *mockCandidateRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCandidateRepo) FindDuplicates(ctx context.Context) ([]model.Candidate, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.Candidate)
	return out, args.Error(1)
}

type mockLeaderboard struct {
	mock.Mock
}

func (m *mockLeaderboard) UpdateScore(ctx context.Context, email string, score float64) error {
	return m.Called(ctx, email, score).Error(0)
}

func (m *mockLeaderboard) Remove(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockLeaderboard) GetTop(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	out, _ := args.Get(0).([]model.LeaderboardEntry)
	return out, args.Error(1)
}

type mockLocker struct {
	mock.Mock
	released int
}

func (m *mockLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (cache.ReleaseFunc, error) {
	args := m.Called(ctx, key, ttl)
	if err := args.Error(0); err != nil {
		return nil, err
	}
	return func(context.Context) error {
		m.released++
		return nil
	}, nil
}

type mockModelClient struct {
	mock.Mock
}

func (m *mockModelClient) Generate(ctx context.Context, modelName, prompt string) (string, error) {
	args := m.Called(ctx, modelName, prompt)
	return args.String(0), args.Error(1)
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []string
}

func (b *recordingBroadcaster) Broadcast(msgType string, _ interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, msgType)
}
