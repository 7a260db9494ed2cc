package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"interviewd/internal/cache"
	"interviewd/internal/interview"
	"interviewd/internal/model"
	"interviewd/internal/repository"
)

// ErrInvalidID is returned for ids that are not valid object ids
var ErrInvalidID = repository.ErrInvalidID

const cleanupLockKey = "locks:cleanup-duplicates"

// DefaultLeaderboardLimit is used when the caller does not ask for a size
const DefaultLeaderboardLimit = 10

// CandidateService handles candidate persistence and duplicate cleanup
type CandidateService struct {
	repo        repository.CandidateRepo
	leaderboard cache.LeaderboardCache
	locker      cache.Locker
	lockTTL     time.Duration
	validate    *validator.Validate
	broadcaster Broadcaster
}

// NewCandidateService creates a new candidate service. leaderboard and locker
// may be nil when Redis is not configured.
func NewCandidateService(
	repo repository.CandidateRepo,
	leaderboard cache.LeaderboardCache,
	locker cache.Locker,
	lockTTL time.Duration,
) *CandidateService {
	return &CandidateService{
		repo:        repo,
		leaderboard: leaderboard,
		locker:      locker,
		lockTTL:     lockTTL,
		validate:    validator.New(),
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *CandidateService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Create validates and stores a new candidate
func (s *CandidateService) Create(ctx context.Context, candidate *model.Candidate) (*model.Candidate, error) {
	candidate.ApplyDefaults()
	if err := s.validate.Struct(candidate); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Create(ctx, candidate); err != nil {
		return nil, &StoreError{Op: "create candidate", Err: err}
	}

	s.syncScore(ctx, candidate)
	s.broadcast(EventCandidateCreated, candidate)
	return candidate, nil
}

// List returns candidates, newest first, optionally filtered by exact email
func (s *CandidateService) List(ctx context.Context, email string) ([]*model.Candidate, error) {
	candidates, err := s.repo.Find(ctx, email)
	if err != nil {
		return nil, &StoreError{Op: "list candidates", Err: err}
	}
	return candidates, nil
}

// Update applies a partial update to one candidate
func (s *CandidateService) Update(ctx context.Context, id string, update *model.CandidateUpdate) (*model.Candidate, error) {
	if update == nil || update.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if err := s.validate.Struct(update); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	candidate, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, storeErr("update candidate", err)
	}
	if candidate == nil {
		return nil, ErrCandidateNotFound
	}

	if update.Score != nil {
		s.syncScore(ctx, candidate)
	}
	s.broadcast(EventCandidateUpdated, candidate)
	return candidate, nil
}

// AppendAnswer records one scored answer on a candidate
func (s *CandidateService) AppendAnswer(ctx context.Context, id string, answer model.Answer) (*model.Candidate, error) {
	if err := s.validate.Struct(answer); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	candidate, err := s.repo.AppendAnswer(ctx, id, answer)
	if err != nil {
		return nil, storeErr("append answer", err)
	}
	if candidate == nil {
		return nil, ErrCandidateNotFound
	}

	s.broadcast(EventCandidateUpdated, candidate)
	return candidate, nil
}

// CleanupDuplicates keeps the most recently created record for each email and
// deletes the rest. Deletion stops at the first failure; the returned result
// still reports how many records were removed before it.
func (s *CandidateService) CleanupDuplicates(ctx context.Context) (*model.ReconcileResult, error) {
	if s.locker != nil {
		release, err := s.locker.Acquire(ctx, cleanupLockKey, s.lockTTL)
		if errors.Is(err, cache.ErrLockHeld) {
			return nil, ErrCleanupInProgress
		}
		if err != nil {
			return nil, &StoreError{Op: "acquire cleanup lock", Err: err}
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				log.Warn().Err(err).Msg("failed to release cleanup lock")
			}
		}()
	}

	records, err := s.repo.FindDuplicates(ctx)
	if err != nil {
		return nil, &StoreError{Op: "find duplicates", Err: err}
	}

	plan := interview.Reconcile(records, interview.EmailKey)
	byID := make(map[string]model.Candidate, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}

	result := &model.ReconcileResult{
		Groups:    plan.Groups,
		Survivors: plan.Survivors,
	}
	for _, group := range plan.Groups {
		for _, id := range group.Removed {
			if err := s.repo.Delete(ctx, id); err != nil {
				log.Error().Err(err).Str("id", id).Int("removed", result.Removed).Msg("duplicate cleanup aborted")
				return result, &StoreError{Op: fmt.Sprintf("delete duplicate %s after %d removed", id, result.Removed), Err: err}
			}
			result.Removed++
			s.dropStaleScore(ctx, byID[id], byID[group.Kept])
		}
		// the ZSET is keyed by email, so it may still hold a removed record's score
		kept := byID[group.Kept]
		s.syncScore(ctx, &kept)
		log.Info().Str("email", group.Key).Str("kept", group.Kept).Int("removed", len(group.Removed)).Msg("duplicate group collapsed")
	}

	if result.Removed > 0 {
		s.broadcast(EventDuplicatesRemoved, result)
	}
	return result, nil
}

// Leaderboard returns the top candidate scores
func (s *CandidateService) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	if s.leaderboard == nil {
		return nil, ErrLeaderboardDisabled
	}
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	entries, err := s.leaderboard.GetTop(ctx, limit)
	if err != nil {
		return nil, &StoreError{Op: "read leaderboard", Err: err}
	}
	return entries, nil
}

// syncScore mirrors a candidate score into the leaderboard. Failures are logged only.
func (s *CandidateService) syncScore(ctx context.Context, c *model.Candidate) {
	if s.leaderboard == nil {
		return
	}
	if err := s.leaderboard.UpdateScore(ctx, c.Email, c.Score); err != nil {
		log.Warn().Err(err).Str("email", c.Email).Msg("failed to update leaderboard")
	}
}

func (s *CandidateService) dropStaleScore(ctx context.Context, removed, kept model.Candidate) {
	if s.leaderboard == nil || removed.Email == "" || removed.Email == kept.Email {
		return
	}
	if err := s.leaderboard.Remove(ctx, removed.Email); err != nil {
		log.Warn().Err(err).Str("email", removed.Email).Msg("failed to drop leaderboard entry")
	}
}

func (s *CandidateService) broadcast(msgType string, payload interface{}) {
	if s.broadcaster != nil {
		s.broadcaster.Broadcast(msgType, payload)
	}
}

func storeErr(op string, err error) error {
	if errors.Is(err, ErrInvalidID) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
