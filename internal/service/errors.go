package service

import (
	"errors"
	"fmt"
)

var (
	ErrCandidateNotFound   = errors.New("candidate not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrCleanupInProgress   = errors.New("duplicate cleanup already running")
	ErrModelUnavailable    = errors.New("model API key not configured")
	ErrLeaderboardDisabled = errors.New("leaderboard requires redis")
	errEmptyResponse       = errors.New("empty response from model")
)

// StoreError is a persistence failure. It is never retried.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ModelCallError is a failed or empty completion call
type ModelCallError struct {
	Task string
	Err  error
}

func (e *ModelCallError) Error() string {
	return fmt.Sprintf("model call %s: %v", e.Task, e.Err)
}

func (e *ModelCallError) Unwrap() error {
	return e.Err
}

// SummaryGenerationError is returned when the final summary cannot be generated at all
type SummaryGenerationError struct {
	Err error
}

func (e *SummaryGenerationError) Error() string {
	return "summary generation failed: " + e.Err.Error()
}

func (e *SummaryGenerationError) Unwrap() error {
	return e.Err
}
