package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"interviewd/internal/interview"
)

func TestDemoCandidates_ContainOneDuplicatePair(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	candidates := demoCandidates(now)

	result := interview.Reconcile(candidates, nil)
	assert.Equal(t, 1, result.Removed)
	assert.Len(t, result.Survivors, len(candidates)-1)

	for _, c := range candidates {
		assert.Empty(t, c.ID)
		assert.False(t, c.CreatedAt.After(now))
	}
}
