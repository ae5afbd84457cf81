package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucketDrains(t *testing.T) {
	bucket := NewTokenBucket(2, 1, time.Hour)

	allowed, _ := bucket.Allow()
	assert.True(t, allowed)
	allowed, _ = bucket.Allow()
	assert.True(t, allowed)

	allowed, wait := bucket.Allow()
	assert.False(t, allowed)
	assert.Greater(t, wait, time.Duration(0))
}

func TestTokenBucketRefills(t *testing.T) {
	bucket := NewTokenBucket(1, 1, 10*time.Millisecond)

	allowed, _ := bucket.Allow()
	require.True(t, allowed)

	time.Sleep(25 * time.Millisecond)

	allowed, _ = bucket.Allow()
	assert.True(t, allowed, "elapsed intervals restore tokens")
}

func TestWaitHonorsCancelledContext(t *testing.T) {
	bucket := NewTokenBucket(1, 1, time.Hour)
	_, _ = bucket.Allow()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := bucket.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
