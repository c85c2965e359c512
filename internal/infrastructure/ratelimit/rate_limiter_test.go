package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubmitComplaintBucketExhausts(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 5; i++ {
		allowed, _ := rl.Allow("user-1", "submit_complaint")
		assert.True(t, allowed, "submission %d should be allowed", i+1)
	}

	allowed, retryAfter := rl.Allow("user-1", "submit_complaint")
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))
}

func TestBucketsAreScopedPerUserAndAction(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 5; i++ {
		rl.Allow("user-1", "submit_complaint")
	}

	allowed, _ := rl.Allow("user-1", "submit_complaint")
	assert.False(t, allowed)

	// A different user, and a different action by the same user, both still
	// have tokens.
	allowed, _ = rl.Allow("user-2", "submit_complaint")
	assert.True(t, allowed)

	allowed, _ = rl.Allow("user-1", "assistant_chat")
	assert.True(t, allowed)
}

func TestTokenBucketRefills(t *testing.T) {
	bucket := NewTokenBucket(1, 1, 10*time.Millisecond)

	allowed, _ := bucket.Allow()
	assert.True(t, allowed)

	allowed, _ = bucket.Allow()
	assert.False(t, allowed)

	time.Sleep(15 * time.Millisecond)

	allowed, _ = bucket.Allow()
	assert.True(t, allowed)
}
