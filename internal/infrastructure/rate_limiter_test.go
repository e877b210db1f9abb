package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("frank"))
	}
	assert.False(t, rl.Allow("frank"))
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 1)

	assert.True(t, rl.Allow("frank"))
	assert.False(t, rl.Allow("frank"))
	assert.True(t, rl.Allow("dee"))
}

func TestRateLimiterWindowSlides(t *testing.T) {
	rl := NewRateLimiter(10*time.Millisecond, 1)

	assert.True(t, rl.Allow("frank"))
	assert.False(t, rl.Allow("frank"))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, rl.Allow("frank"))
}
