package handlers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bimafrica/quote-api/internal/infra/http/handlers"
)

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	rl := handlers.NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("203.0.113.1"))
	}
	assert.False(t, rl.Allow("203.0.113.1"))

	// Other clients are unaffected.
	assert.True(t, rl.Allow("203.0.113.2"))
}
