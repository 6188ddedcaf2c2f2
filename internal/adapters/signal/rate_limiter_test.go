package signal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AllowsUpToLimit(t *testing.T) {
	req := require.New(t)
	rl := NewRateLimiter(3, time.Minute)

	req.True(rl.Allow("a"))
	req.True(rl.Allow("a"))
	req.True(rl.Allow("a"))

	// The fourth attempt inside the window is rejected
	req.False(rl.Allow("a"))

	// Another connection has its own window
	req.True(rl.Allow("b"))
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	req := require.New(t)
	rl := NewRateLimiter(2, 20*time.Millisecond)

	req.True(rl.Allow("a"))
	req.True(rl.Allow("a"))
	req.False(rl.Allow("a"))

	time.Sleep(30 * time.Millisecond)
	req.True(rl.Allow("a"))
}

func TestRateLimiter_ForgetResetsWindow(t *testing.T) {
	req := require.New(t)
	rl := NewRateLimiter(1, time.Minute)

	req.True(rl.Allow("a"))
	req.False(rl.Allow("a"))

	rl.Forget("a")
	req.True(rl.Allow("a"))
}
