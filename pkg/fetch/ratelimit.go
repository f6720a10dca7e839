package fetch

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// HostLimiter enforces a minimum delay between requests to each host.
// One limiter is shared across all workers so per-host politeness holds
// even when several goroutines hit the same host concurrently.
type HostLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	delay    time.Duration
	log      *logrus.Logger
}

// NewHostLimiter creates a HostLimiter with the given inter-request delay.
// A non-positive delay disables limiting entirely.
func NewHostLimiter(delay time.Duration, log *logrus.Logger) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		delay:    delay,
		log:      log,
	}
}

// Wait blocks until the host's limiter grants a slot or ctx is cancelled.
func (hl *HostLimiter) Wait(ctx context.Context, host string) error {
	if hl.delay <= 0 {
		return nil
	}

	hl.mu.Lock()
	limiter, exists := hl.limiters[host]
	if !exists {
		// Burst of 1: requests to the same host are strictly serialized
		limiter = rate.NewLimiter(rate.Every(hl.delay), 1)
		hl.limiters[host] = limiter
		hl.log.WithFields(logrus.Fields{"host": host, "delay": hl.delay}).Debug("Created host rate limiter")
	}
	hl.mu.Unlock()

	return limiter.Wait(ctx)
}
