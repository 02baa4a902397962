package jobs

import (
	"context"
	"log"
	"time"
)

// Expirer drops sessions idle for longer than maxIdle.
type Expirer interface {
	Expire(maxIdle time.Duration) int
}

// SessionJanitor periodically expires idle reader sessions.
type SessionJanitor struct {
	sessions Expirer
	interval time.Duration
	maxIdle  time.Duration
}

// NewSessionJanitor creates a new session janitor.
func NewSessionJanitor(sessions Expirer, interval, maxIdle time.Duration) *SessionJanitor {
	return &SessionJanitor{
		sessions: sessions,
		interval: interval,
		maxIdle:  maxIdle,
	}
}

// Start begins the background expiry loop. It returns when ctx is cancelled.
func (j *SessionJanitor) Start(ctx context.Context) {
	log.Printf("Session janitor started (interval: %v, maxIdle: %v)", j.interval, j.maxIdle)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Session janitor stopped")
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

// sweep expires idle sessions once.
func (j *SessionJanitor) sweep() int {
	n := j.sessions.Expire(j.maxIdle)
	if n > 0 {
		log.Printf("Session janitor: expired %d idle sessions", n)
	}
	return n
}
