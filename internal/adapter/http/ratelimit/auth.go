// Package ratelimit throttles clients that keep presenting bad credentials.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

type AttemptRecord struct {
	Count        int
	LastAttempt  time.Time
	BlockedUntil time.Time
}

// AuthFailureLimiter blocks a client for blockDuration once it failed
// authentication more than maxFailures times within windowDuration.
type AuthFailureLimiter struct {
	mu             sync.RWMutex
	attempts       map[string]*AttemptRecord
	maxFailures    int
	windowDuration time.Duration
	blockDuration  time.Duration
	now            func() time.Time
}

func NewAuthFailureLimiter(maxFailures int, windowDuration, blockDuration time.Duration) *AuthFailureLimiter {
	return &AuthFailureLimiter{
		attempts:       make(map[string]*AttemptRecord),
		maxFailures:    maxFailures,
		windowDuration: windowDuration,
		blockDuration:  blockDuration,
		now:            time.Now,
	}
}

// Blocked reports whether clientID is currently blocked and for how long.
func (l *AuthFailureLimiter) Blocked(clientID string) (bool, time.Duration) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	record, ok := l.attempts[clientID]
	if !ok {
		return false, 0
	}
	now := l.now()
	if now.Before(record.BlockedUntil) {
		return true, record.BlockedUntil.Sub(now)
	}
	return false, 0
}

// Fail records one failed attempt and reports whether the client is now
// blocked.
func (l *AuthFailureLimiter) Fail(clientID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	record, ok := l.attempts[clientID]
	if !ok {
		record = &AttemptRecord{}
		l.attempts[clientID] = record
	}

	if now.Sub(record.LastAttempt) > l.windowDuration {
		record.Count = 0
	}

	record.Count++
	record.LastAttempt = now

	if record.Count > l.maxFailures {
		record.BlockedUntil = now.Add(l.blockDuration)
		return true
	}
	return false
}

func (l *AuthFailureLimiter) Reset(clientID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.attempts, clientID)
}

// Run drops stale records every interval until ctx is done.
func (l *AuthFailureLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.prune()
		case <-ctx.Done():
			return
		}
	}
}

func (l *AuthFailureLimiter) prune() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for clientID, record := range l.attempts {
		if now.Sub(record.LastAttempt) > l.windowDuration*2 && now.After(record.BlockedUntil) {
			delete(l.attempts, clientID)
		}
	}
}
