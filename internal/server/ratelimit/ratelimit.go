// Package ratelimit provides per-client request limiting using token
// buckets.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket refills at a steady rate up to its burst capacity.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

func (tb *tokenBucket) refillLocked(now time.Time) {
	tb.tokens += now.Sub(tb.lastRefill).Seconds() * tb.refillRate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}
	tb.lastRefill = now
}

func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refillLocked(time.Now())
	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

func (tb *tokenBucket) status() (remaining int, retryAfter time.Duration) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refillLocked(time.Now())
	remaining = int(tb.tokens)
	if tb.tokens < 1.0 {
		retryAfter = time.Duration((1.0 - tb.tokens) / tb.refillRate * float64(time.Second))
	}
	return remaining, retryAfter
}

// Info describes the rate-limit state returned with every decision.
type Info struct {
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages token buckets keyed by client and endpoint rule.
type Limiter struct {
	config     *Config
	buckets    map[string]*tokenBucket
	lastAccess map[string]time.Time
	mu         sync.Mutex

	cleanupStop chan struct{}
	stopOnce    sync.Once
}

// NewLimiter creates a rate limiter and starts its idle-bucket cleanup loop.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = LoadConfig()
	}
	l := &Limiter{
		config:      config,
		buckets:     make(map[string]*tokenBucket),
		lastAccess:  make(map[string]time.Time),
		cleanupStop: make(chan struct{}),
	}
	if config.Enabled && config.CleanupInterval > 0 {
		go l.cleanupLoop()
	}
	return l
}

// Allow decides whether clientID may perform method path now.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Limit: 0, Remaining: 0, ResetTime: time.Now().Add(time.Hour), RetryAfter: time.Hour}
	}

	rule := l.config.match(path, method)
	bucket := l.bucketFor(clientID, rule)

	allowed := bucket.allow()
	remaining, retryAfter := bucket.status()
	info := Info{
		Limit:     rule.Limit,
		Remaining: remaining,
		ResetTime: time.Now().Add(retryAfter),
	}
	if !allowed {
		info.RetryAfter = retryAfter
	}
	return allowed, info
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.cleanupStop) })
}

func (l *Limiter) bucketFor(clientID string, rule EndpointConfig) *tokenBucket {
	key := clientID + "|" + rule.Method + " " + rule.Path

	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.buckets[key]
	if !ok {
		burst := rule.Burst
		if burst == 0 {
			burst = rule.Limit
		}
		refillRate := float64(rule.Limit) / rule.Window.Seconds()
		bucket = newTokenBucket(burst, refillRate)
		l.buckets[key] = bucket
	}
	l.lastAccess[key] = time.Now()
	return bucket
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.evictIdle()
		case <-l.cleanupStop:
			return
		}
	}
}

// evictIdle drops buckets that have not been touched for two cleanup
// intervals, bounding memory under client churn.
func (l *Limiter) evictIdle() {
	cutoff := time.Now().Add(-2 * l.config.CleanupInterval)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.lastAccess, key)
		}
	}
}
