package ratelimit

import (
	"context"
	"sync"
	"time"
)

// sweepThreshold bounds how many keys may accumulate before expired windows are dropped.
const sweepThreshold = 1024

type window struct {
	count   int
	resetAt time.Time
}

// WindowLimiter is a process local fixed-window counter. Every call counts,
// including denied ones, so hammering a closed window does not shorten it.
type WindowLimiter struct {
	mu      sync.Mutex
	max     int
	period  time.Duration
	now     func() time.Time
	windows map[string]*window
}

type Option func(*WindowLimiter)

func WithClock(now func() time.Time) Option {
	return func(l *WindowLimiter) {
		l.now = now
	}
}

func NewWindowLimiter(max int, period time.Duration, opts ...Option) *WindowLimiter {
	l := &WindowLimiter{
		max:     max,
		period:  period,
		now:     time.Now,
		windows: make(map[string]*window),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *WindowLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if len(l.windows) > sweepThreshold {
		l.sweep(now)
	}

	w, ok := l.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(l.period)}
		l.windows[key] = w
	}
	w.count++

	return w.count <= l.max, nil
}

func (l *WindowLimiter) sweep(now time.Time) {
	for key, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, key)
		}
	}
}
