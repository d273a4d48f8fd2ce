// Package ratelimit throttles login attempts per client key.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter reports whether one more attempt for key is allowed. Implementations
// that fail internally return true together with the error.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Config is the attempt budget per window.
type Config struct {
	Requests int
	Window   time.Duration
}

// DefaultConfig allows ten attempts a minute.
func DefaultConfig() Config {
	return Config{Requests: 10, Window: time.Minute}
}

type window struct {
	count int
	reset time.Time
}

// Memory is a fixed window counter kept in process memory.
type Memory struct {
	mu      sync.Mutex
	cfg     Config
	windows map[string]*window
	now     func() time.Time
}

func NewMemory(cfg Config) *Memory {
	return &Memory{cfg: cfg, windows: make(map[string]*window), now: time.Now}
}

func (m *Memory) Allow(_ context.Context, key string) (bool, error) {
	if m.cfg.Requests <= 0 {
		return true, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	w, ok := m.windows[key]
	if !ok || !now.Before(w.reset) {
		if len(m.windows) > 10000 {
			m.sweep(now)
		}
		w = &window{reset: now.Add(m.cfg.Window)}
		m.windows[key] = w
	}
	w.count++
	return w.count <= m.cfg.Requests, nil
}

func (m *Memory) sweep(now time.Time) {
	for k, w := range m.windows {
		if !now.Before(w.reset) {
			delete(m.windows, k)
		}
	}
}
