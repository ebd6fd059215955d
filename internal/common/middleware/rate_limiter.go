package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type callerLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// CallerRateLimiter ограничивает поток входящих сообщений по отправителю.
// Сообщения сверх лимита диспетчер молча отбрасывает.
type CallerRateLimiter struct {
	callers    map[string]*callerLimiter
	mu         sync.Mutex
	rate       rate.Limit
	burst      int
	expiration time.Duration
	logger     *slog.Logger

	ctx context.Context
}

func NewCallerRateLimiter(
	ctx context.Context,
	messagesPerWindow int,
	window time.Duration,
	logger *slog.Logger,
) *CallerRateLimiter {
	r := rate.Limit(float64(messagesPerWindow) / window.Seconds())

	m := &CallerRateLimiter{
		callers:    make(map[string]*callerLimiter),
		rate:       r,
		burst:      messagesPerWindow,
		expiration: 1 * time.Hour,
		logger:     logger,
		ctx:        ctx,
	}

	go m.cleanupCallers()

	return m
}

func (m *CallerRateLimiter) getCallerLimiter(callerJID string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	caller, exists := m.callers[callerJID]
	if !exists {
		caller = &callerLimiter{
			limiter:  rate.NewLimiter(m.rate, m.burst),
			lastSeen: time.Now(),
		}
		m.callers[callerJID] = caller
	} else {
		caller.lastSeen = time.Now()
	}

	return caller.limiter
}

func (m *CallerRateLimiter) cleanupCallers() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.mu.Lock()
			for jid, caller := range m.callers {
				if time.Since(caller.lastSeen) > m.expiration {
					delete(m.callers, jid)
				}
			}
			m.mu.Unlock()
		case <-m.ctx.Done():
			return
		}
	}
}

// Allow сообщает, укладывается ли отправитель в лимит.
func (m *CallerRateLimiter) Allow(callerJID string) bool {
	limiter := m.getCallerLimiter(callerJID)

	if !limiter.Allow() {
		m.logger.Debug("Превышен лимит сообщений, сообщение отброшено",
			"caller", callerJID,
		)

		return false
	}

	return true
}
