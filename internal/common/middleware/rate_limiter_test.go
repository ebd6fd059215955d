package middleware_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Matthew11K/wa-media-bot/internal/common/middleware"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

func TestCallerRateLimiter_AllowWithinLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	limiter := middleware.NewCallerRateLimiter(ctx, 5, time.Minute, newTestLogger())

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow("111@s.whatsapp.net"), "сообщение %d должно пройти", i+1)
	}
}

func TestCallerRateLimiter_BlocksOverLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	limiter := middleware.NewCallerRateLimiter(ctx, 3, time.Minute, newTestLogger())

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("111@s.whatsapp.net"))
	}

	assert.False(t, limiter.Allow("111@s.whatsapp.net"))
}

func TestCallerRateLimiter_IndependentCallers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	limiter := middleware.NewCallerRateLimiter(ctx, 1, time.Minute, newTestLogger())

	assert.True(t, limiter.Allow("111@s.whatsapp.net"))
	assert.False(t, limiter.Allow("111@s.whatsapp.net"))

	// Лимиты разных отправителей не зависят друг от друга.
	assert.True(t, limiter.Allow("222@s.whatsapp.net"))
}
