package mailer

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter - ограничитель частоты отправки писем
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter - не чаще одного письма за interval, interval <= 0 снимает ограничение
func NewRateLimiter(interval time.Duration) *RateLimiter {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Wait - ожидает разрешения на отправку или отмены ctx
func (rl *RateLimiter) Wait(ctx context.Context) error {
	return rl.limiter.Wait(ctx)
}
