// internal/delivery/telegram/app/bot/message_sender/rate_limiter.go
package message_sender

import (
	"sync"
	"time"
)

// RateLimiter ограничитель частоты отправки
type RateLimiter struct {
	interval time.Duration
	lastSend time.Time
	mu       sync.Mutex
}

// NewRateLimiter создает новый ограничитель
func NewRateLimiter(interval time.Duration) *RateLimiter {
	return &RateLimiter{
		interval: interval,
		lastSend: time.Now().Add(-interval), // Можно отправлять сразу
	}
}

// Wait блокирует до момента, когда можно отправить следующее сообщение
func (rl *RateLimiter) Wait() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if elapsed := now.Sub(rl.lastSend); elapsed < rl.interval {
		time.Sleep(rl.interval - elapsed)
	}

	rl.lastSend = time.Now()
}
