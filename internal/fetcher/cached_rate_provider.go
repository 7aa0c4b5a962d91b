// internal/fetcher/cached_rate_provider.go
package fetcher

import (
	"context"
	"time"

	"revenue-ledger-bot/pkg/logger"
)

// RateCache - кэш для курса (реализуется Redis-кэшем)
type RateCache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
}

// CachedRateProvider кэширует курс, чтобы не ходить на биржу при каждом запросе
type CachedRateProvider struct {
	provider RateProvider
	cache    RateCache
	cacheKey string
	ttl      time.Duration
	logger   *logger.Logger
}

// NewCachedRateProvider оборачивает провайдер курса кэшем
func NewCachedRateProvider(provider RateProvider, cache RateCache, symbol string, ttl time.Duration) *CachedRateProvider {
	return &CachedRateProvider{
		provider: provider,
		cache:    cache,
		cacheKey: "rate:" + symbol,
		ttl:      ttl,
		logger:   logger.GetLogger(),
	}
}

// EurUsdRate возвращает курс из кэша либо запрашивает у биржи
func (p *CachedRateProvider) EurUsdRate(ctx context.Context) (float64, error) {
	var cached float64
	found, err := p.cache.Get(ctx, p.cacheKey, &cached)
	if err != nil {
		// Ошибка кэша не мешает сходить на биржу напрямую
		p.logger.Warn("⚠️ Не удалось прочитать курс из кэша: %v", err)
	}
	if found && cached > 0 {
		return cached, nil
	}

	rate, err := p.provider.EurUsdRate(ctx)
	if err != nil {
		return 0, err
	}

	if err := p.cache.Set(ctx, p.cacheKey, rate, p.ttl); err != nil {
		p.logger.Warn("⚠️ Не удалось сохранить курс в кэш: %v", err)
	}

	return rate, nil
}

var _ RateProvider = (*CachedRateProvider)(nil)
