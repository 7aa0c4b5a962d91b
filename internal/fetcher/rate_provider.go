// internal/fetcher/rate_provider.go
package fetcher

import "context"

// RateProvider отдает курс EUR/USD по цене закрытия предыдущего дня
type RateProvider interface {
	EurUsdRate(ctx context.Context) (float64, error)
}
