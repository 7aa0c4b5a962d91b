// internal/fetcher/exchange_rate_provider.go
package fetcher

import (
	"context"
	"fmt"

	"revenue-ledger-bot/pkg/logger"
)

// ExchangeClient - клиент биржи, умеющий отдавать цену закрытия по символу
type ExchangeClient interface {
	PrevClose(ctx context.Context, symbol string) (float64, error)
}

// ExchangeRateProvider получает курс с биржи по тикеру EURUSDT.
// Цена закрытия предыдущего дня в USDT используется как курс EUR/USD.
type ExchangeRateProvider struct {
	client ExchangeClient
	symbol string
	logger *logger.Logger
}

// NewExchangeRateProvider создает провайдер курса поверх биржевого клиента
func NewExchangeRateProvider(client ExchangeClient, symbol string) *ExchangeRateProvider {
	return &ExchangeRateProvider{
		client: client,
		symbol: symbol,
		logger: logger.GetLogger(),
	}
}

// EurUsdRate запрашивает курс у биржи
func (p *ExchangeRateProvider) EurUsdRate(ctx context.Context) (float64, error) {
	rate, err := p.client.PrevClose(ctx, p.symbol)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch %s rate: %w", p.symbol, err)
	}

	if rate <= 0 {
		return 0, fmt.Errorf("exchange returned invalid rate %f for %s", rate, p.symbol)
	}

	p.logger.Debug("📈 Курс %s: %f", p.symbol, rate)
	return rate, nil
}

var _ RateProvider = (*ExchangeRateProvider)(nil)
