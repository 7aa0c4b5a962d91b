// internal/fetcher/factory.go
package fetcher

import (
	"fmt"

	"revenue-ledger-bot/internal/infrastructure/api/exchanges/binance"
	"revenue-ledger-bot/internal/infrastructure/api/exchanges/bybit"
	"revenue-ledger-bot/internal/infrastructure/config"
)

// NewRateProviderFromConfig создает провайдер курса для биржи из конфигурации
func NewRateProviderFromConfig(cfg *config.Config) (RateProvider, error) {
	var client ExchangeClient

	switch cfg.Exchange {
	case "binance":
		client = binance.NewBinanceClient(cfg)
	case "bybit":
		client = bybit.NewBybitClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported exchange: %s", cfg.Exchange)
	}

	return NewExchangeRateProvider(client, cfg.RateSymbol), nil
}
