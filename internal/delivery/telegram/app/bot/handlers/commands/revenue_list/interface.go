// internal/delivery/telegram/app/bot/handlers/commands/revenue_list/interface.go
package revenue_list

import (
	"context"

	"revenue-ledger-bot/internal/infrastructure/persistence/postgres/models"
)

// RevenueRepository - зависимость хэндлера от хранилища доходов
type RevenueRepository interface {
	FindAll(ctx context.Context) ([]models.Revenue, error)
}

// RateProvider - зависимость хэндлера от источника курса EUR/USD
type RateProvider interface {
	EurUsdRate(ctx context.Context) (float64, error)
}
