// internal/delivery/telegram/app/bot/handlers/commands/revenue_add/interface.go
package revenue_add

import (
	"context"

	"revenue-ledger-bot/internal/infrastructure/persistence/postgres/models"
)

// RevenueRepository - зависимость хэндлера от хранилища доходов
type RevenueRepository interface {
	Insert(ctx context.Context, amount int, currency, platform, customer, project string) (*models.Revenue, error)
}
