// internal/delivery/telegram/app/bot/handlers/commands/revenue_del/interface.go
package revenue_del

import "context"

// RevenueRepository - зависимость хэндлера от хранилища доходов
type RevenueRepository interface {
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
