// internal/delivery/telegram/app/bot/handlers/commands/revenue_add/handler.go
package revenue_add

import (
	"context"
	"strconv"
	"strings"
	"time"

	"revenue-ledger-bot/internal/core/domain/revenue"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/constants"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/formatters"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers/base"
	"revenue-ledger-bot/pkg/logger"
)

const usageText = "Usage: `/revenue_add <amount> <currency> <platform> <customer> <project>`\n\n" +
	"Example: `/revenue_add 100 € fiverr Acme Landing page`"

// addCommandHandler реализация обработчика команды /revenue_add
type addCommandHandler struct {
	*base.BaseHandler
	repository RevenueRepository
	formatter  *formatters.RevenueFormatter
	timeout    time.Duration
}

// NewHandler создает новый обработчик команды /revenue_add
func NewHandler(repository RevenueRepository) handlers.Handler {
	return &addCommandHandler{
		BaseHandler: &base.BaseHandler{
			Name:    "revenue_add_command_handler",
			Command: constants.CommandRevenueAdd,
			Type:    handlers.TypeCommand,
		},
		repository: repository,
		formatter:  formatters.NewRevenueFormatter(),
		timeout:    10 * time.Second,
	}
}

// Execute выполняет обработку команды /revenue_add
func (h *addCommandHandler) Execute(params handlers.HandlerParams) (handlers.HandlerResult, error) {
	args := strings.Fields(params.Text)
	if len(args) < 5 {
		return handlers.HandlerResult{Message: usageText}, nil
	}

	amount, err := strconv.Atoi(args[0])
	if err != nil {
		return handlers.HandlerResult{
			Message: "The amount must be a whole number.\n\n" + usageText,
		}, nil
	}

	currency, err := revenue.ValidateCurrency(args[1])
	if err != nil {
		return handlers.HandlerResult{Message: err.Error()}, nil
	}

	platform, err := revenue.ValidatePlatform(args[2])
	if err != nil {
		return handlers.HandlerResult{Message: err.Error()}, nil
	}

	newRevenue := revenue.NewRevenue{
		Amount:   amount,
		Currency: currency,
		Platform: platform,
		Customer: args[3],
		Project:  strings.Join(args[4:], " "),
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	// Подтверждение отправляется только после успешной записи
	record, err := h.repository.Insert(ctx,
		newRevenue.Amount,
		string(newRevenue.Currency),
		string(newRevenue.Platform),
		newRevenue.Customer,
		newRevenue.Project,
	)
	if err != nil {
		logger.Error("❌ Не удалось сохранить доход: %v", err)
		return handlers.HandlerResult{
			Message: "❌ Could not save the revenue. Please try again later.",
		}, nil
	}

	return handlers.HandlerResult{
		Message: h.formatter.BuildAddConfirmation(record),
	}, nil
}
