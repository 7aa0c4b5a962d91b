// internal/delivery/telegram/app/bot/handlers/commands/revenue_list/handler.go
package revenue_list

import (
	"context"
	"strconv"
	"strings"
	"time"

	"revenue-ledger-bot/internal/core/domain/revenue"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/buttons"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/constants"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/formatters"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers/base"
	"revenue-ledger-bot/pkg/logger"
)

const usageText = "Usage: `/revenue_list <month>`\n\nExample: `/revenue_list 3` for March."

// listCommandHandler реализация обработчика команды /revenue_list
type listCommandHandler struct {
	*base.BaseHandler
	repository   RevenueRepository
	rateProvider RateProvider
	formatter    *formatters.RevenueFormatter
	buttons      *buttons.ButtonBuilder
	timeout      time.Duration
}

// NewHandler создает новый обработчик команды /revenue_list
func NewHandler(repository RevenueRepository, rateProvider RateProvider) handlers.Handler {
	return &listCommandHandler{
		BaseHandler: &base.BaseHandler{
			Name:    "revenue_list_command_handler",
			Command: constants.CommandRevenueList,
			Type:    handlers.TypeCommand,
		},
		repository:   repository,
		rateProvider: rateProvider,
		formatter:    formatters.NewRevenueFormatter(),
		buttons:      buttons.NewButtonBuilder(),
		timeout:      15 * time.Second,
	}
}

// Execute выполняет обработку команды /revenue_list.
// В результат кладутся все страницы; сессию листания создает бот
// после отправки сообщения, когда известен его message_id.
func (h *listCommandHandler) Execute(params handlers.HandlerParams) (handlers.HandlerResult, error) {
	args := strings.Fields(params.Text)
	if len(args) != 1 {
		return handlers.HandlerResult{Message: usageText}, nil
	}

	monthArg, err := strconv.Atoi(args[0])
	if err != nil {
		return handlers.HandlerResult{
			Message: "The month must be a number between 1 and 12.",
		}, nil
	}

	month, err := revenue.ValidateMonth(monthArg)
	if err != nil {
		return handlers.HandlerResult{Message: err.Error()}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	records, err := h.repository.FindAll(ctx)
	if err != nil {
		logger.Error("❌ Не удалось прочитать доходы: %v", err)
		return handlers.HandlerResult{
			Message: "❌ Could not load the revenues. Please try again later.",
		}, nil
	}

	rate, err := h.rateProvider.EurUsdRate(ctx)
	if err != nil {
		logger.Error("❌ Не удалось получить курс EUR/USD: %v", err)
		return handlers.HandlerResult{
			Message: "❌ Could not fetch the EUR/USD rate. Please try again later.",
		}, nil
	}

	stats := revenue.CalculateStats(records, month, rate)
	pages := h.formatter.BuildPages(stats)

	return handlers.HandlerResult{
		Message:  pages[0],
		Keyboard: h.buttons.CreateNavigationKeyboard(),
		Pages:    pages,
	}, nil
}
