// internal/delivery/telegram/app/bot/handlers/commands/revenue_del/handler.go
package revenue_del

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"revenue-ledger-bot/internal/delivery/telegram/app/bot/constants"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers/base"
	"revenue-ledger-bot/pkg/logger"
)

const usageText = "Usage: `/revenue_del <id>`\n\nThe id is shown on each revenue page of /revenue_list."

// delCommandHandler реализация обработчика команды /revenue_del
type delCommandHandler struct {
	*base.BaseHandler
	repository RevenueRepository
	timeout    time.Duration
}

// NewHandler создает новый обработчик команды /revenue_del
func NewHandler(repository RevenueRepository) handlers.Handler {
	return &delCommandHandler{
		BaseHandler: &base.BaseHandler{
			Name:    "revenue_del_command_handler",
			Command: constants.CommandRevenueDel,
			Type:    handlers.TypeCommand,
		},
		repository: repository,
		timeout:    10 * time.Second,
	}
}

// Execute выполняет обработку команды /revenue_del
func (h *delCommandHandler) Execute(params handlers.HandlerParams) (handlers.HandlerResult, error) {
	args := strings.Fields(params.Text)
	if len(args) != 1 {
		return handlers.HandlerResult{Message: usageText}, nil
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return handlers.HandlerResult{
			Message: "The id must be a positive number.\n\n" + usageText,
		}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	deleted, err := h.repository.DeleteByID(ctx, id)
	if err != nil {
		logger.Error("❌ Не удалось удалить доход %d: %v", id, err)
		return handlers.HandlerResult{
			Message: "❌ Could not delete the revenue. Please try again later.",
		}, nil
	}

	if !deleted {
		return handlers.HandlerResult{
			Message: fmt.Sprintf("Revenue `%d` was not found.", id),
		}, nil
	}

	return handlers.HandlerResult{
		Message: fmt.Sprintf("🗑 Revenue `%d` has been deleted.", id),
	}, nil
}
