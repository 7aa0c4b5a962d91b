// internal/delivery/telegram/app/bot/handlers/commands/start/handler.go
package start

import (
	"fmt"

	"revenue-ledger-bot/internal/delivery/telegram/app/bot/constants"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers/base"
)

// startCommandHandler реализация обработчика команды /start
type startCommandHandler struct {
	*base.BaseHandler
}

// NewHandler создает новый обработчик команды /start
func NewHandler() handlers.Handler {
	return &startCommandHandler{
		BaseHandler: &base.BaseHandler{
			Name:    "start_command_handler",
			Command: constants.CommandStart,
			Type:    handlers.TypeCommand,
		},
	}
}

// Execute выполняет обработку команды /start
func (h *startCommandHandler) Execute(params handlers.HandlerParams) (handlers.HandlerResult, error) {
	name := params.Username
	if name == "" {
		name = "there"
	}

	message := fmt.Sprintf(
		"👋 Hi, %s!\n\n"+
			"I keep the books for your freelance revenues.\n\n"+
			"Use /%s to record a new revenue and /%s to see a monthly report.\n"+
			"Type /%s for the full command list.",
		name,
		constants.CommandRevenueAdd,
		constants.CommandRevenueList,
		constants.CommandHelp,
	)

	return handlers.HandlerResult{Message: message}, nil
}
