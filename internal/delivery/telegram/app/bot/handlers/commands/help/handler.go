// internal/delivery/telegram/app/bot/handlers/commands/help/handler.go
package help

import (
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/constants"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers/base"
)

// helpCommandHandler реализация обработчика команды /help
type helpCommandHandler struct {
	*base.BaseHandler
}

// NewHandler создает новый обработчик команды /help
func NewHandler() handlers.Handler {
	return &helpCommandHandler{
		BaseHandler: &base.BaseHandler{
			Name:    "help_command_handler",
			Command: constants.CommandHelp,
			Type:    handlers.TypeCommand,
		},
	}
}

// Execute выполняет обработку команды /help
func (h *helpCommandHandler) Execute(params handlers.HandlerParams) (handlers.HandlerResult, error) {
	message := "📋 *Available commands*\n\n" +
		"/revenue\\_add `<amount> <currency> <platform> <customer> <project>` - Add a new revenue\n" +
		"/revenue\\_del `<id>` - Delete a revenue record\n" +
		"/revenue\\_list `<month>` - Show revenues for a month (1-12)\n" +
		"/help - Show this message\n\n" +
		"*Currencies:* € - $\n" +
		"*Platforms:* fiverr - paypal - transfer - upwork\n\n" +
		"Example:\n`/revenue_add 100 € fiverr Acme Landing page`"

	return handlers.HandlerResult{Message: message}, nil
}
