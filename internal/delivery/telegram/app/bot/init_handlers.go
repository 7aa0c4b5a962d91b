// internal/delivery/telegram/app/bot/init_handlers.go
package bot

import (
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/constants"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers/callbacks/page_nav"
	help_command "revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers/commands/help"
	revenue_add_command "revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers/commands/revenue_add"
	revenue_del_command "revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers/commands/revenue_del"
	revenue_list_command "revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers/commands/revenue_list"
	start_command "revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers/commands/start"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers/router"
	"revenue-ledger-bot/pkg/logger"
)

// registerHandlers регистрирует все хэндлеры команд и callback'ов
func registerHandlers(r router.Router, deps *Dependencies) {
	logger.Info("🔧 Регистрация хэндлеров...")

	// Команды
	r.RegisterHandler(start_command.NewHandler())
	r.RegisterHandler(help_command.NewHandler())
	r.RegisterHandler(revenue_add_command.NewHandler(deps.RevenueRepository))
	r.RegisterHandler(revenue_del_command.NewHandler(deps.RevenueRepository))
	r.RegisterHandler(revenue_list_command.NewHandler(deps.RevenueRepository, deps.RateProvider))

	// Callback'и навигации по страницам
	for _, callback := range []string{
		constants.CallbackPageFirst,
		constants.CallbackPagePrev,
		constants.CallbackPageNext,
		constants.CallbackPageLast,
	} {
		r.RegisterHandler(page_nav.NewHandler(callback, deps.SessionStore))
	}

	logger.Info("✅ Зарегистрировано хэндлеров: %d", len(r.GetCommands()))
}
