// internal/delivery/telegram/app/bot/handlers/router/interface.go
package router

import "revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers"

// Router маршрутизирует команды и callback'и по хэндлерам
type Router interface {
	RegisterHandler(handler handlers.Handler)
	Handle(command string, params handlers.HandlerParams) (handlers.HandlerResult, error)
	GetHandler(command string) (handlers.Handler, bool)
	GetCommands() []string
}
