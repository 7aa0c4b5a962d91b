// internal/delivery/telegram/app/bot/handlers/router/router.go
package router

import (
	"fmt"
	"strings"

	"revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers"
	"revenue-ledger-bot/pkg/logger"
)

// routerImpl реализация Router
type routerImpl struct {
	handlers map[string]handlers.Handler // ключ: команда/callback
}

// NewRouter создает новый роутер
func NewRouter() Router {
	return &routerImpl{
		handlers: make(map[string]handlers.Handler),
	}
}

// RegisterHandler регистрирует хэндлер (использует GetCommand())
func (r *routerImpl) RegisterHandler(handler handlers.Handler) {
	command := handler.GetCommand()

	// Для команд добавляем префикс /
	if handler.GetType() == handlers.TypeCommand && command[0] != '/' {
		command = "/" + command
	}

	r.handlers[command] = handler
	logger.Debug("Зарегистрирован хэндлер: %s для %s: %s",
		handler.GetName(), handler.GetType(), command)
}

// Handle обрабатывает команду/callback
func (r *routerImpl) Handle(command string, params handlers.HandlerParams) (handlers.HandlerResult, error) {
	// Пробуем найти точное совпадение
	handler, exists := r.handlers[command]
	if exists {
		return r.executeHandler(handler, command, params)
	}

	// Пробуем найти обработчик по префиксу (для callback-ов с параметрами)
	for key, h := range r.handlers {
		if strings.HasPrefix(command, key+":") {
			params.Data = command
			logger.Debug("Перенаправление по префиксу '%s' в %s", command, key)
			return r.executeHandler(h, command, params)
		}
	}

	// Пробуем найти команду без префикса /
	if command[0] == '/' {
		handler, exists = r.handlers[command[1:]]
	} else {
		handler, exists = r.handlers["/"+command]
	}

	if exists {
		return r.executeHandler(handler, command, params)
	}

	return handlers.HandlerResult{},
		fmt.Errorf("хэндлер для '%s' не найден", command)
}

// executeHandler выполняет обработчик
func (r *routerImpl) executeHandler(handler handlers.Handler, command string, params handlers.HandlerParams) (handlers.HandlerResult, error) {
	logger.Debug("Вызов хэндлера: %s для: %s", handler.GetName(), command)

	result, err := handler.Execute(params)
	if err != nil {
		logger.Error("Ошибка в хэндлере %s для %s: %v",
			handler.GetName(), command, err)
		return handlers.HandlerResult{}, err
	}

	logger.Debug("Хэндлер %s для %s выполнен успешно",
		handler.GetName(), command)
	return result, nil
}

// GetHandler возвращает хэндлер по команде/callback
func (r *routerImpl) GetHandler(command string) (handlers.Handler, bool) {
	handler, exists := r.handlers[command]
	return handler, exists
}

// GetCommands возвращает список всех команд (с /)
func (r *routerImpl) GetCommands() []string {
	commands := make([]string, 0, len(r.handlers))
	for cmd := range r.handlers {
		commands = append(commands, cmd)
	}
	return commands
}

var _ Router = (*routerImpl)(nil)
