// internal/delivery/telegram/app/bot/handlers/types.go
package handlers

import "revenue-ledger-bot/internal/delivery/telegram"

// HandlerType тип хэндлера
type HandlerType string

const (
	TypeCommand  HandlerType = "command"
	TypeCallback HandlerType = "callback"
)

// Handler интерфейс для всех хэндлеров
type Handler interface {
	Execute(params HandlerParams) (HandlerResult, error)
	GetName() string
	GetCommand() string // Может быть и командой и callback'ом
	GetType() HandlerType
}

// HandlerParams базовые параметры для всех хэндлеров
type HandlerParams struct {
	UserID     int64
	Username   string
	ChatID     int64
	MessageID  int64  // сообщение, по которому пришел callback
	Text       string // текст сообщения без команды (аргументы)
	Data       string // данные callback'а
	CallbackID string // ID callback запроса
}

// HandlerResult базовый результат хэндлера
type HandlerResult struct {
	Message      string
	Keyboard     *telegram.InlineKeyboardMarkup
	Pages        []string // при наличии бот создает сессию листания под отправленным сообщением
	Edit         bool     // редактировать сообщение callback'а вместо отправки нового
	CallbackText string   // текст для answerCallbackQuery
}
