// internal/delivery/telegram/app/bot/handlers/callbacks/page_nav/handler.go
package page_nav

import (
	"context"
	"fmt"
	"sync"
	"time"

	"revenue-ledger-bot/internal/core/domain/pagination"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/buttons"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/constants"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers/base"
	"revenue-ledger-bot/pkg/logger"
)

// Сопоставление callback'ов навигационным сигналам
var navSignals = map[string]pagination.NavSignal{
	constants.CallbackPageFirst: pagination.NavFirst,
	constants.CallbackPagePrev:  pagination.NavPrev,
	constants.CallbackPageNext:  pagination.NavNext,
	constants.CallbackPageLast:  pagination.NavLast,
}

// navCallbackHandler обрабатывает кнопки листания списка доходов
type navCallbackHandler struct {
	*base.BaseHandler
	callback string
	store    pagination.Store
	buttons  *buttons.ButtonBuilder
	timeout  time.Duration
}

// locks сериализует обновления одной сессии, чтобы параллельные
// нажатия не потеряли прочитанный индекс страницы.
// Разделяется всеми четырьмя хэндлерами навигации.
type locks struct {
	mu       sync.Mutex
	sessions map[string]*sync.Mutex
}

var sessionLocks = &locks{sessions: make(map[string]*sync.Mutex)}

func (l *locks) forKey(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.sessions[key]
	if !ok {
		m = &sync.Mutex{}
		l.sessions[key] = m
	}
	return m
}

// NewHandler создает обработчик одного навигационного callback'а
func NewHandler(callback string, store pagination.Store) handlers.Handler {
	return &navCallbackHandler{
		BaseHandler: &base.BaseHandler{
			Name:    callback + "_callback_handler",
			Command: callback,
			Type:    handlers.TypeCallback,
		},
		callback: callback,
		store:    store,
		buttons:  buttons.NewButtonBuilder(),
		timeout:  10 * time.Second,
	}
}

// Execute применяет навигационный сигнал к сессии листания
func (h *navCallbackHandler) Execute(params handlers.HandlerParams) (handlers.HandlerResult, error) {
	signal, ok := navSignals[h.callback]
	if !ok {
		return handlers.HandlerResult{}, fmt.Errorf("unknown navigation callback: %s", h.callback)
	}

	sessionKey := fmt.Sprintf("%d:%d", params.ChatID, params.MessageID)
	lock := sessionLocks.forKey(sessionKey)
	lock.Lock()
	defer lock.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	session, err := h.store.Get(ctx, params.ChatID, params.MessageID)
	if err != nil {
		logger.Error("❌ Не удалось загрузить сессию листания %s: %v", sessionKey, err)
		return handlers.HandlerResult{CallbackText: "Something went wrong."}, nil
	}
	if session == nil {
		return handlers.HandlerResult{
			CallbackText: "This list has expired. Run /revenue_list again.",
		}, nil
	}

	if !session.Apply(signal, params.UserID) {
		// Нажатие чужого пользователя или выход за границы: без видимого эффекта
		return handlers.HandlerResult{}, nil
	}

	if err := h.store.Save(ctx, session); err != nil {
		logger.Error("❌ Не удалось сохранить сессию листания %s: %v", sessionKey, err)
		return handlers.HandlerResult{CallbackText: "Something went wrong."}, nil
	}

	return handlers.HandlerResult{
		Message:  session.CurrentPage(),
		Keyboard: h.buttons.CreateNavigationKeyboard(),
		Edit:     true,
	}, nil
}
