// internal/delivery/telegram/app/bot/bot.go
package bot

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"revenue-ledger-bot/internal/core/domain/pagination"
	"revenue-ledger-bot/internal/delivery/telegram"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/constants"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers/router"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/message_sender"
	telegram_http "revenue-ledger-bot/internal/delivery/telegram/app/http_client"
	"revenue-ledger-bot/internal/fetcher"
	"revenue-ledger-bot/internal/infrastructure/config"
	revenue_repo "revenue-ledger-bot/internal/infrastructure/persistence/postgres/repository/revenue"
	"revenue-ledger-bot/pkg/logger"
)

// TelegramBot - бот учёта доходов
type TelegramBot struct {
	config *config.Config

	pollingClient *telegram_http.PollingClient
	messageSender message_sender.MessageSender
	router        router.Router

	sessionStore pagination.Store
	sessionTTL   time.Duration

	pollingHandler *PollingHandler

	mu          sync.Mutex
	startupTime time.Time
}

// Dependencies зависимости для TelegramBot
type Dependencies struct {
	RevenueRepository revenue_repo.Repository
	RateProvider      fetcher.RateProvider
	SessionStore      pagination.Store
}

// NewTelegramBot создает новый экземпляр TelegramBot
func NewTelegramBot(cfg *config.Config, deps *Dependencies) *TelegramBot {
	ms := message_sender.NewMessageSender(cfg)

	baseURL := "https://api.telegram.org/bot" + cfg.Telegram.BotToken + "/"
	pollingClient := telegram_http.NewPollingClient(baseURL, cfg.Polling.Timeout)

	r := router.NewRouter()
	registerHandlers(r, deps)

	bot := &TelegramBot{
		config:        cfg,
		pollingClient: pollingClient,
		messageSender: ms,
		router:        r,
		sessionStore:  deps.SessionStore,
		sessionTTL:    cfg.Redis.PageSessionTTL,
		startupTime:   time.Now(),
	}

	bot.pollingHandler = NewPollingHandler(bot)

	// Устанавливаем меню команд Telegram
	if err := bot.SetMyCommands(); err != nil {
		logger.Warn("⚠️ Не удалось установить меню команд: %v", err)
	}

	return bot
}

// Start запускает получение обновлений
func (b *TelegramBot) Start() error {
	return b.pollingHandler.Start()
}

// Stop останавливает получение обновлений
func (b *TelegramBot) Stop() error {
	return b.pollingHandler.Stop()
}

// HandleUpdate обрабатывает обновление от Telegram
func (b *TelegramBot) HandleUpdate(update *telegram.TelegramUpdate) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case update.Message != nil && update.Message.Text != "":
		return b.handleMessage(update.Message)
	case update.CallbackQuery != nil:
		return b.handleCallback(update.CallbackQuery)
	default:
		return nil // Игнорируем другие типы обновлений
	}
}

// handleMessage обрабатывает входящее текстовое сообщение
func (b *TelegramBot) handleMessage(msg *telegram.Message) error {
	if !strings.HasPrefix(msg.Text, "/") {
		return nil
	}

	command, args := splitCommand(msg.Text)
	logger.Command(command, msg.From.ID)

	params := handlers.HandlerParams{
		UserID:    msg.From.ID,
		Username:  msg.From.Username,
		ChatID:    msg.Chat.ID,
		MessageID: msg.MessageID,
		Text:      args,
	}

	result, err := b.router.Handle(command, params)
	if err != nil {
		return b.messageSender.SendTextMessage(msg.Chat.ID,
			"Unknown command. Type /help to see what I can do.", nil)
	}

	// Для листаемых ответов нужен message_id, чтобы привязать сессию
	if len(result.Pages) > 0 {
		messageID, err := b.messageSender.SendMessageWithID(msg.Chat.ID, result.Message, result.Keyboard)
		if err != nil {
			return err
		}
		return b.createPageSession(msg.Chat.ID, messageID, msg.From.ID, result.Pages)
	}

	return b.messageSender.SendTextMessage(msg.Chat.ID, result.Message, result.Keyboard)
}

// handleCallback обрабатывает нажатие inline кнопки
func (b *TelegramBot) handleCallback(callback *telegram.CallbackQuery) error {
	if callback.Message == nil {
		return b.messageSender.AnswerCallback(callback.ID, "", false)
	}

	params := handlers.HandlerParams{
		UserID:     callback.From.ID,
		Username:   callback.From.Username,
		ChatID:     callback.Message.Chat.ID,
		MessageID:  callback.Message.MessageID,
		Data:       callback.Data,
		CallbackID: callback.ID,
	}

	result, err := b.router.Handle(callback.Data, params)
	if err != nil {
		return b.messageSender.AnswerCallback(callback.ID, "Something went wrong.", false)
	}

	if result.Edit {
		if err := b.messageSender.EditMessageText(
			params.ChatID, params.MessageID, result.Message, result.Keyboard); err != nil {
			logger.Error("❌ Не удалось обновить страницу: %v", err)
		}
	}

	return b.messageSender.AnswerCallback(callback.ID, result.CallbackText, result.CallbackText != "")
}

// createPageSession создает сессию листания под отправленным сообщением
func (b *TelegramBot) createPageSession(chatID, messageID, ownerID int64, pages []string) error {
	if messageID == 0 {
		return nil // Telegram отключен, сообщение не отправлялось
	}

	session := pagination.NewSession(chatID, messageID, ownerID, pages, b.sessionTTL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := b.sessionStore.Create(ctx, session); err != nil {
		return fmt.Errorf("failed to create page session: %w", err)
	}

	logger.Debug("📄 Создана сессия листания %s (%d страниц)", session.ID, len(pages))
	return nil
}

// SetMyCommands устанавливает меню команд бота
func (b *TelegramBot) SetMyCommands() error {
	order := []string{
		constants.CommandStart,
		constants.CommandHelp,
		constants.CommandRevenueAdd,
		constants.CommandRevenueDel,
		constants.CommandRevenueList,
	}

	commands := make([]telegram.BotCommand, 0, len(order))
	for _, cmd := range order {
		commands = append(commands, telegram.BotCommand{
			Command:     cmd,
			Description: constants.CommandDescriptions[cmd],
		})
	}

	return b.messageSender.SetMyCommands(commands)
}

// splitCommand выделяет команду и аргументы из текста сообщения.
// Суффикс @botname у команды отбрасывается.
func splitCommand(text string) (string, string) {
	parts := strings.SplitN(text, " ", 2)

	command := parts[0]
	if at := strings.Index(command, "@"); at > 0 {
		command = command[:at]
	}

	args := ""
	if len(parts) > 1 {
		args = strings.TrimSpace(parts[1])
	}

	return command, args
}
