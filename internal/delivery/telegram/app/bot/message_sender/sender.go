// internal/delivery/telegram/app/bot/message_sender/sender.go
package message_sender

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"revenue-ledger-bot/internal/delivery/telegram"
	"revenue-ledger-bot/internal/delivery/telegram/app/http_client"
	"revenue-ledger-bot/internal/infrastructure/config"
	"revenue-ledger-bot/pkg/logger"
)

// MessageSender интерфейс для отправки сообщений
type MessageSender interface {
	SendTextMessage(chatID int64, text string, keyboard *telegram.InlineKeyboardMarkup) error
	// SendMessageWithID возвращает message_id отправленного сообщения
	SendMessageWithID(chatID int64, text string, keyboard *telegram.InlineKeyboardMarkup) (int64, error)
	EditMessageText(chatID, messageID int64, text string, keyboard *telegram.InlineKeyboardMarkup) error
	AnswerCallback(callbackID, text string, showAlert bool) error
	SetMyCommands(commands []telegram.BotCommand) error
}

// MessageSenderImpl реализация MessageSender
type MessageSenderImpl struct {
	client      *http_client.TelegramClient
	rateLimiter *RateLimiter
	enabled     bool
	logger      *logger.Logger
}

// NewMessageSender создает новый MessageSender
func NewMessageSender(cfg *config.Config) MessageSender {
	baseURL := fmt.Sprintf("https://api.telegram.org/bot%s/", cfg.Telegram.BotToken)

	return &MessageSenderImpl{
		client:      http_client.NewTelegramClient(baseURL),
		rateLimiter: NewRateLimiter(200 * time.Millisecond),
		enabled:     cfg.Telegram.Enabled,
		logger:      logger.GetLogger(),
	}
}

// SendTextMessage отправляет текстовое сообщение
func (ms *MessageSenderImpl) SendTextMessage(chatID int64, text string, keyboard *telegram.InlineKeyboardMarkup) error {
	_, err := ms.SendMessageWithID(chatID, text, keyboard)
	return err
}

// SendMessageWithID отправляет сообщение и возвращает его message_id
func (ms *MessageSenderImpl) SendMessageWithID(chatID int64, text string, keyboard *telegram.InlineKeyboardMarkup) (int64, error) {
	if !ms.enabled {
		ms.logger.Warn("⚠️ Telegram отключен, пропуск отправки сообщения")
		return 0, nil
	}

	request := map[string]interface{}{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "Markdown",
	}
	if keyboard != nil {
		request["reply_markup"] = keyboard
	}

	resp, err := ms.sendTelegramRequest("sendMessage", request)
	if err != nil {
		ms.logger.Error("❌ Ошибка отправки сообщения: %v", err)
		return 0, err
	}

	return resp.Result.MessageID, nil
}

// EditMessageText редактирует текст сообщения
func (ms *MessageSenderImpl) EditMessageText(chatID, messageID int64, text string, keyboard *telegram.InlineKeyboardMarkup) error {
	if !ms.enabled {
		return nil
	}

	request := map[string]interface{}{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
		"parse_mode": "Markdown",
	}
	if keyboard != nil {
		request["reply_markup"] = keyboard
	}

	_, err := ms.sendTelegramRequest("editMessageText", request)
	return err
}

// AnswerCallback отвечает на callback запрос
func (ms *MessageSenderImpl) AnswerCallback(callbackID, text string, showAlert bool) error {
	if !ms.enabled {
		return nil
	}

	request := map[string]interface{}{
		"callback_query_id": callbackID,
	}
	if text != "" {
		request["text"] = text
		request["show_alert"] = showAlert
	}

	_, err := ms.sendTelegramRequest("answerCallbackQuery", request)
	return err
}

// SetMyCommands устанавливает меню команд бота
func (ms *MessageSenderImpl) SetMyCommands(commands []telegram.BotCommand) error {
	if !ms.enabled {
		return nil
	}

	request := telegram.SetMyCommandsParams{Commands: commands}
	payload, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal commands: %w", err)
	}

	return ms.postRaw("setMyCommands", payload)
}

// sendTelegramRequest отправляет запрос и разбирает ответ API
func (ms *MessageSenderImpl) sendTelegramRequest(method string, request map[string]interface{}) (*telegram.TelegramResponse, error) {
	ms.rateLimiter.Wait()

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := ms.client.Post(method, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", method, err)
	}

	var apiResp telegram.TelegramResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", method, err)
	}

	if !apiResp.OK {
		return nil, fmt.Errorf("telegram API error %d: %s", apiResp.ErrorCode, apiResp.Description)
	}

	return &apiResp, nil
}

// postRaw отправляет готовый payload без разбора результата
func (ms *MessageSenderImpl) postRaw(method string, payload []byte) error {
	ms.rateLimiter.Wait()

	resp, err := ms.client.Post(method, payload)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", method, err)
	}
	defer resp.Body.Close()

	var apiResp telegram.TelegramResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", method, err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram API error %d: %s", apiResp.ErrorCode, apiResp.Description)
	}

	return nil
}

var _ MessageSender = (*MessageSenderImpl)(nil)
