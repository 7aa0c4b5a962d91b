// internal/delivery/telegram/app/bot/polling.go
package bot

import (
	"encoding/json"
	"fmt"
	"time"

	"revenue-ledger-bot/internal/delivery/telegram"
	"revenue-ledger-bot/pkg/logger"
)

// PollingHandler - long-polling цикл получения обновлений
type PollingHandler struct {
	bot      *TelegramBot
	offset   int
	running  bool
	stopChan chan struct{}
}

// NewPollingHandler создает новый polling цикл
func NewPollingHandler(bot *TelegramBot) *PollingHandler {
	return &PollingHandler{
		bot:      bot,
		offset:   0,
		stopChan: make(chan struct{}),
	}
}

// Start запускает polling обновлений
func (ph *PollingHandler) Start() error {
	if ph.running {
		return fmt.Errorf("polling already running")
	}

	ph.running = true
	logger.Info("🔄 Запуск Telegram polling...")

	go ph.pollLoop()

	return nil
}

// Stop останавливает polling обновлений
func (ph *PollingHandler) Stop() error {
	if !ph.running {
		return nil
	}

	ph.running = false
	close(ph.stopChan)
	logger.Info("🛑 Остановка Telegram polling...")

	return nil
}

// pollLoop основной цикл polling
func (ph *PollingHandler) pollLoop() {
	retryInterval := time.Duration(ph.bot.config.Polling.RetryInterval) * time.Second

	for ph.running {
		select {
		case <-ph.stopChan:
			return
		default:
			if err := ph.fetchUpdates(); err != nil {
				logger.Error("❌ Ошибка получения обновлений: %v", err)
				time.Sleep(retryInterval)
			}
		}
	}
}

// fetchUpdates получает и обрабатывает пачку обновлений
func (ph *PollingHandler) fetchUpdates() error {
	resp, err := ph.bot.pollingClient.GetUpdates(
		ph.offset,
		ph.bot.config.Polling.Limit,
		ph.bot.config.Polling.Timeout,
	)
	if err != nil {
		return fmt.Errorf("failed to fetch updates: %w", err)
	}
	defer resp.Body.Close()

	var result telegram.UpdatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode updates: %w", err)
	}

	if !result.OK {
		return fmt.Errorf("telegram getUpdates returned not ok")
	}

	for i := range result.Result {
		update := &result.Result[i]

		if err := ph.bot.HandleUpdate(update); err != nil {
			logger.Error("❌ Ошибка обработки обновления %d: %v", update.UpdateID, err)
		}

		ph.offset = update.UpdateID + 1
	}

	return nil
}
