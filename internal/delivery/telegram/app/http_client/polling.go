// internal/delivery/telegram/app/http_client/polling.go
package http_client

import (
	"net/http"
	"strconv"
	"time"
)

// PollingClient клиент для polling запросов с увеличенным таймаутом
type PollingClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewPollingClient создает новый клиент для polling
func NewPollingClient(baseURL string, pollTimeout int) *PollingClient {
	return &PollingClient{
		httpClient: &http.Client{
			// Больше чем timeout long-polling в Telegram
			Timeout: time.Duration(pollTimeout+5) * time.Second,
		},
		baseURL: baseURL,
	}
}

// GetUpdates выполняет GET запрос для получения обновлений
func (c *PollingClient) GetUpdates(offset, limit, timeout int) (*http.Response, error) {
	fullURL := c.baseURL + "getUpdates" +
		"?offset=" + strconv.Itoa(offset) +
		"&limit=" + strconv.Itoa(limit) +
		"&timeout=" + strconv.Itoa(timeout)
	return c.httpClient.Get(fullURL)
}
