// internal/infrastructure/api/exchanges/binance/client.go
package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"revenue-ledger-bot/internal/infrastructure/config"
)

// BinanceClient - клиент для API Binance
type BinanceClient struct {
	httpClient *http.Client
	baseURL    string
}

// BinanceTickerResponse - ответ от Binance API для тикера 24hr
type BinanceTickerResponse struct {
	Symbol             string `json:"symbol"`
	PriceChange        string `json:"priceChange"`
	PriceChangePercent string `json:"priceChangePercent"`
	WeightedAvgPrice   string `json:"weightedAvgPrice"`
	PrevClosePrice     string `json:"prevClosePrice"`
	LastPrice          string `json:"lastPrice"`
	OpenPrice          string `json:"openPrice"`
	HighPrice          string `json:"highPrice"`
	LowPrice           string `json:"lowPrice"`
	Volume             string `json:"volume"`
	QuoteVolume        string `json:"quoteVolume"`
	OpenTime           int64  `json:"openTime"`
	CloseTime          int64  `json:"closeTime"`
	Count              int64  `json:"count"`
}

// NewBinanceClient создает нового клиента для Binance
func NewBinanceClient(cfg *config.Config) *BinanceClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.binance.com"
	}

	return &BinanceClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
	}
}

// PrevClose получает цену закрытия предыдущего дня по символу
func (c *BinanceClient) PrevClose(ctx context.Context, symbol string) (float64, error) {
	url := fmt.Sprintf("%s/api/v3/ticker/24hr?symbol=%s", c.baseURL, symbol)

	response, err := c.makeRequest(ctx, url)
	if err != nil {
		return 0, err
	}

	var ticker BinanceTickerResponse
	if err := json.Unmarshal(response, &ticker); err != nil {
		return 0, fmt.Errorf("failed to parse binance response: %w", err)
	}

	price, err := strconv.ParseFloat(ticker.PrevClosePrice, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse prev close price %q: %w", ticker.PrevClosePrice, err)
	}

	return price, nil
}

// makeRequest выполняет HTTP запрос
func (c *BinanceClient) makeRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "RevenueLedgerBot/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("binance API returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return body, nil
}
