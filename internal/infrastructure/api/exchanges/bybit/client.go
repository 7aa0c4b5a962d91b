// internal/infrastructure/api/exchanges/bybit/client.go
package bybit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"revenue-ledger-bot/internal/infrastructure/config"
)

// BybitClient - клиент для работы с API Bybit
type BybitClient struct {
	httpClient *http.Client
	baseURL    string
	category   string
}

// BybitTickerResponse - ответ от Bybit API v5 для тикеров
type BybitTickerResponse struct {
	RetCode int    `json:"retCode"`
	RetMsg  string `json:"retMsg"`
	Result  struct {
		Category string        `json:"category"`
		List     []BybitTicker `json:"list"`
	} `json:"result"`
}

// BybitTicker - один тикер из ответа Bybit
type BybitTicker struct {
	Symbol       string `json:"symbol"`
	LastPrice    string `json:"lastPrice"`
	PrevPrice24h string `json:"prevPrice24h"`
	HighPrice24h string `json:"highPrice24h"`
	LowPrice24h  string `json:"lowPrice24h"`
	Volume24h    string `json:"volume24h"`
	Turnover24h  string `json:"turnover24h"`
}

// NewBybitClient создает новый клиент для работы с API Bybit
func NewBybitClient(cfg *config.Config) *BybitClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.bybit.com"
	}

	return &BybitClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		category:   "spot",
	}
}

// PrevClose получает цену 24 часа назад по символу
func (c *BybitClient) PrevClose(ctx context.Context, symbol string) (float64, error) {
	params := url.Values{}
	params.Set("category", c.category)
	params.Set("symbol", symbol)

	response, err := c.sendPublicRequest(ctx, "/v5/market/tickers", params)
	if err != nil {
		return 0, err
	}

	var tickerResp BybitTickerResponse
	if err := json.Unmarshal(response, &tickerResp); err != nil {
		return 0, fmt.Errorf("failed to parse bybit response: %w", err)
	}

	if tickerResp.RetCode != 0 {
		return 0, fmt.Errorf("bybit API error %d: %s", tickerResp.RetCode, tickerResp.RetMsg)
	}

	if len(tickerResp.Result.List) == 0 {
		return 0, fmt.Errorf("bybit returned no ticker for symbol %s", symbol)
	}

	price, err := strconv.ParseFloat(tickerResp.Result.List[0].PrevPrice24h, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse prev price %q: %w", tickerResp.Result.List[0].PrevPrice24h, err)
	}

	return price, nil
}

// sendPublicRequest отправляет публичный запрос
func (c *BybitClient) sendPublicRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	apiURL := c.baseURL + endpoint
	if len(params) > 0 {
		apiURL = apiURL + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "RevenueLedgerBot/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bybit API returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return body, nil
}
