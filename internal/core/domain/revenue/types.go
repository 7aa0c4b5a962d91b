// internal/core/domain/revenue/types.go
package revenue

import "revenue-ledger-bot/internal/infrastructure/persistence/postgres/models"

// Currency - валюта дохода (символ, как его вводит пользователь)
type Currency string

const (
	CurrencyEUR Currency = "€"
	CurrencyUSD Currency = "$"
)

// Platform - платформа, через которую получен доход
type Platform string

const (
	PlatformFiverr   Platform = "fiverr"
	PlatformPaypal   Platform = "paypal"
	PlatformTransfer Platform = "transfer"
	PlatformUpwork   Platform = "upwork"
)

// Доступные значения для валидации
var (
	AvailableCurrencies = []Currency{CurrencyEUR, CurrencyUSD}
	AvailablePlatforms  = []Platform{PlatformFiverr, PlatformPaypal, PlatformTransfer, PlatformUpwork}
)

// NewRevenue - проверенные данные нового дохода до сохранения
type NewRevenue struct {
	Amount   int
	Currency Currency
	Platform Platform
	Customer string
	Project  string
}

// Stats - агрегированная статистика доходов за месяц
type Stats struct {
	Month              int              // запрошенный месяц, 1-12
	Records            []models.Revenue // записи месяца, отсортированы по дате по возрастанию
	EurEarned          int              // сумма в EUR
	DollarEarned       int              // сумма в USD
	EurEquivalentTotal float64          // общий итог в EUR с учётом курса
}
