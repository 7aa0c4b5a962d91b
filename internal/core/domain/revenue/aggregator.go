// internal/core/domain/revenue/aggregator.go
package revenue

import (
	"sort"
	"time"

	"revenue-ledger-bot/internal/infrastructure/persistence/postgres/models"
)

// CalculateStats фильтрует записи по календарному месяцу, суммирует их по
// валютам и считает общий итог в EUR по переданному курсу USD→EUR.
// Месяц 1-indexed (1 = январь). Пустой месяц даёт нулевую статистику.
func CalculateStats(records []models.Revenue, month int, rate float64) Stats {
	stats := Stats{Month: month}

	for _, rec := range records {
		if rec.Date.Month() != time.Month(month) {
			continue
		}
		stats.Records = append(stats.Records, rec)

		if rec.Currency == string(CurrencyUSD) {
			stats.DollarEarned += rec.AmountInt()
		} else {
			stats.EurEarned += rec.AmountInt()
		}
	}

	// Сортируем по дате по возрастанию для постраничного вывода
	sort.Slice(stats.Records, func(i, j int) bool {
		return stats.Records[i].Date.Before(stats.Records[j].Date)
	})

	stats.EurEquivalentTotal = float64(stats.EurEarned) + float64(stats.DollarEarned)*rate

	return stats
}
