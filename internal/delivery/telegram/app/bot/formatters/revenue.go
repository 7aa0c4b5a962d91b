// internal/delivery/telegram/app/bot/formatters/revenue.go
package formatters

import (
	"fmt"

	"revenue-ledger-bot/internal/core/domain/revenue"
	"revenue-ledger-bot/internal/infrastructure/persistence/postgres/models"
)

// Названия месяцев для заголовка сводки
var monthNames = []string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// MonthName возвращает название месяца по номеру 1..12
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// RevenueFormatter рендерит страницы списка доходов в Markdown
type RevenueFormatter struct{}

// NewRevenueFormatter создает новый форматтер доходов
func NewRevenueFormatter() *RevenueFormatter {
	return &RevenueFormatter{}
}

// BuildPages строит страницы: страница 0 - сводка, далее по одной на запись
func (f *RevenueFormatter) BuildPages(stats revenue.Stats) []string {
	pages := make([]string, 0, len(stats.Records)+1)
	pages = append(pages, f.BuildSummaryPage(stats))

	for _, rec := range stats.Records {
		pages = append(pages, f.BuildRecordPage(rec))
	}

	return pages
}

// BuildSummaryPage строит сводную страницу за месяц
func (f *RevenueFormatter) BuildSummaryPage(stats revenue.Stats) string {
	return fmt.Sprintf(
		"📊 *Here are the %s's Revenues!*\n\n"+
			"*Total Earned in EUR*\n`Total Earnings: %g€`\n\n"+
			"*Revenues Entry*\n`Entry: %d`\n\n"+
			"*Earnings in EUR*\n`Total: %d€`\n\n"+
			"*Earnings in USD*\n`Total: %d$`",
		MonthName(stats.Month),
		stats.EurEquivalentTotal,
		len(stats.Records),
		stats.EurEarned,
		stats.DollarEarned,
	)
}

// BuildRecordPage строит страницу одной записи
func (f *RevenueFormatter) BuildRecordPage(rec models.Revenue) string {
	return fmt.Sprintf(
		"🧾 *Revenue: %d*\n\n"+
			"*Customer*\n`%s`\n\n"+
			"*Project*\n`%s`\n\n"+
			"*Earnings*\n`Total: %s%s`\n\n"+
			"*Platform*\n`%s`\n\n"+
			"*Earned On*\n%s",
		rec.ID,
		rec.Customer,
		rec.Project,
		rec.Amount,
		rec.Currency,
		rec.Platform,
		rec.Date.Format("02 Jan 2006 15:04"),
	)
}

// BuildAddConfirmation строит подтверждение новой записи
func (f *RevenueFormatter) BuildAddConfirmation(rec *models.Revenue) string {
	return fmt.Sprintf(
		"✅ *You just added a new revenue!*\nHere are the details.\n\n"+
			"*Amount*\n`%s%s`\n\n"+
			"*Platform*\n`%s`\n\n"+
			"*Customer*\n`%s`\n\n"+
			"*Project*\n`%s`\n\n"+
			"*Added on*\n%s",
		rec.Amount,
		rec.Currency,
		rec.Platform,
		rec.Customer,
		rec.Project,
		rec.Date.Format("02 Jan 2006 15:04"),
	)
}
