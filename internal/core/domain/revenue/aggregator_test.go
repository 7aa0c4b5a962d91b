package revenue

import (
	"testing"
	"time"

	"revenue-ledger-bot/internal/infrastructure/persistence/postgres/models"
)

func record(id int64, amount, currency string, date time.Time) models.Revenue {
	return models.Revenue{
		ID:       id,
		Amount:   amount,
		Currency: currency,
		Platform: "fiverr",
		Customer: "Acme",
		Project:  "Site",
		Date:     date,
	}
}

func TestCalculateStats_MixedCurrencies(t *testing.T) {
	march := time.Date(2022, time.March, 5, 12, 0, 0, 0, time.UTC)
	records := []models.Revenue{
		record(1, "50", "€", march),
		record(2, "20", "$", march.Add(24*time.Hour)),
		record(3, "999", "€", time.Date(2022, time.April, 1, 0, 0, 0, 0, time.UTC)),
	}

	stats := CalculateStats(records, 3, 1.1)

	if stats.EurEarned != 50 {
		t.Errorf("EurEarned = %d, want 50", stats.EurEarned)
	}
	if stats.DollarEarned != 20 {
		t.Errorf("DollarEarned = %d, want 20", stats.DollarEarned)
	}
	if stats.EurEquivalentTotal != 72 {
		t.Errorf("EurEquivalentTotal = %v, want 72", stats.EurEquivalentTotal)
	}
	if len(stats.Records) != 2 {
		t.Errorf("len(Records) = %d, want 2", len(stats.Records))
	}
}

func TestCalculateStats_SortsByDateAscending(t *testing.T) {
	records := []models.Revenue{
		record(1, "10", "€", time.Date(2022, time.March, 20, 0, 0, 0, 0, time.UTC)),
		record(2, "10", "€", time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC)),
		record(3, "10", "€", time.Date(2022, time.March, 10, 0, 0, 0, 0, time.UTC)),
	}

	stats := CalculateStats(records, 3, 1.0)

	wantOrder := []int64{2, 3, 1}
	for i, want := range wantOrder {
		if stats.Records[i].ID != want {
			t.Errorf("Records[%d].ID = %d, want %d", i, stats.Records[i].ID, want)
		}
	}
}

func TestCalculateStats_EmptyMonth(t *testing.T) {
	records := []models.Revenue{
		record(1, "50", "€", time.Date(2022, time.March, 5, 0, 0, 0, 0, time.UTC)),
	}

	stats := CalculateStats(records, 7, 1.1)

	if len(stats.Records) != 0 {
		t.Errorf("len(Records) = %d, want 0", len(stats.Records))
	}
	if stats.EurEarned != 0 || stats.DollarEarned != 0 || stats.EurEquivalentTotal != 0 {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
}

func TestCalculateStats_MonthIsCalendarMonth(t *testing.T) {
	// Запись за январь попадает в month=1, а не в month=2
	records := []models.Revenue{
		record(1, "10", "€", time.Date(2022, time.January, 15, 0, 0, 0, 0, time.UTC)),
	}

	if got := CalculateStats(records, 1, 1.0); len(got.Records) != 1 {
		t.Errorf("month 1 matched %d records, want 1", len(got.Records))
	}
	if got := CalculateStats(records, 2, 1.0); len(got.Records) != 0 {
		t.Errorf("month 2 matched %d records, want 0", len(got.Records))
	}
}
