package formatters

import (
	"strings"
	"testing"
	"time"

	"revenue-ledger-bot/internal/core/domain/revenue"
	"revenue-ledger-bot/internal/infrastructure/persistence/postgres/models"
)

func testStats() revenue.Stats {
	march := time.Date(2022, time.March, 5, 14, 0, 0, 0, time.UTC)
	return revenue.Stats{
		Month: 3,
		Records: []models.Revenue{
			{ID: 1, Amount: "50", Currency: "€", Platform: "fiverr", Customer: "Acme", Project: "Site", Date: march},
			{ID: 2, Amount: "20", Currency: "$", Platform: "upwork", Customer: "Globex", Project: "Logo", Date: march.Add(time.Hour)},
		},
		EurEarned:          50,
		DollarEarned:       20,
		EurEquivalentTotal: 72,
	}
}

func TestMonthName(t *testing.T) {
	tests := []struct {
		month int
		want  string
	}{
		{1, "January"},
		{2, "February"},
		{3, "March"},
		{12, "December"},
		{0, ""},
		{13, ""},
	}

	for _, tt := range tests {
		if got := MonthName(tt.month); got != tt.want {
			t.Errorf("MonthName(%d) = %q, want %q", tt.month, got, tt.want)
		}
	}
}

func TestBuildPages_CountAndOrder(t *testing.T) {
	f := NewRevenueFormatter()
	pages := f.BuildPages(testStats())

	if len(pages) != 3 {
		t.Fatalf("len(pages) = %d, want 3", len(pages))
	}
	if !strings.Contains(pages[0], "March") {
		t.Errorf("page 0 must be the summary, got %q", pages[0])
	}
	if !strings.Contains(pages[1], "Revenue: 1") {
		t.Errorf("page 1 must show record 1, got %q", pages[1])
	}
	if !strings.Contains(pages[2], "Revenue: 2") {
		t.Errorf("page 2 must show record 2, got %q", pages[2])
	}
}

func TestBuildSummaryPage(t *testing.T) {
	f := NewRevenueFormatter()
	page := f.BuildSummaryPage(testStats())

	for _, want := range []string{
		"March",
		"Total Earnings: 72€",
		"Entry: 2",
		"Total: 50€",
		"Total: 20$",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("summary page missing %q:\n%s", want, page)
		}
	}
}

func TestBuildSummaryPage_EmptyMonth(t *testing.T) {
	f := NewRevenueFormatter()
	page := f.BuildSummaryPage(revenue.Stats{Month: 7})

	for _, want := range []string{"July", "Total Earnings: 0€", "Entry: 0", "Total: 0€", "Total: 0$"} {
		if !strings.Contains(page, want) {
			t.Errorf("empty summary page missing %q:\n%s", want, page)
		}
	}
}

func TestBuildRecordPage(t *testing.T) {
	f := NewRevenueFormatter()
	page := f.BuildRecordPage(testStats().Records[0])

	for _, want := range []string{"Revenue: 1", "Acme", "Site", "Total: 50€", "fiverr"} {
		if !strings.Contains(page, want) {
			t.Errorf("record page missing %q:\n%s", want, page)
		}
	}
}

func TestBuildAddConfirmation(t *testing.T) {
	f := NewRevenueFormatter()
	rec := &models.Revenue{
		ID: 7, Amount: "100", Currency: "€", Platform: "fiverr",
		Customer: "Acme", Project: "Site",
		Date: time.Date(2022, time.March, 5, 14, 0, 0, 0, time.UTC),
	}

	page := f.BuildAddConfirmation(rec)

	for _, want := range []string{"100€", "fiverr", "Acme", "Site"} {
		if !strings.Contains(page, want) {
			t.Errorf("confirmation missing %q:\n%s", want, page)
		}
	}
}
