package revenue_list

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers"
	"revenue-ledger-bot/internal/infrastructure/persistence/postgres/models"
)

type fakeRepository struct {
	records []models.Revenue
	err     error
}

func (f *fakeRepository) FindAll(ctx context.Context) ([]models.Revenue, error) {
	return f.records, f.err
}

type fakeRateProvider struct {
	rate float64
	err  error
}

func (f *fakeRateProvider) EurUsdRate(ctx context.Context) (float64, error) {
	return f.rate, f.err
}

func marchRecords() []models.Revenue {
	march := time.Date(2022, time.March, 5, 14, 0, 0, 0, time.UTC)
	return []models.Revenue{
		{ID: 1, Amount: "50", Currency: "€", Platform: "fiverr", Customer: "Acme", Project: "Site", Date: march},
		{ID: 2, Amount: "20", Currency: "$", Platform: "upwork", Customer: "Globex", Project: "Logo", Date: march.Add(time.Hour)},
	}
}

func execute(t *testing.T, repo *fakeRepository, rates *fakeRateProvider, text string) handlers.HandlerResult {
	t.Helper()

	h := NewHandler(repo, rates)
	result, err := h.Execute(handlers.HandlerParams{UserID: 1, ChatID: 1, Text: text})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	return result
}

func TestExecute_MarchSummary(t *testing.T) {
	repo := &fakeRepository{records: marchRecords()}
	rates := &fakeRateProvider{rate: 1.1}

	result := execute(t, repo, rates, "3")

	if len(result.Pages) != 3 {
		t.Fatalf("len(Pages) = %d, want 3 (summary + 2 records)", len(result.Pages))
	}
	if result.Message != result.Pages[0] {
		t.Error("initial message must be the summary page")
	}
	if result.Keyboard == nil {
		t.Fatal("expected a navigation keyboard")
	}

	for _, want := range []string{"Total Earnings: 72€", "Entry: 2", "Total: 50€", "Total: 20$"} {
		if !strings.Contains(result.Message, want) {
			t.Errorf("summary missing %q:\n%s", want, result.Message)
		}
	}
}

func TestExecute_EmptyMonthStillRendersSummary(t *testing.T) {
	repo := &fakeRepository{records: marchRecords()}
	rates := &fakeRateProvider{rate: 1.1}

	result := execute(t, repo, rates, "7")

	if len(result.Pages) != 1 {
		t.Fatalf("len(Pages) = %d, want 1", len(result.Pages))
	}
	if !strings.Contains(result.Message, "Entry: 0") {
		t.Errorf("empty month summary missing zero entry count:\n%s", result.Message)
	}
}

func TestExecute_InvalidMonth(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "no arguments", text: ""},
		{name: "not a number", text: "march"},
		{name: "zero", text: "0"},
		{name: "thirteen", text: "13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := execute(t, &fakeRepository{}, &fakeRateProvider{rate: 1}, tt.text)

			if len(result.Pages) != 0 {
				t.Error("invalid month must not build pages")
			}
			if !strings.Contains(result.Message, "between 1 and 12") &&
				!strings.Contains(result.Message, "Usage:") {
				t.Errorf("expected validation reply, got %q", result.Message)
			}
		})
	}
}

func TestExecute_StoreFailure(t *testing.T) {
	repo := &fakeRepository{err: errors.New("connection lost")}
	result := execute(t, repo, &fakeRateProvider{rate: 1.1}, "3")

	if !strings.Contains(result.Message, "Could not load") {
		t.Errorf("expected a store error reply, got %q", result.Message)
	}
}

func TestExecute_RateFailure(t *testing.T) {
	repo := &fakeRepository{records: marchRecords()}
	rates := &fakeRateProvider{err: errors.New("exchange down")}

	result := execute(t, repo, rates, "3")

	if !strings.Contains(result.Message, "Could not fetch") {
		t.Errorf("expected a rate error reply, got %q", result.Message)
	}
	if len(result.Pages) != 0 {
		t.Error("rate failure must not build pages")
	}
}
