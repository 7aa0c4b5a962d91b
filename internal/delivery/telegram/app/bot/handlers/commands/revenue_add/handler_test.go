package revenue_add

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
	inserts []insertCall
	err     error
}

type insertCall struct {
	amount                                int
	currency, platform, customer, project string
}

func (f *fakeRepository) Insert(ctx context.Context, amount int, currency, platform, customer, project string) (*models.Revenue, error) {
	f.inserts = append(f.inserts, insertCall{amount, currency, platform, customer, project})
	if f.err != nil {
		return nil, f.err
	}
	return &models.Revenue{
		ID:       1,
		Amount:   "100",
		Currency: currency,
		Platform: platform,
		Customer: customer,
		Project:  project,
		Date:     time.Date(2022, time.March, 5, 14, 0, 0, 0, time.UTC),
	}, nil
}

func execute(t *testing.T, repo *fakeRepository, text string) handlers.HandlerResult {
	t.Helper()

	h := NewHandler(repo)
	result, err := h.Execute(handlers.HandlerParams{UserID: 1, ChatID: 1, Text: text})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	return result
}

func TestExecute_HappyPath(t *testing.T) {
	repo := &fakeRepository{}
	result := execute(t, repo, "100 € fiverr Acme Site")

	if len(repo.inserts) != 1 {
		t.Fatalf("Insert called %d times, want 1", len(repo.inserts))
	}

	call := repo.inserts[0]
	if call.amount != 100 || call.currency != "€" || call.platform != "fiverr" ||
		call.customer != "Acme" || call.project != "Site" {
		t.Errorf("unexpected insert args: %+v", call)
	}

	for _, want := range []string{"100€", "fiverr", "Acme"} {
		if !strings.Contains(result.Message, want) {
			t.Errorf("confirmation missing %q:\n%s", want, result.Message)
		}
	}
}

func TestExecute_ProjectSpansMultipleWords(t *testing.T) {
	repo := &fakeRepository{}
	execute(t, repo, "100 € fiverr Acme Landing page redesign")

	if len(repo.inserts) != 1 {
		t.Fatalf("Insert called %d times, want 1", len(repo.inserts))
	}
	if got := repo.inserts[0].project; got != "Landing page redesign" {
		t.Errorf("project = %q, want %q", got, "Landing page redesign")
	}
}

func TestExecute_ValidationFailuresSkipInsert(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantMessage string
	}{
		{name: "too few arguments", text: "100 €", wantMessage: "Usage:"},
		{name: "amount not a number", text: "ten € fiverr Acme Site", wantMessage: "whole number"},
		{name: "bad currency", text: "100 EUR fiverr Acme Site", wantMessage: "€ - $"},
		{name: "bad platform", text: "100 € stripe Acme Site", wantMessage: "fiverr - paypal - transfer - upwork"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			result := execute(t, repo, tt.text)

			if len(repo.inserts) != 0 {
				t.Errorf("Insert called %d times, want 0", len(repo.inserts))
			}
			if !strings.Contains(result.Message, tt.wantMessage) {
				t.Errorf("message %q does not contain %q", result.Message, tt.wantMessage)
			}
		})
	}
}

func TestExecute_InsertFailureHasNoConfirmation(t *testing.T) {
	repo := &fakeRepository{err: errors.New("connection lost")}
	result := execute(t, repo, "100 € fiverr Acme Site")

	if strings.Contains(result.Message, "You just added") {
		t.Errorf("failed insert must not confirm: %q", result.Message)
	}
	if !strings.Contains(result.Message, "Could not save") {
		t.Errorf("expected a save error reply, got %q", result.Message)
	}
}
