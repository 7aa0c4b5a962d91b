package router

import (
	"testing"

	"revenue-ledger-bot/internal/delivery/telegram/app/bot/handlers"
)

type stubHandler struct {
	name     string
	command  string
	hType    handlers.HandlerType
	lastData string
	calls    int
}

func (s *stubHandler) Execute(params handlers.HandlerParams) (handlers.HandlerResult, error) {
	s.calls++
	s.lastData = params.Data
	return handlers.HandlerResult{Message: "ok:" + s.name}, nil
}

func (s *stubHandler) GetName() string               { return s.name }
func (s *stubHandler) GetCommand() string            { return s.command }
func (s *stubHandler) GetType() handlers.HandlerType { return s.hType }

func TestRouter_CommandExactMatch(t *testing.T) {
	r := NewRouter()
	h := &stubHandler{name: "help", command: "help", hType: handlers.TypeCommand}
	r.RegisterHandler(h)

	result, err := r.Handle("/help", handlers.HandlerParams{})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if result.Message != "ok:help" {
		t.Errorf("Message = %q, want %q", result.Message, "ok:help")
	}
	if h.calls != 1 {
		t.Errorf("calls = %d, want 1", h.calls)
	}
}

func TestRouter_CallbackMatch(t *testing.T) {
	r := NewRouter()
	h := &stubHandler{name: "page_next", command: "page_next", hType: handlers.TypeCallback}
	r.RegisterHandler(h)

	if _, err := r.Handle("page_next", handlers.HandlerParams{}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if h.calls != 1 {
		t.Errorf("calls = %d, want 1", h.calls)
	}
}

func TestRouter_PrefixCallbackCarriesData(t *testing.T) {
	r := NewRouter()
	h := &stubHandler{name: "page", command: "page", hType: handlers.TypeCallback}
	r.RegisterHandler(h)

	if _, err := r.Handle("page:3", handlers.HandlerParams{}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if h.lastData != "page:3" {
		t.Errorf("Data = %q, want %q", h.lastData, "page:3")
	}
}

func TestRouter_UnknownCommand(t *testing.T) {
	r := NewRouter()

	if _, err := r.Handle("/unknown", handlers.HandlerParams{}); err == nil {
		t.Error("expected an error for an unregistered command")
	}
}
