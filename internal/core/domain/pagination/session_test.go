package pagination

import (
	"testing"
	"time"
)

const (
	ownerID    = int64(100)
	strangerID = int64(200)
)

func newTestSession(pageCount int) *Session {
	pages := make([]string, pageCount)
	for i := range pages {
		pages[i] = "page"
	}
	return NewSession(1, 2, ownerID, pages, time.Minute)
}

func TestNewSession_StartsOnSummary(t *testing.T) {
	s := newTestSession(3)

	if s.PageIndex != SummaryPage {
		t.Errorf("PageIndex = %d, want %d", s.PageIndex, SummaryPage)
	}
	if s.ID == "" {
		t.Error("expected a non-empty session id")
	}
	if s.Expired() {
		t.Error("fresh session must not be expired")
	}
}

func TestSession_Apply(t *testing.T) {
	tests := []struct {
		name       string
		pageCount  int
		startIndex int
		signal     NavSignal
		fromID     int64
		wantIndex  int
		wantMoved  bool
	}{
		{name: "first jumps to first record", pageCount: 4, startIndex: 0, signal: NavFirst, fromID: ownerID, wantIndex: 1, wantMoved: true},
		{name: "first on summary-only list", pageCount: 1, startIndex: 0, signal: NavFirst, fromID: ownerID, wantIndex: 0, wantMoved: false},
		{name: "next moves forward", pageCount: 3, startIndex: 0, signal: NavNext, fromID: ownerID, wantIndex: 1, wantMoved: true},
		{name: "next at last page", pageCount: 3, startIndex: 2, signal: NavNext, fromID: ownerID, wantIndex: 2, wantMoved: false},
		{name: "prev moves back", pageCount: 3, startIndex: 2, signal: NavPrev, fromID: ownerID, wantIndex: 1, wantMoved: true},
		{name: "prev at summary", pageCount: 3, startIndex: 0, signal: NavPrev, fromID: ownerID, wantIndex: 0, wantMoved: false},
		{name: "last jumps to end", pageCount: 5, startIndex: 1, signal: NavLast, fromID: ownerID, wantIndex: 4, wantMoved: true},
		{name: "last when already there", pageCount: 5, startIndex: 4, signal: NavLast, fromID: ownerID, wantIndex: 4, wantMoved: false},
		{name: "stranger is ignored", pageCount: 3, startIndex: 0, signal: NavNext, fromID: strangerID, wantIndex: 0, wantMoved: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(tt.pageCount)
			s.PageIndex = tt.startIndex

			moved := s.Apply(tt.signal, tt.fromID)
			if moved != tt.wantMoved {
				t.Errorf("Apply() = %v, want %v", moved, tt.wantMoved)
			}
			if s.PageIndex != tt.wantIndex {
				t.Errorf("PageIndex = %d, want %d", s.PageIndex, tt.wantIndex)
			}
		})
	}
}

func TestSession_FirstThenPrevTwiceFloorsAtSummary(t *testing.T) {
	s := newTestSession(4)

	s.Apply(NavFirst, ownerID) // сводка → первая запись
	if s.PageIndex != FirstRecordPage {
		t.Fatalf("after first: PageIndex = %d, want %d", s.PageIndex, FirstRecordPage)
	}

	s.Apply(NavPrev, ownerID) // первая запись → сводка
	if s.PageIndex != SummaryPage {
		t.Fatalf("after prev: PageIndex = %d, want %d", s.PageIndex, SummaryPage)
	}

	if moved := s.Apply(NavPrev, ownerID); moved {
		t.Error("prev below summary must be a no-op")
	}
	if s.PageIndex != SummaryPage {
		t.Errorf("PageIndex = %d, want %d", s.PageIndex, SummaryPage)
	}
}

func TestSession_NextPrevIdentityAwayFromBounds(t *testing.T) {
	s := newTestSession(5)
	s.PageIndex = 2

	s.Apply(NavNext, ownerID)
	s.Apply(NavPrev, ownerID)

	if s.PageIndex != 2 {
		t.Errorf("PageIndex = %d, want 2", s.PageIndex)
	}
}

func TestSession_CurrentPage(t *testing.T) {
	s := NewSession(1, 2, ownerID, []string{"summary", "rec1"}, time.Minute)

	if got := s.CurrentPage(); got != "summary" {
		t.Errorf("CurrentPage() = %q, want %q", got, "summary")
	}

	s.Apply(NavNext, ownerID)
	if got := s.CurrentPage(); got != "rec1" {
		t.Errorf("CurrentPage() = %q, want %q", got, "rec1")
	}
}

func TestSession_Expired(t *testing.T) {
	s := NewSession(1, 2, ownerID, []string{"summary"}, -time.Second)

	if !s.Expired() {
		t.Error("session with past ExpiresAt must be expired")
	}
}
