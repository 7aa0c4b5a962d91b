// internal/core/domain/pagination/session.go
package pagination

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// NavSignal - сигнал навигации по страницам
type NavSignal string

const (
	NavFirst NavSignal = "first"
	NavPrev  NavSignal = "prev"
	NavNext  NavSignal = "next"
	NavLast  NavSignal = "last"
)

// Индексы страниц. Кнопка "first" ведёт на первую страницу записи,
// а не на сводку: сводка - это стартовая страница, на неё возвращает "prev".
const (
	SummaryPage     = 0
	FirstRecordPage = 1
)

// Session - состояние одной сессии листания, привязанной к сообщению
// и открывшему её пользователю
type Session struct {
	ID        string    `json:"id"`
	ChatID    int64     `json:"chat_id"`
	MessageID int64     `json:"message_id"`
	OwnerID   int64     `json:"owner_id"`
	PageIndex int       `json:"page_index"`
	Pages     []string  `json:"pages"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewSession создает новую сессию листания на странице сводки
func NewSession(chatID, messageID, ownerID int64, pages []string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		MessageID: messageID,
		OwnerID:   ownerID,
		PageIndex: SummaryPage,
		Pages:     pages,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// Expired проверяет, истекла ли сессия
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// CurrentPage возвращает текст текущей страницы
func (s *Session) CurrentPage() string {
	if s.PageIndex < 0 || s.PageIndex >= len(s.Pages) {
		return ""
	}
	return s.Pages[s.PageIndex]
}

// Apply применяет навигационный сигнал от пользователя fromID.
// Сигналы не-владельца и выходы за границы игнорируются.
// Возвращает true, если индекс страницы изменился.
func (s *Session) Apply(signal NavSignal, fromID int64) bool {
	if fromID != s.OwnerID {
		return false
	}

	lastPage := len(s.Pages) - 1

	switch signal {
	case NavFirst:
		if lastPage >= FirstRecordPage && s.PageIndex != FirstRecordPage {
			s.PageIndex = FirstRecordPage
			return true
		}
	case NavPrev:
		if s.PageIndex-1 >= 0 {
			s.PageIndex--
			return true
		}
	case NavNext:
		if s.PageIndex+1 <= lastPage {
			s.PageIndex++
			return true
		}
	case NavLast:
		if s.PageIndex != lastPage && lastPage >= 0 {
			s.PageIndex = lastPage
			return true
		}
	}

	return false
}

// Store - хранилище сессий листания, ключ (chatID, messageID).
// Get возвращает (nil, nil), если сессии нет или она истекла.
type Store interface {
	Create(ctx context.Context, session *Session) error
	Get(ctx context.Context, chatID, messageID int64) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, chatID, messageID int64) error
}
