// internal/infrastructure/cache/redis/page_session_store.go
package redis

import (
	"context"
	"fmt"
	"time"

	"revenue-ledger-bot/internal/core/domain/pagination"
)

// PageSessionStore хранит сессии листания в Redis.
// Ключ - (chatID, messageID), TTL задается при создании стора.
type PageSessionStore struct {
	cache      *Cache
	sessionTTL time.Duration
}

// NewPageSessionStore создает новое хранилище сессий листания
func NewPageSessionStore(cache *Cache, ttl time.Duration) *PageSessionStore {
	return &PageSessionStore{
		cache:      cache,
		sessionTTL: ttl,
	}
}

func (s *PageSessionStore) sessionKey(chatID, messageID int64) string {
	return fmt.Sprintf("pagesession:%d:%d", chatID, messageID)
}

// Create сохраняет новую сессию
func (s *PageSessionStore) Create(ctx context.Context, session *pagination.Session) error {
	key := s.sessionKey(session.ChatID, session.MessageID)
	if err := s.cache.Set(ctx, key, session, s.sessionTTL); err != nil {
		return fmt.Errorf("failed to save page session: %w", err)
	}
	return nil
}

// Get получает сессию по ключу сообщения.
// Возвращает (nil, nil), если сессии нет или она истекла.
func (s *PageSessionStore) Get(ctx context.Context, chatID, messageID int64) (*pagination.Session, error) {
	key := s.sessionKey(chatID, messageID)

	var session pagination.Session
	found, err := s.cache.Get(ctx, key, &session)
	if err != nil {
		return nil, fmt.Errorf("failed to get page session: %w", err)
	}
	if !found {
		return nil, nil
	}

	// Проверяем срок действия
	if session.Expired() {
		s.cache.Delete(ctx, key)
		return nil, nil
	}

	return &session, nil
}

// Save сохраняет обновленную сессию, не продлевая её срок действия
func (s *PageSessionStore) Save(ctx context.Context, session *pagination.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("page session expired")
	}

	key := s.sessionKey(session.ChatID, session.MessageID)
	if err := s.cache.Set(ctx, key, session, ttl); err != nil {
		return fmt.Errorf("failed to save page session: %w", err)
	}
	return nil
}

// Delete удаляет сессию
func (s *PageSessionStore) Delete(ctx context.Context, chatID, messageID int64) error {
	return s.cache.Delete(ctx, s.sessionKey(chatID, messageID))
}

var _ pagination.Store = (*PageSessionStore)(nil)
