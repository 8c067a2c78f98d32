package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
)

const (
	draftKeyPrefix = "booking:"
	adminKeyPrefix = "admin:"
)

// Store состояние сессий пользователей: черновик записи и признак администратора
type Store struct {
	backend Backend
	ttl     time.Duration
}

// NewStore создает хранилище сессий с временем жизни ttl
func NewStore(backend Backend, ttl time.Duration) *Store {
	return &Store{backend: backend, ttl: ttl}
}

// GetDraft возвращает черновик записи сессии или nil, если его нет
func (s *Store) GetDraft(ctx context.Context, sessionID string) (*domain.BookingDraft, error) {
	data, found, err := s.backend.Get(ctx, draftKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var draft domain.BookingDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("%w: draft: %v", ErrDecode, err)
	}
	return &draft, nil
}

// SaveDraft сохраняет черновик и продлевает его жизнь
func (s *Store) SaveDraft(ctx context.Context, sessionID string, draft *domain.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("%w: encode draft: %v", ErrBackend, err)
	}
	return s.backend.Set(ctx, draftKeyPrefix+sessionID, data, s.ttl)
}

// ClearDraft удаляет черновик
func (s *Store) ClearDraft(ctx context.Context, sessionID string) error {
	return s.backend.Delete(ctx, draftKeyPrefix+sessionID)
}

// SetAdmin помечает сессию как администраторскую
func (s *Store) SetAdmin(ctx context.Context, sessionID string) error {
	return s.backend.Set(ctx, adminKeyPrefix+sessionID, []byte("1"), s.ttl)
}

// IsAdmin проверяет признак администратора
func (s *Store) IsAdmin(ctx context.Context, sessionID string) (bool, error) {
	_, found, err := s.backend.Get(ctx, adminKeyPrefix+sessionID)
	if err != nil {
		return false, err
	}
	return found, nil
}

// ClearAdmin снимает признак администратора
func (s *Store) ClearAdmin(ctx context.Context, sessionID string) error {
	return s.backend.Delete(ctx, adminKeyPrefix+sessionID)
}

// Rotate выдаёт новый идентификатор сессии и переносит на него черновик.
// Данные старой сессии удаляются.
func (s *Store) Rotate(ctx context.Context, oldID string) (string, error) {
	newID := uuid.NewString()

	data, found, err := s.backend.Get(ctx, draftKeyPrefix+oldID)
	if err != nil {
		return "", err
	}
	if found {
		if err := s.backend.Set(ctx, draftKeyPrefix+newID, data, s.ttl); err != nil {
			return "", err
		}
	}

	if err := s.backend.Delete(ctx, draftKeyPrefix+oldID); err != nil {
		return "", err
	}
	if err := s.backend.Delete(ctx, adminKeyPrefix+oldID); err != nil {
		return "", err
	}
	return newID, nil
}
