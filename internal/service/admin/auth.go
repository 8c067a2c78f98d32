package admin

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword возвращает bcrypt-хэш пароля администратора
func HashPassword(plain string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return hash, nil
}

// Login проверяет общий пароль и помечает сессию как администраторскую.
// Возвращает новый идентификатор сессии: старый после входа недействителен.
func (s *Service) Login(ctx context.Context, sessionID, password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.logger.Warn("Login: wrong admin password")
		return "", ErrInvalidPassword
	}

	newID, err := s.sessions.Rotate(ctx, sessionID)
	if err != nil {
		s.logger.Error("Login: failed to rotate session: %v", err)
		return "", fmt.Errorf("%w: Login - rotate session: %v", ErrInternal, err)
	}

	if err := s.sessions.SetAdmin(ctx, newID); err != nil {
		s.logger.Error("Login: failed to store admin flag: %v", err)
		return "", fmt.Errorf("%w: Login - session: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin signed in")
	return newID, nil
}

// Logout снимает признак администратора
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.ClearAdmin(ctx, sessionID); err != nil {
		s.logger.Error("Logout: failed to clear admin flag: %v", err)
		return fmt.Errorf("%w: Logout - session: %v", ErrInternal, err)
	}
	return nil
}
