package admin

import (
	"context"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
)

// ShopRepository интерфейс репозитория салонов
type ShopRepository interface {
	Create(ctx context.Context, shop *domain.Shop) (*domain.Shop, error)
	GetByID(ctx context.Context, id int64) (*domain.Shop, error)
	ListAll(ctx context.Context) ([]*domain.Shop, error)
	UpdateCategory(ctx context.Context, id int64, category domain.ShopCategory) error
	ToggleOpen(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	ListHours(ctx context.Context, shopID int64) ([]domain.WorkingInterval, error)
	ReplaceHours(ctx context.Context, shopID int64, hours []domain.WorkingInterval) error
}

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	Create(ctx context.Context, s *domain.Staff) (*domain.Staff, error)
	ListActiveByShop(ctx context.Context, shopID int64) ([]*domain.Staff, error)
	ReplaceHours(ctx context.Context, staffID int64, hours []domain.WorkingInterval) error
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	ListActiveByShop(ctx context.Context, shopID int64) ([]*domain.Service, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListRecent(ctx context.Context, limit uint64) ([]*domain.Appointment, error)
}

// SessionStore признак администратора в сессии
type SessionStore interface {
	Rotate(ctx context.Context, oldID string) (string, error)
	SetAdmin(ctx context.Context, sessionID string) error
	ClearAdmin(ctx context.Context, sessionID string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
