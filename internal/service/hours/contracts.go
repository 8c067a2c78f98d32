package hours

import (
	"context"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
)

// ShopRepository интерфейс репозитория салонов и их часов работы
type ShopRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Shop, error)
	ListHours(ctx context.Context, shopID int64) ([]domain.WorkingInterval, error)
	ReplaceHours(ctx context.Context, shopID int64, hours []domain.WorkingInterval) error
}

// StaffRepository интерфейс репозитория мастеров и их расписания
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	ListHours(ctx context.Context, staffID int64) ([]domain.WorkingInterval, error)
	ReplaceHours(ctx context.Context, staffID int64, hours []domain.WorkingInterval) error
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
