package booking_wizard

import (
	"context"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-HairBooking/internal/usecase/create_booking"
	slotsUC "github.com/m04kA/SMC-HairBooking/internal/usecase/get_available_slots"
)

// DraftStore хранилище черновиков записи в сессии
type DraftStore interface {
	GetDraft(ctx context.Context, sessionID string) (*domain.BookingDraft, error)
	SaveDraft(ctx context.Context, sessionID string, draft *domain.BookingDraft) error
	ClearDraft(ctx context.Context, sessionID string) error
}

// ShopRepository интерфейс репозитория салонов
type ShopRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Shop, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ListActiveByShop(ctx context.Context, shopID int64) ([]*domain.Service, error)
}

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	ListActiveByShop(ctx context.Context, shopID int64) ([]*domain.Staff, error)
}

// SlotsProvider расчёт свободных слотов мастера
type SlotsProvider interface {
	Execute(ctx context.Context, req *slotsUC.Request) (*slotsUC.Response, error)
}

// BookingCreator подтверждение записи
type BookingCreator interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
