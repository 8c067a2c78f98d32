package create_booking

import (
	"context"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	"github.com/m04kA/SMC-HairBooking/internal/integrations/mailer"
	slotsUC "github.com/m04kA/SMC-HairBooking/internal/usecase/get_available_slots"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// ShopRepository интерфейс репозитория салонов
type ShopRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Shop, error)
}

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// SlotsProvider расчёт свободных слотов мастера
type SlotsProvider interface {
	Execute(ctx context.Context, req *slotsUC.Request) (*slotsUC.Response, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier отправка письма-подтверждения
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, msg mailer.BookingConfirmation) error
}

// Metrics счётчики записей
type Metrics interface {
	IncAppointmentsCreated()
	IncSlotConflicts()
	IncNotificationsFailed()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
