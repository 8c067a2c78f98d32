package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
)

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// ShopRepository интерфейс репозитория салонов
type ShopRepository interface {
	// GetHours возвращает интервал работы салона на день недели (0 = понедельник)
	GetHours(ctx context.Context, shopID int64, weekday int) (*domain.WorkingInterval, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListOccupying возвращает неотменённые записи мастера на дату
	ListOccupying(ctx context.Context, staffID int64, apptDate string) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
