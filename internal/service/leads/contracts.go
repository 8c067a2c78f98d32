package leads

import (
	"context"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
)

// LeadRepository интерфейс репозитория заявок бизнеса
type LeadRepository interface {
	Create(ctx context.Context, l *domain.BusinessLead) (*domain.BusinessLead, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
