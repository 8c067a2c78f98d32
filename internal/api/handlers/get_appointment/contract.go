package get_appointment

import (
	"context"

	"github.com/m04kA/SMC-HairBooking/internal/service/appointments/models"
)

type AppointmentService interface {
	GetSummary(ctx context.Context, id int64) (*models.SummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
