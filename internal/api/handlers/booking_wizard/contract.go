package booking_wizard

import (
	"context"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	bookingWizard "github.com/m04kA/SMC-HairBooking/internal/usecase/booking_wizard"
	createBooking "github.com/m04kA/SMC-HairBooking/internal/usecase/create_booking"
)

type BookingWizardUseCase interface {
	Start(ctx context.Context, sessionID string, shopID int64) error
	View(ctx context.Context, sessionID string, shopID int64, step domain.BookingStep) (*bookingWizard.StepView, error)
	SubmitDate(ctx context.Context, sessionID string, shopID int64, isoDate string) error
	SubmitService(ctx context.Context, sessionID string, shopID, serviceID int64) error
	SubmitStaff(ctx context.Context, sessionID string, shopID, staffID int64) error
	SubmitTime(ctx context.Context, sessionID string, shopID int64, hm string) error
	Confirm(ctx context.Context, sessionID string, shopID int64, c bookingWizard.Contact) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
