package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	"github.com/m04kA/SMC-HairBooking/pkg/types"
)

// Request модель запроса на подтверждение записи
type Request struct {
	ShopID    int64
	ApptDate  string // YYYY-MM-DD
	ServiceID int64
	StaffID   int64
	StartHM   types.TimeString

	Name        string
	Phone       string
	Email       string
	Notes       string
	Payment     string // store | online, иное значение трактуется как store
	AcceptTerms bool
}

// Response модель ответа с созданной записью
type Response struct {
	ID            int64
	ShopID        int64
	StaffID       int64
	ServiceID     int64
	ApptDate      string
	StartHM       types.TimeString
	EndHM         types.TimeString
	PaymentMethod domain.PaymentMethod
	Status        domain.AppointmentStatus
	CreatedAt     time.Time

	// NotificationSent true, если письмо-подтверждение ушло
	NotificationSent bool
}
