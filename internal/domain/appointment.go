package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-HairBooking/pkg/types"
)

// AppointmentStatus статус записи.
// Значения хранятся в БД в локализованном виде.
type AppointmentStatus string

const (
	StatusNew       AppointmentStatus = "Νέο"
	StatusCancelled AppointmentStatus = "Ακυρωμένο"
)

// ParseAppointmentStatus приводит значение из БД к статусу.
// Пустое значение считается новой записью, незнакомое сохраняется как есть
// и занимает время мастера наравне с новой.
func ParseAppointmentStatus(s string) AppointmentStatus {
	s = strings.TrimSpace(s)
	if s == "" {
		return StatusNew
	}
	return AppointmentStatus(s)
}

// PaymentMethod способ оплаты (только метка, оплата не проводится)
type PaymentMethod string

const (
	PaymentStore  PaymentMethod = "store"
	PaymentOnline PaymentMethod = "online"
)

// NormalizePaymentMethod возвращает store для любого неизвестного значения
func NormalizePaymentMethod(s string) PaymentMethod {
	if PaymentMethod(s) == PaymentOnline {
		return PaymentOnline
	}
	return PaymentStore
}

// Appointment запись клиента к мастеру
type Appointment struct {
	ID        int64
	ShopID    int64
	StaffID   int64
	ServiceID int64

	ApptDate string // YYYY-MM-DD
	StartHM  types.TimeString
	EndHM    types.TimeString

	CustomerName  string
	Phone         string
	CustomerEmail string
	Notes         string
	PaymentMethod PaymentMethod
	Status        AppointmentStatus

	CreatedAt time.Time
}

// IsOccupying возвращает true, если запись занимает время мастера.
// Только отменённые записи время не занимают.
func (a *Appointment) IsOccupying() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled возвращает true, если запись ещё не отменена
func (a *Appointment) CanBeCancelled() bool {
	return a.Status != StatusCancelled
}
