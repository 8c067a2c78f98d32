package models

import (
	"time"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
)

// AppointmentResponse запись
type AppointmentResponse struct {
	ID            int64     `json:"id"`
	ShopID        int64     `json:"shopId"`
	StaffID       int64     `json:"staffId"`
	ServiceID     int64     `json:"serviceId"`
	ApptDate      string    `json:"apptDate"`
	StartHM       string    `json:"startHm"`
	EndHM         string    `json:"endHm"`
	CustomerName  string    `json:"customerName"`
	Phone         string    `json:"phone"`
	CustomerEmail string    `json:"customerEmail"`
	Notes         string    `json:"notes,omitempty"`
	PaymentMethod string    `json:"paymentMethod"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SummaryResponse итог записи для клиента: запись, салон, мастер и услуга с ценой.
// Названия пустые, если связанную сущность успели удалить.
type SummaryResponse struct {
	Appointment AppointmentResponse `json:"appointment"`
	ShopName    string              `json:"shopName"`
	StaffName   string              `json:"staffName"`
	ServiceName string              `json:"serviceName"`
	PriceCents  int                 `json:"priceCents"`
	Price       string              `json:"price"`
}

// FromDomainAppointment конвертирует запись
func FromDomainAppointment(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:            a.ID,
		ShopID:        a.ShopID,
		StaffID:       a.StaffID,
		ServiceID:     a.ServiceID,
		ApptDate:      a.ApptDate,
		StartHM:       a.StartHM.String(),
		EndHM:         a.EndHM.String(),
		CustomerName:  a.CustomerName,
		Phone:         a.Phone,
		CustomerEmail: a.CustomerEmail,
		Notes:         a.Notes,
		PaymentMethod: string(a.PaymentMethod),
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список записей
func FromDomainAppointmentList(list []*domain.Appointment) []AppointmentResponse {
	result := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		result = append(result, FromDomainAppointment(a))
	}
	return result
}
