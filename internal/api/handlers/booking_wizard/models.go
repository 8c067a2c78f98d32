package booking_wizard

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	shopModels "github.com/m04kA/SMC-HairBooking/internal/service/shops/models"
	bookingWizard "github.com/m04kA/SMC-HairBooking/internal/usecase/booking_wizard"
	createBooking "github.com/m04kA/SMC-HairBooking/internal/usecase/create_booking"
)

// StepURL адрес шага мастера записи
func StepURL(shopID int64, step domain.BookingStep) string {
	return fmt.Sprintf("/api/v1/shops/%d/book/%s", shopID, step)
}

// AppointmentURL адрес итоговой страницы записи
func AppointmentURL(id int64) string {
	return fmt.Sprintf("/api/v1/appointments/%d", id)
}

// DateRequest шаг date
type DateRequest struct {
	Date string `json:"date"` // "2025-10-15"
}

// ServiceRequest шаг service
type ServiceRequest struct {
	ServiceID int64 `json:"serviceId"`
}

// StaffRequest шаг staff
type StaffRequest struct {
	StaffID int64 `json:"staffId"`
}

// TimeRequest шаг time
type TimeRequest struct {
	Time string `json:"time"` // "10:30"
}

// ConfirmRequest шаг confirm
type ConfirmRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Notes       string `json:"notes"`
	Payment     string `json:"payment"` // store | online
	AcceptTerms bool   `json:"acceptTerms"`
}

// ToContact конвертирует HTTP запрос в модель use case
func (r *ConfirmRequest) ToContact() bookingWizard.Contact {
	return bookingWizard.Contact{
		Name:        r.Name,
		Phone:       r.Phone,
		Email:       r.Email,
		Notes:       r.Notes,
		Payment:     r.Payment,
		AcceptTerms: r.AcceptTerms,
	}
}

// DraftResponse черновик записи
type DraftResponse struct {
	Date      string `json:"date,omitempty"`
	ServiceID int64  `json:"serviceId,omitempty"`
	StaffID   int64  `json:"staffId,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

// StepResponse данные шага
type StepResponse struct {
	Step        string                       `json:"step"`
	Shop        shopModels.ShopResponse      `json:"shop"`
	Draft       DraftResponse                `json:"draft"`
	Today       string                       `json:"today,omitempty"`
	Services    []shopModels.ServiceResponse `json:"services,omitempty"`
	Staff       []shopModels.StaffResponse   `json:"staff,omitempty"`
	Service     *shopModels.ServiceResponse  `json:"service,omitempty"`
	StaffMember *shopModels.StaffResponse    `json:"staffMember,omitempty"`
	Slots       []string                     `json:"slots,omitempty"`
}

// ConfirmResponse созданная запись
type ConfirmResponse struct {
	AppointmentID    int64  `json:"appointmentId"`
	Date             string `json:"date"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	PaymentMethod    string `json:"paymentMethod"`
	Status           string `json:"status"`
	NotificationSent bool   `json:"notificationSent"`
	CreatedAt        string `json:"createdAt"`
	Location         string `json:"location"`
}

// FromStepView конвертирует данные шага в HTTP response
func FromStepView(v *bookingWizard.StepView) *StepResponse {
	resp := &StepResponse{
		Step: string(v.Step),
		Shop: shopModels.FromDomainShop(v.Shop),
		Draft: DraftResponse{
			Date:      v.Draft.ApptDate,
			ServiceID: v.Draft.ServiceID,
			StaffID:   v.Draft.StaffID,
			StartTime: v.Draft.StartHM.String(),
			EndTime:   v.Draft.EndHM.String(),
		},
		Today: v.Today,
	}

	if v.Services != nil {
		resp.Services = shopModels.FromDomainServices(v.Services)
	}
	if v.Staff != nil {
		resp.Staff = shopModels.FromDomainStaff(v.Staff)
	}
	if v.Service != nil {
		resp.Service = &shopModels.FromDomainServices([]*domain.Service{v.Service})[0]
	}
	if v.StaffMember != nil {
		resp.StaffMember = &shopModels.FromDomainStaff([]*domain.Staff{v.StaffMember})[0]
	}
	if v.Step == domain.StepTime {
		resp.Slots = make([]string, len(v.Slots))
		for i, s := range v.Slots {
			resp.Slots[i] = s.String()
		}
	}

	return resp
}

// FromConfirmResponse конвертирует ответ use case в HTTP response
func FromConfirmResponse(r *createBooking.Response) *ConfirmResponse {
	return &ConfirmResponse{
		AppointmentID:    r.ID,
		Date:             r.ApptDate,
		StartTime:        r.StartHM.String(),
		EndTime:          r.EndHM.String(),
		PaymentMethod:    string(r.PaymentMethod),
		Status:           string(r.Status),
		NotificationSent: r.NotificationSent,
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
		Location:         AppointmentURL(r.ID),
	}
}
