package booking_wizard

import (
	"github.com/m04kA/SMC-HairBooking/internal/domain"
	"github.com/m04kA/SMC-HairBooking/pkg/types"
)

// StepView данные для отображения шага мастера
type StepView struct {
	Step  domain.BookingStep
	Shop  *domain.Shop
	Draft domain.BookingDraft

	// Today минимальная дата для выбора (шаг date)
	Today string

	// Services активные услуги салона (шаг service)
	Services []*domain.Service
	// Staff активные мастера салона (шаг staff)
	Staff []*domain.Staff

	// Service и StaffMember выбранные в черновике (шаги time и confirm)
	Service     *domain.Service
	StaffMember *domain.Staff

	// Slots свободное время мастера на выбранную дату (шаг time)
	Slots []types.TimeString
}

// Contact контактные данные клиента на шаге подтверждения
type Contact struct {
	Name        string
	Phone       string
	Email       string
	Notes       string
	Payment     string
	AcceptTerms bool
}
