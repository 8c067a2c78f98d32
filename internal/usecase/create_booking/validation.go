package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	"github.com/m04kA/SMC-HairBooking/pkg/timegrid"
)

// contact нормализованные контактные данные клиента
type contact struct {
	name    string
	phone   string
	email   string
	notes   string
	payment domain.PaymentMethod
}

// validateRequest валидирует запрос и нормализует контактные данные.
// Порядок проверок: обязательные поля, email, условия.
func validateRequest(req *Request) (*contact, error) {
	if req.ShopID <= 0 || req.ServiceID <= 0 || req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: shop, service and staff are required", ErrInvalidInput)
	}

	if _, err := timegrid.ParseDate(req.ApptDate); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := req.StartHM.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	c := &contact{
		name:    strings.TrimSpace(req.Name),
		phone:   strings.TrimSpace(req.Phone),
		email:   strings.ToLower(strings.TrimSpace(req.Email)),
		notes:   strings.TrimSpace(req.Notes),
		payment: domain.NormalizePaymentMethod(strings.TrimSpace(req.Payment)),
	}

	if c.name == "" || c.phone == "" || c.email == "" {
		return nil, ErrMissingContact
	}

	if !looksLikeEmail(c.email) {
		return nil, ErrInvalidEmail
	}

	if !req.AcceptTerms {
		return nil, ErrTermsNotAccepted
	}

	c.name = truncate(c.name, domain.MaxCustomerNameLength)
	c.notes = truncate(c.notes, domain.MaxNotesLength)

	return c, nil
}

// looksLikeEmail минимальная проверка формы адреса: есть '@' и '.'
func looksLikeEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
