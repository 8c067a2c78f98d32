package leads

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
)

// Request заявка на подключение салона
type Request struct {
	Plan    string
	Billing string
	Email   string
	Phone   string
}

// Response сохранённая заявка
type Response struct {
	ID        int64     `json:"id"`
	Plan      string    `json:"plan"`
	Billing   string    `json:"billing"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// Service приём заявок от салонов
type Service struct {
	leadRepo LeadRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(leadRepo LeadRepository, logger Logger) *Service {
	return &Service{
		leadRepo: leadRepo,
		logger:   logger,
	}
}

// Submit проверяет и сохраняет заявку. Неизвестный период оплаты заменяется на monthly.
func (s *Service) Submit(ctx context.Context, req *Request) (*Response, error) {
	plan := strings.TrimSpace(req.Plan)
	billing := strings.TrimSpace(req.Billing)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)

	// 1. Тариф
	if !slices.Contains(domain.LeadPlans, plan) {
		s.logger.Warn("Submit: invalid plan=%q", plan)
		return nil, ErrInvalidPlan
	}

	if !slices.Contains(domain.LeadBillings, billing) {
		billing = domain.DefaultLeadBilling
	}

	// 2. Контакты
	if email == "" || phone == "" {
		return nil, ErrMissingContact
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return nil, ErrInvalidEmail
	}

	// 3. Сохраняем
	lead, err := s.leadRepo.Create(ctx, &domain.BusinessLead{
		Plan:    plan,
		Billing: billing,
		Email:   email,
		Phone:   phone,
	})
	if err != nil {
		s.logger.Error("Submit: failed to create lead: %v", err)
		return nil, fmt.Errorf("%w: Submit - create: %v", ErrInternal, err)
	}

	s.logger.Info("Submit: lead id=%d created, plan=%s, billing=%s", lead.ID, lead.Plan, lead.Billing)
	return &Response{
		ID:        lead.ID,
		Plan:      lead.Plan,
		Billing:   lead.Billing,
		Email:     lead.Email,
		Phone:     lead.Phone,
		CreatedAt: lead.CreatedAt,
	}, nil
}
