package submit_lead

import (
	"github.com/m04kA/SMC-HairBooking/internal/service/leads"
)

// SubmitLeadRequest HTTP request model
type SubmitLeadRequest struct {
	Plan    string `json:"plan"`
	Billing string `json:"billing"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SubmitLeadRequest) ToServiceRequest() *leads.Request {
	return &leads.Request{
		Plan:    r.Plan,
		Billing: r.Billing,
		Email:   r.Email,
		Phone:   r.Phone,
	}
}
