package submit_lead

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HairBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HairBooking/internal/service/leads"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPlan        = "неизвестный тариф"
	msgMissingContact     = "укажите email и телефон"
	msgInvalidEmail       = "некорректный email"
)

type Handler struct {
	service LeadService
	logger  Logger
}

func NewHandler(service LeadService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/business/leads
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitLeadRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /business/leads - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	lead, err := h.service.Submit(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, leads.ErrInvalidPlan):
			handlers.RespondBadRequest(w, msgInvalidPlan)

		case errors.Is(err, leads.ErrMissingContact):
			handlers.RespondBadRequest(w, msgMissingContact)

		case errors.Is(err, leads.ErrInvalidEmail):
			handlers.RespondBadRequest(w, msgInvalidEmail)

		default:
			h.logger.Error("POST /business/leads - Failed to save lead: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /business/leads - Lead saved: lead_id=%d, plan=%s", lead.ID, lead.Plan)
	handlers.RespondJSON(w, http.StatusCreated, lead)
}
