package booking_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HairBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HairBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HairBooking/internal/domain"
	bookingWizard "github.com/m04kA/SMC-HairBooking/internal/usecase/booking_wizard"
	createBooking "github.com/m04kA/SMC-HairBooking/internal/usecase/create_booking"
)

const (
	msgInvalidShopID      = "некорректный ID салона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingSession     = "отсутствует сессия"
	msgShopNotFound       = "салон не найден"
	msgStepNotFound       = "неизвестный шаг записи"
	msgInvalidDate        = "выберите корректную дату"
	msgInvalidService     = "выберите услугу"
	msgInvalidStaff       = "выберите мастера"
	msgSlotUnavailable    = "выберите свободное время"
	msgMissingContact     = "укажите имя, телефон и email"
	msgInvalidEmail       = "некорректный email"
	msgTermsNotAccepted   = "необходимо принять условия"
	msgInvalidInput       = "некорректные данные записи"
	msgSlotTaken          = "это время уже занято, выберите другое"
)

type Handler struct {
	useCase BookingWizardUseCase
	logger  Logger
}

func NewHandler(useCase BookingWizardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Start POST /api/v1/shops/{shopId}/book
// Начинает запись заново и отправляет на шаг date.
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	shopID, sessionID, ok := h.params(w, r, "POST /shops/{id}/book")
	if !ok {
		return
	}

	if err := h.useCase.Start(r.Context(), sessionID, shopID); err != nil {
		h.respondError(w, r, "POST /shops/{id}/book", shopID, err)
		return
	}

	h.logger.Info("POST /shops/{id}/book - Booking started: shop_id=%d", shopID)
	handlers.RedirectSeeOther(w, r, StepURL(shopID, domain.StepDate))
}

// View GET /api/v1/shops/{shopId}/book/{step}
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	shopID, sessionID, ok := h.params(w, r, "GET /shops/{id}/book/{step}")
	if !ok {
		return
	}

	step, err := domain.ParseBookingStep(mux.Vars(r)["step"])
	if err != nil {
		handlers.RespondNotFound(w, msgStepNotFound)
		return
	}

	view, err := h.useCase.View(r.Context(), sessionID, shopID, step)
	if err != nil {
		h.respondError(w, r, "GET /shops/{id}/book/{step}", shopID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromStepView(view))
}

// Submit POST /api/v1/shops/{shopId}/book/{step}
// После успешного шага отправляет на следующий, после confirm возвращает созданную запись.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "POST /shops/{id}/book/{step}"

	shopID, sessionID, ok := h.params(w, r, op)
	if !ok {
		return
	}

	step, err := domain.ParseBookingStep(mux.Vars(r)["step"])
	if err != nil {
		handlers.RespondNotFound(w, msgStepNotFound)
		return
	}

	var next domain.BookingStep
	switch step {
	case domain.StepDate:
		var req DateRequest
		if !h.decode(w, r, op, &req) {
			return
		}
		err = h.useCase.SubmitDate(r.Context(), sessionID, shopID, req.Date)
		next = domain.StepService

	case domain.StepService:
		var req ServiceRequest
		if !h.decode(w, r, op, &req) {
			return
		}
		err = h.useCase.SubmitService(r.Context(), sessionID, shopID, req.ServiceID)
		next = domain.StepStaff

	case domain.StepStaff:
		var req StaffRequest
		if !h.decode(w, r, op, &req) {
			return
		}
		err = h.useCase.SubmitStaff(r.Context(), sessionID, shopID, req.StaffID)
		next = domain.StepTime

	case domain.StepTime:
		var req TimeRequest
		if !h.decode(w, r, op, &req) {
			return
		}
		err = h.useCase.SubmitTime(r.Context(), sessionID, shopID, req.Time)
		next = domain.StepConfirm

	case domain.StepConfirm:
		h.confirm(w, r, shopID, sessionID)
		return
	}

	if err != nil {
		h.respondError(w, r, op, shopID, err)
		return
	}

	handlers.RedirectSeeOther(w, r, StepURL(shopID, next))
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request, shopID int64, sessionID string) {
	const op = "POST /shops/{id}/book/confirm"

	var req ConfirmRequest
	if !h.decode(w, r, op, &req) {
		return
	}

	result, err := h.useCase.Confirm(r.Context(), sessionID, shopID, req.ToContact())
	if err != nil {
		h.respondError(w, r, op, shopID, err)
		return
	}

	h.logger.Info("%s - Appointment created: appointment_id=%d, shop_id=%d, staff_id=%d",
		op, result.ID, result.ShopID, result.StaffID)
	w.Header().Set("Location", AppointmentURL(result.ID))
	handlers.RespondJSON(w, http.StatusCreated, FromConfirmResponse(result))
}

func (h *Handler) params(w http.ResponseWriter, r *http.Request, op string) (int64, string, bool) {
	shopID, err := handlers.PathID(r, "shopId")
	if err != nil {
		h.logger.Warn("%s - Invalid shop ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return 0, "", false
	}

	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing session", op)
		handlers.RespondBadRequest(w, msgMissingSession)
		return 0, "", false
	}

	return shopID, sessionID, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, op string, v interface{}) bool {
	if err := handlers.DecodeJSON(r, v); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return false
	}
	return true
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, op string, shopID int64, err error) {
	var redirect *bookingWizard.StepRedirectError
	if errors.As(err, &redirect) {
		if errors.Is(err, createBooking.ErrSlotTaken) {
			h.logger.Warn("%s - Slot taken: shop_id=%d", op, shopID)
			handlers.RespondConflict(w, msgSlotTaken, StepURL(shopID, redirect.Step))
			return
		}
		handlers.RedirectSeeOther(w, r, StepURL(shopID, redirect.Step))
		return
	}

	switch {
	case errors.Is(err, bookingWizard.ErrShopNotFound):
		h.logger.Warn("%s - Shop not found: shop_id=%d", op, shopID)
		handlers.RespondNotFound(w, msgShopNotFound)

	case errors.Is(err, domain.ErrUnknownStep):
		handlers.RespondNotFound(w, msgStepNotFound)

	case errors.Is(err, bookingWizard.ErrInvalidDate):
		handlers.RespondBadRequest(w, msgInvalidDate)

	case errors.Is(err, bookingWizard.ErrInvalidService):
		handlers.RespondBadRequest(w, msgInvalidService)

	case errors.Is(err, bookingWizard.ErrInvalidStaff):
		handlers.RespondBadRequest(w, msgInvalidStaff)

	case errors.Is(err, bookingWizard.ErrSlotUnavailable):
		handlers.RespondBadRequest(w, msgSlotUnavailable)

	case errors.Is(err, createBooking.ErrMissingContact):
		handlers.RespondBadRequest(w, msgMissingContact)

	case errors.Is(err, createBooking.ErrInvalidEmail):
		handlers.RespondBadRequest(w, msgInvalidEmail)

	case errors.Is(err, createBooking.ErrTermsNotAccepted):
		handlers.RespondBadRequest(w, msgTermsNotAccepted)

	case errors.Is(err, createBooking.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Failed: shop_id=%d, error=%v", op, shopID, err)
		handlers.RespondInternalError(w)
	}
}
