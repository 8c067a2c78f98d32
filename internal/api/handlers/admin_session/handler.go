package admin_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HairBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HairBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HairBooking/internal/service/admin"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingSession     = "отсутствует сессия"
	msgInvalidPassword    = "неверный пароль"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Password string `json:"password"`
}

type Handler struct {
	service AdminService
	cookie  middleware.SessionConfig
	logger  Logger
}

func NewHandler(service AdminService, cookie middleware.SessionConfig, logger Logger) *Handler {
	return &Handler{
		service: service,
		cookie:  cookie,
		logger:  logger,
	}
}

// Login POST /api/v1/admin/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	newSessionID, err := h.service.Login(r.Context(), sessionID, req.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidPassword) {
			handlers.RespondUnauthorized(w, msgInvalidPassword)
			return
		}
		h.logger.Error("POST /admin/login - Failed to sign in: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	middleware.SetSessionCookie(w, h.cookie, newSessionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// Logout POST /api/v1/admin/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondJSON(w, http.StatusNoContent, nil)
		return
	}

	if err := h.service.Logout(r.Context(), sessionID); err != nil {
		h.logger.Error("POST /admin/logout - Failed to sign out: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
