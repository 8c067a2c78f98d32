package get_locations

import (
	"net/http"

	"github.com/m04kA/SMC-HairBooking/internal/api/handlers"
)

type Handler struct {
	service LocationService
}

func NewHandler(service LocationService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/locations?q=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.Locations(r.URL.Query().Get("q")))
}
