package healthz

import (
	"net/http"

	"github.com/m04kA/SMC-HairBooking/internal/api/handlers"
)

// Response ответ проверки живости
type Response struct {
	OK bool `json:"ok"`
}

// Handle GET /healthz
func Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{OK: true})
}
