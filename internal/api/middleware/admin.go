package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-HairBooking/internal/api/handlers"
)

const msgAdminRequired = "требуется вход администратора"

// AdminChecker проверяет признак администратора в сессии
type AdminChecker interface {
	IsAdmin(ctx context.Context, sessionID string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth пропускает только сессии, в которых выполнен вход администратора.
// Должен стоять после Session.
func AdminAuth(checker AdminChecker, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID, ok := GetSessionID(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgAdminRequired)
				return
			}

			isAdmin, err := checker.IsAdmin(r.Context(), sessionID)
			if err != nil {
				logger.Error("AdminAuth - failed to read session: %v", err)
				handlers.RespondInternalError(w)
				return
			}
			if !isAdmin {
				logger.Warn("AdminAuth - access denied: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgAdminRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
