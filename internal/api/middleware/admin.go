package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LiftRental/internal/api/handlers"
)

const msgAdminRequired = "Anmeldung als Administrator erforderlich"

// RequireAdmin пропускает запрос только с действующей сессией администратора
func RequireAdmin(sessions SessionChecker, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.IsAuthenticated(r) {
				logger.Warn("%s %s - Admin session required", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgAdminRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
