package admin_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LiftRental/internal/api/handlers"
	"github.com/m04kA/SMC-LiftRental/internal/service/admingate"
)

const (
	msgInvalidRequest  = "Ungültige Anfrage"
	msgInvalidPassword = "Falsches Passwort"
)

type Handler struct {
	sessions Sessions
	logger   Logger
}

func NewHandler(sessions Sessions, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Login POST /api/v1/admin/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	if err := h.sessions.Login(w, req.Password); err != nil {
		if errors.Is(err, admingate.ErrInvalidCredential) {
			h.logger.Warn("POST /admin/login - Invalid credential from %s", r.RemoteAddr)
			handlers.RespondUnauthorized(w, msgInvalidPassword)
			return
		}
		h.logger.Error("POST /admin/login - Failed to open session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/login - Admin session opened")
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Success: true})
}

// Logout POST /api/v1/admin/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(w, r)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Success: true})
}

// Status GET /api/v1/admin/session
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, SessionResponse{Authenticated: h.sessions.IsAuthenticated(r)})
}
