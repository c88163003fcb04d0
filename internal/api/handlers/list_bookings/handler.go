package list_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-LiftRental/internal/api/handlers"
	"github.com/m04kA/SMC-LiftRental/internal/service/bookings"
)

const msgStoreUnavailable = "Die Buchungen konnten nicht geladen werden"

type Handler struct {
	service BookingService
	view    View
	now     func() time.Time
	logger  Logger
}

func NewHandler(service BookingService, view View, logger Logger) *Handler {
	return &Handler{
		service: service,
		view:    view,
		now:     time.Now,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings и GET /api/v1/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), h.now())
	if err != nil {
		if errors.Is(err, bookings.ErrStoreUnavailable) {
			h.logger.Error("GET %s - Store unavailable: %v", r.URL.Path, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)
			return
		}
		h.logger.Error("GET %s - Failed to list bookings: %v", r.URL.Path, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainBookings(result, h.view))
}
