package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-LiftRental/internal/api/handlers"
	"github.com/m04kA/SMC-LiftRental/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-LiftRental/internal/usecase/get_available_slots"
)

const (
	msgMissingDate      = "Das Datum ist erforderlich"
	msgInvalidDate      = "Ungültiges Datumsformat, erwartet wird JJJJ-MM-TT"
	msgStoreUnavailable = "Der Buchungsdienst ist vorübergehend nicht erreichbar"
)

type Handler struct {
	useCase  GetAvailableSlotsUseCase
	flow     domain.Flow
	location *time.Location
	logger   Logger
}

// NewHandler создает обработчик сетки слотов; даты разбираются в зоне location
func NewHandler(useCase GetAvailableSlotsUseCase, flow domain.Flow, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		useCase:  useCase,
		flow:     flow,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/slots и GET /api/v1/admin/slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET %s - Missing date", r.URL.Path)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, h.flow, h.location)
	if err != nil {
		h.logger.Warn("GET %s - Invalid date format: %v", r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET %s - Invalid input: %v", r.URL.Path, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrStoreUnavailable):
			h.logger.Error("GET %s - Store unavailable: %v", r.URL.Path, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET %s - Failed to get slots: date=%s, error=%v", r.URL.Path, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
