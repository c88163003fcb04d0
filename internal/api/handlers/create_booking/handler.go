package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LiftRental/internal/api/handlers"
	"github.com/m04kA/SMC-LiftRental/internal/domain"
	createBooking "github.com/m04kA/SMC-LiftRental/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "Ungültiger Anfrageinhalt"
	msgInvalidTime          = "Ungültiges Zeitformat, erwartet wird RFC 3339"
	msgInvalidInput         = "Bitte füllen Sie Name, E-Mail und Telefon korrekt aus"
	msgInvalidOrder         = "Die Startzeit muss vor der Endzeit liegen"
	msgOutsideBusinessHours = "Die Buchung liegt außerhalb der Öffnungszeiten"
	msgClosedDay            = "An diesem Tag ist die Hebebühne geschlossen"
	msgInThePast            = "Buchungen in der Vergangenheit sind nicht möglich"
	msgOverlapping          = "Der gewählte Zeitraum ist bereits belegt"
	msgPaymentRequired      = "Für diese Buchung ist eine Zahlung erforderlich"
	msgPaymentFailed        = "Die Zahlung konnte nicht abgeschlossen werden"
	msgStoreUnavailable     = "Der Buchungsdienst ist vorübergehend nicht erreichbar"
)

type Handler struct {
	useCase CreateBookingUseCase
	flow    domain.Flow
	logger  Logger
}

// NewHandler создает обработчик создания бронирования для потока flow
func NewHandler(useCase CreateBookingUseCase, flow domain.Flow, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		flow:    flow,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings и POST /api/v1/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST %s - Invalid request body: %v", r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.flow)
	if err != nil {
		h.logger.Warn("POST %s - Failed to parse request: %v", r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST %s - Invalid input: %v", r.URL.Path, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInvalidOrder):
			handlers.RespondBadRequest(w, msgInvalidOrder)

		case errors.Is(err, createBooking.ErrOutsideBusinessHours):
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createBooking.ErrClosedDay):
			handlers.RespondBadRequest(w, msgClosedDay)

		case errors.Is(err, createBooking.ErrInThePast):
			handlers.RespondBadRequest(w, msgInThePast)

		case errors.Is(err, createBooking.ErrOverlapping):
			h.logger.Warn("POST %s - Slot already taken: start=%s", r.URL.Path, req.StartTime)
			handlers.RespondConflict(w, msgOverlapping)

		case errors.Is(err, createBooking.ErrPaymentRequired):
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentRequired)

		case errors.Is(err, createBooking.ErrPaymentFailed):
			h.logger.Warn("POST %s - Payment failed: %v", r.URL.Path, err)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentFailed)

		case errors.Is(err, createBooking.ErrStoreUnavailable):
			h.logger.Error("POST %s - Store unavailable: %v", r.URL.Path, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST %s - Failed to create booking: error=%v", r.URL.Path, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST %s - Booking created successfully: booking_id=%s, kind=%s", r.URL.Path, result.ID, result.Kind)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
