package get_quote

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-LiftRental/internal/api/handlers"
	"github.com/m04kA/SMC-LiftRental/internal/domain"
)

const (
	msgInvalidTime  = "Ungültiges Zeitformat, erwartet wird RFC 3339"
	msgInvalidOrder = "Die Startzeit muss vor der Endzeit liegen"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Hours      int     `json:"hours"`
	HourlyRate float64 `json:"hourlyRate"`
	Price      float64 `json:"price"`
}

type Handler struct {
	hourlyRate float64
}

func NewHandler(hourlyRate float64) *Handler {
	if hourlyRate <= 0 {
		hourlyRate = domain.DefaultHourlyRate
	}
	return &Handler{hourlyRate: hourlyRate}
}

// Handle GET /api/v1/quote?start=...&end=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := time.Parse(time.RFC3339, query.Get("start"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}
	end, err := time.Parse(time.RFC3339, query.Get("end"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	interval := domain.Interval{Start: start, End: end}
	if !interval.IsOrdered() {
		handlers.RespondBadRequest(w, msgInvalidOrder)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, QuoteResponse{
		Hours:      domain.BillableHours(interval.Duration()),
		HourlyRate: h.hourlyRate,
		Price:      domain.Price(interval, h.hourlyRate),
	})
}
