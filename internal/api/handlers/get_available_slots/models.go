package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-LiftRental/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date   string         `json:"date"`
	Closed bool           `json:"closed"`
	Slots  []SlotResponse `json:"slots"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Label     string `json:"label"` // "09:00-10:00"
	Available bool   `json:"available"`
}

// ToUseCaseRequest разбирает дату YYYY-MM-DD в зоне loc
func ToUseCaseRequest(dateStr string, flow domain.Flow, loc *time.Location) (*getAvailableSlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, loc)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{Date: date, Flow: flow}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: s.Start.Format(time.RFC3339),
			EndTime:   s.End.Format(time.RFC3339),
			Label:     s.Start.Format(domain.TimeFormat) + "-" + s.End.Format(domain.TimeFormat),
			Available: s.Available,
		})
	}

	return &SlotsResponse{
		Date:   resp.Date.Format(domain.DateFormat),
		Closed: resp.Closed,
		Slots:  slots,
	}
}
