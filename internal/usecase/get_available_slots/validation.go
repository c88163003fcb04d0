package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Flow != domain.FlowPublic && req.Flow != domain.FlowAdmin {
		return fmt.Errorf("%w: unknown flow %q", ErrInvalidInput, req.Flow)
	}

	return nil
}
