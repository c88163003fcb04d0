package recordstore

import (
	"fmt"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
)

var (
	// ErrNotFound возвращается, когда запись отсутствует в хранилище
	ErrNotFound = fmt.Errorf("recordstore client: %w", domain.ErrBookingNotFound)

	// ErrUnavailable возвращается при сетевых ошибках, таймаутах, 429 и 5xx
	ErrUnavailable = fmt.Errorf("recordstore client: %w", domain.ErrStoreUnavailable)

	// ErrRejected возвращается, когда хранилище отклонило запрос (4xx кроме 404 и 429)
	ErrRejected = fmt.Errorf("recordstore client: request rejected: %w", domain.ErrStoreUnavailable)

	// ErrInvalidResponse возвращается при некорректном ответе от хранилища
	ErrInvalidResponse = fmt.Errorf("recordstore client: invalid response: %w", domain.ErrStoreUnavailable)
)
