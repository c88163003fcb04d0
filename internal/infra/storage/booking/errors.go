package booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("booking.repository: %w", domain.ErrBookingNotFound)

	// ErrSlotTaken возвращается, когда ограничение исключения отвергло пересекающуюся запись
	ErrSlotTaken = fmt.Errorf("booking.repository: %w", domain.ErrSlotTaken)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = fmt.Errorf("booking.repository: failed to execute query: %w", domain.ErrStoreUnavailable)

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = fmt.Errorf("booking.repository: failed to scan row: %w", domain.ErrStoreUnavailable)
)
