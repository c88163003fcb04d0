package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	Date time.Time   // день в зоне политики, время суток игнорируется
	Flow domain.Flow // определяет политику и учет прошедших слотов
}

// Response модель ответа со списком слотов дня
type Response struct {
	Date   time.Time
	Closed bool // день приходится на выходной политики
	Slots  []domain.AvailableSlot
}
