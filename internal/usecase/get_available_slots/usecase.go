package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
)

// UseCase use case для получения сетки слотов дня
type UseCase struct {
	reader       BookingReader
	publicPolicy domain.Policy
	adminPolicy  domain.Policy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reader BookingReader, publicPolicy, adminPolicy domain.Policy, logger Logger) *UseCase {
	return &UseCase{
		reader:       reader,
		publicPolicy: publicPolicy,
		adminPolicy:  adminPolicy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	policy := uc.publicPolicy
	if req.Flow == domain.FlowAdmin {
		policy = uc.adminPolicy
	}

	day := dayStart(req.Date, policy)
	uc.logger.Info("GetAvailableSlots: flow=%s, date=%s", req.Flow, day.Format(domain.DateFormat))

	// 2. Выходной день - пустая сетка
	if policy.IsClosedOn(day) {
		uc.logger.Info("GetAvailableSlots: closed on %s", day.Format(domain.DateFormat))
		return &Response{Date: day, Closed: true, Slots: []domain.AvailableSlot{}}, nil
	}

	// 3. Получаем текущее время и бронирования с начала дня, включая уже идущие
	now := uc.timeProvider.Now()

	bookings, err := uc.reader.ListFrom(ctx, day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrStoreUnavailable, err)
	}

	// 4. Генерируем слоты и отмечаем занятые
	slots := generateTimeSlots(day, policy)
	markAvailability(slots, bookings, now, req.Flow)

	uc.logger.Info("GetAvailableSlots: generated %d slots for %s", len(slots), day.Format(domain.DateFormat))

	return &Response{Date: day, Slots: slots}, nil
}
