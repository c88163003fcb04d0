package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
	"github.com/m04kA/SMC-LiftRental/internal/service/slotvalidator"
)

// UseCase use case для создания бронирования
// Проверка двухфазная: сначала по кэшу, затем авторитетный запрос пересечений в хранилище
type UseCase struct {
	cache        BookingCache
	store        BookingStore
	payments     PaymentCapturer
	notifier     Notifier
	metrics      Metrics
	opts         Options
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// payments и notifier могут быть nil: тогда списание и подтверждение пропускаются
func NewUseCase(
	cache BookingCache,
	store BookingStore,
	payments PaymentCapturer,
	notifier Notifier,
	metrics Metrics,
	opts Options,
	logger Logger,
) *UseCase {
	if opts.HourlyRate <= 0 {
		opts.HourlyRate = domain.DefaultHourlyRate
	}

	return &UseCase{
		cache:        cache,
		store:        store,
		payments:     payments,
		notifier:     notifier,
		metrics:      metrics,
		opts:         opts,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Policy возвращает политику времени для потока
func (uc *UseCase) Policy(flow domain.Flow) domain.Policy {
	if flow == domain.FlowAdmin {
		return uc.opts.AdminPolicy
	}
	return uc.opts.PublicPolicy
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	booking, err := uc.create(ctx, req)
	if err != nil {
		uc.metrics.IncBookingRejected(rejectionReason(err))
		return nil, err
	}

	uc.metrics.IncBookingCreated(string(booking.Kind))
	return toResponse(booking), nil
}

func (uc *UseCase) create(ctx context.Context, req *Request) (*domain.Booking, error) {
	// 1. Валидация входных данных
	if req != nil {
		normalized := *req
		normalized.Contact = normalizeContact(req.Contact)
		req = &normalized
	}
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	candidate := req.Interval
	uc.logger.Info("CreateBooking: flow=%s, start=%s, end=%s",
		req.Flow, candidate.Start.Format(domain.DateFormat+" "+domain.TimeFormat), candidate.End.Format(domain.DateFormat+" "+domain.TimeFormat))

	// 2. Политика потока и текущее время
	policy := uc.Policy(req.Flow)
	now := uc.timeProvider.Now()

	// 3. Предварительная проверка по кэшу
	existing, err := uc.cache.Upcoming(ctx, now)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrStoreUnavailable, err)
	}

	if err := slotvalidator.Validate(candidate, existing, policy, now, req.Flow); err != nil {
		uc.logger.Warn("CreateBooking: slot rejected: %v", err)
		return nil, err
	}

	// 4. Авторитетная проверка пересечений в хранилище
	overlap, err := uc.store.HasOverlap(ctx, candidate.Start, candidate.End)
	if err != nil {
		uc.logger.Error("CreateBooking: overlap check failed: %v", err)
		return nil, fmt.Errorf("%w: overlap check failed: %v", ErrStoreUnavailable, err)
	}
	if overlap {
		uc.logger.Warn("CreateBooking: store reports overlap for %s", candidate.Start.Format(domain.DateFormat+" "+domain.TimeFormat))
		uc.cache.Invalidate()
		return nil, ErrOverlapping
	}

	// 5. Цена и вариант бронирования
	var booking *domain.Booking
	if req.Contact == nil {
		booking = domain.NewAdministrativeHold(candidate)
	} else {
		booking = domain.NewReservation(candidate, *req.Contact, domain.Price(candidate, uc.opts.HourlyRate))
	}

	// 6. Списание платежа (только публичный поток)
	captured, err := uc.capturePayment(ctx, req, booking)
	if err != nil {
		return nil, err
	}

	// 7. Сохранение; при ошибке списанный платеж возвращается
	created, err := uc.store.Create(ctx, booking)
	uc.cache.Invalidate()
	if err != nil {
		if captured {
			uc.refundPayment(ctx, req.PaymentID)
		}

		if errors.Is(err, domain.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: store rejected overlapping booking")
			return nil, ErrOverlapping
		}
		uc.logger.Error("CreateBooking: failed to persist booking: %v", err)
		return nil, fmt.Errorf("%w: failed to persist booking: %v", ErrStoreUnavailable, err)
	}

	uc.logger.Info("CreateBooking: booking id=%s created, kind=%s, price=%.2f", created.ID, created.Kind, created.Price)

	// 8. Подтверждение по e-mail
	uc.notify(ctx, created)

	return created, nil
}

// capturePayment возвращает true, если деньги были списаны
func (uc *UseCase) capturePayment(ctx context.Context, req *Request, booking *domain.Booking) (bool, error) {
	if uc.payments == nil || req.Flow != domain.FlowPublic || booking.Price <= 0 {
		return false, nil
	}

	if req.PaymentID == "" {
		uc.logger.Warn("CreateBooking: payment id missing")
		return false, ErrPaymentRequired
	}

	if err := uc.payments.Capture(ctx, req.PaymentID, booking.Price); err != nil {
		uc.logger.Error("CreateBooking: payment capture failed for payment=%s: %v", req.PaymentID, err)
		return false, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	uc.logger.Info("CreateBooking: payment=%s captured, amount=%.2f", req.PaymentID, booking.Price)
	return true, nil
}

// refundPayment возвращает платеж, если бронирование не сохранилось
// Возврат выполняется и после отмены запроса клиентом
func (uc *UseCase) refundPayment(ctx context.Context, paymentID string) {
	if err := uc.payments.Refund(context.WithoutCancel(ctx), paymentID); err != nil {
		uc.logger.Error("CreateBooking: REFUND REQUIRED payment=%s was captured but booking not saved: %v", paymentID, err)
		return
	}
	uc.logger.Warn("CreateBooking: payment=%s refunded after failed persist", paymentID)
}

func (uc *UseCase) notify(ctx context.Context, booking *domain.Booking) {
	if uc.notifier == nil || booking.IsAdministrativeHold() {
		return
	}

	if err := uc.notifier.SendConfirmation(ctx, booking); err != nil {
		uc.logger.Warn("CreateBooking: confirmation for booking id=%s not sent: %v", booking.ID, err)
	}
}
