package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
)

// Service сервис для работы с бронированиями
// Держит кэш будущих бронирований, который сбрасывается после изменений
type Service struct {
	store  BookingStore
	ttl    time.Duration
	logger Logger

	mu        sync.RWMutex
	cached    []*domain.Booking
	from      time.Time
	fetchedAt time.Time
	valid     bool
}

// NewService создает новый экземпляр сервиса бронирований
// ttl <= 0 отключает кэш: каждый вызов List обращается к хранилищу
func NewService(store BookingStore, ttl time.Duration, logger Logger) *Service {
	return &Service{
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// List возвращает бронирования с началом не раньше now по возрастанию начала
func (s *Service) List(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	if bookings, ok := s.fromCache(now); ok {
		return bookings, nil
	}

	fetched, err := s.store.ListFrom(ctx, now)
	if err != nil {
		s.logger.Error("List: failed to fetch bookings from store: %v", err)
		return nil, fmt.Errorf("%w: List - store error: %v", ErrStoreUnavailable, err)
	}

	s.mu.Lock()
	s.cached = fetched
	s.from = now
	s.fetchedAt = now
	s.valid = true
	s.mu.Unlock()

	s.logger.Info("List: fetched %d bookings from store", len(fetched))
	return upcoming(fetched, now), nil
}

// Upcoming возвращает тот же список, что и List; используется для предварительной проверки слота
func (s *Service) Upcoming(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	return s.List(ctx, now)
}

// ListFrom возвращает бронирования с началом не раньше from напрямую из хранилища
// Кэш не используется: он хранит только будущие записи и не видит уже идущие бронирования
func (s *Service) ListFrom(ctx context.Context, from time.Time) ([]*domain.Booking, error) {
	fetched, err := s.store.ListFrom(ctx, from)
	if err != nil {
		s.logger.Error("ListFrom: failed to fetch bookings from store: %v", err)
		return nil, fmt.Errorf("%w: ListFrom - store error: %v", ErrStoreUnavailable, err)
	}

	return upcoming(fetched, from), nil
}

// Delete удаляет бронирование по ID
// Кэш сбрасывается в любом случае: после ошибки состояние хранилища неизвестно
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: empty booking id", ErrInvalidInput)
	}

	s.logger.Info("Delete: deleting booking id=%s", id)

	err := s.store.Delete(ctx, id)
	s.Invalidate()

	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: store error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - store error: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", id)
	return nil
}

// Invalidate сбрасывает кэш
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.valid = false
	s.cached = nil
	s.mu.Unlock()
}

func (s *Service) fromCache(now time.Time) ([]*domain.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.valid || s.ttl <= 0 {
		return nil, false
	}
	// кэш загружен начиная с s.from, более ранний now мог бы пропустить записи
	if now.Before(s.from) || now.Sub(s.fetchedAt) >= s.ttl {
		return nil, false
	}

	return upcoming(s.cached, now), true
}

// upcoming отбирает бронирования с началом не раньше now и сортирует их по началу
func upcoming(bookings []*domain.Booking, now time.Time) []*domain.Booking {
	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b == nil || b.Start.Before(now) {
			continue
		}
		result = append(result, b)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Start.Before(result[j].Start)
	})

	return result
}
