package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/booking"
)

// BookingStore хранит бронирования в памяти.
// Как и уникальный индекс в Postgres, не допускает двух активных бронирований на один слот.
type BookingStore struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
	active   map[string]string // slot key -> booking ID
	now      func() time.Time
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		bookings: make(map[string]*domain.Booking),
		active:   make(map[string]string),
		now:      time.Now,
	}
}

func (s *BookingStore) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if err := checkContext(ctx, bookingRepo.ErrQueryTimeout); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bookings[booking.ID]; exists {
		return nil, fmt.Errorf("%w: Create - duplicate id %s", bookingRepo.ErrExecQuery, booking.ID)
	}

	key := booking.SlotKey()
	if booking.IsActive() {
		if _, taken := s.active[key]; taken {
			return nil, fmt.Errorf("%w: Create - slot %s", bookingRepo.ErrSlotNotAvailable, key)
		}
	}

	b := *booking
	b.BookingDate = domain.TruncateDate(b.BookingDate)
	if b.CreatedAt.IsZero() {
		b.CreatedAt = s.now()
	}
	b.UpdatedAt = b.CreatedAt

	s.bookings[b.ID] = &b
	if b.IsActive() {
		s.active[key] = b.ID
	}

	booking.CreatedAt = b.CreatedAt
	booking.UpdatedAt = b.UpdatedAt
	return booking, nil
}

func (s *BookingStore) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if err := checkContext(ctx, bookingRepo.ErrQueryTimeout); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return copyBooking(b), nil
}

func (s *BookingStore) GetByFieldAndDate(ctx context.Context, filter domain.FieldBookingsFilter) ([]*domain.Booking, error) {
	if err := checkContext(ctx, bookingRepo.ErrQueryTimeout); err != nil {
		return nil, err
	}

	date := domain.TruncateDate(filter.Date)

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if b.FieldID != filter.FieldID || !b.BookingDate.Equal(date) {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		result = append(result, copyBooking(b))
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartTime.Equal(result[j].StartTime) {
			return result[i].StartTime.IsBefore(result[j].StartTime)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (s *BookingStore) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	if !status.IsValid() {
		return bookingRepo.ErrInvalidStatus
	}
	if err := checkContext(ctx, bookingRepo.ErrQueryTimeout); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}

	key := b.SlotKey()
	if status.IsActive() && !b.IsActive() {
		if holder, taken := s.active[key]; taken && holder != id {
			return fmt.Errorf("%w: UpdateStatus - slot %s", bookingRepo.ErrSlotNotAvailable, key)
		}
	}

	now := s.now()
	b.Status = status
	b.UpdatedAt = now
	if status == domain.StatusCancelled {
		b.CancelledAt = &now
		if s.active[key] == id {
			delete(s.active, key)
		}
	} else {
		b.CancelledAt = nil
		s.active[key] = id
	}
	return nil
}

func copyBooking(b *domain.Booking) *domain.Booking {
	c := *b
	if b.CancelledAt != nil {
		t := *b.CancelledAt
		c.CancelledAt = &t
	}
	if b.PlayerContact != nil {
		v := *b.PlayerContact
		c.PlayerContact = &v
	}
	if b.PaymentMethod != nil {
		v := *b.PaymentMethod
		c.PaymentMethod = &v
	}
	return &c
}

// checkContext возвращает timeoutErr, если истек дедлайн контекста
func checkContext(ctx context.Context, timeoutErr error) error {
	err := ctx.Err()
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", timeoutErr, err)
	}
	return err
}
