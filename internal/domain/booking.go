package domain

import (
	"time"

	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// IsValid returns true for known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// IsActive returns true if a booking in this status occupies its slot
func (s BookingStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Booking represents a player's reservation of one slot
type Booking struct {
	ID            string
	FieldID       string
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	PlayerName    string
	PlayerContact *string
	PaymentMethod *string
	TotalPrice    float64
	Status        BookingStatus

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status.IsActive()
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// SlotKey returns the identity of the slot occupied by the booking
func (b *Booking) SlotKey() string {
	return SlotKey(b.FieldID, b.BookingDate, b.StartTime)
}

// FieldBookingsFilter фильтр для получения бронирований площадки на дату
type FieldBookingsFilter struct {
	FieldID         string    // Обязательный параметр
	Date            time.Time // Обязательный параметр, время суток игнорируется
	IncludeInactive bool      // Включать ли отмененные бронирования
}
