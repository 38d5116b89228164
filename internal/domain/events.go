package domain

import "time"

// Ключи маршрутизации событий бронирования
const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// BookingEvent событие жизненного цикла бронирования для внешних подписчиков
type BookingEvent struct {
	BookingID  string    `json:"bookingId"`
	FieldID    string    `json:"fieldId"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"totalPrice"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewBookingEvent собирает событие из бронирования
func NewBookingEvent(b *Booking, occurredAt time.Time) BookingEvent {
	return BookingEvent{
		BookingID:  b.ID,
		FieldID:    b.FieldID,
		Date:       b.BookingDate.Format(DateFormat),
		StartTime:  b.StartTime.String(),
		EndTime:    b.EndTime.String(),
		Status:     string(b.Status),
		TotalPrice: b.TotalPrice,
		OccurredAt: occurredAt,
	}
}
