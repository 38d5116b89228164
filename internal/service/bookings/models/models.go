package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListByFieldRequest запрос на получение бронирований площадки на дату
type ListByFieldRequest struct {
	FieldID          string
	Date             time.Time
	IncludeCancelled bool
}

// Response модели

// BookingResponse ответ с информацией о бронировании
type BookingResponse struct {
	ID            string     `json:"id"`
	FieldID       string     `json:"fieldId"`
	BookingDate   string     `json:"bookingDate"`
	StartTime     string     `json:"startTime"`
	EndTime       string     `json:"endTime"`
	PlayerName    string     `json:"playerName"`
	PlayerContact *string    `json:"playerContact,omitempty"`
	PaymentMethod *string    `json:"paymentMethod,omitempty"`
	TotalPrice    float64    `json:"totalPrice"`
	Status        string     `json:"status"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// Конвертеры

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	return &BookingResponse{
		ID:            b.ID,
		FieldID:       b.FieldID,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		PlayerName:    b.PlayerName,
		PlayerContact: b.PlayerContact,
		PaymentMethod: b.PaymentMethod,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		CancelledAt:   b.CancelledAt,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain.Booking в BookingListResponse
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Total:    len(bookings),
	}
	for _, b := range bookings {
		result.Bookings = append(result.Bookings, *FromDomainBooking(b))
	}
	return result
}

// ToDomainBookingStatus разбирает статус без учета регистра
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
