package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

// Options настройки use case
type Options struct {
	DefaultStatus    domain.BookingStatus // Статус нового бронирования, если не указан в запросе
	Location         *time.Location       // Часовой пояс для определения "сегодня"
	OperationTimeout time.Duration        // Ограничение на всю операцию, 0 - без ограничения
}

// Request модель запроса на создание бронирования
type Request struct {
	FieldID       string
	Date          time.Time        // Дата бронирования, время суток игнорируется
	StartTime     types.TimeString // Время начала слота, например "18:00"
	PlayerName    string
	PlayerContact *string
	PaymentMethod *string
	TotalPrice    *float64             // Цена с клиента, итоговая цена всегда берется из слота
	Status        domain.BookingStatus // PENDING или CONFIRMED, пусто - по умолчанию
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string
	FieldID       string
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	PlayerName    string
	PlayerContact *string
	PaymentMethod *string
	TotalPrice    float64
	Status        domain.BookingStatus
	CreatedAt     time.Time
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		FieldID:       b.FieldID,
		BookingDate:   b.BookingDate,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		PlayerName:    b.PlayerName,
		PlayerContact: b.PlayerContact,
		PaymentMethod: b.PaymentMethod,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
}
