package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
)

// FieldRepository интерфейс репозитория площадок и расписаний
type FieldRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Field, error)
	ListScheduleRules(ctx context.Context, fieldID string) ([]*domain.ScheduleRule, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByFieldAndDate получает бронирования площадки на дату (по умолчанию только активные)
	GetByFieldAndDate(ctx context.Context, filter domain.FieldBookingsFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
