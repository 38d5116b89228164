package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByFieldAndDate(ctx context.Context, filter domain.FieldBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

// FieldRepository интерфейс репозитория площадок
type FieldRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Field, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикация событий о бронированиях
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// MetricsRecorder учет исходов операций
type MetricsRecorder interface {
	RecordBooking(outcome string)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
