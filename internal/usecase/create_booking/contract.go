package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
)

// SlotResolver вычисляет слоты площадки на дату (get_available_slots)
type SlotResolver interface {
	Resolve(ctx context.Context, fieldID string, date time.Time) ([]*domain.TimeSlotInstance, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// Create при нарушении уникальности активного слота возвращает booking.ErrSlotNotAvailable
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotLocker взаимное исключение по ключу слота
type SlotLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// EventPublisher публикация событий о бронированиях
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// MetricsRecorder учет исходов операций
type MetricsRecorder interface {
	RecordBooking(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
