package fields

import (
	"context"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
)

// FieldRepository интерфейс репозитория площадок
type FieldRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Field, error)
	ListScheduleRules(ctx context.Context, fieldID string) ([]*domain.ScheduleRule, error)
}

// TransactionManager читает площадку и расписание одной транзакцией
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
