package search_fields

import (
	"context"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
)

// FieldRepository интерфейс репозитория площадок
type FieldRepository interface {
	List(ctx context.Context) ([]*domain.Field, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
