package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL
const (
	pqUniqueViolation           = "23505"
	pqInvalidTextRepresentation = "22P02"
	pqQueryCanceled             = "57014"
)

// mapError переводит ошибку драйвера в ошибку репозитория.
// fallback используется, если ошибка не распознана.
func mapError(fallback error, op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %v", ErrQueryTimeout, op, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%w: %s: %v", ErrSlotNotAvailable, op, err)
		case pqInvalidTextRepresentation:
			// Некорректный UUID не может принадлежать ни одному бронированию
			return ErrBookingNotFound
		case pqQueryCanceled:
			return fmt.Errorf("%w: %s: %v", ErrQueryTimeout, op, err)
		}
	}

	return fmt.Errorf("%w: %s: %v", fallback, op, err)
}
