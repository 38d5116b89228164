package fields

import "errors"

var (
	// ErrFieldNotFound возвращается, когда площадка не найдена
	ErrFieldNotFound = errors.New("fields: field not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("fields: invalid input data")

	// ErrStoreTimeout возвращается, когда хранилище не ответило вовремя
	ErrStoreTimeout = errors.New("fields: store timeout")

	// ErrStoreUnavailable возвращается при прочих ошибках хранилища
	ErrStoreUnavailable = errors.New("fields: store unavailable")
)
