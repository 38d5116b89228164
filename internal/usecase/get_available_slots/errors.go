package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrFieldNotFound возвращается, когда площадка не найдена
	ErrFieldNotFound = errors.New("get_available_slots: field not found")

	// ErrStoreTimeout возвращается, когда хранилище не ответило вовремя
	ErrStoreTimeout = errors.New("get_available_slots: store timeout")

	// ErrStoreUnavailable возвращается при прочих ошибках хранилища
	ErrStoreUnavailable = errors.New("get_available_slots: store unavailable")
)
