package search_fields

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных фильтрах
	ErrInvalidInput = errors.New("search_fields: invalid input data")

	// ErrStoreTimeout возвращается, когда хранилище не ответило вовремя
	ErrStoreTimeout = errors.New("search_fields: store timeout")

	// ErrStoreUnavailable возвращается при прочих ошибках хранилища
	ErrStoreUnavailable = errors.New("search_fields: store unavailable")
)
