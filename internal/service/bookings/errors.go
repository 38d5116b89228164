package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrFieldNotFound возвращается, когда площадка не найдена
	ErrFieldNotFound = errors.New("bookings: field not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = errors.New("bookings: invalid status transition")

	// ErrStoreTimeout возвращается, когда хранилище не ответило вовремя
	ErrStoreTimeout = errors.New("bookings: store timeout")

	// ErrStoreUnavailable возвращается при прочих ошибках хранилища
	ErrStoreUnavailable = errors.New("bookings: store unavailable")
)
