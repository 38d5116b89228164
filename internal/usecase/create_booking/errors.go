package create_booking

import "errors"

var (
	// ErrMissingRequiredFields возвращается, если не заданы площадка, дата, время или имя игрока
	ErrMissingRequiredFields = errors.New("create_booking: missing required fields")

	// ErrPastDateNotBookable возвращается при попытке забронировать прошедшую дату
	ErrPastDateNotBookable = errors.New("create_booking: date in the past is not bookable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrFieldNotFound возвращается, когда площадка не найдена
	ErrFieldNotFound = errors.New("create_booking: field not found")

	// ErrSlotNotOffered возвращается, когда в расписании нет слота с таким временем начала
	ErrSlotNotOffered = errors.New("create_booking: slot is not offered")

	// ErrSlotNotAvailable возвращается, когда слот уже занят
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrStoreTimeout возвращается, когда хранилище не ответило вовремя. Запрос можно повторить.
	ErrStoreTimeout = errors.New("create_booking: store timeout")

	// ErrStoreUnavailable возвращается при прочих ошибках хранилища
	ErrStoreUnavailable = errors.New("create_booking: store unavailable")
)

// knownErrors ошибки, которые возвращаются вызывающему без переупаковки
var knownErrors = []error{
	ErrMissingRequiredFields,
	ErrPastDateNotBookable,
	ErrInvalidInput,
	ErrFieldNotFound,
	ErrSlotNotOffered,
	ErrSlotNotAvailable,
	ErrStoreTimeout,
	ErrStoreUnavailable,
}

func isKnownError(err error) bool {
	for _, known := range knownErrors {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}
