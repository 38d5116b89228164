package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

// Business validation constants
const (
	MaxPlayerNameLength    = 100
	MaxPlayerContactLength = 100
	MaxPaymentMethodLength = 50
	MaxLocationFilterLen   = 200
	MinRating              = 0
	MaxRating              = 5
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, освобождающих слот
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих слот
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// ActiveStatusStrings статусы активных бронирований в виде строк для запросов
func ActiveStatusStrings() []string {
	result := make([]string, len(ActiveStatuses))
	for i, s := range ActiveStatuses {
		result[i] = string(s)
	}
	return result
}

// TruncateDate отбрасывает время суток, сохраняя календарную дату
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, strings.TrimSpace(s))
}

// SlotKey ключ слота: площадка, дата и время начала
func SlotKey(fieldID string, date time.Time, start types.TimeString) string {
	return fieldID + "|" + date.Format(DateFormat) + "|" + start.String()
}
