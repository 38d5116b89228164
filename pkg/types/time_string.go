package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	layoutShort = "15:04"
	layoutLong  = "15:04:05"
)

var (
	// ErrInvalidFormat возвращается, когда строка не является временем HH:MM или HH:MM:SS
	ErrInvalidFormat = errors.New("invalid time string format")

	// ErrUnsupportedScanType возвращается при сканировании значения неподдерживаемого типа
	ErrUnsupportedScanType = errors.New("unsupported scan type for TimeString")
)

// TimeString время суток в нормализованном виде "HH:MM".
// Секунды допускаются при разборе и отбрасываются.
type TimeString string

// NewTimeString берет время суток из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(layoutShort))
}

// NewTimeStringFromString разбирает "HH:MM" или "HH:MM:SS"
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{layoutShort, layoutLong} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimeString(t), nil
		}
	}
	return "", ErrInvalidFormat
}

func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат
func (t TimeString) Validate() error {
	_, err := time.Parse(layoutShort, string(t))
	if err != nil {
		return ErrInvalidFormat
	}
	return nil
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(layoutShort, string(t))
	if err != nil {
		return 0, ErrInvalidFormat
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// Compare возвращает -1, 0 или 1. Некорректное время считается раньше любого корректного.
func (t TimeString) Compare(other TimeString) int {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	switch {
	case errA != nil && errB != nil:
		return strings.Compare(string(t), string(other))
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (t TimeString) IsBefore(other TimeString) bool {
	return t.Compare(other) < 0
}

func (t TimeString) IsAfter(other TimeString) bool {
	return t.Compare(other) > 0
}

func (t TimeString) Equal(other TimeString) bool {
	return t.Compare(other) == 0
}

// Scan реализует sql.Scanner (колонки TIME приходят строкой "HH:MM:SS" или time.Time)
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedScanType, src)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}
