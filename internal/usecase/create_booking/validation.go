package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

// validateRequest проверяет обязательные поля и формат.
// Порядок проверок фиксирован: первая ошибка возвращается.
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrMissingRequiredFields)
	}

	missing := make([]string, 0, 4)
	if strings.TrimSpace(req.FieldID) == "" {
		missing = append(missing, "fieldId")
	}
	if req.Date.IsZero() {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(req.StartTime.String()) == "" {
		missing = append(missing, "startTime")
	}
	if strings.TrimSpace(req.PlayerName) == "" {
		missing = append(missing, "playerName")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequiredFields, strings.Join(missing, ", "))
	}

	return nil
}

// validateDate запрещает бронирование дат раньше сегодняшней (в часовом поясе loc)
func validateDate(date, now time.Time, loc *time.Location) error {
	if loc != nil {
		now = now.In(loc)
	}
	if domain.TruncateDate(date).Before(domain.TruncateDate(now)) {
		return fmt.Errorf("%w: %s is before %s", ErrPastDateNotBookable,
			date.Format(domain.DateFormat), now.Format(domain.DateFormat))
	}
	return nil
}

// validateDetails проверяет длины строк и статус, возвращает нормализованное время начала
func validateDetails(req *Request) (types.TimeString, error) {
	start, err := types.NewTimeStringFromString(req.StartTime.String())
	if err != nil {
		return "", fmt.Errorf("%w: invalid startTime %q", ErrInvalidInput, req.StartTime)
	}

	if utf8.RuneCountInString(req.PlayerName) > domain.MaxPlayerNameLength {
		return "", fmt.Errorf("%w: playerName is longer than %d characters", ErrInvalidInput, domain.MaxPlayerNameLength)
	}
	if req.PlayerContact != nil && utf8.RuneCountInString(*req.PlayerContact) > domain.MaxPlayerContactLength {
		return "", fmt.Errorf("%w: playerContact is longer than %d characters", ErrInvalidInput, domain.MaxPlayerContactLength)
	}
	if req.PaymentMethod != nil && utf8.RuneCountInString(*req.PaymentMethod) > domain.MaxPaymentMethodLength {
		return "", fmt.Errorf("%w: paymentMethod is longer than %d characters", ErrInvalidInput, domain.MaxPaymentMethodLength)
	}
	if req.TotalPrice != nil && *req.TotalPrice < 0 {
		return "", fmt.Errorf("%w: totalPrice must be >= 0", ErrInvalidInput)
	}

	if req.Status != "" && !req.Status.IsActive() {
		return "", fmt.Errorf("%w: status must be %s or %s", ErrInvalidInput, domain.StatusPending, domain.StatusConfirmed)
	}

	return start, nil
}

// findSlot ищет слот по времени начала
func findSlot(slots []*domain.TimeSlotInstance, start types.TimeString) *domain.TimeSlotInstance {
	for _, slot := range slots {
		if slot.StartTime.Equal(start) {
			return slot
		}
	}
	return nil
}
