package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/booking"
	fieldRepo "github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/field"
)

// UseCase use case для получения слотов площадки на дату
type UseCase struct {
	fieldRepo   FieldRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	fieldRepo FieldRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		fieldRepo:   fieldRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения слотов.
// Даты в прошлом не отсекаются: запрет бронирования прошлых дат проверяется при создании.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.TruncateDate(req.Date)
	uc.logger.Info("GetAvailableSlots: field=%s, date=%s", req.FieldID, date.Format(domain.DateFormat))

	slots, err := uc.Resolve(ctx, req.FieldID, date)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: resolved %d slots for field=%s, date=%s",
		len(slots), req.FieldID, date.Format(domain.DateFormat))

	return &Response{
		FieldID: req.FieldID,
		Date:    date,
		Slots:   toResponseSlots(slots),
	}, nil
}

// Resolve вычисляет слоты площадки на дату с учетом активных бронирований.
// Внутри транзакции чтение бронирований блокирует строки (см. репозиторий),
// поэтому метод используется и при создании бронирования.
func (uc *UseCase) Resolve(ctx context.Context, fieldID string, date time.Time) ([]*domain.TimeSlotInstance, error) {
	date = domain.TruncateDate(date)

	// 1. Проверяем существование площадки
	if _, err := uc.fieldRepo.GetByID(ctx, fieldID); err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			uc.logger.Warn("GetAvailableSlots: field id=%s not found", fieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get field id=%s: %v", fieldID, err)
		return nil, storeError(ctx, "failed to get field", err)
	}

	// 2. Разворачиваем расписание на дату
	rules, err := uc.fieldRepo.ListScheduleRules(ctx, fieldID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule of field id=%s: %v", fieldID, err)
		return nil, storeError(ctx, "failed to get schedule", err)
	}

	slots := generateSlots(rules, date)
	if len(slots) == 0 {
		return slots, nil
	}

	// 3. Помечаем занятые слоты
	bookings, err := uc.bookingRepo.GetByFieldAndDate(ctx, domain.FieldBookingsFilter{
		FieldID: fieldID,
		Date:    date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings of field id=%s: %v", fieldID, err)
		return nil, storeError(ctx, "failed to get bookings", err)
	}

	markBooked(slots, bookings)

	return slots, nil
}

// storeError различает таймаут хранилища и прочие ошибки
func storeError(ctx context.Context, msg string, err error) error {
	if IsTimeout(ctx, err) {
		return fmt.Errorf("%w: %s: %v", ErrStoreTimeout, msg, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, msg, err)
}

// IsTimeout сообщает, вызвана ли ошибка хранилища истечением времени
func IsTimeout(ctx context.Context, err error) bool {
	return errors.Is(err, bookingRepo.ErrQueryTimeout) ||
		errors.Is(err, fieldRepo.ErrQueryTimeout) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(ctx.Err(), context.DeadlineExceeded)
}
