package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/booking"
	slotsUC "github.com/m04kA/SMC-ArenaBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ArenaBooking/pkg/metrics"
)

// UseCase use case для создания бронирования
type UseCase struct {
	resolver     SlotResolver
	bookingRepo  BookingRepository
	txManager    TransactionManager
	locker       SlotLocker
	publisher    EventPublisher
	metrics      MetricsRecorder
	timeProvider TimeProvider
	newID        func() string
	logger       Logger
	opts         Options
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resolver SlotResolver,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	locker SlotLocker,
	publisher EventPublisher,
	metricsRecorder MetricsRecorder,
	logger Logger,
	opts Options,
) *UseCase {
	if opts.DefaultStatus == "" {
		opts.DefaultStatus = domain.StatusConfirmed
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &UseCase{
		resolver:     resolver,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		locker:       locker,
		publisher:    publisher,
		metrics:      metricsRecorder,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.NewString,
		logger:       logger,
		opts:         opts,
	}
}

// Execute выполняет use case создания бронирования.
//
// Проверка доступности и вставка выполняются как одна единица работы на ключ
// (площадка, дата, время начала): под блокировкой слота и в транзакции.
// Уникальный индекс хранилища покрывает гонку, если блокировку обошли
// (другой экземпляр без Redis, прямой доступ к БД); нарушение возвращается
// той же ошибкой ErrSlotNotAvailable.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Обязательные поля
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.RecordBooking(metrics.OutcomeRejected)
		return nil, err
	}

	uc.logger.Info("CreateBooking: field=%s, date=%s, time=%s, player=%s",
		req.FieldID, req.Date.Format(domain.DateFormat), req.StartTime, req.PlayerName)

	// 2. Дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, uc.opts.Location); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		uc.metrics.RecordBooking(metrics.OutcomeRejected)
		return nil, err
	}

	// 3. Формат и статус
	startTime, err := validateDetails(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.RecordBooking(metrics.OutcomeRejected)
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = uc.opts.DefaultStatus
	}

	if uc.opts.OperationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.opts.OperationTimeout)
		defer cancel()
	}

	date := domain.TruncateDate(req.Date)
	key := domain.SlotKey(req.FieldID, date, startTime)

	// 4. Блокировка слота
	unlock, err := uc.locker.Lock(ctx, key)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to lock slot %s: %v", key, err)
		err = storeError(ctx, "failed to lock slot", err)
		uc.metrics.RecordBooking(outcomeOf(err))
		return nil, err
	}

	var result *domain.Booking

	// 5. Повторная проверка доступности и вставка в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		slots, err := uc.resolver.Resolve(txCtx, req.FieldID, date)
		if err != nil {
			return fromResolverError(txCtx, err)
		}

		slot := findSlot(slots, startTime)
		if slot == nil {
			uc.logger.Warn("CreateBooking: slot %s is not offered", key)
			return ErrSlotNotOffered
		}
		if !slot.IsAvailable {
			uc.logger.Warn("CreateBooking: slot %s is already booked", key)
			return ErrSlotNotAvailable
		}

		if req.TotalPrice != nil && *req.TotalPrice != slot.Price {
			uc.logger.Warn("CreateBooking: client price %.2f differs from slot price %.2f for %s, using slot price",
				*req.TotalPrice, slot.Price, key)
		}

		booking := &domain.Booking{
			ID:            uc.newID(),
			FieldID:       req.FieldID,
			BookingDate:   date,
			StartTime:     slot.StartTime,
			EndTime:       slot.EndTime,
			PlayerName:    req.PlayerName,
			PlayerContact: req.PlayerContact,
			PaymentMethod: req.PaymentMethod,
			TotalPrice:    slot.Price,
			Status:        status,
			CreatedAt:     now.UTC(),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("CreateBooking: slot %s taken concurrently: %v", key, err)
				return ErrSlotNotAvailable
			}
			return storeError(txCtx, "failed to create booking", err)
		}

		result = created
		return nil
	})

	// Слот освобождается сразу после транзакции, до публикации события
	unlock()

	if err != nil {
		if !isKnownError(err) {
			// Ошибки начала/фиксации транзакции
			err = storeError(ctx, "transaction failed", err)
		}
		if errors.Is(err, ErrStoreTimeout) || errors.Is(err, ErrStoreUnavailable) {
			uc.logger.Error("CreateBooking: %v", err)
		}
		uc.metrics.RecordBooking(outcomeOf(err))
		return nil, err
	}

	uc.metrics.RecordBooking(metrics.OutcomeCreated)
	uc.logger.Info("CreateBooking: successfully created booking id=%s for slot %s", result.ID, key)

	// 6. Событие для внешних подписчиков, ошибка не отменяет бронирование
	if err := uc.publisher.PublishJSON(ctx, domain.EventBookingCreated, domain.NewBookingEvent(result, now)); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish %s for booking id=%s: %v",
			domain.EventBookingCreated, result.ID, err)
	}

	return toResponse(result), nil
}

// fromResolverError переводит ошибки get_available_slots в ошибки этого use case
func fromResolverError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, slotsUC.ErrFieldNotFound):
		return ErrFieldNotFound
	case errors.Is(err, slotsUC.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, slotsUC.ErrStoreTimeout):
		return fmt.Errorf("%w: %v", ErrStoreTimeout, err)
	default:
		return storeError(ctx, "failed to resolve slots", err)
	}
}

func storeError(ctx context.Context, msg string, err error) error {
	if slotsUC.IsTimeout(ctx, err) {
		return fmt.Errorf("%w: %s: %v", ErrStoreTimeout, msg, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, msg, err)
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, ErrSlotNotAvailable):
		return metrics.OutcomeConflict
	case errors.Is(err, ErrSlotNotOffered):
		return metrics.OutcomeNotOffered
	case errors.Is(err, ErrStoreTimeout):
		return metrics.OutcomeStoreTimeout
	case errors.Is(err, ErrStoreUnavailable):
		return metrics.OutcomeStoreError
	default:
		return metrics.OutcomeRejected
	}
}
