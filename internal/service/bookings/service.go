package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/booking"
	fieldRepo "github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/field"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-ArenaBooking/pkg/metrics"
)

// Service сервис для работы с существующими бронированиями
type Service struct {
	bookingRepo  BookingRepository
	fieldRepo    FieldRepository
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	fieldRepo FieldRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metricsRecorder MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		fieldRepo:    fieldRepo,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metricsRecorder,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// ListByFieldAndDate получает бронирования площадки на дату.
// По умолчанию только активные, отмененные - по флагу IncludeCancelled.
func (s *Service) ListByFieldAndDate(ctx context.Context, req *models.ListByFieldRequest) (*models.BookingListResponse, error) {
	if req == nil || req.FieldID == "" || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: fieldId and date are required", ErrInvalidInput)
	}

	date := domain.TruncateDate(req.Date)
	s.logger.Info("ListByFieldAndDate: field=%s, date=%s, includeCancelled=%t",
		req.FieldID, date.Format(domain.DateFormat), req.IncludeCancelled)

	if _, err := s.fieldRepo.GetByID(ctx, req.FieldID); err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("ListByFieldAndDate: field id=%s not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("ListByFieldAndDate: failed to get field id=%s: %v", req.FieldID, err)
		return nil, storeError(ctx, "ListByFieldAndDate - failed to get field", err)
	}

	bookings, err := s.bookingRepo.GetByFieldAndDate(ctx, domain.FieldBookingsFilter{
		FieldID:         req.FieldID,
		Date:            date,
		IncludeInactive: req.IncludeCancelled,
	})
	if err != nil {
		s.logger.Error("ListByFieldAndDate: repository error for field=%s: %v", req.FieldID, err)
		return nil, storeError(ctx, "ListByFieldAndDate - repository error", err)
	}

	s.logger.Info("ListByFieldAndDate: fetched %d bookings for field=%s", len(bookings), req.FieldID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование и освобождает слот.
// Повторная отмена уже отмененного бронирования успешна и ничего не меняет.
func (s *Service) Cancel(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	var (
		booking   *domain.Booking
		cancelled bool
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		b, err := s.getBooking(txCtx, "Cancel", id)
		if err != nil {
			return err
		}
		booking = b

		if b.IsCancelled() {
			return nil
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, id, domain.StatusCancelled); err != nil {
			return s.fromRepoError(txCtx, "Cancel", id, err)
		}

		now := s.timeProvider.Now().UTC()
		booking.Status = domain.StatusCancelled
		booking.CancelledAt = &now
		booking.UpdatedAt = now
		cancelled = true
		return nil
	})
	if err != nil {
		return nil, s.fromTxError(ctx, "Cancel", err)
	}

	if !cancelled {
		s.logger.Info("Cancel: booking id=%s is already cancelled", id)
		return models.FromDomainBooking(booking), nil
	}

	s.metrics.RecordBooking(metrics.OutcomeCancelled)
	s.logger.Info("Cancel: successfully cancelled booking id=%s, slot %s is free", id, booking.SlotKey())

	if err := s.publisher.PublishJSON(ctx, domain.EventBookingCancelled, domain.NewBookingEvent(booking, *booking.CancelledAt)); err != nil {
		s.logger.Warn("Cancel: failed to publish %s for booking id=%s: %v", domain.EventBookingCancelled, id, err)
	}

	return models.FromDomainBooking(booking), nil
}

// UpdateStatus меняет статус бронирования.
// Допустимо: PENDING -> CONFIRMED, активный -> CANCELLED (через Cancel), тот же статус - без изменений.
// Отмененное бронирование не восстанавливается, слот нужно бронировать заново.
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: status is required", ErrInvalidInput)
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}

	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", id, newStatus)

	if newStatus == domain.StatusCancelled {
		return s.Cancel(ctx, id)
	}

	var booking *domain.Booking

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		b, err := s.getBooking(txCtx, "UpdateStatus", id)
		if err != nil {
			return err
		}
		booking = b

		switch {
		case b.Status == newStatus:
			return nil
		case b.IsCancelled():
			s.logger.Warn("UpdateStatus: booking id=%s is cancelled, cannot move to %s", id, newStatus)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, newStatus)
		case b.Status == domain.StatusConfirmed && newStatus == domain.StatusPending:
			s.logger.Warn("UpdateStatus: booking id=%s is confirmed, cannot move back to %s", id, newStatus)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, newStatus)
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, id, newStatus); err != nil {
			return s.fromRepoError(txCtx, "UpdateStatus", id, err)
		}

		booking.Status = newStatus
		booking.UpdatedAt = s.timeProvider.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, s.fromTxError(ctx, "UpdateStatus", err)
	}

	s.logger.Info("UpdateStatus: booking id=%s has status=%s", id, booking.Status)
	return models.FromDomainBooking(booking), nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op, id string) (*domain.Booking, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.fromRepoError(ctx, op, id, err)
	}
	return booking, nil
}

func (s *Service) fromRepoError(ctx context.Context, op, id string, err error) error {
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		s.logger.Warn("%s: booking id=%s not found", op, id)
		return ErrBookingNotFound
	}
	s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
	return storeError(ctx, op+" - repository error", err)
}

// fromTxError оставляет ошибки сервиса как есть, ошибки транзакции переводит в ошибки хранилища
func (s *Service) fromTxError(ctx context.Context, op string, err error) error {
	for _, known := range []error{
		ErrBookingNotFound, ErrInvalidInput, ErrInvalidTransition, ErrStoreTimeout, ErrStoreUnavailable,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	s.logger.Error("%s: transaction failed: %v", op, err)
	return storeError(ctx, op+" - transaction failed", err)
}

func storeError(ctx context.Context, msg string, err error) error {
	if isTimeout(ctx, err) {
		return fmt.Errorf("%w: %s: %v", ErrStoreTimeout, msg, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, msg, err)
}

func isTimeout(ctx context.Context, err error) bool {
	return errors.Is(err, bookingRepo.ErrQueryTimeout) ||
		errors.Is(err, fieldRepo.ErrQueryTimeout) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(ctx.Err(), context.DeadlineExceeded)
}
