package fields

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	fieldRepo "github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/field"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/fields/models"
)

// Service сервис для чтения каталога площадок
type Service struct {
	fieldRepo FieldRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(fieldRepo FieldRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		fieldRepo: fieldRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetByID получает площадку вместе с недельным расписанием
func (s *Service) GetByID(ctx context.Context, id string) (*models.FieldDetailsResponse, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: field id is required", ErrInvalidInput)
	}

	s.logger.Info("GetByID: fetching field id=%s", id)

	var (
		field *domain.Field
		rules []*domain.ScheduleRule
	)

	// Площадка и расписание читаются из одного снимка
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		field, err = s.fieldRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, fieldRepo.ErrFieldNotFound) {
				s.logger.Warn("GetByID: field id=%s not found", id)
				return ErrFieldNotFound
			}
			s.logger.Error("GetByID: repository error for field id=%s: %v", id, err)
			return storeError(txCtx, "GetByID - failed to get field", err)
		}

		rules, err = s.fieldRepo.ListScheduleRules(txCtx, id)
		if err != nil {
			s.logger.Error("GetByID: failed to get schedule of field id=%s: %v", id, err)
			return storeError(txCtx, "GetByID - failed to get schedule", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrFieldNotFound) || errors.Is(err, ErrStoreTimeout) || errors.Is(err, ErrStoreUnavailable) {
			return nil, err
		}
		s.logger.Error("GetByID: transaction failed for field id=%s: %v", id, err)
		return nil, storeError(ctx, "GetByID - transaction failed", err)
	}

	s.logger.Info("GetByID: field id=%s has %d schedule rules", id, len(rules))

	return &models.FieldDetailsResponse{
		FieldResponse: *models.FromDomainField(field),
		Schedule:      models.FromDomainSchedule(rules),
	}, nil
}

func storeError(ctx context.Context, msg string, err error) error {
	if errors.Is(err, fieldRepo.ErrQueryTimeout) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %v", ErrStoreTimeout, msg, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, msg, err)
}
