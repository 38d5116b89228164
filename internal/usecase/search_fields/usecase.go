package search_fields

import (
	"context"
	"errors"
	"fmt"

	fieldRepo "github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/field"
)

// UseCase use case поиска площадок по фильтрам
type UseCase struct {
	fieldRepo FieldRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(fieldRepo FieldRepository, logger Logger) *UseCase {
	return &UseCase{
		fieldRepo: fieldRepo,
		logger:    logger,
	}
}

// Execute загружает каталог и применяет к нему Search
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		req = &Request{}
	}

	if err := validateFilters(req.Filters); err != nil {
		return nil, err
	}

	catalog, err := uc.fieldRepo.List(ctx)
	if err != nil {
		uc.logger.Error("SearchFields: failed to list fields: %v", err)
		if errors.Is(err, fieldRepo.ErrQueryTimeout) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrStoreTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	fields := Search(catalog, req.Filters)

	uc.logger.Info("SearchFields: %d of %d fields match", len(fields), len(catalog))

	return &Response{Fields: fields}, nil
}
