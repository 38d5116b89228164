package search_fields

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ArenaBooking/pkg/logger"
	"github.com/m04kA/SMC-ArenaBooking/pkg/ptr"
)

func TestExecute(t *testing.T) {
	store := memory.NewFieldStore()
	for _, f := range catalog() {
		store.Put(f)
	}
	uc := NewUseCase(store, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Filters: domain.FieldFilters{
		FieldType: ptr.Ptr(domain.FieldTypeFutsal),
	}})
	require.NoError(t, err)
	assert.Equal(t, []string{"F1", "F3", "F4", "F6"}, ids(resp.Fields))
}

func TestExecuteInvalidFilters(t *testing.T) {
	uc := NewUseCase(memory.NewFieldStore(), logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Filters: domain.FieldFilters{
		PriceRange: &domain.PriceRange{Min: 60, Max: 40},
	}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Filters: domain.FieldFilters{
		TimeRange: &domain.TimeRange{Start: "morning", End: "10:00"},
	}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
