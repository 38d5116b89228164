package fields

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	fieldRepo "github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/field"
	"github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ArenaBooking/pkg/logger"
)

func TestGetByID(t *testing.T) {
	store := memory.NewFieldStore()
	store.Put(&domain.Field{ID: "F1", Name: "Arena Vila", Location: "Vila Mariana", FieldType: domain.FieldTypeFutsal, PricePerHour: 80},
		&domain.ScheduleRule{DayOfWeek: time.Monday, StartTime: "19:00", EndTime: "20:00", Price: 95, BaseAvailable: true},
		&domain.ScheduleRule{DayOfWeek: time.Monday, StartTime: "18:00", EndTime: "19:00", Price: 80, BaseAvailable: true},
		&domain.ScheduleRule{DayOfWeek: time.Sunday, StartTime: "10:00", EndTime: "11:00", Price: 60, BaseAvailable: false},
	)

	svc := NewService(store, memory.TxManager{}, logger.NewNop())

	resp, err := svc.GetByID(context.Background(), "F1")
	require.NoError(t, err)

	assert.Equal(t, "Arena Vila", resp.Name)
	assert.Equal(t, "FUTSAL", resp.FieldType)
	assert.NotNil(t, resp.Amenities)
	require.Len(t, resp.Schedule, 3)
	assert.Equal(t, "Sunday", resp.Schedule[0].Day)
	assert.False(t, resp.Schedule[0].Available)
	assert.Equal(t, "18:00", resp.Schedule[1].StartTime)
	assert.Equal(t, 95.0, resp.Schedule[2].Price)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(memory.NewFieldStore(), memory.TxManager{}, logger.NewNop())

	_, err := svc.GetByID(context.Background(), "F404")
	assert.ErrorIs(t, err, ErrFieldNotFound)

	_, err = svc.GetByID(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

type mockFieldRepository struct {
	mock.Mock
}

func (m *mockFieldRepository) GetByID(ctx context.Context, id string) (*domain.Field, error) {
	args := m.Called(ctx, id)
	if f := args.Get(0); f != nil {
		return f.(*domain.Field), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFieldRepository) ListScheduleRules(ctx context.Context, fieldID string) ([]*domain.ScheduleRule, error) {
	args := m.Called(ctx, fieldID)
	if r := args.Get(0); r != nil {
		return r.([]*domain.ScheduleRule), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestGetByIDStoreErrors(t *testing.T) {
	repo := &mockFieldRepository{}
	repo.On("GetByID", mock.Anything, "F1").Return(&domain.Field{ID: "F1"}, nil)
	repo.On("ListScheduleRules", mock.Anything, "F1").Return(nil, fieldRepo.ErrQueryTimeout)

	repo2 := &mockFieldRepository{}
	repo2.On("GetByID", mock.Anything, "F1").Return(nil, errors.New("connection refused"))

	_, err := NewService(repo, memory.TxManager{}, logger.NewNop()).GetByID(context.Background(), "F1")
	assert.ErrorIs(t, err, ErrStoreTimeout)

	_, err = NewService(repo2, memory.TxManager{}, logger.NewNop()).GetByID(context.Background(), "F1")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	repo.AssertExpectations(t)
	repo2.AssertExpectations(t)
}

type failingTxManager struct {
	err error
}

func (m failingTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.err
}

func TestGetByIDTransactionFailure(t *testing.T) {
	svc := NewService(memory.NewFieldStore(), failingTxManager{err: errors.New("txmanager: failed to begin transaction")}, logger.NewNop())

	_, err := svc.GetByID(context.Background(), "F1")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
