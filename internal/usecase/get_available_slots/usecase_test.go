package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ArenaBooking/pkg/logger"
)

var monday = time.Date(2024, 12, 23, 0, 0, 0, 0, time.UTC)

func seedFields() *memory.FieldStore {
	fields := memory.NewFieldStore()
	fields.Put(
		&domain.Field{ID: "F1", Name: "Arena Central", FieldType: domain.FieldTypeFutsal, PricePerHour: 80},
		&domain.ScheduleRule{DayOfWeek: time.Monday, StartTime: "20:00", EndTime: "21:00", Price: 90, BaseAvailable: true},
		&domain.ScheduleRule{DayOfWeek: time.Monday, StartTime: "18:00", EndTime: "19:00", Price: 80, BaseAvailable: true},
		&domain.ScheduleRule{DayOfWeek: time.Monday, StartTime: "19:00", EndTime: "20:00", Price: 80, BaseAvailable: false},
		&domain.ScheduleRule{DayOfWeek: time.Tuesday, StartTime: "18:00", EndTime: "19:00", Price: 70, BaseAvailable: true},
	)
	fields.Put(&domain.Field{ID: "F2", Name: "Sem horários", FieldType: domain.FieldTypeBeach})
	return fields
}

func newUseCase(bookings BookingRepository) *UseCase {
	return NewUseCase(seedFields(), bookings, logger.NewNop())
}

func TestExecuteGeneratesSlotsForWeekday(t *testing.T) {
	uc := newUseCase(memory.NewBookingStore())

	resp, err := uc.Execute(context.Background(), &Request{FieldID: "F1", Date: monday.Add(15 * time.Hour)})
	require.NoError(t, err)

	assert.Equal(t, "F1", resp.FieldID)
	assert.Equal(t, monday, resp.Date)
	require.Len(t, resp.Slots, 2)

	assert.Equal(t, Slot{StartTime: "18:00", EndTime: "19:00", Price: 80, IsAvailable: true}, resp.Slots[0])
	assert.Equal(t, Slot{StartTime: "20:00", EndTime: "21:00", Price: 90, IsAvailable: true}, resp.Slots[1])
}

func TestExecuteMarksBookedSlots(t *testing.T) {
	bookings := memory.NewBookingStore()
	_, err := bookings.Create(context.Background(), &domain.Booking{
		ID: "b1", FieldID: "F1", BookingDate: monday, StartTime: "20:00", EndTime: "21:00",
		PlayerName: "João", Status: domain.StatusPending,
	})
	require.NoError(t, err)
	_, err = bookings.Create(context.Background(), &domain.Booking{
		ID: "b2", FieldID: "F1", BookingDate: monday, StartTime: "18:00", EndTime: "19:00",
		PlayerName: "Ana", Status: domain.StatusCancelled,
	})
	require.NoError(t, err)

	uc := newUseCase(bookings)

	resp, err := uc.Execute(context.Background(), &Request{FieldID: "F1", Date: monday})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)

	assert.True(t, resp.Slots[0].IsAvailable, "cancelled booking must not hold the slot")
	assert.False(t, resp.Slots[1].IsAvailable)
}

func TestExecuteIsDeterministic(t *testing.T) {
	uc := newUseCase(memory.NewBookingStore())

	first, err := uc.Execute(context.Background(), &Request{FieldID: "F1", Date: monday})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{FieldID: "F1", Date: monday})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecutePastDateStillResolved(t *testing.T) {
	uc := newUseCase(memory.NewBookingStore())

	// 2023-12-25 тоже понедельник
	resp, err := uc.Execute(context.Background(), &Request{FieldID: "F1", Date: monday.AddDate(0, 0, -7*52)})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 2)
}

func TestExecuteFieldWithoutSchedule(t *testing.T) {
	uc := newUseCase(memory.NewBookingStore())

	resp, err := uc.Execute(context.Background(), &Request{FieldID: "F2", Date: monday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecuteValidation(t *testing.T) {
	uc := newUseCase(memory.NewBookingStore())

	_, err := uc.Execute(context.Background(), &Request{FieldID: "  ", Date: monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{FieldID: "F1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteFieldNotFound(t *testing.T) {
	uc := newUseCase(memory.NewBookingStore())

	_, err := uc.Execute(context.Background(), &Request{FieldID: "F404", Date: monday})
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) GetByFieldAndDate(ctx context.Context, filter domain.FieldBookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestExecuteStoreFailures(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		want    error
	}{
		{name: "unavailable", repoErr: errors.New("connection refused"), want: ErrStoreUnavailable},
		{name: "timeout", repoErr: bookingRepo.ErrQueryTimeout, want: ErrStoreTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepository{}
			repo.On("GetByFieldAndDate", mock.Anything, domain.FieldBookingsFilter{FieldID: "F1", Date: monday}).
				Return(nil, tt.repoErr)

			uc := newUseCase(repo)
			_, err := uc.Execute(context.Background(), &Request{FieldID: "F1", Date: monday})

			assert.ErrorIs(t, err, tt.want)
			repo.AssertExpectations(t)
		})
	}
}
