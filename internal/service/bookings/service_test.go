package bookings

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/bookings/models"
	slotsUC "github.com/m04kA/SMC-ArenaBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ArenaBooking/pkg/logger"
	"github.com/m04kA/SMC-ArenaBooking/pkg/metrics"
	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

var monday = time.Date(2024, 12, 23, 0, 0, 0, 0, time.UTC)

type fixedTime time.Time

func (f fixedTime) Now() time.Time { return time.Time(f) }

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) PublishJSON(_ context.Context, key string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, key)
	return nil
}

type fixture struct {
	fields    *memory.FieldStore
	bookings  *memory.BookingStore
	publisher *recordingPublisher
	service   *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	fields := memory.NewFieldStore()
	fields.Put(&domain.Field{ID: "F1", Name: "Arena Vila", FieldType: domain.FieldTypeFutsal, PricePerHour: 80},
		&domain.ScheduleRule{DayOfWeek: time.Monday, StartTime: "18:00", EndTime: "19:00", Price: 80, BaseAvailable: true},
		&domain.ScheduleRule{DayOfWeek: time.Monday, StartTime: "19:00", EndTime: "20:00", Price: 95, BaseAvailable: true},
	)

	bookings := memory.NewBookingStore()
	publisher := &recordingPublisher{}

	svc := NewService(bookings, fields, memory.TxManager{}, publisher, metrics.Noop{}, logger.NewNop())
	svc.timeProvider = fixedTime(time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC))

	return &fixture{fields: fields, bookings: bookings, publisher: publisher, service: svc}
}

func (f *fixture) book(t *testing.T, id, start, end string, status domain.BookingStatus) {
	t.Helper()
	_, err := f.bookings.Create(context.Background(), &domain.Booking{
		ID:          id,
		FieldID:     "F1",
		BookingDate: monday,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		PlayerName:  "João",
		TotalPrice:  80,
		Status:      status,
		CreatedAt:   time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
}

func (f *fixture) slotAvailable(t *testing.T, start string) bool {
	t.Helper()
	resolver := slotsUC.NewUseCase(f.fields, f.bookings, logger.NewNop())
	slots, err := resolver.Resolve(context.Background(), "F1", monday)
	require.NoError(t, err)
	for _, s := range slots {
		if s.StartTime.String() == start {
			return s.IsAvailable
		}
	}
	t.Fatalf("slot %s is not offered", start)
	return false
}

func TestCancelFreesSlot(t *testing.T) {
	f := newFixture(t)
	f.book(t, "b-1", "18:00", "19:00", domain.StatusConfirmed)
	require.False(t, f.slotAvailable(t, "18:00"))

	resp, err := f.service.Cancel(context.Background(), "b-1")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	require.NotNil(t, resp.CancelledAt)
	assert.True(t, f.slotAvailable(t, "18:00"))
	assert.Equal(t, []string{domain.EventBookingCancelled}, f.publisher.events)
}

func TestCancelIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.book(t, "b-1", "18:00", "19:00", domain.StatusPending)

	_, err := f.service.Cancel(context.Background(), "b-1")
	require.NoError(t, err)

	resp, err := f.service.Cancel(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Len(t, f.publisher.events, 1, "second cancel must not publish")
}

func TestCancelUnknownBooking(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Cancel(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.service.Cancel(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		initial domain.BookingStatus
		target  string
		want    domain.BookingStatus
		wantErr error
	}{
		{name: "pending to confirmed", initial: domain.StatusPending, target: "CONFIRMED", want: domain.StatusConfirmed},
		{name: "lower case status", initial: domain.StatusPending, target: "confirmed", want: domain.StatusConfirmed},
		{name: "same status", initial: domain.StatusConfirmed, target: "CONFIRMED", want: domain.StatusConfirmed},
		{name: "confirmed to cancelled", initial: domain.StatusConfirmed, target: "CANCELLED", want: domain.StatusCancelled},
		{name: "cancelled to confirmed", initial: domain.StatusCancelled, target: "CONFIRMED", wantErr: ErrInvalidTransition},
		{name: "cancelled to pending", initial: domain.StatusCancelled, target: "PENDING", wantErr: ErrInvalidTransition},
		{name: "confirmed to pending", initial: domain.StatusConfirmed, target: "PENDING", wantErr: ErrInvalidTransition},
		{name: "unknown status", initial: domain.StatusPending, target: "ARCHIVED", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.book(t, "b-1", "18:00", "19:00", tt.initial)

			resp, err := f.service.UpdateStatus(context.Background(), "b-1", &models.UpdateStatusRequest{Status: tt.target})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				stored, getErr := f.bookings.GetByID(context.Background(), "b-1")
				require.NoError(t, getErr)
				assert.Equal(t, tt.initial, stored.Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, string(tt.want), resp.Status)
			stored, err := f.bookings.GetByID(context.Background(), "b-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, stored.Status)
		})
	}
}

func TestListByFieldAndDate(t *testing.T) {
	f := newFixture(t)
	f.book(t, "b-1", "18:00", "19:00", domain.StatusCancelled)
	f.book(t, "b-2", "18:00", "19:00", domain.StatusConfirmed)
	f.book(t, "b-3", "19:00", "20:00", domain.StatusPending)

	active, err := f.service.ListByFieldAndDate(context.Background(), &models.ListByFieldRequest{FieldID: "F1", Date: monday})
	require.NoError(t, err)
	assert.Equal(t, 2, active.Total)

	all, err := f.service.ListByFieldAndDate(context.Background(), &models.ListByFieldRequest{
		FieldID:          "F1",
		Date:             monday.Add(15 * time.Hour),
		IncludeCancelled: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)

	_, err = f.service.ListByFieldAndDate(context.Background(), &models.ListByFieldRequest{FieldID: "F9", Date: monday})
	assert.ErrorIs(t, err, ErrFieldNotFound)

	_, err = f.service.ListByFieldAndDate(context.Background(), &models.ListByFieldRequest{FieldID: "F1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID(t *testing.T) {
	f := newFixture(t)
	f.book(t, "b-1", "19:00", "20:00", domain.StatusConfirmed)

	resp, err := f.service.GetByID(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-23", resp.BookingDate)
	assert.Equal(t, "19:00", resp.StartTime)
	assert.Equal(t, "20:00", resp.EndTime)

	_, err = f.service.GetByID(context.Background(), "b-404")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) GetByFieldAndDate(ctx context.Context, filter domain.FieldBookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if b := args.Get(0); b != nil {
		return b.([]*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func TestStoreErrors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "timeout", repoErr: bookingRepo.ErrQueryTimeout, wantErr: ErrStoreTimeout},
		{name: "deadline", repoErr: context.DeadlineExceeded, wantErr: ErrStoreTimeout},
		{name: "connection lost", repoErr: errors.New("connection reset by peer"), wantErr: ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepository{}
			repo.On("GetByID", mock.Anything, "b-1").Return(&domain.Booking{
				ID: "b-1", FieldID: "F1", BookingDate: monday, StartTime: "18:00", EndTime: "19:00",
				Status: domain.StatusConfirmed,
			}, nil)
			repo.On("UpdateStatus", mock.Anything, "b-1", domain.StatusCancelled).Return(tt.repoErr)

			publisher := &recordingPublisher{}
			svc := NewService(repo, memory.NewFieldStore(), memory.TxManager{}, publisher, metrics.Noop{}, logger.NewNop())

			_, err := svc.Cancel(context.Background(), "b-1")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, publisher.events)
			repo.AssertExpectations(t)
		})
	}
}
