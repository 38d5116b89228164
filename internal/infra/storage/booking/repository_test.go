package booking

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ArenaBooking/pkg/ptr"
)

func setupBookingMock(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	return NewRepository(wrapped), wrapped, mock
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows(bookingColumns)
}

func monday() time.Time {
	return time.Date(2024, 12, 23, 0, 0, 0, 0, time.UTC)
}

func TestCreate(t *testing.T) {
	repo, _, mock := setupBookingMock(t)
	now := time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (id,field_id,booking_date,start_time,end_time,player_name,player_contact,payment_method,total_price,status,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12) RETURNING created_at, updated_at")).
		WithArgs("b-1", "F1", "2024-12-23", "18:00", "19:00", "João", nil, "pix", 80.0, "CONFIRMED", now, now).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), &domain.Booking{
		ID:            "b-1",
		FieldID:       "F1",
		BookingDate:   monday(),
		StartTime:     "18:00",
		EndTime:       "19:00",
		PlayerName:    "João",
		PaymentMethod: ptr.Ptr("pix"),
		TotalPrice:    80,
		Status:        domain.StatusConfirmed,
		CreatedAt:     now,
	})

	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.Equal(t, now, created.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUniqueViolation(t *testing.T) {
	repo, _, mock := setupBookingMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint \"bookings_active_slot_uidx\""})

	_, err := repo.Create(context.Background(), &domain.Booking{
		ID:          "b-2",
		FieldID:     "F1",
		BookingDate: monday(),
		StartTime:   "18:00",
		EndTime:     "19:00",
		PlayerName:  "Maria",
		Status:      domain.StatusConfirmed,
		CreatedAt:   time.Now(),
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDeadlineExceeded(t *testing.T) {
	repo, _, mock := setupBookingMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(context.DeadlineExceeded)

	_, err := repo.Create(context.Background(), &domain.Booking{
		ID:          "b-3",
		FieldID:     "F1",
		BookingDate: monday(),
		StartTime:   "18:00",
		EndTime:     "19:00",
		PlayerName:  "Maria",
		Status:      domain.StatusConfirmed,
		CreatedAt:   time.Now(),
	})

	assert.ErrorIs(t, err, ErrQueryTimeout)
}

func TestGetByID(t *testing.T) {
	repo, _, mock := setupBookingMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs("b-1").
		WillReturnRows(bookingRows().AddRow(
			"b-1", "F1", monday(), "18:00:00", "19:00:00", "João", nil, "pix", 80.0, "CONFIRMED", nil, now, now,
		))

	b, err := repo.GetByID(context.Background(), "b-1")
	require.NoError(t, err)

	assert.Equal(t, "F1", b.FieldID)
	assert.Equal(t, monday(), b.BookingDate)
	assert.Equal(t, "18:00", b.StartTime.String())
	assert.Equal(t, "19:00", b.EndTime.String())
	assert.Nil(t, b.PlayerContact)
	require.NotNil(t, b.PaymentMethod)
	assert.Equal(t, "pix", *b.PaymentMethod)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	assert.Nil(t, b.CancelledAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, _, mock := setupBookingMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(bookingRows())

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByIDMalformedUUID(t *testing.T) {
	repo, _, mock := setupBookingMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WillReturnError(&pq.Error{Code: "22P02", Message: "invalid input syntax for type uuid"})

	_, err := repo.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByFieldAndDateActiveOnly(t *testing.T) {
	repo, _, mock := setupBookingMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE field_id = $1 AND booking_date = $2 AND status IN ($3,$4) ORDER BY start_time ASC, created_at ASC")).
		WithArgs("F1", "2024-12-23", "PENDING", "CONFIRMED").
		WillReturnRows(bookingRows().
			AddRow("b-1", "F1", monday(), "18:00:00", "19:00:00", "João", nil, nil, 80.0, "CONFIRMED", nil, now, now).
			AddRow("b-2", "F1", monday(), "19:00:00", "20:00:00", "Ana", "+55 11", nil, 80.0, "PENDING", nil, now, now))

	bookings, err := repo.GetByFieldAndDate(context.Background(), domain.FieldBookingsFilter{
		FieldID: "F1",
		Date:    monday(),
	})

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "b-1", bookings[0].ID)
	assert.Equal(t, domain.StatusPending, bookings[1].Status)
	require.NotNil(t, bookings[1].PlayerContact)
	assert.Equal(t, "+55 11", *bookings[1].PlayerContact)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByFieldAndDateLocksInsideTransaction(t *testing.T) {
	repo, db, mock := setupBookingMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE field_id = $1 AND booking_date = $2 ORDER BY start_time ASC, created_at ASC FOR UPDATE")).
		WithArgs("F1", "2024-12-23").
		WillReturnRows(bookingRows())
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	ctx := dbmetrics.WithTx(context.Background(), tx)
	bookings, err := repo.GetByFieldAndDate(ctx, domain.FieldBookingsFilter{
		FieldID:         "F1",
		Date:            monday(),
		IncludeInactive: true,
	})

	require.NoError(t, err)
	assert.Empty(t, bookings)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusCancel(t *testing.T) {
	repo, _, mock := setupBookingMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1, updated_at = NOW(), cancelled_at = NOW() WHERE id = $2")).
		WithArgs("CANCELLED", "b-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), "b-1", domain.StatusCancelled)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo, _, mock := setupBookingMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "b-404", domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatusInvalid(t *testing.T) {
	repo, _, _ := setupBookingMock(t)

	err := repo.UpdateStatus(context.Background(), "b-1", domain.BookingStatus("ARCHIVED"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
