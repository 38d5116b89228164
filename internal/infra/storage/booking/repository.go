package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ArenaBooking/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"field_id",
	"booking_date",
	"start_time",
	"end_time",
	"player_name",
	"player_contact",
	"payment_method",
	"total_price",
	"status",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование. ID генерирует вызывающий код.
// Если в контексте передана активная транзакция, использует её.
//
// Уникальный частичный индекс bookings_active_slot_uidx не дает создать второе
// активное бронирование на тот же слот: нарушение возвращается как ErrSlotNotAvailable.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"field_id",
			"booking_date",
			"start_time",
			"end_time",
			"player_name",
			"player_contact",
			"payment_method",
			"total_price",
			"status",
			"created_at",
			"updated_at",
		).
		Values(
			booking.ID,
			booking.FieldID,
			booking.BookingDate.Format(domain.DateFormat),
			booking.StartTime,
			booking.EndTime,
			booking.PlayerName,
			booking.PlayerContact,
			booking.PaymentMethod,
			booking.TotalPrice,
			booking.Status,
			booking.CreatedAt,
			booking.CreatedAt,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, mapError(ErrExecQuery, "Create - execute insert", err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, mapError(ErrScanRow, "GetByID - scan booking", err)
	}

	return booking, nil
}

// GetByFieldAndDate получает бронирования площадки на дату, отсортированные по времени начала.
// По умолчанию возвращаются только активные бронирования (PENDING, CONFIRMED).
//
// Внутри транзакции строки блокируются (FOR UPDATE). Это не защищает от вставки
// новых строк, поэтому окончательной гарантией остается уникальный индекс.
func (r *Repository) GetByFieldAndDate(ctx context.Context, filter domain.FieldBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"field_id": filter.FieldID}).
		Where(squirrel.Eq{"booking_date": filter.Date.Format(domain.DateFormat)})

	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.ActiveStatusStrings()})
	}

	selectBuilder = selectBuilder.OrderBy("start_time ASC", "created_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFieldAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(ErrExecQuery, "GetByFieldAndDate - execute query", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования.
// При переводе в CANCELLED проставляет cancelled_at.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()"))

	if status == domain.StatusCancelled {
		updateBuilder = updateBuilder.Set("cancelled_at", squirrel.Expr("NOW()"))
	} else {
		updateBuilder = updateBuilder.Set("cancelled_at", nil)
	}

	query, args, err := updateBuilder.Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(ErrExecQuery, "UpdateStatus - execute update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime
	var bookingDate time.Time

	err := row.Scan(
		&booking.ID,
		&booking.FieldID,
		&bookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.PlayerName,
		&booking.PlayerContact,
		&booking.PaymentMethod,
		&booking.TotalPrice,
		&booking.Status,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.BookingDate = domain.TruncateDate(bookingDate)
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(ErrScanRow, "scanBookings - rows error", err)
	}

	return bookings, nil
}
