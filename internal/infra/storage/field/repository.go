package field

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ArenaBooking/pkg/psqlbuilder"
)

const pqQueryCanceled = "57014"

var fieldColumns = []string{
	"id",
	"name",
	"location",
	"field_type",
	"price_per_hour",
	"rating",
	"amenities",
	"owner_id",
	"created_at",
	"updated_at",
}

var ruleColumns = []string{
	"id",
	"field_id",
	"day_of_week",
	"start_time",
	"end_time",
	"price",
	"base_available",
}

// Repository репозиторий площадок и их расписаний (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Field, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(fieldColumns...).
		From("fields").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	field, err := scanField(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFieldNotFound
	}
	if err != nil {
		return nil, mapError(ErrScanRow, "GetByID - scan field", err)
	}

	return field, nil
}

// List возвращает весь каталог площадок в порядке добавления
func (r *Repository) List(ctx context.Context) ([]*domain.Field, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(fieldColumns...).
		From("fields").
		OrderBy("created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(ErrExecQuery, "List - execute query", err)
	}
	defer rows.Close()

	fields := make([]*domain.Field, 0)
	for rows.Next() {
		field, err := scanField(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		fields = append(fields, field)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(ErrScanRow, "List - rows error", err)
	}

	return fields, nil
}

// ListScheduleRules возвращает недельное расписание площадки,
// отсортированное по дню недели и времени начала
func (r *Repository) ListScheduleRules(ctx context.Context, fieldID string) ([]*domain.ScheduleRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("schedule_rules").
		Where(squirrel.Eq{"field_id": fieldID}).
		OrderBy("day_of_week ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListScheduleRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(ErrExecQuery, "ListScheduleRules - execute query", err)
	}
	defer rows.Close()

	rules := make([]*domain.ScheduleRule, 0)
	for rows.Next() {
		var rule domain.ScheduleRule
		var dayOfWeek int

		if err := rows.Scan(
			&rule.ID,
			&rule.FieldID,
			&dayOfWeek,
			&rule.StartTime,
			&rule.EndTime,
			&rule.Price,
			&rule.BaseAvailable,
		); err != nil {
			return nil, fmt.Errorf("%w: ListScheduleRules - scan row: %v", ErrScanRow, err)
		}

		rule.DayOfWeek = time.Weekday(dayOfWeek)
		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(ErrScanRow, "ListScheduleRules - rows error", err)
	}

	return rules, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanField(row rowScanner) (*domain.Field, error) {
	var field domain.Field
	var amenities pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&field.ID,
		&field.Name,
		&field.Location,
		&field.FieldType,
		&field.PricePerHour,
		&field.Rating,
		&amenities,
		&field.OwnerID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	field.Amenities = []string(amenities)
	if field.Amenities == nil {
		field.Amenities = []string{}
	}
	field.CreatedAt = createdAt.Time
	field.UpdatedAt = updatedAt.Time

	return &field, nil
}

func mapError(fallback error, op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %v", ErrQueryTimeout, op, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqQueryCanceled {
		return fmt.Errorf("%w: %s: %v", ErrQueryTimeout, op, err)
	}

	return fmt.Errorf("%w: %s: %v", fallback, op, err)
}
