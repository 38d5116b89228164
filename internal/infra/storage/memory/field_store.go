package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	fieldRepo "github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/field"
	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

// FieldStore хранит каталог площадок и расписания в памяти.
// Используется для локального запуска и тестов.
type FieldStore struct {
	mu     sync.RWMutex
	fields map[string]*domain.Field
	order  []string
	rules  map[string][]*domain.ScheduleRule
	nextID int64
}

func NewFieldStore() *FieldStore {
	return &FieldStore{
		fields: make(map[string]*domain.Field),
		rules:  make(map[string][]*domain.ScheduleRule),
	}
}

// Put добавляет или заменяет площадку вместе с расписанием.
// Как и уникальный индекс (field_id, day_of_week, start_time) в БД, отклоняет
// два правила на один день недели и время начала; хранилище при этом не меняется.
func (s *FieldStore) Put(field *domain.Field, rules ...*domain.ScheduleRule) error {
	seen := make(map[string]struct{}, len(rules))
	for _, rule := range rules {
		start := rule.StartTime
		if normalized, err := types.NewTimeStringFromString(start.String()); err == nil {
			start = normalized
		}
		key := fmt.Sprintf("%d|%s", rule.DayOfWeek, start)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: field=%s, day=%s, start=%s",
				fieldRepo.ErrDuplicateScheduleRule, field.ID, rule.DayOfWeek, rule.StartTime)
		}
		seen[key] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.fields[field.ID]; !exists {
		s.order = append(s.order, field.ID)
	}
	s.fields[field.ID] = copyField(field)

	stored := make([]*domain.ScheduleRule, 0, len(rules))
	for _, rule := range rules {
		r := *rule
		r.FieldID = field.ID
		if r.ID == 0 {
			s.nextID++
			r.ID = s.nextID
		}
		stored = append(stored, &r)
	}
	sort.SliceStable(stored, func(i, j int) bool {
		if stored[i].DayOfWeek != stored[j].DayOfWeek {
			return stored[i].DayOfWeek < stored[j].DayOfWeek
		}
		return stored[i].StartTime.IsBefore(stored[j].StartTime)
	})
	s.rules[field.ID] = stored
	return nil
}

func (s *FieldStore) GetByID(ctx context.Context, id string) (*domain.Field, error) {
	if err := checkContext(ctx, fieldRepo.ErrQueryTimeout); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	field, ok := s.fields[id]
	if !ok {
		return nil, fieldRepo.ErrFieldNotFound
	}
	return copyField(field), nil
}

func (s *FieldStore) List(ctx context.Context) ([]*domain.Field, error) {
	if err := checkContext(ctx, fieldRepo.ErrQueryTimeout); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Field, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, copyField(s.fields[id]))
	}
	return result, nil
}

func (s *FieldStore) ListScheduleRules(ctx context.Context, fieldID string) ([]*domain.ScheduleRule, error) {
	if err := checkContext(ctx, fieldRepo.ErrQueryTimeout); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.rules[fieldID]
	result := make([]*domain.ScheduleRule, 0, len(stored))
	for _, rule := range stored {
		r := *rule
		result = append(result, &r)
	}
	return result, nil
}

func copyField(f *domain.Field) *domain.Field {
	c := *f
	c.Amenities = append([]string{}, f.Amenities...)
	return &c
}
