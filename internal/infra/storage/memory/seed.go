package memory

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

// Seed начальные данные каталога в формате TOML:
//
//	[[fields]]
//	id = "F1"
//	name = "Arena Central"
//	type = "FUTSAL"
//	price_per_hour = 80
//
//	  [[fields.schedule]]
//	  day = 1
//	  start = "18:00"
//	  end = "19:00"
//	  price = 80
type Seed struct {
	Fields []SeedField `toml:"fields"`
}

type SeedField struct {
	ID           string         `toml:"id"`
	Name         string         `toml:"name"`
	Location     string         `toml:"location"`
	Type         string         `toml:"type"`
	PricePerHour float64        `toml:"price_per_hour"`
	Rating       float64        `toml:"rating"`
	Amenities    []string       `toml:"amenities"`
	OwnerID      string         `toml:"owner_id"`
	Schedule     []SeedSchedule `toml:"schedule"`
}

type SeedSchedule struct {
	Day       int     `toml:"day"`
	Start     string  `toml:"start"`
	End       string  `toml:"end"`
	Price     float64 `toml:"price"`
	Available *bool   `toml:"available"` // по умолчанию true
}

// LoadSeed читает файл с начальными данными
func LoadSeed(path string) (*Seed, error) {
	var seed Seed
	if _, err := toml.DecodeFile(path, &seed); err != nil {
		return nil, fmt.Errorf("failed to decode seed file %s: %w", path, err)
	}
	return &seed, nil
}

// Apply проверяет данные и загружает их в хранилище площадок
func (s *Seed) Apply(store *FieldStore) error {
	now := time.Now()

	for i, sf := range s.Fields {
		field, rules, err := sf.toDomain(now)
		if err != nil {
			return fmt.Errorf("seed field #%d (%s): %w", i, sf.ID, err)
		}
		if err := store.Put(field, rules...); err != nil {
			return fmt.Errorf("seed field #%d (%s): %w", i, sf.ID, err)
		}
	}
	return nil
}

func (sf SeedField) toDomain(now time.Time) (*domain.Field, []*domain.ScheduleRule, error) {
	if sf.ID == "" {
		return nil, nil, fmt.Errorf("id is required")
	}
	fieldType, err := domain.ParseFieldType(sf.Type)
	if err != nil {
		return nil, nil, err
	}
	if sf.PricePerHour < 0 {
		return nil, nil, fmt.Errorf("price_per_hour must be >= 0")
	}
	if sf.Rating < domain.MinRating || sf.Rating > domain.MaxRating {
		return nil, nil, fmt.Errorf("rating must be between %d and %d", domain.MinRating, domain.MaxRating)
	}

	field := &domain.Field{
		ID:           sf.ID,
		Name:         sf.Name,
		Location:     sf.Location,
		FieldType:    fieldType,
		PricePerHour: sf.PricePerHour,
		Rating:       sf.Rating,
		Amenities:    sf.Amenities,
		OwnerID:      sf.OwnerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	rules := make([]*domain.ScheduleRule, 0, len(sf.Schedule))
	for _, ss := range sf.Schedule {
		rule, err := ss.toDomain(sf.ID)
		if err != nil {
			return nil, nil, err
		}
		rules = append(rules, rule)
	}
	return field, rules, nil
}

func (ss SeedSchedule) toDomain(fieldID string) (*domain.ScheduleRule, error) {
	if ss.Day < 0 || ss.Day > 6 {
		return nil, fmt.Errorf("day must be between 0 (Sunday) and 6 (Saturday), got %d", ss.Day)
	}
	start, err := types.NewTimeStringFromString(ss.Start)
	if err != nil {
		return nil, fmt.Errorf("start %q: %w", ss.Start, err)
	}
	end, err := types.NewTimeStringFromString(ss.End)
	if err != nil {
		return nil, fmt.Errorf("end %q: %w", ss.End, err)
	}
	if !start.IsBefore(end) {
		return nil, fmt.Errorf("start %s must be before end %s", start, end)
	}
	if ss.Price < 0 {
		return nil, fmt.Errorf("price must be >= 0")
	}

	available := true
	if ss.Available != nil {
		available = *ss.Available
	}

	return &domain.ScheduleRule{
		FieldID:       fieldID,
		DayOfWeek:     time.Weekday(ss.Day),
		StartTime:     start,
		EndTime:       end,
		Price:         ss.Price,
		BaseAvailable: available,
	}, nil
}
