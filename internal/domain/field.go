package domain

import (
	"fmt"
	"strings"
	"time"
)

// FieldType тип покрытия/формата площадки
type FieldType string

const (
	FieldTypeSociety FieldType = "SOCIETY"
	FieldTypeFutsal  FieldType = "FUTSAL"
	FieldTypeBeach   FieldType = "BEACH"
	FieldTypeIndoor  FieldType = "INDOOR"
)

// FieldTypes список допустимых типов площадок
var FieldTypes = []FieldType{
	FieldTypeSociety,
	FieldTypeFutsal,
	FieldTypeBeach,
	FieldTypeIndoor,
}

// ParseFieldType разбирает тип площадки без учета регистра
func ParseFieldType(s string) (FieldType, error) {
	ft := FieldType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range FieldTypes {
		if ft == known {
			return ft, nil
		}
	}
	return "", fmt.Errorf("unknown field type %q", s)
}

// Field represents a sports field available for rent
type Field struct {
	ID           string
	Name         string
	Location     string
	FieldType    FieldType
	PricePerHour float64 // Справочная цена, фактическая цена берется из правила расписания
	Rating       float64 // 0-5
	Amenities    []string
	OwnerID      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasAmenities returns true if the field provides every listed amenity
func (f *Field) HasAmenities(required []string) bool {
	if len(required) == 0 {
		return true
	}
	present := make(map[string]struct{}, len(f.Amenities))
	for _, a := range f.Amenities {
		present[a] = struct{}{}
	}
	for _, a := range required {
		if _, ok := present[a]; !ok {
			return false
		}
	}
	return true
}

// PriceRange диапазон цены, границы включительно
type PriceRange struct {
	Min float64
	Max float64
}

// Contains returns true if price is within the inclusive range
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// TimeRange интервал времени суток. Зарезервирован, при поиске не учитывается.
type TimeRange struct {
	Start string
	End   string
}

// FieldFilters фильтры каталога площадок. nil/пустое поле - без ограничения.
type FieldFilters struct {
	Location   *string
	FieldType  *FieldType
	PriceRange *PriceRange
	Amenities  []string
	TimeRange  *TimeRange
}

// IsEmpty returns true if no filter is set
func (f FieldFilters) IsEmpty() bool {
	return f.Location == nil &&
		f.FieldType == nil &&
		f.PriceRange == nil &&
		len(f.Amenities) == 0 &&
		f.TimeRange == nil
}
