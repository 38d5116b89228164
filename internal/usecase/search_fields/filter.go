package search_fields

import (
	"strings"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
)

// Search применяет фильтры к каталогу. Все заданные фильтры объединяются через И,
// незаданный фильтр ничего не ограничивает. Порядок каталога сохраняется,
// результат - новый слайс, каталог не изменяется.
// TimeRange зарезервирован и не учитывается.
func Search(catalog []*domain.Field, filters domain.FieldFilters) []*domain.Field {
	if filters.IsEmpty() {
		return append(make([]*domain.Field, 0, len(catalog)), catalog...)
	}

	result := make([]*domain.Field, 0, len(catalog))

	for _, field := range catalog {
		// nil-запись не может удовлетворить заданному фильтру
		if field == nil {
			continue
		}
		if filters.Location != nil &&
			!strings.Contains(strings.ToLower(field.Location), strings.ToLower(*filters.Location)) {
			continue
		}
		if filters.FieldType != nil && field.FieldType != *filters.FieldType {
			continue
		}
		if filters.PriceRange != nil && !filters.PriceRange.Contains(field.PricePerHour) {
			continue
		}
		if !field.HasAmenities(filters.Amenities) {
			continue
		}
		result = append(result, field)
	}

	return result
}
