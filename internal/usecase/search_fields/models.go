package search_fields

import "github.com/m04kA/SMC-ArenaBooking/internal/domain"

// Request модель запроса поиска
type Request struct {
	Filters domain.FieldFilters
}

// Response модель ответа: площадки в порядке каталога
type Response struct {
	Fields []*domain.Field
}
