package search_fields

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/fields/models"
	searchFields "github.com/m04kA/SMC-ArenaBooking/internal/usecase/search_fields"
)

// SearchQuery query параметры поиска площадок
type SearchQuery struct {
	Location  string   `validate:"omitempty,max=200"`
	Type      string   `validate:"omitempty,oneof=SOCIETY FUTSAL BEACH INDOOR"`
	MinPrice  *float64 `validate:"omitempty,gte=0"`
	MaxPrice  *float64 `validate:"omitempty,gte=0"`
	Amenities []string `validate:"omitempty,dive,required,max=50"`
	From      string   `validate:"required_with=To,omitempty,datetime=15:04"`
	To        string   `validate:"required_with=From,omitempty,datetime=15:04"`
}

// ParseSearchQuery разбирает query строку. Ошибка - только при нечисловой цене.
func ParseSearchQuery(q url.Values) (*SearchQuery, error) {
	query := &SearchQuery{
		Location: strings.TrimSpace(q.Get("location")),
		Type:     strings.ToUpper(strings.TrimSpace(q.Get("type"))),
		From:     strings.TrimSpace(q.Get("from")),
		To:       strings.TrimSpace(q.Get("to")),
	}

	var err error
	if query.MinPrice, err = parsePrice(q.Get("minPrice")); err != nil {
		return nil, fmt.Errorf("minPrice: %w", err)
	}
	if query.MaxPrice, err = parsePrice(q.Get("maxPrice")); err != nil {
		return nil, fmt.Errorf("maxPrice: %w", err)
	}

	if raw := q.Get("amenities"); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			query.Amenities = append(query.Amenities, strings.TrimSpace(a))
		}
	}

	return query, nil
}

// Validate проверяет значения по тегам validate
func (q *SearchQuery) Validate(v *validator.Validate) error {
	return v.Struct(q)
}

// ToUseCaseRequest конвертирует query в фильтры use case.
// Одна граница цены дополняется открытой второй.
func (q *SearchQuery) ToUseCaseRequest() *searchFields.Request {
	var filters domain.FieldFilters

	if q.Location != "" {
		location := q.Location
		filters.Location = &location
	}
	if q.Type != "" {
		ft := domain.FieldType(q.Type)
		filters.FieldType = &ft
	}
	if q.MinPrice != nil || q.MaxPrice != nil {
		pr := domain.PriceRange{Min: 0, Max: maxPrice}
		if q.MinPrice != nil {
			pr.Min = *q.MinPrice
		}
		if q.MaxPrice != nil {
			pr.Max = *q.MaxPrice
		}
		filters.PriceRange = &pr
	}
	if len(q.Amenities) > 0 {
		filters.Amenities = q.Amenities
	}
	if q.From != "" && q.To != "" {
		filters.TimeRange = &domain.TimeRange{Start: q.From, End: q.To}
	}

	return &searchFields.Request{Filters: filters}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchFields.Response) *models.FieldListResponse {
	return models.FromDomainFieldList(resp.Fields)
}

const maxPrice = 1e12

func parsePrice(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
