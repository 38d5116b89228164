package search_fields

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

func validateFilters(f domain.FieldFilters) error {
	if f.Location != nil && utf8.RuneCountInString(*f.Location) > domain.MaxLocationFilterLen {
		return fmt.Errorf("%w: location is longer than %d characters", ErrInvalidInput, domain.MaxLocationFilterLen)
	}

	if f.PriceRange != nil {
		if f.PriceRange.Min < 0 || f.PriceRange.Max < 0 {
			return fmt.Errorf("%w: price range bounds must be >= 0", ErrInvalidInput)
		}
		if f.PriceRange.Min > f.PriceRange.Max {
			return fmt.Errorf("%w: minPrice must not exceed maxPrice", ErrInvalidInput)
		}
	}

	if f.TimeRange != nil {
		if _, err := types.NewTimeStringFromString(f.TimeRange.Start); err != nil {
			return fmt.Errorf("%w: invalid time range start %q", ErrInvalidInput, f.TimeRange.Start)
		}
		if _, err := types.NewTimeStringFromString(f.TimeRange.End); err != nil {
			return fmt.Errorf("%w: invalid time range end %q", ErrInvalidInput, f.TimeRange.End)
		}
	}

	return nil
}
