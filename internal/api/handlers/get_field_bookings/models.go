package get_field_bookings

import (
	"strconv"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/bookings/models"
)

// ToServiceRequest создает запрос к сервису из параметров пути и query
func ToServiceRequest(fieldID, dateStr, includeCancelledStr string) (*models.ListByFieldRequest, error) {
	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	req := &models.ListByFieldRequest{
		FieldID: fieldID,
		Date:    date,
	}

	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
