package get_field_bookings

import (
	"context"

	"github.com/m04kA/SMC-ArenaBooking/internal/service/bookings/models"
)

type BookingService interface {
	ListByFieldAndDate(ctx context.Context, req *models.ListByFieldRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
