package get_field_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-ArenaBooking/internal/service/bookings"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-ArenaBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListByFieldAndDate(ctx context.Context, req *models.ListByFieldRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*models.BookingListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(svc BookingService, url string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/fields/{fieldId}/bookings", NewHandler(svc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("ListByFieldAndDate", mock.Anything, &models.ListByFieldRequest{
		FieldID:          "F1",
		Date:             time.Date(2024, 12, 23, 0, 0, 0, 0, time.UTC),
		IncludeCancelled: true,
	}).Return(&models.BookingListResponse{
		Bookings: []models.BookingResponse{{ID: "b-1", Status: "CANCELLED"}},
		Total:    1,
	}, nil)

	rec := serve(svc, "/api/v1/fields/F1/bookings?date=2024-12-23&includeCancelled=true")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
	svc.AssertExpectations(t)
}

func TestHandleErrors(t *testing.T) {
	svc := &mockService{}
	svc.On("ListByFieldAndDate", mock.Anything, mock.Anything).Return(nil, bookings.ErrFieldNotFound)

	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/fields/F1/bookings").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/fields/F1/bookings?date=2024-12-23&includeCancelled=maybe").Code)
	assert.Equal(t, http.StatusNotFound, serve(svc, "/api/v1/fields/F9/bookings?date=2024-12-23").Code)
}
