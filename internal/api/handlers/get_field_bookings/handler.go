package get_field_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/bookings"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidParams    = "некорректные параметры запроса"
	msgFieldNotFound    = "площадка не найдена"
	msgStoreTimeout     = "хранилище не ответило вовремя, попробуйте еще раз"
	msgStoreUnavailable = "сервис временно недоступен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/bookings
// Query params: date (required, YYYY-MM-DD), includeCancelled (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fieldID := mux.Vars(r)["fieldId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /fields/{id}/bookings - Missing date: field_id=%s", fieldID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	serviceReq, err := ToServiceRequest(fieldID, dateStr, r.URL.Query().Get("includeCancelled"))
	if err != nil {
		h.logger.Warn("GET /fields/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListByFieldAndDate(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /fields/{id}/bookings - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, bookings.ErrFieldNotFound):
			h.logger.Warn("GET /fields/{id}/bookings - Field not found: field_id=%s", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, bookings.ErrStoreTimeout):
			h.logger.Error("GET /fields/{id}/bookings - Store timeout: %v", err)
			handlers.RespondError(w, http.StatusGatewayTimeout, msgStoreTimeout)

		case errors.Is(err, bookings.ErrStoreUnavailable):
			h.logger.Error("GET /fields/{id}/bookings - Store unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("GET /fields/{id}/bookings - Failed to get bookings: field_id=%s, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fields/{id}/bookings - Bookings retrieved successfully: field_id=%s, count=%d",
		fieldID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
