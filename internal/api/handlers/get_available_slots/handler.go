package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ArenaBooking/internal/usecase/get_available_slots"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput     = "некорректные параметры запроса"
	msgFieldNotFound    = "площадка не найдена"
	msgStoreTimeout     = "хранилище не ответило вовремя, попробуйте еще раз"
	msgStoreUnavailable = "сервис временно недоступен"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fieldID := mux.Vars(r)["fieldId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /fields/{id}/available-slots - Missing date: field_id=%s", fieldID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(fieldID, dateStr)
	if err != nil {
		h.logger.Warn("GET /fields/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /fields/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrFieldNotFound):
			h.logger.Warn("GET /fields/{id}/available-slots - Field not found: field_id=%s", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, getAvailableSlots.ErrStoreTimeout):
			h.logger.Error("GET /fields/{id}/available-slots - Store timeout: %v", err)
			handlers.RespondError(w, http.StatusGatewayTimeout, msgStoreTimeout)

		case errors.Is(err, getAvailableSlots.ErrStoreUnavailable):
			h.logger.Error("GET /fields/{id}/available-slots - Store unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("GET /fields/{id}/available-slots - Failed to get slots: field_id=%s, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fields/{id}/available-slots - Slots retrieved successfully: field_id=%s, date=%s, slots_count=%d",
		fieldID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
