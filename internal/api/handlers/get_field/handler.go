package get_field

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/fields"
)

const (
	msgInvalidFieldID   = "некорректный ID площадки"
	msgNotFound         = "площадка не найдена"
	msgStoreTimeout     = "хранилище не ответило вовремя, попробуйте еще раз"
	msgStoreUnavailable = "сервис временно недоступен"
)

type Handler struct {
	service FieldService
	logger  Logger
}

func NewHandler(service FieldService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fieldID := mux.Vars(r)["fieldId"]

	field, err := h.service.GetByID(r.Context(), fieldID)
	if err != nil {
		switch {
		case errors.Is(err, fields.ErrInvalidInput):
			h.logger.Warn("GET /fields/{id} - Invalid field ID: %q", fieldID)
			handlers.RespondBadRequest(w, msgInvalidFieldID)

		case errors.Is(err, fields.ErrFieldNotFound):
			h.logger.Warn("GET /fields/{id} - Field not found: field_id=%s", fieldID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, fields.ErrStoreTimeout):
			h.logger.Error("GET /fields/{id} - Store timeout: %v", err)
			handlers.RespondError(w, http.StatusGatewayTimeout, msgStoreTimeout)

		case errors.Is(err, fields.ErrStoreUnavailable):
			h.logger.Error("GET /fields/{id} - Store unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("GET /fields/{id} - Failed to get field: field_id=%s, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fields/{id} - Field retrieved successfully: field_id=%s", fieldID)
	handlers.RespondJSON(w, http.StatusOK, field)
}
