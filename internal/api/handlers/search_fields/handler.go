package search_fields

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	searchFields "github.com/m04kA/SMC-ArenaBooking/internal/usecase/search_fields"
)

const (
	msgInvalidPrice     = "некорректная цена, ожидается число"
	msgInvalidFilters   = "некорректные параметры поиска"
	msgStoreTimeout     = "хранилище не ответило вовремя, попробуйте еще раз"
	msgStoreUnavailable = "сервис временно недоступен"
)

type Handler struct {
	useCase  SearchFieldsUseCase
	validate *validator.Validate
	logger   Logger
}

func NewHandler(useCase SearchFieldsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		validate: validator.New(),
		logger:   logger,
	}
}

// Handle GET /api/v1/fields
// Query params: location, type, minPrice, maxPrice, amenities (через запятую), from, to
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query, err := ParseSearchQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /fields - Invalid price: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPrice)
		return
	}

	if err := query.Validate(h.validate); err != nil {
		h.logger.Warn("GET /fields - Invalid filters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilters)
		return
	}

	result, err := h.useCase.Execute(r.Context(), query.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, searchFields.ErrInvalidInput):
			h.logger.Warn("GET /fields - Invalid filters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilters)

		case errors.Is(err, searchFields.ErrStoreTimeout):
			h.logger.Error("GET /fields - Store timeout: %v", err)
			handlers.RespondError(w, http.StatusGatewayTimeout, msgStoreTimeout)

		case errors.Is(err, searchFields.ErrStoreUnavailable):
			h.logger.Error("GET /fields - Store unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("GET /fields - Failed to search fields: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fields - Fields found: count=%d", len(result.Fields))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
