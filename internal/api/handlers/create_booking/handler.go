package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-ArenaBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgMissingFields      = "заполните площадку, дату, время начала и имя игрока"
	msgPastDate           = "нельзя забронировать прошедшую дату"
	msgInvalidInput       = "некорректные данные бронирования"
	msgFieldNotFound      = "площадка не найдена"
	msgSlotNotOffered     = "площадка не предлагает слот с таким временем начала"
	msgSlotNotAvailable   = "выбранный слот уже занят"
	msgStoreTimeout       = "хранилище не ответило вовремя, попробуйте еще раз"
	msgStoreUnavailable   = "сервис временно недоступен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid booking date %q: %v", req.BookingDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrMissingRequiredFields):
			h.logger.Warn("POST /bookings - Missing required fields: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createBooking.ErrPastDateNotBookable):
			h.logger.Warn("POST /bookings - Past date: field_id=%s, date=%s", req.FieldID, req.BookingDate)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrFieldNotFound):
			h.logger.Warn("POST /bookings - Field not found: field_id=%s", req.FieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, createBooking.ErrSlotNotOffered):
			h.logger.Warn("POST /bookings - Slot not offered: field_id=%s, date=%s, time=%s",
				req.FieldID, req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgSlotNotOffered)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: field_id=%s, date=%s, time=%s",
				req.FieldID, req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrStoreTimeout):
			h.logger.Error("POST /bookings - Store timeout: %v", err)
			handlers.RespondError(w, http.StatusGatewayTimeout, msgStoreTimeout)

		case errors.Is(err, createBooking.ErrStoreUnavailable):
			h.logger.Error("POST /bookings - Store unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: field_id=%s, error=%v", req.FieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, field_id=%s",
		result.ID, result.FieldID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
