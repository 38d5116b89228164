package create_booking

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-ArenaBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FieldID       string   `json:"fieldId"`
	BookingDate   string   `json:"bookingDate"` // "2025-06-02"
	StartTime     string   `json:"startTime"`   // "18:00"
	PlayerName    string   `json:"playerName"`
	PlayerContact *string  `json:"playerContact,omitempty"`
	PaymentMethod *string  `json:"paymentMethod,omitempty"`
	TotalPrice    *float64 `json:"totalPrice,omitempty"`
	Status        string   `json:"status,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string  `json:"id"`
	FieldID       string  `json:"fieldId"`
	BookingDate   string  `json:"bookingDate"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	PlayerName    string  `json:"playerName"`
	PlayerContact *string `json:"playerContact,omitempty"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Обязательность полей проверяет use case, поэтому дата разбирается только
// при заполненных остальных обязательных полях, иначе передается нулевой.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	var bookingDate time.Time
	if strings.TrimSpace(r.BookingDate) != "" && r.hasRequiredFields() {
		d, err := domain.ParseDate(r.BookingDate)
		if err != nil {
			return nil, err
		}
		bookingDate = d
	}

	return &createBooking.Request{
		FieldID:       strings.TrimSpace(r.FieldID),
		Date:          bookingDate,
		StartTime:     types.TimeString(strings.TrimSpace(r.StartTime)),
		PlayerName:    strings.TrimSpace(r.PlayerName),
		PlayerContact: r.PlayerContact,
		PaymentMethod: r.PaymentMethod,
		TotalPrice:    r.TotalPrice,
		Status:        domain.BookingStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
	}, nil
}

func (r *CreateBookingRequest) hasRequiredFields() bool {
	return strings.TrimSpace(r.FieldID) != "" &&
		strings.TrimSpace(r.StartTime) != "" &&
		strings.TrimSpace(r.PlayerName) != ""
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		FieldID:       resp.FieldID,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		PlayerName:    resp.PlayerName,
		PlayerContact: resp.PlayerContact,
		PaymentMethod: resp.PaymentMethod,
		TotalPrice:    resp.TotalPrice,
		Status:        string(resp.Status),
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
