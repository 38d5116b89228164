package get_available_slots

import (
	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ArenaBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	FieldID string          `json:"fieldId"`
	Date    string          `json:"date"`
	Slots   []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"isAvailable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:   slot.StartTime.String(),
			EndTime:     slot.EndTime.String(),
			Price:       slot.Price,
			IsAvailable: slot.IsAvailable,
		}
	}

	return &AvailableSlotsResponse{
		FieldID: resp.FieldID,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(fieldID, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		FieldID: fieldID,
		Date:    date,
	}, nil
}
