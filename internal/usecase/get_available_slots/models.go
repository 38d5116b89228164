package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

// Request модель запроса на получение слотов площадки
type Request struct {
	FieldID string    // ID площадки
	Date    time.Time // Дата, время суток игнорируется
}

// Response модель ответа со списком слотов
type Response struct {
	FieldID string
	Date    time.Time
	Slots   []Slot // Отсортированы по времени начала
}

// Slot модель временного слота
type Slot struct {
	StartTime   types.TimeString
	EndTime     types.TimeString
	Price       float64
	IsAvailable bool
}
