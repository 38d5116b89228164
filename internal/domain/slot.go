package domain

import (
	"time"

	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

// TimeSlotInstance конкретный слот на дату, вычисляется из правила расписания.
// Не хранится в БД.
type TimeSlotInstance struct {
	FieldID     string
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Price       float64
	IsAvailable bool
}

// Key returns the identity of the slot
func (s *TimeSlotInstance) Key() string {
	return SlotKey(s.FieldID, s.Date, s.StartTime)
}

// NewSlotFromRule создает доступный слот на дату по правилу расписания
func NewSlotFromRule(rule *ScheduleRule, date time.Time) *TimeSlotInstance {
	return &TimeSlotInstance{
		FieldID:     rule.FieldID,
		Date:        TruncateDate(date),
		StartTime:   rule.StartTime,
		EndTime:     rule.EndTime,
		Price:       rule.Price,
		IsAvailable: true,
	}
}
