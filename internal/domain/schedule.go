package domain

import (
	"time"

	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

// ScheduleRule еженедельное правило расписания площадки
type ScheduleRule struct {
	ID            int64
	FieldID       string
	DayOfWeek     time.Weekday // 0 = воскресенье, как в time.Weekday
	StartTime     types.TimeString
	EndTime       types.TimeString
	Price         float64
	BaseAvailable bool // Предлагается ли слот вообще, независимо от бронирований
}

// AppliesTo returns true if the rule produces a slot on the given date
func (r *ScheduleRule) AppliesTo(date time.Time) bool {
	return r.BaseAvailable && r.DayOfWeek == date.Weekday()
}
