package get_available_slots

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
)

// generateSlots разворачивает недельное расписание в слоты на конкретную дату.
// Берутся только правила этого дня недели с BaseAvailable = true.
// На одно время начала приходится не больше одного слота: при повторе
// остается правило, идущее первым в выдаче хранилища.
func generateSlots(rules []*domain.ScheduleRule, date time.Time) []*domain.TimeSlotInstance {
	slots := make([]*domain.TimeSlotInstance, 0, len(rules))
	for _, rule := range rules {
		if !rule.AppliesTo(date) {
			continue
		}
		slots = append(slots, domain.NewSlotFromRule(rule, date))
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].StartTime.IsBefore(slots[j].StartTime)
	})

	unique := slots[:0]
	for _, slot := range slots {
		if n := len(unique); n > 0 && unique[n-1].StartTime.Compare(slot.StartTime) == 0 {
			continue
		}
		unique = append(unique, slot)
	}

	return unique
}

// markBooked помечает занятыми слоты, на время начала которых есть активное бронирование
func markBooked(slots []*domain.TimeSlotInstance, bookings []*domain.Booking) {
	booked := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			booked[b.StartTime.String()] = struct{}{}
		}
	}

	for _, slot := range slots {
		if _, taken := booked[slot.StartTime.String()]; taken {
			slot.IsAvailable = false
		}
	}
}

func toResponseSlots(slots []*domain.TimeSlotInstance) []Slot {
	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		result = append(result, Slot{
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			Price:       s.Price,
			IsAvailable: s.IsAvailable,
		})
	}
	return result
}
