package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
)

func TestGenerateSlotsOneInstancePerStartTime(t *testing.T) {
	monday := time.Date(2024, 12, 23, 0, 0, 0, 0, time.UTC)
	rules := []*domain.ScheduleRule{
		{FieldID: "F1", DayOfWeek: time.Monday, StartTime: "19:00", EndTime: "20:00", Price: 90, BaseAvailable: true},
		{FieldID: "F1", DayOfWeek: time.Monday, StartTime: "18:00", EndTime: "19:00", Price: 80, BaseAvailable: true},
		{FieldID: "F1", DayOfWeek: time.Monday, StartTime: "18:00", EndTime: "19:00", Price: 120, BaseAvailable: true},
	}

	slots := generateSlots(rules, monday)

	require.Len(t, slots, 2)
	assert.Equal(t, "18:00", slots[0].StartTime.String())
	assert.Equal(t, 80.0, slots[0].Price)
	assert.Equal(t, "19:00", slots[1].StartTime.String())
}
