package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsArePaired(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, f := range files {
		switch {
		case strings.HasSuffix(f, ".up.sql"):
			ups[strings.TrimSuffix(f, ".up.sql")] = true
		case strings.HasSuffix(f, ".down.sql"):
			downs[strings.TrimSuffix(f, ".down.sql")] = true
		default:
			t.Errorf("unexpected migration file %s", f)
		}
	}
	assert.Equal(t, ups, downs)
}

func TestBookingsHaveActiveSlotIndex(t *testing.T) {
	data, err := fs.ReadFile(FS, "000003_create_bookings.up.sql")
	require.NoError(t, err)

	sql := string(data)
	assert.Contains(t, sql, "CREATE UNIQUE INDEX IF NOT EXISTS bookings_active_slot_uidx")
	assert.Contains(t, sql, "WHERE status IN ('PENDING', 'CONFIRMED')")
}
