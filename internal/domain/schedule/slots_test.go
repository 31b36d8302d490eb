//go:build unit

package schedule_test

import (
	"testing"

	"agenda-espacos/internal/domain/schedule"
	"agenda-espacos/internal/pkg/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots(t *testing.T) {
	t.Run("default grid has exactly 97 slots", func(t *testing.T) {
		slots := schedule.GenerateSlots(7, 23, 10)
		// 07:00 through 23:00 inclusive at 10 minute steps. The count
		// is a regression check on the boundary handling.
		require.Len(t, slots, 97)
		assert.Equal(t, "07:00", slots[0].String())
		assert.Equal(t, "07:10", slots[1].String())
		assert.Equal(t, "22:50", slots[95].String())
		assert.Equal(t, "23:00", slots[96].String())
	})

	t.Run("default helper matches explicit arguments", func(t *testing.T) {
		assert.Equal(t, schedule.GenerateSlots(7, 23, 10), schedule.DefaultSlots())
	})

	t.Run("custom grid", func(t *testing.T) {
		slots := schedule.GenerateSlots(8, 10, 30)
		assert.Equal(t, []timeutil.ClockTime{
			{Hour: 8}, {Hour: 8, Minute: 30},
			{Hour: 9}, {Hour: 9, Minute: 30},
			{Hour: 10},
		}, slots)
	})

	t.Run("degenerate input yields no slots", func(t *testing.T) {
		assert.Nil(t, schedule.GenerateSlots(10, 8, 10))
		assert.Nil(t, schedule.GenerateSlots(7, 23, 0))
	})

	t.Run("regenerated, not cached", func(t *testing.T) {
		a := schedule.DefaultSlots()
		b := schedule.DefaultSlots()
		a[0].Hour = 99
		assert.Equal(t, 7, b[0].Hour)
	})
}
