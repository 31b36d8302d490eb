//go:build unit

package timeutil_test

import (
	"testing"
	"time"

	"agenda-espacos/internal/pkg/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("both wire shapes normalize to the same date", func(t *testing.T) {
		iso, ok := timeutil.ParseDate("2024-03-05")
		require.True(t, ok)
		slash, ok := timeutil.ParseDate("05/03/2024")
		require.True(t, ok)

		assert.Equal(t, timeutil.Date{Year: 2024, Month: time.March, Day: 5}, iso)
		assert.Equal(t, iso, slash)
	})

	t.Run("slash form is day first", func(t *testing.T) {
		d, ok := timeutil.ParseDate("02/03/2024")
		require.True(t, ok)
		assert.Equal(t, 2, d.Day)
		assert.Equal(t, time.March, d.Month)
	})

	t.Run("unparseable input fails soft", func(t *testing.T) {
		for _, s := range []string{"", "garbage", "2024/03/05", "31-12-2024", "2024-13-01"} {
			_, ok := timeutil.ParseDate(s)
			assert.False(t, ok, "input %q", s)
		}
	})
}

func TestDateCompare(t *testing.T) {
	a := timeutil.Date{Year: 2024, Month: time.March, Day: 5}
	b := timeutil.Date{Year: 2024, Month: time.March, Day: 6}
	c := timeutil.Date{Year: 2024, Month: time.April, Day: 1}

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, b.Before(c))
	assert.True(t, c.After(a))
	assert.True(t, a.Equal(a))
}

func TestDateAt(t *testing.T) {
	d := timeutil.Date{Year: 2024, Month: time.March, Day: 5}
	clk := timeutil.ClockTime{Hour: 9, Minute: 30}

	// The calendar date survives regardless of the target location.
	for _, loc := range []*time.Location{time.UTC, time.FixedZone("BRT", -3*3600), time.FixedZone("JST", 9*3600)} {
		at := d.At(clk, loc)
		y, m, day := at.Date()
		assert.Equal(t, 2024, y)
		assert.Equal(t, time.March, m)
		assert.Equal(t, 5, day)
		assert.Equal(t, 9, at.Hour())
	}
}

func TestDateFormatting(t *testing.T) {
	d := timeutil.Date{Year: 2024, Month: time.March, Day: 5}
	assert.Equal(t, "2024-03-05", d.ISO())
	assert.Equal(t, "05/03/2024", d.Display())
}

func TestParseClock(t *testing.T) {
	t.Run("HH:MM", func(t *testing.T) {
		c, ok := timeutil.ParseClock("09:30")
		require.True(t, ok)
		assert.Equal(t, timeutil.ClockTime{Hour: 9, Minute: 30}, c)
	})

	t.Run("HH:MM:SS", func(t *testing.T) {
		c, ok := timeutil.ParseClock("23:59:59")
		require.True(t, ok)
		assert.Equal(t, timeutil.ClockTime{Hour: 23, Minute: 59, Second: 59}, c)
	})

	t.Run("unparseable input fails soft", func(t *testing.T) {
		for _, s := range []string{"", "9h30", "25:00", "12:61"} {
			_, ok := timeutil.ParseClock(s)
			assert.False(t, ok, "input %q", s)
		}
	})
}

func TestClockTimeCompare(t *testing.T) {
	early := timeutil.ClockTime{Hour: 9}
	late := timeutil.ClockTime{Hour: 9, Minute: 0, Second: 1}

	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.True(t, early.Equal(timeutil.ClockTime{Hour: 9}))
}

func TestClockTimeAddMinutes(t *testing.T) {
	c := timeutil.ClockTime{Hour: 22, Minute: 50}
	assert.Equal(t, timeutil.ClockTime{Hour: 23}, c.AddMinutes(10))
	assert.Equal(t, timeutil.ClockTime{Hour: 0, Minute: 40}, c.AddMinutes(110))
	assert.Equal(t, timeutil.ClockTime{Hour: 22, Minute: 40}, c.AddMinutes(-10))
}

func TestClockTimeString(t *testing.T) {
	assert.Equal(t, "07:00", timeutil.ClockTime{Hour: 7}.String())
	assert.Equal(t, "07:00:30", timeutil.ClockTime{Hour: 7, Second: 30}.String())
}

func TestDateOfAndClockOf(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	now := time.Date(2024, time.March, 5, 9, 15, 42, 0, loc)

	assert.Equal(t, timeutil.Date{Year: 2024, Month: time.March, Day: 5}, timeutil.DateOf(now))
	assert.Equal(t, timeutil.ClockTime{Hour: 9, Minute: 15, Second: 42}, timeutil.ClockOf(now))
}
