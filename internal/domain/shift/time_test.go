package shift

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutesOfDay(t *testing.T) {
	cases := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"10:00", 600, false},
		{"22:00", 1320, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"10:60", 0, true},
		{"ten o'clock", 0, true},
		{"", 0, true},
		{"10", 0, true},
	}
	for _, c := range cases {
		got, err := MinutesOfDay(c.input)
		if c.wantErr {
			require.Error(t, err, "input %q", c.input)
			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr), "input %q should yield a ParseError", c.input)
			continue
		}
		require.NoError(t, err, "input %q", c.input)
		assert.Equal(t, c.want, got, "input %q", c.input)
	}
}

func TestSpanMinutes(t *testing.T) {
	cases := []struct {
		name       string
		start, end int
		want       int
	}{
		{"same day", 600, 1260, 660},
		{"zero span", 600, 600, 0},
		{"night shift wraps midnight", 1320, 360, 480},
		{"just before midnight to just after", 1439, 1, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, SpanMinutes(c.start, c.end))
		})
	}
}

func TestFormatHours(t *testing.T) {
	mins := func(m int) *int { return &m }

	assert.Equal(t, "-", FormatHours(nil))
	assert.Equal(t, "-", FormatHours(mins(0)))
	assert.Equal(t, "8h 30m", FormatHours(mins(510)))
	assert.Equal(t, "0h 45m", FormatHours(mins(45)))
	assert.Equal(t, "11h 0m", FormatHours(mins(660)))
}

func TestDisplay12h(t *testing.T) {
	assert.Equal(t, "10:00 AM", Display12h("10:00"))
	assert.Equal(t, "02:05 PM", Display12h("14:05"))
	assert.Equal(t, "12:00 AM", Display12h("00:00"))
	assert.Equal(t, "12:30 PM", Display12h("12:30"))
	assert.Equal(t, "garbage", Display12h("garbage"))
}

func TestClockString(t *testing.T) {
	assert.Equal(t, "10:00", ClockString(600))
	assert.Equal(t, "00:00", ClockString(0))
	assert.Equal(t, "23:59", ClockString(1439))
	assert.Equal(t, "00:01", ClockString(1441))
}
