package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstant(t *testing.T) {
	t.Run("canonical form round-trips", func(t *testing.T) {
		raw := "2026-09-01T10:00:00.000+09:00"

		parsed, err := ParseInstant(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, parsed.String())

		again, err := ParseInstant(parsed.String())
		require.NoError(t, err)
		assert.True(t, parsed.Equal(again))
	})

	t.Run("non-canonical forms are rejected as format errors", func(t *testing.T) {
		cases := []string{
			"",
			"2026-09-01T10:00:00+09:00",      // без миллисекунд
			"2026-09-01T10:00:00.000Z",       // UTC вместо JST
			"2026-09-01T10:00:00.000+00:00",  // чужой offset
			"2026-09-01 10:00:00.000+09:00",  // пробел вместо T
			"2026-09-01T10:00:00.0000+09:00", // лишний разряд
			"сегодня",
		}

		for _, raw := range cases {
			_, err := ParseInstant(raw)
			assert.ErrorIs(t, err, ErrFormat, "input %q", raw)
		}
	})

	t.Run("well-formed but impossible date is a value error", func(t *testing.T) {
		_, err := ParseInstant("2026-02-30T10:00:00.000+09:00")
		assert.ErrorIs(t, err, ErrValue)
	})
}

func TestInstantComparisons(t *testing.T) {
	earlier := mustInstant(t, "2026-09-01T10:00:00.000+09:00")
	later := mustInstant(t, "2026-09-01T11:00:00.000+09:00")

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.Equal(later))
	assert.True(t, earlier.AddMinutes(60).Equal(later))
	assert.True(t, later.AddMinutes(-60).Equal(earlier))
}

func TestInstantCeilToHour(t *testing.T) {
	t.Run("misaligned instant rounds up", func(t *testing.T) {
		misaligned := mustInstant(t, "2026-09-01T09:10:30.500+09:00")
		assert.Equal(t, "2026-09-01T10:00:00.000+09:00", misaligned.CeilToHour().String())
	})

	t.Run("aligned instant is unchanged", func(t *testing.T) {
		aligned := mustInstant(t, "2026-09-01T10:00:00.000+09:00")
		assert.True(t, aligned.Equal(aligned.CeilToHour()))
	})
}

func TestInstantHourAligned(t *testing.T) {
	assert.True(t, mustInstant(t, "2026-09-01T10:00:00.000+09:00").HourAligned())
	assert.False(t, mustInstant(t, "2026-09-01T10:30:00.000+09:00").HourAligned())
	assert.False(t, mustInstant(t, "2026-09-01T10:00:00.001+09:00").HourAligned())
}

func TestInstantDayKey(t *testing.T) {
	assert.Equal(t, "2026-09-01", mustInstant(t, "2026-09-01T23:00:00.000+09:00").DayKey())
	// Смена дня по JST, не по UTC
	assert.Equal(t, "2026-09-02", mustInstant(t, "2026-09-02T00:00:00.000+09:00").DayKey())
}

func TestNewInstantFromTime(t *testing.T) {
	// Сабсекундная точность за пределами миллисекунд отбрасывается
	moment := time.Date(2026, time.September, 1, 1, 0, 0, 999_999, time.UTC)
	instant := NewInstantFromTime(moment)

	assert.Equal(t, moment.UnixMilli(), instant.UnixMilli())
	assert.Equal(t, "2026-09-01T10:00:00.000+09:00", instant.String())
}

func mustInstant(t *testing.T, raw string) Instant {
	t.Helper()
	instant, err := ParseInstant(raw)
	require.NoError(t, err)
	return instant
}
