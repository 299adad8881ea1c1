package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanBookSlotBusinessHours(t *testing.T) {
	t.Run("start before opening is rejected", func(t *testing.T) {
		result := CanBookSlot(mustTimeRange(t, "2026-09-01T09:00:00.000+09:00", 60), 0)
		assert.False(t, result.OK)
		assert.Contains(t, result.Reason, "before opening")
	})

	t.Run("end after closing is rejected", func(t *testing.T) {
		result := CanBookSlot(mustTimeRange(t, "2026-09-01T14:00:00.000+09:00", 300), 0)
		assert.False(t, result.OK)
		assert.Contains(t, result.Reason, "after closing")
	})

	t.Run("end exactly at closing is allowed", func(t *testing.T) {
		result := CanBookSlot(mustTimeRange(t, "2026-09-01T10:00:00.000+09:00", 480), 0)
		assert.True(t, result.OK, result.Reason)
	})

	t.Run("range crossing midnight is rejected", func(t *testing.T) {
		result := CanBookSlot(mustTimeRange(t, "2026-09-01T23:00:00.000+09:00", 120), 0)
		assert.False(t, result.OK)
	})
}

func TestCanBookSlotEmptyDay(t *testing.T) {
	t.Run("normal slot may start only at 10 or 14", func(t *testing.T) {
		assert.True(t, CanBookSlot(mustTimeRange(t, "2026-09-01T10:00:00.000+09:00", 60), 0).OK)
		assert.True(t, CanBookSlot(mustTimeRange(t, "2026-09-01T14:00:00.000+09:00", 60), 0).OK)

		for _, start := range []string{
			"2026-09-01T11:00:00.000+09:00",
			"2026-09-01T12:00:00.000+09:00",
			"2026-09-01T13:00:00.000+09:00",
			"2026-09-01T15:00:00.000+09:00",
		} {
			result := CanBookSlot(mustTimeRange(t, start, 60), 0)
			assert.False(t, result.OK, "start=%s", start)
		}
	})

	t.Run("long slot may start only at 10, 11 or 12", func(t *testing.T) {
		assert.True(t, CanBookSlot(mustTimeRange(t, "2026-09-01T10:00:00.000+09:00", 360), 0).OK)
		assert.True(t, CanBookSlot(mustTimeRange(t, "2026-09-01T11:00:00.000+09:00", 360), 0).OK)
		assert.True(t, CanBookSlot(mustTimeRange(t, "2026-09-01T12:00:00.000+09:00", 360), 0).OK)

		result := CanBookSlot(mustTimeRange(t, "2026-09-01T13:00:00.000+09:00", 300), 0)
		assert.False(t, result.OK, "13:00+5h кончается в 18:00, но это не длинный слот и старт не 10/14")
	})
}

func TestCanBookSlotOccupiedDay(t *testing.T) {
	t.Run("long slot is always rejected", func(t *testing.T) {
		for _, start := range []string{
			"2026-09-01T10:00:00.000+09:00",
			"2026-09-01T11:00:00.000+09:00",
			"2026-09-01T12:00:00.000+09:00",
		} {
			result := CanBookSlot(mustTimeRange(t, start, 360), 1)
			assert.False(t, result.OK, "start=%s", start)
		}
	})

	t.Run("normal slot is accepted at any business hour", func(t *testing.T) {
		for _, start := range []string{
			"2026-09-01T10:00:00.000+09:00",
			"2026-09-01T11:00:00.000+09:00",
			"2026-09-01T13:00:00.000+09:00",
			"2026-09-01T17:00:00.000+09:00",
		} {
			result := CanBookSlot(mustTimeRange(t, start, 60), 3)
			assert.True(t, result.OK, "start=%s: %s", start, result.Reason)
		}
	})
}

func TestCanBookSlotNegativeCount(t *testing.T) {
	result := CanBookSlot(mustTimeRange(t, "2026-09-01T10:00:00.000+09:00", 60), -1)
	assert.False(t, result.OK)
}
