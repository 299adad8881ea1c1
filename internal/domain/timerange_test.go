package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTimeRange(t *testing.T, startRaw string, minutes int) TimeRange {
	t.Helper()
	duration, err := NewDuration(minutes)
	require.NoError(t, err)
	tr, err := NewTimeRange(mustInstant(t, startRaw), duration)
	require.NoError(t, err)
	return tr
}

func TestNewTimeRange(t *testing.T) {
	t.Run("end equals start plus duration", func(t *testing.T) {
		tr := mustTimeRange(t, "2026-09-01T10:00:00.000+09:00", 120)
		assert.Equal(t, "2026-09-01T12:00:00.000+09:00", tr.End().String())
		assert.Equal(t, 120, tr.Duration().Minutes())
	})

	t.Run("rejects non-hour-aligned start", func(t *testing.T) {
		duration, err := NewDuration(60)
		require.NoError(t, err)

		_, err = NewTimeRange(mustInstant(t, "2026-09-01T10:30:00.000+09:00"), duration)
		assert.ErrorIs(t, err, ErrValue)
	})
}

func TestTimeRangeOverlaps(t *testing.T) {
	base := mustTimeRange(t, "2026-09-01T10:00:00.000+09:00", 120)

	t.Run("range overlaps itself", func(t *testing.T) {
		assert.True(t, base.Overlaps(base))
	})

	t.Run("partial overlap", func(t *testing.T) {
		other := mustTimeRange(t, "2026-09-01T11:00:00.000+09:00", 120)
		assert.True(t, base.Overlaps(other))
		assert.True(t, other.Overlaps(base))
	})

	t.Run("adjacent ranges never overlap", func(t *testing.T) {
		adjacent := mustTimeRange(t, "2026-09-01T12:00:00.000+09:00", 60)
		assert.False(t, base.Overlaps(adjacent))
		assert.False(t, adjacent.Overlaps(base))
	})

	t.Run("disjoint ranges", func(t *testing.T) {
		later := mustTimeRange(t, "2026-09-01T15:00:00.000+09:00", 60)
		assert.False(t, base.Overlaps(later))
	})
}

func TestTimeRangeContains(t *testing.T) {
	tr := mustTimeRange(t, "2026-09-01T10:00:00.000+09:00", 60)

	assert.True(t, tr.Contains(tr.Start()), "начало включается")
	assert.True(t, tr.Contains(mustInstant(t, "2026-09-01T10:30:00.000+09:00")))
	assert.False(t, tr.Contains(tr.End()), "конец исключается")
	assert.False(t, tr.Contains(mustInstant(t, "2026-09-01T09:59:00.000+09:00")))
}
