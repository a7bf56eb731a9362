package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKey(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)

	// 2026-03-09 23:30 UTC is already 2026-03-10 in Manila.
	utc := time.Date(2026, 3, 9, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-10", DayKey(utc, loc))
	assert.Equal(t, "2026-03-09", DayKey(utc, time.UTC))
}

func TestStreak(t *testing.T) {
	loc := time.UTC
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, loc)

	day := func(offset int) string {
		return DayKey(today.AddDate(0, 0, offset), loc)
	}

	t.Run("three consecutive days", func(t *testing.T) {
		days := map[string]bool{day(0): true, day(-1): true, day(-2): true}
		assert.Equal(t, 3, Streak(days, today, loc))
	})

	t.Run("yesterday only holds a streak of one", func(t *testing.T) {
		days := map[string]bool{day(-1): true}
		assert.Equal(t, 1, Streak(days, today, loc))
	})

	t.Run("gap after today breaks the chain", func(t *testing.T) {
		days := map[string]bool{day(0): true, day(-2): true}
		assert.Equal(t, 1, Streak(days, today, loc))
	})

	t.Run("no activity", func(t *testing.T) {
		assert.Equal(t, 0, Streak(map[string]bool{}, today, loc))
	})

	t.Run("stale activity far in the past", func(t *testing.T) {
		days := map[string]bool{day(-5): true, day(-6): true}
		assert.Equal(t, 0, Streak(days, today, loc))
	})

	t.Run("long run counted through today", func(t *testing.T) {
		days := make(map[string]bool)
		for i := 0; i < 10; i++ {
			days[day(-i)] = true
		}
		assert.Equal(t, 10, Streak(days, today, loc))
	})
}
