package availability

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/evakp/appointment-booking/internal/model"
)

func TestTimesGridDefaultWindow(t *testing.T) {
    grid := TimesGrid(9, 17, 30)

    require.Len(t, grid, 16)
    assert.Equal(t, "09:00", grid[0])
    assert.Equal(t, "16:30", grid[len(grid)-1])
    for i := 1; i < len(grid); i++ {
        assert.Less(t, grid[i-1], grid[i], "grid must be strictly increasing")
    }
}

func TestTimesGridZeroPadding(t *testing.T) {
    grid := TimesGrid(8, 10, 15)
    require.Len(t, grid, 8)
    assert.Equal(t, []string{"08:00", "08:15", "08:30", "08:45", "09:00", "09:15", "09:30", "09:45"}, grid)
}

func TestTimesGridDegenerateWindows(t *testing.T) {
    assert.Empty(t, TimesGrid(17, 9, 30))
    assert.Empty(t, TimesGrid(9, 17, 0))
    assert.Empty(t, TimesGrid(9, 9, 30))
}

func TestSlotsForDateDefaultsAvailable(t *testing.T) {
    slots := SlotsForDate("2025-03-10", 9, 17, 30)
    require.Len(t, slots, 16)
    for _, s := range slots {
        assert.Equal(t, "2025-03-10", s.Date)
        assert.True(t, s.Available)
        assert.Zero(t, s.ID, "id is assigned by the store, not the generator")
    }
}

func TestExcludePastDropsElapsedTimesToday(t *testing.T) {
    now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
    slots := SlotsForDate("2025-03-10", 9, 17, 30)

    filtered := ExcludePast(slots, now)

    require.NotEmpty(t, filtered)
    assert.Equal(t, "10:30", filtered[0].Time, "10:00 equals now and must be excluded")
    for _, s := range filtered {
        assert.Greater(t, s.Time, "10:00")
    }
}

func TestExcludePastLeavesOtherDatesAlone(t *testing.T) {
    now := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
    slots := []model.TimeSlot{
        {Date: "2025-03-11", Time: "09:00", Available: true},
        {Date: "2025-03-09", Time: "09:00", Available: true},
    }
    assert.Equal(t, slots, ExcludePast(slots, now))
}

func TestWindowCoversConsecutiveDays(t *testing.T) {
    from := time.Date(2025, 2, 27, 12, 0, 0, 0, time.UTC)
    dates := Window(from, 30)

    require.Len(t, dates, 30)
    assert.Equal(t, "2025-02-27", dates[0])
    assert.Equal(t, "2025-03-01", dates[2], "window must roll over month ends")
    assert.Equal(t, "2025-03-28", dates[29])
}
