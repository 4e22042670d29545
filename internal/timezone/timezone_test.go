package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, "UTC", Location("Nowhere/Special").String())
	assert.Equal(t, "Europe/London", Location("Europe/London").String())
}

func TestParseDateTime(t *testing.T) {
	loc := Location("Europe/London")

	got, err := ParseDateTime(loc, "2026-07-01", "14:30:00")
	require.NoError(t, err)
	assert.Equal(t, 14, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, loc, got.Location())

	_, err = ParseDateTime(loc, "2026-13-01", "14:30")
	assert.Error(t, err)
}

func TestDayBounds(t *testing.T) {
	ts := time.Date(2026, 7, 1, 14, 30, 0, 0, time.UTC)
	start, end := DayBounds(ts)

	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC), end)
}
