package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/czdsgnr/roubenky/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func confirmedStay(in, out time.Time) models.Reservation {
	return models.Reservation{CheckIn: in, CheckOut: out, Status: models.ReservationConfirmed}
}

func TestIsOccupiedChangeover(t *testing.T) {
	reservations := []models.Reservation{
		confirmedStay(day(2025, 1, 18), day(2025, 1, 21)),
	}

	assert.False(t, IsOccupied(day(2025, 1, 17), reservations))
	assert.True(t, IsOccupied(day(2025, 1, 18), reservations))
	assert.True(t, IsOccupied(day(2025, 1, 19), reservations))
	assert.True(t, IsOccupied(day(2025, 1, 20), reservations))
	// check-out day is the changeover day, free for the next guest
	assert.False(t, IsOccupied(day(2025, 1, 21), reservations))
}

func TestIsOccupiedIgnoresCancelled(t *testing.T) {
	reservations := []models.Reservation{
		{CheckIn: day(2025, 1, 18), CheckOut: day(2025, 1, 21), Status: models.ReservationCancelled},
	}
	assert.False(t, IsOccupied(day(2025, 1, 19), reservations))
}

func TestClassifyDay(t *testing.T) {
	today := day(2025, 1, 10)
	reservations := []models.Reservation{
		confirmedStay(day(2025, 1, 18), day(2025, 1, 21)),
	}

	assert.Equal(t, DayPast, ClassifyDay(day(2025, 1, 9), reservations, Selection{}, today))
	assert.Equal(t, DayOccupied, ClassifyDay(day(2025, 1, 19), reservations, Selection{}, today))
	assert.Equal(t, DayAvailable, ClassifyDay(day(2025, 1, 21), reservations, Selection{}, today))

	// past wins over everything
	pastOccupied := []models.Reservation{confirmedStay(day(2025, 1, 5), day(2025, 1, 8))}
	assert.Equal(t, DayPast, ClassifyDay(day(2025, 1, 6), pastOccupied, Selection{}, today))
}

func TestTodayIsNeverPastInAnyZone(t *testing.T) {
	// A clock west of UTC reads an earlier instant than UTC midnight of the
	// same calendar date; classification must compare dates, not instants.
	west := time.FixedZone("UTC-5", -5*60*60)
	today := time.Date(2025, 6, 10, 10, 0, 0, 0, west)

	assert.Equal(t, DayAvailable, ClassifyDay(day(2025, 6, 10), nil, Selection{}, today))
	assert.Equal(t, DayPast, ClassifyDay(day(2025, 6, 9), nil, Selection{}, today))

	sel, err := Select(Selection{}, day(2025, 6, 10), nil, today)
	require.NoError(t, err)
	require.NotNil(t, sel.CheckIn)
	assert.Equal(t, day(2025, 6, 10), *sel.CheckIn)

	east := time.FixedZone("UTC+14", 14*60*60)
	today = time.Date(2025, 6, 10, 1, 0, 0, 0, east)
	assert.Equal(t, DayAvailable, ClassifyDay(day(2025, 6, 10), nil, Selection{}, today))
	assert.Equal(t, DayPast, ClassifyDay(day(2025, 6, 9), nil, Selection{}, today))
}

func TestClassifyDaySelection(t *testing.T) {
	today := day(2025, 1, 10)
	in := day(2025, 1, 12)
	out := day(2025, 1, 15)
	sel := Selection{CheckIn: &in, CheckOut: &out}

	assert.Equal(t, DayCheckIn, ClassifyDay(day(2025, 1, 12), nil, sel, today))
	assert.Equal(t, DayInRange, ClassifyDay(day(2025, 1, 13), nil, sel, today))
	assert.Equal(t, DayInRange, ClassifyDay(day(2025, 1, 14), nil, sel, today))
	assert.Equal(t, DayCheckOut, ClassifyDay(day(2025, 1, 15), nil, sel, today))
	assert.Equal(t, DayAvailable, ClassifyDay(day(2025, 1, 16), nil, sel, today))
}

func TestSelectStartsAndCompletes(t *testing.T) {
	today := day(2025, 1, 10)

	sel, err := Select(Selection{}, day(2025, 1, 12), nil, today)
	require.NoError(t, err)
	require.NotNil(t, sel.CheckIn)
	assert.Equal(t, day(2025, 1, 12), *sel.CheckIn)
	assert.Nil(t, sel.CheckOut)

	sel, err = Select(sel, day(2025, 1, 15), nil, today)
	require.NoError(t, err)
	require.NotNil(t, sel.CheckOut)
	assert.Equal(t, day(2025, 1, 12), *sel.CheckIn)
	assert.Equal(t, day(2025, 1, 15), *sel.CheckOut)

	// a third click restarts the selection
	sel, err = Select(sel, day(2025, 1, 20), nil, today)
	require.NoError(t, err)
	assert.Equal(t, day(2025, 1, 20), *sel.CheckIn)
	assert.Nil(t, sel.CheckOut)
}

func TestSelectRejectsPastAndOccupied(t *testing.T) {
	today := day(2025, 1, 10)
	reservations := []models.Reservation{
		confirmedStay(day(2025, 1, 18), day(2025, 1, 21)),
	}

	sel, err := Select(Selection{}, day(2025, 1, 9), reservations, today)
	assert.ErrorIs(t, err, ErrPastDay)
	assert.Nil(t, sel.CheckIn)

	sel, err = Select(Selection{}, day(2025, 1, 19), reservations, today)
	assert.ErrorIs(t, err, ErrDayOccupied)
	assert.Nil(t, sel.CheckIn)
}

func TestSelectRejectsRangeCrossingOccupied(t *testing.T) {
	today := day(2025, 1, 10)
	reservations := []models.Reservation{
		confirmedStay(day(2025, 1, 18), day(2025, 1, 21)),
	}

	in := day(2025, 1, 16)
	sel := Selection{CheckIn: &in}

	got, err := Select(sel, day(2025, 1, 22), reservations, today)
	assert.ErrorIs(t, err, ErrRangeCrossesOccupied)
	// the prior check-in survives the rejected click
	require.NotNil(t, got.CheckIn)
	assert.Equal(t, day(2025, 1, 16), *got.CheckIn)
	assert.Nil(t, got.CheckOut)
}

func TestSelectBeforeCheckInRestarts(t *testing.T) {
	today := day(2025, 1, 10)
	in := day(2025, 1, 16)
	sel := Selection{CheckIn: &in}

	got, err := Select(sel, day(2025, 1, 14), nil, today)
	require.NoError(t, err)
	assert.Equal(t, day(2025, 1, 14), *got.CheckIn)
	assert.Nil(t, got.CheckOut)
}

func TestMonthWindow(t *testing.T) {
	today := day(2025, 1, 10)
	reservations := []models.Reservation{
		confirmedStay(day(2025, 1, 18), day(2025, 1, 21)),
	}

	window := MonthWindow(2025, time.January, reservations, Selection{}, today)
	require.Len(t, window, 31)

	byDate := map[string]DayStatus{}
	for _, entry := range window {
		byDate[entry.Date] = entry.Status
	}

	assert.Equal(t, DayPast, byDate["2025-01-01"])
	assert.Equal(t, DayAvailable, byDate["2025-01-10"])
	assert.Equal(t, DayOccupied, byDate["2025-01-18"])
	assert.Equal(t, DayOccupied, byDate["2025-01-20"])
	assert.Equal(t, DayAvailable, byDate["2025-01-21"])
}

func TestOccupiedRanges(t *testing.T) {
	reservations := []models.Reservation{
		confirmedStay(day(2025, 1, 18), day(2025, 1, 21)),
		{CheckIn: day(2025, 2, 1), CheckOut: day(2025, 2, 4), Status: models.ReservationCancelled},
	}

	ranges := OccupiedRanges(reservations)
	require.Len(t, ranges, 1)
	assert.Equal(t, "2025-01-18", ranges[0].CheckIn)
	assert.Equal(t, "2025-01-21", ranges[0].CheckOut)
}
