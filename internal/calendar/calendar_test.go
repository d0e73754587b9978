package calendar

import (
	"testing"
	"time"

	"roomBooker/internal/booking"
	"roomBooker/internal/lib/datetime"
	"roomBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func week(t *testing.T, anchor string) []time.Time {
	t.Helper()

	d, err := datetime.ParseDate(anchor)
	require.NoError(t, err)

	return datetime.WeekDatesOf(d)
}

func TestMapToGrid_Shape(t *testing.T) {
	t.Parallel()

	grid := MapToGrid(nil, week(t, "2025-03-15"), DefaultHours())

	require.Len(t, grid, 10)
	for i, row := range grid {
		require.Len(t, row, 7)
		for j, cell := range row {
			assert.Equal(t, 8+i, cell.Hour)
			assert.True(t, cell.Available)
			require.NotNil(t, cell.Slot)
			assert.Equal(t, cell.Date, cell.Slot.Date)
			assert.Empty(t, cell.Bookings)
			if j == 0 {
				assert.Equal(t, "2025-03-10", cell.Date)
			}
		}
	}

	assert.Equal(t, Slot{Date: "2025-03-16", StartTime: "17:00", EndTime: "18:00"}, *grid[9][6].Slot)
}

func TestMapToGrid_SpansRows(t *testing.T) {
	t.Parallel()

	r := models.Reservation{ID: 1, RoomID: 1, Date: "2025-03-15", StartTime: "09:30", EndTime: "10:30"}
	grid := MapToGrid([]models.Reservation{r}, week(t, "2025-03-15"), DefaultHours())

	// Saturday is column 5; 09:00 is row 1 and 10:00 is row 2.
	nine, ten := grid[1][5], grid[2][5]

	require.Len(t, nine.Bookings, 1)
	assert.False(t, nine.Available)
	assert.Nil(t, nine.Slot)
	assert.InDelta(t, 50, nine.Bookings[0].Offset, 1e-9)
	assert.InDelta(t, 50, nine.Bookings[0].Height, 1e-9)

	require.Len(t, ten.Bookings, 1)
	assert.InDelta(t, 0, ten.Bookings[0].Offset, 1e-9)
	assert.InDelta(t, 50, ten.Bookings[0].Height, 1e-9)

	booked := 0
	for _, row := range grid {
		for _, cell := range row {
			if !cell.Available {
				booked++
			}
		}
	}
	assert.Equal(t, 2, booked)
}

func TestMapToGrid_EndOnRowBoundaryStaysInRow(t *testing.T) {
	t.Parallel()

	r := models.Reservation{ID: 1, RoomID: 1, Date: "2025-03-10", StartTime: "09:00", EndTime: "10:00"}
	grid := MapToGrid([]models.Reservation{r}, week(t, "2025-03-10"), DefaultHours())

	assert.False(t, grid[1][0].Available)
	assert.True(t, grid[2][0].Available, "half-open interval must not leak into the next row")
	assert.InDelta(t, 100, grid[1][0].Bookings[0].Height, 1e-9)
}

func TestMapToGrid_LastSlotOfFullDayIsBookable(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	fullDay := Hours{Start: 0, End: 24}

	grid := MapToGrid(nil, week(t, "2025-03-10"), fullDay)
	require.Len(t, grid, 24)

	slot := grid[23][0].Slot
	require.NotNil(t, slot)
	assert.Equal(t, Slot{Date: "2025-03-10", StartTime: "23:00", EndTime: "24:00"}, *slot)

	candidate := models.Reservation{
		RoomID:    1,
		UserName:  "Night Owl",
		Date:      slot.Date,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
	}
	require.NoError(t, booking.Check(candidate, nil, now))

	booked := candidate
	booked.ID = 1
	regrid := MapToGrid([]models.Reservation{booked}, week(t, "2025-03-10"), fullDay)
	assert.False(t, regrid[23][0].Available)
	require.Len(t, regrid[23][0].Bookings, 1)
	assert.InDelta(t, 100, regrid[23][0].Bookings[0].Height, 1e-9)
	assert.True(t, regrid[22][0].Available)

	overlapping := candidate
	overlapping.StartTime = "23:30"
	var conflictErr *booking.ConflictError
	require.ErrorAs(t, booking.Check(overlapping, []models.Reservation{booked}, now), &conflictErr)
}

func TestMapToGrid_IgnoresOutsideWeekAndHours(t *testing.T) {
	t.Parallel()

	rs := []models.Reservation{
		{ID: 1, Date: "2025-03-17", StartTime: "09:00", EndTime: "10:00"},
		{ID: 2, Date: "2025-03-12", StartTime: "06:00", EndTime: "07:30"},
		{ID: 3, Date: "2025-03-12", StartTime: "bad", EndTime: "10:00"},
		{ID: 4, Date: "2025-03-12", StartTime: "07:30", EndTime: "08:15"},
	}
	grid := MapToGrid(rs, week(t, "2025-03-12"), DefaultHours())

	var seen []int
	for _, row := range grid {
		for _, cell := range row {
			for _, p := range cell.Bookings {
				seen = append(seen, p.Reservation.ID)
			}
		}
	}
	assert.Equal(t, []int{4}, seen)

	p := grid[0][2].Bookings[0]
	assert.InDelta(t, 0, p.Offset, 1e-9)
	assert.InDelta(t, 25, p.Height, 1e-9)
}

func TestMapToGrid_SharedCell(t *testing.T) {
	t.Parallel()

	rs := []models.Reservation{
		{ID: 1, RoomID: 1, Date: "2025-03-11", StartTime: "14:00", EndTime: "14:30"},
		{ID: 2, RoomID: 2, Date: "2025-03-11", StartTime: "14:15", EndTime: "16:00"},
	}
	grid := MapToGrid(rs, week(t, "2025-03-11"), DefaultHours())

	cell := grid[6][1]
	require.Len(t, cell.Bookings, 2)
	assert.InDelta(t, 25, cell.Bookings[1].Offset, 1e-9)
	assert.InDelta(t, 75, cell.Bookings[1].Height, 1e-9)
}

func TestPlace(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		iv             booking.Interval
		rowStart       int
		offset, height float64
	}{
		{"full hour", booking.Interval{Start: 540, End: 600}, 540, 0, 100},
		{"covers row", booking.Interval{Start: 480, End: 720}, 540, 0, 100},
		{"second half", booking.Interval{Start: 570, End: 660}, 540, 50, 50},
		{"first quarter", booking.Interval{Start: 500, End: 555}, 540, 0, 25},
		{"inside", booking.Interval{Start: 550, End: 580}, 540, 10.0 / 60 * 100, 50},
	}

	for _, tc := range testCases {
		offset, height := Place(tc.iv, tc.rowStart)
		assert.InDelta(t, tc.offset, offset, 1e-9, tc.name)
		assert.InDelta(t, tc.height, height, 1e-9, tc.name)
	}
}

func TestHours_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, DefaultHours().Validate())
	assert.NoError(t, Hours{Start: 0, End: 24}.Validate())
	assert.ErrorIs(t, Hours{Start: 18, End: 8}.Validate(), ErrInvalidHours)
	assert.ErrorIs(t, Hours{Start: 8, End: 8}.Validate(), ErrInvalidHours)
	assert.ErrorIs(t, Hours{Start: -1, End: 8}.Validate(), ErrInvalidHours)
	assert.ErrorIs(t, Hours{Start: 8, End: 25}.Validate(), ErrInvalidHours)
}

func TestView_Render(t *testing.T) {
	t.Parallel()

	anchor, err := datetime.ParseDate("2025-03-15")
	require.NoError(t, err)

	v := View{Anchor: anchor, RoomID: 1, Hours: Hours{Start: 9, End: 12}}
	rs := []models.Reservation{
		{ID: 1, RoomID: 1, Date: "2025-03-15", StartTime: "09:00", EndTime: "11:00"},
		{ID: 2, RoomID: 2, Date: "2025-03-15", StartTime: "09:00", EndTime: "11:00"},
		{ID: 3, RoomID: 1, Date: "2025-03-17", StartTime: "09:00", EndTime: "11:00"},
	}

	w := v.Render(rs)

	assert.Equal(t, "10 - 16 March 2025", w.Label)
	assert.Equal(t, "2025-03-03", w.PrevWeek)
	assert.Equal(t, "2025-03-17", w.NextWeek)
	assert.Equal(t, []string{
		"2025-03-10", "2025-03-11", "2025-03-12", "2025-03-13",
		"2025-03-14", "2025-03-15", "2025-03-16",
	}, w.Dates)
	require.Len(t, w.Rows, 3)
	assert.Equal(t, "09:00", w.Rows[0].Time)

	require.Len(t, w.Rows[0].Cells[5].Bookings, 1)
	assert.Equal(t, 1, w.Rows[0].Cells[5].Bookings[0].Reservation.ID)
	assert.Len(t, w.Rows[1].Cells[5].Bookings, 1)
	assert.True(t, w.Rows[2].Cells[5].Available)
}

func TestView_Navigation(t *testing.T) {
	t.Parallel()

	anchor, err := datetime.ParseDate("2025-03-31")
	require.NoError(t, err)

	v := View{Anchor: anchor, Hours: DefaultHours()}

	assert.Equal(t, "2025-04-07", datetime.FormatDate(v.Next().Dates()[0]))
	assert.Equal(t, "2025-03-24", datetime.FormatDate(v.Prev().Dates()[0]))
	assert.Equal(t, v.Anchor, v.Next().Prev().Anchor)
}
