package calendar

import (
	"time"

	"roomBooker/internal/booking"
	"roomBooker/internal/lib/datetime"
	"roomBooker/internal/models"
)

// View is the calendar state a client navigates: which week, which room
// (0 for all rooms) and which hours are shown. Navigation returns new values.
type View struct {
	Anchor time.Time
	RoomID int
	Hours  Hours
}

func (v View) Dates() []time.Time {
	return datetime.WeekDatesOf(v.Anchor)
}

func (v View) Next() View {
	v.Anchor = datetime.AddDays(v.Anchor, 7)
	return v
}

func (v View) Prev() View {
	v.Anchor = datetime.AddDays(v.Anchor, -7)
	return v
}

// Filter keeps the reservations of the selected room that fall inside the week.
func (v View) Filter(rs []models.Reservation) []models.Reservation {
	dates := v.Dates()
	first, last := datetime.FormatDate(dates[0]), datetime.FormatDate(dates[len(dates)-1])

	out := make([]models.Reservation, 0, len(rs))
	for _, r := range booking.Filter(rs, v.RoomID, "") {
		if r.Date < first || r.Date > last {
			continue
		}
		out = append(out, r)
	}

	return out
}

type Row struct {
	Hour  int    `json:"hour"`
	Time  string `json:"time"`
	Cells []Cell `json:"cells"`
}

type Week struct {
	Label    string   `json:"label"`
	Dates    []string `json:"dates"`
	PrevWeek string   `json:"prev_week"`
	NextWeek string   `json:"next_week"`
	RoomID   int      `json:"room_id,omitempty"`
	Hours    Hours    `json:"hours"`
	Rows     []Row    `json:"rows"`
}

// Render projects the view over a snapshot of reservations.
func (v View) Render(rs []models.Reservation) Week {
	dates := v.Dates()
	grid := MapToGrid(v.Filter(rs), dates, v.Hours)

	week := Week{
		Label:    datetime.FormatWeekRange(dates),
		Dates:    make([]string, len(dates)),
		PrevWeek: datetime.FormatDate(v.Prev().Dates()[0]),
		NextWeek: datetime.FormatDate(v.Next().Dates()[0]),
		RoomID:   v.RoomID,
		Hours:    v.Hours,
		Rows:     make([]Row, len(grid)),
	}

	for i, d := range dates {
		week.Dates[i] = datetime.FormatDate(d)
	}

	for i, cells := range grid {
		hour := v.Hours.Start + i
		week.Rows[i] = Row{
			Hour:  hour,
			Time:  datetime.HourToTime(hour),
			Cells: cells,
		}
	}

	return week
}
