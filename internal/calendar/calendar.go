// Package calendar projects reservations onto a Monday-first weekly grid of
// hourly rows. It performs no I/O.
package calendar

import (
	"errors"
	"fmt"
	"time"

	"roomBooker/internal/booking"
	"roomBooker/internal/lib/datetime"
	"roomBooker/internal/models"
)

var ErrInvalidHours = errors.New("invalid business hours")

// Hours is the [Start, End) range of hours rendered as rows.
type Hours struct {
	Start int `json:"start_hour"`
	End   int `json:"end_hour"`
}

func DefaultHours() Hours {
	return Hours{Start: 8, End: 18}
}

func (h Hours) Validate() error {
	if h.Start < 0 || h.End > 24 || h.Start >= h.End {
		return fmt.Errorf("%w: %d-%d", ErrInvalidHours, h.Start, h.End)
	}
	return nil
}

// Window is the business day as a minute interval.
func (h Hours) Window() booking.Interval {
	return booking.Interval{
		Start: h.Start * datetime.MinutesPerHour,
		End:   h.End * datetime.MinutesPerHour,
	}
}

// Slot is the booking payload proposed by an empty cell.
type Slot struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Placement locates a reservation inside one hour cell, in percent of the cell height.
type Placement struct {
	Reservation models.Reservation `json:"reservation"`
	Offset      float64            `json:"offset"`
	Height      float64            `json:"height"`
}

type Cell struct {
	Date      string      `json:"date"`
	Hour      int         `json:"hour"`
	Available bool        `json:"available"`
	Slot      *Slot       `json:"slot,omitempty"`
	Bookings  []Placement `json:"bookings,omitempty"`
}

// MapToGrid buckets reservations into cells. The result has one row per hour in
// hours and one column per date in week. A reservation appears in every row it
// overlaps on its own date.
func MapToGrid(reservations []models.Reservation, week []time.Time, hours Hours) [][]Cell {
	columns := make(map[string]int, len(week))
	dates := make([]string, len(week))
	for i, d := range week {
		dates[i] = datetime.FormatDate(d)
		columns[dates[i]] = i
	}

	rows := make([][]Cell, 0, max(hours.End-hours.Start, 0))
	for h := hours.Start; h < hours.End; h++ {
		row := make([]Cell, len(week))
		for i, date := range dates {
			row[i] = Cell{Date: date, Hour: h}
		}
		rows = append(rows, row)
	}

	for _, r := range reservations {
		col, ok := columns[r.Date]
		if !ok {
			continue
		}

		iv, err := booking.IntervalOf(r)
		if err != nil || iv.Start >= iv.End {
			continue
		}

		for i := range rows {
			rowStart := (hours.Start + i) * datetime.MinutesPerHour
			cell := booking.Interval{Start: rowStart, End: rowStart + datetime.MinutesPerHour}
			if !iv.Overlaps(cell) {
				continue
			}

			offset, height := Place(iv, rowStart)
			rows[i][col].Bookings = append(rows[i][col].Bookings, Placement{
				Reservation: r,
				Offset:      offset,
				Height:      height,
			})
		}
	}

	for i := range rows {
		for j := range rows[i] {
			c := &rows[i][j]
			if len(c.Bookings) > 0 {
				continue
			}
			c.Available = true
			c.Slot = &Slot{
				Date:      c.Date,
				StartTime: datetime.HourToTime(c.Hour),
				EndTime:   datetime.HourToTime(c.Hour + 1),
			}
		}
	}

	return rows
}

// Place returns the vertical offset and height, in percent, of iv inside the
// hour row starting at rowStart minutes.
func Place(iv booking.Interval, rowStart int) (offset, height float64) {
	rowEnd := rowStart + datetime.MinutesPerHour

	offset = percentOfHour(max(0, iv.Start-rowStart))
	height = percentOfHour(min(rowEnd, iv.End) - max(rowStart, iv.Start))

	return clamp(offset), clamp(height)
}

func percentOfHour(minutes int) float64 {
	return float64(minutes) / datetime.MinutesPerHour * 100
}

func clamp(p float64) float64 {
	return min(max(p, 0), 100)
}
