// Package datetime holds the civil date and clock arithmetic shared by the
// booking checker and the calendar.
//
// Dates are civil dates: they are always normalised to midnight UTC so that
// arithmetic never crosses a DST boundary.
package datetime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	MinutesPerDay  = 24 * 60
	MinutesPerHour = 60

	EndOfDay = "24:00"
)

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidClock = errors.New("invalid time of day")
)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, s)
	}
	return t, nil
}

func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// Civil drops the time-of-day and location of t, keeping its calendar date.
func Civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Today(now time.Time) time.Time {
	return Civil(now)
}

func AddDays(d time.Time, n int) time.Time {
	return Civil(d).AddDate(0, 0, n)
}

// WeekDatesOf returns the seven dates, Monday first, of the week containing anchor.
func WeekDatesOf(anchor time.Time) []time.Time {
	anchor = Civil(anchor)
	monday := AddDays(anchor, -((int(anchor.Weekday()) + 6) % 7))

	week := make([]time.Time, 7)
	for i := range week {
		week[i] = AddDays(monday, i)
	}

	return week
}

// IsPast reports whether date lies strictly before the current day.
// The time of day of now is ignored.
func IsPast(date time.Time, now time.Time) bool {
	return Civil(date).Before(Today(now))
}

// TimeToMinutes parses a strict 24-hour "HH:MM" clock into minutes since midnight.
func TimeToMinutes(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w %q: expected HH:MM", ErrInvalidClock, s)
	}

	hours, err := parseDigits(s[:2])
	if err != nil || hours > 23 {
		return 0, fmt.Errorf("%w %q: hour out of range", ErrInvalidClock, s)
	}

	minutes, err := parseDigits(s[3:])
	if err != nil || minutes > 59 {
		return 0, fmt.Errorf("%w %q: minute out of range", ErrInvalidClock, s)
	}

	return hours*MinutesPerHour + minutes, nil
}

// EndTimeToMinutes parses the end of an interval. It accepts everything
// TimeToMinutes does, plus "24:00" for the end of the day.
func EndTimeToMinutes(s string) (int, error) {
	if s == EndOfDay {
		return MinutesPerDay, nil
	}
	return TimeToMinutes(s)
}

func parseDigits(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// MinutesToTime formats minutes since midnight as "HH:MM". 1440 is rendered as "24:00".
func MinutesToTime(m int) string {
	if m < 0 {
		m = 0
	}
	if m > MinutesPerDay {
		m = MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", m/MinutesPerHour, m%MinutesPerHour)
}

func HourToTime(h int) string {
	return MinutesToTime(h * MinutesPerHour)
}

// FormatWeekRange renders a week as "10 - 16 March 2025", or
// "31 March - 6 April 2025" when it spans two months, or
// "29 December 2025 - 4 January 2026" when it spans two years.
func FormatWeekRange(week []time.Time) string {
	if len(week) == 0 {
		return ""
	}

	first, last := week[0], week[len(week)-1]
	if first.Month() == last.Month() {
		return fmt.Sprintf("%d - %d %s %d", first.Day(), last.Day(), first.Month(), first.Year())
	}

	if first.Year() != last.Year() {
		return fmt.Sprintf("%d %s %d - %d %s %d", first.Day(), first.Month(), first.Year(), last.Day(), last.Month(), last.Year())
	}

	return fmt.Sprintf("%d %s - %d %s %d", first.Day(), first.Month(), last.Day(), last.Month(), first.Year())
}

// FormatDateForDisplay turns "2025-03-15" into "15/03/2025".
func FormatDateForDisplay(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// FormatTimeForDisplay turns "09:00" into "09h00".
func FormatTimeForDisplay(clock string) string {
	return strings.Replace(clock, ":", "h", 1)
}
