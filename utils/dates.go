package utils

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// CheckInHour is the hotel's fixed check-in/check-out wall-clock hour, UTC.
const CheckInHour = 17

// DateOnly truncates an instant to its UTC calendar date at midnight.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights returns the whole-day difference between two instants, comparing
// calendar dates only so UTC offsets cannot skew the count.
func Nights(checkin, checkout time.Time) int {
	return int(DateOnly(checkout).Sub(DateOnly(checkin)).Hours() / 24)
}

// AtCheckInHour pins an instant's calendar date to the fixed 17:00:00Z
// check-in hour.
func AtCheckInHour(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, CheckInHour, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a UTC midnight instant.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// EachDay calls fn for every calendar day in [start, end] inclusive.
func EachDay(start, end time.Time, fn func(day time.Time) error) error {
	for day := DateOnly(start); !day.After(DateOnly(end)); day = day.AddDate(0, 0, 1) {
		if err := fn(day); err != nil {
			return err
		}
	}
	return nil
}
