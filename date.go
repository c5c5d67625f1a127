package timecodec

import "time"

// Kind names the date/time type a codec handles. It shows up in errors and logs.
type Kind string

const (
	KindDate           Kind = "date"
	KindTimeOfDay      Kind = "time"
	KindDateTime       Kind = "date-time"
	KindOffsetDateTime Kind = "offset date-time"
)

// Date is a calendar date without time-of-day or zone.
// The zero value is not a valid date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// EpochDate is 1970-01-01.
var EpochDate = Date{Year: 1970, Month: time.January, Day: 1}

// DateOf returns the date in which t occurs, in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// IsValid reports whether d names a real day in years 0000-9999.
func (d Date) IsValid() bool {
	if d.Year < 0 || d.Year > 9999 {
		return false
	}
	return DateOf(d.In(time.UTC)) == d
}

// String returns the ISO-8601 form of d.
func (d Date) String() string { return Default().FormatDate(d) }

// TimeOfDay is a wall clock time without date or zone.
type TimeOfDay struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// TimeOfDayOf returns the wall clock time of t in t's own location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Nanosecond: t.Nanosecond()}
}

func (t TimeOfDay) IsValid() bool {
	return t.Hour >= 0 && t.Hour < 24 &&
		t.Minute >= 0 && t.Minute < 60 &&
		t.Second >= 0 && t.Second < 60 &&
		t.Nanosecond >= 0 && t.Nanosecond < int(time.Second)
}

func (t TimeOfDay) String() string { return Default().FormatTimeOfDay(t) }

// DateTime is a date and wall clock time without offset.
type DateTime struct {
	Date Date
	Time TimeOfDay
}

// DateTimeOf returns the date and wall clock time of t in t's own location.
func DateTimeOf(t time.Time) DateTime {
	return DateTime{Date: DateOf(t), Time: TimeOfDayOf(t)}
}

// In returns the instant at which dt occurs in loc.
func (dt DateTime) In(loc *time.Location) time.Time {
	return time.Date(dt.Date.Year, dt.Date.Month, dt.Date.Day,
		dt.Time.Hour, dt.Time.Minute, dt.Time.Second, dt.Time.Nanosecond, loc)
}

func (dt DateTime) IsValid() bool { return dt.Date.IsValid() && dt.Time.IsValid() }

func (dt DateTime) String() string { return Default().FormatDateTime(dt) }
