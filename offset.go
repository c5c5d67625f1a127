package timecodec

import "time"

// MaxOffset bounds the UTC offset of an OffsetDateTime in either direction.
const MaxOffset = 18 * time.Hour

// OffsetDateTime is an instant together with the UTC offset it was observed in.
// Two values are Equal only when both the instant and the offset match, so
// 03:00+03:00 and 00:00Z are different values.
type OffsetDateTime struct {
	t time.Time
}

// OffsetDateTimeOf keeps t's instant and its current offset. The zone name is
// dropped: a zero offset becomes UTC, any other a fixed unnamed zone.
func OffsetDateTimeOf(t time.Time) OffsetDateTime {
	_, off := t.Zone()
	return OffsetDateTime{t: t.In(fixedZone(off))}
}

// NewOffsetDateTime returns instant as seen from the given offset.
// The offset is truncated to whole seconds.
func NewOffsetDateTime(instant time.Time, offset time.Duration) OffsetDateTime {
	return OffsetDateTime{t: instant.In(fixedZone(int(offset / time.Second)))}
}

func fixedZone(sec int) *time.Location {
	if sec == 0 {
		return time.UTC
	}
	return time.FixedZone("", sec)
}

// Time returns the value as a time.Time in a fixed zone.
func (o OffsetDateTime) Time() time.Time { return o.t }

// Offset returns the UTC offset.
func (o OffsetDateTime) Offset() time.Duration {
	_, off := o.t.Zone()
	return time.Duration(off) * time.Second
}

// Equal reports whether o and u are the same instant with the same offset.
func (o OffsetDateTime) Equal(u OffsetDateTime) bool {
	return o.t.Equal(u.t) && o.Offset() == u.Offset()
}

func (o OffsetDateTime) IsZero() bool { return o.t.IsZero() }

// IsValid reports whether o can be written as ISO-8601 text: a four digit
// year and an offset within MaxOffset.
func (o OffsetDateTime) IsValid() bool {
	if y := o.t.Year(); y < 0 || y > 9999 {
		return false
	}
	off := o.Offset()
	return off >= -MaxOffset && off <= MaxOffset
}

func (o OffsetDateTime) String() string { return Default().FormatOffsetDateTime(o) }
