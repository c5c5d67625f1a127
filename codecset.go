package timecodec

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Variant selects the text layouts a CodecSet reads and writes.
type Variant string

// ISO is strict ISO-8601 with millisecond precision on output.
const ISO Variant = "iso"

// ParseVariant maps a configuration string ("iso", "ISO", " iso ") to a Variant.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := variants[v]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
	return v, nil
}

// layouts holds time package layouts for one variant. The shape fields use
// 'd' for a required digit; every other byte must match literally. They pin
// field widths that time.Parse alone would accept loosely (e.g. "3:04").
type layouts struct {
	date      string
	timeOfDay string
	dateTime  string

	parseTimeOfDay             string
	parseDateTime              string
	parseOffsetDateTime        string
	parseOffsetDateTimeSeconds string

	dateShape     string
	timeShape     string
	dateTimeShape string
}

var variants = map[Variant]layouts{
	ISO: {
		date:      "2006-01-02",
		timeOfDay: "15:04:05.000",
		dateTime:  "2006-01-02T15:04:05.000",

		parseTimeOfDay:             "15:04:05.999999999",
		parseDateTime:              "2006-01-02T15:04:05.999999999",
		parseOffsetDateTime:        time.RFC3339Nano,
		parseOffsetDateTimeSeconds: "2006-01-02T15:04:05.999999999Z07:00:00",

		dateShape:     "dddd-dd-dd",
		timeShape:     "dd:dd:dd",
		dateTimeShape: "dddd-dd-ddTdd:dd:dd",
	},
}

// Options configure a CodecSet. The zero value selects ISO with logging off.
type Options struct {
	Variant Variant // "" => ISO
	Logger  Logger  // nil => NopLogger; parse failures are logged at debug
}

// CodecSet is the immutable encode/decode logic for one Variant.
// It is safe for concurrent use.
type CodecSet struct {
	variant Variant
	l       layouts
	log     Logger
}

// New builds a CodecSet. An unknown variant fails here rather than on first use.
func New(opts Options) (*CodecSet, error) {
	v := coalesce(opts.Variant, ISO)
	l, ok := variants[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
	return &CodecSet{
		variant: v,
		l:       l,
		log:     coalesce[Logger](opts.Logger, NopLogger{}),
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts Options) *CodecSet {
	s, err := New(opts)
	if err != nil {
		panic(err)
	}
	return s
}

var defaultSet = sync.OnceValue(func() *CodecSet { return MustNew(Options{Variant: ISO}) })

// Default returns the shared ISO CodecSet used by the types' own marshaling
// methods. It never logs.
func Default() *CodecSet { return defaultSet() }

func (s *CodecSet) Variant() Variant { return s.variant }

// AppendDate writes d as YYYY-MM-DD. An invalid d is written field by field
// without calendar normalization, so the result never parses back.
func (s *CodecSet) AppendDate(dst []byte, d Date) []byte {
	if !d.IsValid() {
		return fmt.Appendf(dst, "%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
	}
	return d.In(time.UTC).AppendFormat(dst, s.l.date)
}

func (s *CodecSet) FormatDate(d Date) string { return string(s.AppendDate(nil, d)) }

// ParseDate reads a calendar date, rejecting any time component.
func (s *CodecSet) ParseDate(text string) (Date, error) {
	if !hasShape(text, s.l.dateShape) || len(text) != len(s.l.dateShape) {
		return Date{}, s.fail(KindDate, text, errShape)
	}
	t, err := time.Parse(s.l.date, text)
	if err != nil {
		return Date{}, s.fail(KindDate, text, err)
	}
	return DateOf(t), nil
}

func (s *CodecSet) AppendTimeOfDay(dst []byte, t TimeOfDay) []byte {
	if !t.IsValid() {
		return fmt.Appendf(dst, "%02d:%02d:%02d.%03d", t.Hour, t.Minute, t.Second, t.Nanosecond/int(time.Millisecond))
	}
	return DateTime{Date: EpochDate, Time: t}.In(time.UTC).AppendFormat(dst, s.l.timeOfDay)
}

func (s *CodecSet) FormatTimeOfDay(t TimeOfDay) string { return string(s.AppendTimeOfDay(nil, t)) }

func (s *CodecSet) ParseTimeOfDay(text string) (TimeOfDay, error) {
	if !hasShape(text, s.l.timeShape) {
		return TimeOfDay{}, s.fail(KindTimeOfDay, text, errShape)
	}
	t, err := time.Parse(s.l.parseTimeOfDay, text)
	if err != nil {
		return TimeOfDay{}, s.fail(KindTimeOfDay, text, err)
	}
	return TimeOfDayOf(t), nil
}

func (s *CodecSet) AppendDateTime(dst []byte, dt DateTime) []byte {
	if !dt.IsValid() {
		dst = append(s.AppendDate(dst, dt.Date), 'T')
		return s.AppendTimeOfDay(dst, dt.Time)
	}
	return dt.In(time.UTC).AppendFormat(dst, s.l.dateTime)
}

func (s *CodecSet) FormatDateTime(dt DateTime) string { return string(s.AppendDateTime(nil, dt)) }

// ParseDateTime reads a date-time without offset; a trailing Z or offset is an error.
func (s *CodecSet) ParseDateTime(text string) (DateTime, error) {
	if !hasShape(text, s.l.dateTimeShape) {
		return DateTime{}, s.fail(KindDateTime, text, errShape)
	}
	t, err := time.Parse(s.l.parseDateTime, text)
	if err != nil {
		return DateTime{}, s.fail(KindDateTime, text, err)
	}
	return DateTimeOf(t), nil
}

// AppendOffsetDateTime writes millisecond precision and the value's own
// offset; a zero offset is written as Z.
func (s *CodecSet) AppendOffsetDateTime(dst []byte, o OffsetDateTime) []byte {
	return appendOffset(o.t.AppendFormat(dst, s.l.dateTime), o.Offset())
}

// appendOffset writes ±HH:MM, or ±HH:MM:SS when off has a seconds part
// (local mean time zones before 1900 do).
func appendOffset(dst []byte, off time.Duration) []byte {
	sec := int(off / time.Second)
	if sec == 0 {
		return append(dst, 'Z')
	}
	sign := '+'
	if sec < 0 {
		sign, sec = '-', -sec
	}
	dst = fmt.Appendf(dst, "%c%02d:%02d", sign, sec/3600, sec/60%60)
	if sec%60 != 0 {
		dst = fmt.Appendf(dst, ":%02d", sec%60)
	}
	return dst
}

func (s *CodecSet) FormatOffsetDateTime(o OffsetDateTime) string {
	return string(s.AppendOffsetDateTime(nil, o))
}

// ParseOffsetDateTime reads an RFC 3339 date-time, also accepting a ±HH:MM:SS
// offset. Fractional seconds are optional; the offset is kept exactly as written.
func (s *CodecSet) ParseOffsetDateTime(text string) (OffsetDateTime, error) {
	if !hasShape(text, s.l.dateTimeShape) {
		return OffsetDateTime{}, s.fail(KindOffsetDateTime, text, errShape)
	}
	layout := s.l.parseOffsetDateTime
	if hasSecondsOffset(text) {
		layout = s.l.parseOffsetDateTimeSeconds
	}
	t, err := time.Parse(layout, text)
	if err != nil {
		return OffsetDateTime{}, s.fail(KindOffsetDateTime, text, err)
	}
	o := OffsetDateTimeOf(t)
	if off := o.Offset(); off < -MaxOffset || off > MaxOffset {
		return OffsetDateTime{}, s.fail(KindOffsetDateTime, text, errOffset)
	}
	return o, nil
}

var (
	errShape  = errors.New("unexpected layout")
	errOffset = errors.New("offset out of range")
)

func (s *CodecSet) fail(kind Kind, text string, err error) error {
	s.log.Debug("parse failed", Fields{"variant": string(s.variant), "kind": string(kind), "input": text, "err": err.Error()})
	return &FormatError{Kind: kind, Input: text, Err: err}
}

// hasShape reports whether text starts with shape, where 'd' in shape
// matches any ASCII digit.
func hasShape(text, shape string) bool {
	if len(text) < len(shape) {
		return false
	}
	for i := 0; i < len(shape); i++ {
		c := text[i]
		if shape[i] == 'd' {
			if c < '0' || c > '9' {
				return false
			}
		} else if c != shape[i] {
			return false
		}
	}
	return true
}

// hasSecondsOffset reports whether text ends in a ±HH:MM:SS offset.
func hasSecondsOffset(text string) bool {
	n := len(text)
	return n >= 9 && (text[n-9] == '+' || text[n-9] == '-') && text[n-6] == ':' && text[n-3] == ':'
}
