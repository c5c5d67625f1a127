package timecodec

import (
	"errors"
	"testing"
	"time"
)

func TestFormatDateEpoch(t *testing.T) {
	if got := Default().FormatDate(EpochDate); got != "1970-01-01" {
		t.Fatalf("FormatDate(epoch) = %q; want 1970-01-01", got)
	}
	if got := (Date{Year: 7, Month: time.March, Day: 9}).String(); got != "0007-03-09" {
		t.Fatalf("zero padding: got %q", got)
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want Date
	}{
		{"1970-01-01", EpochDate},
		{"2024-02-29", Date{2024, time.February, 29}},
		{"0000-01-01", Date{0, time.January, 1}},
		{"9999-12-31", Date{9999, time.December, 31}},
	}
	for _, tc := range cases {
		got, err := Default().ParseDate(tc.in)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDate(%q) = %+v; want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseDateRejects(t *testing.T) {
	bad := []string{
		"1970-01-01 03:00",
		"1970-01-01T00:00:00",
		"1970/01/01",
		"1970-1-01",
		"19700101",
		"1970-13-01",
		"1970-00-10",
		"1970-04-31",
		"2023-02-29",
		"1970-01-01Z",
		" 1970-01-01",
		"",
	}
	for _, in := range bad {
		_, err := Default().ParseDate(in)
		if err == nil {
			t.Fatalf("ParseDate(%q): expected error", in)
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("ParseDate(%q): want *FormatError, got %T", in, err)
		}
		if fe.Kind != KindDate || fe.Input != in {
			t.Fatalf("ParseDate(%q): unexpected error fields %+v", in, fe)
		}
		if !errors.Is(err, ErrFormat) {
			t.Fatalf("ParseDate(%q): errors.Is(ErrFormat) = false", in)
		}
	}
}

func TestDateRoundTrip(t *testing.T) {
	start := time.Date(1899, time.December, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3*366; i++ {
		d := DateOf(start.AddDate(0, 0, i*47))
		text := Default().FormatDate(d)
		got, err := Default().ParseDate(text)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", text, err)
		}
		if got != d {
			t.Fatalf("round trip %+v -> %q -> %+v", d, text, got)
		}
		if again := Default().FormatDate(got); again != text {
			t.Fatalf("re-encode %q != %q", again, text)
		}
	}
}

func TestDateIsValid(t *testing.T) {
	cases := []struct {
		d    Date
		want bool
	}{
		{EpochDate, true},
		{Date{}, false},
		{Date{2021, time.February, 29}, false},
		{Date{2020, time.February, 29}, true},
		{Date{2020, 13, 1}, false},
		{Date{10000, time.January, 1}, false},
		{Date{-1, time.January, 1}, false},
	}
	for _, tc := range cases {
		if got := tc.d.IsValid(); got != tc.want {
			t.Fatalf("%+v.IsValid() = %v; want %v", tc.d, got, tc.want)
		}
	}
}

func TestFormatInvalidIsNotNormalized(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{Date{}.String(), "0000-00-00"},
		{Date{2021, time.February, 30}.String(), "2021-02-30"},
		{TimeOfDay{Hour: 25}.String(), "25:00:00.000"},
		{DateTime{Date: Date{2020, 13, 1}, Time: TimeOfDay{Hour: 1}}.String(), "2020-13-01T01:00:00.000"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("got %q; want %q", tc.got, tc.want)
		}
	}
	if _, err := Default().ParseDate(Date{}.String()); err == nil {
		t.Fatalf("formatted invalid date should not parse")
	}
}

func TestDateOfUsesOwnLocation(t *testing.T) {
	// 23:30 UTC on Jan 1 is already Jan 2 at +03:00
	at := time.Date(1970, time.January, 1, 23, 30, 0, 0, time.UTC)
	if got := DateOf(at); got != EpochDate {
		t.Fatalf("DateOf(utc) = %+v", got)
	}
	if got := DateOf(at.In(time.FixedZone("", 3*3600))); got != (Date{1970, time.January, 2}) {
		t.Fatalf("DateOf(+03:00) = %+v", got)
	}
}

func TestTimeOfDay(t *testing.T) {
	tod := TimeOfDay{Hour: 9, Minute: 5, Second: 7, Nanosecond: 123_000_000}
	if got := tod.String(); got != "09:05:07.123" {
		t.Fatalf("String() = %q", got)
	}
	got, err := Default().ParseTimeOfDay("09:05:07.123")
	if err != nil || got != tod {
		t.Fatalf("ParseTimeOfDay = %+v, %v", got, err)
	}

	// fraction is optional on input and truncated to millis on output
	got, err = Default().ParseTimeOfDay("23:59:59")
	if err != nil || got != (TimeOfDay{Hour: 23, Minute: 59, Second: 59}) {
		t.Fatalf("ParseTimeOfDay(no fraction) = %+v, %v", got, err)
	}
	got, err = Default().ParseTimeOfDay("00:00:00.123456789")
	if err != nil {
		t.Fatal(err)
	}
	if s := Default().FormatTimeOfDay(got); s != "00:00:00.123" {
		t.Fatalf("FormatTimeOfDay = %q", s)
	}

	for _, in := range []string{"1:02:03", "24:00:00", "12:60:00", "12:34", "12:34:56Z", "12:34:56+03:00", "12 34 56"} {
		if _, err := Default().ParseTimeOfDay(in); !errors.Is(err, ErrFormat) {
			t.Fatalf("ParseTimeOfDay(%q): want format error, got %v", in, err)
		}
	}
}

func TestDateTime(t *testing.T) {
	dt := DateTime{Date: EpochDate, Time: TimeOfDay{Hour: 3}}
	if got := dt.String(); got != "1970-01-01T03:00:00.000" {
		t.Fatalf("String() = %q", got)
	}
	got, err := Default().ParseDateTime("1970-01-01T03:00:00.000")
	if err != nil || got != dt {
		t.Fatalf("ParseDateTime = %+v, %v", got, err)
	}
	if !dt.In(time.UTC).Equal(time.Unix(3*3600, 0)) {
		t.Fatalf("In(UTC) = %v", dt.In(time.UTC))
	}

	for _, in := range []string{
		"1970-01-01 03:00",
		"1970-01-01 03:00:00",
		"1970-01-01T03:00",
		"1970-01-01T03:00:00Z",
		"1970-01-01T03:00:00+03:00",
		"1970-02-30T03:00:00",
	} {
		_, err := Default().ParseDateTime(in)
		var fe *FormatError
		if !errors.As(err, &fe) || fe.Kind != KindDateTime {
			t.Fatalf("ParseDateTime(%q): want date-time FormatError, got %v", in, err)
		}
	}
}
