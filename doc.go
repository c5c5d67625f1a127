// Package timecodec converts calendar dates and offset date-times to and from
// strict ISO-8601 text for JSON and other serializers.
//
// Types:
//   - Date:           2006-01-02
//   - TimeOfDay:      15:04:05.000
//   - DateTime:       2006-01-02T15:04:05.000
//   - OffsetDateTime: 2006-01-02T15:04:05.000Z07:00 (offset kept as given)
//
// A CodecSet holds the encode/decode logic for one formatting Variant. Build it
// once at startup and hand it to a mapper:
//
//	set, err := timecodec.New(timecodec.Options{Variant: timecodec.ISO})
//	if err != nil { ... }
//	m := jsonmapper.New(set)
//
// The types also implement json, text, cbor and msgpack marshaling using the
// ISO set, so plain encoding/json works without any registration.
//
// Parse failures are *FormatError values; errors.Is(err, ErrFormat) matches
// them through any wrapping done by a mapper.
package timecodec
