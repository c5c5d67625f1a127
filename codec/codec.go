// Package codec serializes whole values V to bytes. The timecodec types carry
// their own marshaling methods, so any V holding them encodes dates and
// offset date-times as ISO-8601 text in every format here.
//
// Decode errors are wrapped with %w; errors.Is(err, timecodec.ErrFormat)
// tells a bad date apart from a malformed payload.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
