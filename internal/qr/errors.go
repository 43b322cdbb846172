package qr

import (
	"errors"
	"fmt"
)

// ErrPayloadTooLarge is matched by an EncodingError whose payload does not fit
// in a version 40 symbol or exceeds the configured limit.
var ErrPayloadTooLarge = errors.New("payload too large")

// EncodingError reports a payload that could not be turned into a QR symbol.
type EncodingError struct {
	Length int   // payload length in bytes
	Cause  error // underlying error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode qr code (%d bytes): %v", e.Length, e.Cause)
}

func (e *EncodingError) Unwrap() error { return e.Cause }
