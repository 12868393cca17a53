package request

import (
	"errors"
	"strings"
)

// ErrEmptyRawSeries indicates a raw series or group code that is empty
// after trimming. The unrestricted path performs no validation beyond
// this; the caller is responsible for the code's meaning.
var ErrEmptyRawSeries = errors.New("raw series code must not be empty")

// RawSeries is a user-supplied series or data-group code for the
// unrestricted access path, validated only for non-emptiness.
type RawSeries string

// NewRawSeries trims and validates a raw series code.
func NewRawSeries(text string) (RawSeries, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyRawSeries
	}
	return RawSeries(trimmed), nil
}

// String returns the validated code.
func (s RawSeries) String() string { return string(s) }
