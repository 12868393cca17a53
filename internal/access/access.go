// Package access holds the per-request service credentials: the API key
// every EVDS request must carry and the response format selector.
package access

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyAPIKey indicates an API key that is empty after trimming
// surrounding whitespace.
var ErrEmptyAPIKey = errors.New("api key must not be empty")

// ErrUnsupportedFormat indicates a return format outside the service's
// closed set.
var ErrUnsupportedFormat = errors.New("unsupported return format")

// ReturnFormat selects the representation of the service response body.
type ReturnFormat int

const (
	// FormatJSON requests a JSON response body.
	FormatJSON ReturnFormat = iota
	// FormatXML requests an XML response body.
	FormatXML
	// FormatCSV requests a CSV response body.
	FormatCSV
)

// WireCode returns the value the service expects in the "type" parameter.
func (f ReturnFormat) WireCode() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatCSV:
		return "csv"
	default:
		return "json"
	}
}

// String implements fmt.Stringer using the wire code.
func (f ReturnFormat) String() string { return f.WireCode() }

// ParseReturnFormat maps textual input onto the closed format set.
func ParseReturnFormat(text string) (ReturnFormat, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	case "csv":
		return FormatCSV, nil
	default:
		return FormatJSON, fmt.Errorf("%w: %q", ErrUnsupportedFormat, text)
	}
}

// Config carries the two values every request needs: the opaque API key and
// the chosen response format. It is immutable once constructed.
type Config struct {
	key    string
	format ReturnFormat
}

// NewConfig validates the API key and pairs it with a response format.
// The key is opaque beyond being non-empty after trimming.
func NewConfig(key string, format ReturnFormat) (Config, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return Config{}, ErrEmptyAPIKey
	}
	return Config{key: trimmed, format: format}, nil
}

// Key returns the validated API key.
func (c Config) Key() string { return c.key }

// Format returns the selected response format.
func (c Config) Format() ReturnFormat { return c.format }
