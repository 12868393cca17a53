// Package currency models the EVDS currency domain: the closed set of
// tradable currency units the exchange-rate table carries, the buy/sell
// quotation direction, the legacy (pre-redenomination) notation flag, and
// the composite series builders that derive the exact series-code strings
// the service expects.
package currency

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedCurrency indicates a currency code outside the
	// exchange-rate table's closed set.
	ErrUnsupportedCurrency = errors.New("unsupported currency code")

	// ErrEmptyCurrencySet indicates a multiple-currency request with no
	// currency codes.
	ErrEmptyCurrencySet = errors.New("currency set must not be empty")
)

// Code identifies one tradable currency unit from the EVDS exchange-rate
// table. The set is closed; free-form values are rejected at parse time.
type Code int

const (
	USD Code = iota
	AUD
	DKK
	EUR
	GBP
	CHF
	SEK
	CAD
	KWD
	NOK
	SAR
	JPY
	BGN
	RON
	RUB
	IRR
	CNY
	PKR
	QAR
	numCodes // sentinel, keep last
)

var wireCodes = [numCodes]string{
	USD: "USD",
	AUD: "AUD",
	DKK: "DKK",
	EUR: "EUR",
	GBP: "GBP",
	CHF: "CHF",
	SEK: "SEK",
	CAD: "CAD",
	KWD: "KWD",
	NOK: "NOK",
	SAR: "SAR",
	JPY: "JPY",
	BGN: "BGN",
	RON: "RON",
	RUB: "RUB",
	IRR: "IRR",
	CNY: "CNY",
	PKR: "PKR",
	QAR: "QAR",
}

// Valid reports whether c is a member of the closed currency set.
func (c Code) Valid() bool {
	return c >= 0 && c < numCodes
}

// WireCode returns the three-letter code the service uses inside series
// identifiers.
func (c Code) WireCode() string {
	if !c.Valid() {
		return ""
	}
	return wireCodes[c]
}

// String implements fmt.Stringer using the wire code.
func (c Code) String() string { return c.WireCode() }

// ParseCode maps a three-letter currency code onto the closed set,
// case-insensitively. Unknown codes fail with ErrUnsupportedCurrency.
func ParseCode(text string) (Code, error) {
	upper := strings.ToUpper(strings.TrimSpace(text))
	for c := Code(0); c < numCodes; c++ {
		if wireCodes[c] == upper {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, text)
}

// Set is an ordered collection of currency codes for a multiple-series
// request. Insertion order is preserved and duplicate insertion is a no-op.
type Set struct {
	codes []Code
}

// NewSet builds a Set from the given codes, dropping duplicates while
// keeping first-insertion order. An empty result fails with
// ErrEmptyCurrencySet; a code outside the closed set fails with
// ErrUnsupportedCurrency.
func NewSet(codes ...Code) (Set, error) {
	var s Set
	seen := make(map[Code]struct{}, len(codes))
	for _, c := range codes {
		if !c.Valid() {
			return Set{}, fmt.Errorf("%w: value %d", ErrUnsupportedCurrency, int(c))
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		s.codes = append(s.codes, c)
	}
	if len(s.codes) == 0 {
		return Set{}, ErrEmptyCurrencySet
	}
	return s, nil
}

// Codes returns the member codes in insertion order. The returned slice is
// a copy; the set itself stays immutable.
func (s Set) Codes() []Code {
	out := make([]Code, len(s.codes))
	copy(out, s.codes)
	return out
}

// Len returns the number of member codes.
func (s Set) Len() int { return len(s.codes) }

// Direction selects the quotation side of an exchange-rate series.
type Direction int

const (
	// DirectionBoth is the neutral default: the derived series covers both
	// the buying and the selling quotation.
	DirectionBoth Direction = iota
	// DirectionBuying selects the buying ("A") quotation.
	DirectionBuying
	// DirectionSelling selects the selling ("S") quotation.
	DirectionSelling
)

// suffixTokens returns the series suffix tokens the direction expands to,
// in the fixed buying-before-selling order.
func (d Direction) suffixTokens() []string {
	switch d {
	case DirectionBuying:
		return []string{buyingToken}
	case DirectionSelling:
		return []string{sellingToken}
	default:
		return []string{buyingToken, sellingToken}
	}
}

// String implements fmt.Stringer for logging.
func (d Direction) String() string {
	switch d {
	case DirectionBuying:
		return "buying"
	case DirectionSelling:
		return "selling"
	default:
		return "both"
	}
}

// ParseDirection maps textual input onto a Direction. The empty string and
// "both" select the neutral default.
func ParseDirection(text string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "both":
		return DirectionBoth, nil
	case "buying", "buy":
		return DirectionBuying, nil
	case "selling", "sell":
		return DirectionSelling, nil
	default:
		return DirectionBoth, fmt.Errorf("%w: direction %q", ErrUnsupportedValue, text)
	}
}
