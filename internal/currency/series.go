package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tcmbdata/go-evds/internal/dates"
)

// Series-code grammar of the EVDS exchange-rate table. A single code is
// <prefix>.<table>.<currency>.<direction token>; the legacy notation
// segment is inserted between the table and the currency code; several
// codes are joined with the multi-series separator.
const (
	seriesPrefix  = "TP"
	currencyTable = "DK"
	legacySegment = "YTL"
	buyingToken   = "A"
	sellingToken  = "S"

	segmentSep     = "."
	multiSeriesSep = "-"
)

// RedenominationCutoff is the last day of the pre-redenomination lira
// notation; the YTL reform took effect on the following day (01-01-2005).
// The legacy notation flag is only meaningful for selectors covering at
// least one day on or before this cutoff.
var RedenominationCutoff = dates.MustParse("31-12-2004")

// ErrLegacyNotationOutOfRange indicates the legacy notation flag was
// combined with a date selection that lies entirely after the
// redenomination cutoff.
var ErrLegacyNotationOutOfRange = errors.New("legacy notation requires dates on or before the redenomination cutoff")

// checkLegacyDates enforces the cross-object invariant between the legacy
// flag and the date selection. A range merely straddling the cutoff still
// covers legacy dates and is accepted.
func checkLegacyDates(legacy bool, sel dates.Selector) error {
	if legacy && sel.Start().After(RedenominationCutoff) {
		return fmt.Errorf("%w: %s starts after %s", ErrLegacyNotationOutOfRange, sel, RedenominationCutoff)
	}
	return nil
}

// seriesCodes derives the series-code strings for one currency, one per
// direction token. All inputs are already validated.
func seriesCodes(c Code, dir Direction, legacy bool) []string {
	segments := make([]string, 0, 5)
	segments = append(segments, seriesPrefix, currencyTable)
	if legacy {
		segments = append(segments, legacySegment)
	}
	segments = append(segments, c.WireCode())

	tokens := dir.suffixTokens()
	codes := make([]string, 0, len(tokens))
	for _, token := range tokens {
		codes = append(codes, strings.Join(append(segments, token), segmentSep))
	}
	return codes
}

// Series combines one currency code with a quotation direction, the legacy
// notation flag and a date selection. It is the validated building block
// for single-currency data requests; a constructed Series always derives a
// well-formed series key.
type Series struct {
	code      Code
	direction Direction
	legacy    bool
	selection dates.Selector
}

// NewSeries validates the currency code and the legacy-flag/date-cutoff
// invariant and returns an immutable Series.
func NewSeries(code Code, dir Direction, legacy bool, sel dates.Selector) (Series, error) {
	if !code.Valid() {
		return Series{}, fmt.Errorf("%w: value %d", ErrUnsupportedCurrency, int(code))
	}
	if err := checkLegacyDates(legacy, sel); err != nil {
		return Series{}, err
	}
	return Series{code: code, direction: dir, legacy: legacy, selection: sel}, nil
}

// Key derives the exact series-code string the service expects, e.g.
// "TP.DK.USD.S". The neutral direction yields the buying and selling codes
// joined with the multi-series separator.
func (s Series) Key() string {
	return strings.Join(seriesCodes(s.code, s.direction, s.legacy), multiSeriesSep)
}

// Selection returns the date scope the series was built with.
func (s Series) Selection() dates.Selector { return s.selection }

// Code returns the series' currency code.
func (s Series) Code() Code { return s.code }

// MultiSeries combines an ordered currency set with one quotation direction
// and one legacy flag applied uniformly to every member; there is no
// per-currency override.
type MultiSeries struct {
	set       Set
	direction Direction
	legacy    bool
	selection dates.Selector
}

// NewMultiSeries validates the set and the legacy-flag/date-cutoff
// invariant and returns an immutable MultiSeries.
func NewMultiSeries(set Set, dir Direction, legacy bool, sel dates.Selector) (MultiSeries, error) {
	if set.Len() == 0 {
		return MultiSeries{}, ErrEmptyCurrencySet
	}
	if err := checkLegacyDates(legacy, sel); err != nil {
		return MultiSeries{}, err
	}
	return MultiSeries{set: set, direction: dir, legacy: legacy, selection: sel}, nil
}

// Key derives one series code per member currency, in the set's insertion
// order, joined with the multi-series separator.
func (m MultiSeries) Key() string {
	codes := make([]string, 0, m.set.Len())
	for _, c := range m.set.codes {
		codes = append(codes, seriesCodes(c, m.direction, m.legacy)...)
	}
	return strings.Join(codes, multiSeriesSep)
}

// Selection returns the date scope the series was built with.
func (m MultiSeries) Selection() dates.Selector { return m.selection }
