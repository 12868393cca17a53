package currency

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedValue indicates an advanced-query field value outside its
// closed enumeration. The wrapped message names the offending field.
var ErrUnsupportedValue = errors.New("unsupported value")

// Frequency selects the sampling frequency of an advanced query. Wire
// values are the service's numeric frequency codes.
type Frequency int

const (
	FrequencyDaily Frequency = iota + 1
	FrequencyBusiness
	FrequencyWeekly
	FrequencySemimonthly
	FrequencyMonthly
	FrequencyQuarterly
	FrequencySemiannual
	FrequencyAnnual
)

var frequencyNames = map[string]Frequency{
	"daily":       FrequencyDaily,
	"business":    FrequencyBusiness,
	"weekly":      FrequencyWeekly,
	"semimonthly": FrequencySemimonthly,
	"monthly":     FrequencyMonthly,
	"quarterly":   FrequencyQuarterly,
	"semiannual":  FrequencySemiannual,
	"annual":      FrequencyAnnual,
}

// Valid reports whether f is a member of the closed frequency set.
func (f Frequency) Valid() bool {
	return f >= FrequencyDaily && f <= FrequencyAnnual
}

// WireCode returns the value the service expects in the "frequency"
// parameter.
func (f Frequency) WireCode() string { return strconv.Itoa(int(f)) }

// ParseFrequency maps textual input onto the closed frequency set.
func ParseFrequency(text string) (Frequency, error) {
	if f, ok := frequencyNames[strings.ToLower(strings.TrimSpace(text))]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: frequency %q", ErrUnsupportedValue, text)
}

// Aggregation selects how observations are aggregated within each
// frequency bucket. Wire values are the service's aggregation tokens.
type Aggregation int

const (
	AggregationAverage Aggregation = iota + 1
	AggregationMin
	AggregationMax
	AggregationFirst
	AggregationLast
	AggregationSum
)

var aggregationTokens = map[Aggregation]string{
	AggregationAverage: "avg",
	AggregationMin:     "min",
	AggregationMax:     "max",
	AggregationFirst:   "first",
	AggregationLast:    "last",
	AggregationSum:     "sum",
}

// Valid reports whether a is a member of the closed aggregation set.
func (a Aggregation) Valid() bool {
	_, ok := aggregationTokens[a]
	return ok
}

// WireCode returns the value the service expects in the
// "aggregationTypes" parameter.
func (a Aggregation) WireCode() string { return aggregationTokens[a] }

// ParseAggregation maps textual input onto the closed aggregation set.
func ParseAggregation(text string) (Aggregation, error) {
	lowered := strings.ToLower(strings.TrimSpace(text))
	for a, token := range aggregationTokens {
		if token == lowered {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: aggregation %q", ErrUnsupportedValue, text)
}

// Formula selects the frequency formula applied to the series. Wire values
// are the service's numeric formula codes; level (raw values) is 0.
type Formula int

const (
	FormulaLevel Formula = iota
	FormulaPercentageChange
	FormulaDifference
	FormulaYearlyPercentageChange
	FormulaYearlyDifference
	FormulaPercentageChangeEndOfPreviousYear
	FormulaDifferenceEndOfPreviousYear
	FormulaMovingAverage
	FormulaMovingSum
)

var formulaNames = map[string]Formula{
	"level":                FormulaLevel,
	"percentage-change":    FormulaPercentageChange,
	"difference":           FormulaDifference,
	"yoy-percentage":       FormulaYearlyPercentageChange,
	"yoy-difference":       FormulaYearlyDifference,
	"prev-year-percentage": FormulaPercentageChangeEndOfPreviousYear,
	"prev-year-difference": FormulaDifferenceEndOfPreviousYear,
	"moving-average":       FormulaMovingAverage,
	"moving-sum":           FormulaMovingSum,
}

// Valid reports whether f is a member of the closed formula set.
func (f Formula) Valid() bool {
	return f >= FormulaLevel && f <= FormulaMovingSum
}

// WireCode returns the value the service expects in the "formulas"
// parameter.
func (f Formula) WireCode() string { return strconv.Itoa(int(f)) }

// ParseFormula maps textual input onto the closed formula set.
func ParseFormula(text string) (Formula, error) {
	if f, ok := formulaNames[strings.ToLower(strings.TrimSpace(text))]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: formula %q", ErrUnsupportedValue, text)
}

// AdvancedOptions layers the frequency/aggregation/formula selectors onto a
// series for the advanced query path. Each field is validated independently
// against its own enumeration; unsupported combinations are the remote
// service's call and surface only as a transport-level failure.
type AdvancedOptions struct {
	frequency   Frequency
	aggregation Aggregation
	formula     Formula
}

// NewAdvancedOptions validates each field against its closed enumeration
// and returns an immutable AdvancedOptions. No cross-field checks are
// performed.
func NewAdvancedOptions(freq Frequency, agg Aggregation, formula Formula) (AdvancedOptions, error) {
	if !freq.Valid() {
		return AdvancedOptions{}, fmt.Errorf("%w: frequency %d", ErrUnsupportedValue, int(freq))
	}
	if !agg.Valid() {
		return AdvancedOptions{}, fmt.Errorf("%w: aggregation %d", ErrUnsupportedValue, int(agg))
	}
	if !formula.Valid() {
		return AdvancedOptions{}, fmt.Errorf("%w: formula %d", ErrUnsupportedValue, int(formula))
	}
	return AdvancedOptions{frequency: freq, aggregation: agg, formula: formula}, nil
}

// Frequency returns the validated frequency selector.
func (o AdvancedOptions) Frequency() Frequency { return o.frequency }

// Aggregation returns the validated aggregation selector.
func (o AdvancedOptions) Aggregation() Aggregation { return o.aggregation }

// Formula returns the validated formula selector.
func (o AdvancedOptions) Formula() Formula { return o.formula }
