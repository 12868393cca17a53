// Package request assembles validated inputs into the exact request
// descriptor the EVDS service expects: a fixed endpoint path per operation
// kind plus an order-stable query-parameter list. Construction is
// infallible; every value arriving here was validated upstream, so a built
// Request can never represent an invalid query.
package request

import (
	"net/url"
	"strings"

	"github.com/tcmbdata/go-evds/internal/access"
	"github.com/tcmbdata/go-evds/internal/currency"
	"github.com/tcmbdata/go-evds/internal/dates"
)

// Endpoint paths, one per operation kind. Series data, data-group and all
// currency operations share the data path and are distinguished by the
// identifier parameter name.
const (
	pathData       = "service/evds"
	pathCategories = "service/evds/categories"
	pathSeriesList = "service/evds/serieList"
)

// Query parameter names. The identifier parameter differs by operation:
// "series" for series data, "datagroup" for data groups, "code" for the
// series list.
const (
	paramKey         = "key"
	paramType        = "type"
	paramSeries      = "series"
	paramDataGroup   = "datagroup"
	paramCode        = "code"
	paramStartDate   = "startDate"
	paramEndDate     = "endDate"
	paramFrequency   = "frequency"
	paramAggregation = "aggregationTypes"
	paramFormulas    = "formulas"
)

// Param is one query parameter. Requests carry params as a slice rather
// than a map to keep the service's required parameter order stable.
type Param struct {
	Key   string
	Value string
}

// Request is a fully-resolved request descriptor: endpoint path plus the
// ordered query parameters. It is immutable once built.
type Request struct {
	path   string
	params []Param
}

// base starts every parameter list with the access token and the response
// format code, in that order.
func base(cfg access.Config) []Param {
	return []Param{
		{Key: paramKey, Value: cfg.Key()},
		{Key: paramType, Value: cfg.Format().WireCode()},
	}
}

// withDates appends the date scope rendered as the two fixed-format date
// parameters. A single-date selector renders identical start and end
// values.
func withDates(params []Param, sel dates.Selector) []Param {
	return append(params,
		Param{Key: paramStartDate, Value: sel.Start().String()},
		Param{Key: paramEndDate, Value: sel.End().String()},
	)
}

// withAdvanced appends the frequency-formula parameters after the base
// parameters, in the service's fixed order.
func withAdvanced(params []Param, opts currency.AdvancedOptions) []Param {
	return append(params,
		Param{Key: paramFrequency, Value: opts.Frequency().WireCode()},
		Param{Key: paramAggregation, Value: opts.Aggregation().WireCode()},
		Param{Key: paramFormulas, Value: opts.Formula().WireCode()},
	)
}

// NewData builds a series data request for an already-validated series
// identifier string.
func NewData(cfg access.Config, seriesKey string, sel dates.Selector) Request {
	params := append(base(cfg), Param{Key: paramSeries, Value: seriesKey})
	return Request{path: pathData, params: withDates(params, sel)}
}

// NewAdvancedData builds a series data request carrying frequency-formula
// parameters.
func NewAdvancedData(cfg access.Config, seriesKey string, sel dates.Selector, opts currency.AdvancedOptions) Request {
	req := NewData(cfg, seriesKey, sel)
	req.params = withAdvanced(req.params, opts)
	return req
}

// NewDataGroup builds a data-group request for the given group code.
func NewDataGroup(cfg access.Config, groupCode string, sel dates.Selector) Request {
	params := append(base(cfg), Param{Key: paramDataGroup, Value: groupCode})
	return Request{path: pathData, params: withDates(params, sel)}
}

// NewAdvancedDataGroup builds a data-group request carrying
// frequency-formula parameters.
func NewAdvancedDataGroup(cfg access.Config, groupCode string, sel dates.Selector, opts currency.AdvancedOptions) Request {
	req := NewDataGroup(cfg, groupCode, sel)
	req.params = withAdvanced(req.params, opts)
	return req
}

// NewCategories builds the category listing request. It carries no series
// identifier and no date scope.
func NewCategories(cfg access.Config) Request {
	return Request{path: pathCategories, params: base(cfg)}
}

// NewSeriesList builds the series listing request for the given data-group
// code.
func NewSeriesList(cfg access.Config, groupCode string) Request {
	params := append(base(cfg), Param{Key: paramCode, Value: groupCode})
	return Request{path: pathSeriesList, params: params}
}

// Path returns the endpoint path.
func (r Request) Path() string { return r.path }

// Params returns the ordered query parameters. The returned slice is a
// copy; the request itself stays immutable.
func (r Request) Params() []Param {
	out := make([]Param, len(r.params))
	copy(out, r.params)
	return out
}

// QueryString renders the parameters as a percent-encoded query string,
// preserving parameter order.
func (r Request) QueryString() string {
	var b strings.Builder
	for i, p := range r.params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// URL joins the base service URL, the endpoint path and the encoded query
// string into the final request URL.
func (r Request) URL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/" + r.path + "?" + r.QueryString()
}
