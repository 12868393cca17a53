package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcmbdata/go-evds/internal/access"
	"github.com/tcmbdata/go-evds/internal/currency"
	"github.com/tcmbdata/go-evds/internal/dates"
)

func testConfig(t *testing.T) access.Config {
	t.Helper()
	cfg, err := access.NewConfig("T", access.FormatJSON)
	require.NoError(t, err)
	return cfg
}

func TestNewDataSingleDate(t *testing.T) {
	sel := dates.Single(dates.MustParse("13-12-2011"))

	series, err := currency.NewSeries(currency.USD, currency.DirectionSelling, false, sel)
	require.NoError(t, err)

	req := NewData(testConfig(t), series.Key(), sel)

	assert.Equal(t, "service/evds", req.Path())
	assert.Equal(t, []Param{
		{Key: "key", Value: "T"},
		{Key: "type", Value: "json"},
		{Key: "series", Value: "TP.DK.USD.S"},
		{Key: "startDate", Value: "13-12-2011"},
		{Key: "endDate", Value: "13-12-2011"},
	}, req.Params())
}

func TestNewDataRange(t *testing.T) {
	sel, err := dates.Range(dates.MustParse("13-12-2011"), dates.MustParse("12-12-2012"))
	require.NoError(t, err)

	req := NewData(testConfig(t), "TP.DK.USD.A", sel)

	params := req.Params()
	assert.Equal(t, Param{Key: "startDate", Value: "13-12-2011"}, params[3])
	assert.Equal(t, Param{Key: "endDate", Value: "12-12-2012"}, params[4])
}

func TestNewAdvancedDataAppendsFormulaParams(t *testing.T) {
	sel := dates.Single(dates.MustParse("13-12-2011"))
	opts, err := currency.NewAdvancedOptions(currency.FrequencyMonthly, currency.AggregationAverage, currency.FormulaLevel)
	require.NoError(t, err)

	req := NewAdvancedData(testConfig(t), "TP.DK.USD.A", sel, opts)

	params := req.Params()
	require.Len(t, params, 8)
	assert.Equal(t, Param{Key: "frequency", Value: "5"}, params[5])
	assert.Equal(t, Param{Key: "aggregationTypes", Value: "avg"}, params[6])
	assert.Equal(t, Param{Key: "formulas", Value: "0"}, params[7])
}

func TestNewDataGroup(t *testing.T) {
	sel := dates.Single(dates.MustParse("13-12-2011"))

	req := NewDataGroup(testConfig(t), "bie_yssk", sel)

	assert.Equal(t, "service/evds", req.Path())
	params := req.Params()
	assert.Equal(t, Param{Key: "datagroup", Value: "bie_yssk"}, params[2])
}

func TestNewAdvancedDataGroup(t *testing.T) {
	sel := dates.Single(dates.MustParse("13-12-2011"))
	opts, err := currency.NewAdvancedOptions(currency.FrequencyAnnual, currency.AggregationSum, currency.FormulaDifference)
	require.NoError(t, err)

	req := NewAdvancedDataGroup(testConfig(t), "bie_yssk", sel, opts)

	params := req.Params()
	require.Len(t, params, 8)
	assert.Equal(t, Param{Key: "frequency", Value: "8"}, params[5])
	assert.Equal(t, Param{Key: "aggregationTypes", Value: "sum"}, params[6])
	assert.Equal(t, Param{Key: "formulas", Value: "2"}, params[7])
}

func TestNewCategories(t *testing.T) {
	req := NewCategories(testConfig(t))

	assert.Equal(t, "service/evds/categories", req.Path())
	assert.Equal(t, []Param{
		{Key: "key", Value: "T"},
		{Key: "type", Value: "json"},
	}, req.Params())
}

func TestNewSeriesList(t *testing.T) {
	req := NewSeriesList(testConfig(t), "bie_yssk")

	assert.Equal(t, "service/evds/serieList", req.Path())
	assert.Equal(t, []Param{
		{Key: "key", Value: "T"},
		{Key: "type", Value: "json"},
		{Key: "code", Value: "bie_yssk"},
	}, req.Params())
}

func TestQueryStringPreservesOrderAndEscapes(t *testing.T) {
	sel := dates.Single(dates.MustParse("13-12-2011"))

	req := NewData(testConfig(t), "TP.DK.USD.A-TP.DK.USD.S", sel)

	assert.Equal(t,
		"key=T&type=json&series=TP.DK.USD.A-TP.DK.USD.S&startDate=13-12-2011&endDate=13-12-2011",
		req.QueryString())
}

func TestQueryStringEscapesReservedCharacters(t *testing.T) {
	sel := dates.Single(dates.MustParse("13-12-2011"))
	cfg, err := access.NewConfig("k&e y", access.FormatJSON)
	require.NoError(t, err)

	req := NewData(cfg, "TP.DK.USD.A", sel)

	assert.Contains(t, req.QueryString(), "key=k%26e+y")
}

func TestURLJoinsBaseAndPath(t *testing.T) {
	req := NewCategories(testConfig(t))

	assert.Equal(t,
		"https://evds2.tcmb.gov.tr/service/evds/categories?key=T&type=json",
		req.URL("https://evds2.tcmb.gov.tr/"))
	assert.Equal(t,
		"https://evds2.tcmb.gov.tr/service/evds/categories?key=T&type=json",
		req.URL("https://evds2.tcmb.gov.tr"))
}

func TestParamsReturnsCopy(t *testing.T) {
	req := NewCategories(testConfig(t))

	params := req.Params()
	params[0].Value = "tampered"
	assert.Equal(t, "T", req.Params()[0].Value)
}

func TestNewRawSeries(t *testing.T) {
	s, err := NewRawSeries(" TP.DK.USD.A ")
	require.NoError(t, err)
	assert.Equal(t, "TP.DK.USD.A", s.String())
}

func TestNewRawSeriesEmpty(t *testing.T) {
	for _, text := range []string{"", "   "} {
		_, err := NewRawSeries(text)
		assert.ErrorIs(t, err, ErrEmptyRawSeries)
	}
}
