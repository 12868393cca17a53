// Package client exposes the EVDS web service operations. The raw-series
// operations accept user-supplied series and data-group codes checked only
// for non-emptiness; the currency operations accept the validated series
// composites, which the service guarantees to be well-formed. Every
// operation builds its request descriptor and delegates dispatch to the
// Transport.
package client

import (
	"context"
	"log/slog"

	"github.com/tcmbdata/go-evds/internal/access"
	"github.com/tcmbdata/go-evds/internal/currency"
	"github.com/tcmbdata/go-evds/internal/dates"
	"github.com/tcmbdata/go-evds/internal/request"
	"github.com/tcmbdata/go-evds/internal/transport"
)

// Client issues EVDS operations with a fixed access configuration.
type Client struct {
	cfg       access.Config
	transport transport.Transport
	logger    *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTransport overrides the default HTTP transport.
func WithTransport(t transport.Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a Client for the given access configuration.
func New(cfg access.Config, opts ...Option) *Client {
	c := &Client{
		cfg:       cfg,
		transport: transport.NewHTTPTransport(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetData fetches time-series data for a raw series code, e.g.
// "TP.DK.USD.A" or a "-"-joined list of such codes.
func (c *Client) GetData(ctx context.Context, seriesCode string, sel dates.Selector) ([]byte, error) {
	series, err := request.NewRawSeries(seriesCode)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("fetching series data", "series", series.String(), "dates", sel.String())
	return c.transport.Do(ctx, request.NewData(c.cfg, series.String(), sel))
}

// GetDataGroup fetches every series in a data group, e.g. "bie_yssk".
func (c *Client) GetDataGroup(ctx context.Context, groupCode string, sel dates.Selector) ([]byte, error) {
	group, err := request.NewRawSeries(groupCode)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("fetching data group", "datagroup", group.String(), "dates", sel.String())
	return c.transport.Do(ctx, request.NewDataGroup(c.cfg, group.String(), sel))
}

// GetAdvancedDataGroup fetches a data group with frequency-formula
// parameters applied.
func (c *Client) GetAdvancedDataGroup(ctx context.Context, groupCode string, sel dates.Selector, opts currency.AdvancedOptions) ([]byte, error) {
	group, err := request.NewRawSeries(groupCode)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("fetching advanced data group", "datagroup", group.String(), "dates", sel.String())
	return c.transport.Do(ctx, request.NewAdvancedDataGroup(c.cfg, group.String(), sel, opts))
}

// GetCategories fetches the service's category listing.
func (c *Client) GetCategories(ctx context.Context) ([]byte, error) {
	c.logger.Debug("fetching categories")
	return c.transport.Do(ctx, request.NewCategories(c.cfg))
}

// GetSeriesList fetches the series listing for a data group.
func (c *Client) GetSeriesList(ctx context.Context, groupCode string) ([]byte, error) {
	group, err := request.NewRawSeries(groupCode)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("fetching series list", "code", group.String())
	return c.transport.Do(ctx, request.NewSeriesList(c.cfg, group.String()))
}

// GetCurrencyData fetches exchange-rate data for a validated single
// currency series.
func (c *Client) GetCurrencyData(ctx context.Context, series currency.Series) ([]byte, error) {
	c.logger.Debug("fetching currency data", "series", series.Key())
	return c.transport.Do(ctx, request.NewData(c.cfg, series.Key(), series.Selection()))
}

// GetAdvancedCurrencyData fetches exchange-rate data for a validated
// currency series with frequency-formula parameters applied.
func (c *Client) GetAdvancedCurrencyData(ctx context.Context, series currency.Series, opts currency.AdvancedOptions) ([]byte, error) {
	c.logger.Debug("fetching advanced currency data", "series", series.Key())
	return c.transport.Do(ctx, request.NewAdvancedData(c.cfg, series.Key(), series.Selection(), opts))
}

// GetMultipleCurrencyData fetches exchange-rate data for a validated
// multiple-currency series.
func (c *Client) GetMultipleCurrencyData(ctx context.Context, series currency.MultiSeries) ([]byte, error) {
	c.logger.Debug("fetching multiple currency data", "series", series.Key())
	return c.transport.Do(ctx, request.NewData(c.cfg, series.Key(), series.Selection()))
}
