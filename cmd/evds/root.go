package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tcmbdata/go-evds/internal/access"
	"github.com/tcmbdata/go-evds/internal/client"
	"github.com/tcmbdata/go-evds/internal/config"
	"github.com/tcmbdata/go-evds/internal/currency"
	"github.com/tcmbdata/go-evds/internal/dates"
	"github.com/tcmbdata/go-evds/internal/logger"
	"github.com/tcmbdata/go-evds/internal/transport"
)

// Exit codes following standard conventions.
const (
	ExitSuccess     = 0
	ExitUsageError  = 1
	ExitConfigError = 2
	ExitRequestErr  = 3
)

var rootCmd = &cobra.Command{
	Use:           "evds",
	Short:         "evds - a CLI for the CBRT EVDS web service",
	Long:          "evds fetches time-series data from the Central Bank of the Republic of Turkey's Electronic Data Delivery System.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "evds: %s\n", err)
		os.Exit(ExitUsageError)
	}
}

// newClient assembles a client from the environment configuration.
func newClient() (*client.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	format, err := access.ParseReturnFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	accessCfg, err := access.NewConfig(cfg.APIKey, format)
	if err != nil {
		return nil, fmt.Errorf("EVDS_API_KEY: %w", err)
	}

	log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	tr := transport.NewHTTPTransport(
		transport.WithBaseURL(cfg.BaseURL),
		transport.WithTimeout(cfg.HTTPTimeout),
		transport.WithLogger(log),
	)

	return client.New(accessCfg, client.WithTransport(tr), client.WithLogger(log)), nil
}

// dateFlags holds the shared date selection flags.
type dateFlags struct {
	date  string
	start string
	end   string
}

// register wires the date flags onto a command.
func (f *dateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "single date (DD-MM-YYYY)")
	cmd.Flags().StringVar(&f.start, "start", "", "range start date (DD-MM-YYYY)")
	cmd.Flags().StringVar(&f.end, "end", "", "range end date (DD-MM-YYYY)")
}

// selector converts the flags into a validated date selector.
func (f *dateFlags) selector() (dates.Selector, error) {
	if f.date != "" {
		if f.start != "" || f.end != "" {
			return dates.Selector{}, fmt.Errorf("--date cannot be combined with --start/--end")
		}
		d, err := dates.Parse(f.date)
		if err != nil {
			return dates.Selector{}, err
		}
		return dates.Single(d), nil
	}

	if f.start == "" || f.end == "" {
		return dates.Selector{}, fmt.Errorf("either --date or both --start and --end are required")
	}
	start, err := dates.Parse(f.start)
	if err != nil {
		return dates.Selector{}, err
	}
	end, err := dates.Parse(f.end)
	if err != nil {
		return dates.Selector{}, err
	}
	return dates.Range(start, end)
}

// advancedFlags holds the optional frequency-formula flags shared by the
// advanced query commands.
type advancedFlags struct {
	frequency   string
	aggregation string
	formula     string
}

// register wires the advanced flags onto a command.
func (f *advancedFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.frequency, "frequency", "", "sampling frequency (daily, business, weekly, semimonthly, monthly, quarterly, semiannual, annual)")
	cmd.Flags().StringVar(&f.aggregation, "aggregation", "", "aggregation (avg, min, max, first, last, sum)")
	cmd.Flags().StringVar(&f.formula, "formula", "", "formula (level, percentage-change, difference, yoy-percentage, yoy-difference, prev-year-percentage, prev-year-difference, moving-average, moving-sum)")
}

// present reports whether any advanced flag was set.
func (f *advancedFlags) present() bool {
	return f.frequency != "" || f.aggregation != "" || f.formula != ""
}

// options validates the flags into AdvancedOptions. All three flags must be
// given together.
func (f *advancedFlags) options() (currency.AdvancedOptions, error) {
	if f.frequency == "" || f.aggregation == "" || f.formula == "" {
		return currency.AdvancedOptions{}, fmt.Errorf("--frequency, --aggregation and --formula must be given together")
	}
	freq, err := currency.ParseFrequency(f.frequency)
	if err != nil {
		return currency.AdvancedOptions{}, err
	}
	agg, err := currency.ParseAggregation(f.aggregation)
	if err != nil {
		return currency.AdvancedOptions{}, err
	}
	formula, err := currency.ParseFormula(f.formula)
	if err != nil {
		return currency.AdvancedOptions{}, err
	}
	return currency.NewAdvancedOptions(freq, agg, formula)
}

// writeResponse emits the raw service response on stdout.
func writeResponse(body []byte) error {
	_, err := os.Stdout.Write(body)
	return err
}
