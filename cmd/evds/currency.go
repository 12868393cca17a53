package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tcmbdata/go-evds/internal/currency"
)

var (
	currencyDates    dateFlags
	currencyAdvanced advancedFlags
	currencyCodes    string
	currencyDir      string
	currencyYTL      bool
)

var currencyCmd = &cobra.Command{
	Use:   "currency",
	Short: "Fetch exchange-rate series from the currency table",
	Long: "Fetch exchange-rate series from the EVDS currency table. The series codes are derived and " +
		"validated locally, so only well-formed requests reach the service. With --ytl the legacy " +
		"pre-redenomination series variant is requested, which requires dates on or before 31-12-2004.",
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := currencyDates.selector()
		if err != nil {
			return err
		}

		dir, err := currency.ParseDirection(currencyDir)
		if err != nil {
			return err
		}

		var codes []currency.Code
		for _, text := range strings.Split(currencyCodes, ",") {
			code, err := currency.ParseCode(text)
			if err != nil {
				return err
			}
			codes = append(codes, code)
		}

		c, err := newClient()
		if err != nil {
			return err
		}

		if len(codes) == 1 {
			series, err := currency.NewSeries(codes[0], dir, currencyYTL, sel)
			if err != nil {
				return err
			}

			if currencyAdvanced.present() {
				opts, err := currencyAdvanced.options()
				if err != nil {
					return err
				}
				body, err := c.GetAdvancedCurrencyData(cmd.Context(), series, opts)
				if err != nil {
					return err
				}
				return writeResponse(body)
			}

			body, err := c.GetCurrencyData(cmd.Context(), series)
			if err != nil {
				return err
			}
			return writeResponse(body)
		}

		if currencyAdvanced.present() {
			return fmt.Errorf("frequency-formula flags are only supported for a single currency code")
		}

		set, err := currency.NewSet(codes...)
		if err != nil {
			return err
		}
		multi, err := currency.NewMultiSeries(set, dir, currencyYTL, sel)
		if err != nil {
			return err
		}

		body, err := c.GetMultipleCurrencyData(cmd.Context(), multi)
		if err != nil {
			return err
		}
		return writeResponse(body)
	},
}

func init() {
	currencyDates.register(currencyCmd)
	currencyAdvanced.register(currencyCmd)
	currencyCmd.Flags().StringVar(&currencyCodes, "codes", "", "comma-separated currency codes, e.g. USD,GBP")
	currencyCmd.Flags().StringVar(&currencyDir, "direction", "both", "quotation direction (buying, selling, both)")
	currencyCmd.Flags().BoolVar(&currencyYTL, "ytl", false, "request the legacy (YTL) series variant")
	currencyCmd.MarkFlagRequired("codes")
	rootCmd.AddCommand(currencyCmd)
}
