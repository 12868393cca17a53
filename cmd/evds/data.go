package main

import (
	"github.com/spf13/cobra"
)

var dataDates dateFlags

var dataCmd = &cobra.Command{
	Use:   "data <series>",
	Short: "Fetch time-series data for a raw series code",
	Long:  "Fetch time-series data for a raw series code, e.g. TP.DK.USD.A, or several codes joined with '-'.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := dataDates.selector()
		if err != nil {
			return err
		}

		c, err := newClient()
		if err != nil {
			return err
		}

		body, err := c.GetData(cmd.Context(), args[0], sel)
		if err != nil {
			return err
		}
		return writeResponse(body)
	},
}

func init() {
	dataDates.register(dataCmd)
	rootCmd.AddCommand(dataCmd)
}
