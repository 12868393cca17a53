package main

import (
	"github.com/spf13/cobra"
)

var serieListCmd = &cobra.Command{
	Use:   "serielist <code>",
	Short: "List the series of a data group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		body, err := c.GetSeriesList(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeResponse(body)
	},
}

func init() {
	rootCmd.AddCommand(serieListCmd)
}
