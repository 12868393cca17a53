package main

import (
	"github.com/spf13/cobra"
)

var (
	dataGroupDates    dateFlags
	dataGroupAdvanced advancedFlags
)

var dataGroupCmd = &cobra.Command{
	Use:   "datagroup <code>",
	Short: "Fetch every series in a data group",
	Long:  "Fetch every series in a data group, e.g. bie_yssk. Passing the frequency-formula flags switches to the advanced query path.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := dataGroupDates.selector()
		if err != nil {
			return err
		}

		c, err := newClient()
		if err != nil {
			return err
		}

		if dataGroupAdvanced.present() {
			opts, err := dataGroupAdvanced.options()
			if err != nil {
				return err
			}
			body, err := c.GetAdvancedDataGroup(cmd.Context(), args[0], sel, opts)
			if err != nil {
				return err
			}
			return writeResponse(body)
		}

		body, err := c.GetDataGroup(cmd.Context(), args[0], sel)
		if err != nil {
			return err
		}
		return writeResponse(body)
	},
}

func init() {
	dataGroupDates.register(dataGroupCmd)
	dataGroupAdvanced.register(dataGroupCmd)
	rootCmd.AddCommand(dataGroupCmd)
}
