package main

import (
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the service's data categories",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		body, err := c.GetCategories(cmd.Context())
		if err != nil {
			return err
		}
		return writeResponse(body)
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
