package main

import (
	"dollarwords/internal/core/querylog"

	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	var history bool
	cmd := &cobra.Command{
		Use:   "convert <value>...",
		Short: "Convert one or more amounts",
		Long: `Converts each value in order and prints one line per value.

Example:
  dollarwords convert 1234.38 0.5 -- -17`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			log := querylog.New(a.conv)
			for _, arg := range args {
				a.query(log, arg)
			}
			if history {
				a.history(log)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&history, "history", false, "print the query history after the results")
	return cmd
}
