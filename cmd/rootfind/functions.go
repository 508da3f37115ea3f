package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wildstyl3r/rootfind/internal/functions"
)

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List the function catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, name := range functions.Names() {
			fn, _ := functions.Lookup(name)
			fmt.Fprintf(tw, "%s\t%s\n", name, fn.Expression)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(functionsCmd)
}
