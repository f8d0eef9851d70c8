package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gridedit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gridedit %s\n", version)
		fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", commit)
		fmt.Fprintf(cmd.OutOrStdout(), "Built: %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
