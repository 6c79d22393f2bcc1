package main

import (
	"fmt"

	"github.com/aretw0/ipcli"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ipcli",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ipcli version %s\n", ipcli.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
