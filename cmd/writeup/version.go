package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/writeup"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of writeup",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "writeup version %s\n", strings.TrimSpace(writeup.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
