package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/writeup/pkg/core"
	"github.com/aretw0/writeup/pkg/writeup"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List writeups below the base directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := resolveSettings(cmd.Flags(), os.Getenv)
		if err != nil {
			fatal("Failed to load config", err)
		}

		entries, err := writeup.List(cmd.Context(), s.BaseDir)
		if err != nil {
			fatal("Failed to list writeups", err)
		}

		if err := printEntries(cmd.OutOrStdout(), entries, listJSON); err != nil {
			fatal("Failed to print writeups", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}

func printEntries(out io.Writer, entries []core.Entry, asJSON bool) error {
	if asJSON {
		if entries == nil {
			entries = []core.Entry{}
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	for _, e := range entries {
		m := e.Metadata
		if _, err := fmt.Fprintf(out, "%-10s  %-6s  %-24s  %s\n", dash(m.Date), dash(m.Platform), dash(m.MachineName), e.Path); err != nil {
			return err
		}
	}
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
