// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// SearchOptions captures the original top-level search flags.
type SearchOptions struct {
	Date string
	Tag  string
}

// AddSearchArgs wires the legacy --search / --search-tag flags on the root
// command.
func AddSearchArgs(cmd *cobra.Command, o *SearchOptions) {
	cmd.Flags().StringVar(&o.Date, "search", "",
		"Search entries by date (YYYY_MM_DD prefix).")
	cmd.Flags().StringVar(&o.Tag, "search-tag", "",
		"Search entries by tag (without #).")
}
