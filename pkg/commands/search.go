package commands

import (
	"github.com/spf13/cobra"

	"github.com/chasenunez/logue/pkg/commands/options"
	"github.com/chasenunez/logue/pkg/runner/search"
	"github.com/chasenunez/logue/pkg/store"
)

func addSearch(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "search <YYYY_MM_DD>",
		Short: "Search entries by date prefix",
		Example: `
logue search 2025_09_08
logue search 2025_09 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := search.Search{
				Date:        args[0],
				JSON:        oo.JSON,
				Persistence: p,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
