package commands

import (
	"github.com/spf13/cobra"

	"github.com/chasenunez/logue/pkg/commands/options"
	"github.com/chasenunez/logue/pkg/runner/tag"
	"github.com/chasenunez/logue/pkg/store"
)

func addTag(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "tag <tag>",
		Short: "Search entries by tag (without #)",
		Example: `
logue tag projectx
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := tag.Tag{
				Tag:         args[0],
				JSON:        oo.JSON,
				Persistence: p,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
