package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/chasenunez/logue/pkg/commands/options"
	"github.com/chasenunez/logue/pkg/runner/tasks"
	"github.com/chasenunez/logue/pkg/store"
)

func addTasks(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Show tasks deferred from the day before",
		Example: `
logue tasks
logue tasks --on 2025_09_08
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Open(nil)
			if err != nil {
				return err
			}

			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			if on == nil {
				now := time.Now()
				on = &now
			}

			s := tasks.Tasks{
				On:          *on,
				Persistence: p,
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}
