package commands

import (
	"errors"
	"os"

	isatty "github.com/mattn/go-isatty"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"github.com/chasenunez/logue/pkg/commands/options"
	runnerlog "github.com/chasenunez/logue/pkg/runner/log"
	"github.com/chasenunez/logue/pkg/runner/search"
	"github.com/chasenunez/logue/pkg/runner/tag"
	"github.com/chasenunez/logue/pkg/store"
	"github.com/chasenunez/logue/pkg/vcs"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {
	so := &options.SearchOptions{}

	cmd := &cobra.Command{
		Use:          "logue",
		Short:        base.Wrap80("A personal terminal logbook: free text in, tagged history out, synced to git."),
		SilenceUsage: true,
		Example: `
logue
logue --search 2025_09_08
logue --search-tag projectx
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Open(cfg)
			if err != nil {
				return err
			}

			switch {
			case so.Date != "":
				s := search.Search{Date: so.Date, Persistence: p}
				return output.HandleError(s.Do(cmd.Context()))
			case so.Tag != "":
				s := tag.Tag{Tag: so.Tag, Persistence: p}
				return output.HandleError(s.Do(cmd.Context()))
			}

			if !isatty.IsTerminal(os.Stdout.Fd()) {
				return errors.New("interactive mode requires a terminal")
			}

			l := runnerlog.Log{
				Persistence: p,
				Publisher:   vcs.ForStore(cfg.BasePath(), cfg.Document(), cfg.SyncEnabled()),
			}
			return l.Do(cmd.Context())
		},
	}

	options.AddSearchArgs(cmd, so)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addSearch(topLevel)
	addTag(topLevel)
	addTasks(topLevel)
	addVersion(topLevel)
}
