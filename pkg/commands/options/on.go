package options

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/chasenunez/logue/pkg/entry"
)

// OnOptions selects a reference date for day-relative views.
type OnOptions struct {
	On string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.On, "on", "",
		"Reference date (YYYY_MM_DD), defaults to today.")
}

// GetOn parses the reference date; nil means "now".
func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.On == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(entry.DayLayout, o.On, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
