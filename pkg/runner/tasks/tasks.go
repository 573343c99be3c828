// Package tasks prints the deferred tasks that fall due on a given day.
package tasks

import (
	"context"
	"errors"
	"time"

	"github.com/chasenunez/logue/pkg/entry"
	"github.com/chasenunez/logue/pkg/printers"
	"github.com/chasenunez/logue/pkg/query"
	"github.com/chasenunez/logue/pkg/store"
)

type Tasks struct {
	On          time.Time
	Persistence store.Persistence
}

func (n *Tasks) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list tasks, no persistence")
	}

	on := n.On
	if on.IsZero() {
		on = time.Now()
	}

	q := query.Engine{Source: n.Persistence}
	due := q.TasksDueToday(on)

	pp := printers.PrettyPrint{}
	pp.Title("Tasks due " + on.Format(entry.DayLayout))
	pp.Tasks(due)
	return nil
}
