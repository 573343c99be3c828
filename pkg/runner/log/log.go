// Package log runs the interactive composition session.
package log

import (
	"context"
	"errors"

	teaui "github.com/chasenunez/logue/pkg/runner/tea"
	"github.com/chasenunez/logue/pkg/store"
	"github.com/chasenunez/logue/pkg/vcs"
)

type Log struct {
	Persistence store.Persistence
	Publisher   vcs.Publisher
}

func (n *Log) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not log, no persistence")
	}
	pub := n.Publisher
	if pub == nil {
		pub = vcs.Noop{}
	}
	return teaui.Run(ctx, n.Persistence, pub)
}
