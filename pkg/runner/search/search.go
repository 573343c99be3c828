// Package search prints entries matching a date prefix.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/chasenunez/logue/pkg/printers"
	"github.com/chasenunez/logue/pkg/query"
	"github.com/chasenunez/logue/pkg/store"
)

type Search struct {
	Date        string
	JSON        bool
	Persistence store.Persistence
}

func (n *Search) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not search, no persistence")
	}

	q := query.Engine{Source: n.Persistence}
	all := q.ByDate(n.Date)

	if n.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount(n.Date, len(all))
	pp.Entries(all...)
	return nil
}
