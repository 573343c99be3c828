// Package tag prints entries carrying an exact tag.
package tag

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/chasenunez/logue/pkg/printers"
	"github.com/chasenunez/logue/pkg/query"
	"github.com/chasenunez/logue/pkg/store"
)

type Tag struct {
	Tag         string
	JSON        bool
	Persistence store.Persistence
}

func (n *Tag) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not search, no persistence")
	}

	q := query.Engine{Source: n.Persistence}
	all := q.ByTag(n.Tag)

	if n.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount("#"+n.Tag, len(all))
	pp.Entries(all...)
	return nil
}
