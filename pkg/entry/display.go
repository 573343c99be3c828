package entry

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// PrettyPrintEntries renders entries as a three column table: timestamp,
// body, tag/location metadata.
func PrettyPrintEntries(entries ...*Entry) {
	if len(entries) == 0 {
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true

	for _, e := range entries {
		ts, text, meta := e.Row()
		tbl.AddRow(ts, text, meta)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
