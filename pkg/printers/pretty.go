package printers

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/chasenunez/logue/pkg/entry"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		pp.None()
		return
	}
	entry.PrettyPrintEntries(entries...)
}

func (pp *PrettyPrint) Tasks(tasks []string) {
	if len(tasks) == 0 {
		pp.None()
		return
	}
	t := color.New()
	for _, task := range tasks {
		_, _ = t.Printf("  › %s\n", task)
	}
	_, _ = t.Println("")
}

func (pp *PrettyPrint) None() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}
