package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Printer writes cards and transitions to a terminal.
type Printer struct {
	out io.Writer

	title    *color.Color
	tag      *color.Color
	featured *color.Color
	enter    *color.Color
	exit     *color.Color
	faint    *color.Color
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:      out,
		title:    color.New(color.FgCyan, color.Bold),
		tag:      color.New(color.FgYellow),
		featured: color.New(color.FgRed, color.Bold),
		enter:    color.New(color.FgGreen),
		exit:     color.New(color.FgRed),
		faint:    color.New(color.Faint),
	}
}

// Transitions prints what changed in the last reconciliation.
func (p *Printer) Transitions(transitions []Transition) {
	for _, t := range transitions {
		switch t.Op {
		case OpEnter:
			fmt.Fprintf(p.out, "%s %s\n", p.enter.Sprint("+ enter"), t.ID)
		case OpExit:
			fmt.Fprintf(p.out, "%s %s\n", p.exit.Sprint("- exit "), t.ID)
		case OpMove:
			fmt.Fprintf(p.out, "%s %s -> #%d\n", p.faint.Sprint("~ move "), t.ID, t.Index+1)
		}
	}
}

// Cards prints the current view, one card per entry.
func (p *Printer) Cards(cards []*Card) {
	if len(cards) == 0 {
		fmt.Fprintln(p.out, "No entries in this view.")
		return
	}
	for i, c := range cards {
		star := " "
		if c.Entry.Featured {
			star = p.featured.Sprint("*")
		}
		fmt.Fprintf(p.out, "%2d. %s %s  %s\n", i+1, star,
			p.title.Sprint(c.Entry.Title), p.faint.Sprint(c.ID))
		if c.Entry.Description != "" {
			fmt.Fprintf(p.out, "      %s\n", c.Entry.Description)
		}
		if len(c.Entry.Tags) > 0 {
			fmt.Fprintf(p.out, "      %s\n", p.tag.Sprint(strings.Join(c.Entry.Tags, ", ")))
		}
	}
}
