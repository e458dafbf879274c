package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mmynk/ordena/internal/listview"
)

var _ listview.Observer = (*rowPrinter)(nil)

// rowPrinter is a listview.Observer that echoes each change to the terminal.
type rowPrinter struct {
	w    io.Writer
	rows func() []listview.Row
}

func (p *rowPrinter) ItemInserted(pos int) { p.line("+", pos) }
func (p *rowPrinter) ItemChanged(pos int)  { p.line("~", pos) }

func (p *rowPrinter) ItemRemoved(pos int) {
	fmt.Fprintf(p.w, "- [%d] removed\n", pos)
}

func (p *rowPrinter) DataSetChanged() {
	rows := p.rows()
	if len(rows) == 0 {
		fmt.Fprintln(p.w, "(empty)")
		return
	}
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	for i, row := range rows {
		fmt.Fprintf(tw, "[%d]\t%s\n", i, formatRow(row))
	}
	tw.Flush()
}

func (p *rowPrinter) line(mark string, pos int) {
	rows := p.rows()
	if pos < 0 || pos >= len(rows) {
		return
	}
	fmt.Fprintf(p.w, "%s [%d] %s\n", mark, pos, formatRow(rows[pos]))
}

func formatRow(row listview.Row) string {
	s := row.Title
	if row.Subtitle != "" {
		s += "\t" + row.Subtitle
	}
	if row.Detail != "" {
		s += "\t" + row.Detail
	}
	if row.Image.IsFile() {
		s += "\t[photo]"
	}
	if row.Alert {
		s += "\tLOW"
	}
	return s
}
