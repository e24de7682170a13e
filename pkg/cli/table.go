package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// Table collects rows and prints them column-aligned under a header and a
// dash divider. Nothing is printed for a table without rows.
type Table struct {
	out     io.Writer
	headers []string
	rows    [][]string
}

// NewTable creates a table that prints to stdout.
func NewTable(headers ...string) *Table {
	return NewTableTo(os.Stdout, headers...)
}

// NewTableTo creates a table that prints to out.
func NewTableTo(out io.Writer, headers ...string) *Table {
	return &Table{out: out, headers: headers}
}

// Row adds a row. Missing trailing cells print as "-".
func (t *Table) Row(values ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(values) && values[i] != "" {
			row[i] = values[i]
		} else {
			row[i] = "-"
		}
	}
	t.rows = append(t.rows, row)
}

// Len returns the number of rows added so far.
func (t *Table) Len() int { return len(t.rows) }

// Flush prints the table and resets it.
func (t *Table) Flush() {
	if len(t.rows) == 0 {
		return
	}
	w := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
	divider := make([]string, len(t.headers))
	for i, h := range t.headers {
		divider[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, strings.Join(t.headers, "\t"))
	fmt.Fprintln(w, strings.Join(divider, "\t"))
	for _, row := range t.rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
	t.rows = nil
}
