// Package tabular dumps and reads whitespace-delimited, column-major text
// tables: a tagged header line naming the columns, then one row of values
// per line.
package tabular

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rmclay/meshkit/orderedset"
)

// Table is a set of named float64 columns that keeps the order in which the
// columns were first added.
type Table struct {
	names *orderedset.Set[string]
	cols  map[string][]float64
}

func New() *Table {
	return &Table{
		names: orderedset.New[string](),
		cols:  make(map[string][]float64),
	}
}

// Add sets the data of the named column. Re-adding a column replaces its
// data but keeps its original position.
func (t *Table) Add(name string, col []float64) {
	t.names.Add(name)
	t.cols[name] = col
}

func (t *Table) Len() int {
	return t.names.Len()
}

// Names returns the column names in first-insertion order.
func (t *Table) Names() []string {
	names := make([]string, 0, t.names.Len())
	for name := range t.names.Values() {
		names = append(names, name)
	}
	return names
}

// Column returns the data of the named column, or nil if absent.
func (t *Table) Column(name string) []float64 {
	return t.cols[name]
}

// Dump writes t with a "#" header tag.
func (t *Table) Dump(w io.Writer) error {
	return t.dump(w, "#")
}

// DatDump writes t with a "keys:" header tag.
func (t *Table) DatDump(w io.Writer) error {
	return t.dump(w, "keys:")
}

func (t *Table) dump(w io.Writer, htag string) error {
	rows, err := t.rows()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(htag)
	bw.WriteByte(' ')
	for name := range t.names.Values() {
		bw.WriteString(name)
		bw.WriteString("\t ")
	}
	bw.WriteByte('\n')

	for i := range rows {
		for name := range t.names.Values() {
			bw.WriteString(strconv.FormatFloat(t.cols[name][i], 'g', -1, 64))
			bw.WriteString("\t ")
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// rows returns the common column length, erroring on ragged columns.
func (t *Table) rows() (int, error) {
	rows := -1
	for name := range t.names.Values() {
		n := len(t.cols[name])
		if rows == -1 {
			rows = n
		} else if n != rows {
			return 0, fmt.Errorf("tabular: column %q has %d rows, want %d", name, n, rows)
		}
	}
	return max(rows, 0), nil
}

// Read parses a "#"-tagged dump back into a Table. Every cell is parsed as
// a float64. A row with more cells than there are columns is an error.
func Read(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("tabular: %w", err)
		}
		return nil, fmt.Errorf("tabular: missing header line")
	}
	names := strings.Fields(strings.TrimPrefix(sc.Text(), "#"))

	cols := make([][]float64, len(names))
	lineNo := 1
	for sc.Scan() {
		lineNo++
		for i, cell := range strings.Fields(sc.Text()) {
			if i >= len(names) {
				return nil, fmt.Errorf("tabular: line %d: more cells than columns", lineNo)
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("tabular: line %d: bad value %q", lineNo, cell)
			}
			cols[i] = append(cols[i], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tabular: %w", err)
	}

	t := New()
	for i, name := range names {
		t.Add(name, cols[i])
	}
	return t, nil
}

// Arg is a named value for DumpArgs.
type Arg struct {
	Name  string
	Value any
}

// DumpArgs writes one "name value" line per argument, names left-aligned to
// the longest name and values right-aligned to ten characters.
func DumpArgs(w io.Writer, args []Arg) error {
	width := 0
	for _, a := range args {
		width = max(width, len(a.Name))
	}
	bw := bufio.NewWriter(w)
	for _, a := range args {
		fmt.Fprintf(bw, "%-*s %10v\n", width, a.Name, a.Value)
	}
	return bw.Flush()
}
