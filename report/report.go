// Package report writes Stats out: fixed-width lines for people and a CSV
// table for tools.
package report

import (
	"encoding/csv"
	"fmt"
	"hashbench/errutil"
	"hashbench/harness"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Printer writes one report line per Stat.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Write(s harness.Stat) error {
	_, err := fmt.Fprintln(p.w, s.String())
	return errors.Wrap(err, "write report line")
}

// Table writes the CSV form of Stats. The header row is written when the
// table is created, before any data row.
type Table struct {
	wr   *csv.Writer
	rows int
}

func NewTable(w io.Writer) (*Table, error) {
	t := &Table{wr: csv.NewWriter(w)}
	if err := t.wr.Write(harness.RecordHeader); err != nil {
		return nil, errors.Wrap(err, "write csv header")
	}
	return t, nil
}

func (t *Table) Write(s harness.Stat) error {
	if err := t.wr.Write(s.Record()); err != nil {
		return errors.Wrapf(err, "write csv row for %s/%d", s.Name, s.Size)
	}
	t.rows++
	return nil
}

// Rows is the number of data rows written, header excluded.
func (t *Table) Rows() int {
	return t.rows
}

func (t *Table) Flush() error {
	t.wr.Flush()
	return errors.Wrap(t.wr.Error(), "flush csv")
}

// FileTable is a Table backed by a file it owns.
type FileTable struct {
	*Table
	f *os.File
}

// CreateTable creates (or truncates) path and writes the header.
func CreateTable(path string) (*FileTable, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", path)
	}
	t, err := NewTable(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &FileTable{Table: t, f: f}, nil
}

func (t *FileTable) Close() error {
	return errutil.First(t.Flush(), errors.Wrap(t.f.Close(), "close csv"))
}
