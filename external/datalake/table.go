package datalake

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Table is a small column-oriented table: ordered column names over columns
// of equal length. It is the normalized form of every data lake response.
type Table struct {
	columns []string
	data    map[string][]interface{}
	length  int
}

func NewTable() *Table {
	return &Table{
		data: map[string][]interface{}{},
	}
}

// Len is the number of rows.
func (t *Table) Len() int {
	return t.length
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.columns))
	copy(names, t.columns)
	return names
}

// Column returns the values of one column, or nil if it does not exist.
func (t *Table) Column(name string) []interface{} {
	return t.data[name]
}

// AppendRow adds one record. Columns not seen before are back-filled with
// nil for earlier rows; cells the record does not carry stay nil.
func (t *Table) AppendRow(row map[string]interface{}) {
	var added []string
	for name := range row {
		if _, ok := t.data[name]; !ok {
			added = append(added, name)
		}
	}
	sort.Strings(added)

	for _, name := range added {
		t.columns = append(t.columns, name)
		t.data[name] = make([]interface{}, t.length)
	}

	for _, name := range t.columns {
		t.data[name] = append(t.data[name], row[name])
	}
	t.length++
}

// AddColumn appends a whole column. Every column of a non-empty table must
// have the same length.
func (t *Table) AddColumn(name string, values []interface{}) error {
	if _, ok := t.data[name]; ok {
		return fmt.Errorf("column already exists: %s", name)
	}
	if len(t.columns) > 0 && len(values) != t.length {
		return fmt.Errorf("column %s has %d values, table has %d rows", name, len(values), t.length)
	}

	t.columns = append(t.columns, name)
	t.data[name] = values
	t.length = len(values)
	return nil
}

// Drop removes columns by name; unknown names are ignored.
func (t *Table) Drop(names ...string) {
	for _, name := range names {
		if _, ok := t.data[name]; !ok {
			continue
		}
		delete(t.data, name)
		for i, column := range t.columns {
			if column == name {
				t.columns = append(t.columns[:i], t.columns[i+1:]...)
				break
			}
		}
	}
}

// DropPrefix removes every column whose name starts with prefix.
func (t *Table) DropPrefix(prefix string) {
	var doomed []string
	for _, name := range t.columns {
		if strings.HasPrefix(name, prefix) {
			doomed = append(doomed, name)
		}
	}
	t.Drop(doomed...)
}

// WriteCSV writes the table with a header row. Nil cells become empty
// fields.
func (t *Table) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(t.columns); nil != err {
		return err
	}

	record := make([]string, len(t.columns))
	for row := 0; row < t.length; row++ {
		for i, name := range t.columns {
			value := t.data[name][row]
			if value == nil {
				record[i] = ""
				continue
			}
			record[i] = fmt.Sprint(value)
		}
		if err := writer.Write(record); nil != err {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
