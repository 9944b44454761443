package datalake_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/prognosis/external/datalake"
)

func TestTableAppendRowPadsColumns(t *testing.T) {
	table := datalake.NewTable()

	table.AppendRow(map[string]interface{}{"id": 1})
	table.AppendRow(map[string]interface{}{"id": 2, "name": "two"})
	table.AppendRow(map[string]interface{}{"name": "three"})

	assert.Equal(t, 3, table.Len(), "wrong row count")
	assert.Equal(t, []string{"id", "name"}, table.Columns(), "wrong columns")
	assert.Equal(t, []interface{}{1, 2, nil}, table.Column("id"), "missing cell must be nil")
	assert.Equal(t, []interface{}{nil, "two", "three"}, table.Column("name"), "new column must be back-filled")
}

func TestTableAddColumn(t *testing.T) {
	table := datalake.NewTable()

	assert.Nil(t, table.AddColumn("dates", []interface{}{"a", "b"}), "wrong AddColumn")
	assert.Nil(t, table.AddColumn("cases", []interface{}{1, 2}), "wrong AddColumn")
	assert.Equal(t, 2, table.Len(), "wrong row count")

	assert.NotNil(t, table.AddColumn("cases", []interface{}{3, 4}), "duplicate column must be rejected")
	assert.NotNil(t, table.AddColumn("short", []interface{}{1}), "ragged column must be rejected")
}

func TestTableDrop(t *testing.T) {
	table := datalake.NewTable()
	table.AppendRow(map[string]interface{}{
		"id":       1,
		"meta.a":   "x",
		"meta.b":   "y",
		"version":  7,
		"metatype": "keep", // "meta" without the dot must survive
	})

	table.DropPrefix("meta.")
	table.Drop("version", "not-there")

	assert.Equal(t, []string{"id", "metatype"}, table.Columns(), "wrong surviving columns")
}

func TestTableWriteCSV(t *testing.T) {
	table := datalake.NewTable()
	table.AppendRow(map[string]interface{}{"id": 1, "name": "one"})
	table.AppendRow(map[string]interface{}{"id": 2})

	var buf bytes.Buffer
	assert.Nil(t, table.WriteCSV(&buf), "wrong WriteCSV")
	assert.Equal(t, "id,name\n1,one\n2,\n", buf.String(), "wrong csv output")
}
