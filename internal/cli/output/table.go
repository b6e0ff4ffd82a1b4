// Package output renders dbfcp results as tables or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Table is a list of rows under fixed headers. Each row also carries a
// keyed record for JSON output.
type Table struct {
	headers []string
	keys    []string
	rows    [][]string
}

// NewTable creates a table. keys are the JSON field names of the columns,
// in header order.
func NewTable(headers, keys []string) *Table {
	if len(headers) != len(keys) {
		panic("output: headers and keys differ in length")
	}
	return &Table{headers: headers, keys: keys}
}

// AddRow appends a row; missing cells are left empty.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

func (t *Table) Len() int { return len(t.rows) }

// Render writes the table in format ("table" or "json").
func (t *Table) Render(w io.Writer, format string) error {
	switch format {
	case "json":
		return t.renderJSON(w)
	case "table", "":
		t.renderTable(w)
		return nil
	}
	return fmt.Errorf("unsupported output format %q", format)
}

func (t *Table) renderTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(t.headers)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	table.AppendBulk(t.rows)
	table.Render()
}

func (t *Table) renderJSON(w io.Writer) error {
	records := make([]map[string]string, 0, len(t.rows))
	for _, row := range t.rows {
		rec := make(map[string]string, len(t.keys))
		for i, key := range t.keys {
			rec[key] = row[i]
		}
		records = append(records, rec)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
