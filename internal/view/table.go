// Package view holds the two list abstractions every management page is
// built from: a generic column-mapped table and an approve/reject list.
// Both consume uniform rows and a label-to-property mapping, so one
// implementation serves every entity shape without per-entity branching.
package view

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Placeholder rendered for missing or unresolvable values.
const Placeholder = "—"

// Row is one uniform record, as decoded from upstream JSON.
type Row = map[string]interface{}

// Table renders rows through a declarative column → property-path mapping.
// Dotted paths traverse nested objects ("salesman.name").
type Table struct {
	Title       string
	Columns     []string
	PropertyMap map[string]string
}

// PropertyName resolves a column label to its record property. An explicit
// mapping wins; otherwise the label is lower-cased with spaces collapsed
// to underscores.
func (t *Table) PropertyName(column string) string {
	if t.PropertyMap != nil {
		if prop, ok := t.PropertyMap[column]; ok {
			return prop
		}
	}
	return strings.ReplaceAll(strings.ToLower(column), " ", "_")
}

// Cell resolves one column against one row. Any missing segment along a
// dotted path yields the placeholder; it never panics.
func (t *Table) Cell(row Row, column string) string {
	value := lookup(row, t.PropertyName(column))
	return formatValue(value)
}

// Render returns the cell matrix, one slice per row in column order.
func (t *Table) Render(rows []Row) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(t.Columns))
		for _, col := range t.Columns {
			cells = append(cells, t.Cell(row, col))
		}
		out = append(out, cells)
	}
	return out
}

// CSV exports header plus rows as comma-joined lines. Values are written
// as-is, no quoting of embedded delimiters; LF separators, no trailing
// newline.
func (t *Table) CSV(rows []Row) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(t.Columns, ","))
	for _, cells := range t.Render(rows) {
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n")
}

// lookup walks a dotted path through nested maps. Returns nil as soon as
// a segment is missing or the current value is not an object.
func lookup(row Row, path string) interface{} {
	var current interface{} = row
	for _, segment := range strings.Split(path, ".") {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current, ok = obj[segment]
		if !ok {
			return nil
		}
	}
	return current
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return Placeholder
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		// JSON numbers decode as float64; render 10 as "10", not "10.000000".
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case map[string]interface{}, []interface{}:
		data, err := json.Marshal(v)
		if err != nil {
			return Placeholder
		}
		return string(data)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return Placeholder
		}
		return strings.Trim(string(data), `"`)
	}
}

// RowsFrom converts any slice of uniform records into generic rows via a
// JSON round-trip, so the table sees exactly the wire shape.
func RowsFrom(records interface{}) ([]Row, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}
	var rows []Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
