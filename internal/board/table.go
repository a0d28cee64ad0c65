package board

import (
	"slices"
	"time"
)

// Table is the normalized dataset. It is built once by Read or Load and is
// read-only afterwards, so it can be shared between goroutines.
type Table struct {
	source   string
	loadedAt time.Time
	columns  []string
	index    map[string]int
	records  []Record
	periods  []string
}

// Source returns the path or label the table was read from.
func (t *Table) Source() string {
	return t.source
}

// LoadedAt returns when the table was built.
func (t *Table) LoadedAt() time.Time {
	return t.loadedAt
}

// Columns returns the normalized labels in source order followed by ColPeriod.
func (t *Table) Columns() []string {
	return slices.Clone(t.columns)
}

// HasColumn reports whether the table carries column.
func (t *Table) HasColumn(column string) bool {
	if t == nil {
		return false
	}
	_, ok := t.index[column]
	return ok
}

// Require returns a *MissingColumnError for the first absent column.
func (t *Table) Require(columns ...string) error {
	for _, c := range columns {
		if !t.HasColumn(c) {
			return &MissingColumnError{Column: c}
		}
	}
	return nil
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Record returns the i-th record.
func (t *Table) Record(i int) Record {
	return t.records[i]
}

// Periods returns the distinct period keys in Portuguese collation order.
func (t *Table) Periods() []string {
	return slices.Clone(t.periods)
}

// DefaultPeriod is the period preselected in the dashboard: the first one.
func (t *Table) DefaultPeriod() string {
	if len(t.periods) == 0 {
		return ""
	}
	return t.periods[0]
}

// HasPeriod reports whether any record belongs to period.
func (t *Table) HasPeriod(period string) bool {
	return slices.Contains(t.periods, period)
}

// All returns a view over every record.
func (t *Table) All() View {
	rows := make([]int, len(t.records))
	for i := range rows {
		rows[i] = i
	}
	return View{table: t, rows: rows}
}

// Filter returns the records whose period equals period exactly. An
// unknown period yields an empty view.
func (t *Table) Filter(period string) View {
	v := View{table: t, period: period}
	for i, r := range t.records {
		if r.period == period {
			v.rows = append(v.rows, i)
		}
	}
	return v
}

// View is a filtered, ordered subset of a Table. It is recomputed per
// selection and never stored.
type View struct {
	table  *Table
	period string
	rows   []int
}

// Period returns the period the view was filtered on, empty for All.
func (v View) Period() string {
	return v.period
}

// Len returns the number of records in the view.
func (v View) Len() int {
	return len(v.rows)
}

// Columns returns the columns of the underlying table.
func (v View) Columns() []string {
	if v.table == nil {
		return nil
	}
	return v.table.Columns()
}

// HasColumn reports whether the underlying table carries column.
func (v View) HasColumn(column string) bool {
	return v.table.HasColumn(column)
}

// Records returns the records of the view in table order.
func (v View) Records() []Record {
	out := make([]Record, len(v.rows))
	for i, idx := range v.rows {
		out[i] = v.table.records[idx]
	}
	return out
}

// Rows returns the display strings of every record, one slice per record
// aligned with Columns.
func (v View) Rows() [][]string {
	columns := v.Columns()
	out := make([][]string, 0, len(v.rows))
	for _, r := range v.Records() {
		row := make([]string, len(columns))
		for j, c := range columns {
			row[j] = r.Display(c)
		}
		out = append(out, row)
	}
	return out
}
