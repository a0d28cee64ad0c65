package board

import (
	"strconv"

	"github.com/guregu/null/v5"
)

// Record is one row of the table. Missing cells are held as invalid
// null values and only become sentinels through Display.
type Record struct {
	index  map[string]int
	cells  []null.String
	score  null.Float
	period string
}

// Value returns the cell of column. It is invalid when the cell is
// missing or the column does not exist.
func (r Record) Value(column string) null.String {
	if column == ColPeriod {
		return null.StringFrom(r.period)
	}
	i, ok := r.index[column]
	if !ok || i >= len(r.cells) {
		return null.String{}
	}
	return r.cells[i]
}

// Missing reports whether column has no value in this record.
func (r Record) Missing(column string) bool {
	return !r.Value(column).Valid
}

// Display returns the cell of column as shown to users, substituting the
// column group's sentinel for a missing value.
func (r Record) Display(column string) string {
	if GroupOf(column) == GroupScore {
		return r.displayScore(column)
	}
	v := r.Value(column)
	if !v.Valid {
		return Sentinel(column)
	}
	return v.String
}

func (r Record) displayScore(column string) string {
	if r.score.Valid {
		return strconv.FormatFloat(r.score.Float64, 'f', -1, 64)
	}
	// Non-numeric scores are carried as text.
	if v := r.Value(column); v.Valid {
		return v.String
	}
	return Sentinel(column)
}

// Score returns the parsed satisfaction score.
func (r Record) Score() null.Float {
	return r.score
}

// Period returns the derived "<MÊS> - <ANO>" key.
func (r Record) Period() string {
	return r.period
}
