package health

import (
	"cmp"
	"slices"
	"strings"
)

// Column identifies a sortable record attribute.
type Column string

const (
	ColumnDate  Column = "date"
	ColumnSteps Column = "steps"
	ColumnKcals Column = "kcals"
	ColumnKm    Column = "km"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// sign returns the comparison multiplier for the direction.
func (d Direction) sign() int {
	if d == Asc {
		return 1
	}
	return -1
}

// SortSpec is the active sort state for the records table.
type SortSpec struct {
	Column    Column
	Direction Direction
}

// Toggle returns the sort state after selecting a column: re-selecting the active
// column flips direction, any new column starts descending. The descending
// default applies to the date column too, so a fresh date sort shows the
// most recent day first.
func (s SortSpec) Toggle(column Column) SortSpec {
	if column == s.Column {
		if s.Direction == Desc {
			return SortSpec{Column: column, Direction: Asc}
		}
		return SortSpec{Column: column, Direction: Desc}
	}
	return SortSpec{Column: column, Direction: Desc}
}

// SortRecords orders records by the given column and direction. The sort is
// stable and operates on a copy; the input is never mutated. An unknown
// column leaves the order untouched rather than failing.
func SortRecords(records []Record, column Column, direction Direction) []Record {
	sorted := slices.Clone(records)
	sign := direction.sign()

	switch column {
	case ColumnDate:
		slices.SortStableFunc(sorted, func(a, b Record) int {
			return sign * strings.Compare(a.Date.Key(), b.Date.Key())
		})
	case ColumnSteps, ColumnKcals, ColumnKm:
		metric := Metric(column)
		slices.SortStableFunc(sorted, func(a, b Record) int {
			return sign * cmp.Compare(a.Value(metric), b.Value(metric))
		})
	}

	return sorted
}
