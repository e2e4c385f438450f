package health

import (
	"slices"
	"testing"
	"time"
)

func sortFixture() []Record {
	return []Record{
		{Date: Date{2024, time.March, 5}, RawDate: "2024-03-05", Steps: 5000, Kcals: 300, Km: 4},
		{Date: Date{2024, time.March, 1}, RawDate: "2024-03-01", Steps: 10000, Kcals: 500, Km: 8},
		{Date: Date{2024, time.March, 3}, RawDate: "2024-03-03", Steps: 5000, Kcals: 100, Km: 2},
	}
}

func TestSortRecordsByDate(t *testing.T) {
	asc := SortRecords(sortFixture(), ColumnDate, Asc)
	for i := 1; i < len(asc); i++ {
		if asc[i].Date.Before(asc[i-1].Date) {
			t.Fatalf("asc sort out of order at %d: %s < %s", i, asc[i].Date.Key(), asc[i-1].Date.Key())
		}
	}

	desc := SortRecords(sortFixture(), ColumnDate, Desc)
	if desc[0].Date != (Date{2024, time.March, 5}) {
		t.Errorf("desc sort should start with the most recent day, got %s", desc[0].Date.Key())
	}
}

func TestSortRecordsByNumericColumns(t *testing.T) {
	tests := map[string]struct {
		column Column
	}{
		"steps": {column: ColumnSteps},
		"kcals": {column: ColumnKcals},
		"km":    {column: ColumnKm},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			metric := Metric(tc.column)
			desc := SortRecords(sortFixture(), tc.column, Desc)
			for i := 1; i < len(desc); i++ {
				if desc[i].Value(metric) > desc[i-1].Value(metric) {
					t.Fatalf("desc sort increasing at %d", i)
				}
			}
		})
	}
}

func TestSortRecordsStableOnTies(t *testing.T) {
	// Two records tie on steps; their input order must be preserved.
	sorted := SortRecords(sortFixture(), ColumnSteps, Asc)
	if sorted[0].RawDate != "2024-03-05" || sorted[1].RawDate != "2024-03-03" {
		t.Errorf("tie broken unstably: %s, %s", sorted[0].RawDate, sorted[1].RawDate)
	}
}

func TestSortRecordsUnknownColumn(t *testing.T) {
	records := sortFixture()
	sorted := SortRecords(records, Column("weight"), Desc)
	if !slices.Equal(sorted, records) {
		t.Error("unknown column should leave order untouched")
	}
}

func TestSortRecordsDoesNotMutate(t *testing.T) {
	records := sortFixture()
	snapshot := slices.Clone(records)

	_ = SortRecords(records, ColumnSteps, Desc)
	if !slices.Equal(records, snapshot) {
		t.Error("SortRecords mutated its input")
	}
}

func TestSortSpecToggle(t *testing.T) {
	tests := map[string]struct {
		spec   SortSpec
		column Column
		want   SortSpec
	}{
		"same column flips desc to asc": {
			spec:   SortSpec{Column: ColumnSteps, Direction: Desc},
			column: ColumnSteps,
			want:   SortSpec{Column: ColumnSteps, Direction: Asc},
		},
		"same column flips asc to desc": {
			spec:   SortSpec{Column: ColumnSteps, Direction: Asc},
			column: ColumnSteps,
			want:   SortSpec{Column: ColumnSteps, Direction: Desc},
		},
		"new column resets to desc": {
			spec:   SortSpec{Column: ColumnSteps, Direction: Asc},
			column: ColumnKm,
			want:   SortSpec{Column: ColumnKm, Direction: Desc},
		},
		"date gets the same desc default": {
			spec:   SortSpec{Column: ColumnSteps, Direction: Asc},
			column: ColumnDate,
			want:   SortSpec{Column: ColumnDate, Direction: Desc},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.spec.Toggle(tc.column); got != tc.want {
				t.Errorf("Toggle(%s) = %+v, want %+v", tc.column, got, tc.want)
			}
		})
	}
}
