package health

import (
	"slices"
	"testing"
	"time"
)

func TestGroupByDay(t *testing.T) {
	records := []Record{
		{Date: Date{2024, time.March, 15}, Steps: 5000, Kcals: 250, Km: 4},
		{Date: Date{2024, time.March, 1}, Steps: 10000, Kcals: 500, Km: 8},
		{Date: Date{2024, time.March, 8}},
	}

	series := Group(records, GranularityDay)

	if series.Len() != len(records) {
		t.Fatalf("expected %d buckets, got %d", len(records), series.Len())
	}
	for _, values := range [][]float64{series.Steps, series.Kcals, series.Km} {
		if len(values) != series.Len() {
			t.Fatalf("metric slices must be co-indexed with labels")
		}
	}

	// Buckets sorted ascending by date; values pass through unaveraged.
	wantLabels := []string{"Mar 1", "Mar 8", "Mar 15"}
	if !slices.Equal(series.Labels, wantLabels) {
		t.Errorf("Labels = %v, want %v", series.Labels, wantLabels)
	}
	wantSteps := []float64{10000, 0, 5000}
	if !slices.Equal(series.Steps, wantSteps) {
		t.Errorf("Steps = %v, want %v", series.Steps, wantSteps)
	}
}

func TestGroupByMonthIgnoresZeroDays(t *testing.T) {
	// The zero record must not drag any metric's average down.
	records := []Record{
		{Date: Date{2024, time.March, 1}, Steps: 10000, Kcals: 500, Km: 8},
		{Date: Date{2024, time.March, 8}},
		{Date: Date{2024, time.March, 15}, Steps: 5000, Kcals: 250, Km: 4},
	}

	series := Group(records, GranularityMonth)

	if series.Len() != 1 {
		t.Fatalf("expected a single bucket, got %d", series.Len())
	}
	if series.Labels[0] != "Mar 24" {
		t.Errorf("label = %q, want %q", series.Labels[0], "Mar 24")
	}
	if series.Steps[0] != 7500 {
		t.Errorf("steps = %v, want 7500", series.Steps[0])
	}
	if series.Kcals[0] != 375 {
		t.Errorf("kcals = %v, want 375", series.Kcals[0])
	}
	if series.Km[0] != 6 {
		t.Errorf("km = %v, want 6", series.Km[0])
	}
}

func TestGroupPerMetricIndependence(t *testing.T) {
	// A day with steps but no recorded distance still contributes to the
	// steps average while staying out of the distance average.
	records := []Record{
		{Date: Date{2024, time.March, 1}, Steps: 6000, Km: 2},
		{Date: Date{2024, time.March, 2}, Steps: 4000},
	}

	series := Group(records, GranularityMonth)

	if series.Steps[0] != 5000 {
		t.Errorf("steps = %v, want 5000", series.Steps[0])
	}
	if series.Km[0] != 2 {
		t.Errorf("km = %v, want 2 (single contributor)", series.Km[0])
	}
	if series.Kcals[0] != 0 {
		t.Errorf("kcals = %v, want 0 (no contributors)", series.Kcals[0])
	}
}

func TestGroupByWeek(t *testing.T) {
	// 2024-03-04 is a Monday; 2024-03-10 (Sunday) belongs to that week,
	// 2024-03-11 starts the next one.
	records := []Record{
		{Date: Date{2024, time.March, 11}, Steps: 9000},
		{Date: Date{2024, time.March, 4}, Steps: 1000},
		{Date: Date{2024, time.March, 10}, Steps: 3000},
	}

	series := Group(records, GranularityWeek)

	if series.Len() != 2 {
		t.Fatalf("expected 2 buckets, got %d", series.Len())
	}
	wantLabels := []string{"Week of Mar 4", "Week of Mar 11"}
	if !slices.Equal(series.Labels, wantLabels) {
		t.Errorf("Labels = %v, want %v", series.Labels, wantLabels)
	}
	if series.Steps[0] != 2000 {
		t.Errorf("first week steps = %v, want 2000", series.Steps[0])
	}
	if series.Steps[1] != 9000 {
		t.Errorf("second week steps = %v, want 9000", series.Steps[1])
	}
}

func TestGroupBucketsSortAcrossYears(t *testing.T) {
	records := []Record{
		{Date: Date{2024, time.January, 10}, Steps: 2000},
		{Date: Date{2023, time.December, 20}, Steps: 1000},
	}

	series := Group(records, GranularityMonth)

	wantLabels := []string{"Dec 23", "Jan 24"}
	if !slices.Equal(series.Labels, wantLabels) {
		t.Errorf("Labels = %v, want %v", series.Labels, wantLabels)
	}
}

func TestGroupEmptyInput(t *testing.T) {
	for _, granularity := range []Granularity{GranularityDay, GranularityWeek, GranularityMonth} {
		series := Group(nil, granularity)
		if series.Len() != 0 || len(series.Steps) != 0 || len(series.Kcals) != 0 || len(series.Km) != 0 {
			t.Errorf("%s: empty input should yield an empty series", granularity)
		}
	}
}

func TestGroupDoesNotMutateInput(t *testing.T) {
	records := []Record{
		{Date: Date{2024, time.March, 15}, Steps: 5000},
		{Date: Date{2024, time.March, 1}, Steps: 10000},
	}
	snapshot := slices.Clone(records)

	_ = Group(records, GranularityDay)
	if !slices.Equal(records, snapshot) {
		t.Error("Group mutated its input")
	}
}

func TestSeriesValues(t *testing.T) {
	series := Series{Steps: []float64{1}, Kcals: []float64{2}, Km: []float64{3}}

	if got := series.Values(MetricSteps); got[0] != 1 {
		t.Errorf("Values(steps) = %v", got)
	}
	if got := series.Values(MetricKcals); got[0] != 2 {
		t.Errorf("Values(kcals) = %v", got)
	}
	if got := series.Values(MetricKm); got[0] != 3 {
		t.Errorf("Values(km) = %v", got)
	}
	if got := series.Values(Metric("weight")); got != nil {
		t.Errorf("Values(unknown) = %v, want nil", got)
	}
}
