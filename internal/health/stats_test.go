package health

import (
	"testing"
	"time"
)

func TestStats(t *testing.T) {
	records := []Record{
		{Date: Date{2024, time.March, 1}, Steps: 10000, Kcals: 500, Km: 8},
		{Date: Date{2024, time.March, 2}},
		{Date: Date{2024, time.March, 3}, Steps: 5000, Kcals: 250, Km: 4},
	}

	tests := map[string]struct {
		metric Metric
		want   Summary
	}{
		"steps": {metric: MetricSteps, want: Summary{Avg: 7500, Total: 15000, Min: 5000, Max: 10000}},
		"kcals": {metric: MetricKcals, want: Summary{Avg: 375, Total: 750, Min: 250, Max: 500}},
		"km":    {metric: MetricKm, want: Summary{Avg: 6, Total: 12, Min: 4, Max: 8}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Stats(records, tc.metric); got != tc.want {
				t.Errorf("Stats(%s) = %+v, want %+v", tc.metric, got, tc.want)
			}
		})
	}
}

func TestStatsNoContributors(t *testing.T) {
	tests := map[string][]Record{
		"empty input":       nil,
		"only zero records": {{Date: Date{2024, time.March, 1}}, {Date: Date{2024, time.March, 2}}},
	}

	for name, records := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Stats(records, MetricSteps); got != (Summary{}) {
				t.Errorf("Stats = %+v, want all zeros", got)
			}
		})
	}
}

func TestStatsSingleContributor(t *testing.T) {
	records := []Record{{Date: Date{2024, time.March, 1}, Km: 5.5}}

	want := Summary{Avg: 5.5, Total: 5.5, Min: 5.5, Max: 5.5}
	if got := Stats(records, MetricKm); got != want {
		t.Errorf("Stats = %+v, want %+v", got, want)
	}
}

func TestTodayRecord(t *testing.T) {
	today := Date{2024, time.March, 5}
	records := []Record{
		{Date: Date{2024, time.March, 4}, Steps: 2000},
		{Date: today, Steps: 7000, Kcals: 350, Km: 5},
	}

	got := TodayRecord(records, today)
	if got.Steps != 7000 || got.Kcals != 350 || got.Km != 5 {
		t.Errorf("TodayRecord = %+v, want today's record", got)
	}

	missing := TodayRecord(records, Date{2024, time.March, 6})
	if missing.Steps != 0 || missing.Kcals != 0 || missing.Km != 0 {
		t.Errorf("missing today should yield zero metrics, got %+v", missing)
	}
	if missing.Date != (Date{2024, time.March, 6}) {
		t.Errorf("missing today should keep the requested date, got %s", missing.Date.Key())
	}
}

func TestAverage(t *testing.T) {
	tests := map[string]struct {
		values []float64
		want   float64
	}{
		"plain mean":          {values: []float64{2, 4, 6}, want: 4},
		"ignores zeros":       {values: []float64{2, 0, 4}, want: 3},
		"ignores negatives":   {values: []float64{2, -10, 4}, want: 3},
		"empty":               {values: nil, want: 0},
		"all zeros":           {values: []float64{0, 0}, want: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Average(tc.values); got != tc.want {
				t.Errorf("Average(%v) = %v, want %v", tc.values, got, tc.want)
			}
		})
	}
}
