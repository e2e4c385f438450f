package health

import (
	"slices"
	"strings"
	"time"
)

// Series holds one grouped metric series per metric.
// Use parallel slices to match chart data sets without extra struct mapping.
type Series struct {
	Labels []string
	Times  []time.Time // bucket key as a time value, for chart plotting
	Steps  []float64
	Kcals  []float64
	Km     []float64
}

// Len returns the number of buckets in the series.
func (s Series) Len() int {
	return len(s.Labels)
}

// Values returns the slice for a single metric.
func (s Series) Values(metric Metric) []float64 {
	switch metric {
	case MetricSteps:
		return s.Steps
	case MetricKcals:
		return s.Kcals
	case MetricKm:
		return s.Km
	default:
		return nil
	}
}

// bucket accumulates per-metric running totals and contributing-record
// counts for one aggregation group.
type bucket struct {
	label  string
	start  Date
	totals [metricCount]float64
	counts [metricCount]int
}

// add records a sample for one metric. Non-positive values are skipped:
// a zero reading means the metric was not captured that day, and counting
// it would drag the average down.
func (b *bucket) add(metric int, value float64) {
	if value <= 0 {
		return
	}
	b.totals[metric] += value
	b.counts[metric]++
}

// average returns the weighted average for one metric, or 0 when no record
// contributed to it.
func (b *bucket) average(metric int) float64 {
	if b.counts[metric] == 0 {
		return 0
	}
	return b.totals[metric] / float64(b.counts[metric])
}

// Group partitions records into buckets at the requested granularity and
// returns per-bucket metric averages in ascending bucket order. At day
// granularity every record is its own bucket and values pass through
// unaveraged. Empty input yields an empty series.
func Group(records []Record, granularity Granularity) Series {
	if granularity == GranularityDay {
		return groupByDay(records)
	}
	return groupMerged(records, granularity)
}

func groupByDay(records []Record) Series {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		return a.Date.Compare(b.Date)
	})

	series := makeSeries(len(sorted))
	for _, record := range sorted {
		series.Labels = append(series.Labels, record.Date.DayLabel())
		series.Times = append(series.Times, record.Date.Time())
		series.Steps = append(series.Steps, float64(record.Steps))
		series.Kcals = append(series.Kcals, record.Kcals)
		series.Km = append(series.Km, record.Km)
	}
	return series
}

func groupMerged(records []Record, granularity Granularity) Series {
	buckets := make(map[string]*bucket)
	for _, record := range records {
		key, label, start := bucketKey(record.Date, granularity)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{label: label, start: start}
			buckets[key] = b
		}
		b.add(0, float64(record.Steps))
		b.add(1, record.Kcals)
		b.add(2, record.Km)
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	// Bucket keys are zero-padded, so lexicographic order is chronological.
	slices.SortFunc(keys, strings.Compare)

	series := makeSeries(len(keys))
	for _, key := range keys {
		b := buckets[key]
		series.Labels = append(series.Labels, b.label)
		series.Times = append(series.Times, b.start.Time())
		series.Steps = append(series.Steps, b.average(0))
		series.Kcals = append(series.Kcals, b.average(1))
		series.Km = append(series.Km, b.average(2))
	}
	return series
}

func bucketKey(date Date, granularity Granularity) (key, label string, start Date) {
	if granularity == GranularityWeek {
		start = date.WeekStart()
		return start.Key(), date.WeekLabel(), start
	}
	start = Date{Year: date.Year, Month: date.Month, Day: 1}
	return date.MonthKey(), date.MonthLabel(), start
}

func makeSeries(capacity int) Series {
	return Series{
		Labels: make([]string, 0, capacity),
		Times:  make([]time.Time, 0, capacity),
		Steps:  make([]float64, 0, capacity),
		Kcals:  make([]float64, 0, capacity),
		Km:     make([]float64, 0, capacity),
	}
}
