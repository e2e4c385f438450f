package health

// Metric identifies one of the tracked activity measurements.
type Metric string

const (
	MetricSteps Metric = "steps"
	MetricKcals Metric = "kcals"
	MetricKm    Metric = "km"
)

const metricCount = 3

// MetricOrder lists metrics in UI cycling order.
var MetricOrder = []Metric{MetricSteps, MetricKcals, MetricKm}

// Title returns the display name for the metric.
func (m Metric) Title() string {
	switch m {
	case MetricSteps:
		return "Steps"
	case MetricKcals:
		return "Kcals"
	case MetricKm:
		return "Km"
	default:
		return string(m)
	}
}

// Value returns the record's reading for the metric.
func (r Record) Value(metric Metric) float64 {
	switch metric {
	case MetricSteps:
		return float64(r.Steps)
	case MetricKcals:
		return r.Kcals
	case MetricKm:
		return r.Km
	default:
		return 0
	}
}

// Summary holds aggregate statistics for one metric.
type Summary struct {
	Avg   float64
	Total float64
	Min   float64
	Max   float64
}

// Stats computes avg/total/min/max for a metric over contributing records
// only (value > 0), matching the grouping engine's treatment of zero as
// "no data". No contributors yields an all-zero summary, never an error.
func Stats(records []Record, metric Metric) Summary {
	summary := Summary{}
	count := 0

	for _, record := range records {
		value := record.Value(metric)
		if value <= 0 {
			continue
		}
		summary.Total += value
		if count == 0 || value < summary.Min {
			summary.Min = value
		}
		if value > summary.Max {
			summary.Max = value
		}
		count++
	}

	if count > 0 {
		summary.Avg = summary.Total / float64(count)
	}
	return summary
}

// TodayRecord returns the record for the current local date, or a
// zero-valued record for that date when none exists.
func TodayRecord(records []Record, today Date) Record {
	for _, record := range records {
		if record.Date.Compare(today) == 0 {
			return record
		}
	}
	return Record{Date: today}
}

// Average computes the mean over the positive entries of an already
// derived series, for the dashed average line drawn next to a chart.
func Average(values []float64) float64 {
	total := 0.0
	count := 0
	for _, value := range values {
		if value <= 0 {
			continue
		}
		total += value
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
