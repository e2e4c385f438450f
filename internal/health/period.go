package health

// Period is a trailing time window applied to records before aggregation.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

// PeriodOrder lists periods in UI cycling order.
var PeriodOrder = []Period{PeriodWeek, PeriodMonth, PeriodYear, PeriodAll}

// Days returns the window length in calendar days, or 0 for the unbounded
// period.
func (p Period) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	case PeriodYear:
		return 365
	default:
		return 0
	}
}

// FilterByPeriod narrows records to the trailing window ending today. The
// cutoff is inclusive; input order is preserved and the input slice is
// never modified. PeriodAll returns the input unchanged.
func FilterByPeriod(records []Record, period Period, today Date) []Record {
	days := period.Days()
	if days <= 0 {
		return records
	}

	cutoff := today.AddDays(-days)
	filtered := make([]Record, 0, len(records))
	for _, record := range records {
		if !record.Date.Before(cutoff) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// Granularity is the bucket size used when grouping records for a chart.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// Granularities returns the bucket sizes that make sense for the period:
// short windows only offer fine-grained buckets.
func (p Period) Granularities() []Granularity {
	switch p {
	case PeriodWeek:
		return []Granularity{GranularityDay}
	case PeriodMonth:
		return []Granularity{GranularityDay, GranularityWeek}
	default:
		return []Granularity{GranularityDay, GranularityWeek, GranularityMonth}
	}
}

// Allows reports whether the granularity is offered for the period.
func (p Period) Allows(granularity Granularity) bool {
	for _, g := range p.Granularities() {
		if g == granularity {
			return true
		}
	}
	return false
}

// ResolveGranularity downgrades the active granularity when the period no
// longer permits it: week→day, month→week, otherwise month.
func ResolveGranularity(period Period, granularity Granularity) Granularity {
	if period.Allows(granularity) {
		return granularity
	}
	switch period {
	case PeriodWeek:
		return GranularityDay
	case PeriodMonth:
		return GranularityWeek
	default:
		return GranularityMonth
	}
}
