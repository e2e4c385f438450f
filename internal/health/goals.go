package health

import "github.com/kpumuk/lazyfit/internal/mathutil"

// Goals holds per-metric daily targets derived from historical averages.
type Goals struct {
	Steps int64
	Kcals int64
	Km    int64
}

// ComputeGoals derives targets from the supplied records: the plain average
// of each metric over every day (zeros included, unlike the contributing-only
// stats engine) rounded up to a friendly increment. Empty input yields zero
// goals.
func ComputeGoals(records []Record) Goals {
	if len(records) == 0 {
		return Goals{}
	}

	n := float64(len(records))
	var steps, kcals, km float64
	for _, record := range records {
		steps += float64(record.Steps)
		kcals += record.Kcals
		km += record.Km
	}

	return Goals{
		Steps: mathutil.RoundUpTo(steps/n, 1000),
		Kcals: mathutil.RoundUpTo(kcals/n, 100),
		Km:    mathutil.RoundUpTo(km/n, 1),
	}
}

// For returns the goal for a single metric.
func (g Goals) For(metric Metric) int64 {
	switch metric {
	case MetricSteps:
		return g.Steps
	case MetricKcals:
		return g.Kcals
	case MetricKm:
		return g.Km
	default:
		return 0
	}
}
