package timeseries

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/kpumuk/lazyfit/internal/health"
)

func sampleSeries() health.Series {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return health.Series{
		Labels: []string{"Jan 1", "Jan 2", "Jan 3"},
		Times:  []time.Time{base, base.AddDate(0, 0, 1), base.AddDate(0, 0, 2)},
		Steps:  []float64{1000, 2000, 3000},
		Kcals:  []float64{300, 200, 100},
		Km:     []float64{1, 2, 3},
	}
}

func TestSetters(t *testing.T) {
	m := New()

	m.SetSeries(sampleSeries())
	m.SetMetric(health.MetricKcals)
	m.SetShowAverage(true)
	m.SetXLayout("Jan 06")
	m.SetEmptyMessage("empty")
	m.SetSize(40, 6)

	if m.metric != health.MetricKcals {
		t.Fatalf("SetMetric not applied")
	}
	if !m.showAverage {
		t.Fatalf("SetShowAverage not applied")
	}
	if m.xLayout != "Jan 06" {
		t.Fatalf("SetXLayout not applied")
	}
	if m.emptyMessage != "empty" {
		t.Fatalf("SetEmptyMessage not applied")
	}
	if m.Width() != 40 || m.Height() != 6 {
		t.Fatalf("SetSize not applied")
	}
}

func TestViewDimensions(t *testing.T) {
	tests := map[string]struct {
		width     int
		height    int
		useSeries bool
		wantEmpty bool
		fullWidth bool
	}{
		"zero width":  {width: 0, height: 5, useSeries: true, wantEmpty: true},
		"zero height": {width: 10, height: 0, useSeries: true, wantEmpty: true},
		"no series":   {width: 20, height: 4, useSeries: false, fullWidth: false},
		"valid":       {width: 40, height: 6, useSeries: true, fullWidth: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			m := New(WithSize(tc.width, tc.height), WithEmptyMessage("empty"))
			if tc.useSeries {
				m.SetSeries(sampleSeries())
			}
			output := m.View()
			if tc.wantEmpty {
				if output != "" {
					t.Fatalf("expected empty output, got %q", output)
				}
				return
			}

			lines := strings.Split(ansi.Strip(output), "\n")
			if len(lines) != tc.height {
				t.Fatalf("expected %d lines, got %d", tc.height, len(lines))
			}
			for i, line := range lines {
				w := ansi.StringWidth(line)
				if tc.fullWidth && w != tc.width {
					t.Fatalf("line %d: expected width %d, got %d", i, tc.width, w)
				}
				if !tc.fullWidth && w > tc.width {
					t.Fatalf("line %d: expected width <= %d, got %d", i, tc.width, w)
				}
			}
		})
	}
}

func TestViewEmptyMessage(t *testing.T) {
	m := New(WithSize(30, 5), WithEmptyMessage("No records for this period"))
	output := ansi.Strip(m.View())
	if !strings.Contains(output, "No records for this period") {
		t.Fatalf("expected empty message in output, got %q", output)
	}
}

func TestViewPlotsSelectedMetric(t *testing.T) {
	m := New(
		WithSize(40, 8),
		WithSeries(sampleSeries()),
		WithMetric(health.MetricSteps),
		WithAverage(true),
	)
	output := ansi.Strip(m.View())
	if !strings.Contains(output, "K") {
		t.Fatalf("expected compact Y-axis labels for step counts, got %q", output)
	}
}
