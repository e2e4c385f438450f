package views

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/kpumuk/lazyfit/internal/health"
	"github.com/kpumuk/lazyfit/internal/ui/components/frame"
	"github.com/kpumuk/lazyfit/internal/ui/components/messagebox"
	"github.com/kpumuk/lazyfit/internal/ui/components/timeseries"
	"github.com/kpumuk/lazyfit/internal/ui/format"
)

// Chart plots one metric over time at a selectable granularity.
type Chart struct {
	width  int
	height int
	styles Styles

	ready       bool
	records     []health.Record
	today       health.Date
	period      health.Period
	granularity health.Granularity
	metricIdx   int
	frameStyles frame.Styles
	chart       timeseries.Model
}

// NewChart creates a new Chart view.
func NewChart() *Chart {
	return &Chart{
		period:      health.PeriodWeek,
		granularity: health.GranularityDay,
		chart: timeseries.New(
			timeseries.WithAverage(true),
			timeseries.WithEmptyMessage("No records for this period"),
		),
	}
}

// Init implements View.
func (c *Chart) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (c *Chart) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case DataMsg:
		c.records = msg.Records
		c.today = msg.Today
		c.ready = true
		return c, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "{":
			c.setPeriod(cyclePeriod(c.period, -1))
		case "}":
			c.setPeriod(cyclePeriod(c.period, 1))
		case "g":
			c.cycleGranularity()
		case "m", "tab":
			c.metricIdx = (c.metricIdx + 1) % len(health.MetricOrder)
		}
	}

	return c, nil
}

// View implements View.
func (c *Chart) View() string {
	if c.width <= 0 || c.height <= 0 {
		return ""
	}

	if !c.ready {
		return messagebox.Render(messagebox.Styles{
			Title:  c.styles.Title,
			Muted:  c.styles.Muted,
			Border: c.styles.FocusBorder,
		}, "Chart", "Loading...", c.width, c.height)
	}

	metric := c.metric()
	filtered := health.FilterByPeriod(c.records, c.period, c.today)
	granularity := health.ResolveGranularity(c.period, c.granularity)
	series := health.Group(filtered, granularity)

	c.chart.SetSize(max(c.width-4, 1), max(c.height-2, 1))
	c.chart.SetSeries(series)
	c.chart.SetMetric(metric)
	c.chart.SetXLayout(xLayout(granularity))
	c.chart.SetStyles(timeseries.Styles{
		Line:    c.styles.ChartLine,
		Average: c.styles.ChartAverage,
		Axis:    c.styles.ChartAxis,
		Label:   c.styles.ChartLabel,
	})

	box := frame.New(
		frame.WithStyles(c.frameStyles),
		frame.WithTitle(metric.Title()),
		frame.WithMeta(c.meta(series, metric, granularity)),
		frame.WithContent(c.chart.View()),
		frame.WithPadding(1),
		frame.WithSize(c.width, c.height),
		frame.WithMinHeight(5),
		frame.WithFocused(true),
	)
	return box.View()
}

// Name implements View.
func (c *Chart) Name() string {
	return "Chart"
}

// ShortHelp implements View.
func (c *Chart) ShortHelp() []key.Binding {
	return []key.Binding{
		helpBinding([]string{"{", "}"}, "{ ⋰ }", "change period"),
		helpBinding([]string{"g"}, "g", "granularity"),
		helpBinding([]string{"m", "tab"}, "m", "next metric"),
	}
}

// SetSize implements View.
func (c *Chart) SetSize(width, height int) View {
	c.width = width
	c.height = height
	return c
}

// SetStyles implements View.
func (c *Chart) SetStyles(styles Styles) View {
	c.styles = styles
	c.frameStyles = frame.Styles{
		Focused: frame.StyleState{
			Title:  styles.Title,
			Border: styles.FocusBorder,
		},
		Blurred: frame.StyleState{
			Title:  styles.Title,
			Border: styles.BorderStyle,
		},
	}
	return c
}

func (c *Chart) metric() health.Metric {
	return health.MetricOrder[c.metricIdx]
}

// setPeriod switches the window and snaps the granularity back into the
// set the new period supports.
func (c *Chart) setPeriod(period health.Period) {
	c.period = period
	c.granularity = health.ResolveGranularity(period, c.granularity)
}

// cycleGranularity advances to the next granularity the current period
// allows, wrapping around.
func (c *Chart) cycleGranularity() {
	allowed := c.period.Granularities()
	current := health.ResolveGranularity(c.period, c.granularity)
	for i, g := range allowed {
		if g == current {
			c.granularity = allowed[(i+1)%len(allowed)]
			return
		}
	}
	c.granularity = allowed[0]
}

func (c *Chart) meta(series health.Series, metric health.Metric, granularity health.Granularity) string {
	sep := c.styles.Muted.Render(" • ")
	entries := []string{
		c.styles.MetricLabel.Render("period: ") + c.styles.MetricValue.Render(periodLabel(c.period)),
		c.styles.MetricLabel.Render("by: ") + c.styles.MetricValue.Render(string(granularity)),
	}
	if series.Len() > 0 {
		avg := health.Average(series.Values(metric))
		entries = append(entries,
			c.styles.MetricLabel.Render("avg: ")+c.styles.MetricValue.Render(format.Float(avg)))
	}
	return strings.Join(entries, sep)
}

// xLayout picks the time layout for axis labels at a granularity.
func xLayout(granularity health.Granularity) string {
	if granularity == health.GranularityMonth {
		return "Jan 06"
	}
	return "Jan 2"
}
