// Package timeseries renders a single health metric as a braille line chart,
// with an optional horizontal line marking the period average.
package timeseries

import (
	"slices"
	"time"

	"charm.land/lipgloss/v2"
	tslc "github.com/NimbleMarkets/ntcharts/v2/linechart/timeserieslinechart"

	"github.com/kpumuk/lazyfit/internal/health"
	"github.com/kpumuk/lazyfit/internal/ui/charts"
	"github.com/kpumuk/lazyfit/internal/ui/format"
)

const averageDataSet = "average"

// Styles holds the visual styles for the metric chart.
type Styles struct {
	Line    lipgloss.Style // Style for the metric line
	Average lipgloss.Style // Style for the average overlay line
	Axis    lipgloss.Style // Style for chart axes
	Label   lipgloss.Style // Style for axis labels
}

// DefaultStyles returns sensible default styles.
func DefaultStyles() Styles {
	return Styles{
		Line:    lipgloss.NewStyle(),
		Average: lipgloss.NewStyle(),
		Axis:    lipgloss.NewStyle(),
		Label:   lipgloss.NewStyle(),
	}
}

// Model holds the metric chart state.
type Model struct {
	styles       Styles
	width        int
	height       int
	series       health.Series
	metric       health.Metric
	showAverage  bool
	xLayout      string
	emptyMessage string
}

// Option is a functional option for configuring the metric chart.
type Option func(*Model)

// New creates a new metric chart model with functional options.
func New(opts ...Option) Model {
	m := Model{
		styles:  DefaultStyles(),
		metric:  health.MetricSteps,
		xLayout: "Jan 2",
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// WithStyles sets custom styles for the chart.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithSize sets the dimensions of the chart.
func WithSize(w, h int) Option {
	return func(m *Model) { m.width, m.height = w, h }
}

// WithSeries sets the bucketed series to display.
func WithSeries(series health.Series) Option {
	return func(m *Model) { m.series = series }
}

// WithMetric selects which metric of the series to plot.
func WithMetric(metric health.Metric) Option {
	return func(m *Model) { m.metric = metric }
}

// WithAverage toggles the period-average overlay line.
func WithAverage(show bool) Option {
	return func(m *Model) { m.showAverage = show }
}

// WithXLayout sets the time layout used for X-axis labels.
func WithXLayout(layout string) Option {
	return func(m *Model) { m.xLayout = layout }
}

// WithEmptyMessage sets the message to display when there's no data.
func WithEmptyMessage(msg string) Option {
	return func(m *Model) { m.emptyMessage = msg }
}

// SetStyles updates the chart styles.
func (m *Model) SetStyles(s Styles) {
	m.styles = s
}

// SetSize updates the chart dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetSeries updates the bucketed series.
func (m *Model) SetSeries(series health.Series) {
	m.series = series
}

// SetMetric updates which metric is plotted.
func (m *Model) SetMetric(metric health.Metric) {
	m.metric = metric
}

// SetShowAverage toggles the period-average overlay line.
func (m *Model) SetShowAverage(show bool) {
	m.showAverage = show
}

// SetXLayout updates the time layout used for X-axis labels.
func (m *Model) SetXLayout(layout string) {
	m.xLayout = layout
}

// SetEmptyMessage updates the empty state message.
func (m *Model) SetEmptyMessage(msg string) {
	m.emptyMessage = msg
}

// Width returns the current width.
func (m Model) Width() int {
	return m.width
}

// Height returns the current height.
func (m Model) Height() int {
	return m.height
}

// View renders the metric chart to a string.
func (m Model) View() string {
	if m.width < 1 || m.height < 1 {
		return ""
	}

	values := m.series.Values(m.metric)
	n := min(len(values), len(m.series.Times))
	if n == 0 {
		return charts.RenderCentered(m.width, m.height, m.emptyMessage)
	}

	minTime := m.series.Times[0]
	maxTime := m.series.Times[n-1]
	if !maxTime.After(minTime) {
		maxTime = minTime.Add(time.Second)
	}

	maxValue := max(1.0, slices.Max(values[:n]))

	chart := tslc.New(m.width, m.height,
		tslc.WithXYSteps(m.xSteps(), m.ySteps()),
		tslc.WithXLabelFormatter(m.formatX),
		tslc.WithYLabelFormatter(formatY),
		tslc.WithAxesStyles(m.styles.Axis, m.styles.Label),
		tslc.WithTimeRange(minTime, maxTime),
		tslc.WithYRange(0, maxValue),
	)
	chart.AutoMinX = false
	chart.AutoMaxX = false
	chart.AutoMinY = false
	chart.AutoMaxY = false

	chart.SetStyle(m.styles.Line)
	for i := range n {
		chart.Push(tslc.TimePoint{Time: m.series.Times[i], Value: values[i]})
	}

	if m.showAverage && n > 1 {
		avg := health.Average(values[:n])
		chart.SetDataSetStyle(averageDataSet, m.styles.Average)
		chart.PushDataSet(averageDataSet, tslc.TimePoint{Time: minTime, Value: avg})
		chart.PushDataSet(averageDataSet, tslc.TimePoint{Time: maxTime, Value: avg})
	}

	chart.DrawBrailleAll()
	return chart.View()
}

func (m Model) xSteps() int {
	return max(2, m.width/18)
}

func (m Model) ySteps() int {
	return max(2, m.height/4)
}

func (m Model) formatX(_ int, v float64) string {
	return time.Unix(int64(v), 0).Format(m.xLayout)
}

func formatY(_ int, v float64) string {
	return format.ShortNumber(int64(v))
}
