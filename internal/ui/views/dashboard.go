package views

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kpumuk/lazyfit/internal/health"
	"github.com/kpumuk/lazyfit/internal/ui/components/frame"
	"github.com/kpumuk/lazyfit/internal/ui/components/messagebox"
	"github.com/kpumuk/lazyfit/internal/ui/format"
)

// Dashboard shows per-metric summary cards for the selected period.
type Dashboard struct {
	width  int
	height int
	styles Styles

	ready       bool
	records     []health.Record
	today       health.Date
	goals       health.Goals
	period      health.Period
	frameStyles frame.Styles
}

// NewDashboard creates a new Dashboard view.
func NewDashboard() *Dashboard {
	return &Dashboard{
		period: health.PeriodWeek,
	}
}

// Init implements View.
func (d *Dashboard) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (d *Dashboard) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case DataMsg:
		d.records = msg.Records
		d.today = msg.Today
		d.goals = health.ComputeGoals(msg.Records)
		d.ready = true
		return d, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "{":
			d.period = cyclePeriod(d.period, -1)
		case "}":
			d.period = cyclePeriod(d.period, 1)
		}
	}

	return d, nil
}

// View implements View.
func (d *Dashboard) View() string {
	if d.width <= 0 || d.height <= 0 {
		return ""
	}

	if !d.ready {
		return messagebox.Render(messagebox.Styles{
			Title:  d.styles.Title,
			Muted:  d.styles.Muted,
			Border: d.styles.FocusBorder,
		}, "Dashboard", "Loading...", d.width, d.height)
	}

	filtered := health.FilterByPeriod(d.records, d.period, d.today)
	todayRecord := health.TodayRecord(d.records, d.today)

	cardWidth := d.width / len(health.MetricOrder)
	cardHeight := min(d.height, 10)

	cards := make([]string, 0, len(health.MetricOrder))
	for i, metric := range health.MetricOrder {
		width := cardWidth
		if i == len(health.MetricOrder)-1 {
			width = d.width - cardWidth*(len(health.MetricOrder)-1)
		}
		cards = append(cards, d.renderCard(metric, filtered, todayRecord, width, cardHeight))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	return lipgloss.NewStyle().
		Width(d.width).
		Height(d.height).
		Render(content)
}

// Name implements View.
func (d *Dashboard) Name() string {
	return "Dashboard"
}

// ShortHelp implements View.
func (d *Dashboard) ShortHelp() []key.Binding {
	return []key.Binding{
		helpBinding([]string{"{", "}"}, "{ ⋰ }", "change period"),
	}
}

// SetSize implements View.
func (d *Dashboard) SetSize(width, height int) View {
	d.width = width
	d.height = height
	return d
}

// SetStyles implements View.
func (d *Dashboard) SetStyles(styles Styles) View {
	d.styles = styles
	d.frameStyles = frame.Styles{
		Focused: frame.StyleState{
			Title:  styles.Title,
			Border: styles.FocusBorder,
		},
		Blurred: frame.StyleState{
			Title:  styles.Title,
			Border: styles.BorderStyle,
		},
	}
	return d
}

func (d *Dashboard) renderCard(metric health.Metric, filtered []health.Record, today health.Record, width, height int) string {
	summary := health.Stats(filtered, metric)
	goal := d.goals.For(metric)

	todayValue := today.Value(metric)
	todayText := d.styles.MetricValue.Render(metricValue(metric, todayValue))
	if goal > 0 {
		goalStyle := d.styles.GoalMissed
		if todayValue >= float64(goal) {
			goalStyle = d.styles.GoalReached
		}
		todayText += d.styles.Muted.Render(" / ") + goalStyle.Render(metricValue(metric, float64(goal)))
	}

	lines := []string{
		d.styles.MetricLabel.Render("Today  ") + todayText,
		"",
		d.styles.MetricLabel.Render("Avg    ") + d.styles.MetricValue.Render(metricValue(metric, summary.Avg)),
		d.styles.MetricLabel.Render("Total  ") + d.styles.MetricValue.Render(metricValue(metric, summary.Total)),
		d.styles.MetricLabel.Render("Min    ") + d.styles.MetricValue.Render(metricValue(metric, summary.Min)),
		d.styles.MetricLabel.Render("Max    ") + d.styles.MetricValue.Render(metricValue(metric, summary.Max)),
	}

	box := frame.New(
		frame.WithStyles(d.frameStyles),
		frame.WithTitle(metric.Title()),
		frame.WithMeta(periodLabel(d.period)),
		frame.WithContent(strings.Join(lines, "\n")),
		frame.WithPadding(1),
		frame.WithSize(width, height),
		frame.WithMinHeight(5),
	)
	return box.View()
}

// metricValue formats a value for display: whole numbers for steps and
// kcals, one decimal for kilometers.
func metricValue(metric health.Metric, value float64) string {
	if metric == health.MetricKm {
		return format.Float(value)
	}
	return format.Count(int64(value))
}
