// Package views contains the application views.
package views

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kpumuk/lazyfit/internal/health"
	"github.com/kpumuk/lazyfit/internal/mathutil"
)

// Styles holds the view-related styles from the theme.
type Styles struct {
	Text           lipgloss.Style
	Muted          lipgloss.Style
	Title          lipgloss.Style
	MetricLabel    lipgloss.Style
	MetricValue    lipgloss.Style
	TableHeader    lipgloss.Style
	TableSelected  lipgloss.Style
	TableSeparator lipgloss.Style
	BorderStyle    lipgloss.Style
	FocusBorder    lipgloss.Style
	ChartLine      lipgloss.Style
	ChartAverage   lipgloss.Style
	ChartAxis      lipgloss.Style
	ChartLabel     lipgloss.Style
	GoalReached    lipgloss.Style
	GoalMissed     lipgloss.Style
}

// View defines the interface that all views must implement.
type View interface {
	// Init returns an initial command for the view
	Init() tea.Cmd

	// Update handles messages and returns the updated view and any commands
	Update(msg tea.Msg) (View, tea.Cmd)

	// View renders the view as a string
	View() string

	// Name returns the display name for this view (shown in navbar)
	Name() string

	// ShortHelp returns keybindings to show in the help view
	ShortHelp() []key.Binding

	// SetSize updates the view dimensions
	SetSize(width, height int) View

	// SetStyles updates the view styles
	SetStyles(styles Styles) View
}

// DataMsg carries a fresh set of activity records to every view.
type DataMsg struct {
	Records []health.Record
	Today   health.Date
}

// RefreshMsg asks the application to re-fetch activity data.
type RefreshMsg struct{}

// ConnectionErrorMsg reports a failed fetch from the activity API.
type ConnectionErrorMsg struct {
	Err error
}

// periodLabel describes a period for frame meta lines.
func periodLabel(p health.Period) string {
	switch p {
	case health.PeriodWeek:
		return "Last 7 days"
	case health.PeriodMonth:
		return "Last 30 days"
	case health.PeriodYear:
		return "Last 365 days"
	default:
		return "All time"
	}
}

// cyclePeriod moves through PeriodOrder by delta, clamped at both ends.
func cyclePeriod(current health.Period, delta int) health.Period {
	idx := 0
	for i, p := range health.PeriodOrder {
		if p == current {
			idx = i
			break
		}
	}
	idx = mathutil.Clamp(idx+delta, 0, len(health.PeriodOrder)-1)
	return health.PeriodOrder[idx]
}

func helpBinding(keys []string, help, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}
