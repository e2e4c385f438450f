// Package ui renders the Bubble Tea application UI.
package ui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kpumuk/lazyfit/internal/health"
	"github.com/kpumuk/lazyfit/internal/ui/components/errorpopup"
	"github.com/kpumuk/lazyfit/internal/ui/components/navbar"
	"github.com/kpumuk/lazyfit/internal/ui/components/statsbar"
	"github.com/kpumuk/lazyfit/internal/ui/theme"
	"github.com/kpumuk/lazyfit/internal/ui/views"
)

// tickMsg triggers a periodic data refresh.
type tickMsg time.Time

// recordsMsg carries a successful fetch result.
type recordsMsg struct {
	records []health.Record
}

// connectionErrorMsg indicates the activity API could not be reached.
type connectionErrorMsg struct {
	err error
}

// App is the main application model.
type App struct {
	keys            KeyMap
	width           int
	height          int
	ready           bool
	activeView      int
	views           []views.View
	stats           statsbar.Model
	navbar          navbar.Model
	errorPopup      errorpopup.Model
	styles          theme.Styles
	client          *health.Client
	refreshInterval time.Duration
	records         []health.Record
	connectionError error
}

// New creates a new App instance.
func New(client *health.Client, refreshInterval time.Duration) App {
	styles := theme.NewStyles()

	viewList := []views.View{
		views.NewDashboard(),
		views.NewChart(),
		views.NewRecords(),
	}

	// Apply styles to views
	viewStyles := views.Styles{
		Text:           styles.ViewText,
		Muted:          styles.ViewMuted,
		Title:          styles.ViewTitle,
		MetricLabel:    styles.MetricLabel,
		MetricValue:    styles.MetricValue,
		TableHeader:    styles.TableHeader,
		TableSelected:  styles.TableSelected,
		TableSeparator: styles.TableSeparator,
		BorderStyle:    styles.BorderStyle,
		FocusBorder:    styles.FocusBorder,
		ChartLine:      styles.ChartLine,
		ChartAverage:   styles.ChartAverage,
		ChartAxis:      styles.ChartAxis,
		ChartLabel:     styles.ChartLabel,
		GoalReached:    styles.GoalReached,
		GoalMissed:     styles.GoalMissed,
	}
	for i := range viewList {
		viewList[i] = viewList[i].SetStyles(viewStyles)
	}

	// Build navbar view infos
	navViews := make([]navbar.ViewInfo, len(viewList))
	for i, v := range viewList {
		navViews[i] = navbar.ViewInfo{Name: v.Name()}
	}

	if refreshInterval <= 0 {
		refreshInterval = time.Minute
	}

	return App{
		keys:       DefaultKeyMap(),
		activeView: 0,
		views:      viewList,
		stats: statsbar.New(
			statsbar.WithStyles(statsbar.Styles{
				Bar:   styles.StatsBar,
				Fill:  styles.StatsBarFill,
				Label: styles.StatsBarLabel,
				Value: styles.StatsBarValue,
			}),
		),
		navbar: navbar.New(
			navbar.WithStyles(navbar.Styles{
				Bar:    styles.NavBar,
				Key:    styles.NavKey,
				Item:   styles.NavItem,
				Active: styles.NavItem.Bold(true),
				Quit:   styles.NavQuit,
			}),
			navbar.WithViews(navViews),
		),
		errorPopup: errorpopup.New(
			errorpopup.WithStyles(errorpopup.Styles{
				Title:   styles.ErrorTitle,
				Message: styles.ViewMuted,
				Border:  styles.ErrorBorder,
			}),
			errorpopup.WithHint(retryHint(client)),
		),
		styles:          styles,
		client:          client,
		refreshInterval: refreshInterval,
	}
}

// retryHint names the endpoint that failed so the popup is actionable.
func retryHint(client *health.Client) string {
	if client == nil {
		return "Press r to retry"
	}
	return client.DisplayURL() + " • press r to retry"
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.views[a.activeView].Init(),
		a.stats.Init(),
		a.fetchCmd(),
		a.tickCmd(),
	)
}

// tickCmd schedules the next periodic refresh.
func (a App) tickCmd() tea.Cmd {
	return tea.Tick(a.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchCmd fetches activity records from the API.
func (a App) fetchCmd() tea.Cmd {
	client := a.client
	return func() tea.Msg {
		records, err := client.FetchRecords(context.Background())
		if err != nil {
			return connectionErrorMsg{err: err}
		}
		return recordsMsg{records: records}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tickMsg:
		cmds = append(cmds, a.fetchCmd(), a.tickCmd())

	case recordsMsg:
		a.records = msg.records
		a.connectionError = nil

		today := health.Today()
		todayRecord := health.TodayRecord(msg.records, today)
		a.stats.SetData(statsbar.Data{
			Steps:    todayRecord.Steps,
			Kcals:    todayRecord.Kcals,
			Km:       todayRecord.Km,
			LastSync: health.LastSync(msg.records),
		})

		// Broadcast fresh data to every view so switching needs no refetch
		data := views.DataMsg{Records: msg.records, Today: today}
		for i := range a.views {
			updatedView, cmd := a.views[i].Update(data)
			a.views[i] = updatedView
			cmds = append(cmds, cmd)
		}

	case connectionErrorMsg:
		a.connectionError = msg.err

	case views.ConnectionErrorMsg:
		a.connectionError = msg.Err

	case views.RefreshMsg:
		cmds = append(cmds, a.fetchCmd())

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, a.keys.Refresh):
			cmds = append(cmds, a.fetchCmd())

		case key.Matches(msg, a.keys.View1):
			a.switchView(0)
			cmds = append(cmds, a.views[a.activeView].Init())

		case key.Matches(msg, a.keys.View2):
			a.switchView(1)
			cmds = append(cmds, a.views[a.activeView].Init())

		case key.Matches(msg, a.keys.View3):
			a.switchView(2)
			cmds = append(cmds, a.views[a.activeView].Init())

		default:
			// Pass to active view
			updatedView, cmd := a.views[a.activeView].Update(msg)
			a.views[a.activeView] = updatedView
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true

		a.stats.SetWidth(msg.Width)
		a.navbar.SetWidth(msg.Width)

		// Content fills the space between the stats bar and the navbar
		contentHeight := msg.Height - a.stats.Height() - a.navbar.Height()
		contentWidth := msg.Width
		for i := range a.views {
			a.views[i] = a.views[i].SetSize(contentWidth, contentHeight)
		}
		a.errorPopup.SetSize(contentWidth, contentHeight)

	default:
		updatedStats, cmd := a.stats.Update(msg)
		a.stats = updatedStats
		cmds = append(cmds, cmd)

		updatedView, cmd := a.views[a.activeView].Update(msg)
		a.views[a.activeView] = updatedView
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) switchView(index int) {
	a.activeView = index
	a.navbar.SetActive(index)
}

// View implements tea.Model.
func (a App) View() tea.View {
	var v tea.View
	v.AltScreen = true

	if !a.ready {
		v.SetContent("Initializing...")
		return v
	}

	content := a.views[a.activeView].View()

	// If there's a connection error, overlay the error popup
	if a.connectionError != nil {
		a.errorPopup.SetMessage(a.connectionError.Error())
		a.errorPopup.SetBackground(content)
		content = a.errorPopup.View()
	}

	// Build the layout: stats bar (top) + content (middle) + navbar (bottom)
	v.SetContent(lipgloss.JoinVertical(
		lipgloss.Left,
		a.stats.View(),
		content,
		a.navbar.View(),
	))

	return v
}
