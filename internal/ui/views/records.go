package views

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/kpumuk/lazyfit/internal/health"
	"github.com/kpumuk/lazyfit/internal/ui/components/frame"
	"github.com/kpumuk/lazyfit/internal/ui/components/messagebox"
	"github.com/kpumuk/lazyfit/internal/ui/components/table"
	"github.com/kpumuk/lazyfit/internal/ui/format"
)

// recordColumns maps table columns to sortable record attributes; the
// slice index doubles as the table column index.
var recordColumns = []health.Column{
	health.ColumnDate,
	health.ColumnSteps,
	health.ColumnKcals,
	health.ColumnKm,
}

// Records lists daily records in a sortable table.
type Records struct {
	width  int
	height int
	styles Styles

	ready       bool
	records     []health.Record
	today       health.Date
	period      health.Period
	sort        health.SortSpec
	frameStyles frame.Styles
	table       table.Model
}

// NewRecords creates a new Records view.
func NewRecords() *Records {
	return &Records{
		period: health.PeriodWeek,
		sort:   health.SortSpec{Column: health.ColumnDate, Direction: health.Desc},
		table: table.New(
			table.WithColumns([]table.Column{
				{Title: "Date", Width: 12},
				{Title: "Steps", Width: 10, Align: table.AlignRight},
				{Title: "Kcals", Width: 10, Align: table.AlignRight},
				{Title: "Km", Width: 8, Align: table.AlignRight},
			}),
			table.WithEmptyMessage("No records for this period"),
		),
	}
}

// Init implements View.
func (r *Records) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (r *Records) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case DataMsg:
		r.records = msg.Records
		r.today = msg.Today
		r.ready = true
		r.rebuildRows()
		return r, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "{":
			r.period = cyclePeriod(r.period, -1)
			r.rebuildRows()
		case "}":
			r.period = cyclePeriod(r.period, 1)
			r.rebuildRows()
		case "d":
			r.toggleSort(health.ColumnDate)
		case "s":
			r.toggleSort(health.ColumnSteps)
		case "c":
			r.toggleSort(health.ColumnKcals)
		case "K":
			r.toggleSort(health.ColumnKm)
		default:
			r.table, _ = r.table.Update(msg)
		}
	}

	return r, nil
}

// View implements View.
func (r *Records) View() string {
	if r.width <= 0 || r.height <= 0 {
		return ""
	}

	if !r.ready {
		return messagebox.Render(messagebox.Styles{
			Title:  r.styles.Title,
			Muted:  r.styles.Muted,
			Border: r.styles.FocusBorder,
		}, "Records", "Loading...", r.width, r.height)
	}

	r.table.SetSize(max(r.width-4, 1), max(r.height-2, 3))

	box := frame.New(
		frame.WithStyles(r.frameStyles),
		frame.WithTitle("Records"),
		frame.WithMeta(r.meta()),
		frame.WithContent(r.table.View()),
		frame.WithPadding(1),
		frame.WithSize(r.width, r.height),
		frame.WithMinHeight(5),
		frame.WithFocused(true),
	)
	return box.View()
}

// Name implements View.
func (r *Records) Name() string {
	return "Records"
}

// ShortHelp implements View.
func (r *Records) ShortHelp() []key.Binding {
	return []key.Binding{
		helpBinding([]string{"{", "}"}, "{ ⋰ }", "change period"),
		helpBinding([]string{"d"}, "d", "sort by date"),
		helpBinding([]string{"s"}, "s", "sort by steps"),
		helpBinding([]string{"c"}, "c", "sort by kcals"),
		helpBinding([]string{"K"}, "K", "sort by km"),
	}
}

// SetSize implements View.
func (r *Records) SetSize(width, height int) View {
	r.width = width
	r.height = height
	return r
}

// SetStyles implements View.
func (r *Records) SetStyles(styles Styles) View {
	r.styles = styles
	r.frameStyles = frame.Styles{
		Focused: frame.StyleState{
			Title:  styles.Title,
			Border: styles.FocusBorder,
		},
		Blurred: frame.StyleState{
			Title:  styles.Title,
			Border: styles.BorderStyle,
		},
	}
	r.table.SetStyles(table.Styles{
		Text:      styles.Text,
		Muted:     styles.Muted,
		Header:    styles.TableHeader,
		Selected:  styles.TableSelected,
		Separator: styles.TableSeparator,
	})
	return r
}

func (r *Records) toggleSort(column health.Column) {
	r.sort = r.sort.Toggle(column)
	r.rebuildRows()
}

func (r *Records) rebuildRows() {
	filtered := health.FilterByPeriod(r.records, r.period, r.today)
	sorted := health.SortRecords(filtered, r.sort.Column, r.sort.Direction)

	rows := make([][]string, len(sorted))
	for i, record := range sorted {
		rows[i] = []string{
			record.Date.Key(),
			cellValue(health.MetricSteps, float64(record.Steps)),
			cellValue(health.MetricKcals, record.Kcals),
			cellValue(health.MetricKm, record.Km),
		}
	}
	r.table.SetRows(rows)
	r.table.SetSortIndicator(r.sortColumnIndex(), r.sort.Direction == health.Desc)
}

func (r *Records) sortColumnIndex() int {
	for i, column := range recordColumns {
		if column == r.sort.Column {
			return i
		}
	}
	return -1
}

func (r *Records) meta() string {
	sep := r.styles.Muted.Render(" • ")
	entries := []string{
		r.styles.MetricLabel.Render("period: ") + r.styles.MetricValue.Render(periodLabel(r.period)),
		r.styles.MetricLabel.Render("sort: ") + r.styles.MetricValue.Render(string(r.sort.Column)+" "+string(r.sort.Direction)),
	}
	return strings.Join(entries, sep)
}

// cellValue renders one table cell; zero means the tracker reported
// nothing for that day.
func cellValue(metric health.Metric, value float64) string {
	if value <= 0 {
		return "-"
	}
	if metric == health.MetricKm {
		return format.Float(value)
	}
	return format.Count(int64(value))
}
