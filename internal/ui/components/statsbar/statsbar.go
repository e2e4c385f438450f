// Package statsbar renders the top bar with today's activity totals.
package statsbar

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/kpumuk/lazyfit/internal/ui/format"
)

// Data holds today's activity values and the sync timestamp.
type Data struct {
	Steps    int64
	Kcals    float64
	Km       float64
	LastSync time.Time
}

// UpdateMsg is sent when the stats bar should be updated.
type UpdateMsg struct {
	Data Data
}

// Styles holds the styles needed by the stats bar.
type Styles struct {
	Bar   lipgloss.Style
	Fill  lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
}

// DefaultStyles returns default styles for the stats bar.
func DefaultStyles() Styles {
	return Styles{
		Bar:   lipgloss.NewStyle().Padding(0, 1),
		Fill:  lipgloss.NewStyle(),
		Label: lipgloss.NewStyle().Faint(true),
		Value: lipgloss.NewStyle().Bold(true),
	}
}

// Model defines state for the stats bar component.
type Model struct {
	styles Styles
	data   Data
	now    func() time.Time
	width  int
}

// Option is used to set options in New.
type Option func(*Model)

// New creates a new stats bar model.
func New(opts ...Option) Model {
	m := Model{
		styles: DefaultStyles(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// WithStyles sets the styles.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.styles = s
	}
}

// WithWidth sets the width.
func WithWidth(w int) Option {
	return func(m *Model) {
		m.width = w
	}
}

// WithData sets the initial data.
func WithData(d Data) Option {
	return func(m *Model) {
		m.data = d
	}
}

// WithNowFunc overrides the clock used for the sync age display.
func WithNowFunc(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// SetStyles sets the styles.
func (m *Model) SetStyles(s Styles) {
	m.styles = s
}

// SetWidth sets the width.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// SetData sets the stats data.
func (m *Model) SetData(d Data) {
	m.data = d
}

// Width returns the current width.
func (m Model) Width() int {
	return m.width
}

// Height returns the height of the stats bar (always 1).
func (m Model) Height() int {
	return 1
}

// Data returns the current stats data.
func (m Model) Data() Data {
	return m.data
}

// Init returns an initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case UpdateMsg:
		m.data = msg.Data
	}
	return m, nil
}

// View renders the stats bar.
func (m Model) View() string {
	barStyle := m.styles.Bar.Width(m.width)

	baseStats := []string{
		m.styles.Label.Render("Steps: ") + m.styles.Value.Render(format.Count(m.data.Steps)),
		m.styles.Label.Render("Kcals: ") + m.styles.Value.Render(format.Count(int64(m.data.Kcals))),
		m.styles.Label.Render("Km: ") + m.styles.Value.Render(format.Float(m.data.Km)),
		m.styles.Label.Render("Synced: ") + m.styles.Value.Render(format.Ago(m.data.LastSync, m.now())),
	}

	if m.width <= 0 {
		return barStyle.Render("")
	}

	contentWidth := max(m.width-barStyle.GetHorizontalPadding(), 0)

	baseItems, baseWidths, maxWidth := buildBaseItems(baseStats, m.styles)
	sep := " "
	sepWidth := lipgloss.Width(sep)

	targetWidths := layoutTargetWidths(baseWidths, maxWidth, contentWidth, sepWidth)
	if targetWidths == nil {
		content := strings.Join(baseItems, sep)
		content = ansi.Truncate(content, contentWidth, "")
		return barStyle.Render(content)
	}

	items := applyWidths(baseItems, targetWidths, m.styles.Fill)
	return barStyle.Render(strings.Join(items, sep))
}

func buildBaseItems(stats []string, styles Styles) ([]string, []int, int) {
	pad := styles.Fill.Render(" ")
	items := make([]string, len(stats))
	widths := make([]int, len(stats))
	maxWidth := 0

	for i, stat := range stats {
		item := pad + stat + pad
		width := lipgloss.Width(item)
		items[i] = item
		widths[i] = width
		if width > maxWidth {
			maxWidth = width
		}
	}

	return items, widths, maxWidth
}

func layoutTargetWidths(baseWidths []int, maxWidth, contentWidth, sepWidth int) []int {
	if len(baseWidths) == 0 {
		return []int{}
	}

	minTotal := 0
	for _, width := range baseWidths {
		minTotal += width
	}
	minTotal += sepWidth * (len(baseWidths) - 1)

	if contentWidth < minTotal {
		return nil
	}

	targetWidths := make([]int, len(baseWidths))
	for i := range targetWidths {
		targetWidths[i] = maxWidth
	}

	totalEqual := maxWidth*len(baseWidths) + sepWidth*(len(baseWidths)-1)
	if contentWidth >= totalEqual {
		extra := contentWidth - totalEqual
		for extra > 0 {
			for i := range targetWidths {
				targetWidths[i]++
				extra--
				if extra == 0 {
					break
				}
			}
		}
		return targetWidths
	}

	overflow := totalEqual - contentWidth
	for overflow > 0 {
		trimmed := false
		for i := range targetWidths {
			if targetWidths[i] > baseWidths[i] {
				targetWidths[i]--
				overflow--
				trimmed = true
				if overflow == 0 {
					break
				}
			}
		}
		if !trimmed {
			return nil
		}
	}

	return targetWidths
}

func applyWidths(items []string, targetWidths []int, fillStyle lipgloss.Style) []string {
	applied := make([]string, len(items))
	for i, item := range items {
		width := lipgloss.Width(item)
		if targetWidths[i] > width {
			item += fillStyle.Render(strings.Repeat(" ", targetWidths[i]-width))
		}
		applied[i] = item
	}
	return applied
}
