// Package table renders a scrollable table with selection and sort indicators.
package table

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kpumuk/lazyfit/internal/mathutil"
)

// Align controls horizontal alignment of a column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column defines a table column.
type Column struct {
	Title string
	Width int
	Align Align
}

// Styles holds the styles needed by the table.
type Styles struct {
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Header    lipgloss.Style
	Selected  lipgloss.Style
	Separator lipgloss.Style
}

// DefaultStyles returns default styles for the table.
func DefaultStyles() Styles {
	return Styles{
		Text:      lipgloss.NewStyle(),
		Muted:     lipgloss.NewStyle().Faint(true),
		Header:    lipgloss.NewStyle().Bold(true),
		Selected:  lipgloss.NewStyle().Reverse(true),
		Separator: lipgloss.NewStyle().Faint(true),
	}
}

// KeyMap holds key bindings for table navigation.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

// DefaultKeyMap returns the default navigation bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	}
}

// Model is a scrollable table with selection support.
type Model struct {
	columns      []Column
	rows         [][]string
	styles       Styles
	keyMap       KeyMap
	width        int
	height       int
	selectedRow  int
	yOffset      int
	sortColumn   int
	sortDesc     bool
	showSort     bool
	emptyMessage string
}

// Option is used to set options in New.
type Option func(*Model)

// New creates a new table model.
func New(opts ...Option) Model {
	m := Model{
		styles:       DefaultStyles(),
		keyMap:       DefaultKeyMap(),
		emptyMessage: "No data",
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// WithColumns sets the column definitions.
func WithColumns(columns []Column) Option {
	return func(m *Model) {
		m.columns = columns
	}
}

// WithStyles sets the styles.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.styles = s
	}
}

// WithSize sets the width and height.
func WithSize(w, h int) Option {
	return func(m *Model) {
		m.width = w
		m.height = h
	}
}

// WithEmptyMessage sets the message shown when there are no rows.
func WithEmptyMessage(msg string) Option {
	return func(m *Model) {
		m.emptyMessage = msg
	}
}

// SetStyles updates the table styles.
func (m *Model) SetStyles(styles Styles) {
	m.styles = styles
}

// SetSize sets the table dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampScroll()
}

// SetRows updates the table data.
func (m *Model) SetRows(rows [][]string) {
	m.rows = rows
	if m.selectedRow >= len(m.rows) {
		m.selectedRow = len(m.rows) - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
	m.clampScroll()
}

// SetSortIndicator marks a column as sorted. Pass a negative column to clear.
func (m *Model) SetSortIndicator(column int, desc bool) {
	m.showSort = column >= 0 && column < len(m.columns)
	m.sortColumn = column
	m.sortDesc = desc
}

// SetEmptyMessage sets the message shown when there are no rows.
func (m *Model) SetEmptyMessage(msg string) {
	m.emptyMessage = msg
}

// SelectedRow returns the currently selected row index.
func (m Model) SelectedRow() int {
	return m.selectedRow
}

// RowCount returns the number of rows.
func (m Model) RowCount() int {
	return len(m.rows)
}

// Init returns an initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key messages for navigation.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keyMap.Up):
		m.moveSelection(-1)
	case key.Matches(keyMsg, m.keyMap.Down):
		m.moveSelection(1)
	case key.Matches(keyMsg, m.keyMap.PageUp):
		m.moveSelection(-m.viewportHeight())
	case key.Matches(keyMsg, m.keyMap.PageDown):
		m.moveSelection(m.viewportHeight())
	case key.Matches(keyMsg, m.keyMap.Top):
		m.selectedRow = 0
		m.yOffset = 0
	case key.Matches(keyMsg, m.keyMap.Bottom):
		m.selectedRow = max(len(m.rows)-1, 0)
		m.ensureSelectedVisible()
	}

	return m, nil
}

// View renders the table (header + separator + visible rows).
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	header := m.renderHeader()
	body := m.renderBody()
	return header + "\n" + body
}

func (m Model) viewportHeight() int {
	return max(m.height-2, 1)
}

func (m *Model) moveSelection(delta int) {
	m.selectedRow = mathutil.Clamp(m.selectedRow+delta, 0, max(len(m.rows)-1, 0))
	m.ensureSelectedVisible()
}

func (m *Model) ensureSelectedVisible() {
	if m.selectedRow < m.yOffset {
		m.yOffset = m.selectedRow
	} else if m.selectedRow >= m.yOffset+m.viewportHeight() {
		m.yOffset = m.selectedRow - m.viewportHeight() + 1
	}
}

func (m *Model) clampScroll() {
	m.yOffset = mathutil.Clamp(m.yOffset, 0, max(len(m.rows)-m.viewportHeight(), 0))
}

func (m Model) headerTitle(i int) string {
	title := m.columns[i].Title
	if m.showSort && i == m.sortColumn {
		if m.sortDesc {
			title += " ▼"
		} else {
			title += " ▲"
		}
	}
	return title
}

func (m Model) renderHeader() string {
	cells := make([]string, 0, len(m.columns))
	for i, col := range m.columns {
		cells = append(cells, alignCell(m.headerTitle(i), col.Width, col.Align))
	}
	header := fitLine(strings.Join(cells, " "), m.width)

	separator := strings.Repeat("─", m.width)

	return m.styles.Header.Render(header) + "\n" + m.styles.Separator.Render(separator)
}

func (m Model) renderBody() string {
	if len(m.rows) == 0 {
		return m.styles.Muted.Render(m.emptyMessage)
	}

	start := m.yOffset
	end := min(start+m.viewportHeight(), len(m.rows))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cells := make([]string, 0, len(m.columns))
		for c, col := range m.columns {
			var cell string
			if c < len(m.rows[i]) {
				cell = m.rows[i][c]
			}
			cells = append(cells, alignCell(cell, col.Width, col.Align))
		}
		line := fitLine(strings.Join(cells, " "), m.width)

		if i == m.selectedRow {
			line = m.styles.Selected.Render(line)
		} else {
			line = m.styles.Text.Render(line)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// alignCell pads or truncates a cell to the given width.
func alignCell(s string, width int, align Align) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w > width {
		runes := []rune(s)
		if len(runes) > width {
			runes = runes[:width]
		}
		return string(runes)
	}
	pad := strings.Repeat(" ", width-w)
	if align == AlignRight {
		return pad + s
	}
	return s + pad
}

// fitLine pads or truncates a line to the table width.
func fitLine(line string, width int) string {
	w := lipgloss.Width(line)
	if w < width {
		return line + strings.Repeat(" ", width-w)
	}
	if w > width {
		runes := []rune(line)
		if len(runes) > width {
			runes = runes[:width]
		}
		return string(runes)
	}
	return line
}
