// Package errorpopup overlays a centered error box on top of existing content.
package errorpopup

import (
	"strings"

	"charm.land/lipgloss/v2"
)

const popupWidth = 60

// Styles holds the styles needed by the error popup.
type Styles struct {
	Title   lipgloss.Style
	Message lipgloss.Style
	Border  lipgloss.Style
}

// DefaultStyles returns default styles for the error popup.
func DefaultStyles() Styles {
	errorColor := lipgloss.Color("#FF0000")
	return Styles{
		Title:   lipgloss.NewStyle().Foreground(errorColor).Bold(true),
		Message: lipgloss.NewStyle().Faint(true),
		Border:  lipgloss.NewStyle().Foreground(errorColor),
	}
}

// Model defines state for the error popup component.
type Model struct {
	styles     Styles
	title      string
	message    string
	hint       string
	background string
	width      int
	height     int
}

// Option is used to set options in New.
type Option func(*Model)

// New creates a new error popup model.
func New(opts ...Option) Model {
	m := Model{
		styles: DefaultStyles(),
		title:  "Connection Error",
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

// WithSize sets the width and height.
func WithSize(w, h int) Option {
	return func(m *Model) {
		m.width = w
		m.height = h
	}
}

// WithTitle sets the popup title.
func WithTitle(title string) Option {
	return func(m *Model) {
		m.title = title
	}
}

// WithMessage sets the error message.
func WithMessage(msg string) Option {
	return func(m *Model) {
		m.message = msg
	}
}

// WithHint sets the hint line shown below the message.
func WithHint(hint string) Option {
	return func(m *Model) {
		m.hint = hint
	}
}

// SetStyles sets the styles.
func (m *Model) SetStyles(s Styles) {
	m.styles = s
}

// SetSize sets the width and height.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetMessage sets the error message to display.
func (m *Model) SetMessage(msg string) {
	m.message = msg
}

// SetHint sets the hint line shown below the message.
func (m *Model) SetHint(hint string) {
	m.hint = hint
}

// SetBackground sets the background content to overlay on.
func (m *Model) SetBackground(content string) {
	m.background = content
}

// Width returns the current width.
func (m Model) Width() int {
	return m.width
}

// Height returns the current height.
func (m Model) Height() int {
	return m.height
}

// Message returns the current error message.
func (m Model) Message() string {
	return m.message
}

// HasError returns true if there is an error message to display.
func (m Model) HasError() bool {
	return m.message != ""
}

// View renders the error popup overlaid on the background content.
func (m Model) View() string {
	if m.message == "" {
		return m.background
	}

	body := m.styles.Message.Render(m.message)
	if m.hint != "" {
		body += "\n\n" + m.styles.Message.Render(m.hint)
	}

	panel := m.renderErrorBox(m.title, body, min(popupWidth, m.width))

	contentLines := strings.Split(m.background, "\n")
	panelLines := strings.Split(panel, "\n")

	startRow := (m.height - len(panelLines)) / 2
	for i, panelLine := range panelLines {
		row := startRow + i
		if row >= 0 && row < len(contentLines) {
			contentLines[row] = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panelLine)
		}
	}

	return strings.Join(contentLines, "\n")
}

// renderErrorBox renders content in a box with title on the top border.
func (m Model) renderErrorBox(title, content string, width int) string {
	border := lipgloss.RoundedBorder()

	styledTitle := m.styles.Title.Render(" " + title + " ")
	titleWidth := lipgloss.Width(styledTitle)

	topLeft := m.styles.Border.Render(border.TopLeft)
	topRight := m.styles.Border.Render(border.TopRight)
	hBar := m.styles.Border.Render(border.Top)

	leftPad := 1
	rightPad := max(width-2-titleWidth-leftPad, 0)

	topBorder := topLeft + strings.Repeat(hBar, leftPad) + styledTitle + strings.Repeat(hBar, rightPad) + topRight

	vBar := m.styles.Border.Render(border.Left)
	vBarRight := m.styles.Border.Render(border.Right)

	innerWidth := width - 2
	contentStyle := lipgloss.NewStyle().
		Width(innerWidth).
		Padding(0, 1)

	var middleLines []string
	for _, line := range strings.Split(contentStyle.Render(content), "\n") {
		// Pad to inner width with spaces so the overlay stays opaque
		lineWidth := lipgloss.Width(line)
		if lineWidth < innerWidth {
			line += strings.Repeat(" ", innerWidth-lineWidth)
		}
		middleLines = append(middleLines, vBar+line+vBarRight)
	}

	bottomLeft := m.styles.Border.Render(border.BottomLeft)
	bottomRight := m.styles.Border.Render(border.BottomRight)
	bottomBorder := bottomLeft + strings.Repeat(hBar, width-2) + bottomRight

	return topBorder + "\n" + strings.Join(middleLines, "\n") + "\n" + bottomBorder
}
