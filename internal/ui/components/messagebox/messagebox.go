// Package messagebox renders a titled box with a centered message, used for
// empty states.
package messagebox

import (
	"charm.land/lipgloss/v2"

	"github.com/kpumuk/lazyfit/internal/ui/charts"
	"github.com/kpumuk/lazyfit/internal/ui/components/frame"
)

// Styles holds the styles needed by the message box.
type Styles struct {
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Border lipgloss.Style
}

// DefaultStyles returns default styles for the message box.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true),
		Muted:  lipgloss.NewStyle().Faint(true),
		Border: lipgloss.NewStyle(),
	}
}

// Model defines state for the message box component.
type Model struct {
	styles  Styles
	title   string
	message string
	width   int
	height  int
}

// Option is used to set options in New.
type Option func(*Model)

// New creates a new message box model.
func New(opts ...Option) Model {
	m := Model{
		styles: DefaultStyles(),
		height: 5,
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

// WithTitle sets the title.
func WithTitle(title string) Option {
	return func(m *Model) {
		m.title = title
	}
}

// WithMessage sets the message.
func WithMessage(msg string) Option {
	return func(m *Model) {
		m.message = msg
	}
}

// WithSize sets the width and height.
func WithSize(w, h int) Option {
	return func(m *Model) {
		m.width = w
		m.height = h
	}
}

// SetStyles sets the styles.
func (m *Model) SetStyles(s Styles) {
	m.styles = s
}

// SetTitle sets the title.
func (m *Model) SetTitle(title string) {
	m.title = title
}

// SetMessage sets the message.
func (m *Model) SetMessage(msg string) {
	m.message = msg
}

// SetSize sets the width and height.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Width returns the current width.
func (m Model) Width() int {
	return m.width
}

// Height returns the current height.
func (m Model) Height() int {
	return m.height
}

// Title returns the current title.
func (m Model) Title() string {
	return m.title
}

// Message returns the current message.
func (m Model) Message() string {
	return m.message
}

// View renders the message box.
func (m Model) View() string {
	height := max(m.height, 5)

	content := charts.RenderCentered(
		max(m.width-2, 0),
		height-2,
		m.styles.Muted.Render(m.message),
	)

	state := frame.StyleState{Title: m.styles.Title, Border: m.styles.Border}
	box := frame.New(
		frame.WithSize(m.width, height),
		frame.WithTitle(m.title),
		frame.WithContent(content),
		frame.WithStyles(frame.Styles{Focused: state, Blurred: state}),
	)
	return box.View()
}

// Render is a convenience function for one-off rendering without creating a Model.
func Render(styles Styles, title, message string, width, height int) string {
	m := New(
		WithStyles(styles),
		WithTitle(title),
		WithMessage(message),
		WithSize(width, height),
	)
	return m.View()
}
