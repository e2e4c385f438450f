package errorpopup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func blankBackground(width, height int) string {
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func TestHasError(t *testing.T) {
	tests := map[string]struct {
		message string
		want    bool
	}{
		"empty":  {message: "", want: false},
		"filled": {message: "boom", want: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			m := New(WithMessage(tc.message))
			if got := m.HasError(); got != tc.want {
				t.Fatalf("HasError() = %v, want %v", got, tc.want)
			}
			if got := m.Message(); got != tc.message {
				t.Fatalf("Message() = %q, want %q", got, tc.message)
			}
		})
	}
}

func TestViewPassesBackgroundThrough(t *testing.T) {
	m := New(WithSize(20, 3))
	m.SetBackground("background content")
	if got := m.View(); got != "background content" {
		t.Fatalf("expected background unchanged, got %q", got)
	}
}

func TestViewOverlaysPopup(t *testing.T) {
	m := New(
		WithSize(80, 11),
		WithMessage("fetch failed: connection refused"),
		WithHint("Press r to retry"),
	)
	m.SetBackground(blankBackground(80, 11))

	output := ansi.Strip(m.View())
	lines := strings.Split(output, "\n")
	if len(lines) != 11 {
		t.Fatalf("expected 11 lines, got %d", len(lines))
	}
	if !strings.Contains(output, "Connection Error") {
		t.Fatalf("expected popup title in output:\n%s", output)
	}
	if !strings.Contains(output, "fetch failed: connection refused") {
		t.Fatalf("expected message in output:\n%s", output)
	}
	if !strings.Contains(output, "Press r to retry") {
		t.Fatalf("expected hint in output:\n%s", output)
	}

	for i, line := range lines {
		if w := ansi.StringWidth(line); w > 80 {
			t.Fatalf("line %d: width %d exceeds 80", i, w)
		}
	}
}

func TestViewClampsPopupToWidth(t *testing.T) {
	m := New(WithSize(40, 9), WithMessage("boom"))
	m.SetBackground(blankBackground(40, 9))

	output := ansi.Strip(m.View())
	for i, line := range strings.Split(output, "\n") {
		if w := ansi.StringWidth(line); w > 40 {
			t.Fatalf("line %d: width %d exceeds 40", i, w)
		}
	}
}
