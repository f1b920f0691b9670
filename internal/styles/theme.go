// Package styles defines the terminal render theme for gram output.
package styles

import "github.com/charmbracelet/lipgloss"

// Renderer styles a single string for terminal display.
type Renderer func(string) string

// Theme is the capability set the formatting code renders through. Core
// logic only ever asks for a semantic style, never for a concrete color, so
// tests can swap in Plain().
type Theme struct {
	Header   Renderer
	Muted    Renderer
	Error    Renderer
	Warning  Renderer
	Success  Renderer
	Username Renderer
	Unread   Renderer
	Bold     Renderer
}

// Colors used by the default theme (ANSI-256 codes).
type palette struct {
	Accent  string
	Muted   string
	Error   string
	Warning string
	Success string
	Handle  string
	Unread  string
}

var defaultPalette = palette{
	Accent:  "14",  // cyan
	Muted:   "244", // grey
	Error:   "9",   // red
	Warning: "11",  // yellow
	Success: "10",  // green
	Handle:  "14",  // cyan
	Unread:  "12",  // blue
}

// Default returns the lipgloss-backed theme.
func Default() Theme {
	p := defaultPalette

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Accent))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted))
	errStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Error))
	warning := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Warning))
	success := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Success))
	username := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Handle))
	unread := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Unread))
	bold := lipgloss.NewStyle().Bold(true)

	// lipgloss Style.Render is variadic; adapt it to the Renderer signature.
	render := func(st lipgloss.Style) Renderer {
		return func(s string) string { return st.Render(s) }
	}

	return Theme{
		Header:   render(header),
		Muted:    render(muted),
		Error:    render(errStyle),
		Warning:  render(warning),
		Success:  render(success),
		Username: render(username),
		Unread:   render(unread),
		Bold:     render(bold),
	}
}

// Plain returns a theme whose renderers pass text through unchanged. Used in
// tests and wherever styled output would be noise.
func Plain() Theme {
	identity := func(s string) string { return s }
	return Theme{
		Header:   identity,
		Muted:    identity,
		Error:    identity,
		Warning:  identity,
		Success:  identity,
		Username: identity,
		Unread:   identity,
		Bold:     identity,
	}
}
