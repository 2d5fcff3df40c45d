package render

import "github.com/charmbracelet/lipgloss"

// Styles is the registry of every style the renderer uses, kept in one
// place so the output contract is visible at a glance.
type Styles struct {
	Word      lipgloss.Style // definition header
	Etymology lipgloss.Style // "Etymology N:" header
	POS       lipgloss.Style // part-of-speech label
	SenseNum  lipgloss.Style // "N." prefix on sense lines
	Date      lipgloss.Style // bracketed usage period
	Example   lipgloss.Style // quoted example sentence
	Alert     lipgloss.Style // invalid input / word not found
}

// DefaultStyles builds the style registry against r, so color capability
// is decided per output writer: a pipe or NO_COLOR environment degrades
// every style to plain text.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Word:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Etymology: r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		POS:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		SenseNum:  r.NewStyle().Bold(true),
		Date:      r.NewStyle().Faint(true).Italic(true),
		Example:   r.NewStyle().Faint(true),
		Alert:     r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}
