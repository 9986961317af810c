package tracker

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 80
)

type styles struct {
	base      lipgloss.Style
	title     lipgloss.Style
	exercise  lipgloss.Style
	selected  lipgloss.Style
	hint      lipgloss.Style
	up        lipgloss.Style
	down      lipgloss.Style
	same      lipgloss.Style
	good      lipgloss.Style
	bad       lipgloss.Style
	neutral   lipgloss.Style
	errorText lipgloss.Style
}

func newStyles(dark bool) styles {
	fg := lipgloss.Color("#1F1F1F")
	muted := lipgloss.Color("#6C6C6C")

	if dark {
		fg = lipgloss.Color("#F0F0F0")
		muted = lipgloss.Color("#8A8A8A")
	}

	green := lipgloss.Color("#B0DB43")
	red := lipgloss.Color("#F25F5C")
	yellow := lipgloss.Color("#FFE066")

	return styles{
		base:      lipgloss.NewStyle().Padding(1, padding),
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#12EAEA")),
		exercise:  lipgloss.NewStyle().Bold(true).Foreground(fg),
		selected:  lipgloss.NewStyle().Reverse(true),
		hint:      lipgloss.NewStyle().Foreground(muted),
		up:        lipgloss.NewStyle().Foreground(green),
		down:      lipgloss.NewStyle().Foreground(red),
		same:      lipgloss.NewStyle().Foreground(yellow),
		good:      lipgloss.NewStyle().Foreground(green),
		bad:       lipgloss.NewStyle().Foreground(red),
		neutral:   lipgloss.NewStyle().Foreground(yellow),
		errorText: lipgloss.NewStyle().Foreground(red),
	}
}
