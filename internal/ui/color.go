// Package ui holds the colour and table helpers shared by every printed view
package ui

import (
	"github.com/pterm/pterm"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Gray(a any) string {
	return pterm.Gray(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Plan colours a plan label: push is green, pull is blue and custom plans
// are magenta.
func Plan(plan string, label any) string {
	switch plan {
	case "push":
		return Green(label)
	case "pull":
		return Blue(label)
	default:
		return Magenta(label)
	}
}

// Tone colours a recommendation by its tone.
func Tone(tone string, a any) string {
	switch tone {
	case "good":
		return Green(a)
	case "bad":
		return Red(a)
	default:
		return Yellow(a)
	}
}

// Trend prefixes a value with an arrow for its direction.
func Trend(direction string, a any) string {
	switch direction {
	case "up":
		return Green(pterm.Sprint("▲ ", a))
	case "down":
		return Red(pterm.Sprint("▼ ", a))
	case "same":
		return Yellow(pterm.Sprint("= ", a))
	default:
		return pterm.Sprint(a)
	}
}
