package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles styles + symbols used by the list, the add bar and `ls`.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error lipgloss.Style
	Selected, Button, ButtonFocused      lipgloss.Style
	Border                               lipgloss.Border
	BorderColor                          lipgloss.TerminalColor

	Bullet, SymOK, SymFail string
}

var current = classic()

// Themes lists the names SetTheme accepts.
var Themes = []string{"classic", "neon", "mono"}

// SetTheme switches the current theme. Unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		current = neon()
	case "mono":
		current = mono()
	default:
		current = classic()
	}
}

// Current returns the active theme.
func Current() Theme { return current }

func classic() Theme {
	return Theme{
		Name:          "classic",
		Title:         lipgloss.NewStyle().Bold(true),
		Muted:         lipgloss.NewStyle().Faint(true),
		Accent:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Selected:      lipgloss.NewStyle().Bold(true).Reverse(true),
		Button:        lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder()),
		ButtonFocused: lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("12")).Bold(true),
		Border:        lipgloss.RoundedBorder(),
		BorderColor:   lipgloss.Color("8"),
		Bullet:        "•",
		SymOK:         "✔",
		SymFail:       "✖",
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.ButtonFocused = t.ButtonFocused.BorderForeground(lipgloss.Color("13"))
	t.BorderColor = lipgloss.Color("13")
	t.Bullet = "◆"
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:          "mono",
		Title:         plain,
		Muted:         plain,
		Accent:        plain,
		Success:       plain,
		Error:         plain,
		Selected:      plain,
		Button:        plain.Padding(0, 1).Border(lipgloss.ASCIIBorder()),
		ButtonFocused: plain.Padding(0, 1).Border(lipgloss.ASCIIBorder()).Bold(true),
		Border:        lipgloss.ASCIIBorder(),
		BorderColor:   lipgloss.NoColor{},
		Bullet:        "-",
		SymOK:         "ok",
		SymFail:       "error:",
	}
}
