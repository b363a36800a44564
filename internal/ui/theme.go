package ui

import (
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background and modal backdrop
	Surface    string // Cards, tiles, footer
	SurfaceAlt string // Hovered / focused tiles

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text      string
	Muted     string
	Faint     string
	Accent    string // Primary call to action (services, active chip)
	Secondary string // Gallery button and headings
	Danger    string
	Info      string // Status messages

	// Markdown is the glamour standard style used for prose sections.
	Markdown string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SecondaryText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		TitleAccent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Italic(true),

		Heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(lipgloss.Color(t.SurfaceAlt)).
			Padding(0, 1),

		ButtonServices: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 1),

		ButtonGallery: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Secondary)).
			Bold(true).
			Padding(0, 1),

		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Background(lipgloss.Color(t.Surface)).
			Padding(0, 1),

		ChipActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		Tile: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)),

		TileActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Background(lipgloss.Color(t.SurfaceAlt)),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Secondary)).
			Padding(0, 2),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text          lipgloss.Style
	MutedText     lipgloss.Style
	FaintText     lipgloss.Style
	AccentText    lipgloss.Style
	SecondaryText lipgloss.Style
	DangerText    lipgloss.Style
	InfoText      lipgloss.Style

	// Hero
	Title       lipgloss.Style
	TitleAccent lipgloss.Style
	Heading     lipgloss.Style

	// Components
	Footer         lipgloss.Style
	Button         lipgloss.Style
	ButtonServices lipgloss.Style
	ButtonGallery  lipgloss.Style
	Chip           lipgloss.Style
	ChipActive     lipgloss.Style
	Card           lipgloss.Style
	Tile           lipgloss.Style
	TileActive     lipgloss.Style
	Modal          lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Amanecer": amanecerTheme(),
	"Nightfox": nightfoxTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Amanecer", "Nightfox", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return amanecerTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func amanecerTheme() Theme {
	// Night sky with amber and purple light rays.
	return Theme{
		Name: "Amanecer",

		Background: "#0a0a0f",
		Surface:    "#15151d",
		SurfaceAlt: "#22222c",

		Border:      "#2e2e3a",
		BorderFocus: "#fbbf24", // amber-400

		Text:      "#f5f5f7",
		Muted:     "#a1a1aa", // white/60
		Faint:     "#71717a", // white/40
		Accent:    "#f59e0b", // amber-500
		Secondary: "#a855f7", // purple-500
		Danger:    "#ef4444",
		Info:      "#60a5fa", // blue-400

		Markdown: styles.DraculaStyle,
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		Text:      "#cdcecf", // fg1
		Muted:     "#738091", // comment
		Faint:     "#71839b", // fg3
		Accent:    "#dbc074", // yellow
		Secondary: "#9d79d6", // magenta
		Danger:    "#c94f6d", // red
		Info:      "#63cdcf", // cyan

		Markdown: styles.TokyoNightStyle,
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:      "#f1f5f9", // slate-100
		Muted:     "#94a3b8", // slate-400
		Faint:     "#64748b", // slate-500
		Accent:    "#f59e0b", // amber-500
		Secondary: "#38bdf8", // sky-400
		Danger:    "#ef4444", // red-500
		Info:      "#06b6d4", // cyan-500

		Markdown: styles.DarkStyle,
	}
}
