package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cristosalva/cristosalva/internal/globe"
	"github.com/cristosalva/cristosalva/internal/hero"
)

// zone is a single-row click target; x1 is exclusive.
type zone struct {
	x0, x1, y int
}

func (z zone) contains(x, y int) bool {
	return y == z.y && x >= z.x0 && x < z.x1
}

type heroButton struct {
	panel hero.Panel
	zone
}

type heroButtonSpec struct {
	panel hero.Panel
	key   string
	label string
	short string
}

var heroButtonDefs = []heroButtonSpec{
	{hero.PanelServices, "s", "Nuestros Servicios", "Servicios"},
	{hero.PanelGallery, "g", "Galería de Fotos", "Galería"},
	{hero.PanelAbout, "a", "Conoce Más", "Más"},
}

// renderHero renders the title block, the section buttons and, when room
// allows, the globe. It also returns the button click zones.
func (m Model) renderHero() (string, []heroButton) {
	styles := m.theme.Styles()

	globeLines := m.globeLines()
	textWidth := m.width - 2*HeroPadding
	if len(globeLines) > 0 {
		textWidth -= lipgloss.Width(globeLines[0]) + 2
	}
	textWidth = maxInt(textWidth, 10)

	lines := []string{""}
	title := styles.Title.Render(m.site.Title)
	if m.site.Subtitle != "" {
		title += " " + styles.TitleAccent.Render(m.site.Subtitle)
	}
	lines = append(lines, title)
	if m.site.Place != "" {
		lines = append(lines, styles.SecondaryText.Italic(true).Render(m.site.Place))
	}
	lines = append(lines, "")
	if m.site.Tagline != "" {
		tagline := styles.MutedText.Width(textWidth).Render(m.site.Tagline)
		lines = append(lines, strings.Split(tagline, "\n")...)
		lines = append(lines, "")
	}

	row, buttons := m.renderHeroButtons(len(lines))
	lines = append(lines, row, "")

	view := lipgloss.NewStyle().PaddingLeft(HeroPadding).Render(strings.Join(lines, "\n"))
	if len(globeLines) > 0 {
		g := styles.SecondaryText.Render(strings.Join(globeLines, "\n"))
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, "  ", g)
	}
	return view, buttons
}

// renderHeroButtons renders the button row placed at line y of the hero.
// The active section's button reads "Cerrar".
func (m Model) renderHeroButtons(y int) (string, []heroButton) {
	styles := m.theme.Styles()
	compact := m.width < LayoutCompactWidth

	x := HeroPadding
	parts := make([]string, 0, len(heroButtonDefs))
	zones := make([]heroButton, 0, len(heroButtonDefs))
	for _, def := range heroButtonDefs {
		label := ternary(compact, def.short, def.label)
		if m.panel == def.panel {
			label = "✕ Cerrar"
		}
		rendered := m.buttonStyle(styles, def.panel).Render(def.key + " " + label)
		w := lipgloss.Width(rendered)
		zones = append(zones, heroButton{panel: def.panel, zone: zone{x0: x, x1: x + w, y: y}})
		parts = append(parts, rendered)
		x += w + 2
	}
	return strings.Join(parts, "  "), zones
}

func (m Model) buttonStyle(styles Styles, p hero.Panel) lipgloss.Style {
	switch p {
	case hero.PanelServices:
		return styles.ButtonServices
	case hero.PanelGallery:
		return styles.ButtonGallery
	default:
		return styles.Button
	}
}

// heroButtonAt returns the section whose button is at (x, y).
func (m Model) heroButtonAt(x, y int) (hero.Panel, bool) {
	_, buttons := m.renderHero()
	for _, b := range buttons {
		if b.contains(x, y) {
			return b.panel, true
		}
	}
	return hero.PanelNone, false
}

// heroHeight is the number of lines above the active section.
func (m Model) heroHeight() int {
	view, _ := m.renderHero()
	return lipgloss.Height(view)
}

func (m Model) globeVisible() bool {
	return m.prefs.ShowGlobe && m.globe != nil && m.width >= LayoutGlobeWidth
}

func (m Model) globeLines() []string {
	if !m.globeVisible() {
		return nil
	}
	size := globe.Size(m.width/3, m.globeMax)
	return m.globe.Render(m.spinner.Angle, size)
}
