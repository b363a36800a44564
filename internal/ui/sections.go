package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/cristosalva/cristosalva/internal/content"
	"github.com/cristosalva/cristosalva/internal/hero"
)

// markdownStylePlain renders prose without escape sequences.
const markdownStylePlain = "notty"

// refreshViewport resizes the section viewport and renders the active
// section into it.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	width := maxInt(m.width-2*HeroPadding, 10)
	m.viewport.Width = m.width
	m.viewport.Height = maxInt(m.bodyHeight()-m.heroHeight(), 3)

	var body string
	switch m.panel {
	case hero.PanelServices:
		body = renderServices(m.theme.Styles(), m.site, width)
	case hero.PanelAbout:
		body = m.aboutContent(width)
	default:
		return
	}
	m.viewport.SetContent(lipgloss.NewStyle().PaddingLeft(HeroPadding).Render(body))
}

// aboutContent renders the about section in the theme's markdown style,
// reusing the previous render while the width and style are unchanged.
func (m *Model) aboutContent(width int) string {
	style := m.theme.Markdown
	if m.about == "" || m.aboutFor != width || m.aboutStyle != style {
		out, err := renderMarkdown(aboutMarkdown(m.site), width, style)
		if err != nil {
			m.log.Warn().Err(err).Msg("render about section failed")
			out = aboutMarkdown(m.site)
		}
		m.about, m.aboutFor, m.aboutStyle = out, width, style
	}
	styles := m.theme.Styles()
	return styles.Heading.Render("Conoce Más Sobre Nosotros") + "\n" + m.about
}

// renderServices lays out the service cards, two per row on wide terminals.
func renderServices(styles Styles, site content.Site, width int) string {
	cols := minInt(gridColumns(width+2*HeroPadding), 2)
	cardWidth := (width - (cols-1)*2) / cols

	cards := make([]string, 0, len(site.Services))
	for _, svc := range site.Services {
		bodyWidth := maxInt(cardWidth-4, 8)
		body := strings.Join([]string{
			styles.Heading.Render(truncate(svc.Title, bodyWidth)),
			styles.AccentText.Render(truncate(svc.Day+" · "+svc.Time, bodyWidth)),
			styles.FaintText.Render(truncate(svc.Location, bodyWidth)),
			"",
			styles.MutedText.Width(bodyWidth).Render(svc.Description),
		}, "\n")
		cards = append(cards, styles.Card.Width(maxInt(cardWidth-2, 10)).Render(body))
	}

	rows := []string{styles.Heading.Render("Nuestros Servicios y Actividades"), ""}
	for i := 0; i < len(cards); i += cols {
		end := minInt(i+cols, len(cards))
		row := cards[i:end]
		if len(row) == 1 {
			rows = append(rows, row[0])
			continue
		}
		joined := make([]string, 0, 2*len(row)-1)
		for j, c := range row {
			if j > 0 {
				joined = append(joined, "  ")
			}
			joined = append(joined, c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, joined...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// aboutMarkdown builds the mission, vision and contact document.
func aboutMarkdown(site content.Site) string {
	var b strings.Builder
	if site.About.Mission != "" {
		fmt.Fprintf(&b, "## Nuestra Misión\n\n%s\n\n", site.About.Mission)
	}
	if site.About.Vision != "" {
		fmt.Fprintf(&b, "## Nuestra Visión\n\n%s\n\n", site.About.Vision)
	}

	c := site.Contact
	var items []string
	if c.Address != "" {
		items = append(items, "- **Dirección:** "+c.Address)
	}
	if c.Phone != "" {
		items = append(items, "- **Teléfono:** "+c.Phone)
	}
	if c.Email != "" {
		items = append(items, "- **Correo:** "+c.Email)
	}
	if len(c.Social) > 0 {
		items = append(items, "- **Redes:** "+strings.Join(c.Social, " · "))
	}
	if len(items) > 0 {
		b.WriteString("## Contáctanos\n\n")
		b.WriteString(strings.Join(items, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}

func renderMarkdown(md string, width int, style string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}
