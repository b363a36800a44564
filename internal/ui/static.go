package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cristosalva/cristosalva/internal/content"
)

// RenderStatic renders every section of the page one after another, for
// output that is not an interactive terminal.
func RenderStatic(site content.Site, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	styles := GetTheme("").Styles()
	inner := maxInt(width-2*HeroPadding, 20)

	about, err := renderMarkdown(aboutMarkdown(site), inner, markdownStylePlain)
	if err != nil {
		return "", err
	}

	header := styles.Title.Render(site.Title)
	if site.Subtitle != "" {
		header += " " + styles.TitleAccent.Render(site.Subtitle)
	}
	if site.Place != "" {
		header += "\n" + styles.SecondaryText.Render(site.Place)
	}
	if site.Tagline != "" {
		header += "\n\n" + styles.MutedText.Width(inner).Render(site.Tagline)
	}

	sections := []string{
		header,
		renderServices(styles, site, inner),
		styles.Heading.Render("Conoce Más Sobre Nosotros") + "\n" + about,
		styles.Heading.Render("Nuestra Galería") + "\n\n" + GalleryTable(site.Images(), GetTheme("")),
	}
	return lipgloss.NewStyle().PaddingLeft(HeroPadding).Render(strings.Join(sections, "\n\n")) + "\n", nil
}

// GalleryTable renders images as a table in the given theme.
func GalleryTable(images []content.Image, theme Theme) string {
	styles := theme.Styles()
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Border))).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.AccentText.Bold(true).Padding(0, 1)
			case col == 1:
				return styles.SecondaryText.Padding(0, 1)
			default:
				return styles.Text.Padding(0, 1)
			}
		}).
		Headers("ID", "Categoría", "Descripción", "Fuente")
	for _, img := range images {
		t.Row(strconv.Itoa(img.ID), img.Category, img.Caption, img.Source)
	}
	return t.Render()
}
