package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cristosalva/cristosalva/internal/content"
	"github.com/cristosalva/cristosalva/internal/gallery"
)

const galleryIntro = "Explora los momentos más significativos de nuestra comunidad a través " +
	"de estas imágenes que capturan la esencia de nuestra fe y ministerio."

type chipZone struct {
	category string
	zone
}

// galleryLayout is the gallery section's geometry in screen coordinates.
// View and the mouse handlers both derive from it.
type galleryLayout struct {
	header    []string
	chipRows  []string
	chips     []chipZone
	gridTop   int
	cols      int
	tileWidth int
	margin    int // left edge of the grid, shifted by the drag offset
	firstRow  int
	rows      int // visible tile rows
	images    []content.Image
}

func (m Model) galleryLayout() galleryLayout {
	styles := m.theme.Styles()
	width := maxInt(m.width-2*HeroPadding, 10)

	gl := galleryLayout{
		images:   m.gallery.Filtered(),
		cols:     gridColumns(m.width),
		margin:   GridMargin + m.drag.cells(GridMargin),
		firstRow: m.gridScroll,
	}
	gl.header = append([]string{styles.Heading.Render("Nuestra Galería")},
		strings.Split(styles.MutedText.Width(width).Render(galleryIntro), "\n")...)

	chipTop := m.heroHeight() + len(gl.header) + 1
	gl.chipRows, gl.chips = m.layoutChips(styles, width, chipTop)
	gl.gridTop = chipTop + len(gl.chipRows) + 1

	gridWidth := m.width - 2*GridMargin
	gl.tileWidth = maxInt((gridWidth-(gl.cols-1)*TileGap)/gl.cols, 8)
	gl.rows = maxInt((m.bodyHeight()-gl.gridTop)/TileHeight, 1)
	return gl
}

// layoutChips wraps the category chips to width, starting at line y.
func (m Model) layoutChips(styles Styles, width, y int) ([]string, []chipZone) {
	var (
		rows  []string
		zones []chipZone
		cur   []string
		x     int
	)
	for _, cat := range m.categoryOptions() {
		label := cat
		if cat == gallery.All {
			label = m.site.AllLabel()
		}
		style := styles.Chip
		if cat == m.gallery.Category() {
			style = styles.ChipActive
		}
		chip := style.Render(label)
		w := lipgloss.Width(chip)
		if len(cur) > 0 && x+1+w > width {
			rows = append(rows, strings.Join(cur, " "))
			cur, x = nil, 0
		}
		if len(cur) > 0 {
			x++
		}
		zones = append(zones, chipZone{
			category: cat,
			zone:     zone{x0: HeroPadding + x, x1: HeroPadding + x + w, y: y + len(rows)},
		})
		cur = append(cur, chip)
		x += w
	}
	if len(cur) > 0 {
		rows = append(rows, strings.Join(cur, " "))
	}
	return rows, zones
}

func (gl galleryLayout) chipAt(x, y int) (string, bool) {
	for _, c := range gl.chips {
		if c.contains(x, y) {
			return c.category, true
		}
	}
	return "", false
}

// tileAt returns the id of the image whose tile covers (x, y).
func (gl galleryLayout) tileAt(x, y int) (int, bool) {
	if y < gl.gridTop || y >= gl.gridTop+gl.rows*TileHeight || x < gl.margin {
		return 0, false
	}
	dx := x - gl.margin
	stride := gl.tileWidth + TileGap
	col := dx / stride
	if col >= gl.cols || dx%stride >= gl.tileWidth {
		return 0, false
	}
	idx := (gl.firstRow+(y-gl.gridTop)/TileHeight)*gl.cols + col
	if idx >= len(gl.images) {
		return 0, false
	}
	return gl.images[idx].ID, true
}

func (gl galleryLayout) totalRows() int {
	return (len(gl.images) + gl.cols - 1) / gl.cols
}

// categoryOptions lists the chips in display order, "all" first.
func (m Model) categoryOptions() []string {
	return append([]string{gallery.All}, m.gallery.Categories()...)
}

func (m Model) renderGallery() string {
	if m.gallery == nil {
		return ""
	}
	styles := m.theme.Styles()
	gl := m.galleryLayout()
	pad := lipgloss.NewStyle().PaddingLeft(HeroPadding)

	parts := []string{
		pad.Render(strings.Join(gl.header, "\n")),
		"",
		pad.Render(strings.Join(gl.chipRows, "\n")),
		"",
	}
	if len(gl.images) == 0 {
		parts = append(parts, pad.Render(styles.FaintText.Render("No hay fotos en esta categoría.")))
		return strings.Join(parts, "\n")
	}

	hovered, hovering := m.gallery.Hovered()
	var gridRows []string
	for r := gl.firstRow; r < gl.firstRow+gl.rows; r++ {
		start := r * gl.cols
		if start >= len(gl.images) {
			break
		}
		var tiles []string
		for c := 0; c < gl.cols && start+c < len(gl.images); c++ {
			if c > 0 {
				tiles = append(tiles, strings.Repeat(" ", TileGap))
			}
			img := gl.images[start+c]
			tiles = append(tiles, m.renderTile(styles, img, gl.tileWidth, start+c == m.focus, hovering && hovered == img.ID))
		}
		gridRows = append(gridRows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	grid := lipgloss.NewStyle().PaddingLeft(gl.margin).Render(lipgloss.JoinVertical(lipgloss.Left, gridRows...))
	parts = append(parts, grid)
	return strings.Join(parts, "\n")
}

// renderTile draws one image tile. Hover shows the expand icon.
func (m Model) renderTile(styles Styles, img content.Image, width int, focused, hovered bool) string {
	inner := maxInt(width-2, 4)
	style := styles.Tile
	if focused || hovered {
		style = styles.TileActive
	}

	marker := " "
	if m.gallery.Liked(img.ID) {
		marker = "♥"
	}
	head := styles.FaintText.Render(padRight("▣ #"+strconv.Itoa(img.ID), inner-1)) + styles.DangerText.Render(marker)
	caption := styles.Text.Render(padRight(truncate(img.Caption, inner), inner))
	category := styles.SecondaryText.Render(padRight(truncate(img.Category, inner), inner))
	if hovered {
		category = styles.AccentText.Render(padRight(truncate("⤢ "+img.Category, inner), inner))
	}
	return style.Width(inner).Render(strings.Join([]string{head, caption, category}, "\n"))
}

// handleGalleryKey moves the focus cursor, selects categories and opens the
// focused tile.
func (m *Model) handleGalleryKey(msg tea.KeyMsg) {
	if m.gallery == nil {
		return
	}
	images := m.gallery.Filtered()
	n := len(images)
	cols := gridColumns(m.width)

	switch {
	case key.Matches(msg, m.keys.NextCategory):
		m.cycleCategory(1)
	case key.Matches(msg, m.keys.PrevCategory):
		m.cycleCategory(-1)
	case key.Matches(msg, m.keys.Category):
		m.selectCategoryIndex(int(msg.String()[0] - '0'))
	case n == 0:
		return
	case key.Matches(msg, m.keys.Left):
		if m.focus > 0 {
			m.focus--
		}
	case key.Matches(msg, m.keys.Right):
		if m.focus < n-1 {
			m.focus++
		}
	case key.Matches(msg, m.keys.Up):
		if m.focus-cols >= 0 {
			m.focus -= cols
		}
	case key.Matches(msg, m.keys.Down):
		if m.focus+cols < n {
			m.focus += cols
		}
	case key.Matches(msg, m.keys.Open):
		if m.focus < n {
			m.openImage(images[m.focus].ID)
		}
	}
	m.ensureFocusVisible()
}

func (m *Model) cycleCategory(delta int) {
	options := m.categoryOptions()
	cur := 0
	for i, c := range options {
		if c == m.gallery.Category() {
			cur = i
			break
		}
	}
	next := ((cur+delta)%len(options) + len(options)) % len(options)
	m.selectCategory(options[next])
}

func (m *Model) selectCategoryIndex(i int) {
	options := m.categoryOptions()
	if i < 0 || i >= len(options) {
		return
	}
	m.selectCategory(options[i])
}

func (m *Model) selectCategory(category string) {
	if m.gallery == nil || category == m.gallery.Category() {
		return
	}
	m.gallery.SetCategory(category)
	m.focus = 0
	m.gridScroll = 0
	m.syncLightbox()
}

// ensureFocusVisible clamps the focus to the filtered set and scrolls the
// grid so the focused row is shown.
func (m *Model) ensureFocusVisible() {
	if m.gallery == nil {
		return
	}
	n := len(m.gallery.Filtered())
	if m.focus >= n {
		m.focus = n - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
	if !m.ready {
		return
	}
	gl := m.galleryLayout()
	row := m.focus / gl.cols
	if row < m.gridScroll {
		m.gridScroll = row
	}
	if row >= m.gridScroll+gl.rows {
		m.gridScroll = row - gl.rows + 1
	}
	m.clampScroll(gl)
}

func (m *Model) scrollGrid(delta int) {
	if m.gallery == nil {
		return
	}
	m.gridScroll += delta
	m.clampScroll(m.galleryLayout())
}

func (m *Model) clampScroll(gl galleryLayout) {
	maxScroll := maxInt(gl.totalRows()-gl.rows, 0)
	if m.gridScroll > maxScroll {
		m.gridScroll = maxScroll
	}
	if m.gridScroll < 0 {
		m.gridScroll = 0
	}
}

// handleGalleryMouse implements hover, click and drag over the grid. A press
// followed by motion is a pan; the release ends it and schedules the settle
// tick, and clicks are refused until that tick arrives.
func (m Model) handleGalleryMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.gallery == nil {
		return m, nil
	}
	gl := m.galleryLayout()

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if cat, ok := gl.chipAt(msg.X, msg.Y); ok {
				m.selectCategory(cat)
				return m, nil
			}
			id, _ := gl.tileAt(msg.X, msg.Y)
			m.pointer = pointerState{pressed: true, x: msg.X, y: msg.Y, tile: id}
		case tea.MouseButtonWheelUp:
			m.scrollGrid(-1)
		case tea.MouseButtonWheelDown:
			m.scrollGrid(1)
		}

	case tea.MouseActionMotion:
		if m.pointer.pressed {
			dx, dy := msg.X-m.pointer.x, msg.Y-m.pointer.y
			if !m.pointer.panning && (absInt(dx) > PanThreshold || absInt(dy) > PanThreshold) {
				m.pointer.panning = true
				m.gallery.PanStart()
			}
			if m.pointer.panning {
				m.drag.target = float64(dx)
			}
		}
		m.hoverAt(gl, msg.X, msg.Y)

	case tea.MouseActionRelease:
		if !m.pointer.pressed {
			return m, nil
		}
		p := m.pointer
		m.pointer = pointerState{}

		var cmd tea.Cmd
		if p.panning {
			m.drag.target = 0
			cmd = settleCmd(m.dragSettle, m.gallery, m.gallery.PanEnd())
		}
		if id, ok := gl.tileAt(msg.X, msg.Y); ok && id == p.tile {
			m.openImage(id)
		}
		return m, cmd
	}
	return m, nil
}

// hoverAt moves the hover state to the tile under (x, y), if any.
func (m *Model) hoverAt(gl galleryLayout, x, y int) {
	cur, hovering := m.gallery.Hovered()
	id, ok := gl.tileAt(x, y)
	switch {
	case ok && (!hovering || cur != id):
		if hovering {
			m.gallery.Leave(cur)
		}
		m.gallery.Hover(id)
	case !ok && hovering:
		m.gallery.Leave(cur)
	}
}
