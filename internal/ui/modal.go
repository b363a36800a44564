package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cristosalva/cristosalva/internal/gallery"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// lightboxModal shows the gallery's open image. Navigation keys reach the
// controller through its keyboard claim before the modal sees them; the
// modal handles the remaining actions and closes once the controller does.
type lightboxModal struct {
	ctrl  *gallery.Controller
	share func(string) error
	scale float64
}

func newLightbox(ctrl *gallery.Controller, share func(string) error) lightboxModal {
	return lightboxModal{ctrl: ctrl, share: share, scale: lightboxStartScale}
}

func (l lightboxModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	var cmd tea.Cmd
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, keys.Like):
			l.ctrl.ToggleLike()
		case key.Matches(km, keys.Share):
			if img, ok := l.ctrl.Current(); ok {
				cmd = shareCmd(l.share, img.Source)
			}
		}
	}
	return l, cmd, !l.ctrl.IsOpen()
}

func (l lightboxModal) View(theme Theme, width, height int) string {
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		l.box(theme, width, height),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

// rect is a screen region; x1 and y1 are exclusive.
type rect struct {
	x0, y0, x1, y1 int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

// bounds returns where View places the box on a width x height screen.
func (l lightboxModal) bounds(theme Theme, width, height int) rect {
	box := l.box(theme, width, height)
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	x0 := maxInt((width-w)/2, 0)
	y0 := maxInt((height-h)/2, 0)
	return rect{x0: x0, y0: y0, x1: x0 + w, y1: y0 + h}
}

// Click regions inside the box, measured from its edges.
const (
	lightboxArrowZone = 5
	lightboxCloseRows = 2
)

func (l lightboxModal) box(theme Theme, width, height int) string {
	styles := theme.Styles()
	img, ok := l.ctrl.Current()
	if !ok {
		return ""
	}
	inner := lightboxWidth(width, l.scale)
	rows := lightboxArtRows(height)

	var lines []string
	lines = append(lines, padRight("", inner-1)+styles.Text.Render("✕"))

	artWidth := maxInt(inner-4, 1)
	mid := rows / 2
	for r := 0; r < rows; r++ {
		var art string
		if r == mid {
			art = styles.MutedText.Render(center("▣ "+truncate(img.Source, artWidth-4), artWidth))
			lines = append(lines, styles.SecondaryText.Render("‹ ")+art+styles.SecondaryText.Render(" ›"))
			continue
		}
		art = styles.FaintText.Render(strings.Repeat("░", artWidth))
		lines = append(lines, "  "+art+"  ")
	}
	lines = append(lines, "")

	lines = append(lines, styles.Heading.Render(truncate(img.Caption, inner)))

	idx, total := l.ctrl.Position()
	position := fmt.Sprintf("%d / %d", idx, total)
	category := truncate("Categoría: "+img.Category, maxInt(inner-len(position)-1, 1))
	gap := maxInt(inner-lipgloss.Width(category)-len(position), 1)
	lines = append(lines, styles.MutedText.Render(category)+strings.Repeat(" ", gap)+styles.FaintText.Render(position))
	lines = append(lines, "")

	like := styles.MutedText.Render("♡ Me gusta (f)")
	if l.ctrl.Liked(img.ID) {
		like = styles.DangerText.Render("♥ Te gusta (f)")
	}
	share := styles.MutedText.Render("⇪ Compartir (y)")
	lines = append(lines, like+"   "+share)

	return styles.Modal.Width(inner + 4).Render(strings.Join(lines, "\n"))
}

// lightboxWidth returns the box's content width at the given entrance scale.
func lightboxWidth(width int, scale float64) int {
	w := minInt(width-8, 72)
	w = int(math.Round(float64(w) * scale))
	return maxInt(w, 20)
}

func lightboxArtRows(height int) int {
	rows := height - 14
	if rows < 3 {
		return 3
	}
	if rows > 12 {
		return 12
	}
	return rows
}
