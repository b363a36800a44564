package ui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/cristosalva/cristosalva/internal/config"
	"github.com/cristosalva/cristosalva/internal/content"
	"github.com/cristosalva/cristosalva/internal/hero"
	"github.com/cristosalva/cristosalva/internal/input"
	"github.com/cristosalva/cristosalva/internal/prefs"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClipboard struct {
	copied []string
	err    error
}

func (f *fakeClipboard) write(s string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, s)
	return nil
}

func newTestModel(t *testing.T, mutate ...func(*Options)) Model {
	t.Helper()
	site, err := content.Default()
	require.NoError(t, err)

	opts := Options{
		Site:      site,
		Config:    config.Defaults(),
		Prefs:     prefs.Prefs{Theme: "Amanecer", ShowGlobe: false},
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
		Logger:    zerolog.Nop(),
		Bus:       &input.Bus{},
		Clipboard: (&fakeClipboard{}).write,
	}
	for _, fn := range mutate {
		fn(&opts)
	}
	m := New(opts)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return out, cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, keyMsg(k))
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func currentID(t *testing.T, m Model) int {
	t.Helper()
	require.NotNil(t, m.gallery)
	img, ok := m.gallery.Current()
	require.True(t, ok, "lightbox should be open")
	return img.ID
}

func TestSectionButtonsToggle(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, hero.PanelNone, m.panel)

	m = press(t, m, "s")
	assert.Equal(t, hero.PanelServices, m.panel)

	m = press(t, m, "s")
	assert.Equal(t, hero.PanelNone, m.panel, "pressing the open section closes it")

	m = press(t, m, "s", "g")
	assert.Equal(t, hero.PanelGallery, m.panel, "gallery while services switches directly")
	assert.NotNil(t, m.gallery)

	m = press(t, m, "a")
	assert.Equal(t, hero.PanelAbout, m.panel)
	assert.Nil(t, m.gallery, "leaving the gallery unmounts it")

	m = press(t, m, "esc")
	assert.Equal(t, hero.PanelNone, m.panel)
}

func TestStartPanelMountsGallery(t *testing.T) {
	m := newTestModel(t, func(o *Options) { o.StartPanel = hero.PanelGallery })
	assert.Equal(t, hero.PanelGallery, m.panel)
	require.NotNil(t, m.gallery)
	assert.Len(t, m.gallery.Filtered(), 8)
}

func TestLightboxKeyboardScenario(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "g", "right", "right", "enter")
	assert.Equal(t, 3, currentID(t, m))
	assert.Equal(t, 1, m.bus.Active(), "open lightbox holds the keyboard")
	assert.NotNil(t, m.modal)

	m = press(t, m, "right", "right", "left")
	assert.Equal(t, 4, currentID(t, m))
	assert.Equal(t, 3, m.focus, "grid focus follows the lightbox")

	m = press(t, m, "esc")
	assert.False(t, m.gallery.IsOpen())
	assert.Nil(t, m.modal)
	assert.Equal(t, 0, m.bus.Active())
	assert.Equal(t, hero.PanelGallery, m.panel, "esc closes only the lightbox")
}

func TestLightboxSwallowsOtherKeys(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "g", "enter")
	require.True(t, m.gallery.IsOpen())

	m = press(t, m, "s", "tab", "q")
	assert.Equal(t, hero.PanelGallery, m.panel)
	assert.True(t, m.gallery.IsOpen())
	assert.Equal(t, "", m.gallery.Category())

	_, cmd := update(t, m, keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	_, quit := cmd().(tea.QuitMsg)
	assert.True(t, quit)
}

func TestUnmountReleasesKeyboard(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "g", "enter")
	require.Equal(t, 1, m.bus.Active())

	m.setPanel(hero.PanelNone)
	assert.Equal(t, 0, m.bus.Active())
	assert.Nil(t, m.gallery)
	assert.Nil(t, m.modal)

	m = press(t, m, "g")
	require.NotNil(t, m.gallery)
	assert.False(t, m.gallery.IsOpen(), "remounted gallery starts closed")
}

func TestCategoryKeys(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "g", "tab")
	assert.Equal(t, "Cultos", m.gallery.Category())
	for _, img := range m.gallery.Filtered() {
		assert.Equal(t, "Cultos", img.Category)
	}

	m = press(t, m, "shift+tab")
	assert.Equal(t, "", m.gallery.Category())

	m = press(t, m, "2")
	assert.Equal(t, "Jóvenes", m.gallery.Category())
	assert.Equal(t, 0, m.focus)

	m = press(t, m, "0")
	assert.Equal(t, "", m.gallery.Category())
	assert.Len(t, m.gallery.Filtered(), 8)
}

func TestGridFocusMovement(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "g")
	require.Equal(t, 3, gridColumns(m.width))

	m = press(t, m, "down")
	assert.Equal(t, 3, m.focus)
	m = press(t, m, "l", "l")
	assert.Equal(t, 5, m.focus)
	m = press(t, m, "down")
	assert.Equal(t, 5, m.focus, "no tile below the last row")
	m = press(t, m, "up", "k")
	assert.Equal(t, 2, m.focus, "up stops at the first row")
	m = press(t, m, "h", "h", "h")
	assert.Equal(t, 0, m.focus)
}

func TestMouseClickOpensTile(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "g")
	gl := m.galleryLayout()

	x, y := gl.margin+gl.tileWidth+TileGap+2, gl.gridTop+1
	m, _ = update(t, m, mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
	m, _ = update(t, m, mouse(x, y, tea.MouseActionRelease, tea.MouseButtonLeft))
	assert.Equal(t, 2, currentID(t, m))
}

func TestMouseJitterStillClicks(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "g")
	gl := m.galleryLayout()
	x, y := gl.margin+2, gl.gridTop+2

	m, _ = update(t, m, mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
	m, _ = update(t, m, mouse(x+1, y, tea.MouseActionMotion, tea.MouseButtonLeft))
	m, _ = update(t, m, mouse(x+1, y-1, tea.MouseActionMotion, tea.MouseButtonLeft))
	assert.False(t, m.gallery.Dragging(), "one cell of movement is not a pan")

	m, _ = update(t, m, mouse(x+1, y, tea.MouseActionRelease, tea.MouseButtonLeft))
	assert.Equal(t, 1, currentID(t, m))
}

func TestDragSuppressesClickUntilSettled(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "g")
	gl := m.galleryLayout()
	x, y := gl.margin+2, gl.gridTop+2

	m, _ = update(t, m, mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
	m, _ = update(t, m, mouse(x+3, y, tea.MouseActionMotion, tea.MouseButtonLeft))
	assert.True(t, m.gallery.Dragging())
	assert.Equal(t, 3.0, m.drag.target)

	m, cmd := update(t, m, mouse(x, y, tea.MouseActionRelease, tea.MouseButtonLeft))
	require.NotNil(t, cmd, "release schedules the settle tick")
	assert.False(t, m.gallery.IsOpen(), "release after a pan is not a click")
	assert.Equal(t, 0.0, m.drag.target)

	// A click before the settle tick is ignored.
	m, _ = update(t, m, mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
	m, _ = update(t, m, mouse(x, y, tea.MouseActionRelease, tea.MouseButtonLeft))
	assert.False(t, m.gallery.IsOpen())

	m, _ = update(t, m, dragSettledMsg{ctrl: m.gallery, token: m.gallery.PanEnd()})
	assert.False(t, m.gallery.Dragging())

	m, _ = update(t, m, mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
	m, _ = update(t, m, mouse(x, y, tea.MouseActionRelease, tea.MouseButtonLeft))
	assert.Equal(t, 1, currentID(t, m))
}

func TestStaleSettleIgnored(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "g")
	old := m.gallery
	m.gallery.PanStart()
	token := m.gallery.PanEnd()

	// A settle from a previous gallery instance does nothing.
	m = press(t, m, "g", "g")
	require.NotSame(t, old, m.gallery)
	m.gallery.PanStart()
	m, _ = update(t, m, dragSettledMsg{ctrl: old, token: token})
	assert.True(t, m.gallery.Dragging())

	// Neither does one issued before the latest gesture began.
	stale := m.gallery.PanEnd()
	m.gallery.PanStart()
	m, _ = update(t, m, dragSettledMsg{ctrl: m.gallery, token: stale})
	assert.True(t, m.gallery.Dragging())
}

func TestHoverFollowsPointer(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "g")
	gl := m.galleryLayout()

	m, _ = update(t, m, mouse(gl.margin+1, gl.gridTop+TileHeight+1, tea.MouseActionMotion, tea.MouseButtonNone))
	id, ok := m.gallery.Hovered()
	assert.True(t, ok)
	assert.Equal(t, 4, id)

	m, _ = update(t, m, mouse(gl.margin+1, gl.gridTop+1, tea.MouseActionMotion, tea.MouseButtonNone))
	id, ok = m.gallery.Hovered()
	assert.True(t, ok)
	assert.Equal(t, 1, id)

	m, _ = update(t, m, mouse(0, 0, tea.MouseActionMotion, tea.MouseButtonNone))
	_, ok = m.gallery.Hovered()
	assert.False(t, ok)
}

func TestMouseSelectsChipAndButtons(t *testing.T) {
	m := newTestModel(t)

	_, buttons := m.renderHero()
	require.Len(t, buttons, 3)
	g := buttons[1]
	require.Equal(t, hero.PanelGallery, g.panel)
	m, _ = update(t, m, mouse(g.x0+1, g.y, tea.MouseActionPress, tea.MouseButtonLeft))
	assert.Equal(t, hero.PanelGallery, m.panel)

	gl := m.galleryLayout()
	require.Len(t, gl.chips, 9)
	chip := gl.chips[2]
	m, _ = update(t, m, mouse(chip.x0, chip.y, tea.MouseActionPress, tea.MouseButtonLeft))
	assert.Equal(t, "Jóvenes", m.gallery.Category())

	_, buttons = m.renderHero()
	m, _ = update(t, m, mouse(buttons[1].x0, buttons[1].y, tea.MouseActionPress, tea.MouseButtonLeft))
	assert.Equal(t, hero.PanelNone, m.panel, "the gallery button reads Cerrar while open")
}

func TestLightboxMouse(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "g", "enter")
	lb, ok := m.modal.(lightboxModal)
	require.True(t, ok)
	r := lb.bounds(m.theme, m.width, m.bodyHeight())
	mid := (r.y0 + r.y1) / 2

	m, _ = update(t, m, mouse(r.x1-2, mid, tea.MouseActionPress, tea.MouseButtonLeft))
	assert.Equal(t, 2, currentID(t, m))
	m, _ = update(t, m, mouse(r.x0+1, mid, tea.MouseActionPress, tea.MouseButtonLeft))
	m, _ = update(t, m, mouse(r.x0+1, mid, tea.MouseActionPress, tea.MouseButtonLeft))
	assert.Equal(t, 8, currentID(t, m), "previous wraps to the last image")

	m, _ = update(t, m, mouse(0, 0, tea.MouseActionPress, tea.MouseButtonLeft))
	assert.False(t, m.gallery.IsOpen(), "clicking the backdrop closes")
	assert.Equal(t, 0, m.bus.Active())
}

func TestLikeAndShare(t *testing.T) {
	clip := &fakeClipboard{}
	m := newTestModel(t, func(o *Options) { o.Clipboard = clip.write })
	m = press(t, m, "g", "enter", "f")
	assert.True(t, m.gallery.Liked(1))

	m, cmd := update(t, m, keyMsg("y"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, []string{"/placeholder.svg?height=600&width=800"}, clip.copied)
	assert.Equal(t, "Enlace copiado", m.status)
	assert.False(t, m.statusErr)
	assert.Contains(t, m.renderFooter(), "Enlace copiado")

	m, _ = update(t, m, frameMsg(time.Now().Add(StatusDuration+time.Second)))
	assert.Empty(t, m.status, "status expires")
}

func TestShareFailureShownInFooter(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no clipboard utility")}
	m := newTestModel(t, func(o *Options) { o.Clipboard = clip.write })
	m = press(t, m, "g", "enter")

	m, cmd := update(t, m, keyMsg("y"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.True(t, m.statusErr)
	assert.Contains(t, m.renderFooter(), "No se pudo copiar")
}

func TestThemeAndGlobePersist(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "T")
	assert.Equal(t, "Nightfox", m.theme.Name)
	assert.Equal(t, "Nightfox", prefs.Load(m.prefsPath).Theme)

	m = press(t, m, "G")
	assert.True(t, m.prefs.ShowGlobe)
	assert.True(t, prefs.Load(m.prefsPath).ShowGlobe)
}

func TestAboutFollowsThemeMarkdownStyle(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "a")
	assert.Equal(t, GetTheme("Amanecer").Markdown, m.aboutStyle)
	assert.Contains(t, m.about, "Misión")

	m = press(t, m, "T")
	assert.Equal(t, GetTheme("Nightfox").Markdown, m.aboutStyle, "theme change re-renders the about section")
	assert.Contains(t, m.about, "Misión")
}

func TestFrameAdvancesAnimation(t *testing.T) {
	m := newTestModel(t, func(o *Options) { o.Prefs.ShowGlobe = true })
	m = press(t, m, "g", "enter")
	lb := m.modal.(lightboxModal)
	assert.InDelta(t, lightboxStartScale, lb.scale, 1e-9)

	now := time.Now()
	for i := 0; i < 90; i++ {
		m, _ = update(t, m, frameMsg(now))
	}
	lb = m.modal.(lightboxModal)
	assert.InDelta(t, 1.0, lb.scale, 0.01)
	assert.InDelta(t, 90*config.Defaults().Globe.RotationPerFrame, m.spinner.Angle, 1e-6)
}

func TestDragOffsetSpringsBack(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "g")
	m.drag.target = 4
	now := time.Now()
	for i := 0; i < 30; i++ {
		m, _ = update(t, m, frameMsg(now))
	}
	assert.Equal(t, 4, m.drag.cells(GridMargin))

	m.drag.target = 0
	for i := 0; i < 90; i++ {
		m, _ = update(t, m, frameMsg(now))
	}
	assert.Equal(t, 0, m.drag.cells(GridMargin))
}

func TestViewFitsScreen(t *testing.T) {
	m := newTestModel(t, func(o *Options) { o.Prefs.ShowGlobe = true })
	assert.Contains(t, m.View(), "Cristo")

	for _, k := range []string{"s", "a", "g"} {
		m = press(t, m, k)
		assert.LessOrEqual(t, lipgloss.Height(m.View()), m.height, "panel %s", m.panel)
	}

	m = press(t, m, "enter")
	view := m.View()
	assert.LessOrEqual(t, lipgloss.Height(view), m.height)
	assert.Contains(t, view, "Categoría: Cultos")
	assert.Contains(t, view, "1 / 8")

	m = press(t, m, "esc", "?")
	assert.Contains(t, m.View(), "Atajos de teclado")
	m = press(t, m, "x")
	assert.False(t, m.showHelp)
}

func TestHelpOverlayListsKeyMap(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "?")
	view := m.View()

	groups := m.keys.FullHelp()
	require.Len(t, groups, len(helpTitles))
	for i, group := range groups {
		assert.Contains(t, view, helpTitles[i])
		for _, b := range group {
			assert.Contains(t, view, b.Help().Desc)
		}
	}
}

func TestGalleryViewMatchesLayout(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "g")
	gl := m.galleryLayout()

	lines := strings.Split(m.View(), "\n")
	require.Greater(t, len(lines), gl.gridTop)
	row := []rune(lines[gl.gridTop])
	require.Greater(t, len(row), gl.margin)
	assert.Equal(t, '╭', row[gl.margin], "first tile starts where hit-testing expects")
}

func TestServicesViewListsServices(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "s")
	view := m.View()
	assert.Contains(t, view, "Nuestros Servicios y Actividades")
	assert.Contains(t, view, "Culto Dominical")
}

func TestRenderStatic(t *testing.T) {
	site, err := content.Default()
	require.NoError(t, err)

	out, err := RenderStatic(site, 100)
	require.NoError(t, err)
	assert.Contains(t, out, "Cristo")
	assert.Contains(t, out, "Culto Dominical")
	assert.Contains(t, out, "Salón Principal")
	assert.Contains(t, out, "Nuestra Galería")
	assert.Contains(t, out, "Culto dominical con la congregación")
}

func TestGalleryTable(t *testing.T) {
	site, err := content.Default()
	require.NoError(t, err)

	out := GalleryTable(site.Images()[:2], GetTheme("Slate"))
	assert.Contains(t, out, "Categoría")
	assert.Contains(t, out, "Cultos")
	assert.Contains(t, out, "Jóvenes")
	assert.NotContains(t, out, "Estudios")
}
