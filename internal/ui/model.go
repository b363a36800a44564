package ui

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/cristosalva/cristosalva/internal/config"
	"github.com/cristosalva/cristosalva/internal/content"
	"github.com/cristosalva/cristosalva/internal/gallery"
	"github.com/cristosalva/cristosalva/internal/globe"
	"github.com/cristosalva/cristosalva/internal/hero"
	"github.com/cristosalva/cristosalva/internal/input"
	"github.com/cristosalva/cristosalva/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Site       content.Site
	Config     config.Config
	Prefs      prefs.Prefs
	PrefsPath  string
	StartPanel hero.Panel
	Logger     zerolog.Logger
	Bus        *input.Bus
	Globe      globe.Renderer
	Clipboard  func(string) error
}

// pointerState tracks a left-button gesture over the gallery grid.
type pointerState struct {
	pressed bool
	panning bool
	x, y    int
	tile    int // id under the press, 0 for none
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx           context.Context
	site          content.Site
	log           zerolog.Logger
	prefsPath     string
	prefs         prefs.Prefs
	dragSettle    time.Duration
	frameInterval time.Duration
	globeMax      int

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	// Sections
	panel      hero.Panel
	viewport   viewport.Model
	about      string // rendered markdown, cached per width and style
	aboutFor   int
	aboutStyle string

	// Gallery state; gallery is nil unless the gallery panel is shown.
	bus        *input.Bus
	gallery    *gallery.Controller
	focus      int
	gridScroll int
	modal      Modal
	pointer    pointerState

	// Animation
	globe   globe.Renderer
	spinner globe.Spinner
	drag    spring
	zoom    spring

	// Footer status
	clipboard   func(string) error
	status      string
	statusErr   bool
	statusUntil time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := opts.Config
	if cfg.FrameRate <= 0 {
		cfg = config.Defaults()
	}

	p := opts.Prefs
	if p.Theme == "" {
		p.Theme = prefs.Defaults().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	bus := opts.Bus
	if bus == nil {
		bus = &input.Bus{}
	}

	renderer := opts.Globe
	if renderer == nil {
		renderer = globe.NewASCII()
	}

	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	m := Model{
		ctx:           ctx,
		site:          opts.Site,
		log:           opts.Logger.With().Str("component", "ui").Logger(),
		prefsPath:     prefsPath,
		prefs:         p,
		dragSettle:    cfg.DragSettle,
		frameInterval: cfg.FrameInterval(),
		globeMax:      cfg.Globe.MaxSize,
		theme:         GetTheme(p.Theme),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		bus:           bus,
		globe:         renderer,
		spinner:       globe.Spinner{Rate: cfg.Globe.RotationPerFrame},
		drag:          newSpring(cfg.FrameRate, dragStiffness, dragDamping),
		zoom:          newSpring(cfg.FrameRate, lightboxStiffness, lightboxDamping),
		clipboard:     copyFn,
		viewport:      viewport.New(0, 0),
	}
	m.zoom.snap(1)
	m.applyHelpStyles()
	if opts.StartPanel != hero.PanelNone {
		m.setPanel(opts.StartPanel)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.frameInterval)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.refreshViewport()
		m.ensureFocusVisible()
		return m, nil

	case frameMsg:
		return m.handleFrame(time.Time(msg))

	case dragSettledMsg:
		if m.gallery != nil && msg.ctrl == m.gallery && m.gallery.Settle(msg.token) {
			m.log.Debug().Uint64("token", msg.token).Msg("drag settled")
		}
		return m, nil

	case shareResultMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Str("source", msg.source).Msg("copy to clipboard failed")
			m.setStatus("No se pudo copiar el enlace", true)
			return m, nil
		}
		m.setStatus("Enlace copiado", false)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Cargando..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	body := m.bodyHeight()
	var main string
	if m.modal != nil {
		main = m.modal.View(m.theme, m.width, body)
	} else {
		main = clipLines(m.renderPage(), body)
		if pad := body - lipgloss.Height(main); pad > 0 {
			main = lipgloss.JoinVertical(lipgloss.Left, main, lipgloss.NewStyle().Height(pad).Render(""))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderFooter())
}

// bodyHeight is the screen height minus the footer line.
func (m Model) bodyHeight() int {
	return maxInt(m.height-1, 1)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle help overlay
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// An open lightbox owns the keyboard.
	if m.bus.Dispatch(msg.String()) {
		m.syncLightbox()
		return m, nil
	}
	if m.modal != nil {
		var (
			cmd    tea.Cmd
			closed bool
		)
		m.modal, cmd, closed = m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.applyHelpStyles()
		m.savePrefs()
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keys.ToggleGlobe):
		m.prefs.ShowGlobe = !m.prefs.ShowGlobe
		m.savePrefs()
		m.refreshViewport()
		m.ensureFocusVisible()
		return m, nil

	case key.Matches(msg, m.keys.Services):
		m.togglePanel(hero.PanelServices)
		return m, nil

	case key.Matches(msg, m.keys.Gallery):
		m.togglePanel(hero.PanelGallery)
		return m, nil

	case key.Matches(msg, m.keys.About):
		m.togglePanel(hero.PanelAbout)
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.setPanel(hero.PanelNone)
		return m, nil
	}

	// Panel-specific keys
	switch m.panel {
	case hero.PanelGallery:
		m.handleGalleryKey(msg)
		return m, nil
	case hero.PanelServices, hero.PanelAbout:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleMouse routes pointer events to the lightbox, the hero buttons or the
// open panel.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	leftPress := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	if m.showHelp {
		if leftPress {
			m.showHelp = false
		}
		return m, nil
	}

	if m.modal != nil {
		if leftPress {
			m.handleLightboxClick(msg.X, msg.Y)
		}
		return m, nil
	}

	if leftPress {
		if p, ok := m.heroButtonAt(msg.X, msg.Y); ok {
			m.togglePanel(p)
			return m, nil
		}
	}

	switch m.panel {
	case hero.PanelGallery:
		return m.handleGalleryMouse(msg)
	case hero.PanelServices, hero.PanelAbout:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleFrame advances the globe and the springs.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.globeVisible() {
		m.spinner.Step()
	}
	m.drag.step()
	m.zoom.step()
	if lb, ok := m.modal.(lightboxModal); ok {
		lb.scale = m.zoom.pos
		m.modal = lb
	}
	if m.status != "" && !now.Before(m.statusUntil) {
		m.status = ""
		m.statusErr = false
	}
	return m, frameCmd(m.frameInterval)
}

// togglePanel applies the hero button semantics: pressing the active
// section closes it, any other switches to it.
func (m *Model) togglePanel(pressed hero.Panel) {
	m.setPanel(hero.Toggle(m.panel, pressed))
}

// setPanel mounts and unmounts the gallery as the active section changes.
func (m *Model) setPanel(p hero.Panel) {
	if p == m.panel {
		return
	}
	if m.panel == hero.PanelGallery {
		m.unmountGallery()
	}
	if p == hero.PanelGallery {
		m.mountGallery()
	}
	m.log.Debug().Stringer("from", m.panel).Stringer("to", p).Msg("panel changed")
	m.panel = p
	m.refreshViewport()
	m.viewport.GotoTop()
}

func (m *Model) mountGallery() {
	m.gallery = gallery.NewController(m.site.Images(), m.bus, m.log)
	m.focus = 0
	m.gridScroll = 0
	m.pointer = pointerState{}
	m.drag.snap(0)
}

func (m *Model) unmountGallery() {
	if m.gallery != nil {
		m.gallery.Teardown()
	}
	m.gallery = nil
	m.modal = nil
	m.pointer = pointerState{}
	m.drag.snap(0)
}

// openImage opens id in the lightbox and starts the entrance animation.
func (m *Model) openImage(id int) {
	if m.gallery == nil || !m.gallery.Open(id) {
		return
	}
	lb := newLightbox(m.gallery, m.clipboard)
	m.zoom.snap(lightboxStartScale)
	m.zoom.target = 1
	lb.scale = m.zoom.pos
	m.modal = lb
	m.syncLightbox()
}

// syncLightbox drops the modal once the controller has closed and keeps the
// grid focus on the open image.
func (m *Model) syncLightbox() {
	if m.gallery == nil || !m.gallery.IsOpen() {
		m.modal = nil
		return
	}
	if idx, _ := m.gallery.Position(); idx > 0 {
		m.focus = idx - 1
		m.ensureFocusVisible()
	}
}

func (m *Model) handleLightboxClick(x, y int) {
	lb, ok := m.modal.(lightboxModal)
	if !ok || m.gallery == nil {
		return
	}
	r := lb.bounds(m.theme, m.width, m.bodyHeight())
	switch {
	case !r.contains(x, y):
		m.gallery.Close()
	case y < r.y0+lightboxCloseRows && x >= r.x1-lightboxArrowZone:
		m.gallery.Close()
	case x < r.x0+lightboxArrowZone:
		m.gallery.Previous()
	case x >= r.x1-lightboxArrowZone:
		m.gallery.Next()
	}
	m.syncLightbox()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.log.Warn().Err(err).Str("path", m.prefsPath).Msg("save preferences failed")
		m.setStatus("No se pudieron guardar las preferencias", true)
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
	m.statusUntil = time.Now().Add(StatusDuration)
}

func (m *Model) applyHelpStyles() {
	styles := m.theme.Styles()
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.AccentText
	m.help.Styles.FullDesc = styles.MutedText
	m.help.Styles.FullSeparator = styles.FaintText
}

// renderPage renders the hero followed by the active section.
func (m Model) renderPage() string {
	heroView, _ := m.renderHero()
	switch m.panel {
	case hero.PanelServices, hero.PanelAbout:
		return lipgloss.JoinVertical(lipgloss.Left, heroView, m.viewport.View())
	case hero.PanelGallery:
		return lipgloss.JoinVertical(lipgloss.Left, heroView, m.renderGallery())
	default:
		return heroView
	}
}

// renderFooter renders key hints and the status message.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bindings := m.keys.ShortHelp()
	switch {
	case m.modal != nil:
		bindings = m.keys.LightboxHelp()
	case m.panel == hero.PanelGallery:
		bindings = m.keys.GalleryHelp()
	}
	hints := m.help.ShortHelpView(bindings)

	if m.status != "" {
		status := styles.InfoText.Render(m.status)
		if m.statusErr {
			status = styles.DangerText.Render(m.status)
		}
		gap := maxInt(m.width-2-lipgloss.Width(hints)-lipgloss.Width(status), 1)
		hints = hints + lipgloss.NewStyle().Width(gap).Render("") + status
	}
	return styles.Footer.Width(m.width).MaxHeight(1).Render(hints)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
