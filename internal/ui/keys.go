package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	CycleTheme  key.Binding
	ToggleGlobe key.Binding
	Escape      key.Binding

	// Hero buttons
	Services key.Binding
	Gallery  key.Binding
	About    key.Binding

	// Gallery grid
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Open         key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	Category     key.Binding

	// Lightbox
	LightboxNext  key.Binding
	LightboxPrev  key.Binding
	LightboxClose key.Binding
	Like          key.Binding
	Share         key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Salir"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Ayuda"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Tema"),
		),
		ToggleGlobe: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "Globo"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cerrar sección"),
		),

		// Hero buttons
		Services: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Servicios"),
		),
		Gallery: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "Galería"),
		),
		About: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Conoce más"),
		),

		// Gallery grid
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "Arriba"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "Abajo"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "Izquierda"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "Derecha"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Ver foto"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Siguiente categoría"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Categoría anterior"),
		),
		Category: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "Elegir categoría"),
		),

		// Lightbox. Navigation keys are consumed by the lightbox's keyboard
		// claim; these bindings only describe them.
		LightboxNext: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Siguiente"),
		),
		LightboxPrev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Anterior"),
		),
		LightboxClose: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cerrar"),
		),
		Like: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Me gusta"),
		),
		Share: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Compartir"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Services, k.Gallery, k.About, k.Help, k.Quit}
}

// GalleryHelp returns the footer bindings while the gallery is shown.
func (k keyMap) GalleryHelp() []key.Binding {
	return []key.Binding{k.NextCategory, k.Open, k.Escape, k.Help, k.Quit}
}

// LightboxHelp returns the footer bindings while the lightbox is open.
func (k keyMap) LightboxHelp() []key.Binding {
	return []key.Binding{k.LightboxPrev, k.LightboxNext, k.Like, k.Share, k.LightboxClose}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Sections
		{k.Services, k.Gallery, k.About, k.Escape},
		// Gallery
		{k.Up, k.Down, k.Left, k.Right, k.Open},
		{k.NextCategory, k.PrevCategory, k.Category},
		// Lightbox
		{k.LightboxPrev, k.LightboxNext, k.Like, k.Share, k.LightboxClose},
		// General
		{k.CycleTheme, k.ToggleGlobe, k.Help, k.Quit},
	}
}
