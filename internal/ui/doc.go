// Package ui provides the terminal user interface for the Cristo Salva
// landing page.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model. Every state transition happens
// synchronously in Update; the only scheduled work is the frame tick that
// turns the globe and advances the springs, and the trailing tick that
// settles a drag gesture.
//
// # Package Structure
//
//   - model.go: Options, Model, Update/View, key and mouse routing, and Run
//   - hero.go: title block, section buttons and the globe column
//   - sections.go: service cards and the about section (markdown via glamour)
//   - gallery.go: category chips, tile grid, focus cursor, hover and drag
//   - modal.go: the Modal interface and the lightbox
//   - motion.go: harmonica springs for the drag offset and lightbox entrance
//   - static.go: non-interactive rendering and the gallery table
//   - keys.go, help.go, theme.go, layout.go: bindings, help overlay, themes
//     and layout constants
//
// # Sections
//
// The hero shows three buttons: Nuestros Servicios (s), Galería de Fotos (g)
// and Conoce Más (a). At most one section is open; pressing the open
// section's button closes it. The gallery controller exists only while the
// gallery section is shown and is torn down when it is hidden.
//
// # Keyboard Ownership
//
// While the lightbox is open it holds the keyboard claim on the input bus.
// Keys reach the claim first, so the arrow keys step through the filtered
// images and esc closes the lightbox instead of moving the grid cursor or
// closing the section.
//
// # Mouse
//
// Mouse tracking is enabled for all motion. Moving over a tile hovers it;
// pressing and releasing on the same tile opens it; pressing and moving pans
// the grid, and clicks are ignored until the pan settles. Clicks on the
// category chips and hero buttons act like their keys. Clicking outside the
// lightbox closes it.
//
// # Key Bindings
//
//   - s / g / a: Toggle services, gallery, about
//   - esc: Close the lightbox, or the open section
//   - arrows or hjkl: Move the gallery cursor
//   - enter: Open the focused image
//   - tab / shift+tab, 0-9: Select a category
//   - ← / →: Previous / next image in the lightbox
//   - f / y: Like / copy the image link
//   - T: Cycle theme
//   - G: Toggle the globe
//   - ?: Help
//   - q or Ctrl+C: Exit
package ui
