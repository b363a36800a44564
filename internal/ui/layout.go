package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which hero buttons use
	// short labels.
	LayoutCompactWidth = 72

	// LayoutGlobeWidth is the minimum width to show the globe beside the
	// hero title.
	LayoutGlobeWidth = 80

	// LayoutTwoColumnWidth is the width at which the gallery grid and the
	// service cards use two columns.
	LayoutTwoColumnWidth = 60

	// LayoutThreeColumnWidth is the width at which the gallery grid uses
	// three columns.
	LayoutThreeColumnWidth = 100
)

// Gallery geometry.
const (
	// TileHeight is the height of a gallery tile including its border.
	TileHeight = 5

	// TileGap is the horizontal gap between tiles.
	TileGap = 1

	// GridMargin is the resting left margin of the grid. Dragging shifts
	// the grid within [0, 2*GridMargin].
	GridMargin = 4

	// HeroPadding is the left padding of the hero and panels.
	HeroPadding = 2

	// PanThreshold is how far, in cells on either axis, a pressed pointer
	// may wander before the gesture becomes a pan instead of a click.
	PanThreshold = 1
)

// Timing constants.
const (
	// StatusDuration is how long a footer status message stays visible.
	StatusDuration = 3 * time.Second
)

// Spring parameters, expressed as stiffness and damping for a unit mass.
const (
	dragStiffness = 200
	dragDamping   = 20

	lightboxStiffness = 300
	lightboxDamping   = 25

	// lightboxStartScale is the scale the lightbox grows from when opened.
	lightboxStartScale = 0.9
)

// gridColumns returns the gallery column count for a terminal width.
func gridColumns(width int) int {
	switch {
	case width < LayoutTwoColumnWidth:
		return 1
	case width < LayoutThreeColumnWidth:
		return 2
	default:
		return 3
	}
}
