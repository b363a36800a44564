package gallery

import (
	"github.com/rs/zerolog"

	"github.com/cristosalva/cristosalva/internal/content"
	"github.com/cristosalva/cristosalva/internal/input"
)

const claimOwner = "lightbox"

// Controller owns the gallery's selection state: the active category, the
// image open in the lightbox, the drag gesture flag and the hovered tile.
//
// The lightbox holds the keyboard claim exactly while it is open.
type Controller struct {
	images   []content.Image
	category string
	filtered []content.Image

	openID int
	isOpen bool
	claim  *input.Claim
	bus    *input.Bus

	dragging bool
	dragGen  uint64

	hoveredID int
	hovering  bool

	liked map[int]bool

	log zerolog.Logger
}

// NewController starts with every image visible and the lightbox closed.
// A nil bus gets a private one.
func NewController(images []content.Image, bus *input.Bus, log zerolog.Logger) *Controller {
	if bus == nil {
		bus = &input.Bus{}
	}
	c := &Controller{
		images: images,
		bus:    bus,
		liked:  make(map[int]bool),
		log:    log.With().Str("component", "gallery").Logger(),
	}
	c.filtered = Filter(images, All)
	return c
}

// Category returns the active category (All when unfiltered).
func (c *Controller) Category() string {
	return c.category
}

// Categories returns the categories available for filtering.
func (c *Controller) Categories() []string {
	return Categories(c.images)
}

// Filtered returns the current filtered set.
func (c *Controller) Filtered() []content.Image {
	out := make([]content.Image, len(c.filtered))
	copy(out, c.filtered)
	return out
}

// SetCategory changes the filter. An open image that falls outside the new
// filter closes the lightbox; one that remains visible stays open.
func (c *Controller) SetCategory(category string) {
	if category == c.category {
		return
	}
	c.category = category
	c.filtered = Filter(c.images, category)
	c.log.Debug().Str("category", category).Int("visible", len(c.filtered)).Msg("category selected")

	if c.isOpen && IndexOf(c.filtered, c.openID) < 0 {
		c.log.Debug().Int("id", c.openID).Msg("open image filtered out")
		c.Close()
	}
}

// Open shows the image with id in the lightbox. It is refused while a drag
// gesture is active or when id is not in the filtered set.
func (c *Controller) Open(id int) bool {
	if c.dragging {
		c.log.Debug().Int("id", id).Msg("open ignored during drag")
		return false
	}
	if IndexOf(c.filtered, id) < 0 {
		return false
	}
	c.openID = id
	c.isOpen = true
	if !c.claim.Held() {
		claim, err := c.bus.Claim(claimOwner, c.HandleKey)
		if err != nil {
			c.log.Warn().Err(err).Msg("lightbox keyboard unavailable")
		}
		c.claim = claim
	}
	c.log.Debug().Int("id", id).Msg("lightbox opened")
	return true
}

// Close hides the lightbox and releases the keyboard.
func (c *Controller) Close() {
	if !c.isOpen {
		return
	}
	c.isOpen = false
	c.openID = 0
	c.claim.Release()
	c.claim = nil
	c.log.Debug().Msg("lightbox closed")
}

// Next moves to the following image in the filtered set, wrapping around.
func (c *Controller) Next() {
	c.step(1)
}

// Previous moves to the preceding image in the filtered set, wrapping around.
func (c *Controller) Previous() {
	c.step(-1)
}

func (c *Controller) step(delta int) {
	if !c.isOpen {
		return
	}
	n := len(c.filtered)
	idx := IndexOf(c.filtered, c.openID)
	if n == 0 || idx < 0 {
		c.Close()
		return
	}
	next := ((idx+delta)%n + n) % n
	c.openID = c.filtered[next].ID
}

// Current returns the open image.
func (c *Controller) Current() (content.Image, bool) {
	if !c.isOpen {
		return content.Image{}, false
	}
	idx := IndexOf(c.filtered, c.openID)
	if idx < 0 {
		return content.Image{}, false
	}
	return c.filtered[idx], true
}

// IsOpen reports whether the lightbox is showing an image.
func (c *Controller) IsOpen() bool {
	return c.isOpen
}

// Position returns the 1-based index of the open image and the size of the
// filtered set. It returns 0 for the index when closed.
func (c *Controller) Position() (int, int) {
	if !c.isOpen {
		return 0, len(c.filtered)
	}
	return IndexOf(c.filtered, c.openID) + 1, len(c.filtered)
}

// HandleKey is the lightbox's keyboard handler.
func (c *Controller) HandleKey(key string) bool {
	if !c.isOpen {
		return false
	}
	switch key {
	case "right":
		c.Next()
	case "left":
		c.Previous()
	case "esc":
		c.Close()
	default:
		return false
	}
	return true
}

// KeyboardClaimed reports whether the lightbox currently owns the keyboard.
func (c *Controller) KeyboardClaimed() bool {
	return c.claim.Held()
}

// Teardown closes the lightbox and clears transient pointer state. Call it
// when the gallery stops being displayed.
func (c *Controller) Teardown() {
	c.Close()
	c.dragging = false
	c.dragGen++
	c.hovering = false
	c.hoveredID = 0
}

// PanStart marks the start of a drag gesture. Clicks are ignored until the
// gesture settles.
func (c *Controller) PanStart() {
	c.dragging = true
	c.dragGen++
}

// PanEnd returns the token to pass to Settle once the trailing delay has
// elapsed.
func (c *Controller) PanEnd() uint64 {
	return c.dragGen
}

// Settle clears the drag flag if no newer gesture started since token was
// issued. It reports whether the flag was cleared.
func (c *Controller) Settle(token uint64) bool {
	if !c.dragging || token != c.dragGen {
		return false
	}
	c.dragging = false
	return true
}

// Dragging reports whether a drag gesture is active or settling.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// Hover marks id as the tile under the pointer.
func (c *Controller) Hover(id int) {
	c.hoveredID = id
	c.hovering = true
}

// Leave clears the hover state if id is the hovered tile.
func (c *Controller) Leave(id int) {
	if c.hovering && c.hoveredID == id {
		c.hovering = false
		c.hoveredID = 0
	}
}

// Hovered returns the tile under the pointer.
func (c *Controller) Hovered() (int, bool) {
	return c.hoveredID, c.hovering
}

// ToggleLike flips the heart on the open image and returns the new state.
func (c *Controller) ToggleLike() bool {
	if !c.isOpen {
		return false
	}
	c.liked[c.openID] = !c.liked[c.openID]
	return c.liked[c.openID]
}

// Liked reports whether id has been liked this session.
func (c *Controller) Liked(id int) bool {
	return c.liked[id]
}
