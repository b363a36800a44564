// Package hero holds the landing page's section toggle.
package hero

import (
	"fmt"
	"strings"
)

// Panel identifies which content section is shown under the hero.
type Panel int

const (
	PanelNone Panel = iota
	PanelServices
	PanelAbout
	PanelGallery
)

var panelNames = map[Panel]string{
	PanelNone:     "none",
	PanelServices: "services",
	PanelAbout:    "about",
	PanelGallery:  "gallery",
}

func (p Panel) String() string {
	if name, ok := panelNames[p]; ok {
		return name
	}
	return fmt.Sprintf("panel(%d)", int(p))
}

// ParsePanel maps a config value to a Panel. Empty means PanelNone.
func ParsePanel(s string) (Panel, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if value == "" {
		return PanelNone, nil
	}
	for p, name := range panelNames {
		if name == value {
			return p, nil
		}
	}
	return PanelNone, fmt.Errorf("unknown panel %q", s)
}

// Toggle returns the panel that results from pressing the button for
// pressed while current is shown. Pressing the shown panel's button hides
// it; any other button switches directly.
func Toggle(current, pressed Panel) Panel {
	if current == pressed {
		return PanelNone
	}
	return pressed
}
