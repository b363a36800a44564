// Package config loads the landing page's runtime settings.
//
// # Resolution Order
//
//  1. Built-in defaults (Defaults)
//  2. The TOML file at the given path, or ~/.config/cristosalva/config.toml
//  3. Environment variables (CRISTOSALVA_CONTENT, CRISTOSALVA_LOG_FILE,
//     CRISTOSALVA_LOG_LEVEL, CRISTOSALVA_START_PANEL), which the CLI may
//     populate from a .env file
//
// A missing config file is not an error. Empty or whitespace-only string
// values keep the default.
//
// # TOML Format
//
//	content = "~/iglesia/site.yaml"
//	log_file = "~/.local/state/cristosalva/cristosalva.log"
//	log_level = "debug"
//	start_panel = "gallery"
//	drag_settle_ms = 100
//	frame_rate = 30
//
//	[globe]
//	rotation_per_frame = 0.02
//	max_size = 24
//
// # Defaults
//
//   - content: embedded site
//   - log_file: ~/.local/state/cristosalva/cristosalva.log
//   - log_level: info
//   - start_panel: none
//   - drag_settle_ms: 100 (delay after a drag before clicks count again)
//   - frame_rate: 30
//   - globe.rotation_per_frame: 0.02 radians
//   - globe.max_size: 24 cells
//
// # Validation
//
// After merging, values are checked with go-playground/validator:
// log_level must be a zerolog level name, start_panel one of
// none/services/about/gallery, drag_settle_ms within 0..2000, frame_rate
// within 1..60, rotation_per_frame within 0..1 and max_size within 8..80.
//
// # Path Expansion
//
// Tilde paths are expanded to the home directory and relative paths are made
// absolute, for the config file itself, content and log_file.
package config
