// Package app provides the orchestration layer for the Cristo Salva
// landing page.
//
// # Overview
//
// This package wires together configuration, logging, content, preferences
// and the UI. It is the composition root where dependencies are loaded and
// handed to the Bubble Tea model.
//
// # Startup
//
//  1. Load settings from ~/.config/cristosalva/config.toml and the
//     CRISTOSALVA_* environment
//  2. Apply command-line overrides and validate the result
//  3. Open the log file (the TUI owns the terminal)
//  4. Load the site content, embedded unless a content path is set
//  5. Load preferences from ~/.config/cristosalva/prefs.toml
//  6. Start the TUI, or write the static page when stdout is not a terminal
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()     Settings file + environment
//	       ├─────> logging.New()     zerolog file logger
//	       ├─────> content.Load()    YAML site document
//	       ├─────> prefs.Load()      Theme and globe toggle
//	       └─────> ui.Run()          TUI (blocks)
//	               or WriteStatic()  Plain page for pipes
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid configuration file or values
//   - Unknown theme or start panel override
//   - Log file that cannot be created
//   - Content file that is missing, malformed or fails validation
//
// Recoverable problems (logged, startup continues):
//   - Missing or unreadable preferences file
//   - Unknown theme stored in preferences
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{StartPanel: "gallery"}); err != nil {
//		log.Fatal(err)
//	}
package app
