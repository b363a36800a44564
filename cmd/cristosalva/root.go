package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cristosalva/cristosalva/internal/app"
)

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "cristosalva",
		Short: "Cristo Salva church landing page in the terminal",
		Long: `Cristo Salva shows the church's landing page in the terminal: services,
a photo gallery with category filters and a lightbox, and contact details.

Press s, g or a to open a section, ? for help. When output is not a terminal
the whole page is printed instead.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/cristosalva/config.toml)")
	flags.StringVar(&opts.ContentPath, "content", "", "site content YAML (default: embedded)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/cristosalva/prefs.toml)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error, disabled")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "color theme: Amanecer, Nightfox, Slate")
	cmd.Flags().StringVar(&opts.StartPanel, "panel", "", "section to open at start: services, gallery, about")

	cmd.AddCommand(newGalleryCmd(&opts))
	cmd.AddCommand(newCategoriesCmd(&opts))
	cmd.AddCommand(newLogsCmd(&opts))

	return cmd
}
