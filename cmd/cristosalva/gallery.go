package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristosalva/cristosalva/internal/app"
	"github.com/cristosalva/cristosalva/internal/gallery"
	"github.com/cristosalva/cristosalva/internal/ui"
)

func newGalleryCmd(opts *app.Options) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Print the photo gallery as a table",
		Long: `Print the gallery images as a table, optionally filtered to one category.

Categories are matched exactly; run "cristosalva categories" to list them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Load(*opts)
			if err != nil {
				return err
			}
			defer env.Close()

			images := env.Site.Images()
			if category != "" && !slices.Contains(gallery.Categories(images), category) {
				return fmt.Errorf("unknown category %q (available: %s)",
					category, strings.Join(gallery.Categories(images), ", "))
			}
			filtered := gallery.Filter(images, category)
			env.Logger.Debug().Str("category", category).Int("images", len(filtered)).Msg("gallery listed")

			fmt.Fprintln(cmd.OutOrStdout(), ui.GalleryTable(filtered, ui.GetTheme(env.Prefs.Theme)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "show only this category")
	return cmd
}

func newCategoriesCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List gallery categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Load(*opts)
			if err != nil {
				return err
			}
			defer env.Close()

			images := env.Site.Images()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%d)\n", env.Site.AllLabel(), len(images))
			for _, c := range gallery.Categories(images) {
				fmt.Fprintf(out, "%s (%d)\n", c, len(gallery.Filter(images, c)))
			}
			return nil
		},
	}
}
