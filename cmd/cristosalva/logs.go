package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cristosalva/cristosalva/internal/app"
	"github.com/cristosalva/cristosalva/internal/config"
	"github.com/cristosalva/cristosalva/internal/logging"
)

func newLogsCmd(opts *app.Options) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the end of the application log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lines < 1 {
				return fmt.Errorf("--lines must be at least 1, got %d", lines)
			}
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			tail, err := logging.Tail(cfg.LogFile, lines)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(tail) == 0 {
				fmt.Fprintf(out, "no log entries in %s\n", cfg.LogFile)
				return nil
			}
			for _, line := range tail {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines to show")
	return cmd
}
