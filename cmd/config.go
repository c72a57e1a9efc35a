package cmd

import (
	"fmt"

	"github.com/KornelijusGlinskas/keyboard-claude/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the claude-kbd configuration file",
	}

	cmd.AddCommand(newConfigInitCmd(), newConfigShowCmd(app))

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}

			if err := config.WriteFile(config.Default(), path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
			return nil
		},
	}
}

func newConfigShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := app.cfg
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "log path:         %s\n", cfg.EventLogPath)
			fmt.Fprintf(out, "accent (HSV):     %d %d %d\n", cfg.Accent.H, cfg.Accent.S, cfg.Accent.V)
			fmt.Fprintf(out, "dim value:        %d\n", cfg.DimValue)
			fmt.Fprintf(out, "dim timeout:      %s\n", cfg.DimTimeout)
			fmt.Fprintf(out, "release timeout:  %s\n", cfg.ReleaseTimeout)
			fmt.Fprintf(out, "cleanup interval: %s\n", cfg.CleanupInterval)
			fmt.Fprintf(out, "tick interval:    %s\n", cfg.TickInterval)
			fmt.Fprintf(out, "device:           VID=0x%04X PID=0x%04X\n", cfg.VendorID, cfg.ProductID)
			fmt.Fprintf(out, "session slots:    %d\n", cfg.Layout.MaxSlots())
			return nil
		},
	}
}
