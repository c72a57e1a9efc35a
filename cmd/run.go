package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/KornelijusGlinskas/keyboard-claude/internal/adapters/taillog"
	"github.com/KornelijusGlinskas/keyboard-claude/internal/application"
	"github.com/KornelijusGlinskas/keyboard-claude/internal/ports"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	var logPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the LED bridge daemon",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := app.cfg
			if logPath != "" {
				cfg.EventLogPath = logPath
			}

			var dev ports.Device
			err := runConnectSpinner(cmd.Context(), cmd.ErrOrStderr(), func(context.Context) error {
				var probeErr error
				dev, probeErr = app.probeDevice(cfg.VendorID, cfg.ProductID)
				return probeErr
			})
			if err != nil {
				// Startup without the device is the one fatal
				// condition: there is no degraded mode.
				return fmt.Errorf("connect keyboard: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s connected\n", dev.Name())
			fmt.Fprintf(cmd.OutOrStdout(), "Ready: %d session slots. Waiting for Claude events.\n",
				cfg.Layout.MaxSlots())

			reader := taillog.New(cfg.EventLogPath)
			reader.SeekEnd()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			daemon := application.NewDaemon(cfg, dev, reader, app.activator, app.clock, cmd.OutOrStdout())
			if err := daemon.Run(ctx); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Bye.")
			return nil
		},
	}

	cmd.Flags().StringVar(&logPath, "log", "", "Override the event log path")

	return cmd
}
