package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/KornelijusGlinskas/keyboard-claude/internal/adapters/taillog"
	"github.com/KornelijusGlinskas/keyboard-claude/internal/domain"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *app) *cobra.Command {
	var logPath string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print hook events as they arrive, no keyboard needed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := app.cfg.EventLogPath
			if logPath != "" {
				path = logPath
			}

			reader := taillog.New(path)
			reader.SeekEnd()

			fmt.Fprintln(cmd.OutOrStdout(), "Watching events (only new ones)...")

			ticker := time.NewTicker(app.cfg.TickInterval)
			defer ticker.Stop()

			for {
				for _, line := range reader.PollLines() {
					if strings.TrimSpace(line) == "" {
						continue
					}
					if ev, ok := domain.ParseEvent(line); ok {
						fmt.Fprintln(cmd.OutOrStdout(), app.console.Event(ev))
					} else {
						fmt.Fprintln(cmd.OutOrStdout(), app.console.Malformed(line))
					}
				}

				select {
				case <-cmd.Context().Done():
					return nil
				case <-ticker.C:
				}
			}
		},
	}

	cmd.Flags().StringVar(&logPath, "log", "", "Override the event log path")

	return cmd
}
