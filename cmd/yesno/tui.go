package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/yesno/internal/tui"
)

const tuiDebugLogFile = "yesno-debug.log"

func newTUICommand(debugMode *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Full-screen answer panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			closeLog, err := redirectLogger(*debugMode)
			if err != nil {
				return err
			}
			defer closeLog()

			client := newAnswerClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			slog.Default().Debug("starting tui", "endpoint", client.Endpoint())
			if err := tui.Run(cmd.Context(), client); err != nil {
				return fmt.Errorf("tui.Run() > %w", err)
			}
			return nil
		},
	}
}

// redirectLogger keeps log output off the terminal while the full-screen program owns it.
// In debug mode logs are written to a file instead.
func redirectLogger(debugMode bool) (func(), error) {
	previous := slog.Default()
	restore := func() { slog.SetDefault(previous) }

	if !debugMode {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return restore, nil
	}

	file, err := os.OpenFile(tuiDebugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", tuiDebugLogFile, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	})))
	return func() {
		restore()
		_ = file.Close()
	}, nil
}
