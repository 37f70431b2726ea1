package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/yesno/internal/cli"
	"github.com/at-ishikawa/yesno/internal/panel"
)

var errNoAnswer = errors.New("no answer")

func newAskCommand() *cobra.Command {
	format := FormatText

	command := &cobra.Command{
		Use:   "ask",
		Short: "Fetch one answer and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				if err := format.Set(cfg.Display.Format); err != nil {
					return err
				}
			}

			client := newAnswerClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			answerPanel := panel.New(client)
			requestErr := answerPanel.RequestNextAnswer(cmd.Context())
			state := answerPanel.State()

			if err := writeState(cmd.OutOrStdout(), format, state); err != nil {
				return err
			}
			if requestErr != nil {
				return fmt.Errorf("%w: %s", errNoAnswer, state.Error)
			}
			return nil
		},
	}

	command.Flags().Var(&format, "format", fmt.Sprintf("Output format. Possible values are %v", allFormats))
	return command
}

func writeState(w io.Writer, format Format, state panel.State) error {
	switch format {
	case FormatJSON:
		if state.Record == nil {
			return nil
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(state.Record); err != nil {
			return fmt.Errorf("encoder.Encode() > %w", err)
		}
		return nil
	case FormatYAML:
		if state.Record == nil {
			return nil
		}
		encoder := yaml.NewEncoder(w)
		defer func() {
			_ = encoder.Close()
		}()
		if err := encoder.Encode(state.Record); err != nil {
			return fmt.Errorf("encoder.Encode() > %w", err)
		}
		return nil
	default:
		return cli.NewRenderer().Write(w, panel.Render(state))
	}
}
