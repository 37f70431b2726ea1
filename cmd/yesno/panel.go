package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/yesno/internal/cli"
)

func newPanelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "panel",
		Short: "Interactive answer panel, one answer per Enter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			client := newAnswerClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			answerPanel := cli.NewAnswerPanelCLI(client, cmd.InOrStdin(), cmd.OutOrStdout())
			if err := answerPanel.Run(cmd.Context()); err != nil {
				return fmt.Errorf("answerPanel.Run() > %w", err)
			}
			return nil
		},
	}
}
