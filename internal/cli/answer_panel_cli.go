package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/at-ishikawa/yesno/internal/answer"
	"github.com/at-ishikawa/yesno/internal/panel"
)

var errEnd = errors.New("end")

// AnswerPanelCLI is a line-oriented answer panel: each entered line requests the next answer.
type AnswerPanelCLI struct {
	panel        *panel.Panel
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	renderer     *Renderer
}

func NewAnswerPanelCLI(client answer.Client, stdin io.Reader, stdout io.Writer) *AnswerPanelCLI {
	return &AnswerPanelCLI{
		panel:        panel.New(client),
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		renderer:     NewRenderer(),
	}
}

//go:generate mockgen -source=answer_panel_cli.go -destination=../mocks/cli/mock_session.go -package=mock_cli Session

type Session interface {
	Session(context context.Context) error
}

// Run shows the initial panel and runs sessions until the input ends, the user quits,
// or the process is interrupted.
func (cli *AnswerPanelCLI) Run(ctx context.Context) error {
	if err := cli.display(); err != nil {
		return err
	}
	return run(ctx, cli, cli.stdoutWriter)
}

func run(ctx context.Context, session Session, stdout io.Writer) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	var err error
	select {
	case <-ctx.Done():
	case err = <-errCh:
	}
	if ctx.Err() != nil {
		slog.Default().Debug("answer panel interrupted", "error", context.Cause(ctx))
		if _, writeErr := fmt.Fprintln(stdout, "Received interrupt signal, exiting..."); writeErr != nil {
			return fmt.Errorf("failed to write to stdout: %w", writeErr)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("error: %w", err)
	}
	return nil
}

func (cli *AnswerPanelCLI) Session(ctx context.Context) error {
	if _, err := fmt.Fprintf(cli.stdoutWriter, "Press Enter to %s (type 'quit' to exit): ", strings.ToLower(panel.TriggerIdle)); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	input, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errEnd
		}
		return fmt.Errorf("error reading input: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "quit", "exit", "q":
		if _, err := fmt.Fprintln(cli.stdoutWriter, "Bye."); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return errEnd
	}

	return cli.requestNextAnswer(ctx)
}

func (cli *AnswerPanelCLI) requestNextAnswer(ctx context.Context) error {
	cli.panel.Begin()
	trigger := panel.Render(cli.panel.State()).Trigger
	if err := cli.renderer.WriteTrigger(cli.stdoutWriter, trigger); err != nil {
		return err
	}

	if err := cli.panel.RequestNextAnswer(ctx); err != nil {
		slog.Default().Debug("failed to request the next answer", "error", err)
	}
	return cli.display()
}

func (cli *AnswerPanelCLI) display() error {
	return cli.renderer.Write(cli.stdoutWriter, panel.Render(cli.panel.State()))
}
