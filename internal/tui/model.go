// Package tui runs the answer panel as a full-screen terminal program.
package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/at-ishikawa/yesno/internal/answer"
	"github.com/at-ishikawa/yesno/internal/panel"
)

type keyMap struct {
	Next key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("enter", "n", " "),
			key.WithHelp("enter", "get next answer"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// answerFetchedMsg carries the outcome of one Fetch back into the event loop.
type answerFetchedMsg struct {
	record answer.Record
	err    error
}

// Model owns the panel. The panel is only touched from Update, so a request
// started by the trigger is the only one in flight.
type Model struct {
	ctx     context.Context
	client  answer.Client
	panel   *panel.Panel
	spinner spinner.Model
	keys    keyMap
	width   int
}

func NewModel(ctx context.Context, client answer.Client) Model {
	return Model{
		ctx:     ctx,
		client:  client,
		panel:   panel.New(client),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
		keys:    defaultKeyMap(),
	}
}

// State returns the current panel state.
func (model Model) State() panel.State {
	return model.panel.State()
}

func (model Model) Init() tea.Cmd {
	return nil
}

func fetchAnswer(ctx context.Context, client answer.Client) tea.Cmd {
	return func() tea.Msg {
		record, err := client.Fetch(ctx)
		return answerFetchedMsg{record: record, err: err}
	}
}

func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit
		case key.Matches(message, model.keys.Next):
			return model.requestNextAnswer()
		}

	case answerFetchedMsg:
		if message.err != nil {
			slog.Default().Debug("failed to request the next answer", "error", message.err)
		}
		model.panel.Settle(message.record, message.err)
		return model, nil

	case spinner.TickMsg:
		if !model.panel.State().Loading {
			return model, nil
		}
		var cmd tea.Cmd
		model.spinner, cmd = model.spinner.Update(message)
		return model, cmd

	case tea.WindowSizeMsg:
		model.width = message.Width
		return model, nil
	}
	return model, nil
}

func (model Model) requestNextAnswer() (tea.Model, tea.Cmd) {
	// the trigger is disabled while loading
	if !panel.Render(model.panel.State()).Trigger.Enabled {
		return model, nil
	}
	model.panel.Begin()
	return model, tea.Batch(fetchAnswer(model.ctx, model.client), model.spinner.Tick)
}

func (model Model) View() string {
	return render(panel.Render(model.panel.State()), model.spinner.View(), model.keys, model.width)
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, client answer.Client, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	program := tea.NewProgram(NewModel(ctx, client), opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("program.Run() > %w", err)
	}
	return nil
}
