// Package panel holds the answer panel state and turns it into a renderable view.
package panel

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/yesno/internal/answer"
)

// State is everything the panel displays. An empty Error means no error.
type State struct {
	Record  *answer.Record
	Loading bool
	Error   string
	Count   int
}

// Panel owns a single State. It is not safe for concurrent use:
// callers must not start a request while another one is loading.
type Panel struct {
	client answer.Client
	state  State
}

func New(client answer.Client) *Panel {
	return &Panel{client: client}
}

// State returns a copy of the current state.
func (p *Panel) State() State {
	state := p.state
	if state.Record != nil {
		record := *state.Record
		state.Record = &record
	}
	return state
}

// Begin marks a request as in flight and clears the previous error.
func (p *Panel) Begin() {
	p.state.Loading = true
	p.state.Error = ""
}

// Settle applies the outcome of the in-flight request and clears Loading.
// A successful record replaces the previous one and increments Count; an error leaves both untouched.
func (p *Panel) Settle(record answer.Record, err error) {
	defer p.release()

	if err != nil {
		p.state.Error = DisplayMessage(err)
		return
	}
	p.state.Record = &record
	p.state.Count++
}

func (p *Panel) release() {
	p.state.Loading = false
}

// RequestNextAnswer fetches one answer and updates the state from the result.
// The returned error is already reflected in State().Error.
func (p *Panel) RequestNextAnswer(ctx context.Context) error {
	p.Begin()
	defer p.release()

	record, err := p.client.Fetch(ctx)
	p.Settle(record, err)
	if err != nil {
		return fmt.Errorf("client.Fetch() > %w", err)
	}
	return nil
}
