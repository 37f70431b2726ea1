package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/yesno/internal/answer"
	"github.com/at-ishikawa/yesno/internal/panel"
)

// Renderer writes a panel.View as coloured terminal text.
type Renderer struct {
	bold        *color.Color
	faint       *color.Color
	affirmative *color.Color
	negative    *color.Color
	errorText   *color.Color
}

func NewRenderer() *Renderer {
	return &Renderer{
		bold:        color.New(color.Bold),
		faint:       color.New(color.Faint),
		affirmative: color.New(color.FgGreen, color.Bold),
		negative:    color.New(color.FgRed, color.Bold),
		errorText:   color.New(color.FgRed),
	}
}

func (r *Renderer) Write(w io.Writer, view panel.View) error {
	var b strings.Builder

	r.bold.Fprintln(&b, view.Title)
	r.faint.Fprintln(&b, view.Subtitle)
	b.WriteString("\n")
	b.WriteString(r.trigger(view.Trigger))
	b.WriteString("\n\n")

	if view.Error != "" {
		r.errorText.Fprintf(&b, "⚠ %s\n\n", view.Error)
	}

	if view.Answer != nil {
		r.writeAnswer(&b, *view.Answer)
		b.WriteString("\n")
	}

	if view.EmptyPrompt != "" {
		r.faint.Fprintln(&b, view.EmptyPrompt)
		b.WriteString("\n")
	}

	r.faint.Fprintln(&b, view.Footer)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

// WriteTrigger writes only the trigger line, used to show progress while a request is in flight.
func (r *Renderer) WriteTrigger(w io.Writer, trigger panel.Trigger) error {
	if _, err := fmt.Fprintln(w, r.trigger(trigger)); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

func (r *Renderer) trigger(trigger panel.Trigger) string {
	label := fmt.Sprintf("[ %s ]", trigger.Label)
	if !trigger.Enabled {
		return r.faint.Sprint(label)
	}
	return r.bold.Sprint(label)
}

func (r *Renderer) writeAnswer(b *strings.Builder, view panel.AnswerView) {
	variant := r.negative
	if view.Variant == answer.VariantAffirmative {
		variant = r.affirmative
	}

	fmt.Fprintf(b, "Answer: %s\n", variant.Sprintf("%s %s", view.Icon, view.Text))
	fmt.Fprintf(b, "Forced Answer: %s\n", view.Forced)
	fmt.Fprintf(b, "Image (%s): %s\n", view.ImageAlt, view.Image)
	r.faint.Fprintf(b, "Request #%d\n", view.RequestNumber)
}
