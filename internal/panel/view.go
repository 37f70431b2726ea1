package panel

import (
	"fmt"
	"strings"

	"github.com/at-ishikawa/yesno/internal/answer"
)

const (
	Title          = "Yes/No Dashboard"
	Subtitle       = "Get random yes/no answers with fun GIFs!"
	TriggerIdle    = "Get Next Answer"
	TriggerLoading = "Getting Answer..."
	EmptyPrompt    = `Click "Get Next Answer" to start fetching data!`
	PoweredBy      = "Powered by yesno.wtf API"

	IconAffirmative = "✔"
	IconNegative    = "✘"
)

// View is the display form of a State. Renderers only read from it.
type View struct {
	Title    string
	Subtitle string
	Trigger  Trigger
	Error    string
	Answer   *AnswerView
	// EmptyPrompt is set only when there is no record and nothing is loading.
	EmptyPrompt string
	Footer      string
}

type Trigger struct {
	Label   string
	Enabled bool
}

type AnswerView struct {
	Text          string
	Variant       answer.Variant
	Icon          string
	Forced        string
	Image         string
	ImageAlt      string
	RequestNumber int
}

// Render builds the View for a state. It has no side effects.
func Render(state State) View {
	view := View{
		Title:    Title,
		Subtitle: Subtitle,
		Trigger: Trigger{
			Label:   TriggerIdle,
			Enabled: !state.Loading,
		},
		Error:  state.Error,
		Footer: PoweredBy,
	}
	if state.Loading {
		view.Trigger.Label = TriggerLoading
	}

	if state.Record != nil {
		view.Answer = renderAnswer(*state.Record, state.Count)
	} else if !state.Loading {
		view.EmptyPrompt = EmptyPrompt
	}
	return view
}

func renderAnswer(record answer.Record, count int) *AnswerView {
	variant := record.Variant()
	icon := IconNegative
	if variant == answer.VariantAffirmative {
		icon = IconAffirmative
	}
	return &AnswerView{
		Text:          strings.ToUpper(record.Answer),
		Variant:       variant,
		Icon:          icon,
		Forced:        yesNo(record.Forced),
		Image:         record.Image,
		ImageAlt:      fmt.Sprintf("%s GIF", record.Answer),
		RequestNumber: count,
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
