package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/at-ishikawa/yesno/internal/answer"
	"github.com/at-ishikawa/yesno/internal/panel"
)

var (
	primary     = lipgloss.Color("#1976d2")
	success     = lipgloss.Color("#2e7d32")
	failure     = lipgloss.Color("#d32f2f")
	secondary   = lipgloss.Color("245")
	placeholder = lipgloss.Color("250")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(primary)
	subtitleStyle = lipgloss.NewStyle().Foreground(secondary)
	spinnerStyle  = lipgloss.NewStyle().Foreground(primary)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 3).
			Foreground(lipgloss.Color("#ffffff")).
			Background(primary)
	disabledButtonStyle = buttonStyle.
				Background(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(failure).
			Foreground(failure).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondary).
			Padding(1, 3)

	chipStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Foreground(lipgloss.Color("#ffffff"))

	dashedBorder = lipgloss.Border{
		Top:         "╌",
		Bottom:      "╌",
		Left:        "╎",
		Right:       "╎",
		TopLeft:     "┌",
		TopRight:    "┐",
		BottomLeft:  "└",
		BottomRight: "┘",
	}
	emptyStyle = lipgloss.NewStyle().
			Border(dashedBorder).
			BorderForeground(placeholder).
			Foreground(secondary).
			Padding(1, 4)

	footerStyle = lipgloss.NewStyle().Foreground(secondary)
	linkStyle   = lipgloss.NewStyle().Foreground(primary).Underline(true)
)

func chip(view panel.AnswerView) string {
	background := failure
	if view.Variant == answer.VariantAffirmative {
		background = success
	}
	return chipStyle.Background(background).Render(fmt.Sprintf("%s %s", view.Icon, view.Text))
}

func button(trigger panel.Trigger, spinnerView string) string {
	if trigger.Enabled {
		return buttonStyle.Render("↻ " + trigger.Label)
	}
	return disabledButtonStyle.Render(spinnerView + " " + trigger.Label)
}

func render(view panel.View, spinnerView string, keys keyMap, width int) string {
	sections := []string{
		titleStyle.Render(view.Title),
		subtitleStyle.Render(view.Subtitle),
		"",
		button(view.Trigger, spinnerView),
		"",
	}

	if view.Error != "" {
		sections = append(sections, errorStyle.Render("⚠ "+view.Error), "")
	}

	if view.Answer != nil {
		card := lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render("Answer"),
			"",
			chip(*view.Answer),
			"",
			fmt.Sprintf("Forced Answer: %s", view.Answer.Forced),
			subtitleStyle.Render(fmt.Sprintf("Request #%d", view.Answer.RequestNumber)),
			"",
			linkStyle.Render(view.Answer.Image),
		)
		sections = append(sections, cardStyle.Render(card), "")
	}

	if view.EmptyPrompt != "" {
		sections = append(sections, emptyStyle.Render(view.EmptyPrompt), "")
	}

	sections = append(sections,
		footerStyle.Render(view.Footer),
		footerStyle.Render(helpLine(keys)),
	)

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if width > 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
	}
	return content
}

func helpLine(keys keyMap) string {
	bindings := []string{
		fmt.Sprintf("%s %s", keys.Next.Help().Key, keys.Next.Help().Desc),
		fmt.Sprintf("%s %s", keys.Quit.Help().Key, keys.Quit.Help().Desc),
	}
	return strings.Join(bindings, " • ")
}
