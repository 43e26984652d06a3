package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yanizio/contactform/internal/form"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

	labelStyles = map[form.Status]lipgloss.Style{
		form.StatusDefault: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		form.StatusValid:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		form.StatusInvalid: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		form.StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Italic(true)

	buttonStyle         = lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230"))
	buttonFocusedStyle  = buttonStyle.Background(lipgloss.Color("205")).Bold(true)
	buttonDisabledStyle = lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("238")).Foreground(lipgloss.Color("245"))

	toastStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	toastKinds = map[form.Kind]lipgloss.Color{
		form.KindSuccess: lipgloss.Color("42"),
		form.KindError:   lipgloss.Color("196"),
	}
)

// statusGlyph prefixes each label so the state reads without colour.
var statusGlyph = map[form.Status]string{
	form.StatusDefault: " ",
	form.StatusValid:   "✓",
	form.StatusInvalid: "·",
	form.StatusError:   "✗",
}

// View implements tea.Model.
func (model Model) View() string {
	var builder strings.Builder

	builder.WriteString(titleStyle.Render("Contact us"))
	builder.WriteString("\n")

	for index, field := range form.Fields {
		status := model.controller.Status(field)
		label := fmt.Sprintf("%s %s", statusGlyph[status], field.Label())
		if index == model.focus {
			label += " ◂"
		}
		builder.WriteString(labelStyles[status].Render(label))
		builder.WriteString("\n")

		if field == form.FieldMessage {
			builder.WriteString(model.message.View())
		} else {
			builder.WriteString(model.inputs[field].View())
		}
		builder.WriteString("\n")

		if message := model.controller.Error(field); message != "" {
			builder.WriteString(errorStyle.Render("  " + message))
			builder.WriteString("\n")
		}
		builder.WriteString("\n")
	}

	completion := model.controller.Progress()
	builder.WriteString(form.ProgressLabel(completion))
	builder.WriteString("\n")
	builder.WriteString(model.bar.ViewAs(completion / 100))
	builder.WriteString("\n\n")

	builder.WriteString(model.renderButton())
	builder.WriteString("\n")

	if toast := model.renderToast(); toast != "" {
		builder.WriteString("\n")
		builder.WriteString(toast)
		builder.WriteString("\n")
	}

	builder.WriteString("\n")
	builder.WriteString(model.help.View(model.keys))
	return builder.String()
}

func (model Model) renderButton() string {
	if model.controller.State() == form.StateSubmitting {
		return buttonDisabledStyle.Render(model.spinner.View() + " Sending…")
	}

	style := buttonStyle
	switch {
	case !model.controller.CanSubmit():
		style = buttonDisabledStyle
	case model.focus == submitSlot:
		style = buttonFocusedStyle
	}
	label := "Send"
	if model.focus == submitSlot {
		label = "▸ " + label
	}
	return style.Render(label)
}

func (model Model) renderToast() string {
	note := model.controller.Notification()
	if !note.Visible {
		return ""
	}
	return toastStyle.BorderForeground(toastKinds[note.Kind]).Render(note.Message + "  (esc)")
}
