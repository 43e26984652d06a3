package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yanizio/contactform/internal/endpoint"
	"github.com/yanizio/contactform/internal/form"
)

// toastRefreshInterval is how often the view re-reads the controller
// while a notification is showing. The controller's own timer hides the
// toast; this only makes the disappearance visible.
const toastRefreshInterval = 200 * time.Millisecond

// submitSlot is the focus index of the submit button, which follows the
// four fields.
const submitSlot = 4

const (
	defaultWidth  = 60
	messageHeight = 5
)

// submitResultMsg carries the sender's answer back into the event loop.
type submitResultMsg struct {
	response *endpoint.Response
	err      error
}

// toastTickMsg asks the model to re-render while a toast is visible.
type toastTickMsg struct{}

// Model is the Bubble Tea model for the contact form.
type Model struct {
	controller *form.Controller
	// requestContext bounds in-flight submissions. Quitting the program
	// cancels it through the caller.
	requestContext context.Context

	keys    KeyMap
	help    help.Model
	inputs  map[form.Field]*textinput.Model
	message textarea.Model
	spinner spinner.Model
	bar     progress.Model

	focus int
	width int

	// lastOutcome is the most recent completed submission, kept for the
	// status line and tests.
	lastOutcome form.Outcome
}

// NewModel builds a Model around controller. requestContext is passed to
// the sender for every submission; nil means context.Background.
func NewModel(requestContext context.Context, controller *form.Controller) Model {
	if requestContext == nil {
		requestContext = context.Background()
	}

	inputs := make(map[form.Field]*textinput.Model, 3)
	for _, field := range []form.Field{form.FieldName, form.FieldEmail, form.FieldPhone} {
		input := textinput.New()
		input.Placeholder = field.Label()
		input.Prompt = "› "
		// No length cap: the controller strips and validates the full
		// text, so over-long input gets an error rather than truncation.
		input.CharLimit = 0
		inputs[field] = &input
	}

	message := textarea.New()
	message.Placeholder = form.FieldMessage.Label()
	message.ShowLineNumbers = false
	message.CharLimit = 0
	message.SetHeight(messageHeight)

	model := Model{
		controller:     controller,
		requestContext: requestContext,
		keys:           DefaultKeyMap,
		help:           help.New(),
		inputs:         inputs,
		message:        message,
		spinner:        spinner.New(spinner.WithSpinner(spinner.Dot)),
		bar:            progress.New(progress.WithDefaultGradient()),
		focus:          -1,
	}
	model.resize(defaultWidth)
	model.focusSlot(0)
	return model
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, model.refreshIfToast())
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.resize(message.Width)
		return model, nil

	case submitResultMsg:
		model.lastOutcome = model.controller.Complete(message.response, message.err)
		if model.lastOutcome.Kind == form.OutcomeSuccess {
			model.syncWidgets()
		}
		return model, model.refreshIfToast()

	case toastTickMsg:
		return model, model.refreshIfToast()

	case spinner.TickMsg:
		if model.controller.State() != form.StateSubmitting {
			return model, nil
		}
		var command tea.Cmd
		model.spinner, command = model.spinner.Update(message)
		return model, command

	case tea.KeyMsg:
		return model.handleKey(message)
	}

	return model.updateFocused(message)
}

// handleKey routes a keystroke to a global binding or the focused widget.
func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Dismiss):
		model.controller.Dismiss()
		return model, nil

	case key.Matches(message, model.keys.NextField):
		return model, model.focusSlot((model.focus + 1) % (submitSlot + 1))

	case key.Matches(message, model.keys.PreviousField):
		return model, model.focusSlot((model.focus + submitSlot) % (submitSlot + 1))

	case key.Matches(message, model.keys.Submit):
		return model.submit()
	}

	if message.Type == tea.KeyEnter {
		switch {
		case model.focus == submitSlot:
			if !model.controller.CanSubmit() {
				return model, nil
			}
			return model.submit()
		case model.focusedField() != form.FieldMessage:
			return model, model.focusSlot(model.focus + 1)
		}
	}

	if model.focusedField() == form.FieldPhone {
		if event, filtered := phoneKeyEvent(message); filtered && form.ConstrainPhoneKeystroke(event) == form.Block {
			return model, nil
		}
	}

	return model.updateFocused(message)
}

// updateFocused lets the focused widget consume message, then reports the
// new value to the controller and copies the stored value back.
func (model Model) updateFocused(message tea.Msg) (tea.Model, tea.Cmd) {
	field := model.focusedField()
	var command tea.Cmd

	switch field {
	case "":
		return model, nil
	case form.FieldMessage:
		model.message, command = model.message.Update(message)
		if value := model.message.Value(); value != model.controller.Value(field) {
			model.controller.Change(field, value)
		}
	default:
		input := model.inputs[field]
		*input, command = input.Update(message)
		if value := input.Value(); value != model.controller.Value(field) {
			model.controller.Change(field, value)
			if stored := model.controller.Value(field); stored != value {
				input.SetValue(stored)
			}
		}
	}
	return model, command
}

// submit starts a submission. Invalid forms surface their errors inline
// and send nothing; a submission already in flight makes this a no-op.
func (model Model) submit() (tea.Model, tea.Cmd) {
	payload, err := model.controller.Begin()
	if err != nil {
		return model, nil
	}

	controller := model.controller
	requestContext := model.requestContext
	send := func() tea.Msg {
		response, sendErr := controller.Send(requestContext, payload)
		return submitResultMsg{response: response, err: sendErr}
	}
	return model, tea.Batch(model.spinner.Tick, send)
}

// focusSlot moves focus to slot, blurring the previous field and focusing
// the next one in both the widgets and the controller.
func (model *Model) focusSlot(slot int) tea.Cmd {
	if previous := model.focusedField(); previous != "" {
		model.controller.Blur(previous, model.controller.Value(previous))
		if previous == form.FieldMessage {
			model.message.Blur()
		} else {
			model.inputs[previous].Blur()
		}
	}

	model.focus = slot
	field := model.focusedField()
	if field == "" {
		return nil
	}
	model.controller.Focus(field)
	if field == form.FieldMessage {
		return model.message.Focus()
	}
	return model.inputs[field].Focus()
}

// focusedField returns the field under focus, or "" on the submit button.
func (model Model) focusedField() form.Field {
	if model.focus < 0 || model.focus >= len(form.Fields) {
		return ""
	}
	return form.Fields[model.focus]
}

// syncWidgets copies every stored value into its widget. Used after the
// controller resets the form.
func (model *Model) syncWidgets() {
	for field, input := range model.inputs {
		input.SetValue(model.controller.Value(field))
	}
	model.message.SetValue(model.controller.Value(form.FieldMessage))
}

// refreshIfToast schedules a redraw while a notification is visible.
func (model Model) refreshIfToast() tea.Cmd {
	if !model.controller.Notification().Visible {
		return nil
	}
	return tea.Tick(toastRefreshInterval, func(time.Time) tea.Msg { return toastTickMsg{} })
}

func (model *Model) resize(width int) {
	if width <= 0 {
		width = defaultWidth
	}
	model.width = width
	inner := width - 4
	if inner < 20 {
		inner = 20
	}
	for _, input := range model.inputs {
		input.Width = inner
	}
	model.message.SetWidth(inner)
	model.bar.Width = inner
	model.help.Width = width
}

// LastOutcome returns the result of the most recent completed submission.
func (model Model) LastOutcome() form.Outcome { return model.lastOutcome }
