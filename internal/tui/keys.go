package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yanizio/contactform/internal/form"
)

// KeyMap defines the key bindings for the contact form.
type KeyMap struct {
	NextField     key.Binding
	PreviousField key.Binding
	Submit        key.Binding
	Dismiss       key.Binding
	Quit          key.Binding
}

// DefaultKeyMap is the built-in key binding set. Enter also submits when
// the submit button has focus.
var DefaultKeyMap = KeyMap{
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PreviousField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "send"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "dismiss"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (keys KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.NextField, keys.PreviousField, keys.Submit, keys.Dismiss, keys.Quit}
}

// FullHelp implements help.KeyMap.
func (keys KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{keys.ShortHelp()}
}

// phoneKeyEvent translates a terminal keystroke into the key-code form
// the phone filter understands. The second result is false for messages
// that do not insert or delete text (cursor movement, pastes); those
// bypass the filter. Pastes still pass through the digit stripping in
// the controller.
func phoneKeyEvent(message tea.KeyMsg) (form.KeyEvent, bool) {
	if message.Paste {
		return form.KeyEvent{}, false
	}

	switch message.Type {
	case tea.KeyBackspace:
		return form.KeyEvent{Code: form.KeyBackspace}, true
	case tea.KeyDelete:
		return form.KeyEvent{Code: form.KeyDelete}, true
	case tea.KeyCtrlA:
		return form.KeyEvent{Code: form.KeyA, Ctrl: true}, true
	case tea.KeyCtrlC:
		return form.KeyEvent{Code: form.KeyC, Ctrl: true}, true
	case tea.KeyCtrlV:
		return form.KeyEvent{Code: form.KeyV, Ctrl: true}, true
	case tea.KeyCtrlX:
		return form.KeyEvent{Code: form.KeyX, Ctrl: true}, true
	case tea.KeySpace:
		return form.KeyEvent{Code: ' '}, true
	case tea.KeyRunes:
		if len(message.Runes) != 1 {
			return form.KeyEvent{}, false
		}
		return runeKeyEvent(message.Runes[0]), true
	}
	return form.KeyEvent{}, false
}

// runeKeyEvent maps one typed character to its key code. Terminals
// deliver shifted characters already translated ("!" rather than
// shift+1), so anything that is not a digit or a letter gets code 0,
// which the filter blocks.
func runeKeyEvent(character rune) form.KeyEvent {
	switch {
	case character >= '0' && character <= '9':
		return form.KeyEvent{Code: form.Key0 + int(character-'0')}
	case character >= 'a' && character <= 'z':
		return form.KeyEvent{Code: form.KeyA + int(character-'a')}
	case character >= 'A' && character <= 'Z':
		return form.KeyEvent{Code: form.KeyA + int(character-'A'), Shift: true}
	}
	return form.KeyEvent{}
}
