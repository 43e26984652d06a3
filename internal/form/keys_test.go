package form

import "testing"

func TestConstrainPhoneKeystroke(t *testing.T) {
	cases := []struct {
		name string
		ev   KeyEvent
		want Decision
	}{
		{"backspace", KeyEvent{Code: KeyBackspace}, Allow},
		{"tab", KeyEvent{Code: KeyTab}, Allow},
		{"escape", KeyEvent{Code: KeyEscape}, Allow},
		{"enter", KeyEvent{Code: KeyEnter}, Allow},
		{"delete", KeyEvent{Code: KeyDelete}, Allow},
		{"ctrl+a", KeyEvent{Code: KeyA, Ctrl: true}, Allow},
		{"ctrl+c", KeyEvent{Code: KeyC, Ctrl: true}, Allow},
		{"ctrl+v", KeyEvent{Code: KeyV, Ctrl: true}, Allow},
		{"ctrl+x", KeyEvent{Code: KeyX, Ctrl: true}, Allow},
		{"plain a", KeyEvent{Code: KeyA}, Block},
		{"digit 0", KeyEvent{Code: Key0}, Allow},
		{"digit 9", KeyEvent{Code: Key9}, Allow},
		{"shift+5", KeyEvent{Code: Key0 + 5, Shift: true}, Block},
		{"numpad 0", KeyEvent{Code: KeyNumpad0}, Allow},
		{"numpad 9 with shift", KeyEvent{Code: KeyNumpad9, Shift: true}, Allow},
		{"space", KeyEvent{Code: 32}, Block},
		{"minus", KeyEvent{Code: 189}, Block},
	}
	for _, c := range cases {
		if got := ConstrainPhoneKeystroke(c.ev); got != c.want {
			t.Errorf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}
