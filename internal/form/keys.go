// internal/form/keys.go
//
// Contact form – phone keystroke filter.
//
// Context
//   Front ends may consult ConstrainPhoneKeystroke before inserting a key
//   into the phone input.  It is a convenience only: Change strips every
//   non-digit, so a key that slips through (or a paste) can never leave a
//   non-digit in the stored value.
//
//   Key codes follow the classic DOM keyCode numbering so browser and
//   terminal adapters can share one table.
//
//------------------------------------------------------------------------------

package form

// Key codes consulted by the filter.
const (
	KeyBackspace = 8
	KeyTab       = 9
	KeyEnter     = 13
	KeyEscape    = 27
	KeyDelete    = 46
	Key0         = 48
	Key9         = 57
	KeyA         = 65
	KeyC         = 67
	KeyV         = 86
	KeyX         = 88
	KeyNumpad0   = 96
	KeyNumpad9   = 105
)

// KeyEvent is one keystroke as seen by the phone input.
type KeyEvent struct {
	Code  int
	Ctrl  bool
	Shift bool
}

// Decision tells the front end whether to let a keystroke through.
type Decision int

const (
	Allow Decision = iota
	Block
)

func (d Decision) String() string {
	if d == Block {
		return "block"
	}
	return "allow"
}

// ConstrainPhoneKeystroke allows editing and navigation keys, clipboard
// shortcuts, and digits from the main row or keypad.  Everything else is
// blocked.  Shift turns a main-row digit into punctuation, so it blocks
// those; keypad digits ignore shift.
func ConstrainPhoneKeystroke(ev KeyEvent) Decision {
	switch ev.Code {
	case KeyBackspace, KeyTab, KeyEscape, KeyEnter, KeyDelete:
		return Allow
	case KeyA, KeyC, KeyV, KeyX:
		if ev.Ctrl {
			return Allow
		}
	}

	mainDigit := !ev.Shift && ev.Code >= Key0 && ev.Code <= Key9
	padDigit := ev.Code >= KeyNumpad0 && ev.Code <= KeyNumpad9
	if mainDigit || padDigit {
		return Allow
	}
	return Block
}
