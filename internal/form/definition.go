// internal/form/definition.go
//
// Contact form – field definitions and state types.
//
// Context
//   The contact form has exactly four fields.  This file names them, fixes
//   their display order, and declares the small value types the validator
//   and controller pass around: Values (current text per field), Errors
//   (inline message per field), Status (derived styling hint), State
//   (idle or submitting), and Notification (the transient toast).
//
// Style
//   Two-space sentence spacing, Oxford comma, concise inline notes.
//
//------------------------------------------------------------------------------

package form

// Field names one input of the contact form.  The string value doubles as
// the JSON key sent to the endpoint.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldMessage Field = "message"
)

// Fields lists every field in display order.
var Fields = []Field{FieldName, FieldEmail, FieldPhone, FieldMessage}

// ParseField maps a raw name onto a Field.  The boolean is false for names
// the form does not know.
func ParseField(s string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// Label returns the human-readable label used by front ends.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Your name"
	case FieldEmail:
		return "Your email"
	case FieldPhone:
		return "Your phone"
	case FieldMessage:
		return "Share your thoughts"
	default:
		return string(f)
	}
}

// -----------------------------------------------------------------------------
// Values and errors
// -----------------------------------------------------------------------------

// Values holds the current text of every field.  Instances built by
// EmptyValues always carry all four keys.
type Values map[Field]string

// EmptyValues returns a Values with every field set to "".
func EmptyValues() Values {
	v := make(Values, len(Fields))
	for _, f := range Fields {
		v[f] = ""
	}
	return v
}

// Clone returns an independent copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Errors maps a field to its inline error message.  A missing key and an
// empty string both mean "no error".
type Errors map[Field]string

// Clone returns an independent copy.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for k, msg := range e {
		out[k] = msg
	}
	return out
}

// Has reports whether f carries a non-empty message.
func (e Errors) Has(f Field) bool { return e[f] != "" }

// -----------------------------------------------------------------------------
// Derived and lifecycle enums
// -----------------------------------------------------------------------------

// Status is the per-field styling hint.  It is always derived, never stored.
type Status int

const (
	StatusDefault Status = iota
	StatusValid
	StatusInvalid
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	case StatusError:
		return "error"
	default:
		return "default"
	}
}

// State is the submission lifecycle.
type State int

const (
	StateIdle State = iota
	StateSubmitting
)

func (s State) String() string {
	if s == StateSubmitting {
		return "submitting"
	}
	return "idle"
}

// Kind distinguishes success toasts from error toasts.
type Kind int

const (
	KindSuccess Kind = iota
	KindError
)

func (k Kind) String() string {
	if k == KindError {
		return "error"
	}
	return "success"
}

// Notification is the single transient toast.  The zero value is hidden.
type Notification struct {
	Visible bool
	Message string
	Kind    Kind
}
