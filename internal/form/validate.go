// internal/form/validate.go
//
// Contact form – field validation.
//
// Context
//   Every rule here is a pure function of (field, value).  The controller
//   calls Validate on each keystroke, on blur, and once more for the whole
//   form at submit time, so results must never depend on hidden state.
//
// Workflow
//   •  ValidateName, ValidateEmail, ValidatePhone, and ValidateMessage answer
//      "is this acceptable?" for one field.
//   •  Validate dispatches by field and picks the single most relevant
//      message: empty first, then too short, then too long or bad format.
//   •  ValidateAll runs Validate over every field and keeps only failures.
//
// Style
//   Lengths are counted in characters after trimming surrounding space.
//
//------------------------------------------------------------------------------

package form

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	nameMin    = 2
	nameMax    = 50
	phoneMin   = 10
	phoneMax   = 15
	messageMin = 10
	messageMax = 500
)

var (
	// whitespace matches the browser's \s: Unicode space separators plus
	// the ASCII controls, line/paragraph separators, and the BOM.
	nameRe  = regexp.MustCompile(`^[a-zA-Z\p{Zs}\t\n\v\f\r\x{2028}\x{2029}\x{feff}]+$`)
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Result is the outcome of validating one field.  Message is empty when
// Valid is true.
type Result struct {
	Valid   bool
	Message string
}

// -----------------------------------------------------------------------------
// Per-field rules
// -----------------------------------------------------------------------------

// ValidateName accepts 2–50 letters and spaces.
func ValidateName(v string) bool {
	t := strings.TrimSpace(v)
	n := utf8.RuneCountInString(t)
	return n >= nameMin && n <= nameMax && nameRe.MatchString(t)
}

// ValidateEmail is a pragmatic local@domain.tld check, not RFC 5322.
func ValidateEmail(v string) bool {
	return emailRe.MatchString(v)
}

// ValidatePhone counts digits only, so "+1 (555) 010-0000" is acceptable.
func ValidatePhone(v string) bool {
	n := len(DigitsOnly(v))
	return n >= phoneMin && n <= phoneMax
}

// ValidateMessage accepts 10–500 characters.
func ValidateMessage(v string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(v))
	return n >= messageMin && n <= messageMax
}

// -----------------------------------------------------------------------------
// Dispatcher
// -----------------------------------------------------------------------------

// Validate checks value against the rule for f.  Unknown fields are invalid
// without a message.
func Validate(f Field, value string) Result {
	t := strings.TrimSpace(value)
	n := utf8.RuneCountInString(t)

	switch f {
	case FieldName:
		r := Result{Valid: ValidateName(value)}
		switch {
		case t == "":
			r.Message = "Name is required"
		case n < nameMin:
			r.Message = "Name must be at least 2 characters"
		case n > nameMax:
			r.Message = "Name must be less than 50 characters"
		case !nameRe.MatchString(t):
			r.Message = "Name can only contain letters and spaces"
		}
		return r

	case FieldEmail:
		r := Result{Valid: ValidateEmail(value)}
		switch {
		case t == "":
			r.Message = "Email is required"
		case !r.Valid:
			r.Message = "Please enter a valid email address"
		}
		return r

	case FieldPhone:
		r := Result{Valid: ValidatePhone(value)}
		switch {
		case t == "":
			r.Message = "Phone number is required"
		case !r.Valid:
			r.Message = "Please enter a valid phone number (10-15 digits)"
		}
		return r

	case FieldMessage:
		r := Result{Valid: ValidateMessage(value)}
		switch {
		case t == "":
			r.Message = "Message is required"
		case n < messageMin:
			r.Message = "Message must be at least 10 characters"
		case n > messageMax:
			r.Message = "Message must be less than 500 characters"
		}
		return r
	}

	return Result{}
}

// ValidateAll validates every field of values.  The returned map holds only
// failing fields; an empty map means the form may be submitted.
func ValidateAll(values Values) Errors {
	errs := make(Errors)
	for _, f := range Fields {
		if r := Validate(f, values[f]); !r.Valid {
			errs[f] = r.Message
		}
	}
	return errs
}

// Progress is the percentage of fields that currently validate: 0, 25, 50,
// 75, or 100.  It is recomputed on every call.
func Progress(values Values) float64 {
	valid := 0
	for _, f := range Fields {
		if Validate(f, values[f]).Valid {
			valid++
		}
	}
	return float64(valid) / float64(len(Fields)) * 100
}

// ProgressLabel renders p the way the form header shows it, rounded to a
// whole percent.
func ProgressLabel(p float64) string {
	return fmt.Sprintf("Form Completion: %d%%", int(math.Round(p)))
}
