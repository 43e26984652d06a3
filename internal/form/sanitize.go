// internal/form/sanitize.go
//
// Contact form – input normalisation and outbound payload assembly.
//
//------------------------------------------------------------------------------

package form

import (
	"strings"

	"github.com/yanizio/contactform/internal/endpoint"
)

// DigitsOnly drops every character that is not an ASCII digit.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// isControl matches U+0000–U+001F and U+007F–U+009F.
func isControl(r rune) bool {
	return r <= 0x1F || (r >= 0x7F && r <= 0x9F)
}

// StripControl trims s and removes C0 and C1 control characters.
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if isControl(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}

// BuildPayload produces the body sent to the endpoint.  Text fields are
// trimmed and stripped of control characters; phone keeps digits only.
func BuildPayload(values Values) endpoint.Payload {
	return endpoint.Payload{
		Name:    StripControl(values[FieldName]),
		Email:   StripControl(values[FieldEmail]),
		Phone:   DigitsOnly(strings.TrimSpace(values[FieldPhone])),
		Message: StripControl(values[FieldMessage]),
	}
}
