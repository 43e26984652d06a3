// internal/form/validate_test.go
//
// Unit-tests for the pure validation rules.
//
// Run: go test ./internal/form -run Validate -v

package form

import (
	"strings"
	"testing"
)

func TestValidate_RequiredMessages(t *testing.T) {
	want := map[Field]string{
		FieldName:    "Name is required",
		FieldEmail:   "Email is required",
		FieldPhone:   "Phone number is required",
		FieldMessage: "Message is required",
	}
	for _, f := range Fields {
		for _, blank := range []string{"", "   ", "\t\n"} {
			r := Validate(f, blank)
			if r.Valid {
				t.Errorf("%s(%q): valid, want invalid", f, blank)
			}
			if r.Message != want[f] {
				t.Errorf("%s(%q): message %q, want %q", f, blank, r.Message, want[f])
			}
		}
	}
}

func TestValidate_Name(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
		msg   string
	}{
		{"Jo", true, ""},
		{"  Jane Doe  ", true, ""},
		{"J", false, "Name must be at least 2 characters"},
		{strings.Repeat("a", 50), true, ""},
		{strings.Repeat("a", 51), false, "Name must be less than 50 characters"},
		{"John3", false, "Name can only contain letters and spaces"},
		{"O'Brien", false, "Name can only contain letters and spaces"},
		{"Ana\u00a0Maria", true, ""},
		{"Ana\u2003Maria", true, ""},
		{"Ana\u200bMaria", false, "Name can only contain letters and spaces"},
	}
	for _, c := range cases {
		r := Validate(FieldName, c.in)
		if r.Valid != c.valid || r.Message != c.msg {
			t.Errorf("name %q = %+v, want valid=%v msg=%q", c.in, r, c.valid, c.msg)
		}
		if ValidateName(c.in) != c.valid {
			t.Errorf("ValidateName(%q) disagrees with Validate", c.in)
		}
	}
}

func TestValidate_Email(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"a@b.co", true},
		{"first.last+tag@sub.example.org", true},
		{"a@b", false},
		{"a@@b.com", false},
		{"a@b.c", false},
		{"a b@c.com", false},
	}
	for _, c := range cases {
		r := Validate(FieldEmail, c.in)
		if r.Valid != c.valid {
			t.Errorf("email %q valid = %v, want %v", c.in, r.Valid, c.valid)
		}
		if !c.valid && r.Message != "Please enter a valid email address" {
			t.Errorf("email %q message = %q", c.in, r.Message)
		}
	}
}

func TestValidate_Phone(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{strings.Repeat("1", 10), true},
		{strings.Repeat("1", 15), true},
		{strings.Repeat("1", 9), false},
		{strings.Repeat("1", 16), false},
		{"+1 (555) 010-9999", true}, // 11 digits once stripped
		{"phone", false},
	}
	for _, c := range cases {
		r := Validate(FieldPhone, c.in)
		if r.Valid != c.valid {
			t.Errorf("phone %q valid = %v, want %v", c.in, r.Valid, c.valid)
		}
		if !c.valid && r.Message != "Please enter a valid phone number (10-15 digits)" {
			t.Errorf("phone %q message = %q", c.in, r.Message)
		}
	}
}

func TestValidate_Message(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
		msg   string
	}{
		{strings.Repeat("m", 10), true, ""},
		{"  " + strings.Repeat("m", 10) + "  ", true, ""},
		{strings.Repeat("m", 9), false, "Message must be at least 10 characters"},
		{strings.Repeat("m", 500), true, ""},
		{strings.Repeat("m", 501), false, "Message must be less than 500 characters"},
		{strings.Repeat("é", 500), true, ""}, // characters, not bytes
	}
	for _, c := range cases {
		r := Validate(FieldMessage, c.in)
		if r.Valid != c.valid || r.Message != c.msg {
			t.Errorf("message len=%d = %+v, want valid=%v msg=%q", len(c.in), r, c.valid, c.msg)
		}
	}
}

func TestValidate_UnknownField(t *testing.T) {
	if r := Validate(Field("fax"), "123"); r.Valid || r.Message != "" {
		t.Fatalf("unknown field = %+v, want invalid with no message", r)
	}
}

func TestValidate_Pure(t *testing.T) {
	for i := 0; i < 3; i++ {
		if a, b := Validate(FieldEmail, "x@y.io"), Validate(FieldEmail, "x@y.io"); a != b {
			t.Fatalf("Validate not referentially transparent: %+v vs %+v", a, b)
		}
	}
}

func TestValidateAll(t *testing.T) {
	v := EmptyValues()
	v[FieldName] = "Ada Lovelace"
	v[FieldEmail] = "ada@example.com"
	v[FieldPhone] = "123"

	errs := ValidateAll(v)
	if len(errs) != 2 {
		t.Fatalf("errors = %v, want phone and message only", errs)
	}
	if errs[FieldPhone] == "" || errs[FieldMessage] != "Message is required" {
		t.Fatalf("unexpected errors: %v", errs)
	}

	v[FieldPhone] = "5550101234"
	v[FieldMessage] = "Hello there, friends"
	if errs := ValidateAll(v); len(errs) != 0 {
		t.Fatalf("want empty map, got %v", errs)
	}
}

func TestProgress(t *testing.T) {
	v := EmptyValues()
	if p := Progress(v); p != 0 {
		t.Fatalf("empty progress = %v, want 0", p)
	}
	v[FieldName] = "Jo"
	v[FieldEmail] = "a@b.co"
	v[FieldPhone] = "12"
	if p := Progress(v); p != 50 {
		t.Fatalf("progress = %v, want 50", p)
	}
}

func TestBuildPayload(t *testing.T) {
	v := Values{
		FieldName:    "  Ada\x00 Lovelace\u0085 ",
		FieldEmail:   " ada@example.com\x7f",
		FieldPhone:   " +44 (20) 7946-0018 ",
		FieldMessage: "Line one\nLine two\t ",
	}
	p := BuildPayload(v)
	if p.Name != "Ada Lovelace" {
		t.Errorf("name = %q", p.Name)
	}
	if p.Email != "ada@example.com" {
		t.Errorf("email = %q", p.Email)
	}
	if p.Phone != "442079460018" {
		t.Errorf("phone = %q", p.Phone)
	}
	if p.Message != "Line oneLine two" {
		t.Errorf("message = %q", p.Message)
	}
}

func TestProgressLabel(t *testing.T) {
	cases := map[float64]string{
		0:     "Form Completion: 0%",
		25:    "Form Completion: 25%",
		66.5:  "Form Completion: 67%",
		99.49: "Form Completion: 99%",
		100:   "Form Completion: 100%",
	}
	for in, want := range cases {
		if got := ProgressLabel(in); got != want {
			t.Fatalf("ProgressLabel(%v) = %q, want %q", in, got, want)
		}
	}
}
