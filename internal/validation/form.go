package validation

import (
	"net/url"
	"strings"
)

// Form is raw submitted input: every field maps to zero or more strings,
// the shape of url.Values. JSON requests are converted by their DTOs.
type Form map[string][]string

func FromValues(v url.Values) Form {
	f := make(Form, len(v))
	for k, vals := range v {
		f[k] = append([]string(nil), vals...)
	}
	return f
}

// Value returns the first value of field with surrounding whitespace
// removed, or "" when the field is absent.
func (f Form) Value(field string) string {
	vals := f[field]
	if len(vals) == 0 {
		return ""
	}
	return strings.TrimSpace(vals[0])
}

// Has reports whether field was submitted with a non-blank value.
func (f Form) Has(field string) bool {
	return f.Value(field) != ""
}

// Values normalizes a multi-valued field: absent becomes empty, a single
// string becomes one element, blanks are dropped and the rest trimmed.
func (f Form) Values(field string) []string {
	out := []string{}
	for _, v := range f[field] {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
