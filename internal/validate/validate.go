package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Field names a form input and its human label, used to build per-field
// "is required" messages.
type Field struct {
	Name  string
	Label string
}

// Presence checks every field for a non-blank value and returns one
// message per missing field, keyed by field name. Mirrors the browser's
// native required-field validation, made explicit server-side.
func Presence(get func(name string) string, fields []Field) map[string]string {
	errs := map[string]string{}
	for _, f := range fields {
		if strings.TrimSpace(get(f.Name)) == "" {
			errs[f.Name] = f.Label + " is required"
		}
	}
	return errs
}

// Email reports whether s looks like an email address, the server-side
// equivalent of an input with type="email".
func Email(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && len(s) <= 50 && reEmail.MatchString(s)
}

// ProductID parses a product id form value; ok is false for anything
// that is not a positive integer.
func ProductID(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Delta parses a quantity adjustment (+1 / -1 style); malformed input
// counts as no adjustment.
func Delta(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
