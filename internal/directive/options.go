package directive

import (
	"fmt"
	"strings"
)

// ParseClassList splits a freeform class-list value on whitespace and
// commas and validates each token. An empty value yields no classes. A
// malformed token is an error so the caller can report it against the
// offending directive.
func ParseClassList(value string) ([]string, error) {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(fields) == 0 {
		return nil, nil
	}
	classes := make([]string, 0, len(fields))
	for _, f := range fields {
		if !isClassToken(f) {
			return nil, fmt.Errorf("invalid class token %q", f)
		}
		classes = append(classes, f)
	}
	return classes, nil
}

func isClassToken(s string) bool {
	if s == "" || !isAlpha(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isNameByte(s[i]) {
			return false
		}
	}
	return true
}
