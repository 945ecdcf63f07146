package optparse

import (
	"fmt"
	"strings"
	"unicode"
)

// problems returns descriptions of the forms of o which cannot work as
// intended. A short form without a leading hyphen is also collected as a
// positional argument, and a form containing white space or "=" never matches
// a single argument as expected.
func (o Option) problems() []string {
	var p []string
	for _, form := range []string{o.short, o.long} {
		if len(form) == 0 {
			continue
		}
		if form[0] != '-' {
			p = append(p, fmt.Sprintf(`"%s" does not start with a hyphen`, form))
		}
		if r, ok := invalid(form); ok {
			p = append(p, fmt.Sprintf(`"%s" includes the character '%c'`, form, r))
		}
	}
	if len(o.short) == 0 && len(o.long) == 0 {
		p = append(p, "option has neither a short nor a long form")
	}
	return p
}

// invalid returns the first character of form which is white space or "=".
func invalid(form string) (rune, bool) {
	i := strings.IndexFunc(form, func(r rune) bool {
		return r == '=' || unicode.IsSpace(r)
	})
	if i < 0 {
		return 0, false
	}
	return []rune(form[i:])[0], true
}
