package optparse

import (
	"fmt"
	"io"
	"strings"
)

// PrintHelp prints the help text on the parser output (see SetOutput).
func (a *Parser) PrintHelp() {
	a.WriteHelp(a.out)
}

// WriteHelp uses a Writer to print the description, if any, followed by one
// line per option in definition sequence. Short forms, long forms and help
// texts are printed in aligned columns:
//
//	Usage: convert [options] file...
//	  -r  --samplingRate  Set sampling rate
//	  -v  --verbose       Enable verbose mode
func (a *Parser) WriteHelp(w io.Writer) {
	if len(a.description) > 0 {
		fmt.Fprintln(w, a.description)
	}
	ws, wl := 0, 0
	for _, o := range a.options {
		ws = max(ws, len(o.short))
		wl = max(wl, len(o.long))
	}
	for _, o := range a.options {
		line := fmt.Sprintf("  %-*s  %-*s  %s", ws, o.short, wl, o.long, o.help)
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}
