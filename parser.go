package optparse

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Parser methods resolve the values of declared options and collect the
// remaining positional arguments. A Parser is created with the arguments to
// parse, which exclude the program name (typically os.Args[1:]), and the
// options to recognize. Setter methods return the Parser to allow chaining.
//
// Parsing never fails. Unknown options are ignored, a missing value leaves the
// default in place, and lookups of anything unknown return an empty string.
type Parser struct {
	args        []string
	options     []Option
	index       map[string]Option // short form to option, last definition wins
	description string
	values      map[string]string // short form to resolved value
	positionals []string
	helped      bool // help printed by the last Parse
	out         io.Writer
	exit        func(code int)
	log         *slog.Logger
}

// NewParser returns a Parser for args and options. Both slices are copied.
func NewParser(args []string, options ...Option) *Parser {
	a := &Parser{
		args:        append([]string(nil), args...),
		options:     append([]Option(nil), options...),
		index:       make(map[string]Option, len(options)),
		values:      make(map[string]string),
		positionals: make([]string, 0),
		out:         os.Stdout,
		exit:        os.Exit,
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range a.options {
		a.index[o.short] = o
	}
	return a
}

// Doc sets the description printed as the first line of the help text.
func (a *Parser) Doc(description string) *Parser {
	a.description = description
	return a
}

// SetOutput sets the writer used by PrintHelp. The default is os.Stdout.
func (a *Parser) SetOutput(w io.Writer) *Parser {
	a.out = w
	return a
}

// SetExit sets the function called to terminate the process after help was
// printed. The default is os.Exit.
func (a *Parser) SetExit(f func(code int)) *Parser {
	a.exit = f
	return a
}

// SetLogger sets the logger. The default logger discards everything.
func (a *Parser) SetLogger(l *slog.Logger) *Parser {
	a.log = l
	return a
}

// Parse resolves the value of every option and collects positional arguments.
// If an argument is "-h" or starts with "--help", the help text is printed,
// and if halt is true the process exits with status 0.
//
// Parse can be called more than once. Each call recomputes all results from
// the arguments, so repeated calls give identical results.
func (a *Parser) Parse(halt bool) {
	values := make(map[string]string, len(a.options))
	for _, o := range a.options {
		for _, problem := range o.problems() {
			a.log.Warn("unusable option form", "option", o.String(), "problem", problem)
		}
		values[o.short] = a.resolve(o)
		a.log.Debug("option resolved", "option", o.String(), "value", values[o.short])
	}
	a.values = values

	a.helped = false
	for _, arg := range a.args {
		if arg == "-h" || strings.HasPrefix(arg, "--help") {
			a.log.Debug("help requested", "halt", halt)
			a.PrintHelp()
			a.helped = true
			if halt {
				a.exit(0)
			}
			break
		}
	}

	a.positionals = a.collect()
	a.log.Debug("positionals collected", "count", len(a.positionals))
}

// ParseWithRequiredArgs calls Parse and verifies that the number of positional
// arguments is at least min and at most max. A max of -1 means no upper
// limit. When the number is out of range the help text is printed, unless
// Parse already printed it, and if halt is true the process exits with status
// 2. Unlike the help path, which exits with status 0, this is a usage error.
// It returns true iff the number is in range.
func (a *Parser) ParseWithRequiredArgs(halt bool, min, max int) bool {
	a.Parse(halt)
	if min < 0 {
		min = 0
	}
	n := len(a.positionals)
	if n >= min && (max == -1 || n <= max) {
		return true
	}
	a.log.Warn("positional count out of range", "count", n, "min", min, "max", max)
	if !a.helped {
		a.PrintHelp()
	}
	if halt {
		a.exit(2)
	}
	return false
}

// Value returns the value of the option with the given short form, or an
// empty string if there is no such option. It returns the default value of
// options not found in the arguments. Parse must be called first.
func (a *Parser) Value(short string) string {
	return a.values[short]
}

// PositionalCount returns the number of positional arguments.
func (a *Parser) PositionalCount() int {
	return len(a.positionals)
}

// Positional returns the positional argument at index i, or an empty string if
// i is out of range.
func (a *Parser) Positional(i int) string {
	if i < 0 || i >= len(a.positionals) {
		return ""
	}
	return a.positionals[i]
}

// Positionals returns a copy of the positional arguments.
func (a *Parser) Positionals() []string {
	p := make([]string, len(a.positionals))
	copy(p, a.positionals)
	return p
}

// resolve returns the value of o. Later matches override earlier ones, but a
// flag seen anywhere yields "true".
func (a *Parser) resolve(o Option) string {
	value := o.def
	flag := false
	for i, arg := range a.args {
		if o.matchShort(arg) {
			if !o.requiresValue {
				flag = true
			} else if i+1 < len(a.args) && !strings.HasPrefix(a.args[i+1], "-") {
				value = a.args[i+1]
			}
			// else: value missing, keep what we have
		}
		if o.matchLong(arg) {
			if !o.requiresValue {
				flag = true
			} else if pos := strings.IndexByte(arg, '='); pos >= 0 {
				value = arg[pos+1:]
			}
		}
	}
	if flag {
		return "true"
	}
	return value
}

// collect returns the positional arguments. The argument following the short
// form of an option requiring a value is always taken as its value, even when
// it starts with "-".
func (a *Parser) collect() []string {
	positionals := make([]string, 0, len(a.args))
	for i := 0; i < len(a.args); i++ {
		arg := a.args[i]
		if !strings.HasPrefix(arg, "-") {
			positionals = append(positionals, arg)
			continue
		}
		o, ok := a.index[arg]
		switch {
		case !ok:
			if !a.isLong(arg) {
				a.log.Debug("unknown option ignored", "arg", arg)
			}
		case o.requiresValue:
			i++
		}
	}
	return positionals
}

// isLong returns true iff arg matches the long form of some option.
func (a *Parser) isLong(arg string) bool {
	for _, o := range a.options {
		if o.matchLong(arg) {
			return true
		}
	}
	return false
}
