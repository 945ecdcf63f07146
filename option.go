package optparse

import "strings"

// Option declares one recognized command line option. An Option is created by
// NewOption and cannot be changed afterwards.
//
// The short form (e.g. "-r") is matched by equality and identifies the option
// in Parser.Value. The long form (e.g. "--samplingRate") is matched as a
// prefix, so that "--samplingRate=44100" is recognized. An empty short or long
// form never matches.
type Option struct {
	short         string
	long          string
	requiresValue bool   // false: presence alone sets the value to "true"
	def           string // value used when the option is absent
	help          string
}

// NewOption returns an option. When requiresValue is true the value follows the
// short form as the next argument, or the long form after "=". When it is
// false the option is a flag and its value becomes "true" when present.
func NewOption(short, long string, requiresValue bool, def, help string) Option {
	return Option{
		short:         short,
		long:          long,
		requiresValue: requiresValue,
		def:           def,
		help:          help,
	}
}

// Short returns the short form.
func (o Option) Short() string { return o.short }

// Long returns the long form.
func (o Option) Long() string { return o.long }

// RequiresValue returns true unless the option is a flag.
func (o Option) RequiresValue() bool { return o.requiresValue }

// Default returns the default value.
func (o Option) Default() string { return o.def }

// Help returns the help text.
func (o Option) Help() string { return o.help }

func (o Option) String() string {
	switch {
	case len(o.short) == 0:
		return o.long
	case len(o.long) == 0:
		return o.short
	}
	return o.short + ", " + o.long
}

// matchShort returns true iff arg is the short form.
func (o Option) matchShort(arg string) bool {
	return len(o.short) > 0 && arg == o.short
}

// matchLong returns true iff arg starts with the long form.
func (o Option) matchLong(arg string) bool {
	return len(o.long) > 0 && strings.HasPrefix(arg, o.long)
}
