// Package optparse resolves command line options and positional arguments. It
// is tolerant: it never returns an error and never rejects input. Unknown
// options are ignored, missing values leave defaults in place, and lookups of
// anything unknown return an empty string. All values are strings.
//
// Options are declared with NewOption, giving a short form, a long form, whether
// a value is required, a default value and a help text:
//
//	package main
//
//	import (
//		"fmt"
//		"os"
//
//		"github.com/jpvetterli/optparse"
//	)
//
//	func main() {
//		a := optparse.NewParser(os.Args[1:],
//			optparse.NewOption("-s", "--samplingRate", true, "48000", "Set sampling rate"),
//			optparse.NewOption("-e", "--encoding", true, "PCM16", "Set encoding PCM8, PCM16, PCM24, PCM32"),
//			optparse.NewOption("-v", "--verbose", false, "false", "Enable verbose mode"),
//		).Doc("Usage: convert [options] input output...")
//		a.ParseWithRequiredArgs(true, 1, -1)
//		fmt.Println(a.Value("-s"), a.Value("-e"), a.Value("-v"))
//		for i := 0; i < a.PositionalCount(); i++ {
//			fmt.Println(i, a.Positional(i))
//		}
//	}
//
// The arguments given to NewParser exclude the program name.
//
// Short forms are matched exactly. A short form requiring a value takes the next
// argument, unless it starts with a hyphen:
//
//	-s 44100
//
// Long forms are matched as prefixes. A long form requiring a value takes the
// text after the first equal sign:
//
//	--samplingRate=44100
//
// An option not requiring a value is a flag. Its value is "true" when the short
// or the long form is present, else its default. When an option occurs more than
// once, the last occurrence wins.
//
// Any argument not starting with a hyphen is a positional argument, except the
// argument following the short form of an option requiring a value, which is
// always taken as that value, even if it starts with a hyphen.
//
// # Help
//
// When an argument is "-h" or starts with "--help", Parse prints the
// description followed by one line per option, and terminates the process with
// status 0 if asked to. ParseWithRequiredArgs prints the help text when the
// number of positional arguments is out of range, and terminates with status 2,
// a usage error. Output and termination can be redirected with SetOutput and
// SetExit.
//
// # Logging
//
// The parser logs its progress with log/slog at debug level, and warns about
// option forms that cannot match as intended. Nothing is logged unless a
// logger is set with SetLogger.
package optparse
