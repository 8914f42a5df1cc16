// Package invariant provides the debug-only consistency checks of isovox.
//
// Checks are enabled by building with -tags isovoxdebug or per volume through
// isovox.WithInvariantChecks. Hot paths guard calls with `if c.On` so that
// disabled checks build no arguments.
package invariant

import "fmt"

// Violation is the panic value raised by a failed check.
type Violation struct {
	Msg string
}

func (v *Violation) Error() string {
	return "isovox: invariant violated: " + v.Msg
}

// Checker evaluates checks when On is set.
type Checker struct {
	On bool
}

// Default returns a checker enabled according to the build tags.
func Default() Checker {
	return Checker{On: Enabled}
}

// Check panics with a *Violation if the checker is on and cond is false.
func (c Checker) Check(cond bool, format string, args ...any) {
	if c.On && !cond {
		panic(&Violation{Msg: fmt.Sprintf(format, args...)})
	}
}
