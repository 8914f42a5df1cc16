//go:build isovoxdebug

package invariant

// Enabled reports whether checks are on by default.
const Enabled = true
