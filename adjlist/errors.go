package adjlist

import "fmt"

// invariantError reports a violation of the reverse-edge invariant found by
// CheckInvariants.
type invariantError struct{ msg string }

func (e *invariantError) Error() string { return "adjlist: " + e.msg }

func invariantErrorf(format string, args ...any) error {
	return &invariantError{msg: fmt.Sprintf(format, args...)}
}
