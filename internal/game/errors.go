package game

import "fmt"

// UserError is a rejection that should be shown to the player as
// narrative text. It is never a system failure: unsupported verbs,
// gated actions and lookup misses all surface this way instead of
// crashing or staying silent.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// Rejectf creates a user-facing rejection.
func Rejectf(format string, args ...any) *UserError {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}
