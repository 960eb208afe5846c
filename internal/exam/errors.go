package exam

import "fmt"

// ConfigurationError indicates an exam request that cannot be satisfied,
// e.g. a difficulty distribution that doesn't sum to 100 or a question pool
// with fewer hard questions than requested.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("impossible exam configuration: %s", e.Reason)
}

// ValidationError indicates a malformed question record or an out-of-range
// answer submission.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return "invalid value: " + e.Reason
}

// SessionClosedError indicates a mutation attempted after the session
// finished. Finished is terminal.
type SessionClosedError struct {
	Op string
}

func (e *SessionClosedError) Error() string {
	return fmt.Sprintf("session is finished: %s not permitted", e.Op)
}
