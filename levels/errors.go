package levels

import "fmt"

// MalformedLevelError reports a missing or invalid field in a level
// description. A session cannot start from a malformed level.
type MalformedLevelError struct {
	Field  string
	Reason string
}

func (e *MalformedLevelError) Error() string {
	return fmt.Sprintf("levels: malformed level: %s: %s", e.Field, e.Reason)
}

func malformed(field, format string, args ...any) *MalformedLevelError {
	return &MalformedLevelError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
