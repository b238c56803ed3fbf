package validation

import "fmt"

// Field names reported by validation errors.
const (
	FieldTitle  = "title"
	FieldAuthor = "author"
	FieldYear   = "year"
)

// Error reports a single violated field rule. Field is empty for
// request-level rules such as an update that sets nothing.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
