package taxonomy

import (
	"errors"
	"fmt"
)

// ErrMalformed matches every *MalformedError via errors.Is.
var ErrMalformed = errors.New("malformed taxonomy")

// MalformedError reports the first line the parser could not accept.
// Line is 1-based; zero means the document as a whole.
type MalformedError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("malformed taxonomy: %s", e.Reason)
	}
	return fmt.Sprintf("malformed taxonomy: line %d: %s: %q", e.Line, e.Reason, e.Text)
}

func (e *MalformedError) Is(target error) bool { return target == ErrMalformed }
