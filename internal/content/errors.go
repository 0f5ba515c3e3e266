package content

import "fmt"

// UnavailableError reports that the content document could not be retrieved
// or was not a well-formed document. It is the only failure that aborts a
// binding pass.
type UnavailableError struct {
	Location string
	Message  string
	Cause    error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("content unavailable at %s: %s: %v", e.Location, e.Message, e.Cause)
	}
	return fmt.Sprintf("content unavailable at %s: %s", e.Location, e.Message)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
