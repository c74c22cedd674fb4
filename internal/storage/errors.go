package storage

import "fmt"

// QuotaExceededError reports a write the backend rejected because it would
// push the namespace past its capacity budget. It is fatal to the operation
// that triggered it; previously stored state is untouched.
type QuotaExceededError struct {
	Key   string
	Size  int
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("storage quota exceeded writing %q: %d bytes would exceed the %d byte limit", e.Key, e.Size, e.Limit)
}

// UnavailableError reports that the backend cannot be used at all, for example
// because its directory cannot be created or written.
type UnavailableError struct {
	Message string
	Cause   error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("storage unavailable: %s", e.Message)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
