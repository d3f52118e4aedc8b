package roles

import "fmt"

// ProfileLoadError represents a failure to load or validate an external
// role weight profile file
type ProfileLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ProfileLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("role profiles load failed for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("role profiles load failed for %s: %s", e.Path, e.Message)
}

func (e *ProfileLoadError) Unwrap() error {
	return e.Cause
}
