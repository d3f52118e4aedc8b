package analyzer

import "fmt"

// AnalysisFault represents an unexpected internal failure during
// analysis. Callers treat it as the signal to fall back to a
// reduced-fidelity report rather than surfacing an error to the user.
type AnalysisFault struct {
	Message string
	Cause   error
}

func (e *AnalysisFault) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("analysis fault: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("analysis fault: %s", e.Message)
}

func (e *AnalysisFault) Unwrap() error {
	return e.Cause
}
