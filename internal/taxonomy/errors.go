package taxonomy

import "fmt"

// LoadError represents a failure to load or validate an external taxonomy file
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("taxonomy load failed for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("taxonomy load failed for %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// DuplicateSkillError reports a skill listed under two subcategories of the
// same category, which the matcher invariants forbid
type DuplicateSkillError struct {
	Category string
	Skill    string
	SubA     string
	SubB     string
}

func (e *DuplicateSkillError) Error() string {
	return fmt.Sprintf("skill %q appears under both %q and %q in category %q",
		e.Skill, e.SubA, e.SubB, e.Category)
}
