// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Weights is the per-role weight map over the fit dimensions.
// Skills+Experience+Education+Keyword must sum to 1.0; Keyword is fixed
// at 0.1 for every role-specific profile.
type Weights struct {
	Skills     float64 `json:"skills" validate:"gte=0,lte=1"`
	Experience float64 `json:"experience" validate:"gte=0,lte=1"`
	Education  float64 `json:"education" validate:"gte=0,lte=1"`
	Keyword    float64 `json:"keyword" validate:"gte=0,lte=1"`
}

// Sum returns the total of all weight dimensions.
func (w Weights) Sum() float64 {
	return w.Skills + w.Experience + w.Education + w.Keyword
}

// RoleWeightProfile is the static per-role scoring record. Profiles are
// loaded once at process start and never mutated.
type RoleWeightProfile struct {
	Role             Role     `json:"role" validate:"required"`
	RequiredSkills   []string `json:"required_skills" validate:"required,min=1"`
	PreferredSkills  []string `json:"preferred_skills"`
	Weights          Weights  `json:"weights"`
	ContextualBonus  int      `json:"contextual_bonus" validate:"gte=0,lte=100"`
	MinimumThreshold int      `json:"minimum_threshold" validate:"gte=0,lte=100"`
}

// MatchLevel buckets required-skill-category coverage.
type MatchLevel string

// Match level values, ordered from best to worst.
const (
	MatchPerfect MatchLevel = "perfect_match"
	MatchGood    MatchLevel = "good_match"
	MatchPartial MatchLevel = "partial_match"
	MatchNone    MatchLevel = "no_match"
)

// Matched reports whether the level indicates at least partial role fit.
func (m MatchLevel) Matched() bool {
	return m == MatchPerfect || m == MatchGood || m == MatchPartial
}
