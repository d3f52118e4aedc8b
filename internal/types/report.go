// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// FitScores holds the job-fit sub-scores computed against a specific job
// description. All values are in [0,100].
type FitScores struct {
	OverallFit    float64 `json:"overall_fit"`
	SkillsFit     float64 `json:"skills_fit"`
	ExperienceFit float64 `json:"experience_fit"`
	EducationFit  float64 `json:"education_fit"`
	KeywordMatch  float64 `json:"keyword_match"`
	FitWeights    Weights `json:"fit_weights"`
}

// DetailedScores holds the general sub-scores that feed the base score.
// JobFit is absent when no job description was supplied.
type DetailedScores struct {
	JobFit     *float64 `json:"job_fit,omitempty"`
	Skills     float64  `json:"skills"`
	Experience float64  `json:"experience"`
	Education  float64  `json:"education"`
}

// ContextualAnalysis describes the contextual bonus applied to the base score.
type ContextualAnalysis struct {
	MatchLevel           MatchLevel `json:"match_level"`
	BonusPoints          float64    `json:"bonus_points"`
	SkillMatchPercentage float64    `json:"skill_match_percentage"`
	MatchedCategories    []string   `json:"matched_categories"`
	Reasoning            string     `json:"reasoning"`
	PassionBonus         float64    `json:"passion_bonus"`
	DemandBonus          float64    `json:"demand_bonus"`
}

// ConfidenceLevel grades how trustworthy a report is.
type ConfidenceLevel string

// Confidence level values.
const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// ScoreReport is the single structured output of the scoring engine.
// The JSON field shape is stable: downstream consumers persist and
// re-read these reports.
type ScoreReport struct {
	OverallScore       float64            `json:"overall_score"`
	BaseScore          float64            `json:"base_score"`
	ContextualBonus    float64            `json:"contextual_bonus"`
	DetailedScores     DetailedScores     `json:"detailed_scores"`
	ContextualAnalysis ContextualAnalysis `json:"contextual_analysis"`
	JobFitAnalysis     *FitScores         `json:"job_fit_analysis,omitempty"`
	SkillsFound        ExtractedSkills    `json:"skills_found"`
	ExperienceInfo     ExperienceProfile  `json:"experience_info"`
	EducationInfo      EducationProfile   `json:"education_info"`
	Achievements       []Achievement      `json:"achievements"`
	TotalSkillsCount   int                `json:"total_skills_count"`
	JobRoleIdentified  Role               `json:"job_role_identified"`
	Recommendations    []string           `json:"recommendations"`
	ConfidenceLevel    ConfidenceLevel    `json:"confidence_level"`
	ScoringRationale   string             `json:"scoring_rationale"`
}
