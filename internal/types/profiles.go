// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ExperienceProfile represents the experience signals extracted from resume text.
type ExperienceProfile struct {
	YearsMentioned    []int             `json:"years_mentioned"`
	MaxYears          int               `json:"max_years"`
	Companies         []string          `json:"companies"`
	QualityScore      float64           `json:"quality_score"`
	QualityIndicators QualityIndicators `json:"quality_indicators"`
}

// QualityIndicators holds literal snippets extracted for display purposes.
type QualityIndicators struct {
	LeadershipEvidence     []string `json:"leadership_evidence"`
	QuantifiedAchievements []string `json:"quantified_achievements"`
}

// EducationProfile represents the education signals extracted from resume text.
type EducationProfile struct {
	Degrees          []string  `json:"degrees"`
	GPAScores        []float64 `json:"gpa_scores"`
	HighestGPA       *float64  `json:"highest_gpa,omitempty"`
	EducationQuality float64   `json:"education_quality"`
}

// AchievementType classifies what a quantified achievement is about.
type AchievementType string

// Achievement type values.
const (
	AchievementFinancial       AchievementType = "financial"
	AchievementOperational     AchievementType = "operational"
	AchievementCustomerFocused AchievementType = "customer_focused"
	AchievementGeneral         AchievementType = "general"
)

// ImpactLevel buckets the magnitude of a quantified achievement.
type ImpactLevel string

// Impact level values.
const (
	ImpactLow    ImpactLevel = "low"
	ImpactMedium ImpactLevel = "medium"
	ImpactHigh   ImpactLevel = "high"
)

// Achievement is a single quantified achievement statement found in a resume.
type Achievement struct {
	Statement   string          `json:"statement"`
	Type        AchievementType `json:"type"`
	ImpactLevel ImpactLevel     `json:"impact_level"`
}
