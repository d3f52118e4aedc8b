// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobRequirements represents the structured requirements extracted from a
// job description.
type JobRequirements struct {
	JobRole                Role                  `json:"job_role"`
	RoleConfidence         float64               `json:"role_confidence"`
	RequiredSkills         map[string]SkillGroup `json:"required_skills"`
	RequiredCategoryOrder  []string              `json:"required_category_order"`
	ExperienceRequirements ExperienceRequirement `json:"experience_requirements"`
	EducationRequirements  EducationRequirement  `json:"education_requirements"`
	Keywords               []string              `json:"keywords"`
}

// ExperienceRequirement captures years-of-experience demands from a job description.
type ExperienceRequirement struct {
	MinYears       int `json:"min_years"`
	PreferredYears int `json:"preferred_years"`
}

// EducationRequirement captures degree demands from a job description.
type EducationRequirement struct {
	RequiredDegrees []string `json:"required_degrees"`
	DegreeRequired  bool     `json:"degree_required"`
}

// Empty reports whether no job description was provided or nothing could
// be extracted from it.
func (j *JobRequirements) Empty() bool {
	return j == nil || (j.JobRole.IsGeneral() && len(j.RequiredSkills) == 0 &&
		j.ExperienceRequirements.MinYears == 0 && len(j.Keywords) == 0 &&
		!j.EducationRequirements.DegreeRequired)
}
