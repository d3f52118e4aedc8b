// Package scoring combines extracted resume signals with job requirements
// to produce fit sub-scores, contextual bonuses, and the overall report
// score. All formulas are deterministic and clamp into [0,100].
package scoring

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/roles"
	"github.com/jonathan/resume-screener/internal/types"
)

// Neutral constants for fit sub-scores when a requirement dimension is
// absent from the job description.
const (
	neutralFit        = 50.0
	neutralExperience = 75.0
	neutralEducation  = 75.0
	neutralKeyword    = 50.0

	missingRequiredDegree = 20.0

	experiencePointsPerYearOver  = 5.0
	experiencePointsPerYearUnder = 10.0
)

// degreeHierarchy ranks recognized degree mentions on a five-point scale.
var degreeHierarchy = map[string]int{
	"certificate": 1,
	"diploma":     2,

	"bachelor": 3, "bachelors": 3, "b.tech": 3, "btech": 3, "b.sc": 3,
	"bsc": 3, "bba": 3, "b.com": 3, "bcom": 3, "b.e": 3, "be": 3,
	"b.a": 3, "ba": 3, "degree": 3, "graduation": 3,

	"master": 4, "masters": 4, "m.tech": 4, "mtech": 4, "m.sc": 4,
	"msc": 4, "mba": 4, "m.com": 4, "mcom": 4, "m.e": 4, "me": 4,
	"m.a": 4, "ma": 4,

	"phd": 5, "ph.d": 5, "doctorate": 5,
}

// ScoreFit computes the job-fit sub-scores for a resume against extracted
// job requirements. Dimension weights come from the role's profile in the
// registry. With no requirements every dimension is the neutral 50.
func ScoreFit(
	skills *types.ExtractedSkills,
	experience types.ExperienceProfile,
	education types.EducationProfile,
	req *types.JobRequirements,
	profiles roles.Registry,
) types.FitScores {
	if req == nil || req.Empty() {
		return types.FitScores{
			OverallFit:    neutralFit,
			SkillsFit:     neutralFit,
			ExperienceFit: neutralFit,
			EducationFit:  neutralFit,
			KeywordMatch:  neutralFit,
			FitWeights:    roles.DefaultWeights,
		}
	}

	weights := roles.DefaultWeights
	if profile, ok := profiles.Profile(req.JobRole); ok {
		weights = profile.Weights
	}

	skillsFit := skillsFitScore(skills, req)
	experienceFit := experienceFitScore(experience.MaxYears, req.ExperienceRequirements.MinYears)
	educationFit := educationFitScore(education.Degrees, req.EducationRequirements)
	keywordMatch := keywordMatchScore(skills, req.Keywords)

	overall := skillsFit*weights.Skills +
		experienceFit*weights.Experience +
		educationFit*weights.Education +
		keywordMatch*weights.Keyword

	return types.FitScores{
		OverallFit:    round2(clamp(overall)),
		SkillsFit:     round2(skillsFit),
		ExperienceFit: round2(experienceFit),
		EducationFit:  round2(educationFit),
		KeywordMatch:  round2(keywordMatch),
		FitWeights:    weights,
	}
}

// skillsFitScore counts how many required skills have a case-insensitive
// substring match among the resume's skills in the corresponding category,
// as a percentage of all required skills.
func skillsFitScore(skills *types.ExtractedSkills, req *types.JobRequirements) float64 {
	totalRequired := 0
	matched := 0

	for category, group := range req.RequiredSkills {
		resumeSkills := resumeSkillsForCategory(skills, category)
		for _, required := range group.AllSkills() {
			totalRequired++
			if substringMatch(required, resumeSkills) {
				matched++
			}
		}
	}

	if totalRequired == 0 {
		return neutralFit
	}
	return float64(matched) / float64(totalRequired) * 100
}

func resumeSkillsForCategory(skills *types.ExtractedSkills, category string) []string {
	group, ok := skills.Categories[category]
	if !ok {
		return nil
	}
	return group.AllSkills()
}

// substringMatch reports whether the required skill appears as a
// substring of any candidate, or vice versa. Matching is not exact so
// "sql" covers "sql server" and "postgresql" alike.
func substringMatch(required string, candidates []string) bool {
	required = strings.ToLower(required)
	for _, candidate := range candidates {
		candidate = strings.ToLower(candidate)
		if strings.Contains(candidate, required) || strings.Contains(required, candidate) {
			return true
		}
	}
	return false
}

// experienceFitScore starts from the neutral 75, adds 5 per year over the
// requirement, and subtracts 10 per year under it.
func experienceFitScore(resumeYears, requiredYears int) float64 {
	if requiredYears == 0 {
		return neutralExperience
	}
	if resumeYears >= requiredYears {
		return clamp(neutralExperience + float64(resumeYears-requiredYears)*experiencePointsPerYearOver)
	}
	score := neutralExperience - float64(requiredYears-resumeYears)*experiencePointsPerYearUnder
	if score < 0 {
		score = 0
	}
	return score
}

// educationFitScore compares the resume's highest degree level against
// the job's required level on the five-point hierarchy.
func educationFitScore(degrees []string, req types.EducationRequirement) float64 {
	if !req.DegreeRequired {
		return neutralEducation
	}
	resumeLevel := highestDegreeLevel(degrees)
	if resumeLevel == 0 {
		return missingRequiredDegree
	}

	requiredLevel := highestDegreeLevel(req.RequiredDegrees)
	if requiredLevel == 0 {
		requiredLevel = degreeHierarchy["bachelor"]
	}

	switch {
	case resumeLevel >= requiredLevel:
		return 100
	case resumeLevel == requiredLevel-1:
		return 80
	default:
		return 50
	}
}

// highestDegreeLevel returns the best rank among the degree mentions, or
// 0 when none rank.
func highestDegreeLevel(degrees []string) int {
	highest := 0
	for _, degree := range degrees {
		if level, ok := degreeHierarchy[strings.ToLower(degree)]; ok && level > highest {
			highest = level
		}
	}
	return highest
}

// keywordMatchScore is the fraction of job keywords literally present in
// the concatenation of all resume skill strings.
func keywordMatchScore(skills *types.ExtractedSkills, keywords []string) float64 {
	if len(keywords) == 0 {
		return neutralKeyword
	}
	haystack := strings.ToLower(strings.Join(skills.AllSkills(), " "))
	matched := 0
	for _, kw := range keywords {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			matched++
		}
	}
	return float64(matched) / float64(len(keywords)) * 100
}
