package scoring

import (
	"math"

	"github.com/jonathan/resume-screener/internal/roles"
	"github.com/jonathan/resume-screener/internal/types"
)

// Base-score weights when a job description is supplied. They sum to
// 1.10 on purpose; the final score is capped at 100.
const (
	baseWeightJobFit     = 0.70
	baseWeightSkills     = 0.20
	baseWeightExperience = 0.15
	baseWeightEducation  = 0.05
)

// Base-score weights for the general (no job description) path.
const (
	generalWeightSkills     = 0.50
	generalWeightExperience = 0.30
	generalWeightEducation  = 0.20
)

// Skills sub-score constants.
const (
	skillPoints               = 3.0
	diversityBonusPerCategory = 4.0
	diversityBonusCap         = 20.0

	// Tunable penalty for skills in categories unrelated to the target
	// role; applied only when a role profile exists.
	irrelevantSkillPenalty    = 1.0
	irrelevantSkillPenaltyCap = 15.0
)

// Experience sub-score constants.
const (
	experiencePointsPerYear = 10.0
	experienceYearsCeiling  = 70.0
	qualityAdjustmentFactor = 0.6
)

// Education sub-score constants.
const (
	noEducationScore    = 30.0
	educationLevelBase  = 40.0
	educationLevelStep  = 10.0
	eduQualityFactor    = 0.2
	gpaBonusStrong      = 10.0
	gpaBonusGood        = 7.0
	gpaBonusFair        = 5.0
	fourPointScaleLimit = 4.0
)

// SkillsScore converts matched skills into a 0-100 sub-score: 3 points
// per skill, a diversity bonus per additional matched category, minus a
// penalty for skills irrelevant to the target role.
func SkillsScore(skills *types.ExtractedSkills, req *types.JobRequirements, profiles roles.Registry) float64 {
	count := skills.TotalCount()
	score := float64(count) * skillPoints

	categories := len(skills.Categories)
	if categories > 1 {
		score += min(float64(categories-1)*diversityBonusPerCategory, diversityBonusCap)
	}

	score -= irrelevantPenalty(skills, req, profiles)
	return clamp(score)
}

// irrelevantPenalty charges for matched skills in categories outside the
// role's required and preferred lists. Without a role profile there is no
// notion of irrelevance and the penalty is zero.
func irrelevantPenalty(skills *types.ExtractedSkills, req *types.JobRequirements, profiles roles.Registry) float64 {
	if req == nil {
		return 0
	}
	profile, ok := profiles.Profile(req.JobRole)
	if !ok {
		return 0
	}

	relevant := make(map[string]bool)
	for _, c := range profile.RequiredSkills {
		relevant[c] = true
	}
	for _, c := range profile.PreferredSkills {
		relevant[c] = true
	}

	penalty := 0.0
	for category, group := range skills.Categories {
		if !relevant[category] {
			penalty += float64(len(group.AllSkills())) * irrelevantSkillPenalty
		}
	}
	return min(penalty, irrelevantSkillPenaltyCap)
}

// ExperienceScore converts years and quality into a 0-100 sub-score:
// 10 points per year up to a ceiling, adjusted by how far the quality
// score sits from neutral.
func ExperienceScore(experience types.ExperienceProfile) float64 {
	score := min(float64(experience.MaxYears)*experiencePointsPerYear, experienceYearsCeiling)
	score += (experience.QualityScore - 50.0) * qualityAdjustmentFactor
	return clamp(score)
}

// EducationScore converts degrees, GPA, and institution quality into a
// 0-100 sub-score. No degree mentions at all yield the flat base of 30.
func EducationScore(education types.EducationProfile) float64 {
	level := highestDegreeLevel(education.Degrees)
	if level == 0 {
		return noEducationScore
	}

	score := educationLevelBase + float64(level)*educationLevelStep
	score += gpaBonus(education.HighestGPA)
	score += (education.EducationQuality - 50.0) * eduQualityFactor
	return clamp(score)
}

// gpaBonus grades the best GPA on either a 4-point or 10-point scale.
func gpaBonus(highest *float64) float64 {
	if highest == nil {
		return 0
	}
	gpa := *highest
	if gpa <= fourPointScaleLimit {
		switch {
		case gpa >= 3.7:
			return gpaBonusStrong
		case gpa >= 3.3:
			return gpaBonusGood
		case gpa >= 3.0:
			return gpaBonusFair
		}
		return 0
	}
	switch {
	case gpa >= 9.0:
		return gpaBonusStrong
	case gpa >= 8.0:
		return gpaBonusGood
	case gpa >= 7.0:
		return gpaBonusFair
	}
	return 0
}

// BaseScore combines the sub-scores using the job-description weighting
// when fit scores are present, otherwise the general weighting.
func BaseScore(fit *types.FitScores, skillsScore, experienceScore, educationScore float64) float64 {
	if fit != nil {
		return fit.OverallFit*baseWeightJobFit +
			skillsScore*baseWeightSkills +
			experienceScore*baseWeightExperience +
			educationScore*baseWeightEducation
	}
	return skillsScore*generalWeightSkills +
		experienceScore*generalWeightExperience +
		educationScore*generalWeightEducation
}

// FinalScore adds the contextual bonus, caps at 100, then applies the
// role's minimum-threshold floor for contextually matched candidates.
func FinalScore(base float64, analysis types.ContextualAnalysis, role types.Role, profiles roles.Registry) float64 {
	final := base + analysis.BonusPoints
	if final > 100 {
		final = 100
	}

	if analysis.MatchLevel.Matched() {
		if profile, ok := profiles.Profile(role); ok {
			if floor := float64(profile.MinimumThreshold); final < floor {
				final = floor
			}
		}
	}

	return round2(clamp(final))
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
