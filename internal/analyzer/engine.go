// Package analyzer wires the extractors and scorers into the single
// analysis entry point, with an explicit fallback arm for internal
// faults and a parallel batch driver.
package analyzer

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/matching"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/recommend"
	"github.com/jonathan/resume-screener/internal/roles"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
)

// maxInputLength bounds analysis latency on adversarial input; longer
// texts are truncated, never rejected.
const maxInputLength = 200_000

// Confidence grading thresholds.
const (
	confidentTextLength = 300
	confidentSkillCount = 5
	minimalTextLength   = 100
)

// Engine is the resume scoring engine. It is built once over an
// immutable taxonomy and role-profile registry and is safe for
// concurrent use.
type Engine struct {
	taxonomy *types.Taxonomy
	matcher  *matching.Matcher
	profiles roles.Registry
	logger   *slog.Logger
}

// NewEngine constructs an engine over the given taxonomy and profile
// registry. The zero registry scores with the built-in role profiles;
// neither input may be mutated afterwards.
func NewEngine(tax *types.Taxonomy, profiles roles.Registry, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		taxonomy: tax,
		matcher:  matching.NewMatcher(tax),
		profiles: profiles,
		logger:   logger,
	}
}

// Taxonomy returns the engine's taxonomy.
func (e *Engine) Taxonomy() *types.Taxonomy { return e.taxonomy }

// Analyze scores a resume, optionally against a job description and job
// title. An empty job description selects the general scoring path. The
// returned error is always an *AnalysisFault; callers wanting a report
// no matter what should use AnalyzeOrFallback.
func (e *Engine) Analyze(resumeText, jobDescription, jobTitle string) (report types.ScoreReport, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &AnalysisFault{Message: fmt.Sprintf("internal failure: %v", r)}
		}
	}()

	resumeText = truncate(resumeText)
	jobDescription = truncate(jobDescription)

	skills := e.matcher.Match(resumeText)
	experience := extraction.ExtractExperience(resumeText)
	education := extraction.ExtractEducation(resumeText)
	achievements := extraction.ExtractAchievements(resumeText)

	var req *types.JobRequirements
	roleText := strings.TrimSpace(strings.Join([]string{jobTitle, jobDescription}, "\n"))
	if strings.TrimSpace(jobDescription) != "" || strings.TrimSpace(jobTitle) != "" {
		extracted := parsing.ExtractRequirements(roleText, e.matcher, e.profiles)
		req = &extracted
	}

	var fit *types.FitScores
	if req != nil {
		f := scoring.ScoreFit(skills, experience, education, req, e.profiles)
		fit = &f
	}

	skillsScore := scoring.SkillsScore(skills, req, e.profiles)
	experienceScore := scoring.ExperienceScore(experience)
	educationScore := scoring.EducationScore(education)

	base := scoring.BaseScore(fit, skillsScore, experienceScore, educationScore)

	contextual := scoring.ContextualBonus(skills, resumeText, req, e.profiles)

	role := types.RoleGeneral
	if req != nil {
		role = req.JobRole
	}
	final := scoring.FinalScore(base, contextual, role, e.profiles)

	report = types.ScoreReport{
		OverallScore:       final,
		BaseScore:          round2(base),
		ContextualBonus:    contextual.BonusPoints,
		DetailedScores:     detailedScores(fit, skillsScore, experienceScore, educationScore),
		ContextualAnalysis: contextual,
		JobFitAnalysis:     fit,
		SkillsFound:        *skills,
		ExperienceInfo:     experience,
		EducationInfo:      education,
		Achievements:       achievements,
		TotalSkillsCount:   skills.TotalCount(),
		JobRoleIdentified:  role,
		Recommendations:    recommend.Generate(final, skills, experience, achievements, contextual, req),
		ConfidenceLevel:    confidence(resumeText, skills),
		ScoringRationale:   rationale(fit, role),
	}
	return report, nil
}

// AnalyzeOrFallback always returns a usable report: a full analysis when
// possible, a reduced-fidelity fallback report on any internal fault.
func (e *Engine) AnalyzeOrFallback(resumeText, jobDescription, jobTitle string) types.ScoreReport {
	report, err := e.Analyze(resumeText, jobDescription, jobTitle)
	if err != nil {
		e.logger.Warn("analysis fault, producing fallback report", slog.Any("error", err))
		return e.fallbackReport(resumeText)
	}
	return report
}

func detailedScores(fit *types.FitScores, skillsScore, experienceScore, educationScore float64) types.DetailedScores {
	scores := types.DetailedScores{
		Skills:     round2(skillsScore),
		Experience: round2(experienceScore),
		Education:  round2(educationScore),
	}
	if fit != nil {
		jobFit := fit.OverallFit
		scores.JobFit = &jobFit
	}
	return scores
}

func confidence(resumeText string, skills *types.ExtractedSkills) types.ConfidenceLevel {
	switch {
	case len(resumeText) < minimalTextLength || skills.TotalCount() == 0:
		return types.ConfidenceLow
	case len(resumeText) >= confidentTextLength && skills.TotalCount() >= confidentSkillCount:
		return types.ConfidenceHigh
	default:
		return types.ConfidenceMedium
	}
}

func rationale(fit *types.FitScores, role types.Role) string {
	if fit == nil {
		return "general scoring path: skills 50%, experience 30%, education 20%; no job description supplied"
	}
	return fmt.Sprintf(
		"job-matching path for %s: job fit 70%%, skills 20%%, experience 15%%, education 5%%, plus contextual bonus",
		role)
}

func truncate(text string) string {
	if len(text) > maxInputLength {
		return text[:maxInputLength]
	}
	return text
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
