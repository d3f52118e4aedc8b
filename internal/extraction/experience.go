// Package extraction pulls structured experience, education, and
// achievement signals out of free-form resume text. Extractors never
// fail: unparseable text yields zero-valued profiles.
package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Experience quality scoring constants. The score starts neutral and is
// adjusted by capped per-signal increments, then clamped to [0,100].
const (
	qualityBase = 50.0

	impactVerbPoints = 5.0
	impactVerbCap    = 20.0

	quantifiedPoints = 3.0
	quantifiedCap    = 15.0

	leadershipPoints = 4.0
	leadershipCap    = 15.0

	maxCompanies        = 10
	maxEvidenceSnippets = 5
)

// yearPatterns match the recognized years-of-experience phrasings. Every
// capture group is an integer year count.
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`),
	regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*(?:years?|yrs?)`),
	regexp.MustCompile(`over\s+(\d+)\s*(?:years?|yrs?)`),
	regexp.MustCompile(`more\s+than\s+(\d+)\s*(?:years?|yrs?)`),
	regexp.MustCompile(`minimum\s+(?:of\s+)?(\d+)\s*(?:years?|yrs?)`),
	regexp.MustCompile(`at\s+least\s+(\d+)\s*(?:years?|yrs?)`),
}

var (
	companyAfterAt = regexp.MustCompile(`(?:\bat\s+|@\s*)([A-Z][A-Za-z0-9&.]*(?:\s+[A-Z][A-Za-z0-9&.]*){0,3})`)
	companySuffix  = regexp.MustCompile(`([A-Z][A-Za-z0-9&.]*(?:\s+[A-Z][A-Za-z0-9&.]*){0,3})\s+(?:Inc\.?|Corp\.?|Corporation|LLC|Ltd\.?|Pvt\.?|Technologies|Solutions|Systems|Labs|Group)\b`)

	impactVerbs = []string{
		"led", "managed", "increased", "improved", "achieved",
		"delivered", "transformed",
	}

	quantifiedResult = regexp.MustCompile(`\d+(?:\.\d+)?%|\$\s?\d[\d,]*(?:\.\d+)?[kmb]?|\b\d+\s*(?:years?|k)\b`)

	leadershipPhrases = []string{
		"team of", "managed", "supervised", "led", "directed",
	}

	leadershipSnippet = regexp.MustCompile(`(?i)\b(?:led|managed|supervised|directed|headed)\b[^.\n]{0,40}`)
	quantifiedSnippet = regexp.MustCompile(`(?i)\b(?:increased|improved|reduced|grew|cut|saved|achieved|delivered)\b[^.\n]{0,60}?(?:\d+(?:\.\d+)?%|\$\s?\d[\d,]*)`)
)

// ExtractExperience parses years-of-experience mentions, company names,
// and experience quality signals out of resume text.
func ExtractExperience(text string) types.ExperienceProfile {
	lower := strings.ToLower(text)

	years := extractYears(lower)
	maxYears := 0
	for _, y := range years {
		if y > maxYears {
			maxYears = y
		}
	}

	profile := types.ExperienceProfile{
		YearsMentioned: years,
		MaxYears:       maxYears,
		Companies:      extractCompanies(text),
		QualityIndicators: types.QualityIndicators{
			LeadershipEvidence:     snippets(leadershipSnippet, text),
			QuantifiedAchievements: snippets(quantifiedSnippet, text),
		},
	}
	profile.QualityScore = qualityScore(lower)
	return profile
}

// extractYears collects every integer matched by the year phrasings, in
// pattern order then occurrence order.
func extractYears(lower string) []int {
	var years []int
	for _, pattern := range yearPatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			for _, group := range match[1:] {
				if group == "" {
					continue
				}
				if n, err := strconv.Atoi(group); err == nil {
					years = append(years, n)
				}
			}
		}
	}
	return years
}

// extractCompanies captures capitalized phrases following "at"/"@" or
// preceding a corporate suffix, capped at maxCompanies unique entries.
func extractCompanies(text string) []string {
	var companies []string
	seen := make(map[string]bool)

	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] || len(companies) >= maxCompanies {
			return
		}
		seen[name] = true
		companies = append(companies, name)
	}

	for _, match := range companyAfterAt.FindAllStringSubmatch(text, -1) {
		add(match[1])
	}
	for _, match := range companySuffix.FindAllStringSubmatch(text, -1) {
		add(match[1])
	}
	return companies
}

func qualityScore(lower string) float64 {
	score := qualityBase

	verbPoints := 0.0
	for _, verb := range impactVerbs {
		if strings.Contains(lower, verb) {
			verbPoints += impactVerbPoints
		}
	}
	score += min(verbPoints, impactVerbCap)

	quantified := float64(len(quantifiedResult.FindAllString(lower, -1))) * quantifiedPoints
	score += min(quantified, quantifiedCap)

	leadPoints := 0.0
	for _, phrase := range leadershipPhrases {
		if strings.Contains(lower, phrase) {
			leadPoints += leadershipPoints
		}
	}
	score += min(leadPoints, leadershipCap)

	return clampScore(score)
}

// snippets returns up to maxEvidenceSnippets trimmed matches for display.
func snippets(pattern *regexp.Regexp, text string) []string {
	matches := pattern.FindAllString(text, maxEvidenceSnippets)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.TrimSpace(m))
	}
	return out
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
