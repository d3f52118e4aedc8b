// Package parsing turns a free-form job description into structured
// JobRequirements: an identified role, required skill categories,
// experience and education demands, and the top frequent keywords.
package parsing

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/matching"
	"github.com/jonathan/resume-screener/internal/roles"
	"github.com/jonathan/resume-screener/internal/types"
)

// maxKeywords is how many frequent meaningful words are kept.
const maxKeywords = 15

// minKeywordLength drops short tokens; anything of 2 characters or fewer
// is noise for keyword matching.
const minKeywordLength = 3

// requirementYearPatterns are the restricted year phrasings recognized in
// job descriptions.
var requirementYearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`),
	regexp.MustCompile(`minimum\s+(?:of\s+)?(\d+)\s*(?:years?|yrs?)`),
	regexp.MustCompile(`at\s+least\s+(\d+)\s*(?:years?|yrs?)`),
}

// degreeKeywords flag an education requirement when present in a job
// description.
var degreeKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "degree", "graduation",
	"b.tech", "m.tech", "mba", "bba", "b.sc", "m.sc",
}

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "you": true,
	"are": true, "our": true, "will": true, "this": true, "that": true,
	"have": true, "has": true, "from": true, "your": true, "who": true,
	"what": true, "all": true, "can": true, "not": true, "but": true,
	"their": true, "they": true, "about": true, "into": true, "also": true,
	"able": true, "must": true, "should": true, "would": true, "when": true,
	"where": true, "which": true, "while": true, "being": true, "been": true,
}

var punctuation = regexp.MustCompile(`[^\w\s]`)

// ExtractRequirements parses a job description into JobRequirements.
// The profile registry supplies the identified role's required-category
// priority order. An empty description yields the general,
// requirement-free result.
func ExtractRequirements(jobDescription string, matcher *matching.Matcher, profiles roles.Registry) types.JobRequirements {
	if strings.TrimSpace(jobDescription) == "" {
		return types.JobRequirements{JobRole: types.RoleGeneral}
	}

	lower := strings.ToLower(jobDescription)

	role, confidence := IdentifyRole(lower)
	required, order := requiredSkills(jobDescription, role, matcher, profiles)
	minYears, preferredYears := requirementYears(lower)

	return types.JobRequirements{
		JobRole:               role,
		RoleConfidence:        confidence,
		RequiredSkills:        required,
		RequiredCategoryOrder: order,
		ExperienceRequirements: types.ExperienceRequirement{
			MinYears:       minYears,
			PreferredYears: preferredYears,
		},
		EducationRequirements: educationRequirement(lower),
		Keywords:              TopKeywords(lower, maxKeywords),
	}
}

// IdentifyRole scans the keyword table in order and returns the role with
// the highest nonzero confidence. Confidence is the fraction of the
// role's keywords present in the text, clipped to [0,1]. Ties resolve to
// the first role reaching the maximum; no match yields RoleGeneral with
// confidence 0.
func IdentifyRole(lower string) (types.Role, float64) {
	best := types.RoleGeneral
	bestConfidence := 0.0

	for _, entry := range roles.KeywordTable {
		matched := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		confidence := float64(matched) / float64(len(entry.Keywords))
		if confidence > 1 {
			confidence = 1
		}
		if confidence > bestConfidence {
			best = entry.Role
			bestConfidence = confidence
		}
	}

	return best, bestConfidence
}

// requiredSkills runs the skill matcher over the job description itself.
// Categories listed in the identified role's profile come first in the
// returned order, then any remaining matched categories in sorted order.
func requiredSkills(jobDescription string, role types.Role, matcher *matching.Matcher, profiles roles.Registry) (map[string]types.SkillGroup, []string) {
	extracted := matcher.Match(jobDescription)
	if len(extracted.Categories) == 0 {
		return nil, nil
	}

	var priority []string
	if profile, ok := profiles.Profile(role); ok {
		priority = profile.RequiredSkills
	}

	var order []string
	taken := make(map[string]bool)
	for _, category := range priority {
		if _, matched := extracted.Categories[category]; matched {
			order = append(order, category)
			taken[category] = true
		}
	}

	rest := make([]string, 0, len(extracted.Categories))
	for category := range extracted.Categories {
		if !taken[category] {
			rest = append(rest, category)
		}
	}
	sort.Strings(rest)
	order = append(order, rest...)

	return extracted.Categories, order
}

// requirementYears returns the minimum and maximum year counts found by
// the restricted requirement phrasings, both 0 when none match.
func requirementYears(lower string) (minYears, preferredYears int) {
	var found []int
	for _, pattern := range requirementYearPatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			if n, err := strconv.Atoi(match[1]); err == nil {
				found = append(found, n)
			}
		}
	}
	if len(found) == 0 {
		return 0, 0
	}
	minYears, preferredYears = found[0], found[0]
	for _, n := range found[1:] {
		if n < minYears {
			minYears = n
		}
		if n > preferredYears {
			preferredYears = n
		}
	}
	return minYears, preferredYears
}

func educationRequirement(lower string) types.EducationRequirement {
	var required []string
	for _, kw := range degreeKeywords {
		if strings.Contains(lower, kw) {
			required = append(required, kw)
		}
	}
	return types.EducationRequirement{
		RequiredDegrees: required,
		DegreeRequired:  len(required) > 0,
	}
}

// TopKeywords returns the n most frequent meaningful words in the text.
// Punctuation is stripped, tokens of fewer than three characters and stop
// words are dropped, and frequency ties break by first appearance.
func TopKeywords(lower string, n int) []string {
	cleaned := punctuation.ReplaceAllString(lower, " ")

	counts := make(map[string]int)
	var firstSeen []string
	for _, token := range strings.Fields(cleaned) {
		if len(token) < minKeywordLength || stopWords[token] {
			continue
		}
		if counts[token] == 0 {
			firstSeen = append(firstSeen, token)
		}
		counts[token]++
	}

	sort.SliceStable(firstSeen, func(i, j int) bool {
		return counts[firstSeen[i]] > counts[firstSeen[j]]
	})

	if len(firstSeen) > n {
		firstSeen = firstSeen[:n]
	}
	return firstSeen
}
