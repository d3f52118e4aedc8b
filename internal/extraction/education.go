package extraction

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Education quality scoring constants.
const (
	educationQualityBase = 50.0

	prestigePoints = 20.0

	academicAchievementPoints = 5.0
	academicAchievementCap    = 15.0

	// GPA values above this are assumed to be percentage grades, not
	// GPA/CGPA readings, and are discarded.
	maxPlausibleGPA = 10.0
)

// Three degree pattern families: generic degree words, abbreviated degree
// forms, and field-of-study words.
var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(bachelor(?:s)?|master(?:s)?|phd|ph\.d|doctorate|diploma|certificate)\b`),
	regexp.MustCompile(`\b(b\.?tech|m\.?tech|b\.?sc|m\.?sc|mba|bba|b\.?com|m\.?com|b\.?e|m\.?e|b\.?a|m\.?a)\b`),
	regexp.MustCompile(`\b(engineering|computer science|information technology|statistics|mathematics|business administration|economics|commerce)\b`),
}

var gpaPattern = regexp.MustCompile(`\b(?:cgpa|gpa|grade)\s*[:\s]\s*(\d+(?:\.\d+)?)`)

// Prestige keywords use word-boundary patterns; "mit" would otherwise
// fire inside words like "submitted".
var prestigePatterns = compileWordPatterns(
	"mit", "stanford", "harvard", "berkeley", "caltech", "oxford",
	"cambridge", "iit", "iim", "nit", "carnegie mellon",
)

func compileWordPatterns(words ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return patterns
}

var academicAchievements = []string{
	"dean's list", "cum laude", "magna cum laude", "summa cum laude",
	"first class", "distinction", "gold medal", "valedictorian",
	"scholarship",
}

// ExtractEducation parses degree mentions, GPA values, and
// institution-quality signals out of resume text.
func ExtractEducation(text string) types.EducationProfile {
	lower := strings.ToLower(text)

	degreeSet := make(map[string]bool)
	for _, pattern := range degreePatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			degreeSet[match[1]] = true
		}
	}
	degrees := make([]string, 0, len(degreeSet))
	for d := range degreeSet {
		degrees = append(degrees, d)
	}
	sort.Strings(degrees)

	var gpas []float64
	for _, match := range gpaPattern.FindAllStringSubmatch(lower, -1) {
		v, err := strconv.ParseFloat(match[1], 64)
		if err != nil || v > maxPlausibleGPA {
			continue
		}
		gpas = append(gpas, v)
	}

	profile := types.EducationProfile{
		Degrees:   degrees,
		GPAScores: gpas,
	}
	if len(gpas) > 0 {
		highest := gpas[0]
		for _, v := range gpas[1:] {
			if v > highest {
				highest = v
			}
		}
		profile.HighestGPA = &highest
	}

	profile.EducationQuality = educationQuality(lower)
	return profile
}

func educationQuality(lower string) float64 {
	score := educationQualityBase

	for _, pattern := range prestigePatterns {
		if pattern.MatchString(lower) {
			score += prestigePoints
			break
		}
	}

	achievementPoints := 0.0
	for _, kw := range academicAchievements {
		if strings.Contains(lower, kw) {
			achievementPoints += academicAchievementPoints
		}
	}
	score += min(achievementPoints, academicAchievementCap)

	return clampScore(score)
}
