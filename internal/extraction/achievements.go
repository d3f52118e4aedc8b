package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Impact thresholds for embedded percentages.
const (
	highImpactPercent   = 50.0
	mediumImpactPercent = 20.0
)

// achievementPattern anchors on an achievement verb followed within 100
// characters by a numeric token, all on one sentence fragment.
var achievementPattern = regexp.MustCompile(`\b(?:increased|improved|reduced|achieved|delivered)\b[^.\n]{0,100}?\d[\d,.]*[%k]?`)

var (
	percentToken = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
	dollarToken  = regexp.MustCompile(`\$\s?\d[\d,]*(?:\.\d+)?[kmb]?`)
)

var achievementTypeKeywords = []struct {
	typ      types.AchievementType
	keywords []string
}{
	{types.AchievementFinancial, []string{"revenue", "profit", "sales"}},
	{types.AchievementOperational, []string{"efficiency", "process", "productivity"}},
	{types.AchievementCustomerFocused, []string{"customer", "client", "user"}},
}

// ExtractAchievements finds quantified achievement statements and
// classifies their type and impact level.
func ExtractAchievements(text string) []types.Achievement {
	lower := strings.ToLower(text)

	matches := achievementPattern.FindAllString(lower, -1)
	achievements := make([]types.Achievement, 0, len(matches))
	for _, statement := range matches {
		statement = strings.TrimSpace(statement)
		achievements = append(achievements, types.Achievement{
			Statement:   statement,
			Type:        classifyType(statement),
			ImpactLevel: classifyImpact(statement),
		})
	}
	return achievements
}

func classifyType(statement string) types.AchievementType {
	for _, entry := range achievementTypeKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(statement, kw) {
				return entry.typ
			}
		}
	}
	return types.AchievementGeneral
}

// classifyImpact grades a statement by its embedded numbers: any dollar
// amount or percentage >= 50 is high, a percentage in [20,50) is medium,
// a smaller percentage is low. A verb match with no percentage or dollar
// amount defaults to medium.
func classifyImpact(statement string) types.ImpactLevel {
	if dollarToken.MatchString(statement) {
		return types.ImpactHigh
	}

	percents := percentToken.FindAllStringSubmatch(statement, -1)
	if len(percents) == 0 {
		return types.ImpactMedium
	}

	highest := 0.0
	for _, m := range percents {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > highest {
			highest = v
		}
	}
	switch {
	case highest >= highImpactPercent:
		return types.ImpactHigh
	case highest >= mediumImpactPercent:
		return types.ImpactMedium
	default:
		return types.ImpactLow
	}
}
