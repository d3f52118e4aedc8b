// Package matching finds taxonomy skills in free-form text using
// word-boundary and phrase matching, with context-sensitive
// disambiguation for short ambiguous tokens.
package matching

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Window sizes for context checks, in characters around a token match.
const (
	negativeContextWindow = 40
	indicatorWindow       = 30
)

// Matcher finds taxonomy skills in text. It precompiles one pattern per
// skill at construction time and is safe for concurrent use afterwards.
type Matcher struct {
	taxonomy *types.Taxonomy
	patterns map[string]*regexp.Regexp
}

// NewMatcher builds a matcher over the given taxonomy. The taxonomy is
// treated as read-only for the matcher's lifetime.
func NewMatcher(tax *types.Taxonomy) *Matcher {
	m := &Matcher{
		taxonomy: tax,
		patterns: make(map[string]*regexp.Regexp),
	}
	for _, group := range tax.Categories {
		for _, skill := range group.AllSkills() {
			if _, done := m.patterns[skill]; done {
				continue
			}
			if _, ambiguous := ambiguousRules[skill]; ambiguous {
				continue
			}
			m.patterns[skill] = compileSkillPattern(skill)
		}
	}
	return m
}

// Match returns the taxonomy skills present in text, grouped by the
// taxonomy's category/subcategory shape. Empty categories are omitted.
// Deterministic for identical text and taxonomy.
func (m *Matcher) Match(text string) *types.ExtractedSkills {
	lower := strings.ToLower(text)
	collapsed := strings.Join(strings.Fields(lower), " ")

	out := &types.ExtractedSkills{Categories: make(map[string]types.SkillGroup)}

	for category, group := range m.taxonomy.Categories {
		switch group.Kind {
		case types.GroupFlat:
			found := m.matchSkillList(group.Flat, lower, collapsed)
			if len(found) > 0 {
				out.Categories[category] = types.FlatGroup(found...)
			}
		case types.GroupNested:
			nested := make(map[string][]string)
			for sub, skills := range group.Nested {
				found := m.matchSkillList(skills, lower, collapsed)
				if len(found) > 0 {
					nested[sub] = found
				}
			}
			if len(nested) > 0 {
				out.Categories[category] = types.NestedGroup(nested)
			}
		}
	}

	return out
}

// matchSkillList returns the canonical skill strings from skills that are
// present in the text, each recorded once.
func (m *Matcher) matchSkillList(skills []string, lower, collapsed string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, skill := range skills {
		if seen[skill] {
			continue
		}
		if m.skillPresent(skill, lower, collapsed) {
			found = append(found, skill)
			seen[skill] = true
		}
	}
	return found
}

func (m *Matcher) skillPresent(skill, lower, collapsed string) bool {
	if rule, ok := ambiguousRules[skill]; ok {
		return matchAmbiguous(rule, lower)
	}
	pattern, ok := m.patterns[skill]
	if !ok {
		return false
	}
	return pattern.MatchString(collapsed)
}

// matchAmbiguous applies the context-validation pass for a short token.
// Positive context anywhere accepts; negative context near a match with no
// positive context rejects; otherwise the local-window heuristic decides.
func matchAmbiguous(rule ambiguousRule, lower string) bool {
	locs := rule.pattern.FindAllStringIndex(lower, -1)
	if len(locs) == 0 {
		return false
	}

	for _, phrase := range rule.positive {
		if strings.Contains(lower, phrase) {
			return true
		}
	}

	for _, loc := range locs {
		if hasNegativeNear(rule, lower, loc) {
			return false
		}
	}

	for _, loc := range locs {
		if indicatorsNear(lower, loc) || inListContext(lower, loc) {
			return true
		}
	}
	return false
}

func hasNegativeNear(rule ambiguousRule, lower string, loc []int) bool {
	start := max(0, loc[0]-negativeContextWindow)
	end := min(len(lower), loc[1]+negativeContextWindow)
	window := lower[start:end]
	for _, phrase := range rule.negative {
		if strings.Contains(window, phrase) {
			return true
		}
	}
	return false
}

func indicatorsNear(lower string, loc []int) bool {
	start := max(0, loc[0]-indicatorWindow)
	end := min(len(lower), loc[1]+indicatorWindow)
	window := lower[start:end]
	for _, word := range skillIndicators {
		if strings.Contains(window, word) {
			return true
		}
	}
	return false
}

// inListContext reports whether the match sits in bullet or comma-list
// formatting, which marks skill enumerations rather than prose.
func inListContext(lower string, loc []int) bool {
	lineStart := strings.LastIndexByte(lower[:loc[0]], '\n') + 1
	lineEnd := strings.IndexByte(lower[loc[1]:], '\n')
	if lineEnd < 0 {
		lineEnd = len(lower)
	} else {
		lineEnd += loc[1]
	}
	line := lower[lineStart:lineEnd]

	if bulletPrefix.MatchString(line) {
		return true
	}

	// Comma immediately before or after the token marks a comma list.
	before := strings.TrimRight(lower[lineStart:loc[0]], " ")
	after := strings.TrimLeft(lower[loc[1]:lineEnd], " ")
	return strings.HasSuffix(before, ",") || strings.HasPrefix(after, ",")
}

// compileSkillPattern builds a word-boundary pattern for a skill string.
// Multi-word skills require all words contiguous with single whitespace
// between them (text is whitespace-collapsed before matching). Boundary
// assertions are only placed next to word characters so skills like
// "c++" or "node.js" compile to usable patterns.
func compileSkillPattern(skill string) *regexp.Regexp {
	words := strings.Fields(skill)
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	expr := strings.Join(quoted, `\s+`)

	if startsWithWordChar(skill) {
		expr = `\b` + expr
	}
	if endsWithWordChar(skill) {
		expr += `\b`
	}
	return regexp.MustCompile(expr)
}

func startsWithWordChar(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '_' || ('a' <= c && c <= 'z') || ('0' <= c && c <= '9')
}

func endsWithWordChar(s string) bool {
	if s == "" {
		return false
	}
	c := s[len(s)-1]
	return c == '_' || ('a' <= c && c <= 'z') || ('0' <= c && c <= '9')
}
