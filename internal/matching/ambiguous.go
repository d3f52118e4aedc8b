package matching

import "regexp"

// ambiguousRule describes how a short, ambiguous skill token is matched.
// The pattern also matches the token's known expansions; context phrase
// lists steer acceptance when the bare token appears in running prose.
type ambiguousRule struct {
	pattern  *regexp.Regexp
	positive []string
	negative []string
}

// ambiguousRules covers the two-to-three character skills that collide
// with ordinary English words or abbreviations. Acceptance order:
// positive context anywhere wins, negative context near the match
// rejects, otherwise the local-window heuristic decides.
var ambiguousRules = map[string]ambiguousRule{
	"r": {
		pattern: regexp.MustCompile(`\br\b|\br\s+programming\b|\br\s+language\b|\brstudio\b`),
		positive: []string{
			"r programming", "r language", "rstudio", "r studio", "cran",
			"r script", "statistical computing",
		},
		negative: []string{"r&d", "r & d", "r."},
	},
	"c": {
		pattern: regexp.MustCompile(`\bc\b|\bc\s+programming\b|\bc\s+language\b`),
		positive: []string{
			"c programming", "c language", "embedded c", "c developer",
			"c/c++",
		},
		negative: []string{"c.", "vitamin c", "section c", "schedule c", "c++", "c#"},
	},
	"go": {
		pattern: regexp.MustCompile(`\bgo\b|\bgolang\b|\bgo\s+programming\b`),
		positive: []string{
			"golang", "go programming", "go language", "go developer",
			"goroutine", "go lang",
		},
		negative: []string{
			"go to", "will go", "go through", "go ahead", "let go",
			"go beyond", "on the go", "go above",
		},
	},
	"ai": {
		pattern: regexp.MustCompile(`\bai\b|\bartificial\s+intelligence\b`),
		positive: []string{
			"artificial intelligence", "ai models", "ai engineer",
			"generative ai", "ai solutions", "machine learning",
		},
		negative: []string{"ai weiwei"},
	},
	"ml": {
		pattern: regexp.MustCompile(`\bml\b|\bmachine\s+learning\b`),
		positive: []string{
			"machine learning", "ml models", "ml engineer", "ml pipeline",
			"deep learning",
		},
		negative: []string{"100 ml", "ml of"},
	},
	"ui": {
		pattern: regexp.MustCompile(`\bui\b|\bui/ux\b|\buser\s+interface\b`),
		positive: []string{
			"user interface", "ui/ux", "ui design", "ui developer",
			"front-end", "frontend",
		},
		negative: []string{},
	},
	"ux": {
		pattern: regexp.MustCompile(`\bux\b|\bui/ux\b|\buser\s+experience\b`),
		positive: []string{
			"user experience", "ui/ux", "ux design", "ux research",
			"usability",
		},
		negative: []string{},
	},
	"it": {
		pattern: regexp.MustCompile(`\bit\b|\binformation\s+technology\b`),
		positive: []string{
			"information technology", "it support", "it services",
			"it infrastructure", "it department", "it manager",
			"it administration",
		},
		negative: []string{
			"it is", "it was", "it has", "it will", "it can", "it also",
			"make it", "made it", "of it", "in it",
		},
	},
	"hr": {
		pattern: regexp.MustCompile(`\bhr\b|\bhuman\s+resources\b`),
		positive: []string{
			"human resources", "hr management", "hr policies",
			"hr operations", "hr business partner", "hr generalist",
		},
		negative: []string{"24 hr", "48 hr", "hr."},
	},
	"ca": {
		pattern: regexp.MustCompile(`\bca\b|\bchartered\s+accountant\b`),
		positive: []string{
			"chartered accountant", "ca final", "ca inter",
			"ca intermediate", "icai", "ca firm", "articleship",
		},
		negative: []string{"ca, usa", "california"},
	},
}

// skillIndicators are the words whose presence within the local window
// around a bare ambiguous token marks it as a skill mention.
var skillIndicators = []string{
	"programming", "language", "skill", "skills", "certification",
	"certified", "proficient", "proficiency", "experience", "knowledge",
	"developer", "development", "technologies", "tools", "expertise",
}

// bulletPrefix matches list formatting at the start of a line.
var bulletPrefix = regexp.MustCompile(`^\s*(?:[-•*▪o]|\d+[.)])\s+`)
