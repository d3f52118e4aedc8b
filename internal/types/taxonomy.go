// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "sort"

// GroupKind discriminates the two shapes a taxonomy category can take.
type GroupKind string

const (
	// GroupFlat is a plain list of skills under a category.
	GroupFlat GroupKind = "flat"
	// GroupNested is a map of subcategory name to skill list.
	GroupNested GroupKind = "nested"
)

// SkillGroup is a tagged variant: either a flat skill list or a nested
// subcategory map. Exactly one of Flat/Nested is populated, per Kind.
type SkillGroup struct {
	Kind   GroupKind           `json:"kind"`
	Flat   []string            `json:"flat,omitempty"`
	Nested map[string][]string `json:"nested,omitempty"`
}

// FlatGroup constructs a flat skill group.
func FlatGroup(skills ...string) SkillGroup {
	return SkillGroup{Kind: GroupFlat, Flat: skills}
}

// NestedGroup constructs a nested skill group.
func NestedGroup(sub map[string][]string) SkillGroup {
	return SkillGroup{Kind: GroupNested, Nested: sub}
}

// AllSkills returns every skill in the group, flattened.
// Nested subcategories are visited in sorted order so the result is stable.
func (g SkillGroup) AllSkills() []string {
	switch g.Kind {
	case GroupFlat:
		out := make([]string, len(g.Flat))
		copy(out, g.Flat)
		return out
	case GroupNested:
		subs := make([]string, 0, len(g.Nested))
		for sub := range g.Nested {
			subs = append(subs, sub)
		}
		sort.Strings(subs)
		var out []string
		for _, sub := range subs {
			out = append(out, g.Nested[sub]...)
		}
		return out
	default:
		return nil
	}
}

// Taxonomy is the static catalog of recognized skills grouped by category.
// It is built once at process start and treated as read-only afterwards.
type Taxonomy struct {
	Categories map[string]SkillGroup `json:"categories"`
}

// CategoryNames returns the category names in sorted order.
func (t *Taxonomy) CategoryNames() []string {
	names := make([]string, 0, len(t.Categories))
	for name := range t.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SkillCount returns the total number of skills across all categories.
func (t *Taxonomy) SkillCount() int {
	count := 0
	for _, group := range t.Categories {
		count += len(group.AllSkills())
	}
	return count
}

// ExtractedSkills mirrors the taxonomy shape but contains only the
// categories with at least one match. Immutable after extraction.
type ExtractedSkills struct {
	Categories map[string]SkillGroup `json:"categories"`
}

// TotalCount returns the number of matched skills across all categories.
func (e *ExtractedSkills) TotalCount() int {
	count := 0
	for _, group := range e.Categories {
		count += len(group.AllSkills())
	}
	return count
}

// AllSkills returns every matched skill across all categories, with
// categories visited in sorted order.
func (e *ExtractedSkills) AllSkills() []string {
	names := make([]string, 0, len(e.Categories))
	for name := range e.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	var out []string
	for _, name := range names {
		out = append(out, e.Categories[name].AllSkills()...)
	}
	return out
}

// HasCategory reports whether the category has at least one matched skill.
func (e *ExtractedSkills) HasCategory(category string) bool {
	group, ok := e.Categories[category]
	if !ok {
		return false
	}
	return len(group.AllSkills()) > 0
}
