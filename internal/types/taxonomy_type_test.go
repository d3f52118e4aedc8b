package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillGroup_AllSkillsFlat(t *testing.T) {
	group := FlatGroup("python", "go", "rust")

	skills := group.AllSkills()

	assert.Equal(t, []string{"python", "go", "rust"}, skills)
}

func TestSkillGroup_AllSkillsNestedSortedSubcategories(t *testing.T) {
	group := NestedGroup(map[string][]string{
		"pharmacy": {"pharmacology"},
		"clinical": {"patient care", "nursing"},
	})

	skills := group.AllSkills()

	// Subcategories are visited in sorted order: clinical before pharmacy.
	assert.Equal(t, []string{"patient care", "nursing", "pharmacology"}, skills)
}

func TestSkillGroup_AllSkillsCopiesFlatSlice(t *testing.T) {
	group := FlatGroup("python")

	skills := group.AllSkills()
	skills[0] = "mutated"

	assert.Equal(t, []string{"python"}, group.Flat)
}

func TestExtractedSkills_TotalCount(t *testing.T) {
	extracted := ExtractedSkills{Categories: map[string]SkillGroup{
		"programming_languages": FlatGroup("python", "go"),
		"healthcare":            NestedGroup(map[string][]string{"clinical": {"nursing"}}),
	}}

	assert.Equal(t, 3, extracted.TotalCount())
}

func TestExtractedSkills_HasCategory(t *testing.T) {
	extracted := ExtractedSkills{Categories: map[string]SkillGroup{
		"databases": FlatGroup("sql"),
	}}

	assert.True(t, extracted.HasCategory("databases"))
	assert.False(t, extracted.HasCategory("devops_tools"))
}

func TestExtractedSkills_AllSkillsStableOrder(t *testing.T) {
	extracted := ExtractedSkills{Categories: map[string]SkillGroup{
		"databases":               FlatGroup("sql"),
		"analytics_visualization": FlatGroup("tableau"),
	}}

	// Categories visit in sorted order regardless of map iteration.
	assert.Equal(t, []string{"tableau", "sql"}, extracted.AllSkills())
}
