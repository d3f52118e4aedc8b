package roles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

const validProfileDoc = `{
	"profiles": [
		{
			"role": "chef",
			"required_skills": ["culinary_hospitality"],
			"preferred_skills": ["supply_chain"],
			"weights": {"skills": 0.5, "experience": 0.3, "education": 0.1, "keyword": 0.1},
			"contextual_bonus": 15,
			"minimum_threshold": 50
		}
	]
}`

func writeProfileFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProfiles_ValidDocument(t *testing.T) {
	path := writeProfileFile(t, "roles.json", validProfileDoc)

	profiles, err := LoadProfiles(path)

	require.NoError(t, err)
	require.Contains(t, profiles, types.RoleChef)
	profile := profiles[types.RoleChef]
	assert.Equal(t, []string{"culinary_hospitality"}, profile.RequiredSkills)
	assert.Equal(t, 15, profile.ContextualBonus)
	assert.Equal(t, 50, profile.MinimumThreshold)
}

func TestLoadProfiles_YAML(t *testing.T) {
	path := writeProfileFile(t, "roles.yaml", `
profiles:
  - role: nurse
    required_skills: [healthcare]
    weights:
      skills: 0.4
      experience: 0.35
      education: 0.15
      keyword: 0.1
    contextual_bonus: 20
    minimum_threshold: 55
`)

	profiles, err := LoadProfiles(path)

	require.NoError(t, err)
	assert.Contains(t, profiles, types.RoleNurse)
}

func TestLoadProfiles_UnknownRole(t *testing.T) {
	path := writeProfileFile(t, "roles.json", `{
		"profiles": [{
			"role": "wizard",
			"required_skills": ["magic"],
			"weights": {"skills": 0.5, "experience": 0.3, "education": 0.1, "keyword": 0.1}
		}]
	}`)

	_, err := LoadProfiles(path)

	require.Error(t, err)
	var loadErr *ProfileLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadProfiles_WeightsMustSumToOne(t *testing.T) {
	path := writeProfileFile(t, "roles.json", `{
		"profiles": [{
			"role": "chef",
			"required_skills": ["culinary_hospitality"],
			"weights": {"skills": 0.9, "experience": 0.3, "education": 0.1, "keyword": 0.1}
		}]
	}`)

	_, err := LoadProfiles(path)

	assert.Error(t, err)
}

func TestLoadProfiles_GeneralRoleRejected(t *testing.T) {
	path := writeProfileFile(t, "roles.json", `{
		"profiles": [{
			"role": "general",
			"required_skills": ["soft_skills"],
			"weights": {"skills": 0.5, "experience": 0.3, "education": 0.1, "keyword": 0.1}
		}]
	}`)

	_, err := LoadProfiles(path)

	assert.Error(t, err)
}

func TestLoadProfiles_DuplicateRoleRejected(t *testing.T) {
	path := writeProfileFile(t, "roles.json", `{
		"profiles": [
			{
				"role": "chef",
				"required_skills": ["culinary_hospitality"],
				"weights": {"skills": 0.5, "experience": 0.3, "education": 0.1, "keyword": 0.1}
			},
			{
				"role": "chef",
				"required_skills": ["culinary_hospitality"],
				"weights": {"skills": 0.5, "experience": 0.3, "education": 0.1, "keyword": 0.1}
			}
		]
	}`)

	_, err := LoadProfiles(path)

	assert.Error(t, err)
}

func TestLoadProfiles_EmptyDocument(t *testing.T) {
	path := writeProfileFile(t, "roles.json", `{"profiles": []}`)

	_, err := LoadProfiles(path)

	assert.Error(t, err)
}

func TestLoadProfiles_MissingFile(t *testing.T) {
	_, err := LoadProfiles(filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
}
