package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestProfileTable_CoversEveryRole(t *testing.T) {
	for _, role := range types.AllRoles {
		_, ok := Profile(role)
		assert.True(t, ok, "role %s should have a weight profile", role)
	}
}

func TestProfileTable_NoProfileForGeneral(t *testing.T) {
	_, ok := Profile(types.RoleGeneral)

	assert.False(t, ok)
}

func TestProfileTable_WeightsSumToOne(t *testing.T) {
	for role, profile := range Profiles() {
		assert.InDelta(t, 1.0, profile.Weights.Sum(), 0.001, "role %s", role)
		assert.Equal(t, keywordWeight, profile.Weights.Keyword, "role %s", role)
	}
}

func TestProfileTable_BoundsAndRequiredSkills(t *testing.T) {
	for role, profile := range Profiles() {
		assert.NotEmpty(t, profile.RequiredSkills, "role %s", role)
		assert.GreaterOrEqual(t, profile.ContextualBonus, 0, "role %s", role)
		assert.LessOrEqual(t, profile.ContextualBonus, 100, "role %s", role)
		assert.GreaterOrEqual(t, profile.MinimumThreshold, 0, "role %s", role)
		assert.LessOrEqual(t, profile.MinimumThreshold, 100, "role %s", role)
		assert.Equal(t, role, profile.Role)
	}
}

func TestProfiles_ReturnsCopy(t *testing.T) {
	first := Profiles()
	delete(first, types.RoleChef)

	_, ok := Profile(types.RoleChef)
	assert.True(t, ok)
}

func TestRegistry_ZeroValueResolvesBuiltins(t *testing.T) {
	registry := DefaultRegistry()

	profile, ok := registry.Profile(types.RoleChef)

	require.True(t, ok)
	builtin, _ := Profile(types.RoleChef)
	assert.Equal(t, builtin, profile)
}

func TestRegistry_ExternalTableReplacesBuiltinsWholesale(t *testing.T) {
	custom := types.RoleWeightProfile{
		Role:    types.RoleChef,
		Weights: types.Weights{Skills: 0.6, Experience: 0.2, Education: 0.1, Keyword: 0.1},
	}
	registry := NewRegistry(map[types.Role]types.RoleWeightProfile{types.RoleChef: custom})

	profile, ok := registry.Profile(types.RoleChef)
	require.True(t, ok)
	assert.Equal(t, custom, profile)

	// Roles absent from the external table have no profile at all.
	_, ok = registry.Profile(types.RoleNurse)
	assert.False(t, ok)
}

func TestKeywordTable_MirrorsAllRoles(t *testing.T) {
	require.Len(t, KeywordTable, len(types.AllRoles))
	for i, entry := range KeywordTable {
		assert.Equal(t, types.AllRoles[i], entry.Role)
		assert.NotEmpty(t, entry.Keywords, "role %s", entry.Role)
	}
}

func TestPassionTable_RolesAreKnown(t *testing.T) {
	for role := range PassionTable {
		assert.False(t, role.IsGeneral())
		_, ok := Profile(role)
		assert.True(t, ok, "passion role %s should have a profile", role)
	}
}

func TestHighDemandRoles_AreKnown(t *testing.T) {
	for role := range HighDemandRoles {
		_, ok := Profile(role)
		assert.True(t, ok, "high-demand role %s should have a profile", role)
	}
}
