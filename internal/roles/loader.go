package roles

import (
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/types"
)

// rolesSchemaPath is the repo-relative path of the role profiles schema.
const rolesSchemaPath = "schemas/roles.schema.json"

// weightSumTolerance absorbs float representation noise when checking
// that a profile's weights sum to 1.0.
const weightSumTolerance = 0.001

// profilesDocument is the on-disk shape of an external role profile file.
type profilesDocument struct {
	Profiles []profileEntry `json:"profiles"`
}

type profileEntry struct {
	Role             string        `json:"role"`
	RequiredSkills   []string      `json:"required_skills"`
	PreferredSkills  []string      `json:"preferred_skills"`
	Weights          types.Weights `json:"weights"`
	ContextualBonus  int           `json:"contextual_bonus"`
	MinimumThreshold int           `json:"minimum_threshold"`
}

// LoadProfiles reads an external role weight profile file (JSON or YAML)
// and returns a validated registry. Unknown role strings, malformed
// weights, and schema violations are all load-time errors; scoring never
// sees an unvalidated profile.
func LoadProfiles(path string) (map[types.Role]types.RoleWeightProfile, error) {
	k := koanf.New(".")

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = k.Load(file.Provider(path), kyaml.Parser())
	default:
		err = k.Load(file.Provider(path), kjson.Parser())
	}
	if err != nil {
		return nil, &ProfileLoadError{Path: path, Message: "cannot read profile file", Cause: err}
	}

	doc, err := json.Marshal(k.Raw())
	if err != nil {
		return nil, &ProfileLoadError{Path: path, Message: "cannot re-encode profile document", Cause: err}
	}
	if schemaPath := schemas.ResolveSchemaPath(rolesSchemaPath); schemaPath != "" {
		if err := schemas.ValidateFileBytes(schemaPath, doc); err != nil {
			return nil, &ProfileLoadError{Path: path, Message: "profile document rejected by schema", Cause: err}
		}
	}

	var parsed profilesDocument
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return nil, &ProfileLoadError{Path: path, Message: "cannot decode profiles", Cause: err}
	}

	validate := validator.New()
	registry := make(map[types.Role]types.RoleWeightProfile, len(parsed.Profiles))

	for i, entry := range parsed.Profiles {
		role, err := types.ParseRole(entry.Role)
		if err != nil {
			return nil, &ProfileLoadError{
				Path:    path,
				Message: fmt.Sprintf("profile %d: %v", i, err),
			}
		}
		if role.IsGeneral() {
			return nil, &ProfileLoadError{
				Path:    path,
				Message: fmt.Sprintf("profile %d: %q may not carry a weight profile", i, role),
			}
		}

		profile := types.RoleWeightProfile{
			Role:             role,
			RequiredSkills:   entry.RequiredSkills,
			PreferredSkills:  entry.PreferredSkills,
			Weights:          entry.Weights,
			ContextualBonus:  entry.ContextualBonus,
			MinimumThreshold: entry.MinimumThreshold,
		}
		if err := validate.Struct(profile); err != nil {
			return nil, &ProfileLoadError{
				Path:    path,
				Message: fmt.Sprintf("profile %d (%s) failed validation", i, role),
				Cause:   err,
			}
		}
		if math.Abs(profile.Weights.Sum()-1.0) > weightSumTolerance {
			return nil, &ProfileLoadError{
				Path:    path,
				Message: fmt.Sprintf("profile %d (%s): weights sum to %.3f, want 1.0", i, role, profile.Weights.Sum()),
			}
		}
		if _, dup := registry[role]; dup {
			return nil, &ProfileLoadError{
				Path:    path,
				Message: fmt.Sprintf("profile %d: duplicate role %q", i, role),
			}
		}
		registry[role] = profile
	}

	if len(registry) == 0 {
		return nil, &ProfileLoadError{Path: path, Message: "no profiles in document"}
	}

	return registry, nil
}
