package taxonomy

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/types"
)

// taxonomySchemaPath is the repo-relative path of the taxonomy schema.
const taxonomySchemaPath = "schemas/taxonomy.schema.json"

// Load reads an external taxonomy file (JSON or YAML, chosen by extension)
// and converts it into an immutable Taxonomy. The document is validated
// against the taxonomy JSON Schema when the schema file can be resolved,
// and the per-category duplicate invariant is always enforced.
//
// File shape mirrors the classic skills database: each top-level key is a
// category whose value is either a list of skills or a map of subcategory
// to skill list.
func Load(path string) (*types.Taxonomy, error) {
	k := koanf.New(".")

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = k.Load(file.Provider(path), kyaml.Parser())
	default:
		err = k.Load(file.Provider(path), kjson.Parser())
	}
	if err != nil {
		return nil, &LoadError{Path: path, Message: "cannot read taxonomy file", Cause: err}
	}

	raw := k.Raw()

	// Schema validation happens on the JSON form so YAML and JSON sources
	// are checked identically.
	doc, err := json.Marshal(raw)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "cannot re-encode taxonomy document", Cause: err}
	}
	if schemaPath := schemas.ResolveSchemaPath(taxonomySchemaPath); schemaPath != "" {
		if err := schemas.ValidateFileBytes(schemaPath, doc); err != nil {
			return nil, &LoadError{Path: path, Message: "taxonomy document rejected by schema", Cause: err}
		}
	}

	tax, err := fromRaw(raw)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "invalid taxonomy structure", Cause: err}
	}

	if err := checkInvariants(tax); err != nil {
		return nil, &LoadError{Path: path, Message: "taxonomy invariant violated", Cause: err}
	}

	return tax, nil
}

// LoadOrDefault loads an external taxonomy, falling back to the embedded
// default on any failure. A missing or broken skills source must never
// abort analysis.
func LoadOrDefault(path string, logger *slog.Logger) *types.Taxonomy {
	if path == "" {
		return Default()
	}
	tax, err := Load(path)
	if err != nil {
		if logger != nil {
			logger.Warn("taxonomy load failed, using embedded default",
				slog.String("path", path), slog.Any("error", err))
		}
		return Default()
	}
	return tax
}

// fromRaw converts the decoded document into tagged skill groups.
func fromRaw(raw map[string]any) (*types.Taxonomy, error) {
	categories := make(map[string]types.SkillGroup, len(raw))

	for category, value := range raw {
		switch v := value.(type) {
		case []any:
			skills, err := toSkillList(category, v)
			if err != nil {
				return nil, err
			}
			categories[category] = types.FlatGroup(skills...)
		case map[string]any:
			nested := make(map[string][]string, len(v))
			for sub, subValue := range v {
				list, ok := subValue.([]any)
				if !ok {
					return nil, fmt.Errorf("category %q subcategory %q: expected a skill list", category, sub)
				}
				skills, err := toSkillList(category, list)
				if err != nil {
					return nil, err
				}
				nested[sub] = skills
			}
			categories[category] = types.NestedGroup(nested)
		default:
			return nil, fmt.Errorf("category %q: expected a skill list or subcategory map", category)
		}
	}

	return &types.Taxonomy{Categories: categories}, nil
}

func toSkillList(category string, raw []any) ([]string, error) {
	skills := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("category %q: non-string skill entry %v", category, item)
		}
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}
	return skills, nil
}

// checkInvariants enforces that no skill appears under two subcategories
// of the same category. Duplicates across categories are permitted.
func checkInvariants(tax *types.Taxonomy) error {
	for category, group := range tax.Categories {
		if group.Kind != types.GroupNested {
			continue
		}
		seen := make(map[string]string)
		for sub, skills := range group.Nested {
			for _, skill := range skills {
				if prev, dup := seen[skill]; dup && prev != sub {
					return &DuplicateSkillError{
						Category: category,
						Skill:    skill,
						SubA:     prev,
						SubB:     sub,
					}
				}
				seen[skill] = sub
			}
		}
	}
	return nil
}
