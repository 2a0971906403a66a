// Package taxonomy loads the skill reference data used by every component of
// the engine: categorized skill vocabulary, alias table, role roadmaps and
// learning-resource lookups. The taxonomy is constructed once at startup and
// shared read-only; it is never mutated after Load returns.
package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/arvind/jobseeker-engine/internal/schemas"
)

// Roadmap level names, in learning order. The cumulative requirement set for a
// target level is the union of every level at or below it.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Levels returns the roadmap levels in fixed learning order.
func Levels() []string {
	return []string{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// Category is a named group of canonical skill names.
type Category struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Roadmap is the leveled skill requirement list for one target role.
// Roadmaps keep their file declaration order: role resolution is a first-match
// array traversal, so that order is part of the contract.
type Roadmap struct {
	Role         string   `json:"role"`
	Beginner     []string `json:"beginner"`
	Intermediate []string `json:"intermediate"`
	Advanced     []string `json:"advanced"`
}

// Level returns the roadmap's skill list for the given level name.
func (r *Roadmap) Level(level string) []string {
	switch level {
	case LevelBeginner:
		return r.Beginner
	case LevelIntermediate:
		return r.Intermediate
	case LevelAdvanced:
		return r.Advanced
	}
	return nil
}

// Taxonomy is the immutable skill reference data.
type Taxonomy struct {
	Categories  []Category          `json:"skill_categories"`
	Aliases     map[string]string   `json:"skill_aliases"`
	Roadmaps    []Roadmap           `json:"skill_roadmaps"`
	Resources   map[string][]string `json:"learning_resources"`
	ImpactVerbs []string            `json:"-"`
}

type taxonomyFile struct {
	Categories     []Category          `json:"skill_categories"`
	Aliases        map[string]string   `json:"skill_aliases"`
	Roadmaps       []Roadmap           `json:"skill_roadmaps"`
	Resources      map[string][]string `json:"learning_resources"`
	ResumeKeywords struct {
		ImpactVerbs []string `json:"impact_verbs"`
	} `json:"resume_keywords"`
}

// LoadError indicates the taxonomy file is absent, unreadable or malformed.
// Callers surface it as a service-unavailable condition.
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load skill taxonomy %s: %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load reads and parses the taxonomy JSON file. When the JSON Schema file can
// be resolved, the raw document is validated against it first so a truncated
// or hand-edited file fails loudly instead of producing empty match results.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/skills_taxonomy.schema.json"); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return nil, &LoadError{Path: path, Cause: err}
		}
	}

	var file taxonomyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}

	t := &Taxonomy{
		Categories:  file.Categories,
		Aliases:     file.Aliases,
		Roadmaps:    file.Roadmaps,
		Resources:   file.Resources,
		ImpactVerbs: file.ResumeKeywords.ImpactVerbs,
	}
	if len(t.Aliases) == 0 {
		t.Aliases = builtinAliases()
	}
	return t, nil
}

// AllSkills returns every canonical skill name, flattened in category order
// with duplicates removed (first occurrence wins).
func (t *Taxonomy) AllSkills() []string {
	seen := make(map[string]bool)
	var all []string
	for _, cat := range t.Categories {
		for _, skill := range cat.Skills {
			key := strings.ToLower(skill)
			if seen[key] {
				continue
			}
			seen[key] = true
			all = append(all, skill)
		}
	}
	return all
}

// ResourcesFor returns the learning resources for a skill, falling back to a
// generic pointer when the taxonomy has no entry.
func (t *Taxonomy) ResourcesFor(skill string) []string {
	if res, ok := t.Resources[skill]; ok && len(res) > 0 {
		return res
	}
	return []string{"Search on Coursera, Udemy, or official docs"}
}
