// Package skills extracts canonical skill names from free-form text such as
// resumes, bios or typed skill lists.
package skills

import (
	"regexp"
	"sort"
	"strings"

	"github.com/arvind/jobseeker-engine/internal/taxonomy"
)

// Extractor matches taxonomy vocabulary against normalized text. All patterns
// are compiled once at construction; Extract is pure and safe for concurrent
// use.
type Extractor struct {
	patterns   []skillPattern
	categories []taxonomy.Category
}

type skillPattern struct {
	re        *regexp.Regexp
	canonical string
}

// NewExtractor builds an extractor over the given taxonomy. Every canonical
// skill and every alias token becomes a whole-word pattern; word-boundary
// anchoring keeps substrings inside longer words from matching ("java" must
// not fire on "javascript").
func NewExtractor(tax *taxonomy.Taxonomy) *Extractor {
	e := &Extractor{categories: tax.Categories}
	for _, skill := range tax.AllSkills() {
		e.patterns = append(e.patterns, skillPattern{
			re:        wholeWordPattern(skill),
			canonical: skill,
		})
	}
	for alias, canonical := range tax.Aliases {
		e.patterns = append(e.patterns, skillPattern{
			re:        wholeWordPattern(alias),
			canonical: canonical,
		})
	}
	return e
}

// wholeWordPattern compiles a case-normalized whole-word pattern for a skill
// or alias token. QuoteMeta handles names containing regex metacharacters
// ("C++", "CI/CD", "Node.js").
func wholeWordPattern(token string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(token)) + `\b`)
}

// Extract returns the deduplicated set of canonical skill names found in
// text, sorted lexicographically. Empty or whitespace-only text yields an
// empty set.
func (e *Extractor) Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	lower := strings.ToLower(text)
	found := make(map[string]bool)
	for _, p := range e.patterns {
		if found[p.canonical] {
			continue
		}
		if p.re.MatchString(lower) {
			found[p.canonical] = true
		}
	}

	result := make([]string, 0, len(found))
	for skill := range found {
		result = append(result, skill)
	}
	sort.Strings(result)
	return result
}

// CategorizeDetected groups canonical skill names by their taxonomy category,
// keeping each category's skill order. Categories with no detected skills are
// omitted.
func (e *Extractor) CategorizeDetected(detected []string) map[string][]string {
	set := make(map[string]bool, len(detected))
	for _, skill := range detected {
		set[strings.ToLower(skill)] = true
	}

	grouped := make(map[string][]string)
	for _, cat := range e.categories {
		var hits []string
		for _, skill := range cat.Skills {
			if set[strings.ToLower(skill)] {
				hits = append(hits, skill)
			}
		}
		if len(hits) > 0 {
			grouped[cat.Name] = hits
		}
	}
	return grouped
}
