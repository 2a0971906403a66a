// Package gap compares a candidate's skill set against a target role's
// leveled roadmap and produces a prioritized learning path.
package gap

import (
	"fmt"
	"math"
	"strings"

	"github.com/arvind/jobseeker-engine/internal/skills"
	"github.com/arvind/jobseeker-engine/internal/taxonomy"
)

// genericSampleSize is how many skills are sampled per category when a
// roadmap-less role matches no category either.
const genericSampleSize = 3

// genericPathLimit caps the learning path length in generic analyses.
const genericPathLimit = 10

// LevelBreakdown is one roadmap level scored independently against the
// candidate's skills (each level's own list, not cumulative).
type LevelBreakdown struct {
	Required   []string `json:"required"`
	Matched    []string `json:"matched"`
	Missing    []string `json:"missing"`
	Completion string   `json:"completion"`
}

// PathEntry is one missing skill in the prioritized learning path.
type PathEntry struct {
	Skill             string   `json:"skill"`
	PriorityLevel     string   `json:"priority_level"`
	LearningResources []string `json:"learning_resources"`
}

// Report is the full gap-analysis payload.
type Report struct {
	TargetRole              string                    `json:"target_role"`
	TargetLevel             string                    `json:"target_level"`
	UserSkills              []string                  `json:"user_skills"`
	RequiredSkills          []string                  `json:"required_skills"`
	MatchedSkills           []string                  `json:"matched_skills"`
	MissingSkills           []string                  `json:"missing_skills"`
	CompletionPercentage    string                    `json:"completion_percentage"`
	ReadinessAssessment     string                    `json:"readiness_assessment"`
	LevelBreakdown          map[string]LevelBreakdown `json:"level_breakdown"`
	PrioritizedLearningPath []PathEntry               `json:"prioritized_learning_path"`
	EstimatedLearningTime   string                    `json:"estimated_learning_time"`
	DetectedSkills          []string                  `json:"detected_skills,omitempty"`
}

// Analyzer runs gap analyses against the shared taxonomy. Stateless apart
// from its read-only references; safe for concurrent use.
type Analyzer struct {
	tax       *taxonomy.Taxonomy
	extractor *skills.Extractor
}

// New creates an Analyzer over the given taxonomy. The extractor backs the
// resume-text entry point.
func New(tax *taxonomy.Taxonomy, extractor *skills.Extractor) *Analyzer {
	return &Analyzer{tax: tax, extractor: extractor}
}

// Analyze compares userSkills against the roadmap for targetRole at
// targetLevel. An unknown role falls back to a generic category-based
// analysis; an unknown level is treated as intermediate.
func (a *Analyzer) Analyze(userSkills []string, targetRole, targetLevel string) *Report {
	targetLevel = normalizeLevel(targetLevel)
	userSet := lowerSet(userSkills)

	roadmap := a.resolveRole(targetRole)
	if roadmap == nil {
		return a.genericAnalysis(userSkills, userSet, targetRole)
	}

	// Cumulative requirements: every level at or below the target, strictly
	// beginner -> intermediate -> advanced, first-seen duplicates preserved.
	var required []string
	for _, lvl := range taxonomy.Levels() {
		required = append(required, roadmap.Level(lvl)...)
		if lvl == targetLevel {
			break
		}
	}

	matched, missing := partition(required, userSet)
	completion := percentage(len(matched), len(required))

	breakdown := make(map[string]LevelBreakdown, 3)
	for _, lvl := range taxonomy.Levels() {
		lvlSkills := roadmap.Level(lvl)
		lvlMatched, lvlMissing := partition(lvlSkills, userSet)
		breakdown[lvl] = LevelBreakdown{
			Required:   lvlSkills,
			Matched:    lvlMatched,
			Missing:    lvlMissing,
			Completion: fmt.Sprintf("%d%%", percentage(len(lvlMatched), len(lvlSkills))),
		}
	}

	path := []PathEntry{}
	for _, lvl := range taxonomy.Levels() {
		for _, skill := range breakdown[lvl].Missing {
			path = append(path, PathEntry{
				Skill:             skill,
				PriorityLevel:     lvl,
				LearningResources: a.tax.ResourcesFor(skill),
			})
		}
	}

	return &Report{
		TargetRole:              roadmap.Role,
		TargetLevel:             targetLevel,
		UserSkills:              userSkills,
		RequiredSkills:          required,
		MatchedSkills:           matched,
		MissingSkills:           missing,
		CompletionPercentage:    fmt.Sprintf("%d%%", completion),
		ReadinessAssessment:     readiness(completion),
		LevelBreakdown:          breakdown,
		PrioritizedLearningPath: path,
		EstimatedLearningTime:   estimateLearningTime(len(missing)),
	}
}

// AnalyzeFromResume extracts skills from resume text, then delegates to
// Analyze. The report carries the detected skill set.
func (a *Analyzer) AnalyzeFromResume(resumeText, targetRole, targetLevel string) *Report {
	detected := a.extractor.Extract(resumeText)
	report := a.Analyze(detected, targetRole, targetLevel)
	report.DetectedSkills = detected
	return report
}

// resolveRole finds the roadmap for a target role by case-insensitive
// substring match in either direction. Roadmaps are traversed in declaration
// order and the first match wins; keeping this an ordered slice makes the
// tie-break deterministic when role names overlap.
func (a *Analyzer) resolveRole(targetRole string) *taxonomy.Roadmap {
	wanted := strings.ToLower(targetRole)
	for i := range a.tax.Roadmaps {
		role := strings.ToLower(a.tax.Roadmaps[i].Role)
		if strings.Contains(wanted, role) || strings.Contains(role, wanted) {
			return &a.tax.Roadmaps[i]
		}
	}
	return nil
}

// genericAnalysis is the fallback when no roadmap role matches: gather skills
// from every taxonomy category whose name shares a token with the target
// role, or sample a few skills from every category when none do. The level
// breakdown is omitted.
func (a *Analyzer) genericAnalysis(userSkills []string, userSet map[string]bool, targetRole string) *Report {
	keywords := strings.Fields(strings.ToLower(targetRole))

	var relevant []string
	for _, cat := range a.tax.Categories {
		name := strings.ToLower(cat.Name)
		for _, kw := range keywords {
			if strings.Contains(name, kw) {
				relevant = append(relevant, cat.Skills...)
				break
			}
		}
	}

	if len(relevant) == 0 {
		for _, cat := range a.tax.Categories {
			sample := cat.Skills
			if len(sample) > genericSampleSize {
				sample = sample[:genericSampleSize]
			}
			relevant = append(relevant, sample...)
		}
	}

	matched, missing := partition(relevant, userSet)

	path := []PathEntry{}
	for _, skill := range missing {
		if len(path) == genericPathLimit {
			break
		}
		path = append(path, PathEntry{
			Skill:             skill,
			PriorityLevel:     "general",
			LearningResources: []string{"Search on Coursera or Udemy"},
		})
	}

	return &Report{
		TargetRole:              targetRole,
		TargetLevel:             "general",
		UserSkills:              userSkills,
		RequiredSkills:          relevant,
		MatchedSkills:           matched,
		MissingSkills:           missing,
		CompletionPercentage:    fmt.Sprintf("%d%%", percentage(len(matched), len(relevant))),
		ReadinessAssessment:     "Generic analysis - no specific roadmap found for this role.",
		LevelBreakdown:          map[string]LevelBreakdown{},
		PrioritizedLearningPath: path,
		EstimatedLearningTime:   estimateLearningTime(len(missing)),
	}
}

// readiness maps completion percentage to a categorical assessment.
func readiness(completion int) string {
	switch {
	case completion >= 80:
		return "High - You're well prepared for this role!"
	case completion >= 50:
		return "Medium - With focused learning, you can reach this role in 3-6 months."
	case completion >= 25:
		return "Low-Medium - Estimated 6-12 months of dedicated learning required."
	}
	return "Low - Significant upskilling required. Consider starting with beginner resources."
}

// estimateLearningTime maps the missing-skill count to a rough time bucket.
func estimateLearningTime(missingCount int) string {
	switch {
	case missingCount == 0:
		return "Ready now!"
	case missingCount <= 2:
		return "~1-2 months"
	case missingCount <= 4:
		return "~3-4 months"
	case missingCount <= 6:
		return "~5-8 months"
	}
	return "~9-12+ months"
}

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case taxonomy.LevelBeginner:
		return taxonomy.LevelBeginner
	case taxonomy.LevelAdvanced:
		return taxonomy.LevelAdvanced
	}
	return taxonomy.LevelIntermediate
}

func percentage(matched, required int) int {
	if required == 0 {
		return 0
	}
	return int(math.Round(float64(matched) / float64(required) * 100))
}

func partition(required []string, userSet map[string]bool) (matched, missing []string) {
	matched = []string{}
	missing = []string{}
	for _, skill := range required {
		if userSet[strings.ToLower(skill)] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return matched, missing
}

func lowerSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[strings.ToLower(s)] = true
	}
	return set
}
