// Package recommend scores a candidate's skill set against the job catalog
// and ranks the results.
package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/arvind/jobseeker-engine/internal/catalog"
	"github.com/arvind/jobseeker-engine/internal/skills"
	"go.uber.org/zap"
)

const (
	// TopN bounds for a single recommendation call.
	MinTopN     = 1
	MaxTopN     = 15
	DefaultTopN = 5
)

// Options hold the optional knobs of a recommendation call.
type Options struct {
	TopN            int
	ExperienceLevel string // exact match, case-insensitive (Junior / Mid / Senior)
	Location        string // substring match, case-insensitive; "Remote" jobs always pass
}

// Recommendation is one scored job.
type Recommendation struct {
	JobID           string   `json:"job_id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	ExperienceLevel string   `json:"experience_level"`
	SalaryRange     string   `json:"salary_range"`
	MatchScore      float64  `json:"match_score"`
	MatchPercentage string   `json:"match_percentage"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	Description     string   `json:"description"`
}

// Result is the full payload of a recommendation call.
type Result struct {
	Recommendations    []Recommendation  `json:"recommendations"`
	TotalJobsEvaluated int               `json:"total_jobs_evaluated"`
	FiltersApplied     map[string]string `json:"filters_applied"`
	DetectedSkills     []string          `json:"detected_skills,omitempty"`
}

// Recommender ranks catalog jobs against candidate skill sets. It holds no
// per-request state; the catalog is re-read on every call.
type Recommender struct {
	catalogPath string
	extractor   *skills.Extractor
	log         *zap.Logger
}

// New creates a Recommender reading jobs from catalogPath. The extractor is
// used for the resume-text entry point.
func New(catalogPath string, extractor *skills.Extractor, log *zap.Logger) *Recommender {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recommender{catalogPath: catalogPath, extractor: extractor, log: log}
}

// Recommend scores every catalog job against userSkills and returns the top
// matches. An empty skill list yields no recommendations, but the evaluated
// count still reflects the filtered catalog size.
func (r *Recommender) Recommend(userSkills []string, opts Options) (*Result, error) {
	jobs, skipped, err := catalog.Load(r.catalogPath)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		r.log.Warn("skipped malformed catalog rows", zap.Int("rows", skipped))
	}

	filtersApplied := make(map[string]string)
	if opts.ExperienceLevel != "" {
		filtered := jobs[:0:0]
		for _, j := range jobs {
			if strings.EqualFold(j.ExperienceLevel, opts.ExperienceLevel) {
				filtered = append(filtered, j)
			}
		}
		jobs = filtered
		filtersApplied["experience_level"] = opts.ExperienceLevel
	}
	if opts.Location != "" {
		wanted := strings.ToLower(opts.Location)
		filtered := jobs[:0:0]
		for _, j := range jobs {
			loc := strings.ToLower(j.Location)
			if strings.Contains(loc, wanted) || loc == "remote" {
				filtered = append(filtered, j)
			}
		}
		jobs = filtered
		filtersApplied["location"] = opts.Location
	}

	result := &Result{
		Recommendations:    []Recommendation{},
		TotalJobsEvaluated: len(jobs),
		FiltersApplied:     filtersApplied,
	}

	if len(userSkills) == 0 {
		return result, nil
	}

	userSet := lowerSet(userSkills)
	scored := make([]Recommendation, 0, len(jobs))
	for _, job := range jobs {
		matched, missing := partitionSkills(job.RequiredSkills, userSet)
		score := overlapScore(len(matched), len(matched)+len(missing))
		scored = append(scored, Recommendation{
			JobID:           job.ID,
			Title:           job.Title,
			Company:         job.Company,
			Location:        job.Location,
			ExperienceLevel: job.ExperienceLevel,
			SalaryRange:     job.SalaryRange,
			MatchScore:      score,
			MatchPercentage: percentString(score),
			MatchedSkills:   matched,
			MissingSkills:   missing,
			Description:     job.Description,
		})
	}

	// Stable sort keeps catalog order among equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	topN := clampTopN(opts.TopN)
	if len(scored) > topN {
		scored = scored[:topN]
	}
	result.Recommendations = scored
	return result, nil
}

// RecommendFromResume extracts skills from resume text, then delegates to
// Recommend. The result carries the detected skill set.
func (r *Recommender) RecommendFromResume(resumeText string, opts Options) (*Result, error) {
	detected := r.extractor.Extract(resumeText)
	result, err := r.Recommend(detected, opts)
	if err != nil {
		return nil, err
	}
	result.DetectedSkills = detected
	return result, nil
}

// overlapScore is the fraction of the job's distinct requirements the
// candidate covers, rounded to 4 decimal places. A job with no requirements
// scores 0.
func overlapScore(matched, required int) float64 {
	if required == 0 {
		return 0
	}
	return math.Round(float64(matched)/float64(required)*10000) / 10000
}

func percentString(score float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(score*100)))
}

func clampTopN(n int) int {
	switch {
	case n == 0:
		return DefaultTopN
	case n < MinTopN:
		return MinTopN
	case n > MaxTopN:
		return MaxTopN
	}
	return n
}

// partitionSkills splits the job's requirement list into matched and missing.
// Requirements are deduplicated case-insensitively so a repeated entry cannot
// inflate the score; the first spelling wins and the job's order is kept.
func partitionSkills(required []string, userSet map[string]bool) (matched, missing []string) {
	matched = []string{}
	missing = []string{}
	seen := make(map[string]bool, len(required))
	for _, skill := range required {
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		seen[key] = true
		if userSet[key] {
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
