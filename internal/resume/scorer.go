// Package resume applies a fixed six-dimension quality rubric to resume text
// and aggregates the result into an overall grade.
package resume

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/arvind/jobseeker-engine/internal/skills"
	"github.com/arvind/jobseeker-engine/internal/taxonomy"
)

// Word-count bounds for the length check.
const (
	minWords = 200
	maxWords = 1200
)

// quickWinThreshold marks a dimension as worth immediate attention.
const quickWinThreshold = 7

// Check is one scored rubric dimension.
type Check struct {
	Section  string `json:"section"`
	Score    string `json:"score"`
	Feedback string `json:"feedback"`
}

// Issue flags a dimension that found a concrete problem.
type Issue struct {
	Section string `json:"section"`
	Issue   string `json:"issue"`
}

// Report is the full resume-scoring payload.
type Report struct {
	OverallScore         string   `json:"overall_score"`
	Grade                string   `json:"grade"`
	Summary              string   `json:"summary"`
	TargetRole           string   `json:"target_role"`
	DetectedSkills       []string `json:"detected_skills"`
	DetailedChecks       []Check  `json:"detailed_checks"`
	IssuesToFix          []Issue  `json:"issues_to_fix"`
	RoleSpecificTips     []string `json:"role_specific_tips"`
	QuickWins            []string `json:"quick_wins"`
	GeneralBestPractices []string `json:"general_best_practices"`
}

// checkResult is the internal result of one rubric dimension.
type checkResult struct {
	score    int
	issue    string
	feedback string
}

// Scorer runs the rubric. Verb and metric patterns are compiled once at
// construction; Score is pure and safe for concurrent use.
type Scorer struct {
	extractor    *skills.Extractor
	verbPatterns []verbPattern
	metricREs    []*regexp.Regexp
	emailRE      *regexp.Regexp
	phoneRE      *regexp.Regexp
}

type verbPattern struct {
	verb string
	re   *regexp.Regexp
}

var metricPatterns = []string{
	`(?i)\d+\s*(%|percent|users|requests|hours|days|weeks|months|years|lakh|crore|million|billion|k\b|x\b)`,
	`\$\s*\d+`,
	`₹\s*\d+`,
	`\d+\+`,
}

// sectionKeywords drive the key-sections check. A section counts as present
// if any of its keywords appears in the text.
var sectionKeywords = []struct {
	name     string
	keywords []string
}{
	{"education", []string{"education", "degree", "university", "college", "b.tech", "b.e", "m.tech", "mba"}},
	{"experience", []string{"experience", "work history", "employment", "internship"}},
	{"skills", []string{"skills", "technical skills", "technologies"}},
	{"projects", []string{"project", "portfolio", "built", "developed"}},
}

// NewScorer builds a Scorer over the taxonomy's impact-verb list. The given
// extractor backs the ATS keyword check.
func NewScorer(tax *taxonomy.Taxonomy, extractor *skills.Extractor) *Scorer {
	s := &Scorer{
		extractor: extractor,
		emailRE:   regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`),
		phoneRE:   regexp.MustCompile(`[+(]?\d[\d\s\-()]{8,}`),
	}
	for _, verb := range tax.ImpactVerbs {
		s.verbPatterns = append(s.verbPatterns, verbPattern{
			verb: verb,
			re:   regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(verb)) + `\b`),
		})
	}
	for _, p := range metricPatterns {
		s.metricREs = append(s.metricREs, regexp.MustCompile(p))
	}
	return s
}

// Score runs all six rubric checks on resumeText and aggregates the result.
// targetRole is optional and only affects the role-specific tips.
func (s *Scorer) Score(resumeText, targetRole string) *Report {
	checks := []struct {
		section string
		result  checkResult
	}{
		{"Length", s.checkLength(resumeText)},
		{"Impact Verbs", s.checkImpactVerbs(resumeText)},
		{"Quantification", s.checkQuantification(resumeText)},
		{"Contact Info", s.checkContactInfo(resumeText)},
		{"Sections", s.checkSections(resumeText)},
		{"Ats Keywords", s.checkATSKeywords(resumeText)},
	}

	total := 0
	for _, c := range checks {
		total += c.result.score
	}
	overallPct := int(math.Round(float64(total) / float64(len(checks)*10) * 100))
	grade, summary := gradeFor(overallPct)

	report := &Report{
		OverallScore:         fmt.Sprintf("%d/100", overallPct),
		Grade:                grade,
		Summary:              summary,
		TargetRole:           targetRole,
		DetectedSkills:       s.extractor.Extract(resumeText),
		DetailedChecks:       []Check{},
		IssuesToFix:          []Issue{},
		RoleSpecificTips:     roleTips(targetRole),
		QuickWins:            []string{},
		GeneralBestPractices: generalBestPractices(),
	}
	if report.TargetRole == "" {
		report.TargetRole = "General"
	}

	for _, c := range checks {
		report.DetailedChecks = append(report.DetailedChecks, Check{
			Section:  c.section,
			Score:    fmt.Sprintf("%d/10", c.result.score),
			Feedback: c.result.feedback,
		})
		if c.result.issue != "" {
			report.IssuesToFix = append(report.IssuesToFix, Issue{Section: c.section, Issue: c.result.issue})
		}
		if c.result.score < quickWinThreshold {
			report.QuickWins = append(report.QuickWins, c.result.feedback)
		}
	}

	return report
}

func (s *Scorer) checkLength(text string) checkResult {
	words := len(strings.Fields(text))
	if words < minWords {
		return checkResult{
			score:    3,
			issue:    "Too short",
			feedback: "Your resume seems very brief. Aim for 400-800 words for a complete picture.",
		}
	}
	if words > maxWords {
		return checkResult{
			score:    7,
			issue:    "Too long",
			feedback: "Your resume may be too long. Keep it concise - 1-2 pages is ideal.",
		}
	}
	return checkResult{score: 10, feedback: "Good length! Your resume is appropriately detailed."}
}

func (s *Scorer) checkImpactVerbs(text string) checkResult {
	lower := strings.ToLower(text)
	var found, missing []string
	for _, vp := range s.verbPatterns {
		if vp.re.MatchString(lower) {
			found = append(found, vp.verb)
		} else {
			missing = append(missing, vp.verb)
		}
	}

	if len(found) < 3 {
		return checkResult{
			score: 4,
			issue: "Weak action verbs",
			feedback: fmt.Sprintf(
				"Use strong action verbs to describe your work. Try: %s. E.g., 'Developed a REST API that served 10k+ users' instead of 'Worked on API'.",
				strings.Join(firstN(missing, 5), ", ")),
		}
	}
	return checkResult{
		score:    10,
		feedback: fmt.Sprintf("Great use of action verbs! Found: %s", strings.Join(firstN(found, 5), ", ")),
	}
}

func (s *Scorer) checkQuantification(text string) checkResult {
	count := 0
	for _, re := range s.metricREs {
		count += len(re.FindAllString(text, -1))
	}

	switch {
	case count == 0:
		return checkResult{
			score:    3,
			issue:    "No quantified achievements",
			feedback: "Add measurable results to your achievements! E.g., 'Reduced page load time by 40%', 'Managed a team of 5 engineers', 'Served 10,000+ daily active users'.",
		}
	case count < 3:
		return checkResult{
			score:    7,
			issue:    "Few metrics",
			feedback: fmt.Sprintf("Good start with %d metric(s). Try to quantify more achievements for stronger impact.", count),
		}
	}
	return checkResult{
		score:    10,
		feedback: fmt.Sprintf("Excellent! %d quantified achievements found. Recruiters love numbers!", count),
	}
}

func (s *Scorer) checkContactInfo(text string) checkResult {
	lower := strings.ToLower(text)

	var missing []string
	if !s.emailRE.MatchString(text) {
		missing = append(missing, "email")
	}
	if !s.phoneRE.MatchString(text) {
		missing = append(missing, "phone number")
	}
	if !strings.Contains(lower, "linkedin") {
		missing = append(missing, "LinkedIn profile")
	}
	if !strings.Contains(lower, "github") {
		missing = append(missing, "GitHub profile")
	}

	if len(missing) > 0 {
		return checkResult{
			score:    maxInt(4, 10-2*len(missing)),
			issue:    fmt.Sprintf("Missing contact info: %s", strings.Join(missing, ", ")),
			feedback: fmt.Sprintf("Add your %s to make it easy for recruiters to reach you.", strings.Join(missing, ", ")),
		}
	}
	return checkResult{score: 10, feedback: "All key contact details present."}
}

func (s *Scorer) checkSections(text string) checkResult {
	lower := strings.ToLower(text)

	var missing []string
	for _, section := range sectionKeywords {
		present := false
		for _, kw := range section.keywords {
			if strings.Contains(lower, kw) {
				present = true
				break
			}
		}
		if !present {
			missing = append(missing, section.name)
		}
	}

	if len(missing) > 0 {
		return checkResult{
			score: maxInt(5, 10-2*len(missing)),
			issue: fmt.Sprintf("Missing sections: %s", strings.Join(missing, ", ")),
			feedback: fmt.Sprintf(
				"Consider adding these sections to your resume: %s. A complete resume should have Experience, Education, Skills, and Projects.",
				strings.Join(titleAll(missing), ", ")),
		}
	}
	return checkResult{score: 10, feedback: "All key sections present."}
}

func (s *Scorer) checkATSKeywords(text string) checkResult {
	detected := s.extractor.Extract(text)
	count := len(detected)

	switch {
	case count < 5:
		return checkResult{
			score:    4,
			issue:    "Low keyword density for ATS",
			feedback: fmt.Sprintf("Applicant Tracking Systems (ATS) scan for keywords. List your technical skills clearly in a dedicated Skills section. Found only %d skills.", count),
		}
	case count < 10:
		return checkResult{
			score:    7,
			issue:    "Moderate ATS keywords",
			feedback: fmt.Sprintf("Found %d technical keywords. Try to include more relevant skills from the job description to improve ATS compatibility.", count),
		}
	}

	preview := strings.Join(firstN(detected, 8), ", ")
	if count > 8 {
		preview += "..."
	}
	return checkResult{
		score:    10,
		feedback: fmt.Sprintf("Strong ATS compatibility! %d technical skills detected: %s.", count, preview),
	}
}

// gradeFor buckets the aggregate percentage into a letter grade.
func gradeFor(pct int) (grade, summary string) {
	switch {
	case pct >= 85:
		return "A - Excellent", "Your resume is strong! A few minor tweaks could make it perfect."
	case pct >= 70:
		return "B - Good", "Solid resume with room for improvement. Focus on the flagged areas."
	case pct >= 55:
		return "C - Average", "Your resume needs work. Address the major issues to stand out."
	}
	return "D - Needs Major Improvement", "Significant improvements needed. Start with contact info and quantified achievements."
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func titleAll(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		if item == "" {
			continue
		}
		out[i] = strings.ToUpper(item[:1]) + item[1:]
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
