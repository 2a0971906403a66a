package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvind/jobseeker-engine/internal/skills"
	"github.com/arvind/jobseeker-engine/internal/taxonomy"
)

func testScorer() *Scorer {
	tax := &taxonomy.Taxonomy{
		Categories: []taxonomy.Category{
			{Name: "programming_languages", Skills: []string{"Python", "Java", "JavaScript", "Go", "SQL"}},
			{Name: "web_development", Skills: []string{"React", "Django", "Flask", "REST API"}},
			{Name: "devops_cloud", Skills: []string{"Docker", "Kubernetes", "AWS", "Git", "Linux"}},
		},
		ImpactVerbs: []string{"developed", "implemented", "designed", "built", "led", "optimized"},
	}
	return NewScorer(tax, skills.NewExtractor(tax))
}

// strongResume hits every rubric dimension: long enough, verb-rich,
// quantified, full contact block, all key sections, dense keywords.
func strongResume() string {
	body := `Jane Candidate
jane@example.com | +91 9876543210 | linkedin.com/in/jane | github.com/jane

Experience
Developed a REST API platform in Python and Django that served 10,000+ daily users.
Implemented CI pipelines with Docker and Kubernetes, reducing deploy time by 40%.
Designed SQL schemas and optimized queries, cutting report latency by 3x.
Built React dashboards in JavaScript consumed by 200 analysts.
Led a team of 5 engineers across Go and Java services on AWS and Linux, managing $50000 of cloud spend.

Education
B.Tech in Computer Science, Example University.

Skills
Python, Java, JavaScript, Go, SQL, React, Django, Flask, REST API, Docker, Kubernetes, AWS, Git, Linux.

Projects
Built an open-source Flask extension with Git-based release automation.
`
	// Pad past the minimum word count without adding rubric signals.
	return body + strings.Repeat("reliable delivery across teams and quarters. ", 30)
}

func TestScore_StrongResume(t *testing.T) {
	s := testScorer()

	report := s.Score(strongResume(), "")

	assert.Equal(t, "100/100", report.OverallScore)
	assert.Equal(t, "A - Excellent", report.Grade)
	assert.Equal(t, "General", report.TargetRole)
	assert.Empty(t, report.IssuesToFix)
	assert.Empty(t, report.QuickWins)
	require.Len(t, report.DetailedChecks, 6)
	for _, check := range report.DetailedChecks {
		assert.Equal(t, "10/10", check.Score)
	}
}

func TestScore_WeakResume(t *testing.T) {
	s := testScorer()

	report := s.Score("I am a coder. I did stuff at a company for some years.", "")

	// Length 3, verbs 4, quantification 3, contact 4, sections 5, keywords 4.
	assert.Equal(t, "38/100", report.OverallScore)
	assert.Equal(t, "D - Needs Major Improvement", report.Grade)
	assert.Len(t, report.IssuesToFix, 6)
	assert.Len(t, report.QuickWins, 6)
}

func TestScore_ChecksOrderAndSections(t *testing.T) {
	s := testScorer()

	report := s.Score(strongResume(), "")

	sections := make([]string, 0, len(report.DetailedChecks))
	for _, c := range report.DetailedChecks {
		sections = append(sections, c.Section)
	}
	assert.Equal(t, []string{"Length", "Impact Verbs", "Quantification", "Contact Info", "Sections", "Ats Keywords"}, sections)
}

func TestScore_QuickWinsAreSubTenFeedback(t *testing.T) {
	s := testScorer()

	// Strong base with the contact block stripped.
	text := strings.ReplaceAll(strongResume(), "jane@example.com | +91 9876543210 | linkedin.com/in/jane | github.com/jane", "")

	report := s.Score(text, "")
	require.Len(t, report.QuickWins, 1)
	assert.Contains(t, report.QuickWins[0], "email")
}

func TestScore_DetectedSkills(t *testing.T) {
	s := testScorer()

	report := s.Score("Shipped Python and Docker tooling.", "")
	assert.Equal(t, []string{"Docker", "Python"}, report.DetectedSkills)
}

func TestScore_RoleSpecificTips(t *testing.T) {
	s := testScorer()

	report := s.Score("text", "Data Scientist")
	require.Len(t, report.RoleSpecificTips, 2)
	assert.Contains(t, report.RoleSpecificTips[0], "Kaggle")

	report = s.Score("text", "Opera Singer")
	assert.Empty(t, report.RoleSpecificTips)
}

func TestScore_GeneralBestPracticesAlwaysPresent(t *testing.T) {
	s := testScorer()

	report := s.Score("anything", "")
	assert.Len(t, report.GeneralBestPractices, 5)
}

func TestCheckLength(t *testing.T) {
	s := testScorer()

	short := s.checkLength("too short")
	assert.Equal(t, 3, short.score)
	assert.Equal(t, "Too short", short.issue)

	long := s.checkLength(strings.Repeat("word ", maxWords+1))
	assert.Equal(t, 7, long.score)
	assert.Equal(t, "Too long", long.issue)

	good := s.checkLength(strings.Repeat("word ", 500))
	assert.Equal(t, 10, good.score)
	assert.Empty(t, good.issue)
}

func TestCheckImpactVerbs_WholeWordMatching(t *testing.T) {
	s := testScorer()

	// "redesigned" must not count as "designed"; "led" inside "failed" must
	// not count either.
	weak := s.checkImpactVerbs("redesigned things and failed upward")
	assert.Equal(t, 4, weak.score)

	strong := s.checkImpactVerbs("developed, implemented and designed systems")
	assert.Equal(t, 10, strong.score)
}

func TestCheckQuantification(t *testing.T) {
	s := testScorer()

	none := s.checkQuantification("improved things a lot")
	assert.Equal(t, 3, none.score)

	few := s.checkQuantification("cut latency by 40%")
	assert.Equal(t, 7, few.score)

	many := s.checkQuantification("grew revenue by 30%, saved $2000, onboarded 150+ users over 2 years")
	assert.Equal(t, 10, many.score)
}

func TestCheckContactInfo(t *testing.T) {
	s := testScorer()

	full := s.checkContactInfo("jane@example.com +91 9876543210 linkedin github")
	assert.Equal(t, 10, full.score)

	partial := s.checkContactInfo("jane@example.com with linkedin and github profiles")
	assert.Equal(t, 8, partial.score)
	assert.Contains(t, partial.issue, "phone number")

	empty := s.checkContactInfo("nothing here")
	assert.Equal(t, 4, empty.score)
}

func TestGradeFor(t *testing.T) {
	grade, _ := gradeFor(85)
	assert.Equal(t, "A - Excellent", grade)
	grade, _ = gradeFor(84)
	assert.Equal(t, "B - Good", grade)
	grade, _ = gradeFor(70)
	assert.Equal(t, "B - Good", grade)
	grade, _ = gradeFor(55)
	assert.Equal(t, "C - Average", grade)
	grade, _ = gradeFor(54)
	assert.Equal(t, "D - Needs Major Improvement", grade)
}

func TestRoleTips_FirstRuleWins(t *testing.T) {
	// "data engineer" matches the data/ml/ai rule before the backend rule.
	tips := roleTips("Data Engineer")
	require.Len(t, tips, 2)
	assert.Contains(t, tips[0], "Kaggle")

	assert.Contains(t, roleTips("DevOps Lead")[0], "certifications")
	assert.Empty(t, roleTips(""))
}
