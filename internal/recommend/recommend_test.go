package recommend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvind/jobseeker-engine/internal/skills"
	"github.com/arvind/jobseeker-engine/internal/taxonomy"
)

const testCatalog = `job_id,title,company,location,experience_level,salary_range,skills_required,description
J001,Backend Developer,Acme,Bengaluru,Mid,10-15 LPA,Python|Django|AWS,Build APIs
J002,Frontend Developer,Initech,Remote,Entry,6-9 LPA,JavaScript|React,Build UIs
J003,Data Analyst,Globex,Pune,Entry,5-8 LPA,Python|SQL,Analyze data
J004,Platform Engineer,Hooli,Hyderabad,Senior,25-35 LPA,Go|Docker|Kubernetes|AWS,Run platforms
`

func testRecommender(t *testing.T) *Recommender {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o644))

	tax := &taxonomy.Taxonomy{
		Categories: []taxonomy.Category{
			{Name: "programming_languages", Skills: []string{"Python", "JavaScript", "Go"}},
			{Name: "web_development", Skills: []string{"Django", "React"}},
			{Name: "devops_cloud", Skills: []string{"AWS", "Docker", "Kubernetes"}},
			{Name: "data_science", Skills: []string{"SQL"}},
		},
	}
	return New(path, skills.NewExtractor(tax), nil)
}

func findJob(t *testing.T, recs []Recommendation, jobID string) Recommendation {
	t.Helper()
	for _, r := range recs {
		if r.JobID == jobID {
			return r
		}
	}
	t.Fatalf("job %s not in recommendations", jobID)
	return Recommendation{}
}

func TestRecommend_ScoresOverlapFraction(t *testing.T) {
	r := testRecommender(t)

	result, err := r.Recommend([]string{"Python", "Django"}, Options{})
	require.NoError(t, err)
	require.Equal(t, 4, result.TotalJobsEvaluated)

	j001 := findJob(t, result.Recommendations, "J001")
	assert.Equal(t, 0.6667, j001.MatchScore)
	assert.Equal(t, "67%", j001.MatchPercentage)
	assert.Equal(t, []string{"Python", "Django"}, j001.MatchedSkills)
	assert.Equal(t, []string{"AWS"}, j001.MissingSkills)
}

func TestRecommend_CaseInsensitiveMatching(t *testing.T) {
	r := testRecommender(t)

	result, err := r.Recommend([]string{"python", "SQL"}, Options{})
	require.NoError(t, err)

	j003 := findJob(t, result.Recommendations, "J003")
	assert.Equal(t, 1.0, j003.MatchScore)
	assert.Equal(t, "100%", j003.MatchPercentage)
	// Matched skills keep the catalog's spelling, not the user's.
	assert.Equal(t, []string{"Python", "SQL"}, j003.MatchedSkills)
}

func TestRecommend_SortedByScoreDescending(t *testing.T) {
	r := testRecommender(t)

	result, err := r.Recommend([]string{"Python", "SQL"}, Options{})
	require.NoError(t, err)

	scores := make([]float64, 0, len(result.Recommendations))
	for _, rec := range result.Recommendations {
		scores = append(scores, rec.MatchScore)
	}
	for i := 1; i < len(scores); i++ {
		assert.GreaterOrEqual(t, scores[i-1], scores[i])
	}
	assert.Equal(t, "J003", result.Recommendations[0].JobID)
}

func TestRecommend_TieKeepsCatalogOrder(t *testing.T) {
	r := testRecommender(t)

	// No skills match anything: every job scores 0 and catalog order holds.
	result, err := r.Recommend([]string{"Cobol"}, Options{})
	require.NoError(t, err)

	require.Len(t, result.Recommendations, 4)
	assert.Equal(t, "J001", result.Recommendations[0].JobID)
	assert.Equal(t, "J002", result.Recommendations[1].JobID)
	assert.Equal(t, "J003", result.Recommendations[2].JobID)
	assert.Equal(t, "J004", result.Recommendations[3].JobID)
}

func TestRecommend_EmptySkillsYieldsNoRecommendations(t *testing.T) {
	r := testRecommender(t)

	result, err := r.Recommend(nil, Options{})
	require.NoError(t, err)

	assert.Empty(t, result.Recommendations)
	assert.Equal(t, 4, result.TotalJobsEvaluated)
	assert.Empty(t, result.FiltersApplied)
}

func TestRecommend_ExperienceLevelFilter(t *testing.T) {
	r := testRecommender(t)

	result, err := r.Recommend([]string{"Go"}, Options{ExperienceLevel: "senior"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalJobsEvaluated)
	assert.Equal(t, "senior", result.FiltersApplied["experience_level"])
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "J004", result.Recommendations[0].JobID)
}

func TestRecommend_LocationFilterIncludesRemote(t *testing.T) {
	r := testRecommender(t)

	result, err := r.Recommend([]string{"Python"}, Options{Location: "pune"})
	require.NoError(t, err)

	// J003 matches the substring; J002 passes because it is Remote.
	assert.Equal(t, 2, result.TotalJobsEvaluated)
	ids := []string{result.Recommendations[0].JobID, result.Recommendations[1].JobID}
	assert.ElementsMatch(t, []string{"J002", "J003"}, ids)
}

func TestRecommend_TopNTruncates(t *testing.T) {
	r := testRecommender(t)

	result, err := r.Recommend([]string{"Python"}, Options{TopN: 2})
	require.NoError(t, err)
	assert.Len(t, result.Recommendations, 2)
}

func TestRecommend_DuplicateRequirementsCountOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"job_id,title,company,location,experience_level,salary_range,skills_required,description\n"+
			"J010,Backend Developer,Acme,Remote,Mid,10-15 LPA,Python|Python|AWS,Build APIs\n"+
			"J011,Data Engineer,Globex,Pune,Mid,12-18 LPA,Python|python|SQL,Move data\n"), 0o644))
	r := New(path, nil, nil)

	result, err := r.Recommend([]string{"Python"}, Options{})
	require.NoError(t, err)

	j010 := findJob(t, result.Recommendations, "J010")
	assert.Equal(t, 0.5, j010.MatchScore)
	assert.Equal(t, "50%", j010.MatchPercentage)
	assert.Equal(t, []string{"Python"}, j010.MatchedSkills)
	assert.Equal(t, []string{"AWS"}, j010.MissingSkills)

	// Case-variant duplicates collapse too, keeping the first spelling.
	j011 := findJob(t, result.Recommendations, "J011")
	assert.Equal(t, 0.5, j011.MatchScore)
	assert.Equal(t, []string{"Python"}, j011.MatchedSkills)
	assert.Equal(t, []string{"SQL"}, j011.MissingSkills)
}

func TestRecommend_MissingCatalog(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "nope.csv"), nil, nil)

	_, err := r.Recommend([]string{"Python"}, Options{})
	require.Error(t, err)
}

func TestRecommendFromResume_CarriesDetectedSkills(t *testing.T) {
	r := testRecommender(t)

	result, err := r.RecommendFromResume("Built dashboards in python with sql pipelines.", Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "SQL"}, result.DetectedSkills)
	j003 := findJob(t, result.Recommendations, "J003")
	assert.Equal(t, "100%", j003.MatchPercentage)
}

func TestClampTopN(t *testing.T) {
	assert.Equal(t, DefaultTopN, clampTopN(0))
	assert.Equal(t, MinTopN, clampTopN(-3))
	assert.Equal(t, MaxTopN, clampTopN(100))
	assert.Equal(t, 7, clampTopN(7))
}

func TestOverlapScore(t *testing.T) {
	assert.Equal(t, 0.6667, overlapScore(2, 3))
	assert.Equal(t, 0.0, overlapScore(0, 0))
	assert.Equal(t, 1.0, overlapScore(4, 4))
}

func TestPercentString_RoundsHalfUp(t *testing.T) {
	assert.Equal(t, "67%", percentString(0.6667))
	assert.Equal(t, "33%", percentString(0.3333))
	assert.Equal(t, "50%", percentString(0.5))
	assert.Equal(t, "0%", percentString(0))
}
