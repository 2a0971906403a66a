package resume

import "strings"

// roleTipRules map target-role substrings to tailored coaching tips. Rules
// are evaluated top-to-bottom and the first matching rule wins.
var roleTipRules = []struct {
	keywords []string
	tips     []string
}{
	{
		keywords: []string{"data", "ml", "ai"},
		tips: []string{
			"Highlight any Kaggle competitions, research papers, or ML projects.",
			"Mention model performance metrics (accuracy, F1-score, AUC).",
		},
	},
	{
		keywords: []string{"frontend", "react", "ui"},
		tips: []string{
			"Include links to live projects or GitHub repositories.",
			"Mention UI/UX tools like Figma if applicable.",
		},
	},
	{
		keywords: []string{"devops", "cloud"},
		tips: []string{
			"List certifications: AWS, Azure, GCP, Kubernetes (CKA) etc.",
			"Mention cost savings or uptime improvements you achieved.",
		},
	},
	{
		keywords: []string{"backend", "python", "java"},
		tips: []string{
			"Include system design experience and scale (users/requests handled).",
			"Mention API design patterns and database optimization experience.",
		},
	},
}

// roleTips returns tailored tips for the target role, or an empty list when
// no rule matches or no role was given.
func roleTips(targetRole string) []string {
	if targetRole == "" {
		return []string{}
	}
	lower := strings.ToLower(targetRole)
	for _, rule := range roleTipRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.tips
			}
		}
	}
	return []string{}
}

// generalBestPractices is the fixed advice list returned with every report.
func generalBestPractices() []string {
	return []string{
		"Tailor your resume to each job description using relevant keywords.",
		"Use a clean, single-column format for better ATS parsing.",
		"Keep your resume to 1 page (fresher) or 2 pages (experienced).",
		"Save and send as PDF to preserve formatting.",
		"Proofread carefully - spelling/grammar errors signal carelessness.",
	}
}
