package taxonomy

// builtinAliases is the compiled-in alias table. It backs taxonomy files that
// omit the skill_aliases key and the Builtin fallback taxonomy.
func builtinAliases() map[string]string {
	return map[string]string{
		"ml":    "Machine Learning",
		"ai":    "Machine Learning",
		"dl":    "Deep Learning",
		"nlp":   "NLP",
		"js":    "JavaScript",
		"ts":    "TypeScript",
		"py":    "Python",
		"k8s":   "Kubernetes",
		"tf":    "TensorFlow",
		"cv":    "Computer Vision",
		"ci/cd": "CI/CD",
		"rest":  "REST API",
		"pg":    "PostgreSQL",
		"mongo": "MongoDB",
	}
}

// Builtin returns the compiled-in fallback taxonomy. It carries no roadmaps or
// resources, only enough vocabulary for skill extraction and resume checks to
// keep working when the taxonomy file is unavailable. Recommendation and gap
// analysis refuse to run on it and report missing reference data instead.
func Builtin() *Taxonomy {
	return &Taxonomy{
		Categories: []Category{
			{
				Name: "programming_languages",
				Skills: []string{
					"Python", "Java", "JavaScript", "TypeScript", "Go", "C++", "C#",
				},
			},
			{
				Name: "web_development",
				Skills: []string{
					"HTML", "CSS", "React", "Node.js", "Django", "Flask", "REST API",
				},
			},
			{
				Name: "data_and_ml",
				Skills: []string{
					"SQL", "Pandas", "Statistics", "Machine Learning", "Deep Learning", "NLP",
				},
			},
			{
				Name: "devops_cloud",
				Skills: []string{
					"Docker", "Kubernetes", "AWS", "Linux", "Git", "CI/CD",
				},
			},
		},
		Aliases:   builtinAliases(),
		Resources: map[string][]string{},
		ImpactVerbs: []string{
			"developed", "implemented", "designed", "built", "launched", "led",
			"managed", "optimized", "improved", "reduced", "increased",
			"automated", "architected", "delivered", "mentored", "migrated",
			"scaled", "streamlined",
		},
	}
}
