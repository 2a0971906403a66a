// Package chat routes chatbot webhook requests to the engine. Intent
// classification is a small ordered rule list evaluated top-to-bottom with an
// explicit fallthrough to the welcome intent.
package chat

import "strings"

// Intent identifies which engine capability a chatbot message wants.
type Intent string

const (
	IntentRecommend  Intent = "job.recommend"
	IntentSkillGap   Intent = "skill.gap"
	IntentResumeTips Intent = "resume.tips"
	IntentWelcome    Intent = "default.welcome"
)

// rule is one classification step. Rules run in declaration order; the first
// match wins.
type rule struct {
	intent Intent
	match  func(name string) bool
}

var rules = []rule{
	{
		intent: IntentRecommend,
		match: func(name string) bool {
			return strings.Contains(name, "recommend") || strings.Contains(name, "job")
		},
	},
	{
		intent: IntentSkillGap,
		match: func(name string) bool {
			return strings.Contains(name, "skill") && strings.Contains(name, "gap")
		},
	},
	{
		intent: IntentResumeTips,
		match: func(name string) bool {
			return strings.Contains(name, "resume")
		},
	},
}

// Classify maps a raw intent name to an engine intent, defaulting to welcome.
func Classify(intentName string) Intent {
	name := strings.ToLower(intentName)
	for _, r := range rules {
		if r.match(name) {
			return r.intent
		}
	}
	return IntentWelcome
}
