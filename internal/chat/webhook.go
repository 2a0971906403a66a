package chat

import (
	"fmt"
	"strings"

	"github.com/arvind/jobseeker-engine/internal/gap"
	"github.com/arvind/jobseeker-engine/internal/recommend"
	"github.com/arvind/jobseeker-engine/internal/resume"
	"go.uber.org/zap"
)

// WebhookRequest accepts both Dialogflow ES and CX payloads plus a simplified
// direct-test form ({"text": ..., "intent": ..., "parameters": ...}).
type WebhookRequest struct {
	QueryResult *struct {
		Intent *struct {
			DisplayName string `json:"displayName"`
		} `json:"intent"`
		Parameters map[string]any `json:"parameters"`
	} `json:"queryResult,omitempty"`

	IntentInfo *struct {
		DisplayName string `json:"displayName"`
	} `json:"intentInfo,omitempty"`
	SessionInfo *struct {
		Parameters map[string]any `json:"parameters"`
	} `json:"sessionInfo,omitempty"`

	Text       string         `json:"text,omitempty"`
	Intent     string         `json:"intent,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// IntentName extracts the raw intent name from whichever payload form was
// sent.
func (r *WebhookRequest) IntentName() string {
	switch {
	case r.QueryResult != nil && r.QueryResult.Intent != nil:
		return r.QueryResult.Intent.DisplayName
	case r.IntentInfo != nil:
		return r.IntentInfo.DisplayName
	case r.Text != "":
		if r.Intent != "" {
			return r.Intent
		}
		return string(IntentWelcome)
	}
	return ""
}

// Params extracts the parameter map from whichever payload form was sent.
func (r *WebhookRequest) Params() map[string]any {
	switch {
	case r.QueryResult != nil:
		return r.QueryResult.Parameters
	case r.SessionInfo != nil:
		return r.SessionInfo.Parameters
	}
	return r.Parameters
}

// WebhookResponse is the Dialogflow-compatible fulfillment payload.
type WebhookResponse struct {
	FulfillmentResponse fulfillmentResponse `json:"fulfillmentResponse"`
	FulfillmentText     string              `json:"fulfillmentText"`
}

type fulfillmentResponse struct {
	Messages []fulfillmentMessage `json:"messages"`
}

type fulfillmentMessage struct {
	Text fulfillmentText `json:"text"`
}

type fulfillmentText struct {
	Text []string `json:"text"`
}

func newResponse(text string) WebhookResponse {
	return WebhookResponse{
		FulfillmentResponse: fulfillmentResponse{
			Messages: []fulfillmentMessage{{Text: fulfillmentText{Text: []string{text}}}},
		},
		FulfillmentText: text,
	}
}

// Responder turns classified intents into fulfillment text by calling the
// underlying engines.
type Responder struct {
	recommender *recommend.Recommender
	analyzer    *gap.Analyzer
	scorer      *resume.Scorer
	log         *zap.Logger
}

// NewResponder wires a Responder over the engine components.
func NewResponder(rec *recommend.Recommender, analyzer *gap.Analyzer, scorer *resume.Scorer, log *zap.Logger) *Responder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Responder{recommender: rec, analyzer: analyzer, scorer: scorer, log: log}
}

// Respond handles a webhook request end to end. Engine failures degrade to an
// apologetic fulfillment message rather than an HTTP error, since chat
// channels cannot render error payloads.
func (r *Responder) Respond(req *WebhookRequest) WebhookResponse {
	intent := Classify(req.IntentName())
	params := req.Params()
	r.log.Info("chatbot webhook", zap.String("intent", string(intent)))

	switch intent {
	case IntentRecommend:
		return r.respondRecommend(params)
	case IntentSkillGap:
		return r.respondSkillGap(params)
	case IntentResumeTips:
		return r.respondResumeTips(params)
	}
	return newResponse(welcomeText())
}

func (r *Responder) respondRecommend(params map[string]any) WebhookResponse {
	userSkills := stringList(params["skills"])
	result, err := r.recommender.Recommend(userSkills, recommend.Options{TopN: 3})
	if err != nil {
		r.log.Error("chatbot recommendation failed", zap.Error(err))
		return newResponse("Sorry, I encountered an error. Please try again!")
	}

	if len(result.Recommendations) == 0 {
		return newResponse("I couldn't find matching jobs. Try updating your skills profile!")
	}

	var lines []string
	for _, job := range result.Recommendations {
		lines = append(lines, fmt.Sprintf("- %s at %s (%s) - %s match",
			job.Title, job.Company, job.Location, job.MatchPercentage))
	}
	return newResponse(fmt.Sprintf(
		"Here are your top job matches:\n\n%s\n\nWould you like details on any of these?",
		strings.Join(lines, "\n")))
}

func (r *Responder) respondSkillGap(params map[string]any) WebhookResponse {
	userSkills := stringList(params["skills"])
	targetRole, _ := params["role"].(string)
	if targetRole == "" {
		targetRole = "Software Developer"
	}

	report := r.analyzer.Analyze(userSkills, targetRole, "")
	next := "None - you are ready!"
	if len(report.MissingSkills) > 0 {
		next = strings.Join(firstN(report.MissingSkills, 5), ", ")
	}
	return newResponse(fmt.Sprintf(
		"For %s, you're %s ready!\n\nSkills to learn next: %s\n\nEstimated time: %s",
		targetRole, report.CompletionPercentage, next, report.EstimatedLearningTime))
}

func (r *Responder) respondResumeTips(params map[string]any) WebhookResponse {
	resumeText, _ := params["resume_text"].(string)
	report := r.scorer.Score(resumeText, "")

	tips := "Your resume looks good!"
	if len(report.QuickWins) > 0 {
		var lines []string
		for _, win := range firstN(report.QuickWins, 2) {
			lines = append(lines, "- "+win)
		}
		tips = strings.Join(lines, "\n")
	}
	return newResponse(fmt.Sprintf(
		"Resume Score: %s (%s)\n\nQuick improvements:\n%s\n\nUse the /resume-tips API for full analysis!",
		report.OverallScore, report.Grade, tips))
}

func welcomeText() string {
	return "Hi! I'm your Jobseeker AI Assistant.\n\n" +
		"I can help you with:\n" +
		"- Job Recommendations - tell me your skills\n" +
		"- Skill Gap Analysis - share your target role\n" +
		"- Resume Coaching - paste your resume text\n\n" +
		"What would you like to explore?"
}

// stringList coerces a webhook parameter into a skill list: either a JSON
// array or a comma-separated string.
func stringList(v any) []string {
	switch val := v.(type) {
	case []any:
		var out []string
		for _, item := range val {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case string:
		var out []string
		for _, part := range strings.Split(val, ",") {
			if s := strings.TrimSpace(part); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
