package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/arvind/jobseeker-engine/internal/chat"
	"github.com/arvind/jobseeker-engine/internal/gap"
	"github.com/arvind/jobseeker-engine/internal/recommend"
	"github.com/arvind/jobseeker-engine/internal/resume"
	"github.com/arvind/jobseeker-engine/internal/types"
)

// EngineHandler exposes the matching, gap-analysis and resume-review
// engines over HTTP.
type EngineHandler struct {
	recommender *recommend.Recommender
	analyzer    *gap.Analyzer
	scorer      *resume.Scorer
	responder   *chat.Responder
	log         *zap.Logger
}

// NewEngineHandler creates the handler set for the engine endpoints.
func NewEngineHandler(recommender *recommend.Recommender, analyzer *gap.Analyzer, scorer *resume.Scorer, responder *chat.Responder, log *zap.Logger) *EngineHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &EngineHandler{
		recommender: recommender,
		analyzer:    analyzer,
		scorer:      scorer,
		responder:   responder,
		log:         log,
	}
}

// Recommend handles POST /recommend.
func (h *EngineHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendBySkillsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.recommender.Recommend(req.Skills, recommend.Options{
		TopN:            req.TopN,
		ExperienceLevel: req.ExperienceLevel,
		Location:        req.Location,
	})
	if err != nil {
		h.writeError(w, err, "recommend failed")
		return
	}
	writeJSON(w, http.StatusOK, types.Envelope{Success: true, Data: result})
}

// RecommendFromResume handles POST /recommend/resume.
func (h *EngineHandler) RecommendFromResume(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendByResumeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.recommender.RecommendFromResume(req.ResumeText, recommend.Options{
		TopN:            req.TopN,
		ExperienceLevel: req.ExperienceLevel,
		Location:        req.Location,
	})
	if err != nil {
		h.writeError(w, err, "recommend from resume failed")
		return
	}
	writeJSON(w, http.StatusOK, types.Envelope{Success: true, Data: result})
}

// SkillGap handles POST /skill-gap.
func (h *EngineHandler) SkillGap(w http.ResponseWriter, r *http.Request) {
	var req types.SkillGapBySkillsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	report := h.analyzer.Analyze(req.UserSkills, req.TargetRole, req.ExperienceLevel)
	writeJSON(w, http.StatusOK, types.Envelope{Success: true, Data: report})
}

// SkillGapFromResume handles POST /skill-gap/resume.
func (h *EngineHandler) SkillGapFromResume(w http.ResponseWriter, r *http.Request) {
	var req types.SkillGapByResumeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	report := h.analyzer.AnalyzeFromResume(req.ResumeText, req.TargetRole, req.ExperienceLevel)
	writeJSON(w, http.StatusOK, types.Envelope{Success: true, Data: report})
}

// ResumeTips handles POST /resume-tips.
func (h *EngineHandler) ResumeTips(w http.ResponseWriter, r *http.Request) {
	var req types.ResumeTipsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	report := h.scorer.Score(req.ResumeText, req.TargetRole)
	writeJSON(w, http.StatusOK, types.Envelope{Success: true, Data: report})
}

// ChatWebhook handles POST /chatbot/webhook.
func (h *EngineHandler) ChatWebhook(w http.ResponseWriter, r *http.Request) {
	var req chat.WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	resp := h.responder.Respond(&req)
	writeJSON(w, http.StatusOK, resp)
}

func (h *EngineHandler) writeError(w http.ResponseWriter, err error, msg string) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.log.Error(msg, zap.Error(err))
	} else {
		h.log.Warn(msg, zap.Error(err))
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// decodeAndValidate parses the JSON body into req and runs its
// validation rules, writing the error response itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{ Validate() error }) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
