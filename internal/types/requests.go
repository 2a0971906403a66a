// Package types defines the request and response contracts of the jobseeker
// engine API.
package types

import "github.com/go-playground/validator/v10"

// RecommendBySkillsRequest asks for job recommendations from a typed skill
// list. An empty skill list is allowed and yields empty recommendations.
type RecommendBySkillsRequest struct {
	Skills          []string `json:"skills"`
	TopN            int      `json:"top_n" validate:"omitempty,gte=1,lte=15"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	Location        string   `json:"location,omitempty"`
}

// RecommendByResumeRequest asks for job recommendations from pasted resume
// text; skills are extracted server-side.
type RecommendByResumeRequest struct {
	ResumeText      string `json:"resume_text" validate:"required,min=50"`
	TopN            int    `json:"top_n" validate:"omitempty,gte=1,lte=15"`
	ExperienceLevel string `json:"experience_level,omitempty"`
	Location        string `json:"location,omitempty"`
}

// SkillGapBySkillsRequest asks for a gap analysis from a typed skill list.
type SkillGapBySkillsRequest struct {
	UserSkills      []string `json:"user_skills"`
	TargetRole      string   `json:"target_role" validate:"required"`
	ExperienceLevel string   `json:"experience_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// SkillGapByResumeRequest asks for a gap analysis from pasted resume text.
type SkillGapByResumeRequest struct {
	ResumeText      string `json:"resume_text" validate:"required,min=50"`
	TargetRole      string `json:"target_role" validate:"required"`
	ExperienceLevel string `json:"experience_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// ResumeTipsRequest asks for the resume-quality report.
type ResumeTipsRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=50"`
	TargetRole string `json:"target_role,omitempty"`
}

// Envelope wraps every successful API response.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

var validate = validator.New()

// Validate validates the RecommendBySkillsRequest.
func (r *RecommendBySkillsRequest) Validate() error { return validate.Struct(r) }

// Validate validates the RecommendByResumeRequest.
func (r *RecommendByResumeRequest) Validate() error { return validate.Struct(r) }

// Validate validates the SkillGapBySkillsRequest.
func (r *SkillGapBySkillsRequest) Validate() error { return validate.Struct(r) }

// Validate validates the SkillGapByResumeRequest.
func (r *SkillGapByResumeRequest) Validate() error { return validate.Struct(r) }

// Validate validates the ResumeTipsRequest.
func (r *ResumeTipsRequest) Validate() error { return validate.Struct(r) }
