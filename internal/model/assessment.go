package model

import (
	"time"

	"sarrisk/internal/strategy"
)

// Assessment is one in-progress questionnaire instance filled by a team
type Assessment struct {
	ID          string           `json:"id"`
	MissionCode string           `json:"missionCode"`
	TeamID      string           `json:"teamId"`
	Type        string           `json:"type"`
	Variant     string           `json:"variant"`
	Entries     []strategy.Entry `json:"entries"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// AssessmentView is an assessment plus everything derived from its scores
type AssessmentView struct {
	ID           string                    `json:"id"`
	MissionCode  string                    `json:"missionCode"`
	TeamID       string                    `json:"teamId"`
	Type         string                    `json:"type"`
	Variant      string                    `json:"variant"`
	Entries      []strategy.Entry          `json:"entries"`
	Progress     strategy.Progress         `json:"progress"`
	Scored       int                       `json:"scored"`
	Total        int                       `json:"total"`
	NextUnscored int                       `json:"nextUnscored"`
	Aggregate    float64                   `json:"aggregate"`
	Evaluation   strategy.EvaluationResult `json:"evaluation"`
	UpdatedAt    time.Time                 `json:"updatedAt"`
}

// ScoreRequest is the request body for scoring one entry
type ScoreRequest struct {
	Score int `json:"score"`
}

// StartAssessmentRequest is the request body for starting an assessment
type StartAssessmentRequest struct {
	Type    string `json:"type"`
	Variant string `json:"variant,omitempty"`
}

// VariantRequest is the request body for switching variant
type VariantRequest struct {
	Variant string `json:"variant"`
}
