package model

import (
	"time"

	"sarrisk/internal/strategy"
)

// Report is the final, shareable result of a completed assessment
type Report struct {
	ID           string                    `json:"id" bson:"_id,omitempty"`
	AssessmentID string                    `json:"assessmentId" bson:"assessmentId"`
	MissionCode  string                    `json:"missionCode" bson:"missionCode"`
	TeamID       string                    `json:"teamId" bson:"teamId"`
	TeamName     string                    `json:"teamName" bson:"teamName"`
	Type         string                    `json:"type" bson:"type"`
	Variant      string                    `json:"variant" bson:"variant"`
	Entries      []strategy.Entry          `json:"entries" bson:"entries"`
	Aggregate    float64                   `json:"aggregate" bson:"aggregate"`
	Evaluation   strategy.EvaluationResult `json:"evaluation" bson:"evaluation"`
	Summary      string                    `json:"summary" bson:"summary"`
	FinalizedAt  time.Time                 `json:"finalizedAt" bson:"finalizedAt"`
}

// BoardEntry is one finalized assessment on a mission risk board
type BoardEntry struct {
	ReportID string  `json:"reportId"`
	TeamID   string  `json:"teamId"`
	TeamName string  `json:"teamName"`
	Type     string  `json:"type"`
	Label    string  `json:"label"`
	Risk     float64 `json:"risk"` // aggregate / highest reachable aggregate, 0-1
	Rank     int     `json:"rank"`
}
