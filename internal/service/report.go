package service

import (
	"fmt"
	"strings"
	"time"

	"sarrisk/internal/model"
	"sarrisk/internal/strategy"
)

// NewReport builds the final report of a complete assessment
func NewReport(a *model.Assessment, teamName, title string, cfg *strategy.Config, now time.Time) *model.Report {
	assessed := strategy.Assess(a.Entries, cfg)
	r := &model.Report{
		AssessmentID: a.ID,
		MissionCode:  a.MissionCode,
		TeamID:       a.TeamID,
		TeamName:     teamName,
		Type:         a.Type,
		Variant:      a.Variant,
		Entries:      assessed.Entries,
		Aggregate:    assessed.Aggregate,
		Evaluation:   assessed.Evaluation,
		FinalizedAt:  now,
	}
	r.Summary = Summarize(r, title)
	return r
}

// Summarize renders a report as shareable plain text
func Summarize(r *model.Report, title string) string {
	var b strings.Builder
	if title == "" {
		title = strings.ToUpper(r.Type)
	}
	b.WriteString(title)
	b.WriteString("\n")
	if r.TeamName != "" {
		fmt.Fprintf(&b, "Team: %s\n", r.TeamName)
	}
	if r.MissionCode != "" {
		fmt.Fprintf(&b, "Mission: %s\n", r.MissionCode)
	}
	b.WriteString("\n")

	for _, e := range r.Entries {
		if e.Description != "" {
			fmt.Fprintf(&b, "%s: %d (%s)\n", e.Title, e.Score, e.Description)
			continue
		}
		fmt.Fprintf(&b, "%s: %d\n", e.Title, e.Score)
	}

	fmt.Fprintf(&b, "\nTotal: %s\n", strategy.FormatScore(r.Aggregate))
	fmt.Fprintf(&b, "Result: %s\n", r.Evaluation.Label)
	if r.Evaluation.Action.Text != "" {
		fmt.Fprintf(&b, "Action: %s\n", r.Evaluation.Action.Text)
	}
	if !r.FinalizedAt.IsZero() {
		fmt.Fprintf(&b, "Date: %s\n", r.FinalizedAt.UTC().Format(time.RFC3339))
	}
	return b.String()
}

// Risk normalizes an aggregate against the highest aggregate the config can
// reach, clamped to 0-1, so assessments of different types share one board
func Risk(aggregate float64, cfg *strategy.Config) float64 {
	_, hi := cfg.Coverage()
	if hi <= 0 {
		return 0
	}
	risk := aggregate / hi
	switch {
	case risk < 0:
		return 0
	case risk > 1:
		return 1
	}
	return risk
}
