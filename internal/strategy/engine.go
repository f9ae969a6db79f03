// Package strategy is the risk-scoring engine. It reduces questionnaire
// entries to an aggregate score, maps aggregates to a risk band and maps
// single entry scores to display tokens. Everything here is pure: no I/O,
// no shared state, inputs are never mutated.
package strategy

import (
	"fmt"
	"strconv"
)

// Entry is one questionnaire item. Score 0 means unscored.
type Entry struct {
	Title    string `json:"title" bson:"title"`
	Subtitle string `json:"subtitle" bson:"subtitle"`
	Score    int    `json:"score" bson:"score"`

	// Derived from ClassifyItem, consistent with Score
	Description    string `json:"description,omitempty" bson:"description,omitempty"`
	ContainerToken string `json:"containerToken,omitempty" bson:"containerToken,omitempty"`
	ContentToken   string `json:"contentToken,omitempty" bson:"contentToken,omitempty"`
}

// EvaluationResult is the qualitative result for an aggregate score
type EvaluationResult struct {
	Score      float64 `json:"score" yaml:"-"`
	Label      string  `json:"label" yaml:"label"`
	Action     Action  `json:"action" yaml:"action"`
	ColorToken string  `json:"colorToken" yaml:"color_token"`
	Matched    bool    `json:"matched" yaml:"-"`
}

// ItemClassification holds the display tokens for a single entry score.
// The zero value means "not classified".
type ItemClassification struct {
	ContainerToken string `json:"containerToken,omitempty"`
	ContentToken   string `json:"contentToken,omitempty"`
	Label          string `json:"label,omitempty"`
}

// IsZero reports whether no classification applies
func (c ItemClassification) IsZero() bool {
	return c == ItemClassification{}
}

// DefaultResult is returned by Evaluate when a config has no default of its own
var DefaultResult = EvaluationResult{
	Label:      "-",
	Action:     Action{Text: "Score every item to get a recommended action."},
	ColorToken: TokenNeutral,
}

var neutralItem = ItemClassification{
	ContainerToken: TokenNeutralContainer,
	ContentToken:   TokenNeutralContent,
}

// Aggregate reduces entry scores with the config's aggregation.
// Unscored entries take part in the reduction, so a single unscored entry
// zeroes a product.
func Aggregate(entries []Entry, cfg *Config) float64 {
	switch cfg.Aggregation {
	case AggregationProduct:
		product := 1.0
		for _, e := range entries {
			product *= float64(e.Score)
		}
		return product
	case AggregationAverage:
		if len(entries) == 0 {
			return 0
		}
		return float64(sum(entries)) / float64(len(entries))
	default:
		return float64(sum(entries))
	}
}

func sum(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += e.Score
	}
	return total
}

// Evaluate returns the result of the first range, in declared order, that
// contains score. When none does it returns the config default.
func Evaluate(score float64, cfg *Config) EvaluationResult {
	for _, r := range cfg.Ranges {
		if !r.Contains(score) {
			continue
		}
		label := r.Label
		if cfg.LabelWithScore {
			label = fmt.Sprintf("%s - %s", FormatScore(score), r.Label)
		}
		return EvaluationResult{
			Score:      score,
			Label:      label,
			Action:     r.Action,
			ColorToken: r.ColorToken,
			Matched:    true,
		}
	}
	return defaultFor(score, cfg)
}

func defaultFor(score float64, cfg *Config) EvaluationResult {
	res := DefaultResult
	if cfg.Default != nil {
		res = *cfg.Default
	}
	res.Score = score
	res.Matched = false
	return res
}

// NeutralResult is the config's default result, used by callers while a
// questionnaire is not complete.
func NeutralResult(score float64, cfg *Config) EvaluationResult {
	return defaultFor(score, cfg)
}

// ClassifyItem maps a single entry score to display tokens. An unscored
// entry gets the zero classification; a score no item range covers gets
// the neutral token pair.
func ClassifyItem(score int, cfg *Config) ItemClassification {
	if score == 0 {
		return ItemClassification{}
	}
	for _, r := range cfg.ItemRanges {
		if score >= r.Min && score <= r.Max {
			return ItemClassification{
				ContainerToken: r.ContainerToken,
				ContentToken:   r.ContentToken,
				Label:          r.Label,
			}
		}
	}
	return neutralItem
}

// Classify returns a copy of entries with derived display fields set from
// their current scores.
func Classify(entries []Entry, cfg *Config) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		c := ClassifyItem(e.Score, cfg)
		e.Description = c.Label
		e.ContainerToken = c.ContainerToken
		e.ContentToken = c.ContentToken
		out[i] = e
	}
	return out
}

// Assessment bundles everything the engine computes for one entry list
type Assessment struct {
	Entries    []Entry          `json:"entries"`
	Progress   Progress         `json:"progress"`
	Scored     int              `json:"scored"`
	Total      int              `json:"total"`
	Aggregate  float64          `json:"aggregate"`
	Evaluation EvaluationResult `json:"evaluation"`
}

// Assess classifies, aggregates and evaluates entries. It does not gate on
// completeness; Progress tells the caller whether Evaluation is final.
func Assess(entries []Entry, cfg *Config) Assessment {
	agg := Aggregate(entries, cfg)
	return Assessment{
		Entries:    Classify(entries, cfg),
		Progress:   ProgressOf(entries),
		Scored:     ScoredCount(entries),
		Total:      len(entries),
		Aggregate:  agg,
		Evaluation: Evaluate(agg, cfg),
	}
}

// FormatScore renders an aggregate without trailing zeros
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
