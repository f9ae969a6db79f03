package strategy

import (
	"errors"
	"fmt"
	"math"
)

// Aggregation is the reduction applied to entry scores
type Aggregation string

const (
	AggregationSum     Aggregation = "sum"
	AggregationProduct Aggregation = "product"
	AggregationAverage Aggregation = "average"
)

// Neutral color tokens used whenever nothing more specific applies
const (
	TokenNeutral          = "neutral"
	TokenNeutralContainer = "neutralContainer"
	TokenNeutralContent   = "neutralContent"
)

// Action is the recommended action for an evaluation result.
// Emphasis, when set, is a sub-phrase of Text that clients render emphasized.
type Action struct {
	Text     string `json:"text" yaml:"text" bson:"text"`
	Emphasis string `json:"emphasis,omitempty" yaml:"emphasis,omitempty" bson:"emphasis,omitempty"`
}

// EvaluationRange maps an interval of aggregate scores to a result.
// Min is always inclusive; Max is inclusive unless MaxExclusive is set.
type EvaluationRange struct {
	Min          float64 `json:"min" yaml:"min"`
	Max          float64 `json:"max" yaml:"max"`
	MaxExclusive bool    `json:"maxExclusive,omitempty" yaml:"max_exclusive,omitempty"`
	Label        string  `json:"label" yaml:"label"`
	Action       Action  `json:"action" yaml:"action"`
	ColorToken   string  `json:"colorToken" yaml:"color_token"`
}

// Contains reports whether score falls inside the range
func (r EvaluationRange) Contains(score float64) bool {
	if score < r.Min {
		return false
	}
	if r.MaxExclusive {
		return score < r.Max
	}
	return score <= r.Max
}

// ItemRange maps single entry scores in [Min, Max] to display tokens
type ItemRange struct {
	Min            int    `json:"min" yaml:"min"`
	Max            int    `json:"max" yaml:"max"`
	ContainerToken string `json:"containerToken" yaml:"container_token"`
	ContentToken   string `json:"contentToken" yaml:"content_token"`
	Label          string `json:"label" yaml:"label"`
}

// Config is the static definition of one questionnaire type's scoring.
// A Config is never mutated once registered.
type Config struct {
	Type        string      `json:"type" yaml:"type"`
	Name        string      `json:"name" yaml:"name"`
	Aggregation Aggregation `json:"aggregation" yaml:"aggregation"`

	// Declared score domain of a single entry, and the number of entries
	// the evaluation ranges were authored for.
	MinScore  int `json:"minScore" yaml:"min_score"`
	MaxScore  int `json:"maxScore" yaml:"max_score"`
	ItemCount int `json:"itemCount" yaml:"item_count"`

	// LabelWithScore renders labels as "<aggregate> - <label>"
	LabelWithScore bool `json:"labelWithScore" yaml:"label_with_score"`

	Ranges     []EvaluationRange `json:"ranges" yaml:"ranges"`
	ItemRanges []ItemRange       `json:"itemRanges" yaml:"item_ranges"`

	// Default is returned by Evaluate when no range matches.
	// Left empty, DefaultResult is used.
	Default *EvaluationResult `json:"default,omitempty" yaml:"default,omitempty"`
}

var (
	ErrNoType             = errors.New("strategy: type is required")
	ErrUnknownAggregation = errors.New("strategy: unknown aggregation")
	ErrNoRanges           = errors.New("strategy: at least one evaluation range is required")
	ErrBadScoreDomain     = errors.New("strategy: invalid score domain")
)

// Validate checks a config for authoring defects. Call it once when a
// config is loaded, not on every evaluation.
func (c *Config) Validate() error {
	if c.Type == "" {
		return ErrNoType
	}
	switch c.Aggregation {
	case AggregationSum, AggregationProduct, AggregationAverage:
	default:
		return fmt.Errorf("%w %q for %s", ErrUnknownAggregation, c.Aggregation, c.Type)
	}
	if c.MinScore < 1 || c.MaxScore < c.MinScore {
		return fmt.Errorf("%w [%d,%d] for %s", ErrBadScoreDomain, c.MinScore, c.MaxScore, c.Type)
	}
	if len(c.Ranges) == 0 {
		return fmt.Errorf("%w for %s", ErrNoRanges, c.Type)
	}
	for i, r := range c.Ranges {
		if r.Max < r.Min {
			return fmt.Errorf("strategy %s: range %d has max %v below min %v", c.Type, i, r.Max, r.Min)
		}
		if i > 0 && r.Min < c.Ranges[i-1].Max {
			return fmt.Errorf("strategy %s: range %d overlaps range %d", c.Type, i, i-1)
		}
		if i > 0 && r.Min == c.Ranges[i-1].Max && !c.Ranges[i-1].MaxExclusive {
			return fmt.Errorf("strategy %s: range %d overlaps range %d at %v", c.Type, i, i-1, r.Min)
		}
		if r.Label == "" {
			return fmt.Errorf("strategy %s: range %d has no label", c.Type, i)
		}
	}
	for i, r := range c.ItemRanges {
		if r.Max < r.Min {
			return fmt.Errorf("strategy %s: item range %d has max %d below min %d", c.Type, i, r.Max, r.Min)
		}
	}
	return nil
}

// Coverage returns the lowest and highest aggregate Aggregate can produce
// for ItemCount entries scored within the declared domain. Unscored
// entries count, so the low end is always 0.
func (c *Config) Coverage() (lo, hi float64) {
	n := c.ItemCount
	if n <= 0 {
		return 0, 0
	}
	max := float64(c.MaxScore)
	switch c.Aggregation {
	case AggregationSum:
		return 0, max * float64(n)
	case AggregationProduct:
		return 0, math.Pow(max, float64(n))
	case AggregationAverage:
		return 0, max
	}
	return 0, 0
}

// InDomain reports whether score is a valid entry score. 0 (unscored)
// is always accepted.
func (c *Config) InDomain(score int) bool {
	return score == 0 || (score >= c.MinScore && score <= c.MaxScore)
}
