package strategy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(scores ...int) []Entry {
	out := make([]Entry, len(scores))
	for i, s := range scores {
		out[i] = Entry{Title: string(rune('A' + i)), Score: s}
	}
	return out
}

func TestAggregate_Sum(t *testing.T) {
	cfg := ORMA
	assert.Equal(t, 40.0, Aggregate(entries(5, 5, 5, 5, 5, 5, 5, 5), &cfg))
	assert.Equal(t, 0.0, Aggregate(entries(0, 0, 0), &cfg))
	assert.Equal(t, 0.0, Aggregate(nil, &cfg))
}

func TestAggregate_SumIsOrderIndependent(t *testing.T) {
	cfg := ORMA
	es := entries(1, 7, 3, 10, 0, 4, 9, 2)
	want := Aggregate(es, &cfg)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]Entry(nil), es...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, Aggregate(shuffled, &cfg))
	}
}

func TestAggregate_Product(t *testing.T) {
	cfg := SPE
	assert.Equal(t, 6.0, Aggregate(entries(3, 2, 1), &cfg))
	assert.Equal(t, 125.0, Aggregate(entries(5, 5, 5), &cfg))
}

func TestAggregate_ProductZeroAbsorbs(t *testing.T) {
	cfg := SPE
	assert.Equal(t, 0.0, Aggregate(entries(3, 4, 0), &cfg))
	assert.Equal(t, 0.0, Aggregate(entries(0, 0, 0), &cfg))
}

func TestAggregate_ProductEmptyIsIdentity(t *testing.T) {
	cfg := SPE
	assert.Equal(t, 1.0, Aggregate(nil, &cfg))
}

func TestAggregate_Average(t *testing.T) {
	cfg := PEACE
	assert.InDelta(t, 7.0/6.0, Aggregate(entries(1, 1, 2, 1, 1, 1), &cfg), 1e-9)
	assert.Equal(t, 0.0, Aggregate(entries(0, 0, 0, 0, 0, 0), &cfg))
	assert.Equal(t, 0.0, Aggregate(nil, &cfg))
	assert.Equal(t, 0.0, Aggregate([]Entry{}, &cfg))
}

func TestAggregate_OutOfDomainScoresAreAccepted(t *testing.T) {
	cfg := ORMA
	assert.Equal(t, 95.0, Aggregate(entries(100, -5), &cfg))
}

func TestEvaluate_SPEScenario(t *testing.T) {
	cfg := SPE
	es := []Entry{
		{Title: "Severity", Score: 3},
		{Title: "Probability", Score: 2},
		{Title: "Exposure", Score: 1},
	}
	res := Evaluate(Aggregate(es, &cfg), &cfg)

	assert.True(t, res.Matched)
	assert.Equal(t, 6.0, res.Score)
	assert.Equal(t, "6 - Slight risk", res.Label)
	assert.Contains(t, res.Action.Text, "Risk possibly acceptable")
	assert.Equal(t, TokenGreen, res.ColorToken)
}

func TestEvaluate_ORMAScenario(t *testing.T) {
	cfg := ORMA
	res := Evaluate(Aggregate(entries(5, 5, 5, 5, 5, 5, 5, 5), &cfg), &cfg)

	assert.True(t, res.Matched)
	assert.Equal(t, "40 - Caution", res.Label)
	assert.Equal(t, TokenAmber, res.ColorToken)
	assert.Equal(t, "reduce the risk", res.Action.Emphasis)
	assert.Contains(t, res.Action.Text, res.Action.Emphasis)
}

func TestEvaluate_PEACEScenario(t *testing.T) {
	cfg := PEACE
	res := Evaluate(Aggregate(entries(1, 1, 2, 1, 1, 1), &cfg), &cfg)

	assert.True(t, res.Matched)
	assert.Equal(t, "Low Risk", res.Label)
	assert.Equal(t, TokenGreen, res.ColorToken)
}

func TestEvaluate_BoundarySemanticsPerStrategy(t *testing.T) {
	peace := PEACE
	orma := ORMA

	tests := []struct {
		name  string
		cfg   *Config
		score float64
		label string
	}{
		{"peace below 1.5", &peace, 1.4999, "Low Risk"},
		{"peace at 1.5 is exclusive", &peace, 1.5, "Medium Risk"},
		{"peace at 2.5 is exclusive", &peace, 2.5, "High Risk"},
		{"peace max is inclusive", &peace, 3, "High Risk"},
		{"orma 35 is inclusive", &orma, 35, "35 - Low risk"},
		{"orma 36", &orma, 36, "36 - Caution"},
		{"orma 60 is inclusive", &orma, 60, "60 - Caution"},
		{"orma 61", &orma, 61, "61 - High risk"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.label, Evaluate(tt.score, tt.cfg).Label)
		})
	}
}

func TestEvaluate_FallsBackToDefault(t *testing.T) {
	cfg := PEACE
	res := Evaluate(3.5, &cfg)

	assert.False(t, res.Matched)
	assert.Equal(t, DefaultResult.Label, res.Label)
	assert.Equal(t, TokenNeutral, res.ColorToken)
	assert.Equal(t, 3.5, res.Score)
	assert.NotEmpty(t, res.Action.Text)
}

func TestEvaluate_ConfigDefaultOverridesPackageDefault(t *testing.T) {
	cfg := Config{
		Type:        "custom",
		Aggregation: AggregationSum,
		Ranges:      []EvaluationRange{{Min: 1, Max: 2, Label: "ok"}},
		Default:     &EvaluationResult{Label: "Incomplete", ColorToken: "grey"},
	}
	res := Evaluate(0, &cfg)

	assert.False(t, res.Matched)
	assert.Equal(t, "Incomplete", res.Label)
	assert.Equal(t, "grey", res.ColorToken)
}

func TestEvaluate_NoRangesNeverPanics(t *testing.T) {
	cfg := Config{Type: "empty"}
	assert.NotPanics(t, func() {
		res := Evaluate(12, &cfg)
		assert.False(t, res.Matched)
	})
}

func TestEvaluate_IsTotalOverReachableAggregates(t *testing.T) {
	for _, cfg := range Builtins() {
		cfg := cfg
		t.Run(cfg.Type, func(t *testing.T) {
			for _, score := range reachable(&cfg) {
				res := Evaluate(score, &cfg)
				require.Truef(t, res.Matched, "no range for aggregate %v", score)
			}
		})
	}
}

// reachable enumerates every aggregate of ItemCount entries scored in
// {0} ∪ [MinScore, MaxScore], folding partial sums or products per step.
func reachable(cfg *Config) []float64 {
	partial := map[int]bool{0: true}
	if cfg.Aggregation == AggregationProduct {
		partial = map[int]bool{1: true}
	}
	for i := 0; i < cfg.ItemCount; i++ {
		next := map[int]bool{}
		for p := range partial {
			for s := 0; s <= cfg.MaxScore; s++ {
				if s != 0 && s < cfg.MinScore {
					continue
				}
				if cfg.Aggregation == AggregationProduct {
					next[p*s] = true
				} else {
					next[p+s] = true
				}
			}
		}
		partial = next
	}

	out := make([]float64, 0, len(partial))
	for p := range partial {
		if cfg.Aggregation == AggregationAverage {
			out = append(out, float64(p)/float64(cfg.ItemCount))
			continue
		}
		out = append(out, float64(p))
	}
	return out
}

func TestEvaluate_IsIdempotent(t *testing.T) {
	cfg := SPE
	a := Evaluate(48, &cfg)
	b := Evaluate(48, &cfg)
	assert.Equal(t, a, b)
	assert.Equal(t, "48 - Substantial risk", a.Label)
}

func TestClassifyItem(t *testing.T) {
	cfg := ORMA

	assert.True(t, ClassifyItem(0, &cfg).IsZero())

	low := ClassifyItem(2, &cfg)
	assert.Equal(t, "garGreenDark", low.ContainerToken)
	assert.Equal(t, "garGreenLight", low.ContentToken)
	assert.Equal(t, "Low", low.Label)

	assert.Equal(t, "Medium", ClassifyItem(7, &cfg).Label)
	assert.Equal(t, "High", ClassifyItem(8, &cfg).Label)
}

func TestClassifyItem_ZeroIsEmptyForEveryConfig(t *testing.T) {
	for _, cfg := range Builtins() {
		cfg := cfg
		assert.Equal(t, ItemClassification{}, ClassifyItem(0, &cfg), cfg.Type)
	}
	assert.Equal(t, ItemClassification{}, ClassifyItem(0, &Config{}))
}

func TestClassifyItem_UnknownScoreIsNeutral(t *testing.T) {
	cfg := SPE
	c := ClassifyItem(9, &cfg)
	assert.Equal(t, TokenNeutralContainer, c.ContainerToken)
	assert.Equal(t, TokenNeutralContent, c.ContentToken)

	c = ClassifyItem(-1, &cfg)
	assert.Equal(t, TokenNeutralContainer, c.ContainerToken)
}

func TestClassify_DoesNotMutateInput(t *testing.T) {
	cfg := PEACE
	in := entries(1, 0, 3)
	out := Classify(in, &cfg)

	assert.Empty(t, in[0].ContainerToken)
	assert.Equal(t, "garGreenDark", out[0].ContainerToken)
	assert.Equal(t, "Low", out[0].Description)
	assert.Empty(t, out[1].ContainerToken)
	assert.Equal(t, "High", out[2].Description)
}

func TestAssess(t *testing.T) {
	cfg := SPE
	a := Assess(entries(4, 0, 5), &cfg)

	assert.Equal(t, ProgressPartiallyScored, a.Progress)
	assert.Equal(t, 2, a.Scored)
	assert.Equal(t, 3, a.Total)
	assert.Equal(t, 0.0, a.Aggregate)
	assert.Equal(t, "0 - Slight risk", a.Evaluation.Label)
	assert.Equal(t, "High", a.Entries[0].Description)
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "6", FormatScore(6))
	assert.Equal(t, "1.5", FormatScore(1.5))
	assert.Equal(t, "0", FormatScore(0))
}
