package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sarrisk/internal/model"
	"sarrisk/internal/strategy"
)

func TestBuiltinQuestionnairesMatchConfigs(t *testing.T) {
	registry := strategy.NewRegistry()
	for _, q := range BuiltinQuestionnaires() {
		cfg, ok := registry.Lookup(q.Type)
		require.True(t, ok, q.Type)
		assert.Len(t, q.Items, cfg.ItemCount, "%s/%s", q.Type, q.Variant)

		seen := map[string]bool{}
		for _, it := range q.Items {
			assert.False(t, seen[it.Title], "duplicate title %q", it.Title)
			seen[it.Title] = true
			assert.NotEmpty(t, it.Subtitle)
		}
	}
}

func TestQuestionnaireService_GetFallsBackToBuiltin(t *testing.T) {
	f := newFixture(t)

	q, err := f.questionnaires.Get(context.Background(), strategy.TypeSPE, "")
	require.NoError(t, err)
	assert.Equal(t, VariantEnglish, q.Variant)
	assert.Equal(t, "Severity", q.Items[0].Title)

	_, err = f.questionnaires.Get(context.Background(), "bogus", "")
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = f.questionnaires.Get(context.Background(), strategy.TypeSPE, "de")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestQuestionnaireService_StoredDefinitionWins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.questRepo.Upsert(ctx, &model.Questionnaire{
		Type:    strategy.TypeSPE,
		Variant: "de",
		Title:   "Schwere, Wahrscheinlichkeit, Exposition",
		Items:   []model.ItemPrompt{{Title: "Schwere"}, {Title: "Wahrscheinlichkeit"}, {Title: "Exposition"}},
	}))

	q, err := f.questionnaires.Get(ctx, strategy.TypeSPE, "de")
	require.NoError(t, err)
	assert.Equal(t, "Schwere", q.Items[0].Title)
}

func TestQuestionnaireService_RepoErrorUsesBuiltin(t *testing.T) {
	f := newFixture(t)
	f.questRepo.Err = errors.New("mongo down")

	q, err := f.questionnaires.Get(context.Background(), strategy.TypePEACE, VariantSpanish)
	require.NoError(t, err)
	assert.Equal(t, "Planificación", q.Items[0].Title)
}

func TestQuestionnaireService_Seed(t *testing.T) {
	f := newFixture(t)
	n, err := f.questionnaires.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(BuiltinQuestionnaires()), n)

	variants, err := f.questRepo.Variants(context.Background(), strategy.TypeORMA)
	require.NoError(t, err)
	assert.Equal(t, []string{VariantEnglish, VariantSpanish}, variants)
}

func TestQuestionnaireService_Evaluate(t *testing.T) {
	f := newFixture(t)

	res, err := f.questionnaires.Evaluate(strategy.TypeSPE, []strategy.Entry{
		{Title: "Severity", Score: 3},
		{Title: "Probability", Score: 2},
		{Title: "Exposure", Score: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "6 - Slight risk", res.Evaluation.Label)
	assert.Equal(t, "Low", res.Entries[2].Description)

	_, err = f.questionnaires.Evaluate("bogus", nil)
	assert.ErrorIs(t, err, ErrUnknownType)
}
