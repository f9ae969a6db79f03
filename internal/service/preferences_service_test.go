package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sarrisk/internal/model"
	"sarrisk/internal/strategy"
)

func TestPreferencesService_GetDefaults(t *testing.T) {
	f := newFixture(t)
	p, err := f.preferences.Get(context.Background(), "t_1")
	require.NoError(t, err)
	assert.Equal(t, "t_1", p.TeamID)
	assert.NotNil(t, p.Variants)
}

func TestPreferencesService_Save(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	saved, err := f.preferences.Save(ctx, "t_1", &model.Preferences{
		TeamID:   "spoofed",
		Variants: map[string]string{strategy.TypeORMA: VariantSpanish},
		Scheme:   "dark",
	})
	require.NoError(t, err)
	assert.Equal(t, "t_1", saved.TeamID)

	v, err := f.preferences.VariantFor(ctx, "t_1", strategy.TypeORMA)
	require.NoError(t, err)
	assert.Equal(t, VariantSpanish, v)

	_, err = f.preferences.Save(ctx, "t_1", &model.Preferences{Variants: map[string]string{"bogus": "en"}})
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = f.preferences.Save(ctx, "t_1", &model.Preferences{Scheme: "sepia"})
	assert.ErrorIs(t, err, ErrUnknownScheme)
}
