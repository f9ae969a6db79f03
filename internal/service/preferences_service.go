package service

import (
	"context"
	"errors"
	"fmt"

	"sarrisk/internal/model"
	"sarrisk/internal/repository"
	"sarrisk/internal/strategy"
	"sarrisk/internal/theme"
)

var ErrUnknownScheme = errors.New("unknown color scheme")

// PreferencesService stores which variant each team works in
type PreferencesService struct {
	repo     repository.PreferencesRepo
	registry *strategy.Registry
	themes   *theme.Resolver
}

// NewPreferencesService creates a new preferences service
func NewPreferencesService(repo repository.PreferencesRepo, registry *strategy.Registry, themes *theme.Resolver) *PreferencesService {
	return &PreferencesService{
		repo:     repo,
		registry: registry,
		themes:   themes,
	}
}

// Get returns a team's preferences, or empty preferences if none were saved
func (s *PreferencesService) Get(ctx context.Context, teamID string) (*model.Preferences, error) {
	prefs, err := s.repo.Get(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	if prefs == nil {
		prefs = &model.Preferences{TeamID: teamID}
	}
	if prefs.Variants == nil {
		prefs.Variants = map[string]string{}
	}
	return prefs, nil
}

// Save replaces a team's preferences
func (s *PreferencesService) Save(ctx context.Context, teamID string, prefs *model.Preferences) (*model.Preferences, error) {
	for typ := range prefs.Variants {
		if _, ok := s.registry.Lookup(typ); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownType, typ)
		}
	}
	if prefs.Scheme != "" && !s.themes.Has(prefs.Scheme) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, prefs.Scheme)
	}

	prefs.TeamID = teamID
	if prefs.Variants == nil {
		prefs.Variants = map[string]string{}
	}
	if err := s.repo.Save(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}
	return prefs, nil
}

// SetVariant records the variant a team picked for one questionnaire type
func (s *PreferencesService) SetVariant(ctx context.Context, teamID, typ, variant string) error {
	prefs, err := s.Get(ctx, teamID)
	if err != nil {
		return err
	}
	if prefs.Variants[typ] == variant {
		return nil
	}
	prefs.Variants[typ] = variant
	if err := s.repo.Save(ctx, prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// VariantFor returns the team's saved variant for a type, or ""
func (s *PreferencesService) VariantFor(ctx context.Context, teamID, typ string) (string, error) {
	prefs, err := s.repo.Get(ctx, teamID)
	if err != nil {
		return "", fmt.Errorf("failed to get preferences: %w", err)
	}
	return prefs.VariantFor(typ), nil
}
