package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"sarrisk/internal/metrics"
	"sarrisk/internal/model"
	"sarrisk/internal/repository"
	"sarrisk/internal/strategy"
)

var (
	ErrUnknownType    = errors.New("unknown questionnaire type")
	ErrUnknownVariant = errors.New("unknown questionnaire variant")
)

// QuestionnaireService serves questionnaire definitions. Definitions stored
// in MongoDB take precedence over the built-in catalog.
type QuestionnaireService struct {
	repo           repository.QuestionnaireRepo
	registry       *strategy.Registry
	builtins       map[string]model.Questionnaire
	defaultVariant string
	log            *zap.Logger
}

// NewQuestionnaireService creates a new questionnaire service
func NewQuestionnaireService(
	repo repository.QuestionnaireRepo,
	registry *strategy.Registry,
	defaultVariant string,
	log *zap.Logger,
) *QuestionnaireService {
	builtins := make(map[string]model.Questionnaire)
	for _, q := range BuiltinQuestionnaires() {
		builtins[builtinKey(q.Type, q.Variant)] = q
	}
	if defaultVariant == "" {
		defaultVariant = VariantEnglish
	}
	return &QuestionnaireService{
		repo:           repo,
		registry:       registry,
		builtins:       builtins,
		defaultVariant: defaultVariant,
		log:            log,
	}
}

func builtinKey(typ, variant string) string {
	return typ + "/" + variant
}

// DefaultVariant is the variant used when neither the request nor the
// team's preferences name one
func (s *QuestionnaireService) DefaultVariant() string {
	return s.defaultVariant
}

// Get returns the questionnaire for a type and variant. An empty variant
// selects the default.
func (s *QuestionnaireService) Get(ctx context.Context, typ, variant string) (*model.Questionnaire, error) {
	if _, ok := s.registry.Lookup(typ); !ok {
		return nil, ErrUnknownType
	}
	if variant == "" {
		variant = s.defaultVariant
	}

	if s.repo != nil {
		q, err := s.repo.Get(ctx, typ, variant)
		if err != nil {
			// Fall through to the catalog so scoring keeps working without Mongo
			s.log.Warn("questionnaire lookup failed",
				zap.String("type", typ), zap.String("variant", variant), zap.Error(err))
		} else if q != nil {
			return q, nil
		}
	}

	q, ok := s.builtins[builtinKey(typ, variant)]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownVariant, typ, variant)
	}
	return &q, nil
}

// Config returns the strategy config for a questionnaire type
func (s *QuestionnaireService) Config(typ string) (*strategy.Config, error) {
	cfg, ok := s.registry.Lookup(typ)
	if !ok {
		return nil, ErrUnknownType
	}
	return cfg, nil
}

// Seed writes the built-in catalog to MongoDB
func (s *QuestionnaireService) Seed(ctx context.Context) (int, error) {
	n := 0
	for _, q := range BuiltinQuestionnaires() {
		q := q
		if err := s.repo.Upsert(ctx, &q); err != nil {
			return n, fmt.Errorf("seed %s/%s: %w", q.Type, q.Variant, err)
		}
		n++
	}
	return n, nil
}

// Evaluate runs the engine over caller-supplied entries without storing
// anything
func (s *QuestionnaireService) Evaluate(typ string, entries []strategy.Entry) (*strategy.Assessment, error) {
	cfg, err := s.Config(typ)
	if err != nil {
		return nil, err
	}
	result := strategy.Assess(entries, cfg)
	metrics.Evaluations.WithLabelValues(typ, metrics.Matched(result.Evaluation.Matched)).Inc()
	return &result, nil
}
