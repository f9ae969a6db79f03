package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sarrisk/internal/cache"
	"sarrisk/internal/metrics"
	"sarrisk/internal/model"
	"sarrisk/internal/repository"
	"sarrisk/internal/strategy"
)

var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrNotAssessmentOwner = errors.New("unauthorized: assessment belongs to another team")
	ErrEntryNotFound      = errors.New("entry not found")
	ErrScoreOutOfRange    = errors.New("score out of range")
	ErrIncomplete         = errors.New("assessment is not complete")
)

// AssessmentService drives the scoring of one questionnaire instance from
// unscored to complete and on to a finalized report
type AssessmentService struct {
	assessments    cache.AssessmentCache
	board          cache.BoardCache
	reportRepo     repository.ReportRepo
	questionnaires *QuestionnaireService
	preferences    *PreferencesService
	missions       *MissionService
	broadcaster    Broadcaster
	log            *zap.Logger
	now            func() time.Time
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	assessments cache.AssessmentCache,
	board cache.BoardCache,
	reportRepo repository.ReportRepo,
	questionnaires *QuestionnaireService,
	preferences *PreferencesService,
	missions *MissionService,
	log *zap.Logger,
) *AssessmentService {
	return &AssessmentService{
		assessments:    assessments,
		board:          board,
		reportRepo:     reportRepo,
		questionnaires: questionnaires,
		preferences:    preferences,
		missions:       missions,
		broadcaster:    noopBroadcaster{},
		log:            log,
		now:            time.Now,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *AssessmentService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Start creates an unscored assessment. An empty variant selects the team's
// saved preference, then the default variant.
func (s *AssessmentService) Start(ctx context.Context, missionCode, teamID, typ, variant string) (*model.AssessmentView, error) {
	cfg, err := s.questionnaires.Config(typ)
	if err != nil {
		return nil, err
	}
	if err := s.missions.RequireOpen(ctx, missionCode); err != nil {
		return nil, err
	}

	if variant == "" {
		variant, err = s.preferences.VariantFor(ctx, teamID, typ)
		if err != nil {
			s.log.Warn("using default variant", zap.String("team", teamID), zap.Error(err))
		}
	}
	if variant == "" {
		variant = s.questionnaires.DefaultVariant()
	}
	q, err := s.questionnaires.Get(ctx, typ, variant)
	if err != nil {
		return nil, err
	}

	now := s.now()
	a := &model.Assessment{
		ID:          uuid.New().String(),
		MissionCode: missionCode,
		TeamID:      teamID,
		Type:        typ,
		Variant:     variant,
		Entries:     q.Entries(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.assessments.Set(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to save assessment: %w", err)
	}

	metrics.AssessmentsStarted.WithLabelValues(typ).Inc()
	s.log.Info("assessment started",
		zap.String("assessment", a.ID), zap.String("team", teamID),
		zap.String("type", typ), zap.String("variant", variant))

	view := s.view(a, cfg)
	s.broadcaster.BroadcastToCoordinator(missionCode, EventAssessmentUpdated, view)
	return view, nil
}

// Get returns the current state of an assessment
func (s *AssessmentService) Get(ctx context.Context, teamID, id string) (*model.AssessmentView, error) {
	a, cfg, err := s.load(ctx, teamID, id)
	if err != nil {
		return nil, err
	}
	return s.view(a, cfg), nil
}

// ListByTeam returns the team's in-progress assessments
func (s *AssessmentService) ListByTeam(ctx context.Context, teamID string) ([]*model.AssessmentView, error) {
	list, err := s.assessments.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	views := make([]*model.AssessmentView, 0, len(list))
	for _, a := range list {
		cfg, err := s.questionnaires.Config(a.Type)
		if err != nil {
			continue
		}
		views = append(views, s.view(a, cfg))
	}
	return views, nil
}

// Score sets the score of the entry with the given title. A score of 0
// clears the entry.
func (s *AssessmentService) Score(ctx context.Context, teamID, id, title string, score int) (*model.AssessmentView, error) {
	a, cfg, err := s.load(ctx, teamID, id)
	if err != nil {
		return nil, err
	}
	i := strategy.IndexOf(a.Entries, title)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, title)
	}
	if !cfg.InDomain(score) {
		return nil, fmt.Errorf("%w: %d not in %d-%d", ErrScoreOutOfRange, score, cfg.MinScore, cfg.MaxScore)
	}

	entries := append([]strategy.Entry(nil), a.Entries...)
	entries[i].Score = score
	a.Entries = strategy.Classify(entries, cfg)
	a.UpdatedAt = s.now()
	if err := s.assessments.Set(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to save assessment: %w", err)
	}

	metrics.EntriesScored.WithLabelValues(a.Type).Inc()
	view := s.view(a, cfg)
	s.broadcaster.BroadcastToCoordinator(a.MissionCode, EventAssessmentUpdated, view)
	return view, nil
}

// ChangeVariant replaces the entry list with a fresh, unscored list in
// another variant and remembers the choice for the team
func (s *AssessmentService) ChangeVariant(ctx context.Context, teamID, id, variant string) (*model.AssessmentView, error) {
	a, cfg, err := s.load(ctx, teamID, id)
	if err != nil {
		return nil, err
	}
	q, err := s.questionnaires.Get(ctx, a.Type, variant)
	if err != nil {
		return nil, err
	}

	a.Variant = q.Variant
	a.Entries = q.Entries()
	a.UpdatedAt = s.now()
	if err := s.assessments.Set(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to save assessment: %w", err)
	}
	if err := s.preferences.SetVariant(ctx, teamID, a.Type, a.Variant); err != nil {
		s.log.Warn("failed to save variant preference", zap.String("team", teamID), zap.Error(err))
	}

	view := s.view(a, cfg)
	s.broadcaster.BroadcastToCoordinator(a.MissionCode, EventAssessmentUpdated, view)
	return view, nil
}

// Finalize stores the report of a complete assessment, records it on the
// mission risk board and drops the in-progress state
func (s *AssessmentService) Finalize(ctx context.Context, teamID, id string) (*model.Report, error) {
	a, cfg, err := s.load(ctx, teamID, id)
	if err != nil {
		return nil, err
	}
	if !strategy.Complete(a.Entries) {
		return nil, ErrIncomplete
	}
	if err := s.missions.RequireOpen(ctx, a.MissionCode); err != nil {
		return nil, err
	}

	teamName := teamID
	if team, err := s.missions.Team(ctx, a.MissionCode, teamID); err == nil {
		teamName = team.Name
	}
	title := cfg.Name
	if q, err := s.questionnaires.Get(ctx, a.Type, a.Variant); err == nil && q.Title != "" {
		title = q.Title
	}

	report := NewReport(a, teamName, title, cfg, s.now())
	reportID, err := s.reportRepo.Create(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	entry := &model.BoardEntry{
		ReportID: reportID,
		TeamID:   teamID,
		TeamName: teamName,
		Type:     a.Type,
		Label:    report.Evaluation.Label,
		Risk:     Risk(report.Aggregate, cfg),
	}
	if err := s.board.Record(ctx, a.MissionCode, entry); err != nil {
		s.log.Error("failed to record board entry", zap.String("report", reportID), zap.Error(err))
	}
	if err := s.assessments.Delete(ctx, a); err != nil {
		s.log.Warn("failed to drop finalized assessment", zap.String("assessment", a.ID), zap.Error(err))
	}

	metrics.AssessmentsFinalized.WithLabelValues(a.Type, report.Evaluation.ColorToken).Inc()
	s.log.Info("assessment finalized",
		zap.String("assessment", a.ID), zap.String("report", reportID),
		zap.String("label", report.Evaluation.Label))

	s.broadcaster.BroadcastToCoordinator(a.MissionCode, EventAssessmentFinalized, report)
	if top, err := s.board.Top(ctx, a.MissionCode, DefaultBoardSize); err == nil {
		s.broadcaster.BroadcastToCoordinator(a.MissionCode, EventBoardUpdate, top)
	}
	return report, nil
}

// Discard drops an in-progress assessment
func (s *AssessmentService) Discard(ctx context.Context, teamID, id string) error {
	a, _, err := s.load(ctx, teamID, id)
	if err != nil {
		return err
	}
	if err := s.assessments.Delete(ctx, a); err != nil {
		return fmt.Errorf("failed to discard assessment: %w", err)
	}
	s.log.Info("assessment discarded", zap.String("assessment", id), zap.String("team", teamID))
	return nil
}

func (s *AssessmentService) load(ctx context.Context, teamID, id string) (*model.Assessment, *strategy.Config, error) {
	a, err := s.assessments.Get(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get assessment: %w", err)
	}
	if a == nil {
		return nil, nil, ErrAssessmentNotFound
	}
	if a.TeamID != teamID {
		return nil, nil, ErrNotAssessmentOwner
	}
	cfg, err := s.questionnaires.Config(a.Type)
	if err != nil {
		return nil, nil, err
	}
	return a, cfg, nil
}

// view derives progress and evaluation. The evaluation stays neutral until
// every entry is scored.
func (s *AssessmentService) view(a *model.Assessment, cfg *strategy.Config) *model.AssessmentView {
	assessed := strategy.Assess(a.Entries, cfg)
	evaluation := assessed.Evaluation
	if assessed.Progress == strategy.ProgressComplete {
		metrics.Evaluations.WithLabelValues(a.Type, metrics.Matched(evaluation.Matched)).Inc()
	} else {
		evaluation = strategy.NeutralResult(assessed.Aggregate, cfg)
	}

	return &model.AssessmentView{
		ID:           a.ID,
		MissionCode:  a.MissionCode,
		TeamID:       a.TeamID,
		Type:         a.Type,
		Variant:      a.Variant,
		Entries:      assessed.Entries,
		Progress:     assessed.Progress,
		Scored:       assessed.Scored,
		Total:        assessed.Total,
		NextUnscored: strategy.NextUnscored(a.Entries),
		Aggregate:    assessed.Aggregate,
		Evaluation:   evaluation,
		UpdatedAt:    a.UpdatedAt,
	}
}
