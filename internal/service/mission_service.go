package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sarrisk/internal/cache"
	"sarrisk/internal/model"
	"sarrisk/internal/repository"
)

var (
	ErrMissionNotFound = errors.New("mission not found")
	ErrMissionClosed   = errors.New("mission is closed")
	ErrNotCoordinator  = errors.New("unauthorized: not mission coordinator")
	ErrTeamNotFound    = errors.New("team not found")
	ErrInvalidName     = errors.New("name is required")
)

// DefaultBoardSize is the number of board entries returned when no limit is given
const DefaultBoardSize = 50

// MissionService handles mission lifecycle, team joins and the risk board
type MissionService struct {
	missionRepo  repository.MissionRepo
	reportRepo   repository.ReportRepo
	missionCache cache.MissionCache
	board        cache.BoardCache
	authSvc      *AuthService
	broadcaster  Broadcaster
	log          *zap.Logger
}

// NewMissionService creates a new mission service
func NewMissionService(
	missionRepo repository.MissionRepo,
	reportRepo repository.ReportRepo,
	missionCache cache.MissionCache,
	board cache.BoardCache,
	authSvc *AuthService,
	log *zap.Logger,
) *MissionService {
	return &MissionService{
		missionRepo:  missionRepo,
		reportRepo:   reportRepo,
		missionCache: missionCache,
		board:        board,
		authSvc:      authSvc,
		broadcaster:  noopBroadcaster{},
		log:          log,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *MissionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Create opens a new mission owned by a coordinator
func (s *MissionService) Create(ctx context.Context, coordinatorID, name string) (*model.Mission, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	code, err := s.generateCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mission code: %w", err)
	}

	mission := &model.Mission{
		Code:          code,
		Name:          name,
		CoordinatorID: coordinatorID,
		Status:        model.MissionOpen,
		CreatedAt:     time.Now(),
	}
	if err := s.missionRepo.Create(ctx, mission); err != nil {
		return nil, fmt.Errorf("failed to create mission: %w", err)
	}
	if err := s.missionCache.SetMeta(ctx, code, metaOf(mission)); err != nil {
		return nil, fmt.Errorf("failed to cache mission: %w", err)
	}

	s.log.Info("mission created", zap.String("mission", code), zap.String("coordinator", coordinatorID))
	return mission, nil
}

func metaOf(m *model.Mission) *model.MissionMeta {
	return &model.MissionMeta{
		Name:          m.Name,
		CoordinatorID: m.CoordinatorID,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
	}
}

// Get retrieves a mission by code
func (s *MissionService) Get(ctx context.Context, code string) (*model.Mission, error) {
	mission, err := s.missionRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}
	if mission == nil {
		return nil, ErrMissionNotFound
	}
	return mission, nil
}

// Meta returns cached mission metadata, reloading it from MongoDB when the
// cache entry expired
func (s *MissionService) Meta(ctx context.Context, code string) (*model.MissionMeta, error) {
	meta, err := s.missionCache.GetMeta(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}
	if meta != nil {
		return meta, nil
	}

	mission, err := s.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	meta = metaOf(mission)
	if err := s.missionCache.SetMeta(ctx, code, meta); err != nil {
		s.log.Warn("failed to re-cache mission", zap.String("mission", code), zap.Error(err))
	}
	return meta, nil
}

// Authorize checks that coordinatorID owns the mission
func (s *MissionService) Authorize(ctx context.Context, code, coordinatorID string) error {
	meta, err := s.Meta(ctx, code)
	if err != nil {
		return err
	}
	if meta.CoordinatorID != coordinatorID {
		return ErrNotCoordinator
	}
	return nil
}

// ListByCoordinator lists the missions a coordinator created
func (s *MissionService) ListByCoordinator(ctx context.Context, coordinatorID string) ([]*model.Mission, error) {
	return s.missionRepo.ListByCoordinator(ctx, coordinatorID)
}

// Close transitions a mission to closed. Teams can no longer start or
// finalize assessments in it.
func (s *MissionService) Close(ctx context.Context, code, coordinatorID string) (*model.Mission, error) {
	mission, err := s.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if mission.CoordinatorID != coordinatorID {
		return nil, ErrNotCoordinator
	}
	if mission.Status == model.MissionClosed {
		return mission, nil
	}

	now := time.Now()
	mission.Status = model.MissionClosed
	mission.ClosedAt = &now
	if err := s.missionRepo.Update(ctx, mission); err != nil {
		return nil, fmt.Errorf("failed to close mission: %w", err)
	}
	if err := s.missionCache.SetMeta(ctx, code, metaOf(mission)); err != nil {
		return nil, fmt.Errorf("failed to cache mission: %w", err)
	}

	s.broadcaster.BroadcastToCoordinator(code, EventMissionClosed, map[string]interface{}{
		"missionCode": code,
		"closedAt":    now,
	})
	s.log.Info("mission closed", zap.String("mission", code))
	return mission, nil
}

// Join registers a team in an open mission and issues its token
func (s *MissionService) Join(ctx context.Context, code, teamName string) (*model.JoinMissionResponse, error) {
	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return nil, ErrInvalidName
	}
	if err := s.RequireOpen(ctx, code); err != nil {
		return nil, err
	}

	team := &model.Team{
		ID:          "t_" + uuid.New().String()[:8],
		MissionCode: code,
		Name:        teamName,
		JoinedAt:    time.Now(),
	}
	token, err := s.authSvc.GenerateTeamToken(code, team.ID, team.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.missionCache.AddTeam(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to add team: %w", err)
	}

	s.broadcaster.BroadcastToCoordinator(code, EventTeamJoined, team)
	s.log.Info("team joined", zap.String("mission", code), zap.String("team", team.ID))

	return &model.JoinMissionResponse{
		TeamID:      team.ID,
		MissionCode: code,
		Token:       token,
	}, nil
}

// RequireOpen returns ErrMissionClosed unless the mission accepts work
func (s *MissionService) RequireOpen(ctx context.Context, code string) error {
	meta, err := s.Meta(ctx, code)
	if err != nil {
		return err
	}
	if meta.Status != model.MissionOpen {
		return ErrMissionClosed
	}
	return nil
}

// Team returns a team of the mission
func (s *MissionService) Team(ctx context.Context, code, teamID string) (*model.Team, error) {
	team, err := s.missionCache.GetTeam(ctx, code, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}
	return team, nil
}

// Teams lists the teams of the mission
func (s *MissionService) Teams(ctx context.Context, code string) ([]*model.Team, error) {
	return s.missionCache.Teams(ctx, code)
}

// Board returns the mission's finalized assessments, riskiest first
func (s *MissionService) Board(ctx context.Context, code string, limit int) ([]model.BoardEntry, error) {
	if _, err := s.Meta(ctx, code); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultBoardSize
	}
	return s.board.Top(ctx, code, limit)
}

// Reports lists the mission's finalized reports, newest first
func (s *MissionService) Reports(ctx context.Context, code string) ([]*model.Report, error) {
	if _, err := s.Meta(ctx, code); err != nil {
		return nil, err
	}
	reports, err := s.reportRepo.ListByMission(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	if reports == nil {
		reports = []*model.Report{}
	}
	return reports, nil
}

// generateCode creates a 6-char alphanumeric code
func (s *MissionService) generateCode(ctx context.Context) (string, error) {
	const chars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	const codeLen = 6

	for attempts := 0; attempts < 10; attempts++ {
		b := make([]byte, codeLen)
		if _, err := rand.Read(b); err != nil {
			return "", err
		}

		code := make([]byte, codeLen)
		for i := range code {
			code[i] = chars[int(b[i])%len(chars)]
		}
		codeStr := string(code)

		exists, err := s.missionCache.Exists(ctx, codeStr)
		if err != nil {
			return "", err
		}
		if !exists {
			return codeStr, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique mission code")
}
