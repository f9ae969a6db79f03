package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"sarrisk/internal/cache"
	"sarrisk/internal/config"
	"sarrisk/internal/repository/memory"
	"sarrisk/internal/strategy"
	"sarrisk/internal/theme"
)

type event struct {
	mission string
	kind    string
	payload interface{}
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []event
}

func (b *recordingBroadcaster) BroadcastToCoordinator(code, kind string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event{code, kind, payload})
}

func (b *recordingBroadcaster) DisconnectMission(string) {}

func (b *recordingBroadcaster) kinds() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.events))
	for i, e := range b.events {
		out[i] = e.kind
	}
	return out
}

type fixture struct {
	redis          *miniredis.Miniredis
	missionRepo    *memory.MissionRepo
	reportRepo     *memory.ReportRepo
	prefsRepo      *memory.PreferencesRepo
	questRepo      *memory.QuestionnaireRepo
	board          cache.BoardCache
	assessCache    cache.AssessmentCache
	auth           *AuthService
	questionnaires *QuestionnaireService
	preferences    *PreferencesService
	missions       *MissionService
	assessments    *AssessmentService
	events         *recordingBroadcaster
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:           "test-secret",
		CoordinatorUsername: "admin",
		CoordinatorPassword: "pw",
		TeamTokenTTL:        time.Hour,
		AssessmentTTL:       time.Hour,
		DefaultVariant:      VariantEnglish,
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cfg := testConfig()
	log := zap.NewNop()
	registry := strategy.NewRegistry()

	f := &fixture{
		redis:       mr,
		missionRepo: memory.NewMissionRepo(),
		reportRepo:  memory.NewReportRepo(),
		prefsRepo:   memory.NewPreferencesRepo(),
		questRepo:   memory.NewQuestionnaireRepo(),
		board:       cache.NewBoardCache(rdb),
		assessCache: cache.NewAssessmentCache(rdb, cfg.AssessmentTTL),
		auth:        NewAuthService(cfg),
		events:      &recordingBroadcaster{},
	}
	f.questionnaires = NewQuestionnaireService(f.questRepo, registry, cfg.DefaultVariant, log)
	f.preferences = NewPreferencesService(f.prefsRepo, registry, theme.NewResolver())
	f.missions = NewMissionService(f.missionRepo, f.reportRepo, cache.NewMissionCache(rdb), f.board, f.auth, log)
	f.assessments = NewAssessmentService(f.assessCache, f.board, f.reportRepo, f.questionnaires, f.preferences, f.missions, log)
	f.missions.SetBroadcaster(f.events)
	f.assessments.SetBroadcaster(f.events)
	return f
}

// openMission creates a mission with one joined team
func (f *fixture) openMission(t *testing.T) (code, teamID string) {
	t.Helper()
	ctx := context.Background()
	m, err := f.missions.Create(ctx, "c_1", "Ridge search")
	if err != nil {
		t.Fatal(err)
	}
	join, err := f.missions.Join(ctx, m.Code, "Alpha")
	if err != nil {
		t.Fatal(err)
	}
	return m.Code, join.TeamID
}
