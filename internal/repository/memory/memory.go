// Package memory holds in-memory repository implementations for tests and
// for running the server without MongoDB.
package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"sarrisk/internal/model"
	"sarrisk/internal/repository"
)

var (
	_ repository.MissionRepo       = (*MissionRepo)(nil)
	_ repository.ReportRepo        = (*ReportRepo)(nil)
	_ repository.PreferencesRepo   = (*PreferencesRepo)(nil)
	_ repository.QuestionnaireRepo = (*QuestionnaireRepo)(nil)
)

// MissionRepo stores missions by code
type MissionRepo struct {
	mu       sync.Mutex
	missions map[string]model.Mission
}

func NewMissionRepo() *MissionRepo {
	return &MissionRepo{missions: make(map[string]model.Mission)}
}

func (r *MissionRepo) Create(_ context.Context, m *model.Mission) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.missions[m.Code] = *m
	return nil
}

func (r *MissionRepo) GetByCode(_ context.Context, code string) (*model.Mission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.missions[code]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *MissionRepo) Update(_ context.Context, m *model.Mission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.missions[m.Code] = *m
	return nil
}

func (r *MissionRepo) ListByCoordinator(_ context.Context, coordinatorID string) ([]*model.Mission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.Mission{}
	for _, m := range r.missions {
		if m.CoordinatorID == coordinatorID {
			m := m
			out = append(out, &m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ReportRepo stores reports in insertion order with sequential IDs
type ReportRepo struct {
	mu      sync.Mutex
	reports []model.Report
}

func NewReportRepo() *ReportRepo {
	return &ReportRepo{}
}

func (r *ReportRepo) Create(_ context.Context, report *model.Report) (string, error) {
	if report.FinalizedAt.IsZero() {
		report.FinalizedAt = time.Now()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	report.ID = "r" + strconv.Itoa(len(r.reports)+1)
	r.reports = append(r.reports, *report)
	return report.ID, nil
}

func (r *ReportRepo) GetByID(_ context.Context, id string) (*model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rep := range r.reports {
		if rep.ID == id {
			return &rep, nil
		}
	}
	return nil, nil
}

func (r *ReportRepo) ListByMission(_ context.Context, code string) ([]*model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.Report{}
	for _, rep := range r.reports {
		if rep.MissionCode == code {
			rep := rep
			out = append(out, &rep)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].FinalizedAt.After(out[j].FinalizedAt) })
	return out, nil
}

// Len returns the number of stored reports
func (r *ReportRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}

// PreferencesRepo stores preferences by team
type PreferencesRepo struct {
	mu    sync.Mutex
	prefs map[string]model.Preferences
}

func NewPreferencesRepo() *PreferencesRepo {
	return &PreferencesRepo{prefs: make(map[string]model.Preferences)}
}

func (r *PreferencesRepo) Get(_ context.Context, teamID string) (*model.Preferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.prefs[teamID]
	if !ok {
		return nil, nil
	}
	p.Variants = copyVariants(p.Variants)
	return &p, nil
}

func (r *PreferencesRepo) Save(_ context.Context, p *model.Preferences) error {
	p.UpdatedAt = time.Now()
	stored := *p
	stored.Variants = copyVariants(p.Variants)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prefs[p.TeamID] = stored
	return nil
}

func copyVariants(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// QuestionnaireRepo stores questionnaires by type and variant. Err, when
// set, is returned from Get to simulate an unavailable database.
type QuestionnaireRepo struct {
	mu    sync.Mutex
	items map[string]model.Questionnaire
	Err   error
}

func NewQuestionnaireRepo() *QuestionnaireRepo {
	return &QuestionnaireRepo{items: make(map[string]model.Questionnaire)}
}

func questionnaireKey(typ, variant string) string {
	return typ + "/" + variant
}

func (r *QuestionnaireRepo) Get(_ context.Context, typ, variant string) (*model.Questionnaire, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	q, ok := r.items[questionnaireKey(typ, variant)]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (r *QuestionnaireRepo) Variants(_ context.Context, typ string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []string{}
	for _, q := range r.items {
		if q.Type == typ {
			out = append(out, q.Variant)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *QuestionnaireRepo) Upsert(_ context.Context, q *model.Questionnaire) error {
	q.UpdatedAt = time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[questionnaireKey(q.Type, q.Variant)] = *q
	return nil
}
