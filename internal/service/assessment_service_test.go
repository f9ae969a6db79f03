package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sarrisk/internal/model"
	"sarrisk/internal/strategy"
)

func TestAssessmentService_StartIsUnscored(t *testing.T) {
	f := newFixture(t)
	code, team := f.openMission(t)

	view, err := f.assessments.Start(context.Background(), code, team, strategy.TypeSPE, "")
	require.NoError(t, err)

	assert.Equal(t, VariantEnglish, view.Variant)
	assert.Equal(t, strategy.ProgressUnscored, view.Progress)
	assert.Equal(t, 3, view.Total)
	assert.Equal(t, 0, view.NextUnscored)
	assert.False(t, view.Evaluation.Matched)
	assert.Equal(t, strategy.DefaultResult.Label, view.Evaluation.Label)
	for _, e := range view.Entries {
		assert.Zero(t, e.Score)
		assert.Empty(t, e.ContainerToken)
	}
}

func TestAssessmentService_StartUsesSavedVariant(t *testing.T) {
	f := newFixture(t)
	code, team := f.openMission(t)
	ctx := context.Background()
	require.NoError(t, f.preferences.SetVariant(ctx, team, strategy.TypeORMA, VariantSpanish))

	view, err := f.assessments.Start(ctx, code, team, strategy.TypeORMA, "")
	require.NoError(t, err)
	assert.Equal(t, VariantSpanish, view.Variant)
	assert.Equal(t, "Supervisión", view.Entries[0].Title)
}

func TestAssessmentService_StartRejectsUnknownType(t *testing.T) {
	f := newFixture(t)
	code, team := f.openMission(t)

	_, err := f.assessments.Start(context.Background(), code, team, "nope", "")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestAssessmentService_StartRejectsClosedMission(t *testing.T) {
	f := newFixture(t)
	code, team := f.openMission(t)
	ctx := context.Background()
	_, err := f.missions.Close(ctx, code, "c_1")
	require.NoError(t, err)

	_, err = f.assessments.Start(ctx, code, team, strategy.TypeSPE, "")
	assert.ErrorIs(t, err, ErrMissionClosed)
}

func TestAssessmentService_ScoringWalkthrough(t *testing.T) {
	f := newFixture(t)
	code, team := f.openMission(t)
	ctx := context.Background()

	view, err := f.assessments.Start(ctx, code, team, strategy.TypeSPE, "")
	require.NoError(t, err)

	view, err = f.assessments.Score(ctx, team, view.ID, "Severity", 3)
	require.NoError(t, err)
	assert.Equal(t, strategy.ProgressPartiallyScored, view.Progress)
	assert.Equal(t, 1, view.NextUnscored)
	assert.Equal(t, "Medium", view.Entries[0].Description)
	assert.False(t, view.Evaluation.Matched)

	_, err = f.assessments.Score(ctx, team, view.ID, "Probability", 2)
	require.NoError(t, err)
	view, err = f.assessments.Score(ctx, team, view.ID, "Exposure", 1)
	require.NoError(t, err)

	assert.Equal(t, strategy.ProgressComplete, view.Progress)
	assert.Equal(t, -1, view.NextUnscored)
	assert.Equal(t, 6.0, view.Aggregate)
	assert.True(t, view.Evaluation.Matched)
	assert.Equal(t, "6 - Slight risk", view.Evaluation.Label)
	assert.Equal(t, strategy.TokenGreen, view.Evaluation.ColorToken)

	got, err := f.assessments.Get(ctx, team, view.ID)
	require.NoError(t, err)
	assert.Equal(t, view.Entries, got.Entries)
}

func TestAssessmentService_ClearingScoreReturnsToPartial(t *testing.T) {
	f := newFixture(t)
	code, team := f.openMission(t)
	ctx := context.Background()

	view, err := f.assessments.Start(ctx, code, team, strategy.TypeSPE, "")
	require.NoError(t, err)
	for _, title := range []string{"Severity", "Probability", "Exposure"} {
		view, err = f.assessments.Score(ctx, team, view.ID, title, 4)
		require.NoError(t, err)
	}
	require.Equal(t, strategy.ProgressComplete, view.Progress)

	view, err = f.assessments.Score(ctx, team, view.ID, "Probability", 0)
	require.NoError(t, err)
	assert.Equal(t, strategy.ProgressPartiallyScored, view.Progress)
	assert.Equal(t, 1, view.NextUnscored)
	assert.Empty(t, view.Entries[1].ContainerToken)
	assert.False(t, view.Evaluation.Matched)
}

func TestAssessmentService_ScoreValidation(t *testing.T) {
	f := newFixture(t)
	code, team := f.openMission(t)
	ctx := context.Background()

	view, err := f.assessments.Start(ctx, code, team, strategy.TypePEACE, "")
	require.NoError(t, err)

	_, err = f.assessments.Score(ctx, team, view.ID, "Weather", 2)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	_, err = f.assessments.Score(ctx, team, view.ID, "Planning", 4)
	assert.ErrorIs(t, err, ErrScoreOutOfRange)

	_, err = f.assessments.Score(ctx, team, view.ID, "Planning", -1)
	assert.ErrorIs(t, err, ErrScoreOutOfRange)

	_, err = f.assessments.Score(ctx, "t_other", view.ID, "Planning", 2)
	assert.ErrorIs(t, err, ErrNotAssessmentOwner)

	_, err = f.assessments.Score(ctx, team, "missing", "Planning", 2)
	assert.ErrorIs(t, err, ErrAssessmentNotFound)
}

func TestAssessmentService_ChangeVariantResetsEntries(t *testing.T) {
	f := newFixture(t)
	code, team := f.openMission(t)
	ctx := context.Background()

	view, err := f.assessments.Start(ctx, code, team, strategy.TypeSPE, VariantEnglish)
	require.NoError(t, err)
	_, err = f.assessments.Score(ctx, team, view.ID, "Severity", 5)
	require.NoError(t, err)

	view, err = f.assessments.ChangeVariant(ctx, team, view.ID, VariantSpanish)
	require.NoError(t, err)
	assert.Equal(t, VariantSpanish, view.Variant)
	assert.Equal(t, strategy.ProgressUnscored, view.Progress)
	assert.Equal(t, "Gravedad", view.Entries[0].Title)

	saved, err := f.preferences.VariantFor(ctx, team, strategy.TypeSPE)
	require.NoError(t, err)
	assert.Equal(t, VariantSpanish, saved)

	_, err = f.assessments.ChangeVariant(ctx, team, view.ID, "fr")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestAssessmentService_FinalizeRequiresComplete(t *testing.T) {
	f := newFixture(t)
	code, team := f.openMission(t)
	ctx := context.Background()

	view, err := f.assessments.Start(ctx, code, team, strategy.TypeSPE, "")
	require.NoError(t, err)
	_, err = f.assessments.Score(ctx, team, view.ID, "Severity", 5)
	require.NoError(t, err)

	_, err = f.assessments.Finalize(ctx, team, view.ID)
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.Zero(t, f.reportRepo.Len())
}

func TestAssessmentService_Finalize(t *testing.T) {
	f := newFixture(t)
	code, team := f.openMission(t)
	ctx := context.Background()

	view, err := f.assessments.Start(ctx, code, team, strategy.TypeORMA, "")
	require.NoError(t, err)
	for _, e := range view.Entries {
		_, err = f.assessments.Score(ctx, team, view.ID, e.Title, 5)
		require.NoError(t, err)
	}

	report, err := f.assessments.Finalize(ctx, team, view.ID)
	require.NoError(t, err)
	assert.Equal(t, "r1", report.ID)
	assert.Equal(t, "Alpha", report.TeamName)
	assert.Equal(t, 40.0, report.Aggregate)
	assert.Equal(t, "40 - Caution", report.Evaluation.Label)
	assert.Contains(t, report.Summary, "Result: 40 - Caution")
	assert.Contains(t, report.Summary, "Supervision: 5 (Medium)")

	_, err = f.assessments.Get(ctx, team, view.ID)
	assert.ErrorIs(t, err, ErrAssessmentNotFound)

	board, err := f.missions.Board(ctx, code, 0)
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, "r1", board[0].ReportID)
	assert.InDelta(t, 0.5, board[0].Risk, 1e-9)
	assert.Equal(t, 1, board[0].Rank)

	assert.Contains(t, f.events.kinds(), EventAssessmentFinalized)
	assert.Contains(t, f.events.kinds(), EventBoardUpdate)
}

func TestAssessmentService_Discard(t *testing.T) {
	f := newFixture(t)
	code, team := f.openMission(t)
	ctx := context.Background()

	view, err := f.assessments.Start(ctx, code, team, strategy.TypePEACE, "")
	require.NoError(t, err)

	list, err := f.assessments.ListByTeam(ctx, team)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, f.assessments.Discard(ctx, team, view.ID))
	_, err = f.assessments.Get(ctx, team, view.ID)
	assert.ErrorIs(t, err, ErrAssessmentNotFound)

	list, err = f.assessments.ListByTeam(ctx, team)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRisk(t *testing.T) {
	spe := strategy.SPE
	assert.InDelta(t, 6.0/125.0, Risk(6, &spe), 1e-9)
	assert.Equal(t, 1.0, Risk(500, &spe))
	assert.Equal(t, 0.0, Risk(-1, &spe))
	assert.Equal(t, 0.0, Risk(10, &strategy.Config{}))
}

func TestSummarize(t *testing.T) {
	r := &model.Report{
		Type:        strategy.TypePEACE,
		TeamName:    "Bravo",
		MissionCode: "ABC123",
		Entries:     []strategy.Entry{{Title: "Planning", Score: 1, Description: "Low"}, {Title: "Other", Score: 2}},
		Aggregate:   1.5,
		Evaluation:  strategy.EvaluationResult{Label: "Medium Risk", Action: strategy.Action{Text: "Mitigate."}},
	}
	s := Summarize(r, "")

	assert.Contains(t, s, "PEACE\n")
	assert.Contains(t, s, "Team: Bravo")
	assert.Contains(t, s, "Planning: 1 (Low)")
	assert.Contains(t, s, "Other: 2\n")
	assert.Contains(t, s, "Total: 1.5")
	assert.Contains(t, s, "Action: Mitigate.")
	assert.NotContains(t, s, "Date:")
}
