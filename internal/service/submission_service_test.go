package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chonapi/internal/catalog"
	"chonapi/internal/model"
)

type fakeGateway struct {
	saved   map[string]*model.Submission
	saveErr error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{saved: map[string]*model.Submission{}}
}

func (g *fakeGateway) HasSubmission(_ context.Context, respondentID string) (bool, error) {
	_, ok := g.saved[respondentID]
	return ok, nil
}

func (g *fakeGateway) SaveAnswers(_ context.Context, submission *model.Submission) error {
	if g.saveErr != nil {
		return g.saveErr
	}
	g.saved[submission.RespondentID] = submission
	return nil
}

func (g *fakeGateway) GetSubmission(_ context.Context, respondentID string) (*model.Submission, error) {
	return g.saved[respondentID], nil
}

func (g *fakeGateway) CreateAccount(_ context.Context, _ *model.Account) error {
	return nil
}

func finishTest(t *testing.T, svc *FlowService, rid string) {
	t.Helper()
	ctx := context.Background()

	driveToQuestionnaire(t, svc, rid, model.IdentityOther, "")
	menu := catalog.MenuFor(model.IdentityOther)
	require.NotNil(t, menu)
	for i := range menu.Sections {
		for _, id := range menu.Sections[i].QuestionIDs {
			answerQuestion(t, svc, rid, catalog.QuestionByID(id))
		}
	}
	moved, err := svc.Finish(ctx, rid)
	require.NoError(t, err)
	require.True(t, moved)
}

func TestSaveRequiresFinishedTest(t *testing.T) {
	flow, _ := newFlowService()
	svc := NewSubmissionService(newFakeGateway(), flow)
	ctx := context.Background()

	_, err := svc.Save(ctx, "resp-unfinished")
	assert.ErrorIs(t, err, ErrNotFinished)
}

func TestSaveArchivesSubmission(t *testing.T) {
	flow, _ := newFlowService()
	gateway := newFakeGateway()
	svc := NewSubmissionService(gateway, flow)
	ctx := context.Background()
	rid := "resp-save"

	finishTest(t, flow, rid)

	exists, err := svc.Exists(ctx, rid)
	require.NoError(t, err)
	assert.False(t, exists)

	submission, err := svc.Save(ctx, rid)
	require.NoError(t, err)
	assert.Equal(t, rid, submission.RespondentID)
	assert.Equal(t, model.IdentityOther, submission.Identity)
	assert.Len(t, submission.Responses, 42)
	assert.NotEmpty(t, submission.BestMatchID)
	assert.True(t, sort.SliceIsSorted(submission.Responses, func(i, j int) bool {
		return submission.Responses[i].QuestionID < submission.Responses[j].QuestionID
	}))

	exists, err = svc.Exists(ctx, rid)
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := svc.Get(ctx, rid)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, submission.BestMatchID, got.BestMatchID)
}

func TestSaveFailureLeavesStateIntact(t *testing.T) {
	flow, _ := newFlowService()
	gateway := newFakeGateway()
	gateway.saveErr = errors.New("archive down")
	svc := NewSubmissionService(gateway, flow)
	ctx := context.Background()
	rid := "resp-retry"

	finishTest(t, flow, rid)

	_, err := svc.Save(ctx, rid)
	require.Error(t, err)

	// The snapshot survives a failed save, so a retry succeeds
	gateway.saveErr = nil
	submission, err := svc.Save(ctx, rid)
	require.NoError(t, err)
	assert.Len(t, submission.Responses, 42)
}
