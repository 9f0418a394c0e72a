package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chonapi/internal/catalog"
	"chonapi/internal/model"
	"chonapi/internal/store"
)

func newFlowService() (*FlowService, store.StateStore) {
	st := store.NewMemoryStore()
	return NewFlowService(st, NewScoringService(), NewMatchService()), st
}

func driveToQuestionnaire(t *testing.T, svc *FlowService, rid string, identity model.Identity, role model.CorporateRole) {
	t.Helper()
	ctx := context.Background()

	moved, err := svc.Begin(ctx, rid)
	require.NoError(t, err)
	require.True(t, moved)

	moved, err = svc.SelectIdentity(ctx, rid, identity, role)
	require.NoError(t, err)
	require.True(t, moved)

	moved, err = svc.AckPrivacy(ctx, rid)
	require.NoError(t, err)
	require.True(t, moved)
}

// answerQuestion submits a plausible answer for any question kind
func answerQuestion(t *testing.T, svc *FlowService, rid string, q *model.Question) {
	t.Helper()
	in := AnswerInput{QuestionID: q.ID}
	switch q.Kind {
	case model.QuestionKindSingleChoice:
		in.Option = q.Options[0].ID
	case model.QuestionKindScale:
		in.Option = "4"
	case model.QuestionKindMultiChoice:
		in.Option = q.Options[0].ID
		for _, opt := range q.Options {
			if !q.IsExclusiveOption(opt.ID) {
				in.Option = opt.ID
				break
			}
		}
	case model.QuestionKindFreeText:
		in.Text = fmt.Sprintf("answer for %d", q.ID)
	}
	require.NoError(t, svc.SubmitAnswer(context.Background(), rid, in))
}

func TestFullFlow(t *testing.T) {
	svc, _ := newFlowService()
	ctx := context.Background()
	rid := "resp-full"

	view, err := svc.State(ctx, rid)
	require.NoError(t, err)
	assert.Equal(t, model.StepIntro, view.Step)
	assert.False(t, view.InProgress)

	driveToQuestionnaire(t, svc, rid, model.IdentityOther, "")

	// A second begin is a no-op once past the intro
	moved, err := svc.Begin(ctx, rid)
	require.NoError(t, err)
	assert.False(t, moved)

	view, err = svc.State(ctx, rid)
	require.NoError(t, err)
	assert.Equal(t, model.StepQuestionnaire, view.Step)
	assert.Equal(t, 0, view.SectionIndex)
	assert.Equal(t, 4, view.SectionCount)
	assert.Equal(t, 42, view.TotalQuestions)
	assert.True(t, view.InProgress)

	// Finishing early is blocked without an error
	moved, err = svc.Finish(ctx, rid)
	require.NoError(t, err)
	assert.False(t, moved)

	menu := catalog.MenuFor(model.IdentityOther)
	require.NotNil(t, menu)
	for i := range menu.Sections {
		for _, id := range menu.Sections[i].QuestionIDs {
			q := catalog.QuestionByID(id)
			require.NotNil(t, q, "question %d", id)
			answerQuestion(t, svc, rid, q)
		}
		moved, err := svc.Next(ctx, rid)
		require.NoError(t, err)
		if i < len(menu.Sections)-1 {
			assert.True(t, moved, "section %d", i)
		} else {
			assert.False(t, moved, "past the last section")
		}
	}

	view, err = svc.State(ctx, rid)
	require.NoError(t, err)
	assert.Equal(t, 42, view.AnsweredCount)
	assert.InDelta(t, 100.0, view.Progress, 0.001)

	moved, err = svc.Finish(ctx, rid)
	require.NoError(t, err)
	require.True(t, moved)

	view, err = svc.State(ctx, rid)
	require.NoError(t, err)
	assert.True(t, view.Completed)

	stats, match, err := svc.Snapshot(ctx, rid)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Len(t, match.Ranked, 6)
	assert.NotEmpty(t, match.BestID)
	for _, trait := range model.AllTraits {
		_, ok := stats[trait]
		assert.True(t, ok, "trait %s", trait.Key())
	}

	// The section view is gone once the test is finished
	_, err = svc.Section(ctx, rid, model.LanguageEN)
	assert.ErrorIs(t, err, ErrWrongStep)

	require.NoError(t, svc.Restart(ctx, rid))
	view, err = svc.State(ctx, rid)
	require.NoError(t, err)
	assert.Equal(t, model.StepIntro, view.Step)
	assert.Zero(t, view.AnsweredCount)
}

func TestSelectIdentityValidation(t *testing.T) {
	svc, _ := newFlowService()
	ctx := context.Background()
	rid := "resp-identity"

	moved, err := svc.Begin(ctx, rid)
	require.NoError(t, err)
	require.True(t, moved)

	_, err = svc.SelectIdentity(ctx, rid, model.Identity("alien"), "")
	assert.ErrorIs(t, err, ErrInvalidIdentity)

	_, err = svc.SelectIdentity(ctx, rid, model.IdentityCorporate, "")
	assert.ErrorIs(t, err, ErrRoleRequired)

	_, err = svc.SelectIdentity(ctx, rid, model.IdentityCorporate, model.CorporateRole("janitor"))
	assert.ErrorIs(t, err, ErrInvalidRole)

	moved, err = svc.SelectIdentity(ctx, rid, model.IdentityCorporate, model.RoleFounder)
	require.NoError(t, err)
	assert.True(t, moved)

	view, err := svc.State(ctx, rid)
	require.NoError(t, err)
	assert.Equal(t, model.StepPrivacyNotice, view.Step)
	assert.Equal(t, model.RoleFounder, view.CorporateRole)
	assert.True(t, view.WorkedInCorporate)
}

func TestSelectIdentityOutOfStep(t *testing.T) {
	svc, _ := newFlowService()
	ctx := context.Background()

	moved, err := svc.SelectIdentity(ctx, "resp-early", model.IdentityMother, "")
	require.NoError(t, err)
	assert.False(t, moved)
}

func TestSubmitAnswerGating(t *testing.T) {
	svc, _ := newFlowService()
	ctx := context.Background()
	rid := "resp-gating"

	err := svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 1, Option: "A"})
	assert.ErrorIs(t, err, ErrWrongStep)

	driveToQuestionnaire(t, svc, rid, model.IdentityOther, "")

	err = svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 999, Option: "A"})
	assert.ErrorIs(t, err, ErrUnknownQuestion)

	// q6 exists but is not part of the other-identity menu
	err = svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 6, Option: "A"})
	assert.ErrorIs(t, err, ErrUnknownQuestion)

	err = svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 1, Option: "Z"})
	assert.ErrorIs(t, err, ErrInvalidAnswer)

	// Scale answers outside 1..5 are rejected
	err = svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 20, Option: "6"})
	assert.ErrorIs(t, err, ErrInvalidAnswer)
	err = svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 20, Option: "0"})
	assert.ErrorIs(t, err, ErrInvalidAnswer)
	err = svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 20, Option: "3"})
	assert.NoError(t, err)
}

func TestSingleChoiceResubmitIsIdempotent(t *testing.T) {
	svc, _ := newFlowService()
	ctx := context.Background()
	rid := "resp-idem"

	driveToQuestionnaire(t, svc, rid, model.IdentityOther, "")

	require.NoError(t, svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 2, Option: "A"}))
	state, err := svc.AnswersOf(ctx, rid)
	require.NoError(t, err)
	first := state.Answers[2]

	// Re-answering with the same option replaces, never toggles
	require.NoError(t, svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 2, Option: "A"}))
	state, err = svc.AnswersOf(ctx, rid)
	require.NoError(t, err)
	assert.Equal(t, first, state.Answers[2])
	assert.Equal(t, "A", state.Answers[2].Value.Option)

	// A different option replaces the stored one
	require.NoError(t, svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 2, Option: "B"}))
	state, err = svc.AnswersOf(ctx, rid)
	require.NoError(t, err)
	assert.Equal(t, "B", state.Answers[2].Value.Option)
}

func TestMultiChoiceMutation(t *testing.T) {
	svc, _ := newFlowService()
	ctx := context.Background()
	rid := "resp-multi"

	driveToQuestionnaire(t, svc, rid, model.IdentityMother, "")

	// Toggle two options on
	require.NoError(t, svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 53, Option: "B"}))
	require.NoError(t, svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 53, Option: "C"}))

	state, err := svc.AnswersOf(ctx, rid)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, state.Answers[53].Value.Options)

	// The exclusive option displaces everything else
	require.NoError(t, svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 53, Option: "A"}))
	state, err = svc.AnswersOf(ctx, rid)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, state.Answers[53].Value.Options)

	// And any other selection displaces the exclusive one
	require.NoError(t, svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 53, Option: "B"}))
	state, err = svc.AnswersOf(ctx, rid)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, state.Answers[53].Value.Options)

	// Toggling the last option off clears the answer entirely
	require.NoError(t, svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 53, Option: "B"}))
	state, err = svc.AnswersOf(ctx, rid)
	require.NoError(t, err)
	assert.False(t, state.Answers.IsAnswered(53))
}

func TestMultiChoiceReplace(t *testing.T) {
	svc, _ := newFlowService()
	ctx := context.Background()
	rid := "resp-replace"

	driveToQuestionnaire(t, svc, rid, model.IdentityMother, "")

	require.NoError(t, svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 53, Options: []string{"B", "C"}}))
	state, err := svc.AnswersOf(ctx, rid)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, state.Answers[53].Value.Options)

	err = svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 53, Options: []string{"B", "B"}})
	assert.ErrorIs(t, err, ErrInvalidAnswer)

	err = svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 53, Options: []string{"A", "B"}})
	assert.ErrorIs(t, err, ErrInvalidAnswer)

	err = svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 53, Options: []string{"Z"}})
	assert.ErrorIs(t, err, ErrInvalidAnswer)

	// An empty replacement clears the answer
	require.NoError(t, svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 53, Options: []string{}}))
	state, err = svc.AnswersOf(ctx, rid)
	require.NoError(t, err)
	assert.False(t, state.Answers.IsAnswered(53))
}

func TestFreeTextAnswer(t *testing.T) {
	svc, _ := newFlowService()
	ctx := context.Background()
	rid := "resp-text"

	driveToQuestionnaire(t, svc, rid, model.IdentityOther, "")

	require.NoError(t, svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 3, Text: "  Lisbon  "}))
	state, err := svc.AnswersOf(ctx, rid)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", state.Answers[3].Value.Text)

	// Blank text removes the stored answer
	require.NoError(t, svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 3, Text: "   "}))
	state, err = svc.AnswersOf(ctx, rid)
	require.NoError(t, err)
	assert.False(t, state.Answers.IsAnswered(3))
}

func TestNextAndBack(t *testing.T) {
	svc, _ := newFlowService()
	ctx := context.Background()
	rid := "resp-nav"

	driveToQuestionnaire(t, svc, rid, model.IdentityOther, "")

	// Back at the first section stays put
	moved, err := svc.Back(ctx, rid)
	require.NoError(t, err)
	assert.False(t, moved)

	// Next is blocked while the section is incomplete
	moved, err = svc.Next(ctx, rid)
	require.NoError(t, err)
	assert.False(t, moved)

	menu := catalog.MenuFor(model.IdentityOther)
	require.NotNil(t, menu)
	for _, id := range menu.Sections[0].QuestionIDs {
		answerQuestion(t, svc, rid, catalog.QuestionByID(id))
	}

	moved, err = svc.Next(ctx, rid)
	require.NoError(t, err)
	assert.True(t, moved)

	view, err := svc.State(ctx, rid)
	require.NoError(t, err)
	assert.Equal(t, 1, view.SectionIndex)

	// Back is never gated on completeness
	moved, err = svc.Back(ctx, rid)
	require.NoError(t, err)
	assert.True(t, moved)

	view, err = svc.State(ctx, rid)
	require.NoError(t, err)
	assert.Equal(t, 0, view.SectionIndex)
}

func TestScaleAnswerFreezesTags(t *testing.T) {
	svc, _ := newFlowService()
	ctx := context.Background()
	rid := "resp-freeze"

	driveToQuestionnaire(t, svc, rid, model.IdentityCorporate, model.RoleFounder)

	// Female respondent answers a gender-conditional question
	require.NoError(t, svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: catalog.GenderQuestionID, Option: "A"}))
	require.NoError(t, svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 21, Option: "5"}))

	state, err := svc.AnswersOf(ctx, rid)
	require.NoError(t, err)
	assert.Equal(t, []model.TraitLabel{model.TraitSelfAwareness}, state.Answers[21].Tags)

	// Changing the gender answer later leaves the frozen tags alone
	require.NoError(t, svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: catalog.GenderQuestionID, Option: "B"}))
	state, err = svc.AnswersOf(ctx, rid)
	require.NoError(t, err)
	assert.Equal(t, []model.TraitLabel{model.TraitSelfAwareness}, state.Answers[21].Tags)
}

func TestSectionView(t *testing.T) {
	svc, _ := newFlowService()
	ctx := context.Background()
	rid := "resp-section"

	driveToQuestionnaire(t, svc, rid, model.IdentityOther, "")
	require.NoError(t, svc.SubmitAnswer(ctx, rid, AnswerInput{QuestionID: 2, Option: "A"}))

	view, err := svc.Section(ctx, rid, model.LanguageZH)
	require.NoError(t, err)
	assert.Equal(t, 0, view.Index)
	assert.Equal(t, 4, view.Count)
	assert.False(t, view.Complete)
	require.Len(t, view.Questions, 5)

	for _, q := range view.Questions {
		if q.ID != 2 {
			continue
		}
		require.NotNil(t, q.Answer)
		var selected []string
		for _, opt := range q.Options {
			if opt.Selected {
				selected = append(selected, opt.ID)
			}
		}
		assert.Equal(t, []string{"A"}, selected)
	}
}

func TestSnapshotBeforeFinish(t *testing.T) {
	svc, _ := newFlowService()

	_, _, err := svc.Snapshot(context.Background(), "resp-none")
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestCorruptStateStartsFresh(t *testing.T) {
	svc, st := newFlowService()
	ctx := context.Background()
	rid := "resp-corrupt"

	require.NoError(t, st.Set(ctx, rid, store.FieldStep, []byte("{broken")))
	require.NoError(t, st.Set(ctx, rid, store.FieldAnswers, []byte("not json at all")))

	view, err := svc.State(ctx, rid)
	require.NoError(t, err)
	assert.Equal(t, model.StepIntro, view.Step)
	assert.Zero(t, view.AnsweredCount)

	// The respondent can start over on top of the damaged keys
	moved, err := svc.Begin(ctx, rid)
	require.NoError(t, err)
	assert.True(t, moved)
}
