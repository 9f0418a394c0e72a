package service

import (
	"context"
	"errors"
	"strings"

	"chonapi/internal/catalog"
	"chonapi/internal/model"
	"chonapi/internal/store"
)

var (
	ErrInvalidIdentity = errors.New("invalid identity")
	ErrRoleRequired    = errors.New("corporate role required")
	ErrInvalidRole     = errors.New("invalid corporate role")
	ErrUnknownQuestion = errors.New("unknown question")
	ErrInvalidAnswer   = errors.New("invalid answer")
	ErrWrongStep       = errors.New("operation not available at current step")
)

// FlowService drives a respondent through the test: intro, identity
// selection, privacy notice, the sectioned questionnaire, results.
// Transitions that are not available at the current step are reported
// as moved=false rather than errors; bad input is an error.
type FlowService struct {
	store   store.StateStore
	scoring *ScoringService
	matcher *MatchService
}

func NewFlowService(st store.StateStore, scoring *ScoringService, matcher *MatchService) *FlowService {
	return &FlowService{store: st, scoring: scoring, matcher: matcher}
}

// AnswerInput is one answer mutation. Single-choice and scale questions
// use Option; multi-choice questions either toggle Option or replace
// the whole selection with Options; free text uses Text.
type AnswerInput struct {
	QuestionID int
	Option     string
	Options    []string
	Text       string
}

// StateView is the flow position reported to clients
type StateView struct {
	Step              model.Step          `json:"step"`
	Identity          model.Identity      `json:"identity,omitempty"`
	CorporateRole     model.CorporateRole `json:"corporateRole,omitempty"`
	SectionIndex      int                 `json:"sectionIndex"`
	SectionCount      int                 `json:"sectionCount"`
	AnsweredCount     int                 `json:"answeredCount"`
	TotalQuestions    int                 `json:"totalQuestions"`
	Progress          float64             `json:"progress"`
	InProgress        bool                `json:"inProgress"`
	Completed         bool                `json:"completed"`
	WorkedInCorporate bool                `json:"workedInCorporate"`
}

type OptionView struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Selected bool   `json:"selected"`
}

type ScaleLabelsView struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

type QuestionView struct {
	ID          int                `json:"id"`
	Kind        model.QuestionKind `json:"kind"`
	Text        string             `json:"text"`
	Options     []OptionView       `json:"options,omitempty"`
	ScaleLabels *ScaleLabelsView   `json:"scaleLabels,omitempty"`
	Answer      *model.AnswerValue `json:"answer,omitempty"`
}

type SectionView struct {
	Index     int            `json:"index"`
	Count     int            `json:"count"`
	Title     string         `json:"title"`
	Complete  bool           `json:"complete"`
	Questions []QuestionView `json:"questions"`
}

func (s *FlowService) loadState(ctx context.Context, respondentID string) (*model.FlowState, error) {
	state := &model.FlowState{Step: model.StepIntro, Answers: model.AnswerSet{}}

	if _, err := store.GetJSON(ctx, s.store, respondentID, store.FieldStep, &state.Step); err != nil {
		return nil, err
	}
	if _, err := store.GetJSON(ctx, s.store, respondentID, store.FieldIdentity, &state.Identity); err != nil {
		return nil, err
	}
	if _, err := store.GetJSON(ctx, s.store, respondentID, store.FieldRole, &state.CorporateRole); err != nil {
		return nil, err
	}
	if _, err := store.GetJSON(ctx, s.store, respondentID, store.FieldAnswers, &state.Answers); err != nil {
		return nil, err
	}
	if state.Answers == nil {
		state.Answers = model.AnswerSet{}
	}
	if state.Step == model.StepNone {
		state.Step = model.StepIntro
	}

	found, err := store.GetJSON(ctx, s.store, respondentID, store.FieldSection, &state.SectionIndex)
	if err != nil {
		return nil, err
	}
	// A recovered state without a section cursor resumes at the first
	// section the respondent has not finished.
	if !found && state.Step == model.StepQuestionnaire {
		state.SectionIndex = s.firstIncompleteSection(state)
	}
	return state, nil
}

func (s *FlowService) firstIncompleteSection(state *model.FlowState) int {
	menu := catalog.MenuFor(state.Identity)
	if menu == nil {
		return 0
	}
	for i := range menu.Sections {
		if !menu.SectionComplete(i, state.Answers) {
			return i
		}
	}
	return len(menu.Sections) - 1
}

// workedInCorporate is implied by the corporate identities and
// otherwise read from the corporate-experience answer.
func workedInCorporate(state *model.FlowState) bool {
	if state.Identity == model.IdentityCorporate || state.Identity == model.IdentityBoth {
		return true
	}
	ans, ok := state.Answers[catalog.CorporateExperienceQuestionID]
	return ok && ans.Value.Scalar() == "A"
}

// State reports the current flow position and progress
func (s *FlowService) State(ctx context.Context, respondentID string) (*StateView, error) {
	state, err := s.loadState(ctx, respondentID)
	if err != nil {
		return nil, err
	}

	view := &StateView{
		Step:              state.Step,
		Identity:          state.Identity,
		CorporateRole:     state.CorporateRole,
		SectionIndex:      state.SectionIndex,
		InProgress:        state.InProgress(),
		Completed:         state.Completed(),
		WorkedInCorporate: workedInCorporate(state),
	}
	if menu := catalog.MenuFor(state.Identity); menu != nil {
		view.SectionCount = len(menu.Sections)
		view.AnsweredCount = menu.AnsweredCount(state.Answers)
		view.TotalQuestions = menu.TotalQuestions()
		if view.TotalQuestions > 0 {
			view.Progress = float64(view.AnsweredCount) / float64(view.TotalQuestions) * 100
		}
	}
	return view, nil
}

// Begin moves from the intro to identity selection
func (s *FlowService) Begin(ctx context.Context, respondentID string) (bool, error) {
	state, err := s.loadState(ctx, respondentID)
	if err != nil {
		return false, err
	}
	if state.Step != model.StepIntro {
		return false, nil
	}
	return true, store.SetJSON(ctx, s.store, respondentID, store.FieldStep, model.StepIdentitySelection)
}

// SelectIdentity records the identity (and corporate role where the
// identity requires one) and moves to the privacy notice.
func (s *FlowService) SelectIdentity(ctx context.Context, respondentID string, identity model.Identity, role model.CorporateRole) (bool, error) {
	if !identity.Valid() {
		return false, ErrInvalidIdentity
	}
	if identity.RequiresCorporateRole() {
		if role == "" {
			return false, ErrRoleRequired
		}
		if !role.Valid() {
			return false, ErrInvalidRole
		}
	}

	state, err := s.loadState(ctx, respondentID)
	if err != nil {
		return false, err
	}
	if state.Step != model.StepIdentitySelection {
		return false, nil
	}

	if err := store.SetJSON(ctx, s.store, respondentID, store.FieldIdentity, identity); err != nil {
		return false, err
	}
	if identity.RequiresCorporateRole() {
		if err := store.SetJSON(ctx, s.store, respondentID, store.FieldRole, role); err != nil {
			return false, err
		}
	}
	return true, store.SetJSON(ctx, s.store, respondentID, store.FieldStep, model.StepPrivacyNotice)
}

// AckPrivacy acknowledges the privacy notice and opens the
// questionnaire at its first section.
func (s *FlowService) AckPrivacy(ctx context.Context, respondentID string) (bool, error) {
	state, err := s.loadState(ctx, respondentID)
	if err != nil {
		return false, err
	}
	if state.Step != model.StepPrivacyNotice {
		return false, nil
	}
	if err := store.SetJSON(ctx, s.store, respondentID, store.FieldSection, 0); err != nil {
		return false, err
	}
	return true, store.SetJSON(ctx, s.store, respondentID, store.FieldStep, model.StepQuestionnaire)
}

// Section renders the active section with texts resolved for the
// respondent's language, identity and corporate background.
func (s *FlowService) Section(ctx context.Context, respondentID string, lang model.Language) (*SectionView, error) {
	state, err := s.loadState(ctx, respondentID)
	if err != nil {
		return nil, err
	}
	if state.Step != model.StepQuestionnaire {
		return nil, ErrWrongStep
	}
	menu := catalog.MenuFor(state.Identity)
	if menu == nil {
		return nil, ErrInvalidIdentity
	}
	idx := state.SectionIndex
	if idx < 0 || idx >= len(menu.Sections) {
		idx = 0
	}
	section := &menu.Sections[idx]
	corporate := workedInCorporate(state)

	view := &SectionView{
		Index:    idx,
		Count:    len(menu.Sections),
		Title:    section.ResolvedTitle(corporate).In(lang),
		Complete: menu.SectionComplete(idx, state.Answers),
	}
	for _, id := range section.QuestionIDs {
		q := catalog.QuestionByID(id)
		if q == nil {
			continue
		}
		qv := QuestionView{
			ID:   q.ID,
			Kind: q.Kind,
			Text: q.ResolvedText(corporate).In(lang),
		}
		ans, answered := state.Answers[id]
		if answered {
			v := ans.Value
			qv.Answer = &v
		}
		for _, opt := range q.Options {
			selected := false
			if answered {
				switch ans.Value.Kind {
				case model.ValueSingle:
					selected = ans.Value.Option == opt.ID
				case model.ValueMulti:
					selected = ans.Value.Contains(opt.ID)
				}
			}
			qv.Options = append(qv.Options, OptionView{ID: opt.ID, Text: opt.Text.In(lang), Selected: selected})
		}
		if q.ScaleLabels != nil {
			qv.ScaleLabels = &ScaleLabelsView{
				Min: q.ScaleLabels.Min.In(lang),
				Max: q.ScaleLabels.Max.In(lang),
			}
		}
		view.Questions = append(view.Questions, qv)
	}
	return view, nil
}

// SubmitAnswer stores, toggles or clears one answer
func (s *FlowService) SubmitAnswer(ctx context.Context, respondentID string, in AnswerInput) error {
	state, err := s.loadState(ctx, respondentID)
	if err != nil {
		return err
	}
	if state.Step != model.StepQuestionnaire {
		return ErrWrongStep
	}
	q := catalog.QuestionByID(in.QuestionID)
	if q == nil {
		return ErrUnknownQuestion
	}
	menu := catalog.MenuFor(state.Identity)
	if menu == nil || !menuContains(menu, in.QuestionID) {
		return ErrUnknownQuestion
	}

	switch q.Kind {
	case model.QuestionKindSingleChoice:
		if q.OptionByID(in.Option) == nil {
			return ErrInvalidAnswer
		}
		state.Answers[q.ID] = model.Answer{Value: model.SingleValue(in.Option)}

	case model.QuestionKindScale:
		score, ok := ParseScore(in.Option)
		if !ok || score > model.ScaleMaxScore {
			return ErrInvalidAnswer
		}
		// Tags are frozen now so the attribution cannot drift if the
		// gender answer changes later.
		gender := s.scoring.ResolveGender(state.Answers)
		state.Answers[q.ID] = model.Answer{
			Value: model.SingleValue(in.Option),
			Tags:  s.scoring.ResolveTags(q, gender),
		}

	case model.QuestionKindMultiChoice:
		selection, err := s.mutateMulti(q, state.Answers, in)
		if err != nil {
			return err
		}
		if len(selection) == 0 {
			delete(state.Answers, q.ID)
		} else {
			state.Answers[q.ID] = model.Answer{Value: model.MultiValue(selection)}
		}

	case model.QuestionKindFreeText:
		text := strings.TrimSpace(in.Text)
		if text == "" {
			delete(state.Answers, q.ID)
		} else {
			state.Answers[q.ID] = model.Answer{Value: model.TextValue(text)}
		}
	}

	return store.SetJSON(ctx, s.store, respondentID, store.FieldAnswers, state.Answers)
}

// mutateMulti computes the next selection for a multi-choice question.
// A full Options list replaces the selection; a single Option toggles.
// Exclusive options clear the rest of the set and are cleared by any
// other selection.
func (s *FlowService) mutateMulti(q *model.Question, answers model.AnswerSet, in AnswerInput) ([]string, error) {
	if in.Options != nil {
		seen := make(map[string]bool, len(in.Options))
		hasExclusive := false
		for _, id := range in.Options {
			if q.OptionByID(id) == nil || seen[id] {
				return nil, ErrInvalidAnswer
			}
			seen[id] = true
			if q.IsExclusiveOption(id) {
				hasExclusive = true
			}
		}
		if hasExclusive && len(in.Options) > 1 {
			return nil, ErrInvalidAnswer
		}
		return in.Options, nil
	}

	if q.OptionByID(in.Option) == nil {
		return nil, ErrInvalidAnswer
	}

	var current []string
	if ans, ok := answers[q.ID]; ok {
		current = ans.Value.Options
	}

	// Toggle off
	for i, id := range current {
		if id == in.Option {
			return append(append([]string{}, current[:i]...), current[i+1:]...), nil
		}
	}

	// Toggle on
	if q.IsExclusiveOption(in.Option) {
		return []string{in.Option}, nil
	}
	next := make([]string, 0, len(current)+1)
	for _, id := range current {
		if !q.IsExclusiveOption(id) {
			next = append(next, id)
		}
	}
	return append(next, in.Option), nil
}

func menuContains(menu *model.Menu, questionID int) bool {
	for i := range menu.Sections {
		for _, id := range menu.Sections[i].QuestionIDs {
			if id == questionID {
				return true
			}
		}
	}
	return false
}

// Next advances to the following section once every question in the
// current one is answered.
func (s *FlowService) Next(ctx context.Context, respondentID string) (bool, error) {
	state, err := s.loadState(ctx, respondentID)
	if err != nil {
		return false, err
	}
	if state.Step != model.StepQuestionnaire {
		return false, nil
	}
	menu := catalog.MenuFor(state.Identity)
	if menu == nil {
		return false, nil
	}
	if state.SectionIndex >= len(menu.Sections)-1 {
		return false, nil
	}
	if !menu.SectionComplete(state.SectionIndex, state.Answers) {
		return false, nil
	}
	return true, store.SetJSON(ctx, s.store, respondentID, store.FieldSection, state.SectionIndex+1)
}

// Back returns to the previous section. It is never gated.
func (s *FlowService) Back(ctx context.Context, respondentID string) (bool, error) {
	state, err := s.loadState(ctx, respondentID)
	if err != nil {
		return false, err
	}
	if state.Step != model.StepQuestionnaire || state.SectionIndex == 0 {
		return false, nil
	}
	return true, store.SetJSON(ctx, s.store, respondentID, store.FieldSection, state.SectionIndex-1)
}

// Finish closes the questionnaire once every menu question is
// answered: trait statistics and the archetype match are computed,
// snapshotted, and the step moves to results.
func (s *FlowService) Finish(ctx context.Context, respondentID string) (bool, error) {
	state, err := s.loadState(ctx, respondentID)
	if err != nil {
		return false, err
	}
	if state.Step != model.StepQuestionnaire {
		return false, nil
	}
	menu := catalog.MenuFor(state.Identity)
	if menu == nil {
		return false, nil
	}
	for i := range menu.Sections {
		if !menu.SectionComplete(i, state.Answers) {
			return false, nil
		}
	}

	stats := s.scoring.Aggregate(state.Answers)
	match := s.matcher.Match(stats, state.Answers)

	if err := store.SetJSON(ctx, s.store, respondentID, store.FieldStats, stats); err != nil {
		return false, err
	}
	if err := store.SetJSON(ctx, s.store, respondentID, store.FieldMatch, match); err != nil {
		return false, err
	}
	return true, store.SetJSON(ctx, s.store, respondentID, store.FieldStep, model.StepResults)
}

// Snapshot returns the persisted results of a finished test
func (s *FlowService) Snapshot(ctx context.Context, respondentID string) (map[model.TraitLabel]model.TraitStats, *model.MatchResult, error) {
	var stats map[model.TraitLabel]model.TraitStats
	found, err := store.GetJSON(ctx, s.store, respondentID, store.FieldStats, &stats)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, nil, ErrWrongStep
	}
	var match model.MatchResult
	found, err = store.GetJSON(ctx, s.store, respondentID, store.FieldMatch, &match)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, nil, ErrWrongStep
	}
	return stats, &match, nil
}

// Restart wipes every persisted field for the respondent
func (s *FlowService) Restart(ctx context.Context, respondentID string) error {
	return s.store.Delete(ctx, respondentID, store.AllFields...)
}

// AnswersOf exposes the stored answer set, used when archiving a
// finished test.
func (s *FlowService) AnswersOf(ctx context.Context, respondentID string) (*model.FlowState, error) {
	return s.loadState(ctx, respondentID)
}
