package service

import (
	"context"
	"errors"
	"sort"

	"chonapi/internal/model"
)

var ErrNotFinished = errors.New("test not finished")

// SubmissionService assembles the archive record for a finished test
// and hands it to the configured gateway. Saving never mutates the
// respondent's stored answers, so a failed save can be retried.
type SubmissionService struct {
	gateway Gateway
	flow    *FlowService
}

func NewSubmissionService(gateway Gateway, flow *FlowService) *SubmissionService {
	return &SubmissionService{gateway: gateway, flow: flow}
}

func (s *SubmissionService) Exists(ctx context.Context, respondentID string) (bool, error) {
	return s.gateway.HasSubmission(ctx, respondentID)
}

func (s *SubmissionService) Get(ctx context.Context, respondentID string) (*model.Submission, error) {
	return s.gateway.GetSubmission(ctx, respondentID)
}

// Save archives the respondent's finished test
func (s *SubmissionService) Save(ctx context.Context, respondentID string) (*model.Submission, error) {
	state, err := s.flow.AnswersOf(ctx, respondentID)
	if err != nil {
		return nil, err
	}
	if !state.Completed() {
		return nil, ErrNotFinished
	}
	stats, match, err := s.flow.Snapshot(ctx, respondentID)
	if err != nil {
		return nil, err
	}

	responses := make([]model.SubmissionResponse, 0, len(state.Answers))
	for id, ans := range state.Answers {
		responses = append(responses, model.SubmissionResponse{QuestionID: id, Value: ans.Value})
	}
	sort.Slice(responses, func(i, j int) bool {
		return responses[i].QuestionID < responses[j].QuestionID
	})

	submission := &model.Submission{
		RespondentID:  respondentID,
		Identity:      state.Identity,
		CorporateRole: state.CorporateRole,
		Responses:     responses,
		TraitStats:    stats,
		BestMatchID:   match.BestID,
	}
	if err := s.gateway.SaveAnswers(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}
