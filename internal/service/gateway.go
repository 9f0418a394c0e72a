package service

import (
	"context"

	"chonapi/internal/model"
	"chonapi/internal/repository"
)

// Gateway archives finished tests and the accounts created from them.
// The default implementation writes to the local MongoDB; when a
// remote archive is configured the HTTP client implementation is used
// instead, so submissions and their accounts always land in the same
// place. CreateAccount is only called once a submission is saved.
type Gateway interface {
	HasSubmission(ctx context.Context, respondentID string) (bool, error)
	SaveAnswers(ctx context.Context, submission *model.Submission) error
	GetSubmission(ctx context.Context, respondentID string) (*model.Submission, error)
	CreateAccount(ctx context.Context, account *model.Account) error
}

type localGateway struct {
	submissions repository.SubmissionRepo
	accounts    repository.AccountRepo
}

// NewLocalGateway returns the MongoDB-backed gateway
func NewLocalGateway(submissions repository.SubmissionRepo, accounts repository.AccountRepo) Gateway {
	return &localGateway{submissions: submissions, accounts: accounts}
}

func (g *localGateway) HasSubmission(ctx context.Context, respondentID string) (bool, error) {
	return g.submissions.ExistsByRespondentID(ctx, respondentID)
}

func (g *localGateway) SaveAnswers(ctx context.Context, submission *model.Submission) error {
	return g.submissions.Create(ctx, submission)
}

func (g *localGateway) GetSubmission(ctx context.Context, respondentID string) (*model.Submission, error) {
	return g.submissions.GetByRespondentID(ctx, respondentID)
}

func (g *localGateway) CreateAccount(ctx context.Context, account *model.Account) error {
	return g.accounts.Create(ctx, account)
}
