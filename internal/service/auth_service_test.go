package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chonapi/internal/model"
)

type fakeAccountRepo struct {
	byID       map[string]*model.Account
	byUsername map[string]*model.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		byID:       map[string]*model.Account{},
		byUsername: map[string]*model.Account{},
	}
}

func (r *fakeAccountRepo) Create(_ context.Context, account *model.Account) error {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	r.byID[account.ID] = account
	r.byUsername[account.Username] = account
	return nil
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id string) (*model.Account, error) {
	return r.byID[id], nil
}

func (r *fakeAccountRepo) GetByUsername(_ context.Context, username string) (*model.Account, error) {
	return r.byUsername[username], nil
}

// countingGateway wraps the local gateway to observe account creation
type countingGateway struct {
	Gateway
	accountsCreated int
}

func (g *countingGateway) CreateAccount(ctx context.Context, account *model.Account) error {
	g.accountsCreated++
	return g.Gateway.CreateAccount(ctx, account)
}

func newAuthService() (*AuthService, *countingGateway) {
	repo := newFakeAccountRepo()
	gateway := &countingGateway{Gateway: NewLocalGateway(nil, repo)}
	return NewAuthService(repo, gateway, "test-secret"), gateway
}

func TestCreateAccountAndLogin(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	resp, err := svc.CreateAccount(ctx, "resp-1", "ada", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.AccountID)

	login, err := svc.Login(ctx, "ada", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, resp.AccountID, login.AccountID)

	_, err = svc.Login(ctx, "ada", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateAccountWritesThroughGateway(t *testing.T) {
	svc, gateway := newAuthService()
	ctx := context.Background()

	resp, err := svc.CreateAccount(ctx, "resp-1", "ada", "pw")
	require.NoError(t, err)
	assert.Equal(t, 1, gateway.accountsCreated)

	// The account ID is minted before the gateway stores it, so the
	// token is valid no matter where the account landed.
	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.AccountID, claims.AccountID)
}

func TestCreateAccountValidation(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, "resp-1", "", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.CreateAccount(ctx, "resp-1", "ada", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.CreateAccount(ctx, "resp-1", "ada", "pw")
	require.NoError(t, err)

	_, err = svc.CreateAccount(ctx, "resp-2", "ada", "pw")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestValidateToken(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	resp, err := svc.CreateAccount(ctx, "resp-1", "ada", "pw")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.AccountID, claims.AccountID)
	assert.Equal(t, "resp-1", claims.RespondentID)

	_, err = svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// A token signed with another secret is rejected
	repo := newFakeAccountRepo()
	other := NewAuthService(repo, NewLocalGateway(nil, repo), "other-secret")
	_, err = other.ValidateToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
