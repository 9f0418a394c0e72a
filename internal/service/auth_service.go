package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"chonapi/internal/model"
	"chonapi/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUsernameTaken      = errors.New("username already taken")
)

// AuthService creates respondent accounts after a saved submission and
// issues the tokens that protect the profile routes. Creation goes
// through the gateway so accounts land next to their submissions;
// lookups for login and profile stay on the local repository.
type AuthService struct {
	accounts  repository.AccountRepo
	gateway   Gateway
	jwtSecret []byte
}

func NewAuthService(accounts repository.AccountRepo, gateway Gateway, jwtSecret string) *AuthService {
	return &AuthService{
		accounts:  accounts,
		gateway:   gateway,
		jwtSecret: []byte(jwtSecret),
	}
}

// CreateAccount registers a username for the respondent and returns a
// fresh token.
func (s *AuthService) CreateAccount(ctx context.Context, respondentID, username, password string) (*model.AuthResponse, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	existing, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	// The ID is minted here, not by the archive, so the issued token
	// stays valid regardless of which gateway stored the account.
	account := &model.Account{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		RespondentID: respondentID,
		CreatedAt:    time.Now(),
	}
	if err := s.gateway.CreateAccount(ctx, account); err != nil {
		return nil, err
	}
	return s.issueToken(account)
}

// Login re-issues a token against stored credentials
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.AuthResponse, error) {
	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(account)
}

func (s *AuthService) issueToken(account *model.Account) (*model.AuthResponse, error) {
	claims := &model.AccountClaims{
		AccountID:    account.ID,
		RespondentID: account.RespondentID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{Token: tokenString, AccountID: account.ID}, nil
}

// ValidateToken parses an account JWT and returns its claims
func (s *AuthService) ValidateToken(tokenString string) (*model.AccountClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AccountClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*model.AccountClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Account loads the account behind validated claims
func (s *AuthService) Account(ctx context.Context, accountID string) (*model.Account, error) {
	return s.accounts.GetByID(ctx, accountID)
}
