package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccountClaims are JWT claims for respondent account tokens
type AccountClaims struct {
	AccountID    string `json:"accountId"`
	RespondentID string `json:"respondentId"`
	jwt.RegisteredClaims
}

// Account links a username to the respondent whose results it keeps
type Account struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	RespondentID string    `json:"respondentId" bson:"respondentId"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// CreateAccountRequest is the request body for account creation
type CreateAccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for account login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned after account creation or login
type AuthResponse struct {
	Token     string `json:"token"`
	AccountID string `json:"accountId"`
}
