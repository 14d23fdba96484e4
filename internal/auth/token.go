package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token lifetimes match the storefront's session policy: a week for shoppers,
// two days for back-office sessions.
const (
	userTokenTTL  = 7 * 24 * time.Hour
	adminTokenTTL = 2 * 24 * time.Hour
)

// UserClaims carries the minimal identity of a shopper token.
type UserClaims struct {
	Phone string `json:"phone"`
	jwt.RegisteredClaims
}

// AdminClaims carries the minimal identity of a back-office token.
type AdminClaims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies the two independent bearer-token schemes.
// User and admin tokens are signed with separate secrets, so one scheme's
// token can never pass the other's verification.
type TokenManager struct {
	userSecret  []byte
	adminSecret []byte
}

// NewTokenManager creates a token manager with the given signing secrets.
func NewTokenManager(userSecret, adminSecret string) *TokenManager {
	return &TokenManager{
		userSecret:  []byte(userSecret),
		adminSecret: []byte(adminSecret),
	}
}

// IssueUser signs a user token carrying the account's phone number.
func (m *TokenManager) IssueUser(phone string) (string, error) {
	now := time.Now()
	claims := UserClaims{
		Phone: phone,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(userTokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.userSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign user token: %w", err)
	}
	return token, nil
}

// VerifyUser parses and verifies a user token, returning its claims.
func (m *TokenManager) VerifyUser(tokenString string) (*UserClaims, error) {
	claims := &UserClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return m.userSecret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid user token: %w", err)
	}
	if claims.Phone == "" {
		return nil, fmt.Errorf("invalid user token: missing phone claim")
	}
	return claims, nil
}

// IssueAdmin signs an admin token carrying the account id and username.
func (m *TokenManager) IssueAdmin(id, username string) (string, error) {
	now := time.Now()
	claims := AdminClaims{
		ID:       id,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(adminTokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.adminSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign admin token: %w", err)
	}
	return token, nil
}

// VerifyAdmin parses and verifies an admin token, returning its claims.
func (m *TokenManager) VerifyAdmin(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return m.adminSecret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid admin token: %w", err)
	}
	if claims.Username == "" {
		return nil, fmt.Errorf("invalid admin token: missing username claim")
	}
	return claims, nil
}
