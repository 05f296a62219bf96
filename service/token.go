package service

import (
	"errors"
	"fmt"
	"time"

	"treqsy/models"

	"github.com/golang-jwt/jwt/v4"
)

// TokenType distinguishes short-lived access tokens from refresh tokens.
// Each type is signed with its own secret.
type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

// Identity is the verified subject extracted from a bearer token.
type Identity struct {
	UserID int
	Role   models.Role
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenManager issues and verifies signed bearer tokens. It is stateless:
// tokens expire passively and there is no revocation list.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenManager(
	accessSecret, refreshSecret string,
	accessTTL, refreshTTL time.Duration,
) TokenManager {
	return TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (m TokenManager) secretFor(typ TokenType) ([]byte, time.Duration, error) {
	switch typ {
	case TokenAccess:
		return m.accessSecret, m.accessTTL, nil
	case TokenRefresh:
		return m.refreshSecret, m.refreshTTL, nil
	}
	return nil, 0, fmt.Errorf("unknown token type %q", typ)
}

func (m TokenManager) Issue(
	userID int,
	role models.Role,
	typ TokenType,
) (string, error) {
	secret, ttl, err := m.secretFor(typ)
	if err != nil {
		return "", err
	}
	now := time.Now()
	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		jwt.MapClaims{
			"sub":  userID,
			"role": string(role),
			"type": string(typ),
			"iat":  now.Unix(),
			"exp":  now.Add(ttl).Unix(),
		},
	)
	return token.SignedString(secret)
}

func (m TokenManager) IssuePair(
	userID int,
	role models.Role,
) (TokenPair, error) {
	access, err := m.Issue(userID, role, TokenAccess)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := m.Issue(userID, role, TokenRefresh)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Verify checks the signature, expiry, and type claim of the token and
// returns the identity it encodes. Every failure mode collapses to
// ErrInvalidToken: a tampered token earns no partial trust.
func (m TokenManager) Verify(
	tokenStr string,
	expected TokenType,
) (Identity, error) {
	secret, _, err := m.secretFor(expected)
	if err != nil {
		return Identity{}, err
	}
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	if typ, _ := claims["type"].(string); typ != string(expected) {
		return Identity{}, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	roleStr, _ := claims["role"].(string)
	role, err := models.ParseRole(roleStr)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: int(sub), Role: role}, nil
}

// Authorize is the access control predicate: it returns the identity
// unchanged when its role is in the required set, ErrForbidden otherwise.
func Authorize(identity Identity, required ...models.Role) (Identity, error) {
	for _, role := range required {
		if identity.Role == role {
			return identity, nil
		}
	}
	return Identity{}, ErrForbidden
}

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrForbidden    = errors.New("role not permitted for this operation")
)
