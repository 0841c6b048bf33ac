package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind reports which secret a token verified against.
type TokenKind string

const (
	TokenAccess  TokenKind = "access"
	TokenRefresh TokenKind = "refresh"
)

const (
	DefaultAccessTTL  = 30 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// ErrInvalidToken covers bad signatures, expired tokens and missing subjects.
var ErrInvalidToken = errors.New("invalid or expired token")

type Service struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewService(accessSecret, refreshSecret string) *Service {
	return &Service{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     DefaultAccessTTL,
		refreshTTL:    DefaultRefreshTTL,
	}
}

func (s *Service) CreateAccessToken(subject string) (string, error) {
	return sign(subject, s.accessSecret, s.accessTTL)
}

func (s *Service) CreateAccessTokenWithTTL(subject string, ttl time.Duration) (string, error) {
	return sign(subject, s.accessSecret, ttl)
}

func (s *Service) CreateRefreshToken(subject string) (string, error) {
	return sign(subject, s.refreshSecret, s.refreshTTL)
}

func (s *Service) CreateRefreshTokenWithTTL(subject string, ttl time.Duration) (string, error) {
	return sign(subject, s.refreshSecret, ttl)
}

// Verify accepts either token class: the access secret is tried first and the
// refresh secret second, and the matching class is returned alongside the
// subject. Both classes share one entry point because refresh tokens are
// valid credentials for the same subject.
func (s *Service) Verify(tokenString string) (string, TokenKind, error) {
	if subject, err := parse(tokenString, s.accessSecret); err == nil {
		return subject, TokenAccess, nil
	}

	subject, err := parse(tokenString, s.refreshSecret)
	if err != nil {
		return "", "", ErrInvalidToken
	}
	return subject, TokenRefresh, nil
}

func sign(subject string, secret []byte, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func parse(tokenString string, secret []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
