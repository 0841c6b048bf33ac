package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewService(t *testing.T) {
	service := NewService("access-secret", "refresh-secret")

	assert.NotNil(t, service)
	assert.Equal(t, []byte("access-secret"), service.accessSecret)
	assert.Equal(t, []byte("refresh-secret"), service.refreshSecret)
	assert.Equal(t, DefaultAccessTTL, service.accessTTL)
	assert.Equal(t, DefaultRefreshTTL, service.refreshTTL)
}

func TestVerify_AccessToken(t *testing.T) {
	service := NewService("access-secret", "refresh-secret")

	token, err := service.CreateAccessToken("a@b.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, kind, err := service.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "a@b.com", subject)
	assert.Equal(t, TokenAccess, kind)
}

func TestVerify_RefreshToken(t *testing.T) {
	service := NewService("access-secret", "refresh-secret")

	token, err := service.CreateRefreshToken("a@b.com")
	assert.NoError(t, err)

	subject, kind, err := service.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "a@b.com", subject)
	assert.Equal(t, TokenRefresh, kind)
}

func TestVerify_ForeignSecret(t *testing.T) {
	issuer := NewService("secret-a", "secret-b")
	verifier := NewService("secret-c", "secret-d")

	access, err := issuer.CreateAccessToken("a@b.com")
	assert.NoError(t, err)
	refresh, err := issuer.CreateRefreshToken("a@b.com")
	assert.NoError(t, err)

	_, _, err = verifier.Verify(access)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, _, err = verifier.Verify(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	service := NewService("access-secret", "refresh-secret")

	token, err := service.CreateAccessTokenWithTTL("a@b.com", -time.Second)
	assert.NoError(t, err)

	_, _, err = service.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	token, err = service.CreateRefreshTokenWithTTL("a@b.com", -time.Second)
	assert.NoError(t, err)

	_, _, err = service.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_MissingSubject(t *testing.T) {
	service := NewService("access-secret", "refresh-secret")

	token, err := service.CreateAccessToken("")
	assert.NoError(t, err)

	_, _, err = service.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	service := NewService("access-secret", "refresh-secret")

	_, _, err := service.Verify("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
