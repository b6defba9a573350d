package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uknowme/member-server/internal/config"
)

func newTestManager() *JWTManager {
	return NewJWTManager(&config.Config{
		App: config.AppConfig{Name: "uknowme-test"},
		JWT: config.JWTConfig{
			Secret:        "test-jwt-secret-key-must-be-at-least-32-characters-long",
			Expiry:        time.Hour,
			RefreshExpiry: 24 * time.Hour,
		},
	})
}

func TestGenerateAndValidate(t *testing.T) {
	m := newTestManager()

	access, err := m.GenerateAccessToken("alice", "ROLE_USER")
	require.NoError(t, err)

	claims, err := m.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.MemberID)
	assert.Equal(t, "ROLE_USER", claims.Role)
	assert.Equal(t, ACCESS, claims.TokenType)
	assert.Equal(t, "uknowme-test", claims.Issuer)

	refresh, err := m.GenerateRefreshToken("alice", "ROLE_USER")
	require.NoError(t, err)

	claims, err = m.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, REFRESH, claims.TokenType)
}

func TestValidateToken_Expired(t *testing.T) {
	m := newTestManager()
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	access, err := m.GenerateAccessToken("alice", "ROLE_USER")
	require.NoError(t, err)

	_, err = m.ValidateToken(access)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	other := newTestManager()
	other.secret = []byte("another-secret-key-that-is-also-32-characters-long")

	access, err := other.GenerateAccessToken("alice", "ROLE_USER")
	require.NoError(t, err)

	_, err = newTestManager().ValidateToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongIssuer(t *testing.T) {
	other := newTestManager()
	other.issuer = "someone-else"

	access, err := other.GenerateAccessToken("alice", "ROLE_USER")
	require.NoError(t, err)

	_, err = newTestManager().ValidateToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_MissingMemberID(t *testing.T) {
	m := newTestManager()

	access, err := m.GenerateAccessToken("", "ROLE_USER")
	require.NoError(t, err)

	_, err = m.ValidateToken(access)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}

func TestValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	m := newTestManager()
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{MemberID: "alice"})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := newTestManager().ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
