package testutil

import (
	"testing"

	"github.com/uknowme/member-server/internal/shared/token"
)

// MockTokenManager is a mock implementation of token.Manager for testing
type MockTokenManager struct {
	GenerateAccessTokenFunc  func(memberID, role string) (string, error)
	GenerateRefreshTokenFunc func(memberID, role string) (string, error)
	ValidateTokenFunc        func(tokenString string) (*token.Claims, error)
}

func (m *MockTokenManager) GenerateAccessToken(memberID, role string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(memberID, role)
	}
	return "mock-access-token", nil
}

func (m *MockTokenManager) GenerateRefreshToken(memberID, role string) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(memberID, role)
	}
	return "mock-refresh-token", nil
}

func (m *MockTokenManager) ValidateToken(tokenString string) (*token.Claims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(tokenString)
	}
	return nil, token.ErrInvalidToken
}

// Ensure MockTokenManager implements token.Manager
var _ token.Manager = (*MockTokenManager)(nil)

// NewMockTokenManager creates a new mock token manager with default behavior
func NewMockTokenManager() *MockTokenManager {
	return &MockTokenManager{}
}

// NewTestTokenManager returns a real JWT manager signed with the test secret.
func NewTestTokenManager() *token.JWTManager {
	return token.NewJWTManager(NewTestConfig())
}

// AccessToken issues an access token for memberID with the given role.
func AccessToken(t *testing.T, manager token.Manager, memberID, role string) string {
	t.Helper()

	accessToken, err := manager.GenerateAccessToken(memberID, role)
	if err != nil {
		t.Fatalf("Failed to generate access token: %v", err)
	}
	return accessToken
}
