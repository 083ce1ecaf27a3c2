package mocks

import (
	"fmt"
	"time"

	"github.com/you/attendsvc/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateTokenFunc func(userID uint, username, role string) (string, error)
	ValidateTokenFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateToken generates a token for the user
func (m *MockTokenService) GenerateToken(userID uint, username, role string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, username, role)
	}
	// Default behavior: return a mock token
	return fmt.Sprintf("token_user_%d_%s_%s", userID, username, role), nil
}

// ValidateToken validates a token and returns claims
func (m *MockTokenService) ValidateToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(token)
	}
	// Default behavior: return valid claims for non-empty tokens
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}

	now := time.Now().Unix()
	return &domain.TokenClaims{
		UserID:    1,
		Username:  "tester",
		Role:      domain.RoleUser,
		IssuedAt:  now,
		ExpiresAt: now + 86400, // 24 hours
	}, nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
