package mocks

import (
	"context"
	"time"

	"github.com/you/attendsvc/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc             func(ctx context.Context, username, password, name, email, role string) (*domain.User, error)
	LoginFunc                func(ctx context.Context, username, password string) (*domain.AuthResult, error)
	GetUserProfileFunc       func(ctx context.Context, userID uint) (*domain.User, error)
	RequestPasswordResetFunc func(ctx context.Context, email string) error
	VerifyResetOTPFunc       func(ctx context.Context, email, code string) error
	ResetPasswordFunc        func(ctx context.Context, email, code, newPassword string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new user
func (m *MockAuthService) Register(ctx context.Context, username, password, name, email, role string) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, username, password, name, email, role)
	}
	// Default behavior: return a mock user
	return &domain.User{
		ID:           1,
		Username:     username,
		Name:         name,
		Email:        email,
		PasswordHash: "hashed_" + password,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	// Default behavior: successful login
	return &domain.AuthResult{
		User: &domain.User{
			ID:       1,
			Username: username,
			Role:     domain.RoleUser,
			IsActive: true,
		},
		Token:     "mock_token",
		ExpiresIn: 86400,
	}, nil
}

// GetUserProfile returns the user's profile
func (m *MockAuthService) GetUserProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// RequestPasswordReset starts a password reset flow
func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if m.RequestPasswordResetFunc != nil {
		return m.RequestPasswordResetFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// VerifyResetOTP checks a reset code without consuming it
func (m *MockAuthService) VerifyResetOTP(ctx context.Context, email, code string) error {
	if m.VerifyResetOTPFunc != nil {
		return m.VerifyResetOTPFunc(ctx, email, code)
	}
	// Default behavior: success
	return nil
}

// ResetPassword consumes a reset code and sets a new password
func (m *MockAuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email, code, newPassword)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
