package mocks

import (
	"context"

	"github.com/you/attendsvc/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	GenerateFunc func(ctx context.Context, email string) (string, error)
	CheckFunc    func(ctx context.Context, email, code string) error
	VerifyFunc   func(ctx context.Context, email, code string) error
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Generate generates a new OTP for the given email
func (m *MockOTPService) Generate(ctx context.Context, email string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, email)
	}
	// Default behavior: fixed code for testing
	return "123456", nil
}

// Check validates an OTP code without consuming it
func (m *MockOTPService) Check(ctx context.Context, email, code string) error {
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx, email, code)
	}
	// Default behavior: the fixed test code passes
	if code == "123456" {
		return nil
	}
	return domain.ErrOTPInvalid
}

// Verify validates and consumes an OTP code
func (m *MockOTPService) Verify(ctx context.Context, email, code string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, code)
	}
	// Default behavior: the fixed test code passes
	if code == "123456" {
		return nil
	}
	return domain.ErrOTPInvalid
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)
