package mocks

import (
	"context"

	"github.com/you/attendsvc/domain"
)

// MockNotificationService implements domain.NotificationService interface for testing
type MockNotificationService struct {
	SendEmailFunc func(ctx context.Context, to, subject, htmlBody string) error
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendEmail sends an email message
func (m *MockNotificationService) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(ctx, to, subject, htmlBody)
	}
	// Default behavior: success (no actual email sent in tests)
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
