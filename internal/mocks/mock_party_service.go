package mocks

import (
	"context"
	"time"

	"github.com/you/attendsvc/domain"
)

// MockPartyService implements domain.PartyService interface for testing
type MockPartyService struct {
	ListActiveFunc func(ctx context.Context) ([]domain.Party, error)
	ListAllFunc    func(ctx context.Context) ([]domain.Party, error)
	CreateFunc     func(ctx context.Context, name, description string, createdBy uint) (*domain.Party, error)
	UpdateFunc     func(ctx context.Context, id uint, name, description string, isActive *bool) (*domain.Party, error)
	DeactivateFunc func(ctx context.Context, id uint) error
}

// NewMockPartyService creates a new MockPartyService with default behaviors
func NewMockPartyService() *MockPartyService {
	return &MockPartyService{}
}

// ListActive lists active parties
func (m *MockPartyService) ListActive(ctx context.Context) ([]domain.Party, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	// Default behavior: empty list
	return []domain.Party{}, nil
}

// ListAll lists every party
func (m *MockPartyService) ListAll(ctx context.Context) ([]domain.Party, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	// Default behavior: empty list
	return []domain.Party{}, nil
}

// Create creates a new party
func (m *MockPartyService) Create(ctx context.Context, name, description string, createdBy uint) (*domain.Party, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, name, description, createdBy)
	}
	// Default behavior: return a mock party
	return &domain.Party{
		ID:          1,
		Name:        name,
		Description: description,
		IsActive:    true,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}, nil
}

// Update updates an existing party
func (m *MockPartyService) Update(ctx context.Context, id uint, name, description string, isActive *bool) (*domain.Party, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, name, description, isActive)
	}
	// Default behavior: echo the changes back
	party := &domain.Party{
		ID:          id,
		Name:        name,
		Description: description,
		IsActive:    true,
		UpdatedAt:   time.Now(),
	}
	if isActive != nil {
		party.IsActive = *isActive
	}
	return party, nil
}

// Deactivate soft-deletes a party
func (m *MockPartyService) Deactivate(ctx context.Context, id uint) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.PartyService = (*MockPartyService)(nil)
