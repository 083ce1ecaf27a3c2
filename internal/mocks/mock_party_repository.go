package mocks

import (
	"context"

	"github.com/you/attendsvc/domain"
)

// MockPartyRepository implements domain.PartyRepository interface for testing
type MockPartyRepository struct {
	CreateFunc           func(ctx context.Context, party *domain.Party) error
	FindByIDFunc         func(ctx context.Context, id uint) (*domain.Party, error)
	FindActiveByNameFunc func(ctx context.Context, name string) (*domain.Party, error)
	ListActiveFunc       func(ctx context.Context) ([]domain.Party, error)
	ListAllFunc          func(ctx context.Context) ([]domain.Party, error)
	UpdateFunc           func(ctx context.Context, party *domain.Party) error
}

// NewMockPartyRepository creates a new MockPartyRepository with default behaviors
func NewMockPartyRepository() *MockPartyRepository {
	return &MockPartyRepository{}
}

// Create creates a new party
func (m *MockPartyRepository) Create(ctx context.Context, party *domain.Party) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, party)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a party by ID
func (m *MockPartyRepository) FindByID(ctx context.Context, id uint) (*domain.Party, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrPartyNotFound
}

// FindActiveByName finds an active party by name
func (m *MockPartyRepository) FindActiveByName(ctx context.Context, name string) (*domain.Party, error) {
	if m.FindActiveByNameFunc != nil {
		return m.FindActiveByNameFunc(ctx, name)
	}
	// Default behavior: not found
	return nil, domain.ErrPartyNotFound
}

// ListActive lists active parties
func (m *MockPartyRepository) ListActive(ctx context.Context) ([]domain.Party, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	// Default behavior: empty list
	return []domain.Party{}, nil
}

// ListAll lists every party
func (m *MockPartyRepository) ListAll(ctx context.Context) ([]domain.Party, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	// Default behavior: empty list
	return []domain.Party{}, nil
}

// Update updates an existing party
func (m *MockPartyRepository) Update(ctx context.Context, party *domain.Party) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, party)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.PartyRepository = (*MockPartyRepository)(nil)
