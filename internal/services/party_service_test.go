package services

import (
	"context"
	"errors"
	"testing"

	"github.com/you/attendsvc/domain"
	"github.com/you/attendsvc/internal/mocks"
)

func TestPartyServiceImpl_Create(t *testing.T) {
	tests := []struct {
		name          string
		partyName     string
		setupMocks    func(*mocks.MockPartyRepository)
		expectedError error
	}{
		{
			name:          "successful creation",
			partyName:     "Acme Corp",
			setupMocks:    func(partyRepo *mocks.MockPartyRepository) {},
			expectedError: nil,
		},
		{
			name:          "blank name rejected",
			partyName:     "   ",
			setupMocks:    func(partyRepo *mocks.MockPartyRepository) {},
			expectedError: domain.ErrPartyNameRequired,
		},
		{
			name:      "duplicate active name rejected",
			partyName: "Acme Corp",
			setupMocks: func(partyRepo *mocks.MockPartyRepository) {
				partyRepo.FindActiveByNameFunc = func(ctx context.Context, name string) (*domain.Party, error) {
					return &domain.Party{ID: 2, Name: "Acme Corp", IsActive: true}, nil
				}
			},
			expectedError: domain.ErrPartyNameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			partyRepo := mocks.NewMockPartyRepository()
			tt.setupMocks(partyRepo)
			svc := NewPartyService(partyRepo, mocks.NewMockUserRepository())

			party, err := svc.Create(context.Background(), tt.partyName, "  a client  ", 1)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if party.Name != "Acme Corp" {
				t.Errorf("expected trimmed name, got %q", party.Name)
			}
			if party.Description != "a client" {
				t.Errorf("expected trimmed description, got %q", party.Description)
			}
			if !party.IsActive {
				t.Error("new parties start active")
			}
			if party.CreatedBy != 1 {
				t.Errorf("expected creator 1, got %d", party.CreatedBy)
			}
		})
	}
}

func TestPartyServiceImpl_Update(t *testing.T) {
	existing := func() *domain.Party {
		return &domain.Party{ID: 1, Name: "Acme Corp", Description: "client", IsActive: true}
	}

	t.Run("rename onto another active name rejected", func(t *testing.T) {
		partyRepo := mocks.NewMockPartyRepository()
		partyRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Party, error) {
			return existing(), nil
		}
		partyRepo.FindActiveByNameFunc = func(ctx context.Context, name string) (*domain.Party, error) {
			return &domain.Party{ID: 2, Name: "Globex", IsActive: true}, nil
		}
		svc := NewPartyService(partyRepo, mocks.NewMockUserRepository())

		_, err := svc.Update(context.Background(), 1, "Globex", "", nil)
		if !errors.Is(err, domain.ErrPartyNameTaken) {
			t.Fatalf("expected ErrPartyNameTaken, got %v", err)
		}
	})

	t.Run("nil isActive leaves the flag untouched", func(t *testing.T) {
		partyRepo := mocks.NewMockPartyRepository()
		partyRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Party, error) {
			return existing(), nil
		}
		svc := NewPartyService(partyRepo, mocks.NewMockUserRepository())

		party, err := svc.Update(context.Background(), 1, "", "new description", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !party.IsActive {
			t.Error("isActive must not change when not provided")
		}
		if party.Name != "Acme Corp" {
			t.Errorf("empty name must not rename, got %q", party.Name)
		}
		if party.Description != "new description" {
			t.Errorf("expected updated description, got %q", party.Description)
		}
	})

	t.Run("unknown party", func(t *testing.T) {
		svc := NewPartyService(mocks.NewMockPartyRepository(), mocks.NewMockUserRepository())

		_, err := svc.Update(context.Background(), 42, "X", "", nil)
		if !errors.Is(err, domain.ErrPartyNotFound) {
			t.Fatalf("expected ErrPartyNotFound, got %v", err)
		}
	})
}

func TestPartyServiceImpl_Deactivate(t *testing.T) {
	partyRepo := mocks.NewMockPartyRepository()
	partyRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Party, error) {
		return &domain.Party{ID: 1, Name: "Acme Corp", IsActive: true}, nil
	}
	var saved *domain.Party
	partyRepo.UpdateFunc = func(ctx context.Context, party *domain.Party) error {
		saved = party
		return nil
	}
	svc := NewPartyService(partyRepo, mocks.NewMockUserRepository())

	if err := svc.Deactivate(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil || saved.IsActive {
		t.Fatal("expected the party saved with isActive=false")
	}
}

func TestPartyServiceImpl_ListAll_ResolvesCreatorNames(t *testing.T) {
	partyRepo := mocks.NewMockPartyRepository()
	partyRepo.ListAllFunc = func(ctx context.Context) ([]domain.Party, error) {
		return []domain.Party{
			{ID: 1, Name: "Acme Corp", CreatedBy: 3},
			{ID: 2, Name: "Globex", CreatedBy: 3},
			{ID: 3, Name: "Orphan", CreatedBy: 99},
		}, nil
	}
	userRepo := mocks.NewMockUserRepository()
	lookups := 0
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		lookups++
		if id == 3 {
			return &domain.User{ID: 3, Name: "Administrator"}, nil
		}
		return nil, domain.ErrUserNotFound
	}
	svc := NewPartyService(partyRepo, userRepo)

	parties, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parties[0].CreatorName != "Administrator" || parties[1].CreatorName != "Administrator" {
		t.Error("expected creator names resolved")
	}
	if parties[2].CreatorName != "" {
		t.Errorf("missing creator leaves the name empty, got %q", parties[2].CreatorName)
	}
	if lookups != 2 {
		t.Errorf("expected one lookup per distinct creator, got %d", lookups)
	}
}
