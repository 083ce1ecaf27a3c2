package services

import (
	"context"
	"strings"
	"time"

	"github.com/you/attendsvc/domain"
)

// PartyServiceImpl implements domain.PartyService
type PartyServiceImpl struct {
	partyRepo domain.PartyRepository
	userRepo  domain.UserRepository
}

// NewPartyService creates a new party service
func NewPartyService(partyRepo domain.PartyRepository, userRepo domain.UserRepository) domain.PartyService {
	return &PartyServiceImpl{
		partyRepo: partyRepo,
		userRepo:  userRepo,
	}
}

// ListActive implements domain.PartyService
func (s *PartyServiceImpl) ListActive(ctx context.Context) ([]domain.Party, error) {
	return s.partyRepo.ListActive(ctx)
}

// ListAll implements domain.PartyService. Creator names are resolved for
// the admin listing; a missing creator leaves the field empty.
func (s *PartyServiceImpl) ListAll(ctx context.Context) ([]domain.Party, error) {
	parties, err := s.partyRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	names := map[uint]string{}
	for i := range parties {
		creatorID := parties[i].CreatedBy
		if creatorID == 0 {
			continue
		}
		name, ok := names[creatorID]
		if !ok {
			if creator, err := s.userRepo.FindByID(ctx, creatorID); err == nil {
				name = creator.Name
			}
			names[creatorID] = name
		}
		parties[i].CreatorName = name
	}

	return parties, nil
}

// Create implements domain.PartyService. Names are unique among active
// parties; a deactivated party's name may be reused.
func (s *PartyServiceImpl) Create(ctx context.Context, name, description string, createdBy uint) (*domain.Party, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrPartyNameRequired
	}

	if existing, err := s.partyRepo.FindActiveByName(ctx, name); err == nil && existing != nil {
		return nil, domain.ErrPartyNameTaken
	}

	party := &domain.Party{
		Name:        name,
		Description: strings.TrimSpace(description),
		IsActive:    true,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.partyRepo.Create(ctx, party); err != nil {
		return nil, err
	}

	return party, nil
}

// Update implements domain.PartyService. A nil isActive leaves the flag
// untouched; renaming onto another active party's name is rejected.
func (s *PartyServiceImpl) Update(ctx context.Context, id uint, name, description string, isActive *bool) (*domain.Party, error) {
	party, err := s.partyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name != "" && name != party.Name {
		if existing, err := s.partyRepo.FindActiveByName(ctx, name); err == nil && existing != nil && existing.ID != id {
			return nil, domain.ErrPartyNameTaken
		}
		party.Name = name
	}
	if description != "" {
		party.Description = strings.TrimSpace(description)
	}
	if isActive != nil {
		party.IsActive = *isActive
	}
	party.UpdatedAt = time.Now()

	if err := s.partyRepo.Update(ctx, party); err != nil {
		return nil, err
	}

	return party, nil
}

// Deactivate implements domain.PartyService; a soft delete. Existing
// attendance entries keep their party snapshot.
func (s *PartyServiceImpl) Deactivate(ctx context.Context, id uint) error {
	party, err := s.partyRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	party.IsActive = false
	party.UpdatedAt = time.Now()
	return s.partyRepo.Update(ctx, party)
}
