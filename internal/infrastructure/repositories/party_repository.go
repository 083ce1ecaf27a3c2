package repositories

import (
	"context"
	"time"

	"github.com/you/attendsvc/domain"
	"gorm.io/gorm"
)

// PartyRepositoryImpl implements domain.PartyRepository using GORM
type PartyRepositoryImpl struct {
	db *gorm.DB
}

// DBParty represents the database model for Party. Name uniqueness among
// active parties is enforced at the service level; rows are soft-deleted
// by clearing IsActive, so the column itself carries no unique index.
type DBParty struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"index;size:255"`
	Description string `gorm:"size:1024"`
	IsActive    bool   `gorm:"index"`
	CreatedBy   uint   `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBParty) TableName() string {
	return "parties"
}

// NewPartyRepository creates a new party repository
func NewPartyRepository(db *gorm.DB) domain.PartyRepository {
	return &PartyRepositoryImpl{db: db}
}

// Create implements domain.PartyRepository
func (r *PartyRepositoryImpl) Create(ctx context.Context, party *domain.Party) error {
	dbParty := r.domainToDB(party)
	if err := r.db.WithContext(ctx).Create(dbParty).Error; err != nil {
		return err
	}
	party.ID = dbParty.ID
	party.CreatedAt = dbParty.CreatedAt
	party.UpdatedAt = dbParty.UpdatedAt
	return nil
}

// FindByID implements domain.PartyRepository
func (r *PartyRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Party, error) {
	var dbParty DBParty
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbParty).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrPartyNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbParty), nil
}

// FindActiveByName implements domain.PartyRepository
func (r *PartyRepositoryImpl) FindActiveByName(ctx context.Context, name string) (*domain.Party, error) {
	var dbParty DBParty
	err := r.db.WithContext(ctx).Where("name = ? AND is_active = ?", name, true).First(&dbParty).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrPartyNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbParty), nil
}

// ListActive implements domain.PartyRepository; parties sorted by name.
func (r *PartyRepositoryImpl) ListActive(ctx context.Context) ([]domain.Party, error) {
	var dbParties []DBParty
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name asc").Find(&dbParties).Error
	if err != nil {
		return nil, err
	}
	return r.dbToDomainList(dbParties), nil
}

// ListAll implements domain.PartyRepository
func (r *PartyRepositoryImpl) ListAll(ctx context.Context) ([]domain.Party, error) {
	var dbParties []DBParty
	err := r.db.WithContext(ctx).Order("name asc").Find(&dbParties).Error
	if err != nil {
		return nil, err
	}
	return r.dbToDomainList(dbParties), nil
}

// Update implements domain.PartyRepository
func (r *PartyRepositoryImpl) Update(ctx context.Context, party *domain.Party) error {
	dbParty := r.domainToDB(party)
	return r.db.WithContext(ctx).Save(dbParty).Error
}

func (r *PartyRepositoryImpl) domainToDB(party *domain.Party) *DBParty {
	return &DBParty{
		ID:          party.ID,
		Name:        party.Name,
		Description: party.Description,
		IsActive:    party.IsActive,
		CreatedBy:   party.CreatedBy,
	}
}

func (r *PartyRepositoryImpl) dbToDomain(dbParty *DBParty) *domain.Party {
	return &domain.Party{
		ID:          dbParty.ID,
		Name:        dbParty.Name,
		Description: dbParty.Description,
		IsActive:    dbParty.IsActive,
		CreatedBy:   dbParty.CreatedBy,
		CreatedAt:   dbParty.CreatedAt,
		UpdatedAt:   dbParty.UpdatedAt,
	}
}

func (r *PartyRepositoryImpl) dbToDomainList(dbParties []DBParty) []domain.Party {
	parties := make([]domain.Party, 0, len(dbParties))
	for i := range dbParties {
		parties = append(parties, *r.dbToDomain(&dbParties[i]))
	}
	return parties
}
