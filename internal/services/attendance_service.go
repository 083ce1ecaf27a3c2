package services

import (
	"context"
	"fmt"
	"time"

	"github.com/you/attendsvc/domain"
)

// AttendanceServiceImpl implements domain.AttendanceService
type AttendanceServiceImpl struct {
	attendanceRepo domain.AttendanceRepository
	partyRepo      domain.PartyRepository
	userRepo       domain.UserRepository
	geocodeSvc     domain.GeocodingService
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	attendanceRepo domain.AttendanceRepository,
	partyRepo domain.PartyRepository,
	userRepo domain.UserRepository,
	geocodeSvc domain.GeocodingService,
) domain.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		partyRepo:      partyRepo,
		userRepo:       userRepo,
		geocodeSvc:     geocodeSvc,
	}
}

// CheckInOut implements domain.AttendanceService. Check-ins must name an
// active party; check-outs carry no party at all. The entry lands in
// today's record under the store's append lock.
func (s *AttendanceServiceImpl) CheckInOut(ctx context.Context, user *domain.User, entryType domain.EntryType, loc domain.Location, partyID uint) (*domain.AttendanceRecord, error) {
	if entryType != domain.EntryCheckIn && entryType != domain.EntryCheckOut {
		return nil, domain.ErrInvalidEntryType
	}

	now := time.Now()
	loc.Address = s.resolveAddress(ctx, loc)

	var entry domain.Entry
	switch entryType {
	case domain.EntryCheckIn:
		if partyID == 0 {
			return nil, domain.ErrPartyRequired
		}
		party, err := s.partyRepo.FindByID(ctx, partyID)
		if err != nil {
			if err == domain.ErrPartyNotFound {
				return nil, domain.ErrPartyInvalid
			}
			return nil, err
		}
		if !party.IsActive {
			return nil, domain.ErrPartyInvalid
		}
		entry = domain.NewCheckIn(now, loc, party.ID, party.Name)
	case domain.EntryCheckOut:
		entry = domain.NewCheckOut(now, loc)
	}

	date := now.Format(domain.DateLayout)
	return s.attendanceRepo.AppendEntry(ctx, user.ID, user.Name, date, entry)
}

// TodayRecord implements domain.AttendanceService. A day with no entries
// yet yields (nil, nil); the handler renders that as a null body.
func (s *AttendanceServiceImpl) TodayRecord(ctx context.Context, userID uint) (*domain.AttendanceRecord, error) {
	date := time.Now().Format(domain.DateLayout)
	record, err := s.attendanceRepo.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		if err == domain.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

// ListRecords implements domain.AttendanceService. Admins see every
// user's records; everyone else only their own.
func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, caller *domain.User) ([]domain.AttendanceRecord, error) {
	if caller.IsAdmin() {
		return s.attendanceRepo.FindAll(ctx)
	}
	return s.attendanceRepo.FindAllByUser(ctx, caller.ID)
}

// UserStats implements domain.AttendanceService. Non-admins may only
// query their own statistics.
func (s *AttendanceServiceImpl) UserStats(ctx context.Context, caller *domain.User, targetUserID uint, now time.Time) (domain.UserStats, error) {
	if targetUserID != caller.ID && !caller.IsAdmin() {
		return domain.UserStats{}, domain.ErrInsufficientRole
	}

	if targetUserID != caller.ID {
		if _, err := s.userRepo.FindByID(ctx, targetUserID); err != nil {
			return domain.UserStats{}, err
		}
	}

	records, err := s.attendanceRepo.FindAllByUser(ctx, targetUserID)
	if err != nil {
		return domain.UserStats{}, err
	}

	return domain.CalculateUserStats(records, now), nil
}

// resolveAddress reverse-geocodes the coordinates, falling back to the raw
// coordinate pair when the lookup fails or the gate is unreachable.
func (s *AttendanceServiceImpl) resolveAddress(ctx context.Context, loc domain.Location) string {
	if loc.Address != "" {
		return loc.Address
	}
	address, err := s.geocodeSvc.ReverseGeocode(ctx, loc.Latitude, loc.Longitude)
	if err != nil || address == "" {
		return fmt.Sprintf("%.6f, %.6f", loc.Latitude, loc.Longitude)
	}
	return address
}
