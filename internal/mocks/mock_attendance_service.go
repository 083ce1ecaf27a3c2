package mocks

import (
	"context"
	"time"

	"github.com/you/attendsvc/domain"
)

// MockAttendanceService implements domain.AttendanceService interface for testing
type MockAttendanceService struct {
	CheckInOutFunc  func(ctx context.Context, user *domain.User, entryType domain.EntryType, loc domain.Location, partyID uint) (*domain.AttendanceRecord, error)
	TodayRecordFunc func(ctx context.Context, userID uint) (*domain.AttendanceRecord, error)
	ListRecordsFunc func(ctx context.Context, caller *domain.User) ([]domain.AttendanceRecord, error)
	UserStatsFunc   func(ctx context.Context, caller *domain.User, targetUserID uint, now time.Time) (domain.UserStats, error)
}

// NewMockAttendanceService creates a new MockAttendanceService with default behaviors
func NewMockAttendanceService() *MockAttendanceService {
	return &MockAttendanceService{}
}

// CheckInOut records a check-in or check-out entry
func (m *MockAttendanceService) CheckInOut(ctx context.Context, user *domain.User, entryType domain.EntryType, loc domain.Location, partyID uint) (*domain.AttendanceRecord, error) {
	if m.CheckInOutFunc != nil {
		return m.CheckInOutFunc(ctx, user, entryType, loc, partyID)
	}
	// Default behavior: single-entry record for today
	now := time.Now()
	var entry domain.Entry
	if entryType == domain.EntryCheckIn {
		entry = domain.NewCheckIn(now, loc, partyID, "Mock Party")
	} else {
		entry = domain.NewCheckOut(now, loc)
	}
	record := &domain.AttendanceRecord{
		ID:       1,
		UserID:   user.ID,
		UserName: user.Name,
		Date:     now.Format(domain.DateLayout),
		Entries:  []domain.Entry{entry},
	}
	record.Recompute()
	return record, nil
}

// TodayRecord returns today's record for a user
func (m *MockAttendanceService) TodayRecord(ctx context.Context, userID uint) (*domain.AttendanceRecord, error) {
	if m.TodayRecordFunc != nil {
		return m.TodayRecordFunc(ctx, userID)
	}
	// Default behavior: no record yet today
	return nil, nil
}

// ListRecords lists attendance records visible to the caller
func (m *MockAttendanceService) ListRecords(ctx context.Context, caller *domain.User) ([]domain.AttendanceRecord, error) {
	if m.ListRecordsFunc != nil {
		return m.ListRecordsFunc(ctx, caller)
	}
	// Default behavior: empty list
	return []domain.AttendanceRecord{}, nil
}

// UserStats returns aggregated statistics for a user
func (m *MockAttendanceService) UserStats(ctx context.Context, caller *domain.User, targetUserID uint, now time.Time) (domain.UserStats, error) {
	if m.UserStatsFunc != nil {
		return m.UserStatsFunc(ctx, caller, targetUserID, now)
	}
	// Default behavior: empty stats
	return domain.UserStats{}, nil
}

// Compile-time interface compliance verification
var _ domain.AttendanceService = (*MockAttendanceService)(nil)
