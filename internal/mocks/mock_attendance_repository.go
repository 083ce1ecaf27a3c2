package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/you/attendsvc/domain"
)

// MockAttendanceRepository implements domain.AttendanceRepository for
// testing. The default behavior keeps records in a mutex-guarded map, so
// tests can exercise concurrent appends against the same (user, date) key.
type MockAttendanceRepository struct {
	AppendEntryFunc       func(ctx context.Context, userID uint, userName, date string, entry domain.Entry) (*domain.AttendanceRecord, error)
	FindByUserAndDateFunc func(ctx context.Context, userID uint, date string) (*domain.AttendanceRecord, error)
	FindAllByUserFunc     func(ctx context.Context, userID uint) ([]domain.AttendanceRecord, error)
	FindAllFunc           func(ctx context.Context) ([]domain.AttendanceRecord, error)

	mu      sync.Mutex
	nextID  uint
	records map[string]*domain.AttendanceRecord
}

// NewMockAttendanceRepository creates a new MockAttendanceRepository with default behaviors
func NewMockAttendanceRepository() *MockAttendanceRepository {
	return &MockAttendanceRepository{
		nextID:  1,
		records: make(map[string]*domain.AttendanceRecord),
	}
}

func recordKey(userID uint, date string) string {
	return fmt.Sprintf("%d:%s", userID, date)
}

// AppendEntry appends an entry to the day's record, creating it on first use
func (m *MockAttendanceRepository) AppendEntry(ctx context.Context, userID uint, userName, date string, entry domain.Entry) (*domain.AttendanceRecord, error) {
	if m.AppendEntryFunc != nil {
		return m.AppendEntryFunc(ctx, userID, userName, date, entry)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := recordKey(userID, date)
	record, ok := m.records[key]
	if !ok {
		record = &domain.AttendanceRecord{
			ID:       m.nextID,
			UserID:   userID,
			UserName: userName,
			Date:     date,
		}
		m.nextID++
		m.records[key] = record
	}

	record.Entries = append(record.Entries, entry)
	record.Recompute()

	snapshot := *record
	snapshot.Entries = append([]domain.Entry(nil), record.Entries...)
	snapshot.Sessions = append([]domain.Session(nil), record.Sessions...)
	return &snapshot, nil
}

// FindByUserAndDate finds a record by user and date
func (m *MockAttendanceRepository) FindByUserAndDate(ctx context.Context, userID uint, date string) (*domain.AttendanceRecord, error) {
	if m.FindByUserAndDateFunc != nil {
		return m.FindByUserAndDateFunc(ctx, userID, date)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[recordKey(userID, date)]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	snapshot := *record
	return &snapshot, nil
}

// FindAllByUser lists all records for a user
func (m *MockAttendanceRepository) FindAllByUser(ctx context.Context, userID uint) ([]domain.AttendanceRecord, error) {
	if m.FindAllByUserFunc != nil {
		return m.FindAllByUserFunc(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var result []domain.AttendanceRecord
	for _, record := range m.records {
		if record.UserID == userID {
			result = append(result, *record)
		}
	}
	return result, nil
}

// FindAll lists every record
func (m *MockAttendanceRepository) FindAll(ctx context.Context) ([]domain.AttendanceRecord, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var result []domain.AttendanceRecord
	for _, record := range m.records {
		result = append(result, *record)
	}
	return result, nil
}

// Compile-time interface compliance verification
var _ domain.AttendanceRepository = (*MockAttendanceRepository)(nil)
