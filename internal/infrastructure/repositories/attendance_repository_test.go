package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/attendsvc/domain"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives each test an in-memory sqlite database. The row-lock
// taken by AppendEntry is Postgres syntax, so these tests cover the read
// paths and the schema; the locking behavior is exercised at the service
// level against the in-memory store.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&DBUser{}, &DBParty{}, &DBAttendanceRecord{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedRecord(t *testing.T, db *gorm.DB, userID uint, date string, entries []domain.Entry) {
	t.Helper()
	record := domain.AttendanceRecord{Entries: entries}
	record.Recompute()

	entriesJSON, err := json.Marshal(record.Entries)
	require.NoError(t, err)
	sessionsJSON, err := json.Marshal(record.Sessions)
	require.NoError(t, err)

	require.NoError(t, db.Create(&DBAttendanceRecord{
		UserID:     userID,
		UserName:   "John Doe",
		Date:       date,
		Entries:    datatypes.JSON(entriesJSON),
		Sessions:   datatypes.JSON(sessionsJSON),
		TotalHours: record.TotalHours,
	}).Error)
}

func workday(t *testing.T, date string, hours float64) []domain.Entry {
	t.Helper()
	start, err := time.Parse(time.RFC3339, date+"T09:00:00Z")
	require.NoError(t, err)
	return []domain.Entry{
		domain.NewCheckIn(start, domain.Location{Address: "Office"}, 1, "Acme Corp"),
		domain.NewCheckOut(start.Add(time.Duration(hours*float64(time.Hour))), domain.Location{Address: "Office"}),
	}
}

func TestAttendanceRepositoryImpl_FindByUserAndDate(t *testing.T) {
	db := openTestDB(t)
	repo := NewAttendanceRepository(db)
	seedRecord(t, db, 7, "2025-03-10", workday(t, "2025-03-10", 8))

	t.Run("found with decoded entries and sessions", func(t *testing.T) {
		record, err := repo.FindByUserAndDate(context.Background(), 7, "2025-03-10")
		require.NoError(t, err)
		assert.Equal(t, uint(7), record.UserID)
		assert.Len(t, record.Entries, 2)
		require.Len(t, record.Sessions, 1)
		assert.Equal(t, 8.0, record.Sessions[0].Hours)
		assert.Equal(t, "Acme Corp", record.Sessions[0].PartyName)
		assert.Equal(t, 8.0, record.TotalHours)
	})

	t.Run("missing day", func(t *testing.T) {
		_, err := repo.FindByUserAndDate(context.Background(), 7, "2025-03-11")
		assert.ErrorIs(t, err, domain.ErrRecordNotFound)
	})

	t.Run("other user's day is invisible", func(t *testing.T) {
		_, err := repo.FindByUserAndDate(context.Background(), 8, "2025-03-10")
		assert.ErrorIs(t, err, domain.ErrRecordNotFound)
	})
}

func TestAttendanceRepositoryImpl_Listings(t *testing.T) {
	db := openTestDB(t)
	repo := NewAttendanceRepository(db)
	seedRecord(t, db, 7, "2025-03-10", workday(t, "2025-03-10", 8))
	seedRecord(t, db, 7, "2025-03-12", workday(t, "2025-03-12", 6.5))
	seedRecord(t, db, 9, "2025-03-11", workday(t, "2025-03-11", 4))

	t.Run("per-user listing is newest first", func(t *testing.T) {
		records, err := repo.FindAllByUser(context.Background(), 7)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "2025-03-12", records[0].Date)
		assert.Equal(t, "2025-03-10", records[1].Date)
	})

	t.Run("global listing covers every user", func(t *testing.T) {
		records, err := repo.FindAll(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "2025-03-12", records[0].Date)
	})
}

func TestDBAttendanceRecord_UniquePerUserAndDay(t *testing.T) {
	db := openTestDB(t)
	seedRecord(t, db, 7, "2025-03-10", nil)

	err := db.Create(&DBAttendanceRecord{
		UserID:   7,
		UserName: "John Doe",
		Date:     "2025-03-10",
		Entries:  datatypes.JSON([]byte("[]")),
		Sessions: datatypes.JSON([]byte("[]")),
	}).Error
	assert.Error(t, err, "second record for the same user and day must violate the unique index")
}
