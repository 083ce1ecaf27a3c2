package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/you/attendsvc/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttendanceRepositoryImpl implements domain.AttendanceRepository using GORM
type AttendanceRepositoryImpl struct {
	db *gorm.DB
}

// DBAttendanceRecord represents the database model for AttendanceRecord.
// Entries and Sessions are stored as JSON documents; the composite unique
// index on (user_id, date) is what makes one record per user per day hold
// under concurrent appends.
type DBAttendanceRecord struct {
	ID         uint           `gorm:"primaryKey"`
	UserID     uint           `gorm:"uniqueIndex:idx_user_date"`
	UserName   string         `gorm:"size:255"`
	Date       string         `gorm:"uniqueIndex:idx_user_date;size:10"`
	Entries    datatypes.JSON `gorm:"type:jsonb"`
	Sessions   datatypes.JSON `gorm:"type:jsonb"`
	TotalHours float64
	CreatedAt  time.Time
	UpdatedAt  time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBAttendanceRecord) TableName() string {
	return "attendance_records"
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) domain.AttendanceRepository {
	return &AttendanceRepositoryImpl{db: db}
}

// AppendEntry implements domain.AttendanceRepository. The whole
// read-append-recompute cycle runs in one transaction holding a row lock
// on the day's record, so two concurrent submissions serialize instead of
// overwriting each other. A duplicate-key error on the initial insert means
// another transaction created the record first; the retry then finds it
// under the lock.
func (r *AttendanceRepositoryImpl) AppendEntry(ctx context.Context, userID uint, userName, date string, entry domain.Entry) (*domain.AttendanceRecord, error) {
	var result *domain.AttendanceRecord

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dbRecord DBAttendanceRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND date = ?", userID, date).
			First(&dbRecord).Error
		if err == gorm.ErrRecordNotFound {
			dbRecord = DBAttendanceRecord{
				UserID:   userID,
				UserName: userName,
				Date:     date,
				Entries:  datatypes.JSON([]byte("[]")),
				Sessions: datatypes.JSON([]byte("[]")),
			}
			if createErr := tx.Create(&dbRecord).Error; createErr != nil {
				// Lost the insert race; pick up the winner's row.
				err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					Where("user_id = ? AND date = ?", userID, date).
					First(&dbRecord).Error
				if err != nil {
					return createErr
				}
			}
		} else if err != nil {
			return err
		}

		record, err := r.dbToDomain(&dbRecord)
		if err != nil {
			return err
		}

		record.Entries = append(record.Entries, entry)
		record.Recompute()

		entriesJSON, err := json.Marshal(record.Entries)
		if err != nil {
			return fmt.Errorf("failed to marshal entries: %w", err)
		}
		sessionsJSON, err := json.Marshal(record.Sessions)
		if err != nil {
			return fmt.Errorf("failed to marshal sessions: %w", err)
		}

		updates := map[string]interface{}{
			"entries":     datatypes.JSON(entriesJSON),
			"sessions":    datatypes.JSON(sessionsJSON),
			"total_hours": record.TotalHours,
		}
		if err := tx.Model(&DBAttendanceRecord{}).Where("id = ?", dbRecord.ID).Updates(updates).Error; err != nil {
			return err
		}

		result = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FindByUserAndDate implements domain.AttendanceRepository
func (r *AttendanceRepositoryImpl) FindByUserAndDate(ctx context.Context, userID uint, date string) (*domain.AttendanceRecord, error) {
	var dbRecord DBAttendanceRecord
	err := r.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date).First(&dbRecord).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbRecord)
}

// FindAllByUser implements domain.AttendanceRepository; newest day first.
func (r *AttendanceRepositoryImpl) FindAllByUser(ctx context.Context, userID uint) ([]domain.AttendanceRecord, error) {
	var dbRecords []DBAttendanceRecord
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date desc").Find(&dbRecords).Error
	if err != nil {
		return nil, err
	}
	return r.dbToDomainList(dbRecords)
}

// FindAll implements domain.AttendanceRepository; newest day first.
func (r *AttendanceRepositoryImpl) FindAll(ctx context.Context) ([]domain.AttendanceRecord, error) {
	var dbRecords []DBAttendanceRecord
	err := r.db.WithContext(ctx).Order("date desc").Find(&dbRecords).Error
	if err != nil {
		return nil, err
	}
	return r.dbToDomainList(dbRecords)
}

func (r *AttendanceRepositoryImpl) dbToDomain(dbRecord *DBAttendanceRecord) (*domain.AttendanceRecord, error) {
	record := &domain.AttendanceRecord{
		ID:         dbRecord.ID,
		UserID:     dbRecord.UserID,
		UserName:   dbRecord.UserName,
		Date:       dbRecord.Date,
		TotalHours: dbRecord.TotalHours,
		CreatedAt:  dbRecord.CreatedAt,
		UpdatedAt:  dbRecord.UpdatedAt,
	}
	if len(dbRecord.Entries) > 0 {
		if err := json.Unmarshal(dbRecord.Entries, &record.Entries); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entries for record %d: %w", dbRecord.ID, err)
		}
	}
	if len(dbRecord.Sessions) > 0 {
		if err := json.Unmarshal(dbRecord.Sessions, &record.Sessions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sessions for record %d: %w", dbRecord.ID, err)
		}
	}
	return record, nil
}

func (r *AttendanceRepositoryImpl) dbToDomainList(dbRecords []DBAttendanceRecord) ([]domain.AttendanceRecord, error) {
	records := make([]domain.AttendanceRecord, 0, len(dbRecords))
	for i := range dbRecords {
		record, err := r.dbToDomain(&dbRecords[i])
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, nil
}
